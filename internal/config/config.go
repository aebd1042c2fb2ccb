package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DiscordToken string `validate:"required"`
	AppID        string `validate:"required"`
	GuildID      string `validate:"required"`

	// The channel the countdown display and gacha results live in.
	BumpChannelID string `validate:"required"`

	DataDir   string `validate:"required"`
	Port      int    `validate:"gte=0,lte=65535"`
	LogLevel  string
	LogFormat string

	// Tier display assets, worst to best.
	EmojiCommon       string `validate:"required"`
	EmojiRare         string `validate:"required"`
	EmojiStandardEpic string `validate:"required"`
	EmojiFeaturedEpic string `validate:"required"`

	HolidayAPIURL string
	Timezone      string

	// Reminder thread IDs per time slot; empty maps disable thread routing
	// and reminders land in the bump channel instead.
	WeekdayThreads map[string]string
	HolidayThreads map[string]string
}

// slotKeys are the reminder time-slot start hours.
var slotKeys = []string{"0", "3", "6", "9", "12", "15", "18", "22"}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:      os.Getenv(EnvDiscordToken),
		AppID:             os.Getenv(EnvDiscordAppID),
		GuildID:           os.Getenv(EnvGuildID),
		BumpChannelID:     os.Getenv(EnvBumpChannelID),
		DataDir:           getEnv(EnvDataDir, DefaultDataDir),
		LogLevel:          getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:         getEnv(EnvLogFormat, DefaultLogFormat),
		EmojiCommon:       getEnv(EnvEmojiCommon, DefaultEmojiCommon),
		EmojiRare:         getEnv(EnvEmojiRare, DefaultEmojiRare),
		EmojiStandardEpic: getEnv(EnvEmojiStandardEpic, DefaultEmojiEpic),
		EmojiFeaturedEpic: getEnv(EnvEmojiFeaturedEpic, DefaultEmojiFeatured),
		HolidayAPIURL:     os.Getenv(EnvHolidayAPIURL),
		Timezone:          getEnv(EnvTimezone, DefaultTimezone),
		WeekdayThreads:    loadThreadIDs(EnvThreadWeekdayPrefix),
		HolidayThreads:    loadThreadIDs(EnvThreadHolidayPrefix),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the configured timezone used for reminder slot routing.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// loadThreadIDs collects the per-slot thread IDs sharing an env prefix.
func loadThreadIDs(prefix string) map[string]string {
	threads := make(map[string]string)
	for _, key := range slotKeys {
		if id := os.Getenv(prefix + key); id != "" {
			threads[key] = id
		}
	}
	return threads
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
