package config

// Environment variable names
const (
	EnvDiscordToken      = "DISCORD_TOKEN"
	EnvDiscordAppID      = "DISCORD_APP_ID"
	EnvGuildID           = "GUILD_ID"
	EnvBumpChannelID     = "MAIN_BUMP_CHANNEL_ID"
	EnvDataDir           = "DATA_DIR"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEmojiCommon       = "EMOJI_COMMON"
	EnvEmojiRare         = "EMOJI_RARE"
	EnvEmojiStandardEpic = "EMOJI_STANDARD_EPIC"
	EnvEmojiFeaturedEpic = "EMOJI_FEATURED_EPIC"
	EnvHolidayAPIURL     = "HOLIDAY_API_URL"
	EnvTimezone          = "TIMEZONE"

	EnvThreadWeekdayPrefix = "THREAD_WEEKDAY_"
	EnvThreadHolidayPrefix = "THREAD_HOLIDAY_"
)

// Default values
const (
	DefaultDataDir   = "data"
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTimezone  = "Asia/Tokyo"

	DefaultEmojiCommon   = "⭐⭐"
	DefaultEmojiRare     = "⭐⭐⭐"
	DefaultEmojiEpic     = "🌟"
	DefaultEmojiFeatured = "✨"
)
