package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/nenelobo/NeneloBot_Go/internal/bump"
	"github.com/nenelobo/NeneloBot_Go/internal/config"
	"github.com/nenelobo/NeneloBot_Go/internal/discord"
	"github.com/nenelobo/NeneloBot_Go/internal/gacha"
	"github.com/nenelobo/NeneloBot_Go/internal/holiday"
	"github.com/nenelobo/NeneloBot_Go/internal/logger"
	"github.com/nenelobo/NeneloBot_Go/internal/server"
	"github.com/nenelobo/NeneloBot_Go/internal/store"
)

const shutdownTimeout = 10 * time.Second

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	// Load configuration (reads .env if present)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger.Setup(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
	})

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		return err
	}

	holidays, err := holiday.NewClient(cfg.HolidayAPIURL)
	if err != nil {
		return err
	}

	// Create bot
	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.AppID,
		GuildID: cfg.GuildID,
	})
	if err != nil {
		return err
	}

	// Wire the bump cycle
	emoji := bump.EmojiSet{
		gacha.TierCommon:       cfg.EmojiCommon,
		gacha.TierRare:         cfg.EmojiRare,
		gacha.TierStandardEpic: cfg.EmojiStandardEpic,
		gacha.TierFeaturedEpic: cfg.EmojiFeaturedEpic,
	}

	clock := bump.NewClock()
	messenger := discord.NewMessenger(bot.Session)
	scheduler := bump.NewScheduler(clock, messenger, bump.NewFlags(st))
	reminder := discord.NewReminder(bot.Session, holidays, holiday.ThreadMap{
		Weekday: cfg.WeekdayThreads,
		Holiday: cfg.HolidayThreads,
	}, loc, cfg.BumpChannelID)

	bumpService := bump.NewService(st, scheduler, clock, messenger, reminder, emoji, cfg.BumpChannelID, nil)

	discord.NewBumpWatcher(bumpService, cfg.GuildID).Attach(bot.Session)

	// Register all commands
	src := gacha.DefaultSource()
	registerCommands(bot, []CommandFactory{
		discord.PingCommand,
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.GachaCommand(src, emoji)
		},
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.NextBumpCommand(st, clock)
		},
	})

	// Start the operational HTTP server
	srv := server.New(cfg.Port)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	// Register with Discord API
	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Start(); err != nil {
		return err
	}
	defer bot.Stop()

	// Pick up a persisted bump cycle from before the restart
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	bumpService.Resume(ctx)

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown failed", "error", err)
	}
	return nil
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
