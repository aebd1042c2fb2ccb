package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// PingCommand returns the bot-info command definition and handler.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "nenelobo",
		Description: "Show bot status",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		desc := fmt.Sprintf("🏓 Pong!\nHeartbeat latency: %dms", s.HeartbeatLatency().Milliseconds())
		respondEmbed(s, i, createEmbed("📶 Ping", desc, ColorBlue))
	}

	return cmd, handler
}
