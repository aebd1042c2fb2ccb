package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/nenelobo/NeneloBot_Go/internal/bump"
	"github.com/nenelobo/NeneloBot_Go/internal/logger"
	"github.com/nenelobo/NeneloBot_Go/internal/store"
)

// NextBumpCommand returns the nextbump command definition and handler. It
// answers from the persisted cycle record so it works even when the
// countdown display message is gone.
func NextBumpCommand(st *store.Store, clock bump.Clock) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "nextbump",
		Description: "Show when the server can be bumped again",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())

		rec, ok := st.LoadCycle(ctx)
		if !ok {
			respondText(s, i, MsgNoCycleRecord, true)
			return
		}

		remaining := int64(rec.NextBump.Sub(clock.Now()).Seconds())
		if remaining <= 0 {
			respondText(s, i, MsgBumpReadyNow, true)
			return
		}

		content := fmt.Sprintf("Next bump: <t:%d:T> (<t:%d:R>)\nRemaining: %s",
			rec.NextBump.Unix(), rec.NextBump.Unix(), bump.FormatRemaining(remaining))
		respondText(s, i, content, true)
	}

	return cmd, handler
}
