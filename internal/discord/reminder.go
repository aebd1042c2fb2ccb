package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/nenelobo/NeneloBot_Go/internal/holiday"
	"github.com/nenelobo/NeneloBot_Go/internal/logger"
)

// Reminder posts the bump-available ping when a cycle completes. The target
// channel depends on the local time slot and whether the day is a weekend
// or Japanese public holiday; without a matching thread the reminder lands
// in the bump channel itself.
type Reminder struct {
	session       *discordgo.Session
	holidays      *holiday.Client
	threads       holiday.ThreadMap
	location      *time.Location
	bumpChannelID string
}

// NewReminder wires the reminder sender.
func NewReminder(s *discordgo.Session, holidays *holiday.Client, threads holiday.ThreadMap, loc *time.Location, bumpChannelID string) *Reminder {
	return &Reminder{
		session:       s,
		holidays:      holidays,
		threads:       threads,
		location:      loc,
		bumpChannelID: bumpChannelID,
	}
}

// SendReminder posts an @here embed into the thread for the target's time
// slot.
func (r *Reminder) SendReminder(ctx context.Context, target time.Time) error {
	log := logger.FromContext(ctx)

	local := target.In(r.location)
	isHoliday := r.holidays.IsHoliday(ctx, local)

	channelID := r.threads.ResolveThread(local, isHoliday)
	log.Info(LogMsgReminderThreadSend,
		"hour", local.Hour(),
		"holiday", isHoliday,
		"slot", holiday.SlotKey(local.Hour()),
		"channel", channelID)

	if channelID == "" {
		log.Warn(LogMsgReminderFellBack)
		channelID = r.bumpChannelID
	}

	_, err := r.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: "@here",
		Embeds: []*discordgo.MessageEmbed{
			createEmbed(MsgReminderTitle, MsgReminderBody, ColorBlue),
		},
	})
	if err != nil && channelID != r.bumpChannelID {
		// A stale or archived thread should not swallow the one
		// notification the cycle gets.
		log.Warn(LogMsgReminderFellBack, "error", err)
		_, err = r.session.ChannelMessageSendComplex(r.bumpChannelID, &discordgo.MessageSend{
			Content: "@here",
			Embeds: []*discordgo.MessageEmbed{
				createEmbed(MsgReminderTitle, MsgReminderBody, ColorBlue),
			},
		})
	}
	return err
}
