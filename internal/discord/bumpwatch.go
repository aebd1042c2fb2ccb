package discord

import (
	"context"
	"regexp"

	"github.com/bwmarrin/discordgo"

	"github.com/nenelobo/NeneloBot_Go/internal/bump"
	"github.com/nenelobo/NeneloBot_Go/internal/logger"
)

// bumpSuccessPatterns match the Disboard confirmation embed across the
// locales the server sees. Disboard localizes the text per guild setting,
// so every known variant is accepted.
var bumpSuccessPatterns = []*regexp.Regexp{
	regexp.MustCompile(`表示順をアップしたよ`),
	regexp.MustCompile(`Bump done`),
	regexp.MustCompile(`Bump effectué`),
	regexp.MustCompile(`Bump fatto`),
	regexp.MustCompile(`Podbito serwer`),
	regexp.MustCompile(`Успешно поднято`),
	regexp.MustCompile(`갱신했어`),
	regexp.MustCompile(`Patlatma tamamlandı`),
}

// BumpWatcher listens for Disboard bump confirmations and kicks off the
// bump cycle when one lands in the watched guild.
type BumpWatcher struct {
	service *bump.Service
	guildID string
}

// NewBumpWatcher creates a watcher scoped to one guild. An empty guildID
// watches everywhere the bot can see.
func NewBumpWatcher(service *bump.Service, guildID string) *BumpWatcher {
	return &BumpWatcher{service: service, guildID: guildID}
}

// Attach registers the watcher on the session.
func (w *BumpWatcher) Attach(s *discordgo.Session) {
	s.AddHandler(w.messageCreate)
}

func (w *BumpWatcher) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID != DisboardAppID {
		return
	}
	if w.guildID != "" && m.GuildID != w.guildID {
		return
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	desc := embedDescription(m.Message)
	log.Debug(LogMsgBumpMessageSeen, "description", desc)
	if desc == "" || !matchesBumpSuccess(desc) {
		return
	}

	log.Info(LogMsgBumpSuccessMatched, "guild", m.GuildID, "channel", m.ChannelID)
	if err := w.service.HandleBumpSuccess(ctx, m.GuildID); err != nil {
		log.Error(LogMsgBumpHandleFailed, "error", err)
	}
}

func embedDescription(m *discordgo.Message) string {
	if len(m.Embeds) == 0 {
		return ""
	}
	return m.Embeds[0].Description
}

func matchesBumpSuccess(description string) bool {
	for _, pattern := range bumpSuccessPatterns {
		if pattern.MatchString(description) {
			return true
		}
	}
	return false
}
