package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Messenger adapts a Discord session to the message collaborators the bump
// service needs: embed display management, plain sends, and channel renames.
type Messenger struct {
	session *discordgo.Session
}

// NewMessenger wraps a session.
func NewMessenger(s *discordgo.Session) *Messenger {
	return &Messenger{session: s}
}

// SendEmbed posts a new embed and returns its message ID.
func (m *Messenger) SendEmbed(channelID, title, body string) (string, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, createEmbed(title, body, ColorBlue))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// EditEmbed replaces the embed on an existing message.
func (m *Messenger) EditEmbed(channelID, messageID, title, body string) error {
	_, err := m.session.ChannelMessageEditEmbed(channelID, messageID, createEmbed(title, body, ColorBlue))
	return err
}

// DeleteMessage removes a message.
func (m *Messenger) DeleteMessage(channelID, messageID string) error {
	return m.session.ChannelMessageDelete(channelID, messageID)
}

// SendMessage posts plain content and returns the new message ID.
func (m *Messenger) SendMessage(channelID, content string) (string, error) {
	msg, err := m.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// RenameChannel changes a channel's display name.
func (m *Messenger) RenameChannel(channelID, name string) error {
	_, err := m.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name})
	return err
}
