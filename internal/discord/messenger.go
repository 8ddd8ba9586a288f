package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// sessionMessenger sends embeds through the REST API.
type sessionMessenger struct {
	s *discordgo.Session
}

func (m *sessionMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	if _, err := m.s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("send embed to %s: %w", channelID, err)
	}
	return nil
}
