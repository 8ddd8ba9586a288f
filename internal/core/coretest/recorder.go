// Package coretest provides a recording Messenger for tests.
package coretest

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Sent is one embed delivered through a Recorder.
type Sent struct {
	ChannelID string
	Embed     *discordgo.MessageEmbed
}

// Recorder is a core.Messenger that keeps every embed it is given.
type Recorder struct {
	mu   sync.Mutex
	sent []Sent
	// Err, when set, is returned by SendEmbed and nothing is recorded.
	Err error
}

// SendEmbed records the embed.
func (r *Recorder) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, Sent{ChannelID: channelID, Embed: embed})
	return nil
}

// Sent returns the recorded embeds in order.
func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Descriptions returns the description of every recorded embed.
func (r *Recorder) Descriptions() []string {
	var out []string
	for _, s := range r.Sent() {
		out = append(out, s.Embed.Description)
	}
	return out
}
