package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// PermissionNames maps permission bits to the names Discord shows in its UI.
var PermissionNames = map[int64]string{
	discordgo.PermissionCreateInstantInvite: "Create Instant Invite",
	discordgo.PermissionKickMembers:         "Kick Members",
	discordgo.PermissionBanMembers:          "Ban Members",
	discordgo.PermissionAdministrator:       "Administrator",
	discordgo.PermissionManageChannels:      "Manage Channels",
	discordgo.PermissionManageServer:         "Manage Server",
	discordgo.PermissionAddReactions:        "Add Reactions",
	discordgo.PermissionViewAuditLogs:       "View Audit Logs",
	discordgo.PermissionViewChannel:         "View Channel",
	discordgo.PermissionSendMessages:        "Send Messages",
	discordgo.PermissionSendTTSMessages:     "Send TTS Messages",
	discordgo.PermissionManageMessages:      "Manage Messages",
	discordgo.PermissionEmbedLinks:          "Embed Links",
	discordgo.PermissionAttachFiles:         "Attach Files",
	discordgo.PermissionReadMessageHistory:  "Read Message History",
	discordgo.PermissionMentionEveryone:     "Mention Everyone",
	discordgo.PermissionUseExternalEmojis:   "Use External Emojis",
	discordgo.PermissionManageThreads:       "Manage Threads",
	discordgo.PermissionVoiceConnect:        "Connect to Voice Channel",
	discordgo.PermissionVoiceSpeak:          "Speak",
	discordgo.PermissionVoiceMuteMembers:    "Mute Members",
	discordgo.PermissionVoiceDeafenMembers:  "Deafen Members",
	discordgo.PermissionVoiceMoveMembers:    "Move Members",
	discordgo.PermissionChangeNickname:      "Change Nickname",
	discordgo.PermissionManageNicknames:     "Manage Nicknames",
	discordgo.PermissionManageRoles:         "Manage Roles",
	discordgo.PermissionManageWebhooks:      "Manage Webhooks",
	discordgo.PermissionManageEvents:        "Manage Events",
	discordgo.PermissionModerateMembers:     "Moderate Members",
}

// PermissionName returns the display name of a permission bit.
func PermissionName(p int64) string {
	if name, ok := PermissionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", p)
}

// CheckError explains why a command is not available to the caller.
type CheckError struct {
	Command string
	Reason  string
}

func (e *CheckError) Error() string {
	if e.Command == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// GuildOnly rejects invocations from direct messages.
func GuildOnly() cmd.CheckFunc {
	return func(_ context.Context, inv *cmd.Invocation) error {
		c, ok := FromInvocation(inv)
		if !ok || c.GuildID == "" {
			return &CheckError{Command: inv.Name, Reason: "this command cannot be used in private messages"}
		}
		return nil
	}
}

// RequirePermissions lets the caller through when they hold any of perms.
// Administrators always pass.
func RequirePermissions(perms ...int64) cmd.CheckFunc {
	return func(_ context.Context, inv *cmd.Invocation) error {
		c, ok := FromInvocation(inv)
		if !ok {
			return &CheckError{Command: inv.Name, Reason: "no invocation context"}
		}
		if c.IsAdministrator() || len(perms) == 0 {
			return nil
		}
		for _, p := range perms {
			if c.Permissions&p != 0 {
				return nil
			}
		}
		names := make([]string, 0, len(perms))
		for _, p := range perms {
			names = append(names, PermissionName(p))
		}
		return &CheckError{
			Command: inv.Name,
			Reason:  fmt.Sprintf("you need at least one of the following permissions: `%s`", strings.Join(names, "`, `")),
		}
	}
}

// RequireAdmin lets only administrators and the developer through.
func RequireAdmin() cmd.CheckFunc {
	return func(_ context.Context, inv *cmd.Invocation) error {
		c, ok := FromInvocation(inv)
		if !ok || !c.IsAdministrator() {
			return &CheckError{Command: inv.Name, Reason: "administrators only"}
		}
		return nil
	}
}

// RequireDeveloper lets only the configured developer through.
func RequireDeveloper() cmd.CheckFunc {
	return func(_ context.Context, inv *cmd.Invocation) error {
		c, ok := FromInvocation(inv)
		if !ok || !c.IsDeveloper() {
			return &CheckError{Command: inv.Name, Reason: "developer only"}
		}
		return nil
	}
}
