package core

import (
	"context"
	"testing"

	"github.com/keshon/better-help/internal/core/coretest"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func names(nodes []*cmd.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name())
	}
	return out
}

func TestFilterCommands(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()

	member := newTestContext(b, &coretest.Recorder{})
	admin := newTestContext(b, &coretest.Recorder{})
	admin.Permissions = discordgo.PermissionAdministrator
	developer := newTestContext(b, &coretest.Recorder{})
	developer.AuthorID = "dev"

	assert.Equal(t, []string{"help", "ping", "tag"}, names(b.FilterCommands(ctx, member, b.Commands(), false)))
	assert.Equal(t, []string{"help", "ping", "tag"}, names(b.FilterCommands(ctx, member, b.Registry().GetAll(), true)))

	subs := b.Registry().Get("tag").Commands()
	assert.Equal(t, []string{"add"}, names(b.FilterCommands(ctx, member, subs, true)))
	assert.Equal(t, []string{"add", "remove"}, names(b.FilterCommands(ctx, admin, subs, true)))
	assert.Equal(t, []string{"add", "remove"}, names(b.FilterCommands(ctx, developer, subs, true)))
}

func TestFilterCommandsKeepsOrderUnsorted(t *testing.T) {
	b := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := b.Register(cmd.Define(cmd.Definition{Name: name, Run: noop}))
		assert.NoError(t, err)
	}
	c := newTestContext(b, &coretest.Recorder{})

	assert.Equal(t, []string{"help", "zeta", "alpha", "mid"}, names(b.FilterCommands(context.Background(), c, b.Commands(), false)))
	assert.Equal(t, []string{"alpha", "help", "mid", "zeta"}, names(b.FilterCommands(context.Background(), c, b.Commands(), true)))
}

func TestChecks(t *testing.T) {
	b := New(WithDeveloperID("dev"))
	ctx := context.Background()

	tests := []struct {
		name    string
		check   cmd.CheckFunc
		c       *Context
		wantErr string
	}{
		{name: "guild only in guild", check: GuildOnly(), c: &Context{Bot: b, GuildID: "g"}},
		{name: "guild only in dm", check: GuildOnly(), c: &Context{Bot: b}, wantErr: "cannot be used in private messages"},
		{name: "permission held", check: RequirePermissions(discordgo.PermissionManageMessages), c: &Context{Bot: b, Permissions: discordgo.PermissionManageMessages}},
		{name: "permission missing", check: RequirePermissions(discordgo.PermissionManageMessages, discordgo.PermissionBanMembers), c: &Context{Bot: b}, wantErr: "`Manage Messages`, `Ban Members`"},
		{name: "admin bypasses permissions", check: RequirePermissions(discordgo.PermissionBanMembers), c: &Context{Bot: b, Permissions: discordgo.PermissionAdministrator}},
		{name: "admin", check: RequireAdmin(), c: &Context{Bot: b, AuthorID: "dev"}},
		{name: "not admin", check: RequireAdmin(), c: &Context{Bot: b, AuthorID: "u"}, wantErr: "administrators only"},
		{name: "developer", check: RequireDeveloper(), c: &Context{Bot: b, AuthorID: "dev"}},
		{name: "admin is not developer", check: RequireDeveloper(), c: &Context{Bot: b, Permissions: discordgo.PermissionAdministrator}, wantErr: "developer only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(ctx, &cmd.Invocation{Name: "x", Data: tt.c})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var checkErr *CheckError
			assert.ErrorAs(t, err, &checkErr)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPermissionName(t *testing.T) {
	assert.Equal(t, "Manage Server", PermissionName(discordgo.PermissionManageServer))
	assert.Equal(t, "0x0", PermissionName(0))
}
