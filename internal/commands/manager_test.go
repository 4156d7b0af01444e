package commands_test

import (
	"context"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/commands"
)

// fakeCommand is a minimal Command implementation for manager tests.
type fakeCommand struct {
	name string
}

func (f *fakeCommand) Name() string { return f.name }

func (f *fakeCommand) Description() string { return "fake" }

func (f *fakeCommand) Options() []discord.CommandOption { return nil }
func (f *fakeCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	return nil
}

func TestNewCommandManager(t *testing.T) {
	appID := discord.AppID(12345)

	t.Run("SuccessWithUniqueCommands", func(t *testing.T) {
		ping := &fakeCommand{name: "ping"}
		help := &fakeCommand{name: "help"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{ping, help},
		})
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("ping")
		assert.True(t, ok)
		assert.Equal(t, ping, got)

		got, ok = cm.GetCommand("help")
		assert.True(t, ok)
		assert.Equal(t, help, got)

		_, ok = cm.GetCommand("nonexistent")
		assert.False(t, ok)

		assert.ElementsMatch(t, []string{"ping", "help"}, cm.CommandNames())
	})

	t.Run("NoCommands", func(t *testing.T) {
		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{},
		})
		require.NotNil(t, cm)

		_, ok := cm.GetCommand("any")
		assert.False(t, ok)
		assert.Empty(t, cm.CommandNames())
	})

	t.Run("NilCommandInSlice", func(t *testing.T) {
		valid := &fakeCommand{name: "valid"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{nil, valid, nil},
		})
		require.NotNil(t, cm)

		got, ok := cm.GetCommand("valid")
		assert.True(t, ok)
		assert.Equal(t, valid, got)

		assert.Len(t, cm.CommandNames(), 1)
	})

	t.Run("DuplicateCommandNames", func(t *testing.T) {
		first := &fakeCommand{name: "dup"}
		second := &fakeCommand{name: "dup"}
		unique := &fakeCommand{name: "unique"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        zap.NewNop(),
			Commands:      []commands.Command{first, second, unique},
		})
		require.NotNil(t, cm)

		// First registration wins.
		got, ok := cm.GetCommand("dup")
		assert.True(t, ok)
		assert.Same(t, first, got)

		got, ok = cm.GetCommand("unique")
		assert.True(t, ok)
		assert.Equal(t, unique, got)
	})

	t.Run("NilLogger", func(t *testing.T) {
		cmd := &fakeCommand{name: "testlog"}

		cm := commands.NewCommandManager(commands.CommandManagerParams{
			ApplicationID: appID,
			Logger:        nil,
			Commands:      []commands.Command{cmd},
		})
		require.NotNil(t, cm)

		_, ok := cm.GetCommand("testlog")
		assert.True(t, ok)
	})
}
