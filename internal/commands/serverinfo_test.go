package commands_test

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/state/store/defaultstore"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/commands"
)

func TestNewServerInfoCommand(t *testing.T) {
	st := state.NewFromSession(session.New("Bot token"), defaultstore.New())
	cmd := commands.NewServerInfoCommand(zap.NewNop(), st)

	assert.Equal(t, "serverinfo", cmd.Name())
	assert.NotEmpty(t, cmd.Description())
	assert.Nil(t, cmd.Options())
}
