package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
)

// Command is a single slash command: the registration data the manager
// uploads to Discord plus the handler invoked when a user runs it.
// Implementations are collected through the "commands" Fx value group and
// indexed by Name, so names must be unique across the group.
type Command interface {
	// Name is the slash command name as registered with Discord.
	Name() string
	// Description is the short text shown in the Discord command picker.
	Description() string
	// Options declares the command's parameters, nil when it takes none.
	Options() []discord.CommandOption
	// Execute handles one invocation, already matched by name. Replies go
	// out through s as interaction responses.
	Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error
}
