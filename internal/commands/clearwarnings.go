package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/moderation"
)

// ClearWarningsCommand deletes all warnings recorded for a user.
type ClearWarningsCommand struct {
	logger *zap.Logger
	store  *moderation.Store
}

// NewClearWarningsCommand creates a new ClearWarningsCommand.
func NewClearWarningsCommand(logger *zap.Logger, store *moderation.Store) Command {
	return &ClearWarningsCommand{
		logger: logger.Named("clearwarnings_command"),
		store:  store,
	}
}

// Name returns the name of the command.
func (c *ClearWarningsCommand) Name() string {
	return "clearwarnings"
}

// Description returns the description of the command.
func (c *ClearWarningsCommand) Description() string {
	return "Clears all warnings recorded for a user."
}

// Options returns the command options.
func (c *ClearWarningsCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.UserOption{
			OptionName:  "user",
			Description: "The user whose warnings to clear",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *ClearWarningsCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !e.GuildID.IsValid() {
		return respondEphemeral(s, e, "This command only works in a server.")
	}

	userID, err := userOption(data)
	if err != nil {
		return err
	}
	if !userID.IsValid() {
		return respondEphemeral(s, e, "A user is required.")
	}

	removed, err := c.store.ClearWarnings(ctx, e.GuildID, userID)
	if err != nil {
		c.logger.Error("Failed to clear warnings", zap.Error(err))
		if respErr := respondEphemeral(s, e, "Sorry, I couldn't clear those warnings."); respErr != nil {
			c.logger.Error("Failed to send clearwarnings failure response", zap.Error(respErr))
		}

		return err
	}

	return respondEphemeral(s, e,
		fmt.Sprintf("Cleared %d warning(s) for %s.", removed, userID.Mention()))
}
