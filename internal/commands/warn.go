package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/moderation"
)

// WarnCommand records a warning against a user.
type WarnCommand struct {
	logger *zap.Logger
	store  *moderation.Store
}

// NewWarnCommand creates a new WarnCommand.
func NewWarnCommand(logger *zap.Logger, store *moderation.Store) Command {
	return &WarnCommand{
		logger: logger.Named("warn_command"),
		store:  store,
	}
}

// Name returns the name of the command.
func (c *WarnCommand) Name() string {
	return "warn"
}

// Description returns the description of the command.
func (c *WarnCommand) Description() string {
	return "Warns a user and records the warning."
}

// Options returns the command options.
func (c *WarnCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.UserOption{
			OptionName:  "user",
			Description: "The user to warn",
			Required:    true,
		},
		&discord.StringOption{
			OptionName:  "reason",
			Description: "The reason for the warning",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *WarnCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !e.GuildID.IsValid() {
		return respondEphemeral(s, e, "This command only works in a server.")
	}

	var (
		userID discord.UserID
		reason string
	)
	for _, opt := range data.Options {
		switch opt.Name {
		case "user":
			sf, err := opt.SnowflakeValue()
			if err != nil {
				return fmt.Errorf("failed to parse user option: %w", err)
			}
			userID = discord.UserID(sf)
		case "reason":
			reason = opt.String()
		}
	}

	if !userID.IsValid() || reason == "" {
		return respondEphemeral(s, e, "Both a user and a reason are required.")
	}

	id, err := c.store.AddWarning(ctx, e.GuildID, userID, e.Member.User.ID, reason)
	if err != nil {
		c.logger.Error("Failed to record warning", zap.Error(err))
		if respErr := respondEphemeral(s, e, "Sorry, I couldn't record that warning."); respErr != nil {
			c.logger.Error("Failed to send warning failure response", zap.Error(respErr))
		}

		return err
	}

	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(
				fmt.Sprintf("Warned %s (warning #%d): %s", userID.Mention(), id, reason)),
			Flags: discord.EphemeralMessage,
		},
	})
}

func respondEphemeral(s *session.Session, e *gateway.InteractionCreateEvent, msg string) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(msg),
			Flags:   discord.EphemeralMessage,
		},
	})
}
