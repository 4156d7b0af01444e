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

// WarningsCommand lists the warnings recorded for a user.
type WarningsCommand struct {
	logger *zap.Logger
	store  *moderation.Store
}

// NewWarningsCommand creates a new WarningsCommand.
func NewWarningsCommand(logger *zap.Logger, store *moderation.Store) Command {
	return &WarningsCommand{
		logger: logger.Named("warnings_command"),
		store:  store,
	}
}

// Name returns the name of the command.
func (c *WarningsCommand) Name() string {
	return "warnings"
}

// Description returns the description of the command.
func (c *WarningsCommand) Description() string {
	return "Lists the warnings recorded for a user."
}

// Options returns the command options.
func (c *WarningsCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.UserOption{
			OptionName:  "user",
			Description: "The user whose warnings to list",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *WarningsCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
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

	warnings, err := c.store.Warnings(ctx, e.GuildID, userID)
	if err != nil {
		c.logger.Error("Failed to list warnings", zap.Error(err))
		if respErr := respondEphemeral(s, e, "Sorry, I couldn't look up those warnings."); respErr != nil {
			c.logger.Error("Failed to send warnings failure response", zap.Error(respErr))
		}

		return err
	}

	if len(warnings) == 0 {
		return respondEphemeral(s, e, fmt.Sprintf("%s has no warnings.", userID.Mention()))
	}

	embed := discord.Embed{
		Title: fmt.Sprintf("Warnings (%d)", len(warnings)),
		Color: blurple,
	}
	for _, w := range warnings {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  fmt.Sprintf("#%d - %s", w.ID, w.CreatedAt.Format("2006-01-02 15:04")),
			Value: fmt.Sprintf("%s (by %s)", w.Reason, w.ModeratorID.Mention()),
		})
	}

	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(userID.Mention()),
			Embeds:  &[]discord.Embed{embed},
			Flags:   discord.EphemeralMessage,
		},
	})
}

// userOption extracts the required "user" option.
func userOption(data *discord.CommandInteraction) (discord.UserID, error) {
	for _, opt := range data.Options {
		if opt.Name == "user" {
			sf, err := opt.SnowflakeValue()
			if err != nil {
				return 0, fmt.Errorf("failed to parse user option: %w", err)
			}

			return discord.UserID(sf), nil
		}
	}

	return 0, nil
}
