package commands

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/joke"
)

// AnalyzeJokeCommand handles the /analyzejoke command. It sends the supplied
// joke to the analysis service and replies with a report embed.
type AnalyzeJokeCommand struct {
	logger  *zap.Logger
	service *joke.Service
}

// NewAnalyzeJokeCommand creates a new AnalyzeJokeCommand.
func NewAnalyzeJokeCommand(logger *zap.Logger, service *joke.Service) Command {
	return &AnalyzeJokeCommand{
		logger:  logger.Named("analyzejoke_command"),
		service: service,
	}
}

// Name returns the name of the command.
func (c *AnalyzeJokeCommand) Name() string {
	return "analyzejoke"
}

// Description returns the description of the command.
func (c *AnalyzeJokeCommand) Description() string {
	return "Analyzes why a joke is funny."
}

// Options returns the command options.
func (c *AnalyzeJokeCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "joke",
			Description: "The joke to analyze",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *AnalyzeJokeCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	var jokeText string
	for _, opt := range data.Options {
		if opt.Name == "joke" {
			jokeText = opt.String()
		}
	}

	if jokeText == "" {
		return respondEphemeral(s, e, "The joke cannot be empty.")
	}
	if utf8.RuneCountInString(jokeText) > joke.MaxJokeLength {
		return respondEphemeral(s, e,
			fmt.Sprintf("That joke is too long! Please keep it under %d characters.", joke.MaxJokeLength))
	}

	// Analysis can take longer than the 3 seconds Discord allows for the
	// initial response, so defer first and edit the reply when done.
	if err := s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.DeferredMessageInteractionWithSource,
	}); err != nil {
		return fmt.Errorf("failed to defer interaction response: %w", err)
	}

	analysis, err := c.service.Analyze(ctx, "", jokeText)
	if err != nil {
		c.logger.Error("Joke analysis failed", zap.Error(err))
		errMsg := "Sorry, I couldn't analyze that one. Please try again later."
		if errors.Is(err, joke.ErrJokeEmpty) {
			errMsg = "The joke cannot be empty."
		}
		if _, editErr := s.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
			Content: option.NewNullableString(errMsg),
		}); editErr != nil {
			c.logger.Error("Failed to edit interaction response after analysis failure", zap.Error(editErr))
		}

		return err
	}

	embed := joke.NewReportEmbed("Joke analysis report", analysis)
	embed.Fields = append(embed.Fields, discord.EmbedField{
		Name:  "Original joke",
		Value: "```" + joke.Truncate(jokeText, 200) + "```",
	})

	if _, err := s.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}); err != nil {
		return fmt.Errorf("failed to send analysis report: %w", err)
	}

	return nil
}
