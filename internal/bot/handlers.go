package bot

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"
)

// onInteractionCreate routes slash command interactions to the registered
// command by name.
func (b *Bot) onInteractionCreate(e *gateway.InteractionCreateEvent) {
	data, ok := e.Data.(*discord.CommandInteraction)
	if !ok {
		b.Logger.Debug("Received unhandled interaction type", zap.Any("type", e.Data))

		return
	}

	user := "unknown"
	if e.Member != nil {
		user = e.Member.User.Username
	}
	b.Logger.Info("Received slash command",
		zap.String("commandName", data.Name),
		zap.String("user", user),
	)

	cmd, ok := b.CmdManager.GetCommand(data.Name)
	if !ok {
		b.Logger.Warn("Unknown command", zap.String("commandName", data.Name))
		b.respondError(e, "Command not found.")

		return
	}

	if err := cmd.Execute(context.Background(), b.Session, e, data); err != nil {
		b.Logger.Error("Error executing command",
			zap.String("commandName", data.Name),
			zap.Error(err),
		)
		b.respondError(e, "An error occurred while executing the command.")

		return
	}

	b.Logger.Info("Command executed successfully", zap.String("commandName", data.Name))
}

// onReactionAdd forwards reaction events to the joke service. Analysis can
// take several seconds, so it runs off the gateway handler goroutine.
func (b *Bot) onReactionAdd(e *gateway.MessageReactionAddEvent) {
	go func() {
		if err := b.JokeService.HandleReaction(context.Background(), b.Session, e); err != nil {
			b.Logger.Error("Reaction-triggered analysis failed",
				zap.Stringer("messageID", e.MessageID),
				zap.Error(err),
			)
		}
	}()
}

// respondError answers an interaction with an ephemeral error message. A
// failure here usually means the command already responded.
func (b *Bot) respondError(e *gateway.InteractionCreateEvent, msg string) {
	err := b.Session.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(msg),
			Flags:   discord.EphemeralMessage,
		},
	})
	if err != nil {
		b.Logger.Debug("Failed to send error response", zap.Error(err))
	}
}
