package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"
)

const blurple = 0x5865F2

// ServerInfoCommand replies with an embed describing the current guild.
// Guild data comes from the state cache so repeat invocations skip the API.
type ServerInfoCommand struct {
	logger *zap.Logger
	state  *state.State
}

// NewServerInfoCommand creates a new ServerInfoCommand instance.
func NewServerInfoCommand(logger *zap.Logger, st *state.State) Command {
	return &ServerInfoCommand{
		logger: logger.Named("serverinfo_command"),
		state:  st,
	}
}

// Name returns the name of the command.
func (c *ServerInfoCommand) Name() string {
	return "serverinfo"
}

// Description returns the description of the command.
func (c *ServerInfoCommand) Description() string {
	return "Shows information about this server."
}

// Options returns the command options.
func (c *ServerInfoCommand) Options() []discord.CommandOption {
	return nil
}

// Execute runs the command.
func (c *ServerInfoCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !e.GuildID.IsValid() {
		return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Content: option.NewNullableString("This command only works in a server."),
				Flags:   discord.EphemeralMessage,
			},
		})
	}

	guild, err := c.state.Guild(e.GuildID)
	if err != nil {
		c.logger.Error("Failed to fetch guild", zap.Stringer("guildID", e.GuildID), zap.Error(err))

		return fmt.Errorf("failed to fetch guild %s: %w", e.GuildID, err)
	}

	// Cached guilds carry no approximate counts, those only come from the
	// REST endpoint.
	members := guild.ApproximateMembers
	if counted, err := c.state.GuildWithCount(e.GuildID); err == nil {
		members = counted.ApproximateMembers
	}

	embed := discord.Embed{
		Title: guild.Name,
		Color: blurple,
		Fields: []discord.EmbedField{
			{Name: "Server ID", Value: guild.ID.String(), Inline: true},
			{Name: "Owner", Value: guild.OwnerID.Mention(), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", members), Inline: true},
			{Name: "Created", Value: guild.CreatedAt().Format("2006-01-02"), Inline: true},
		},
	}
	if guild.Icon != "" {
		embed.Thumbnail = &discord.EmbedThumbnail{URL: guild.IconURL()}
	}

	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{embed},
		},
	})
}
