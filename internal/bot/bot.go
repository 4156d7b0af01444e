// Package bot provides bot service infrastructure and lifecycle wiring.
package bot

import (
	"context"
	"errors"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/commands"
	"github.com/mortisbot/mortis/internal/config"
	"github.com/mortisbot/mortis/internal/joke"
)

// Bot represents the Discord bot.
type Bot struct {
	Session     *session.Session
	Config      *config.Config
	CmdManager  *commands.CommandManager
	JokeService *joke.Service
	Logger      *zap.Logger
}

// NewBotParameters holds dependencies for NewBot.
type NewBotParameters struct {
	fx.In

	Cfg         *config.Config
	S           *session.Session
	CmdManager  *commands.CommandManager
	JokeService *joke.Service
	Logger      *zap.Logger
}

// NewBot creates and initializes a new Bot and attaches its gateway handlers.
func NewBot(params NewBotParameters) (*Bot, error) {
	if params.S == nil {
		return nil, errors.New("session provided to NewBot is nil")
	}
	if params.Cfg == nil {
		return nil, errors.New("config provided to NewBot is nil")
	}
	if params.CmdManager == nil {
		return nil, errors.New("command manager provided to NewBot is nil")
	}

	b := &Bot{
		Session:     params.S,
		Config:      params.Cfg,
		CmdManager:  params.CmdManager,
		JokeService: params.JokeService,
		Logger:      params.Logger,
	}

	params.S.AddHandler(b.onInteractionCreate)
	params.S.AddHandler(b.onReactionAdd)

	params.Logger.Info("NewBot created successfully")

	return b, nil
}

// Start registers the slash commands and sets the configured presence.
// Session opening is handled by the Fx lifecycle.
func (b *Bot) Start(ctx context.Context) error {
	guildIDs := b.guildIDs()
	b.CmdManager.RegisterCommands(guildIDs)
	b.Logger.Info("Slash command registration initiated",
		zap.Int("guildCount", len(guildIDs)),
		zap.Strings("commands", b.CmdManager.CommandNames()),
	)

	if status := b.Config.Discord.Status; status != "" {
		err := b.Session.Gateway().Send(ctx, &gateway.UpdatePresenceCommand{
			Status: discord.OnlineStatus,
			Activities: []discord.Activity{
				{Name: status, Type: discord.WatchingActivity},
			},
		})
		if err != nil {
			// Presence is cosmetic; keep starting.
			b.Logger.Warn("Failed to set presence", zap.Error(err))
		}
	}

	return nil
}

// Stop removes the guild-scoped command registrations.
func (b *Bot) Stop(ctx context.Context) error {
	b.CmdManager.UnregisterCommands(b.guildIDs())

	return nil
}

func (b *Bot) guildIDs() []discord.GuildID {
	var guildIDs []discord.GuildID
	for _, idStr := range b.Config.Discord.GuildIDs {
		sf, err := discord.ParseSnowflake(idStr)
		if err != nil {
			b.Logger.Error("Failed to parse guild ID, skipping",
				zap.String("guildID", idStr), zap.Error(err))

			continue
		}
		guildIDs = append(guildIDs, discord.GuildID(sf))
	}

	if len(guildIDs) == 0 {
		b.Logger.Warn("No guild IDs configured, commands will be registered globally")
	}

	return guildIDs
}
