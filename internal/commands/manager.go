package commands

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CommandManagerParams holds dependencies for NewCommandManager.
type CommandManagerParams struct {
	fx.In

	Session       *session.Session `optional:"true"`
	ApplicationID discord.AppID
	Logger        *zap.Logger `optional:"true"`
	Commands      []Command   `group:"commands"`
}

// CommandManager indexes the registered commands and handles their
// registration with Discord.
type CommandManager struct {
	session       *session.Session
	applicationID discord.AppID
	logger        *zap.Logger
	commands      map[string]Command
}

// NewCommandManager creates a new CommandManager from the commands collected
// through the Fx value group. On duplicate names the first registration wins.
func NewCommandManager(params CommandManagerParams) *CommandManager {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cm := &CommandManager{
		session:       params.Session,
		applicationID: params.ApplicationID,
		logger:        logger,
		commands:      make(map[string]Command, len(params.Commands)),
	}

	for _, cmd := range params.Commands {
		if cmd == nil {
			continue
		}
		if _, exists := cm.commands[cmd.Name()]; exists {
			logger.Warn("Duplicate command name, keeping first registration",
				zap.String("commandName", cmd.Name()))

			continue
		}
		cm.commands[cmd.Name()] = cmd
	}

	logger.Info("Created CommandManager", zap.Int("commandCount", len(cm.commands)))

	return cm
}

// GetCommand retrieves a registered command by its name.
func (cm *CommandManager) GetCommand(name string) (Command, bool) {
	cmd, ok := cm.commands[name]

	return cmd, ok
}

// CommandNames returns the names of all indexed commands.
func (cm *CommandManager) CommandNames() []string {
	names := make([]string, 0, len(cm.commands))
	for name := range cm.commands {
		names = append(names, name)
	}

	return names
}

func (cm *CommandManager) createData() []api.CreateCommandData {
	cmds := make([]api.CreateCommandData, 0, len(cm.commands))
	for _, cmd := range cm.commands {
		cmds = append(cmds, api.CreateCommandData{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Options:     cmd.Options(),
		})
		cm.logger.Debug("Preparing to register command", zap.String("commandName", cmd.Name()))
	}

	return cmds
}

// RegisterCommands registers all indexed commands with Discord. With guild
// IDs the registration is scoped to those guilds (instant propagation, the
// development path); with none it overwrites the global command set.
func (cm *CommandManager) RegisterCommands(guildIDs []discord.GuildID) {
	cmds := cm.createData()
	if len(cmds) == 0 {
		cm.logger.Info("No commands to register.")

		return
	}

	if len(guildIDs) == 0 {
		cm.logger.Info("No guild IDs configured, registering commands globally")
		registered, err := cm.session.BulkOverwriteCommands(cm.applicationID, cmds)
		if err != nil {
			cm.logger.Error("Failed to bulk overwrite global commands",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
			)

			return
		}
		cm.logger.Info("Successfully registered global slash commands",
			zap.Int("count", len(registered)))

		return
	}

	for _, guildID := range guildIDs {
		registered, err := cm.session.BulkOverwriteGuildCommands(cm.applicationID, guildID, cmds)
		if err != nil {
			cm.logger.Error("Failed to bulk overwrite commands for guild",
				zap.Error(err),
				zap.Stringer("applicationID", cm.applicationID),
				zap.Stringer("guildID", guildID),
			)

			continue
		}
		cm.logger.Info("Successfully registered slash commands for guild",
			zap.Int("count", len(registered)),
			zap.Stringer("guildID", guildID),
		)
	}
}

// UnregisterCommands removes the command set for the specified guilds by
// overwriting it with an empty one. Global commands are left alone so a
// restart does not blank the production command set.
func (cm *CommandManager) UnregisterCommands(guildIDs []discord.GuildID) {
	for _, guildID := range guildIDs {
		_, err := cm.session.BulkOverwriteGuildCommands(cm.applicationID, guildID, []api.CreateCommandData{})
		if err != nil {
			cm.logger.Error("Failed to unregister commands for guild",
				zap.Error(err),
				zap.Stringer("guildID", guildID),
			)

			continue
		}
		cm.logger.Info("Unregistered slash commands for guild", zap.Stringer("guildID", guildID))
	}
}
