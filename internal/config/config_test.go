package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortisbot/mortis/internal/config"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := writeConfigFile(t, `
discord:
  bot_token: "token-from-file"
  application_id: 123456789
  guild_ids:
    - "111"
    - "222"
  status: "watching for jokes"
deepseek:
  api_key: "sk-test"
  base_url: "https://api.deepseek.com"
  model: "deepseek-chat"
  max_tokens: 150
  temperature: 0.7
database:
  path: "data/mortis.db"
log_level: "debug"
`)

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "token-from-file", cfg.Discord.BotToken)
		require.NotNil(t, cfg.Discord.ApplicationID)
		assert.EqualValues(t, 123456789, *cfg.Discord.ApplicationID)
		assert.Equal(t, []string{"111", "222"}, cfg.Discord.GuildIDs)
		assert.Equal(t, "deepseek-chat", cfg.DeepSeek.Model)
		assert.Equal(t, 150, cfg.DeepSeek.MaxTokens)
		assert.InDelta(t, 0.7, cfg.DeepSeek.Temperature, 0.001)
		assert.Equal(t, "data/mortis.db", cfg.Database.Path)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("EnvOverridesSecrets", func(t *testing.T) {
		path := writeConfigFile(t, `
discord:
  bot_token: "token-from-file"
  application_id: 123456789
deepseek:
  api_key: "key-from-file"
`)

		t.Setenv(config.EnvBotToken, "token-from-env")
		t.Setenv(config.EnvDeepSeekKey, "key-from-env")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "token-from-env", cfg.Discord.BotToken)
		assert.Equal(t, "key-from-env", cfg.DeepSeek.APIKey)
	})

	t.Run("TokenOnlyFromEnv", func(t *testing.T) {
		path := writeConfigFile(t, `
discord:
  application_id: 123456789
`)

		t.Setenv(config.EnvBotToken, "token-from-env")

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "token-from-env", cfg.Discord.BotToken)
	})

	t.Run("MissingToken", func(t *testing.T) {
		path := writeConfigFile(t, `
discord:
  application_id: 123456789
`)

		t.Setenv(config.EnvBotToken, "")

		_, err := config.LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bot token")
	})

	t.Run("MissingApplicationID", func(t *testing.T) {
		path := writeConfigFile(t, `
discord:
  bot_token: "token"
`)

		_, err := config.LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "application ID")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfigFile(t, "discord: [not: a: mapping")

		_, err := config.LoadConfig(path)
		require.Error(t, err)
	})
}
