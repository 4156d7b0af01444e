package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file. Secrets
// should come from the environment (or a .env file) rather than being
// committed in config.yaml.
const (
	EnvBotToken    = "DISCORD_BOT_TOKEN"
	EnvDeepSeekKey = "DEEPSEEK_API_KEY"
)

// DiscordConfig stores Discord specific configurations.
type DiscordConfig struct {
	BotToken      string             `yaml:"bot_token"`
	ApplicationID *discord.Snowflake `yaml:"application_id"`
	GuildIDs      []string           `yaml:"guild_ids"`
	Status        string             `yaml:"status"`
}

// DeepSeekConfig stores the settings for the joke analysis backend.
type DeepSeekConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	Signoff     string  `yaml:"signoff"`

	AnalysisCacheSize int `yaml:"analysis_cache_size"`
	IgnoreCacheSize   int `yaml:"ignore_cache_size"`
}

// DatabaseConfig stores the settings for the local SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Config stores the application configuration.
type Config struct {
	Discord  DiscordConfig  `yaml:"discord"`
	DeepSeek DeepSeekConfig `yaml:"deepseek"`
	Database DatabaseConfig `yaml:"database"`
	LogLevel string         `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path. A .env file
// in the working directory is folded into the environment first, and the
// secret-bearing fields are then overridden from the environment if set.
func LoadConfig(filePath string) (*Config, error) {
	// Missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if token := os.Getenv(EnvBotToken); token != "" {
		c.Discord.BotToken = token
	}
	if key := os.Getenv(EnvDeepSeekKey); key != "" {
		c.DeepSeek.APIKey = key
	}
}

func (c *Config) validate() error {
	if c.Discord.BotToken == "" {
		return errors.New("discord bot token is not set (config discord.bot_token or " + EnvBotToken + ")")
	}
	if c.Discord.ApplicationID == nil || *c.Discord.ApplicationID == 0 {
		return errors.New("discord application ID is not set in config")
	}

	return nil
}
