// Package joke provides joke analysis infrastructure and Fx modules.
package joke

import (
	"errors"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/config"
)

const defaultBaseURL = "https://api.deepseek.com"

// Module provides joke analysis dependencies.
var Module = fx.Module("joke",
	fx.Provide(
		fx.Annotate(NewDeepSeekClient, fx.As(new(CompletionClient))),
		NewAnalysisCacheProvider,
		NewIgnoreCacheProvider,
		NewService,
	),
)

// NewDeepSeekClient creates a chat-completions client pointed at the DeepSeek
// endpoint. DeepSeek speaks the OpenAI wire format, so the stock client works
// with a swapped base URL.
func NewDeepSeekClient(cfg *config.Config, logger *zap.Logger) (*openai.Client, error) {
	if cfg.DeepSeek.APIKey == "" {
		logger.Error("DeepSeek API key is not configured (deepseek.api_key or " + config.EnvDeepSeekKey + ")")

		return nil, errors.New("DeepSeek API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.DeepSeek.APIKey)
	clientConfig.BaseURL = cfg.DeepSeek.BaseURL
	if clientConfig.BaseURL == "" {
		clientConfig.BaseURL = defaultBaseURL
	}

	logger.Info("DeepSeek client created", zap.String("baseURL", clientConfig.BaseURL))

	return openai.NewClientWithConfig(clientConfig), nil
}

// NewAnalysisCacheProvider creates an AnalysisCache with config-derived size.
func NewAnalysisCacheProvider(cfg *config.Config, logger *zap.Logger) AnalysisCache {
	size := cfg.DeepSeek.AnalysisCacheSize
	if size <= 0 {
		logger.Warn("DeepSeek AnalysisCacheSize is not configured or is invalid, defaulting to 100",
			zap.Int("configuredSize", size))
		size = 100
	}

	return NewAnalysisCache(size)
}

// NewIgnoreCacheProvider creates an IgnoreCache with config-derived size.
func NewIgnoreCacheProvider(cfg *config.Config, logger *zap.Logger) IgnoreCache {
	size := cfg.DeepSeek.IgnoreCacheSize
	if size <= 0 {
		logger.Warn("DeepSeek IgnoreCacheSize is not configured or is invalid, defaulting to 1000",
			zap.Int("configuredSize", size))
		size = 1000
	}

	return NewIgnoreCache(size)
}
