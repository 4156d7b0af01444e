// Package joke provides the DeepSeek-backed joke analysis service.
package joke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/mortisbot/mortis/internal/config"
)

const (
	// MaxJokeLength is the longest input the analyzer accepts, in characters.
	MaxJokeLength = 500

	defaultModel       = "deepseek-chat"
	defaultMaxTokens   = 150
	defaultTemperature = 0.7
	defaultSignoff     = "Utterly side-splitting."

	analysisPromptFormat = "You are a professional joke analyst. In a short, humorous style, " +
		"break down why the following joke lands: its setup and punchline structure, the " +
		"expectation it subverts, and any wordplay. If the text is not a joke, find the humor " +
		"in it anyway and keep the response tactful. Stay under 100 words and end with '%s'"
)

// Analysis errors surfaced to callers so they can pick the right user-facing reply.
var (
	ErrJokeEmpty   = errors.New("joke text is empty")
	ErrJokeTooLong = fmt.Errorf("joke text exceeds %d characters", MaxJokeLength)
	ErrEmptyAnswer = errors.New("analysis backend returned an empty response")
)

// CompletionClient is the subset of the chat-completions client the service
// needs. *openai.Client satisfies it.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service analyzes jokes through a DeepSeek chat-completions endpoint.
type Service struct {
	logger      *zap.Logger
	client      CompletionClient
	model       string
	maxTokens   int
	temperature float32
	prompt      string
	analyses    AnalysisCache
	ignored     IgnoreCache
}

// NewService creates a new joke analysis Service.
func NewService(
	logger *zap.Logger,
	cfg *config.Config,
	client CompletionClient,
	analyses AnalysisCache,
	ignored IgnoreCache,
) *Service {
	model := cfg.DeepSeek.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.DeepSeek.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := cfg.DeepSeek.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	signoff := cfg.DeepSeek.Signoff
	if signoff == "" {
		signoff = defaultSignoff
	}

	return &Service{
		logger:      logger.Named("joke_service"),
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		prompt:      fmt.Sprintf(analysisPromptFormat, signoff),
		analyses:    analyses,
		ignored:     ignored,
	}
}

// Prompt returns the assembled system prompt.
func (s *Service) Prompt() string {
	return s.prompt
}

// Analyze runs a joke through the analysis backend. cacheKey is usually the
// originating message ID; pass "" to bypass the cache (slash command path,
// where the same text is unlikely to repeat).
func (s *Service) Analyze(ctx context.Context, cacheKey, jokeText string) (string, error) {
	jokeText = strings.TrimSpace(jokeText)
	if jokeText == "" {
		return "", ErrJokeEmpty
	}
	if utf8.RuneCountInString(jokeText) > MaxJokeLength {
		return "", ErrJokeTooLong
	}

	if cacheKey != "" {
		if cached, ok := s.analyses.Get(cacheKey); ok {
			s.logger.Debug("Analysis cache hit", zap.String("cacheKey", cacheKey))

			return cached, nil
		}
	}

	request := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.prompt},
			{Role: openai.ChatMessageRoleUser, Content: jokeText},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	response, err := s.client.CreateChatCompletion(ctx, request)
	if err != nil {
		s.logger.Error("Analysis request failed", zap.Error(err))

		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", ErrEmptyAnswer
	}

	analysis := strings.TrimSpace(response.Choices[0].Message.Content)
	if analysis == "" {
		return "", ErrEmptyAnswer
	}

	s.logger.Info("Joke analyzed",
		zap.String("model", s.model),
		zap.Int("promptTokens", response.Usage.PromptTokens),
		zap.Int("completionTokens", response.Usage.CompletionTokens),
	)

	if cacheKey != "" {
		s.analyses.Add(cacheKey, analysis)
	}

	return analysis, nil
}
