// Package sentiment classifies content text as Positive, Negative or
// Neutral via an OpenAI-compatible API. Classification runs synchronously
// as a pre-persist step of the content save pipeline; any failure degrades
// to Neutral so a classifier outage never blocks a save.
package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/newsroom-platform-api/internal/config"
	"github.com/newsroom-platform-api/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

// Classifier tags content text with a sentiment.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Sentiment, error)
}

const systemPrompt = `Classify the sentiment of the following text. ` +
	`Answer with exactly one word: Positive, Negative or Neutral.`

// OpenAIClassifier calls any OpenAI-compatible chat completion endpoint.
type OpenAIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClassifier creates a classifier backed by an OpenAI-compatible
// API. Set BaseURL in cfg to point at a local server; leave empty for
// api.openai.com.
func NewOpenAIClassifier(cfg *config.SentimentConfig) *OpenAIClassifier {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClassifier{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Classify sends the text to the model and parses the one-word verdict.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (models.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return models.SentimentNeutral, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return models.SentimentNeutral, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.SentimentNeutral, fmt.Errorf("empty response from model %q", c.model)
	}

	return parseVerdict(resp.Choices[0].Message.Content)
}

func parseVerdict(answer string) (models.Sentiment, error) {
	switch strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(answer), "."))) {
	case "positive":
		return models.SentimentPositive, nil
	case "negative":
		return models.SentimentNegative, nil
	case "neutral":
		return models.SentimentNeutral, nil
	default:
		return models.SentimentNeutral, fmt.Errorf("unexpected classifier answer %q", answer)
	}
}

// Static always returns the same sentiment. Used when the classifier is
// disabled and as a test double.
type Static struct {
	Result models.Sentiment
}

// Classify returns the fixed result.
func (s Static) Classify(ctx context.Context, text string) (models.Sentiment, error) {
	return s.Result, nil
}

// FromConfig picks the configured classifier implementation.
func FromConfig(cfg *config.SentimentConfig) Classifier {
	if !cfg.Enabled {
		return Static{Result: models.SentimentNeutral}
	}
	return NewOpenAIClassifier(cfg)
}
