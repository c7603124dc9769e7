package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tracklytic/internal/config"

	"github.com/avast/retry-go"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("gemini api key is not set")
	ErrEmptyResponse = errors.New("model returned no text")
	ErrBlocked       = errors.New("prompt was blocked by the model")
)

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	models *genai.Models
	cfg    config.InsightsConfig
	logger *slog.Logger
}

// NewGeminiClient authenticates with the configured API key. A non-empty
// GeminiBaseURL replaces the public endpoint.
func NewGeminiClient(ctx context.Context, cfg config.InsightsConfig, logger *slog.Logger) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.GeminiBaseURL,
			APIVersion: "v1beta",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{models: client.Models, cfg: cfg, logger: logger}, nil
}

func (c *GeminiClient) Model() string {
	return c.cfg.Model
}

// GenerateAdvice sends prompt as a single user turn. Rate limited calls are
// retried; any other error is returned at once.
func (c *GeminiClient) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	contents := genai.Text(prompt)

	var resp *genai.GenerateContentResponse
	err := retry.Do(
		func() error {
			var err error
			resp, err = c.models.GenerateContent(ctx, c.cfg.Model, contents, nil)
			return err
		},
		retry.RetryIf(func(err error) bool {
			if statusCode(err) == http.StatusTooManyRequests {
				c.logger.Warn("gemini rate limited, will retry", "error", err)
				return true
			}
			return false
		}),
		retry.Context(ctx),
		retry.Attempts(max(c.cfg.RetryAttempts, 1)),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	return responseText(resp)
}

// statusCode returns the HTTP status of a Gemini API error, or 0.
func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
