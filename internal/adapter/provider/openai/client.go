// Package openai implements the completion provider against an
// OpenAI-compatible chat-completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/holyghost-backend/internal/provider"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config holds the endpoint and generation parameters.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client calls a chat-completions endpoint and classifies failures
// as transient or fatal for the caller's retry loop.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a completion client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "openai"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion request and returns the reply text.
func (c *Client) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return "", provider.NewFatalError(fmt.Errorf("openai: marshal request: %w", err))
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", provider.NewFatalError(fmt.Errorf("openai: create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	c.log.DebugContext(ctx, "completion request", slog.String("model", c.cfg.Model))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", provider.NewTransientError(fmt.Errorf("openai: request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", provider.NewTransientError(fmt.Errorf("openai: read body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", provider.NewFatalError(fmt.Errorf("openai: decode json: %w: %w", provider.ErrMalformedReply, err))
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", provider.NewFatalError(fmt.Errorf("openai: %w: empty choices", provider.ErrMalformedReply))
	}

	content := parsed.Choices[0].Message.Content

	c.log.DebugContext(ctx, "completion response",
		slog.Int("status", resp.StatusCode),
		slog.Int("content_len", len(content)),
	)

	return content, nil
}

// classifyStatus maps a non-200 HTTP status to a transient or fatal error.
// 429 and 5xx are transient; everything else (400, 401, 403, ...) is fatal.
func classifyStatus(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	err := fmt.Errorf("openai: status %d: %s", status, msg)

	if status == http.StatusTooManyRequests || status >= 500 {
		return provider.NewTransientError(err)
	}
	return provider.NewFatalError(err)
}
