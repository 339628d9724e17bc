// Package quiz implements AI quiz generation from journal content:
// prompt construction, retry with backoff, JSON extraction, and shape
// validation, with a typed error for every failure path.
package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/internal/provider"
)

const defaultQuestionCount = 5

type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// Config holds the service's own knobs; endpoint parameters live with the
// completion client.
type Config struct {
	// APIKey is checked before any network call; an empty value makes every
	// Generate call fail with KindConfiguration.
	APIKey      string
	MaxAttempts int
	BackoffBase time.Duration
}

// Service generates multiple-choice questions from a user's impressions
// or a free-text topic.
type Service struct {
	completer completer
	cfg       Config
	log       *slog.Logger

	// sleep is swapped in tests to observe backoff delays.
	sleep func(time.Duration)
}

// NewService creates a new Quiz service.
func NewService(log *slog.Logger, completer completer, cfg Config) *Service {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 2 * time.Second
	}

	return &Service{
		completer: completer,
		cfg:       cfg,
		log:       log.With("service", "quiz"),
		sleep:     time.Sleep,
	}
}

// GenerateInput selects the generation mode: impressions mode when
// Impressions is non-empty, topic mode when Topic is non-blank. Categories
// resolve category IDs to names inside the prompt.
type GenerateInput struct {
	Impressions   []domain.Impression
	Categories    []domain.Category
	Topic         string
	QuestionCount int
}

// Result is the successful outcome of a Generate call.
type Result struct {
	Questions      []domain.QuizQuestion
	TotalQuestions int
}

// Generate builds the prompt, calls the completion endpoint with retries,
// and parses and validates the reply. Every failure is a *Error; transient
// endpoint failures are retried with exponential backoff, everything else
// fails the call immediately.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if s.cfg.APIKey == "" {
		return nil, newError(KindConfiguration, "completion API key is not configured")
	}

	topic := strings.TrimSpace(input.Topic)
	if len(input.Impressions) == 0 && topic == "" {
		return nil, newError(KindInput, "no impressions or topic provided")
	}

	count := input.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}

	var prompt string
	if len(input.Impressions) > 0 {
		prompt = buildImpressionsPrompt(input.Impressions, input.Categories, count)
	} else {
		prompt = buildTopicPrompt(topic, count)
	}

	content, err := s.completeWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestions(content)
	if err != nil {
		s.log.WarnContext(ctx, "rejected completion reply", slog.String("reason", err.Error()))
		return nil, wrapError(KindMalformedResponse, "completion reply failed validation", err)
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.Int("requested", count),
		slog.Int("returned", len(questions)),
	)

	return &Result{Questions: questions, TotalQuestions: len(questions)}, nil
}

// completeWithRetry runs the completion call up to MaxAttempts times,
// sleeping BackoffBase*2^(attempt-1) between transient failures.
func (s *Service) completeWithRetry(ctx context.Context, prompt string) (string, error) {
	req := provider.CompletionRequest{
		System: systemPrompt,
		Prompt: prompt,
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		content, err := s.completer.Complete(ctx, req)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if !provider.IsTransient(err) {
			break
		}
		if attempt == s.cfg.MaxAttempts {
			break
		}

		delay := s.cfg.BackoffBase << (attempt - 1)
		s.log.WarnContext(ctx, "completion attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)
		s.sleep(delay)
	}

	return "", classifyCompletionErr(lastErr)
}

// classifyCompletionErr maps a completion client error to the quiz taxonomy.
// Malformed replies stay malformed; remaining fatal errors surface as
// configuration problems since they mean the endpoint rejected our setup.
func classifyCompletionErr(err error) *Error {
	switch {
	case errors.Is(err, provider.ErrMalformedReply):
		return wrapError(KindMalformedResponse, "completion endpoint returned an unusable reply", err)
	case provider.IsTransient(err):
		return wrapError(KindTransient, "completion endpoint unavailable, try again later", err)
	default:
		return wrapError(KindConfiguration, "completion request rejected", err)
	}
}

// parseQuestions extracts, parses, and shape-checks the question array.
// A single bad element rejects the whole reply.
func parseQuestions(content string) ([]domain.QuizQuestion, error) {
	raw := ExtractJSONArray(content)
	if raw == "" {
		return nil, errors.New("no JSON array found in reply")
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("parse question array: %w", err)
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	return questions, nil
}
