package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/internal/service/quiz"
)

// quizService defines the minimal interface needed by QuizHandler.
type quizService interface {
	Generate(ctx context.Context, input quiz.GenerateInput) (*quiz.Result, error)
}

// QuizHandler serves the quiz generation endpoint.
type QuizHandler struct {
	quiz    quizService
	journal journalService
	log     *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(quizSvc quizService, journalSvc journalService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{quiz: quizSvc, journal: journalSvc, log: logger.With("handler", "quiz")}
}

type generateQuizRequest struct {
	// ImpressionIDs narrows the source material; empty means all of the
	// user's impressions. Ignored when Topic is set.
	ImpressionIDs []string `json:"impressionIds"`
	Topic         string   `json:"topic"`
	QuestionCount int      `json:"questionCount"`
}

type quizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type generateQuizResponse struct {
	Questions      []quizQuestionResponse `json:"questions"`
	TotalQuestions int                    `json:"totalQuestions"`
}

// Generate handles POST /quiz/generate.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := quiz.GenerateInput{
		Topic:         req.Topic,
		QuestionCount: req.QuestionCount,
	}

	if strings.TrimSpace(req.Topic) == "" {
		impressions, categories, err := h.loadSourceMaterial(r.Context(), req.ImpressionIDs)
		if err != nil {
			handleDomainError(h.log, w, r, err)
			return
		}
		input.Impressions = impressions
		input.Categories = categories
	}

	result, err := h.quiz.Generate(r.Context(), input)
	if err != nil {
		h.handleQuizError(w, r, err)
		return
	}

	resp := generateQuizResponse{
		Questions:      make([]quizQuestionResponse, 0, len(result.Questions)),
		TotalQuestions: result.TotalQuestions,
	}
	for _, q := range result.Questions {
		resp.Questions = append(resp.Questions, quizQuestionResponse{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// loadSourceMaterial fetches the user's impressions and categories, narrowed
// to the requested impression IDs when any are given. Unknown IDs are simply
// not matched; the quiz service rejects an empty selection.
func (h *QuizHandler) loadSourceMaterial(ctx context.Context, rawIDs []string) ([]domain.Impression, []domain.Category, error) {
	impressions, err := h.journal.ListImpressions(ctx, domain.FilterSpec{})
	if err != nil {
		return nil, nil, err
	}

	if len(rawIDs) > 0 {
		wanted := make(map[uuid.UUID]struct{}, len(rawIDs))
		for _, raw := range rawIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, nil, domain.NewValidationError("impressionIds", "contains an invalid id")
			}
			wanted[id] = struct{}{}
		}
		selected := impressions[:0]
		for _, imp := range impressions {
			if _, ok := wanted[imp.ID]; ok {
				selected = append(selected, imp)
			}
		}
		impressions = selected
	}

	categories, err := h.journal.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}

	return impressions, categories, nil
}

func (h *QuizHandler) handleQuizError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := quiz.KindOf(err)
	if !ok {
		handleDomainError(h.log, w, r, err)
		return
	}

	switch kind {
	case quiz.KindConfiguration:
		h.log.ErrorContext(r.Context(), "quiz generation misconfigured", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "quiz generation is not available")
	case quiz.KindInput:
		writeError(w, http.StatusBadRequest, err.Error())
	case quiz.KindTransient:
		writeError(w, http.StatusServiceUnavailable, "quiz provider is temporarily unavailable")
	case quiz.KindMalformedResponse:
		writeError(w, http.StatusBadGateway, "quiz provider returned an unusable reply")
	default:
		handleDomainError(h.log, w, r, err)
	}
}
