package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/internal/service/journal"
)

// journalService defines the journal operations needed by ImpressionHandler
// and CategoryHandler.
type journalService interface {
	CreateImpression(ctx context.Context, input journal.CreateImpressionInput) (*domain.Impression, error)
	GetImpression(ctx context.Context, id uuid.UUID) (*domain.Impression, error)
	ListImpressions(ctx context.Context, spec domain.FilterSpec) ([]domain.Impression, error)
	UpdateImpression(ctx context.Context, input journal.UpdateImpressionInput) (*domain.Impression, error)
	DeleteImpression(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input journal.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input journal.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// ImpressionHandler serves impression REST endpoints.
type ImpressionHandler struct {
	svc journalService
	log *slog.Logger
}

// NewImpressionHandler creates an ImpressionHandler.
func NewImpressionHandler(svc journalService, logger *slog.Logger) *ImpressionHandler {
	return &ImpressionHandler{svc: svc, log: logger.With("handler", "impressions")}
}

type createImpressionRequest struct {
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Categories  []int     `json:"categories"`
}

type updateImpressionRequest struct {
	Description *string    `json:"description"`
	DateTime    *time.Time `json:"dateTime"`
	Categories  *[]int     `json:"categories"`
}

type impressionResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Categories  []int     `json:"categories"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type impressionListResponse struct {
	Impressions []impressionResponse `json:"impressions"`
	Total       int                  `json:"total"`
}

// List handles GET /impressions. Filter criteria come in as query parameters:
// categories (comma-separated IDs), description, dateRangeType, datePreset,
// from and to (RFC 3339).
func (h *ImpressionHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, err := filterSpecFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	impressions, err := h.svc.ListImpressions(r.Context(), spec)
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	resp := impressionListResponse{
		Impressions: make([]impressionResponse, 0, len(impressions)),
		Total:       len(impressions),
	}
	for _, imp := range impressions {
		resp.Impressions = append(resp.Impressions, toImpressionResponse(&imp))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /impressions.
func (h *ImpressionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createImpressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	imp, err := h.svc.CreateImpression(r.Context(), journal.CreateImpressionInput{
		Description: req.Description,
		DateTime:    req.DateTime,
		Categories:  req.Categories,
	})
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toImpressionResponse(imp))
}

// Get handles GET /impressions/{id}.
func (h *ImpressionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid impression id")
		return
	}

	imp, err := h.svc.GetImpression(r.Context(), id)
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toImpressionResponse(imp))
}

// Update handles PATCH /impressions/{id}.
func (h *ImpressionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid impression id")
		return
	}

	var req updateImpressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	imp, err := h.svc.UpdateImpression(r.Context(), journal.UpdateImpressionInput{
		ID:          id,
		Description: req.Description,
		DateTime:    req.DateTime,
		Categories:  req.Categories,
	})
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toImpressionResponse(imp))
}

// Delete handles DELETE /impressions/{id}.
func (h *ImpressionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid impression id")
		return
	}

	if err := h.svc.DeleteImpression(r.Context(), id); err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func filterSpecFromQuery(q url.Values) (domain.FilterSpec, error) {
	var spec domain.FilterSpec

	if raw := strings.TrimSpace(q.Get("categories")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return spec, fmt.Errorf("invalid category id %q", part)
			}
			spec.Categories = append(spec.Categories, id)
		}
	}

	spec.Description = q.Get("description")

	rangeType := domain.DateRangeType(q.Get("dateRangeType"))
	if rangeType == "" {
		rangeType = domain.DateRangeAll
	}
	if !rangeType.IsValid() {
		return spec, fmt.Errorf("invalid dateRangeType %q", rangeType)
	}
	spec.DateRange.Type = rangeType

	switch rangeType {
	case domain.DateRangePreset:
		spec.DateRange.Preset = domain.DatePreset(q.Get("datePreset"))
	case domain.DateRangeCustom:
		if raw := q.Get("from"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return spec, fmt.Errorf("invalid from timestamp %q", raw)
			}
			spec.DateRange.CustomFrom = &t
		}
		if raw := q.Get("to"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return spec, fmt.Errorf("invalid to timestamp %q", raw)
			}
			spec.DateRange.CustomTo = &t
		}
	}

	return spec, nil
}

func toImpressionResponse(imp *domain.Impression) impressionResponse {
	categories := imp.Categories
	if categories == nil {
		categories = []int{}
	}
	return impressionResponse{
		ID:          imp.ID.String(),
		Description: imp.Description,
		DateTime:    imp.DateTime,
		Categories:  categories,
		CreatedAt:   imp.CreatedAt,
		UpdatedAt:   imp.UpdatedAt,
	}
}
