package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/internal/service/journal"
)

// CategoryHandler serves category REST endpoints.
type CategoryHandler struct {
	svc journalService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc journalService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "categories")}
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type categoryResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	NotRemovable bool   `json:"notRemovable"`
}

type categoryListResponse struct {
	Categories []categoryResponse `json:"categories"`
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	resp := categoryListResponse{Categories: make([]categoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(&c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), journal.CreateCategoryInput{
		Name:  req.Name,
		Color: domain.CategoryColor(req.Color),
	})
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// Update handles PATCH /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := journal.UpdateCategoryInput{ID: id, Name: req.Name}
	if req.Color != nil {
		color := domain.CategoryColor(*req.Color)
		input.Color = &color
	}

	category, err := h.svc.UpdateCategory(r.Context(), input)
	if err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		handleDomainError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Color:        c.Color.String(),
		NotRemovable: c.NotRemovable,
	}
}
