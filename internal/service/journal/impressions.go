package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/pkg/ctxutil"
)

// CreateImpression records a new impression for the authenticated user.
func (s *Service) CreateImpression(ctx context.Context, input CreateImpressionInput) (*domain.Impression, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	categories := normalizeCategories(input.Categories)
	if err := s.checkCategoriesExist(ctx, userID, categories); err != nil {
		return nil, err
	}

	imp := &domain.Impression{
		ID:          uuid.New(),
		UserID:      userID,
		Description: strings.TrimSpace(input.Description),
		DateTime:    input.DateTime,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
		Categories:  categories,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.impressions.Create(txCtx, imp); createErr != nil {
			return fmt.Errorf("create impression: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "impression created",
		slog.String("user_id", userID.String()),
		slog.String("impression_id", imp.ID.String()),
		slog.Int("categories", len(categories)),
	)

	return imp, nil
}

// GetImpression returns a single impression of the authenticated user.
func (s *Service) GetImpression(ctx context.Context, id uuid.UUID) (*domain.Impression, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	imp, err := s.impressions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get impression: %w", err)
	}

	return imp, nil
}

// ListImpressions returns the authenticated user's impressions newest-first,
// narrowed by spec. The repository query prefilters server-side; the in-memory
// pass enforces the exact filter semantics on what comes back.
func (s *Service) ListImpressions(ctx context.Context, spec domain.FilterSpec) ([]domain.Impression, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()

	imps, err := s.impressions.List(ctx, userID, queryFromSpec(spec, now))
	if err != nil {
		return nil, fmt.Errorf("list impressions: %w", err)
	}

	return FilterImpressions(imps, spec, now), nil
}

// UpdateImpression applies a partial update to an impression of the
// authenticated user and returns the updated entry.
func (s *Service) UpdateImpression(ctx context.Context, input UpdateImpressionInput) (*domain.Impression, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	var categories []int
	if input.Categories != nil {
		categories = normalizeCategories(*input.Categories)
		if err := s.checkCategoriesExist(ctx, userID, categories); err != nil {
			return nil, err
		}
	}

	params := domain.ImpressionUpdateParams{
		DateTime: input.DateTime,
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, updErr := s.impressions.Update(txCtx, userID, input.ID, params, now.UTC()); updErr != nil {
			return fmt.Errorf("update impression: %w", updErr)
		}
		if input.Categories != nil {
			if setErr := s.impressions.SetCategories(txCtx, userID, input.ID, categories); setErr != nil {
				return fmt.Errorf("set categories: %w", setErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload outside the tx so the returned entry carries the full category set.
	imp, err := s.impressions.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("reload impression: %w", err)
	}

	s.log.InfoContext(ctx, "impression updated",
		slog.String("user_id", userID.String()),
		slog.String("impression_id", input.ID.String()),
	)

	return imp, nil
}

// DeleteImpression removes an impression of the authenticated user.
// Category links are removed with it.
func (s *Service) DeleteImpression(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.impressions.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete impression: %w", err)
	}

	s.log.InfoContext(ctx, "impression deleted",
		slog.String("user_id", userID.String()),
		slog.String("impression_id", id.String()),
	)

	return nil
}

// checkCategoriesExist verifies every referenced category ID belongs to the user.
func (s *Service) checkCategoriesExist(ctx context.Context, userID uuid.UUID, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	known := make(map[int]struct{}, len(existing))
	for _, c := range existing {
		known[c.ID] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domain.NewValidationError("categories", fmt.Sprintf("unknown category id %d", id))
		}
	}

	return nil
}
