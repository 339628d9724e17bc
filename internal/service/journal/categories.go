package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/pkg/ctxutil"
)

// ListCategories returns the authenticated user's categories ordered by ID.
// A user with no categories gets the default set seeded first; the seed runs
// in a transaction and relies on the primary key to stay exactly-once under
// concurrent first requests.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cats, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) > 0 {
		return cats, nil
	}

	defaults := domain.DefaultCategories()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range defaults {
			if createErr := s.categories.Create(txCtx, userID, c); createErr != nil {
				return fmt.Errorf("seed category %q: %w", c.Name, createErr)
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent request may have seeded first; the existing set wins.
		if cats, listErr := s.categories.ListByUser(ctx, userID); listErr == nil && len(cats) > 0 {
			return cats, nil
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "default categories seeded",
		slog.String("user_id", userID.String()),
	)

	return defaults, nil
}

// CreateCategory creates a category for the authenticated user. The ID is
// assigned as max(existing)+1 inside a transaction.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cat := domain.Category{
		Name:  strings.TrimSpace(input.Name),
		Color: input.Color,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		id, idErr := s.categories.NextID(txCtx, userID)
		if idErr != nil {
			return fmt.Errorf("next category id: %w", idErr)
		}
		cat.ID = id

		if createErr := s.categories.Create(txCtx, userID, cat); createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.Int("category_id", cat.ID),
		slog.String("name", cat.Name),
	)

	return &cat, nil
}

// UpdateCategory applies a partial update to a category of the authenticated
// user. Seeded default categories cannot be renamed, only recolored.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.categories.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if existing.NotRemovable && input.Name != nil {
		return nil, fmt.Errorf("category %d is a default and cannot be renamed: %w", input.ID, domain.ErrForbidden)
	}

	params := domain.CategoryUpdateParams{
		Color: input.Color,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	cat, err := s.categories.Update(ctx, userID, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.Int("category_id", input.ID),
	)

	return cat, nil
}

// DeleteCategory removes a category of the authenticated user. Impressions
// tagged with it lose the tag but are otherwise untouched. Seeded default
// categories cannot be deleted.
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.categories.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if existing.NotRemovable {
		return fmt.Errorf("category %d is a default and cannot be deleted: %w", id, domain.ErrForbidden)
	}

	if err := s.categories.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.Int("category_id", id),
	)

	return nil
}
