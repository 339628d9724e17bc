// Package journal implements the impression and category operations:
// journaling CRUD, default category seeding, and list filtering.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

type impressionRepo interface {
	Create(ctx context.Context, imp *domain.Impression) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Impression, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ImpressionQuery) ([]domain.Impression, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.ImpressionUpdateParams, updatedAt time.Time) (*domain.Impression, error)
	SetCategories(ctx context.Context, userID, id uuid.UUID, categoryIDs []int) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type categoryRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int) (*domain.Category, error)
	NextID(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, userID uuid.UUID, c domain.Category) error
	Update(ctx context.Context, userID uuid.UUID, id int, params domain.CategoryUpdateParams) (*domain.Category, error)
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides impression and category management operations.
type Service struct {
	impressions impressionRepo
	categories  categoryRepo
	tx          txManager
	log         *slog.Logger

	// now is swapped in tests to pin the filter clock.
	now func() time.Time
}

// NewService creates a new Journal service.
func NewService(
	log *slog.Logger,
	impressions impressionRepo,
	categories categoryRepo,
	tx txManager,
) *Service {
	return &Service{
		impressions: impressions,
		categories:  categories,
		tx:          tx,
		log:         log.With("service", "journal"),
		now:         time.Now,
	}
}
