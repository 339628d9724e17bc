// Package category implements the Category repository using PostgreSQL.
//
// Category IDs are small integers scoped per user; the primary key is
// (user_id, id). ID assignment (max+1) belongs to the journal service,
// which calls NextID and Create inside one transaction.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/holyghost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByUser returns all categories for the user ordered by ID.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, name, color, not_removable
		 FROM categories WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		var color string
		if err := rows.Scan(&c.ID, &c.Name, &color, &c.NotRemovable); err != nil {
			return nil, postgres.MapError(err, "category", uuid.Nil)
		}
		c.Color = domain.CategoryColor(color)
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	return cats, nil
}

// GetByID returns a single category of the user.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	var color string
	err := q.QueryRow(ctx,
		`SELECT id, name, color, not_removable
		 FROM categories WHERE user_id = $1 AND id = $2`,
		userID, id,
	).Scan(&c.ID, &c.Name, &color, &c.NotRemovable)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	c.Color = domain.CategoryColor(color)

	return &c, nil
}

// NextID returns max(id)+1 over the user's categories (1 when none exist).
// Callers that assign IDs must run NextID and Create in one transaction.
func (r *Repo) NextID(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var next int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(id), 0) + 1 FROM categories WHERE user_id = $1`,
		userID,
	).Scan(&next)
	if err != nil {
		return 0, postgres.MapError(err, "category", uuid.Nil)
	}

	return next, nil
}

// Create inserts a category with an explicit ID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, c domain.Category) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO categories (user_id, id, name, color, not_removable)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, c.ID, c.Name, string(c.Color), c.NotRemovable,
	)
	if err != nil {
		return postgres.MapError(err, "category", c.ID)
	}

	return nil
}

// Update applies the non-nil fields of params and returns the updated category.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, id int, params domain.CategoryUpdateParams) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	upd := sq.Update("categories").
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		Suffix("RETURNING id, name, color, not_removable")

	if params.Name != nil {
		upd = upd.Set("name", *params.Name)
	}
	if params.Color != nil {
		upd = upd.Set("color", string(*params.Color))
	}

	sqlStr, args, err := upd.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	var c domain.Category
	var color string
	err = q.QueryRow(ctx, sqlStr, args...).Scan(&c.ID, &c.Name, &color, &c.NotRemovable)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	c.Color = domain.CategoryColor(color)

	return &c, nil
}

// Delete removes a category. The impression_categories FK cascade removes
// the category from every impression's set.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM categories WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
