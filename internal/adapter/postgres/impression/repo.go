// Package impression implements the Impression repository using PostgreSQL.
package impression

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/holyghost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides impression persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new impression repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an impression and its category links.
// Callers must run it inside a transaction when categories are present,
// so a failed link insert does not leave a bare impression behind.
func (r *Repo) Create(ctx context.Context, imp *domain.Impression) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO impressions (id, user_id, description, date_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		imp.ID, imp.UserID, imp.Description, imp.DateTime, imp.CreatedAt, imp.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "impression", imp.ID)
	}

	return r.insertLinks(ctx, imp.ID, imp.UserID, imp.Categories)
}

// GetByID returns a single impression of the user, with its category set.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Impression, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		selectWithCategories+` WHERE i.user_id = $1 AND i.id = $2 GROUP BY i.id`,
		userID, id,
	)

	imp, err := scanImpression(row)
	if err != nil {
		return nil, postgres.MapError(err, "impression", id)
	}

	return imp, nil
}

// List returns the user's impressions newest-first, narrowed by the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ImpressionQuery) ([]domain.Impression, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := sq.Select(
		"i.id", "i.user_id", "i.description", "i.date_time", "i.created_at", "i.updated_at",
		"COALESCE(array_agg(ic.category_id) FILTER (WHERE ic.category_id IS NOT NULL), '{}')",
	).
		From("impressions i").
		LeftJoin("impression_categories ic ON ic.impression_id = i.id").
		Where(squirrel.Eq{"i.user_id": userID}).
		GroupBy("i.id").
		OrderBy("i.created_at DESC")

	if filter.From != nil {
		sel = sel.Where(squirrel.GtOrEq{"i.created_at": *filter.From})
	}
	if filter.To != nil {
		sel = sel.Where(squirrel.LtOrEq{"i.created_at": *filter.To})
	}
	if filter.Description != "" {
		sel = sel.Where("i.description ILIKE '%' || ? || '%'", filter.Description)
	}
	if len(filter.CategoryIDs) > 0 {
		sel = sel.Where(
			"EXISTS (SELECT 1 FROM impression_categories m WHERE m.impression_id = i.id AND m.category_id = ANY(?))",
			toInt32(filter.CategoryIDs),
		)
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build impression list query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "impression", uuid.Nil)
	}
	defer rows.Close()

	var imps []domain.Impression
	for rows.Next() {
		imp, err := scanImpression(rows)
		if err != nil {
			return nil, postgres.MapError(err, "impression", uuid.Nil)
		}
		imps = append(imps, *imp)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "impression", uuid.Nil)
	}

	return imps, nil
}

// Update applies the non-nil scalar fields of params and returns the updated
// impression. Category set replacement is done via SetCategories; callers
// combine the two inside a transaction.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.ImpressionUpdateParams, updatedAt time.Time) (*domain.Impression, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	upd := sq.Update("impressions").
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		Suffix("RETURNING id, user_id, description, date_time, created_at, updated_at")

	if params.Description != nil {
		upd = upd.Set("description", *params.Description)
	}
	if params.DateTime != nil {
		upd = upd.Set("date_time", *params.DateTime)
	}

	sqlStr, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build impression update query: %w", err)
	}

	var imp domain.Impression
	err = q.QueryRow(ctx, sqlStr, args...).Scan(
		&imp.ID, &imp.UserID, &imp.Description, &imp.DateTime, &imp.CreatedAt, &imp.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "impression", id)
	}

	return &imp, nil
}

// SetCategories replaces the impression's category set.
func (r *Repo) SetCategories(ctx context.Context, userID, id uuid.UUID, categoryIDs []int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM impression_categories WHERE impression_id = $1`, id,
	)
	if err != nil {
		return postgres.MapError(err, "impression", id)
	}

	return r.insertLinks(ctx, id, userID, categoryIDs)
}

// Delete removes an impression; links cascade.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM impressions WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return postgres.MapError(err, "impression", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("impression %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// insertLinks inserts category membership rows via a batch.
func (r *Repo) insertLinks(ctx context.Context, impressionID, userID uuid.UUID, categoryIDs []int) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, catID := range categoryIDs {
		batch.Queue(
			`INSERT INTO impression_categories (impression_id, user_id, category_id)
			 VALUES ($1, $2, $3)`,
			impressionID, userID, catID,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range categoryIDs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "impression", impressionID)
		}
	}

	return nil
}

// scanImpression scans one row of the shared column set into a domain.Impression.
func scanImpression(row pgx.Row) (*domain.Impression, error) {
	var imp domain.Impression
	var catIDs []int32
	err := row.Scan(
		&imp.ID, &imp.UserID, &imp.Description, &imp.DateTime, &imp.CreatedAt, &imp.UpdatedAt,
		&catIDs,
	)
	if err != nil {
		return nil, err
	}

	imp.Categories = make([]int, len(catIDs))
	for i, id := range catIDs {
		imp.Categories[i] = int(id)
	}

	return &imp, nil
}

const selectWithCategories = `
	SELECT i.id, i.user_id, i.description, i.date_time, i.created_at, i.updated_at,
	       COALESCE(array_agg(ic.category_id) FILTER (WHERE ic.category_id IS NOT NULL), '{}')
	FROM impressions i
	LEFT JOIN impression_categories ic ON ic.impression_id = i.id`

func toInt32(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}
