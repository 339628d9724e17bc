package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row with a fixed dummy password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCategory inserts a category for the given user.
// Category IDs are scoped per user, so the caller picks the ID.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, id int, name string, color domain.CategoryColor, notRemovable bool) domain.Category {
	t.Helper()
	ctx := context.Background()

	cat := domain.Category{
		ID:           id,
		Name:         name,
		Color:        color,
		NotRemovable: notRemovable,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (user_id, id, name, color, not_removable)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, cat.ID, cat.Name, string(cat.Color), cat.NotRemovable,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return cat
}

// SeedDefaultCategories inserts the two built-in categories for the user.
func SeedDefaultCategories(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) []domain.Category {
	t.Helper()

	defaults := domain.DefaultCategories()
	for _, c := range defaults {
		SeedCategory(t, pool, userID, c.ID, c.Name, c.Color, c.NotRemovable)
	}
	return defaults
}

// SeedImpression creates an impression with optional category links.
// Referenced categories must already exist for the user.
func SeedImpression(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, description string, dateTime time.Time, categoryIDs ...int) domain.Impression {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	imp := domain.Impression{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		DateTime:    dateTime.UTC().Truncate(time.Microsecond),
		CreatedAt:   now,
		UpdatedAt:   now,
		Categories:  categoryIDs,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO impressions (id, user_id, description, date_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		imp.ID, imp.UserID, imp.Description, imp.DateTime, imp.CreatedAt, imp.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedImpression insert impression: %v", err)
	}

	for _, catID := range categoryIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO impression_categories (impression_id, user_id, category_id)
			 VALUES ($1, $2, $3)`,
			imp.ID, userID, catID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedImpression link category %d: %v", catID, err)
		}
	}

	return imp
}
