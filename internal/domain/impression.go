package domain

import (
	"time"

	"github.com/google/uuid"
)

// Impression is a single journal entry: a timestamped note about a spiritual
// experience, tagged with zero or more category IDs.
type Impression struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	// DateTime is the instant the user reports the experience occurred.
	// User-editable; must not be in the future at save time (enforced by the
	// journal service, not here).
	DateTime  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	// Categories holds category IDs with set semantics: no duplicates,
	// no ordering guarantees.
	Categories []int
}

// HasCategory reports whether the impression is tagged with the given category ID.
func (i *Impression) HasCategory(categoryID int) bool {
	for _, id := range i.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}

// ImpressionUpdateParams holds partial update parameters for an impression.
// Nil fields are left unchanged.
type ImpressionUpdateParams struct {
	Description *string
	DateTime    *time.Time
	Categories  *[]int
}
