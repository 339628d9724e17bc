package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

const maxDescriptionLen = 10000

// CreateImpressionInput holds parameters for recording a new impression.
type CreateImpressionInput struct {
	Description string
	DateTime    time.Time
	Categories  []int
}

// Validate checks the input against the given wall clock.
func (in CreateImpressionInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "must not be empty"})
	}
	if len(desc) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 10000 characters)"})
	}
	if in.DateTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "dateTime", Message: "is required"})
	} else if in.DateTime.After(now) {
		errs = append(errs, domain.FieldError{Field: "dateTime", Message: "must not be in the future"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateImpressionInput holds partial update parameters for an impression.
// Nil fields are left unchanged; at least one must be set.
type UpdateImpressionInput struct {
	ID          uuid.UUID
	Description *string
	DateTime    *time.Time
	Categories  *[]int
}

// Validate checks the input against the given wall clock.
func (in UpdateImpressionInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if in.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "is required"})
	}
	if in.Description == nil && in.DateTime == nil && in.Categories == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			errs = append(errs, domain.FieldError{Field: "description", Message: "must not be empty"})
		}
		if len(desc) > maxDescriptionLen {
			errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 10000 characters)"})
		}
	}
	if in.DateTime != nil {
		if in.DateTime.IsZero() {
			errs = append(errs, domain.FieldError{Field: "dateTime", Message: "must not be zero"})
		} else if in.DateTime.After(now) {
			errs = append(errs, domain.FieldError{Field: "dateTime", Message: "must not be in the future"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCategoryInput holds parameters for creating a category.
type CreateCategoryInput struct {
	Name  string
	Color domain.CategoryColor
}

func (in CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if !in.Color.IsValid() {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be one of the palette colors"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCategoryInput holds partial update parameters for a category.
// Nil fields are left unchanged; at least one must be set.
type UpdateCategoryInput struct {
	ID    int
	Name  *string
	Color *domain.CategoryColor
}

func (in UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if in.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "is required"})
	}
	if in.Name == nil && in.Color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if in.Color != nil && !in.Color.IsValid() {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be one of the palette colors"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// normalizeCategories trims duplicates while keeping first-seen order.
func normalizeCategories(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
