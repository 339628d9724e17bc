package domain

// CategoryColor is one of the fixed palette colors a category can use.
type CategoryColor string

const (
	ColorBrown  CategoryColor = "brown"
	ColorGreen  CategoryColor = "green"
	ColorBlue   CategoryColor = "blue"
	ColorPurple CategoryColor = "purple"
	ColorRed    CategoryColor = "red"
	ColorOrange CategoryColor = "orange"
	ColorYellow CategoryColor = "yellow"
)

func (c CategoryColor) String() string { return string(c) }

func (c CategoryColor) IsValid() bool {
	switch c {
	case ColorBrown, ColorGreen, ColorBlue, ColorPurple, ColorRed, ColorOrange, ColorYellow:
		return true
	}
	return false
}

// Category is a user-defined or seeded label attachable to impressions.
// IDs are small integers unique per user, assigned as max(existing)+1.
type Category struct {
	ID    int
	Name  string
	Color CategoryColor
	// NotRemovable marks seeded default categories that cannot be deleted
	// or renamed.
	NotRemovable bool
}

// DefaultCategories returns the seed set created the first time categories
// are requested for a user that has none.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "Church", Color: ColorBlue, NotRemovable: true},
		{ID: 2, Name: "BYU", Color: ColorBrown, NotRemovable: true},
	}
}

// CategoryUpdateParams holds partial update parameters for a category.
// Nil fields are left unchanged.
type CategoryUpdateParams struct {
	Name  *string
	Color *CategoryColor
}
