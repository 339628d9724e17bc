package domain

import "time"

// DateRangeType selects how a FilterSpec constrains impression dates.
type DateRangeType string

const (
	DateRangeAll    DateRangeType = "all"
	DateRangePreset DateRangeType = "preset"
	DateRangeCustom DateRangeType = "custom"
)

func (t DateRangeType) String() string { return string(t) }

func (t DateRangeType) IsValid() bool {
	switch t {
	case DateRangeAll, DateRangePreset, DateRangeCustom:
		return true
	}
	return false
}

// DatePreset is a named relative date window.
type DatePreset string

const (
	PresetToday       DatePreset = "today"
	PresetYesterday   DatePreset = "yesterday"
	PresetLast7Days   DatePreset = "last7days"
	PresetLast30Days  DatePreset = "last30days"
	PresetLast3Months DatePreset = "last3months"
	PresetLast6Months DatePreset = "last6months"
	PresetLastYear    DatePreset = "lastYear"
)

func (p DatePreset) String() string { return string(p) }

func (p DatePreset) IsValid() bool {
	switch p {
	case PresetToday, PresetYesterday, PresetLast7Days, PresetLast30Days,
		PresetLast3Months, PresetLast6Months, PresetLastYear:
		return true
	}
	return false
}

// DateRange describes the date constraint of a FilterSpec.
// Preset is meaningful only when Type is DateRangePreset; CustomFrom/CustomTo
// only when Type is DateRangeCustom (either may be nil for an open bound).
type DateRange struct {
	Type       DateRangeType
	Preset     DatePreset
	CustomFrom *time.Time
	CustomTo   *time.Time
}

// FilterSpec is an ephemeral query describing which impressions to show.
// The zero value (with Type defaulted to DateRangeAll) matches everything.
type FilterSpec struct {
	// Categories holds category IDs to match; empty means no category filter.
	// An impression matches if it carries at least one of them.
	Categories []int
	DateRange  DateRange
	// Description is a case-insensitive substring to match against the
	// impression description; whitespace-only means no text filter.
	Description string
}

// IsEmpty reports whether the spec applies no filtering at all.
func (f FilterSpec) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		(f.DateRange.Type == "" || f.DateRange.Type == DateRangeAll) &&
		f.Description == ""
}

// ImpressionQuery narrows an impression list read server-side.
// It is derived from a FilterSpec by the journal service; zero values mean
// "no constraint". Date bounds apply to CreatedAt, inclusive.
type ImpressionQuery struct {
	From        *time.Time
	To          *time.Time
	CategoryIDs []int
	Description string
}
