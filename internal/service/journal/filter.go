package journal

import (
	"strings"
	"time"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

// FilterImpressions applies spec to the given impressions and returns the
// matching subset in the original order. It is a pure function: predicates
// combine with AND, and each one with a zero value is skipped.
//
// The description match is a case-insensitive substring check, the category
// match requires at least one shared ID, and the date window is inclusive on
// both bounds against CreatedAt.
func FilterImpressions(impressions []domain.Impression, spec domain.FilterSpec, now time.Time) []domain.Impression {
	out := make([]domain.Impression, 0, len(impressions))

	term := strings.ToLower(strings.TrimSpace(spec.Description))

	var start, end time.Time
	dateActive := spec.DateRange.Type != "" && spec.DateRange.Type != domain.DateRangeAll
	if dateActive {
		start, end = resolveDateWindow(spec.DateRange, now)
	}

	for _, imp := range impressions {
		if term != "" && !strings.Contains(strings.ToLower(imp.Description), term) {
			continue
		}
		if len(spec.Categories) > 0 && !hasAnyCategory(imp, spec.Categories) {
			continue
		}
		if dateActive {
			t := imp.CreatedAt
			if t.Before(start) || t.After(end) {
				continue
			}
		}
		out = append(out, imp)
	}

	return out
}

// resolveDateWindow turns a DateRange into a concrete [start, end] window.
//
// The end bound defaults to now plus 24 hours so that entries recorded later
// today still match; only "yesterday" narrows it, to midnight today. Presets
// over whole days start at a local midnight, rolling day windows subtract
// exact 24-hour multiples from now, and month and year presets subtract on
// the calendar. An unrecognized preset degenerates to an all-matching window
// starting at the Unix epoch.
func resolveDateWindow(dr domain.DateRange, now time.Time) (start, end time.Time) {
	end = now.Add(24 * time.Hour)
	epoch := time.Unix(0, 0)

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch dr.Type {
	case domain.DateRangePreset:
		switch dr.Preset {
		case domain.PresetToday:
			start = midnight
		case domain.PresetYesterday:
			start = midnight.AddDate(0, 0, -1)
			end = midnight
		case domain.PresetLast7Days:
			start = now.Add(-7 * 24 * time.Hour)
		case domain.PresetLast30Days:
			start = now.Add(-30 * 24 * time.Hour)
		case domain.PresetLast3Months:
			start = midnight.AddDate(0, -3, 0)
		case domain.PresetLast6Months:
			start = midnight.AddDate(0, -6, 0)
		case domain.PresetLastYear:
			start = midnight.AddDate(-1, 0, 0)
		default:
			start = epoch
		}
	case domain.DateRangeCustom:
		start = epoch
		if dr.CustomFrom != nil {
			start = *dr.CustomFrom
		}
		if dr.CustomTo != nil {
			end = *dr.CustomTo
		}
	default:
		start = epoch
	}

	return start, end
}

func hasAnyCategory(imp domain.Impression, ids []int) bool {
	for _, id := range ids {
		if imp.HasCategory(id) {
			return true
		}
	}
	return false
}

// queryFromSpec narrows the repository read to the filter's constraints.
// The exact match semantics still run in FilterImpressions afterwards; the
// query only has to be a superset, so it reuses the same window bounds.
func queryFromSpec(spec domain.FilterSpec, now time.Time) domain.ImpressionQuery {
	q := domain.ImpressionQuery{
		CategoryIDs: spec.Categories,
		Description: strings.TrimSpace(spec.Description),
	}

	if spec.DateRange.Type != "" && spec.DateRange.Type != domain.DateRangeAll {
		start, end := resolveDateWindow(spec.DateRange, now)
		q.From = &start
		q.To = &end
	}

	return q
}
