// Package query implements the campaign table engine: filter, sort and
// paginate a fixed record set.
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"insights-api/internal/core/domain"
)

type comparator func(a, b domain.Campaign) int

var comparators = map[string]comparator{
	"id":          func(a, b domain.Campaign) int { return cmp.Compare(a.ID, b.ID) },
	"campaign":    func(a, b domain.Campaign) int { return strings.Compare(a.Name, b.Name) },
	"clicks":      func(a, b domain.Campaign) int { return cmp.Compare(a.Clicks, b.Clicks) },
	"impressions": func(a, b domain.Campaign) int { return cmp.Compare(a.Impressions, b.Impressions) },
	"ctr":         func(a, b domain.Campaign) int { return cmp.Compare(a.CTR, b.CTR) },
	"cpc":         func(a, b domain.Campaign) int { return cmp.Compare(a.CPC, b.CPC) },
	"spend":       func(a, b domain.Campaign) int { return cmp.Compare(a.Spend, b.Spend) },
	"conversions": func(a, b domain.Campaign) int { return cmp.Compare(a.Conversions, b.Conversions) },
	"revenue":     func(a, b domain.Campaign) int { return cmp.Compare(a.Revenue, b.Revenue) },
	"date":        func(a, b domain.Campaign) int { return strings.Compare(a.Date, b.Date) },
}

// Run filters, sorts and paginates records according to spec. The input
// slice is never modified. Pages past the end yield an empty, non-nil Data.
func Run(records []domain.Campaign, spec Spec) domain.CampaignPage {
	spec = spec.Normalize()

	rows := Filter(records, spec)
	Sort(rows, spec.SortBy, spec.SortOrder)

	total := len(rows)
	return domain.CampaignPage{
		Data: paginate(rows, spec.Page, spec.Limit),
		Pagination: domain.Pagination{
			Page:       spec.Page,
			Limit:      spec.Limit,
			Total:      total,
			TotalPages: totalPages(total, spec.Limit),
		},
	}
}

// Filter returns a new slice holding the records that match the search
// text and every range filter set on spec.
func Filter(records []domain.Campaign, spec Spec) []domain.Campaign {
	needle := strings.ToLower(spec.Search)
	out := make([]domain.Campaign, 0, len(records))
	for _, r := range records {
		if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
			continue
		}
		if !inRanges(r, spec) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func inRanges(r domain.Campaign, s Spec) bool {
	if s.MinRevenue != nil && r.Revenue < *s.MinRevenue {
		return false
	}
	if s.MaxRevenue != nil && r.Revenue > *s.MaxRevenue {
		return false
	}
	if s.MinClicks != nil && r.Clicks < *s.MinClicks {
		return false
	}
	if s.MaxClicks != nil && r.Clicks > *s.MaxClicks {
		return false
	}
	if s.DateFrom != nil || s.DateTo != nil {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return false
		}
		if s.DateFrom != nil && d.Before(*s.DateFrom) {
			return false
		}
		if s.DateTo != nil && d.After(*s.DateTo) {
			return false
		}
	}
	return true
}

// Sort orders rows in place by field. Equal keys fall back to ascending id
// regardless of order. An unknown field leaves rows untouched.
func Sort(rows []domain.Campaign, field, order string) {
	primary, ok := comparators[field]
	if !ok {
		return
	}
	desc := order != OrderAsc
	slices.SortStableFunc(rows, func(a, b domain.Campaign) int {
		c := primary(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func paginate[T any](rows []T, page, limit int) []T {
	if limit <= 0 || page-1 > len(rows)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	if start >= len(rows) {
		return []T{}
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func totalPages(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
