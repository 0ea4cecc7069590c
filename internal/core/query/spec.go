package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Defaults and bounds applied by Normalize.
const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "date"
	MaxLimit      = 100
)

const dateLayout = "2006-01-02"

// Spec holds the normalized parameters of a campaign table query.
type Spec struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string

	// Optional inclusive range filters. Nil means unbounded.
	MinRevenue *float64
	MaxRevenue *float64
	MinClicks  *int64
	MaxClicks  *int64
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Normalize clamps page to >= 1 and limit to [1, MaxLimit], fills in the
// default sort field and maps any order other than "asc" to "desc".
func (s Spec) Normalize() Spec {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if s.Limit < 1 {
		s.Limit = 1
	}
	if s.Limit > MaxLimit {
		s.Limit = MaxLimit
	}
	if strings.TrimSpace(s.SortBy) == "" {
		s.SortBy = DefaultSortBy
	}
	if strings.ToLower(s.SortOrder) == OrderAsc {
		s.SortOrder = OrderAsc
	} else {
		s.SortOrder = OrderDesc
	}
	return s
}

// ParseValues builds a normalized Spec from URL query parameters. Missing or
// unparsable values fall back to their defaults; unparsable range filters are
// ignored.
func ParseValues(v url.Values) Spec {
	s := Spec{
		Page:      atoiDef(v.Get("page"), DefaultPage),
		Limit:     atoiDef(v.Get("limit"), DefaultLimit),
		SortBy:    v.Get("sortBy"),
		SortOrder: v.Get("sortOrder"),
		Search:    v.Get("search"),
	}
	s.MinRevenue = parseFloat(v.Get("minRevenue"))
	s.MaxRevenue = parseFloat(v.Get("maxRevenue"))
	s.MinClicks = parseInt(v.Get("minClicks"))
	s.MaxClicks = parseInt(v.Get("maxClicks"))
	s.DateFrom = parseDate(v.Get("dateFrom"))
	s.DateTo = parseDate(v.Get("dateTo"))
	return s.Normalize()
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return d
	}
	return v
}

func parseFloat(s string) *float64 {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) *int64 {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &i
}

func parseDate(s string) *time.Time {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
