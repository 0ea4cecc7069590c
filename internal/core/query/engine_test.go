package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insights-api/internal/adapter/memory"
	"insights-api/internal/core/domain"
)

func names(rows []domain.Campaign) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestRunRevenueDescending(t *testing.T) {
	page := Run(memory.Campaigns(), Spec{Page: 1, Limit: 10, SortBy: "revenue", SortOrder: OrderDesc})

	require.Len(t, page.Data, 10)
	assert.Equal(t, "Holiday Special", page.Data[0].Name)
	assert.Equal(t, 23120.0, page.Data[0].Revenue)
	assert.Equal(t, "Retargeting Ads", page.Data[9].Name)
	assert.Equal(t, 7840.0, page.Data[9].Revenue)
}

func TestRunSearchIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"Sale", "sale", "SALE"} {
		page := Run(memory.Campaigns(), Spec{Page: 1, Limit: 10, Search: q})
		require.Len(t, page.Data, 1, q)
		assert.Equal(t, "Summer Sale 2024", page.Data[0].Name)
		assert.Equal(t, 1, page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.TotalPages)
	}
}

func TestRunTotalIsIndependentOfPaging(t *testing.T) {
	records := memory.Campaigns()
	for _, search := range []string{"", "a", "ads", "zzz", "o"} {
		want := 0
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.Name), strings.ToLower(search)) {
				want++
			}
		}
		for _, limit := range []int{1, 3, 10, 25} {
			for page := 1; page <= 12; page++ {
				res := Run(records, Spec{Page: page, Limit: limit, Search: search})
				assert.Equal(t, want, res.Pagination.Total, "search=%q limit=%d page=%d", search, limit, page)
				assert.LessOrEqual(t, len(res.Data), limit)
				if want > 0 && page > res.Pagination.TotalPages {
					assert.Empty(t, res.Data)
					assert.NotNil(t, res.Data)
				}
			}
		}
	}
}

func TestRunTotalPages(t *testing.T) {
	res := Run(memory.Campaigns(), Spec{Page: 1, Limit: 3})
	assert.Equal(t, 4, res.Pagination.TotalPages)

	res = Run(memory.Campaigns(), Spec{Page: 1, Limit: 10, Search: "nothing matches"})
	assert.Equal(t, 0, res.Pagination.Total)
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestRunPagesDoNotOverlap(t *testing.T) {
	records := memory.Campaigns()
	seen := map[int64]bool{}
	for page := 1; page <= 4; page++ {
		res := Run(records, Spec{Page: page, Limit: 3, SortBy: "clicks", SortOrder: OrderAsc})
		for _, r := range res.Data {
			assert.False(t, seen[r.ID], "row %d returned twice", r.ID)
			seen[r.ID] = true
		}
	}
	assert.Len(t, seen, 10)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	records := memory.Campaigns()
	Run(records, Spec{Page: 1, Limit: 10, SortBy: "revenue", SortOrder: OrderAsc})
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(10), records[9].ID)
}

func TestRunDefaultsSortByDateDesc(t *testing.T) {
	res := Run(memory.Campaigns(), Spec{})
	require.Len(t, res.Data, 1)
	assert.Equal(t, 1, res.Pagination.Limit)

	res = Run(memory.Campaigns(), ParseValues(url.Values{}))
	require.Len(t, res.Data, 10)
	assert.Equal(t, "2024-07-15", res.Data[0].Date)
	assert.Equal(t, "2024-07-06", res.Data[9].Date)
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	rows := memory.Campaigns()
	rows[0], rows[5] = rows[5], rows[0]
	before := names(rows)

	Sort(rows, "doesNotExist", OrderAsc)
	assert.Equal(t, before, names(rows))

	res := Run(memory.Campaigns(), Spec{Page: 1, Limit: 10, SortBy: "nope", Search: "ad"})
	assert.Equal(t, res.Pagination.Total, len(res.Data))
}

func TestSortTiesBreakOnID(t *testing.T) {
	rows := []domain.Campaign{
		{ID: 3, Name: "c", Revenue: 10},
		{ID: 1, Name: "a", Revenue: 10},
		{ID: 2, Name: "b", Revenue: 20},
	}

	Sort(rows, "revenue", OrderDesc)
	assert.Equal(t, []int64{2, 1, 3}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})

	Sort(rows, "revenue", OrderAsc)
	assert.Equal(t, []int64{1, 3, 2}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
}

func TestRangeFilters(t *testing.T) {
	v := url.Values{}
	v.Set("minRevenue", "15000")
	v.Set("maxClicks", "16000")
	v.Set("sortBy", "revenue")
	res := Run(memory.Campaigns(), ParseValues(v))

	assert.Equal(t, []string{"Summer Sale 2024", "Influencer Partnership", "Product Launch"}, names(res.Data))
	assert.Equal(t, 3, res.Pagination.Total)

	v = url.Values{}
	v.Set("dateFrom", "2024-07-10")
	v.Set("dateTo", "2024-07-12")
	v.Set("sortOrder", "asc")
	res = Run(memory.Campaigns(), ParseValues(v))
	assert.Equal(t, []string{"Social Media Boost", "Retargeting Ads", "Holiday Special"}, names(res.Data))
}

func TestParseValues(t *testing.T) {
	v := url.Values{}
	v.Set("page", "abc")
	v.Set("limit", "0")
	v.Set("sortOrder", "sideways")
	v.Set("minRevenue", "lots")

	s := ParseValues(v)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 1, s.Limit)
	assert.Equal(t, DefaultSortBy, s.SortBy)
	assert.Equal(t, OrderDesc, s.SortOrder)
	assert.Nil(t, s.MinRevenue)

	v.Set("limit", "5000")
	v.Set("page", "-4")
	s = ParseValues(v)
	assert.Equal(t, MaxLimit, s.Limit)
	assert.Equal(t, 1, s.Page)
}

func TestRunHugePage(t *testing.T) {
	res := Run(memory.Campaigns(), Spec{Page: int(^uint(0) >> 1), Limit: 100})
	assert.Empty(t, res.Data)
	assert.Equal(t, 10, res.Pagination.Total)
}
