package classify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insights-api/internal/core/domain"
)

func TestInsights_NumberedBlocks(t *testing.T) {
	c := NewDefault()

	got := c.Insights("1. Revenue is growing\nThings look great\n2. Risk of churn\nWatch user decline")

	require.Len(t, got, 2)
	assert.Equal(t, domain.Insight{
		Title:       "Revenue is growing",
		Description: "Things look great",
		Category:    domain.CategoryInfo,
		Icon:        "trending-up",
	}, got[0])
	assert.Equal(t, domain.Insight{
		Title:       "Risk of churn",
		Description: "Watch user decline",
		Category:    domain.CategoryWarning,
		Icon:        "target",
	}, got[1])
}

func TestInsights_NoOrdinalLines(t *testing.T) {
	c := NewDefault()

	assert.Empty(t, c.Insights("Everything looks fine.\nNothing to report."))
	assert.Empty(t, c.Insights(""))
	assert.Empty(t, c.Predictions("no numbered list here"))
}

func TestInsights_PreambleIgnoredAndCRLF(t *testing.T) {
	c := NewDefault()

	text := "Here is my analysis:\r\n\r\n1.   Conversion opportunity\r\n  Checkout has potential  \r\n\r\n"
	got := c.Insights(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Conversion opportunity", got[0].Title)
	assert.Equal(t, "Checkout has potential", got[0].Description)
	assert.Equal(t, domain.CategoryOpportunity, got[0].Category)
	assert.Equal(t, "check-circle", got[0].Icon)
}

func TestInsights_FirstMatchingRuleWins(t *testing.T) {
	c := NewDefault()

	// "growth" (positive) is listed before "risk" (warning).
	got := c.Insights("1. Growth at risk")

	require.Len(t, got, 1)
	assert.Equal(t, domain.CategoryPositive, got[0].Category)
	assert.Equal(t, "lightbulb", got[0].Icon)
}

func TestInsights_Truncated(t *testing.T) {
	c := NewDefault()

	var b strings.Builder
	for i := 1; i <= 8; i++ {
		b.WriteString(strings.Repeat("x", i))
		b.WriteString("\n")
		b.WriteString(string(rune('0'+i)) + ". item\n")
	}

	assert.Len(t, c.Insights(b.String()), 5)
	assert.Len(t, c.Predictions(b.String()), 6)
}

func TestPredictions_Tags(t *testing.T) {
	c := NewDefault()

	text := `1. Revenue forecast
Strong increase expected next quarter
2. Engagement
Moderate decline in sessions
3. Customer base
Outlook uncertain
4. Something else`

	got := c.Predictions(text)

	require.Len(t, got, 4)
	assert.Equal(t, domain.Prediction{
		Title:       "Revenue forecast",
		Description: "Strong increase expected next quarter",
		Confidence:  domain.ConfidenceHigh,
		Trend:       domain.DirectionUp,
		Icon:        "dollar-sign",
	}, got[0])
	assert.Equal(t, domain.ConfidenceMedium, got[1].Confidence)
	assert.Equal(t, domain.DirectionDown, got[1].Trend)
	assert.Equal(t, "activity", got[1].Icon)
	assert.Equal(t, domain.ConfidenceLow, got[2].Confidence)
	assert.Equal(t, "users", got[2].Icon)
	assert.Equal(t, domain.ConfidenceMedium, got[3].Confidence)
	assert.Equal(t, domain.DirectionStable, got[3].Trend)
	assert.Equal(t, "trending-up", got[3].Icon)
	assert.Empty(t, got[3].Description)
}

func TestTable_Tag(t *testing.T) {
	tbl := Table{
		Default: "none",
		Rules: []Rule{
			{Label: "a", Keywords: []string{"Alpha"}},
			{Label: "b", Keywords: []string{"", "beta"}},
		},
	}

	assert.Equal(t, "a", tbl.Tag("ALPHA and beta"))
	assert.Equal(t, "b", tbl.Tag("Beta"))
	assert.Equal(t, "none", tbl.Tag("gamma"))
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		got, err := LoadTables("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTables(), got)
		assert.Equal(t, 5, got.Insight.Limit)
		assert.Equal(t, 6, got.Prediction.Limit)
	})

	t.Run("custom file", func(t *testing.T) {
		custom := strings.Replace(string(defaultKeywords), "[positive, growth, improvement]", "[croissance]", 1)
		path := filepath.Join(t.TempDir(), "keywords.yaml")
		require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

		tables, err := LoadTables(path)
		require.NoError(t, err)

		got := New(tables).Insights("1. Forte croissance")
		require.Len(t, got, 1)
		assert.Equal(t, domain.CategoryPositive, got[0].Category)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid tables", func(t *testing.T) {
		_, err := ParseTables(strings.NewReader("insight:\n  limit: 0\n"))
		assert.ErrorContains(t, err, "insight.limit")
	})

	t.Run("missing default", func(t *testing.T) {
		broken := strings.Replace(string(defaultKeywords), "default: stable", "default: \"\"", 1)
		_, err := ParseTables(strings.NewReader(broken))
		assert.ErrorContains(t, err, "prediction.trend")
	})
}
