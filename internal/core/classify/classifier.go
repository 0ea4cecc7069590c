// Package classify turns free-form numbered AI output into insight and
// prediction records using keyword tables.
package classify

import (
	"regexp"
	"strings"

	"insights-api/internal/core/domain"
)

var ordinal = regexp.MustCompile(`^\d+\.\s*`)

// Classifier extracts structured records from AI text. It never fails:
// text without numbered lines yields no records.
type Classifier struct {
	tables Tables
}

// New returns a Classifier using the given keyword tables.
func New(t Tables) *Classifier {
	return &Classifier{tables: t}
}

// NewDefault returns a Classifier with the built-in tables.
func NewDefault() *Classifier {
	return New(DefaultTables())
}

// Insights extracts at most Insight.Limit insights from text.
func (c *Classifier) Insights(text string) []domain.Insight {
	blocks := split(text, c.tables.Insight.Limit)
	out := make([]domain.Insight, 0, len(blocks))
	for _, b := range blocks {
		full := b.text()
		out = append(out, domain.Insight{
			Title:       b.title,
			Description: b.description(),
			Category:    c.tables.Insight.Category.Tag(full),
			Icon:        c.tables.Insight.Icon.Tag(full),
		})
	}
	return out
}

// Predictions extracts at most Prediction.Limit predictions from text.
func (c *Classifier) Predictions(text string) []domain.Prediction {
	blocks := split(text, c.tables.Prediction.Limit)
	out := make([]domain.Prediction, 0, len(blocks))
	for _, b := range blocks {
		full := b.text()
		out = append(out, domain.Prediction{
			Title:       b.title,
			Description: b.description(),
			Confidence:  c.tables.Prediction.Confidence.Tag(full),
			Trend:       c.tables.Prediction.Trend.Tag(full),
			Icon:        c.tables.Prediction.Icon.Tag(full),
		})
	}
	return out
}

type block struct {
	title string
	lines []string
}

func (b block) description() string { return strings.Join(b.lines, " ") }

func (b block) text() string {
	if len(b.lines) == 0 {
		return b.title
	}
	return b.title + " " + b.description()
}

// split groups lines into numbered blocks. Lines before the first numbered
// line are dropped. At most limit blocks are returned.
func split(text string, limit int) []block {
	var (
		out []block
		cur *block
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if loc := ordinal.FindStringIndex(line); loc != nil {
			if len(out) == limit {
				break
			}
			out = append(out, block{title: line[loc[1]:]})
			cur = &out[len(out)-1]
			continue
		}
		if cur != nil {
			cur.lines = append(cur.lines, line)
		}
	}
	return out
}
