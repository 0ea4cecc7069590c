package classify

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywords []byte

// Rule assigns Label to any text containing one of Keywords.
type Rule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// Table is an ordered rule list with a fallback label.
type Table struct {
	Default string `yaml:"default"`
	Rules   []Rule `yaml:"rules"`
}

// Tag returns the label of the first rule that has a keyword contained in
// text (case-insensitive), or the table default.
func (t Table) Tag(text string) string {
	lower := strings.ToLower(text)
	for _, r := range t.Rules {
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return r.Label
			}
		}
	}
	return t.Default
}

// InsightTables configures insight extraction.
type InsightTables struct {
	Limit    int   `yaml:"limit"`
	Category Table `yaml:"category"`
	Icon     Table `yaml:"icon"`
}

// PredictionTables configures prediction extraction.
type PredictionTables struct {
	Limit      int   `yaml:"limit"`
	Confidence Table `yaml:"confidence"`
	Trend      Table `yaml:"trend"`
	Icon       Table `yaml:"icon"`
}

// Tables is the full keyword configuration of a Classifier.
type Tables struct {
	Insight    InsightTables    `yaml:"insight"`
	Prediction PredictionTables `yaml:"prediction"`
}

// DefaultTables returns the built-in English keyword tables.
func DefaultTables() Tables {
	t, err := ParseTables(strings.NewReader(string(defaultKeywords)))
	if err != nil {
		panic(fmt.Sprintf("classify: embedded keywords.yaml: %v", err))
	}
	return t
}

// ParseTables decodes and validates YAML keyword tables.
func ParseTables(r io.Reader) (Tables, error) {
	var t Tables
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return Tables{}, fmt.Errorf("decode keyword tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// LoadTables reads keyword tables from a YAML file. An empty path yields
// DefaultTables.
func LoadTables(path string) (Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Tables{}, fmt.Errorf("open keyword tables: %w", err)
	}
	defer f.Close()
	return ParseTables(f)
}

func (t Tables) validate() error {
	if t.Insight.Limit <= 0 {
		return errors.New("insight.limit must be positive")
	}
	if t.Prediction.Limit <= 0 {
		return errors.New("prediction.limit must be positive")
	}
	for name, tbl := range map[string]Table{
		"insight.category":      t.Insight.Category,
		"insight.icon":          t.Insight.Icon,
		"prediction.confidence": t.Prediction.Confidence,
		"prediction.trend":      t.Prediction.Trend,
		"prediction.icon":       t.Prediction.Icon,
	} {
		if tbl.Default == "" {
			return fmt.Errorf("%s: default label is required", name)
		}
	}
	return nil
}
