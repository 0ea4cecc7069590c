// Package format renders dashboard values the way the en-US client does.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats amount as US dollars with two fraction digits,
// e.g. 124500 -> "$124,500.00" and -2.5 -> "-$2.50".
func Currency(amount float64) string {
	if s, ok := nonFinite(amount); ok {
		return "$" + s
	}
	neg, whole, frac := parts(decimal.NewFromFloat(amount).Round(2), 2)
	out := "$" + whole + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// Number formats n with en-US grouping and up to three fraction digits,
// trailing zeros dropped.
func Number(n float64) string {
	if s, ok := nonFinite(n); ok {
		return s
	}
	neg, whole, frac := parts(decimal.NewFromFloat(n).Round(3), 3)
	out := whole
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	if neg {
		return "-" + out
	}
	return out
}

// Percentage formats value with one fraction digit and an explicit plus
// sign for positive values: 5.3 -> "+5.3%", -2.1 -> "-2.1%", 0 -> "0.0%".
func Percentage(value float64) string {
	if s, ok := nonFinite(value); ok {
		return s + "%"
	}
	s := decimal.NewFromFloat(value).Round(1).StringFixed(1)
	if value > 0 {
		s = "+" + s
	}
	return s + "%"
}

func parts(d decimal.Decimal, places int32) (neg bool, whole, frac string) {
	neg = d.IsNegative()
	whole, frac, _ = strings.Cut(d.Abs().StringFixed(places), ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = printer.Sprintf("%d", n)
	}
	return neg, whole, frac
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "∞", true
	case math.IsInf(f, -1):
		return "-∞", true
	}
	return "", false
}
