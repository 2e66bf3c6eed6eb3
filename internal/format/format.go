// Package format renders amounts, dates and statuses for the dashboard views.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DateLayout = "02 Jan 2006"

// Amount renders v with two decimals and thousands separators, followed by
// the currency code when one is given.
func Amount(v float64, currency string) string {
	s := message.NewPrinter(language.English).Sprintf("%.2f", v)
	if currency == "" {
		return s
	}
	return s + " " + strings.ToUpper(currency)
}

// Percent renders v as a percentage with up to two decimals.
func Percent(v float64) string {
	s := message.NewPrinter(language.English).Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "%"
}

// Date renders t as "02 Jan 2006", or "-" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

// Status turns backend enum values such as "IN_PROGRESS" into "In Progress".
func Status(s string) string {
	if s == "" {
		return "-"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(s), "_", " "))
}

// Address shortens a wallet address or transaction hash to its head and tail.
func Address(s string) string {
	const keep = 6
	if len(s) <= 2*keep+3 {
		return s
	}
	return s[:keep] + "..." + s[len(s)-keep:]
}
