// Package i18n formats month buckets (YYYY-MM) as human-readable labels.
// Labels feed the name fields of report rows; chart and report consumers
// display them verbatim.
package i18n

import (
	"fmt"
	"time"
)

// monthNames maps a locale to its lowercase month names, January first.
var monthNames = map[string][12]string{
	"pt-BR": {
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	"es": {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
}

// MonthLabel turns a YYYY-MM month key into a locale-formatted label, e.g.
// "2024-01" -> "janeiro de 2024" for pt-BR. Unknown locales fall back to
// English ("January 2024"); a malformed key is returned unchanged.
func MonthLabel(monthKey, locale string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}

	names, ok := monthNames[locale]
	if !ok {
		return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
	}
	switch locale {
	case "pt-BR":
		return fmt.Sprintf("%s de %d", names[t.Month()-1], t.Year())
	default:
		return fmt.Sprintf("%s %d", names[t.Month()-1], t.Year())
	}
}

// Labeler binds MonthLabel to a locale so report code can take a plain
// func(string) string collaborator.
func Labeler(locale string) func(monthKey string) string {
	return func(monthKey string) string {
		return MonthLabel(monthKey, locale)
	}
}
