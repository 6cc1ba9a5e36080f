package pricejobs

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// unset is printed in place of an unset currency.
const unset = "-"

func orUnset(s string) string {
	if s == "" {
		return unset
	}
	return s
}

// FormatDatedPrice returns a one line printable form of a job:
//
//	                    AAPL / USD @ 2025-01-02 [ builtin.yahoo(AAPL),builtin.google(1/NASDAQ:AAPL) ]
//
// The pair is right aligned on 32 characters and the date, or "latest", left
// aligned on 10.
func FormatDatedPrice(p DatedPrice) string {
	sources := make([]string, len(p.Sources))
	for i, s := range p.Sources {
		inv := ""
		if s.Invert {
			inv = "1/"
		}
		sources[i] = fmt.Sprintf("%s(%s%s)", s.Provider, inv, s.Symbol)
	}
	on := "latest"
	if !p.Date.IsZero() {
		on = p.Date.String()
	}
	pair := orUnset(p.Base) + " / " + orUnset(p.Quote)
	return fmt.Sprintf("%32s @ %-10s [ %s ]", pair, on, strings.Join(sources, ","))
}

// logCurrencyList logs each pair on its own debug line.
func logCurrencyList(log logrus.FieldLogger, message string, currencies Pairs) {
	for pair := range currencies.All() {
		log.Debugf("%s: %32s", message, pair)
	}
}

// RenderMarkdown renders jobs as a markdown table.
func RenderMarkdown(jobs []DatedPrice) string {
	var b strings.Builder
	b.WriteString("| Base | Quote | Date | Sources |\n")
	b.WriteString("|------|-------|------|---------|\n")
	for _, job := range jobs {
		on := "latest"
		if !job.Date.IsZero() {
			on = job.Date.String()
		}
		sources := make([]string, len(job.Sources))
		for i, s := range job.Sources {
			inv := ""
			if s.Invert {
				inv = "^"
			}
			sources[i] = "`" + s.Provider.String() + "/" + inv + s.Symbol + "`"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", orUnset(job.Base), orUnset(job.Quote), on, strings.Join(sources, ", "))
	}
	return b.String()
}
