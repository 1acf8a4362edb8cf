package docparse

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	dayFirstRe = regexp.MustCompile(`^(\d{1,2})[\./-](\d{1,2})[\./-](\d{4})`)
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// NormalizeDate converts a date string to ISO form (YYYY-MM-DD). Day-first
// (European) ordering is assumed for D.M.YYYY inputs; day and month values
// are not validated against the calendar. Unrecognized inputs are returned
// unchanged and the caller decides the fallback.
func NormalizeDate(dateStr string) string {
	if m := dayFirstRe.FindStringSubmatch(dateStr); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	}
	if m := isoDateRe.FindStringSubmatch(dateStr); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}
	return dateStr
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// parseAmount converts a numeric token with `,`/`.`/space separators to a
// float. Comma is treated as a decimal point; spaces are dropped.
func parseAmount(s string) (float64, error) {
	cleaned := ""
	for _, r := range s {
		switch r {
		case ',':
			cleaned += "."
		case ' ':
		default:
			cleaned += string(r)
		}
	}
	return strconv.ParseFloat(cleaned, 64)
}
