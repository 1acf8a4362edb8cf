package docparse

import (
	"regexp"
	"strings"
	"unicode"

	"solarops/internal/domain"
)

var (
	descriptionKeywords = []string{"descriere", "description", "produs", "material", "item"}
	quantityKeywords    = []string{"cantitate", "quantity", "qty", "cant"}

	// aggregateKeywords mark summary rows that must never become items.
	aggregateKeywords = []string{"total", "subtotal", "tva", "tax", "discount"}

	// tableHeaderKeywords identify column-header rows mistaken for items.
	tableHeaderKeywords = []string{"descriere", "description", "cantitate", "quantity", "pret", "price", "produs", "product"}

	numberTokenRe = regexp.MustCompile(`\d+(?:[,\.]\d+)?`)
)

// tableScanWindow bounds how many lines after a detected header are parsed
// as candidate rows.
const tableScanWindow = 100

// ExtractLineItems finds a probable item table in the text and parses its
// rows. A line holding both a description-like and a quantity-like keyword is
// taken as the table header and up to the next 100 lines become candidates.
// When no table is found, every line of the document is retried with a
// stricter value-sanity guard (quantity and unit price must be positive) to
// offset the higher false-positive risk. Rows the per-line parser rejects are
// skipped silently.
func ExtractLineItems(text string) []domain.LineItem {
	items := []domain.LineItem{}
	lines := strings.Split(text, "\n")

	headerIdx := -1
	for i, line := range lines {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, descriptionKeywords) && containsAny(lineLower, quantityKeywords) {
			headerIdx = i
			break
		}
	}

	if headerIdx >= 0 {
		end := headerIdx + tableScanWindow
		if end > len(lines) {
			end = len(lines)
		}
		for i := headerIdx + 1; i < end; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}
			if item, ok := ParseLineItem(line); ok {
				items = append(items, item)
			}
		}
	}

	if len(items) == 0 {
		for _, line := range lines {
			if item, ok := ParseLineItem(line); ok && item.Quantity > 0 && item.UnitPrice > 0 {
				items = append(items, item)
			}
		}
	}

	return items
}

// ParseLineItem attempts to read one invoice row from a line of text.
// Expected shapes:
//
//	"Product name    10    100.00    1000.00"
//	"Product name | 10 | 100.00 | 1000.00"
//	"Product name, 10 buc, 100.00 RON, 1000.00 RON"
//
// With three or more numeric tokens the last three are taken as quantity,
// unit price, and total: trailing numbers are the most reliable because
// leading ones are often part of the description (model numbers, wattages).
// With exactly two, the total is computed as quantity * unit price.
func ParseLineItem(line string) (domain.LineItem, bool) {
	lineLower := strings.TrimSpace(strings.ToLower(line))

	if containsAny(lineLower, aggregateKeywords) {
		return domain.LineItem{}, false
	}

	// A line carrying two or more column-header keywords but almost no
	// digits is the table header itself, not a row.
	headerCount := 0
	for _, kw := range tableHeaderKeywords {
		if strings.Contains(lineLower, kw) {
			headerCount++
		}
	}
	if headerCount >= 2 && countDigits(line) < 3 {
		return domain.LineItem{}, false
	}

	tokens := numberTokenRe.FindAllString(line, -1)
	if len(tokens) < 2 {
		return domain.LineItem{}, false
	}

	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := parseAmount(tok)
		if err != nil {
			return domain.LineItem{}, false
		}
		values[i] = v
	}

	var quantity, unitPrice, totalPrice float64
	if len(values) >= 3 {
		// The total is taken verbatim rather than recomputed; source
		// documents round their own line totals.
		quantity = values[len(values)-3]
		unitPrice = values[len(values)-2]
		totalPrice = values[len(values)-1]
	} else {
		quantity = values[0]
		unitPrice = values[1]
		totalPrice = quantity * unitPrice
	}

	description := descriptionBeforeDigits(line)
	if len([]rune(description)) < 3 || isAllDigits(strings.ReplaceAll(description, " ", "")) {
		return domain.LineItem{}, false
	}

	return domain.LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
	}, true
}

// descriptionBeforeDigits returns the trimmed text before the first digit,
// or the first 50 characters when the line has no digits.
func descriptionBeforeDigits(line string) string {
	for i, r := range line {
		if unicode.IsDigit(r) {
			return strings.TrimSpace(line[:i])
		}
	}
	runes := []rune(line)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return strings.TrimSpace(string(runes))
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
