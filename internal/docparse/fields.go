package docparse

import (
	"regexp"
	"strings"

	"solarops/internal/domain"
)

// Pattern cascades are ordered most-specific first; for each field the first
// match of the first matching pattern on the first matching line wins.
var (
	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:invoice|factura|nr\.?\s*factura)[:\s#]*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)invoice\s*(?:no|number|nr)[:\s#]*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)nr\.?\s*(\d+[A-Z0-9\-/]*)`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:date|data)[:\s]*(\d{1,2}[\./-]\d{1,2}[\./-]\d{2,4})`),
		regexp.MustCompile(`(\d{1,2}[\./-]\d{1,2}[\./-]\d{2,4})`),
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	}

	supplierPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:supplier|furnizor|seller)[:\s]+(.+)`),
		regexp.MustCompile(`(?i)(?:s\.?c\.?)\s+([A-Z][A-Za-z\s&\.]+(?:s\.?r\.?l\.?|s\.?a\.?))`),
	}

	amountRe = regexp.MustCompile(`(\d{1,3}(?:[,\.\s]\d{3})*[,\.]\d{2}|\d+[,\.]\d{2}|\d+)`)
)

// supplierScanLines limits the supplier search to the top of the document.
const supplierScanLines = 10

// ExtractFields scans a document line by line and fills the invoice-level
// fields of an InvoiceData. Every field except the total is locked in by its
// first match and never overwritten. The total is re-evaluated on every line
// mentioning "total" or "suma" keeping the maximum value seen, since grand
// totals normally exceed the subtotal lines above them. Missing fields keep
// their defaults; this function never fails.
func ExtractFields(text string) *domain.InvoiceData {
	result := domain.NewInvoiceData()

	for i, line := range strings.Split(text, "\n") {
		lineLower := strings.TrimSpace(strings.ToLower(line))

		if result.InvoiceNumber == "" {
			for _, re := range invoiceNumberPatterns {
				if m := re.FindStringSubmatch(line); m != nil {
					result.InvoiceNumber = strings.TrimSpace(m[1])
					break
				}
			}
		}

		if result.InvoiceDate == "" {
			for _, re := range datePatterns {
				if m := re.FindStringSubmatch(line); m != nil {
					result.InvoiceDate = NormalizeDate(strings.TrimSpace(m[1]))
					break
				}
			}
		}

		if result.SupplierName == "" && i < supplierScanLines {
			for _, re := range supplierPatterns {
				if m := re.FindStringSubmatch(line); m != nil {
					result.SupplierName = strings.TrimSpace(m[1])
					break
				}
			}
		}

		if strings.Contains(lineLower, "total") || strings.Contains(lineLower, "suma") {
			if m := amountRe.FindStringSubmatch(line); m != nil {
				if amount, err := parseAmount(m[1]); err == nil && amount > result.TotalAmount {
					result.TotalAmount = amount
				}
			}
		}
	}

	return result
}
