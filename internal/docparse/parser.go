// Package docparse extracts structured invoice data from unstructured
// documents. The heuristic path (pdf, docx, txt) is best-effort: undetected
// fields keep their defaults and the parse never fails on content alone. The
// xml path delegates to the strict UBL parser. All functions are stateless
// and safe for concurrent use.
package docparse

import (
	"bytes"
	"log"

	"solarops/internal/domain"
	"solarops/internal/ubl"
)

// Parser is the document parser facade. It dispatches on the declared file
// format and normalizes every path to one InvoiceData shape.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse extracts invoice data from a document of the declared format.
func (p *Parser) Parse(content []byte, format domain.DocumentFormat) (*domain.InvoiceData, error) {
	if format == domain.FormatXML {
		return ubl.Parse(bytes.NewReader(content))
	}

	text, err := ExtractText(content, format)
	if err != nil {
		return nil, err
	}
	if text == "" {
		log.Printf("docparse: no text extracted from %s file", format)
		return domain.NewInvoiceData(), nil
	}
	return ParseText(text), nil
}

// ParseText runs the field and line-item extractors over already-extracted
// text and merges their results.
func ParseText(text string) *domain.InvoiceData {
	result := ExtractFields(text)
	result.Items = ExtractLineItems(text)
	return result
}
