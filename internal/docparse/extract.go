package docparse

import (
	"bytes"
	"fmt"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"

	"solarops/internal/domain"
)

// ExtractText pulls the raw text out of a document according to its declared
// format. The legacy binary `doc` format is unsupported: it yields an empty
// string and a logged warning rather than an error, so the caller degrades
// to an empty parse result.
func ExtractText(content []byte, format domain.DocumentFormat) (string, error) {
	switch format {
	case domain.FormatPDF:
		return extractPDF(content)
	case domain.FormatDOCX:
		return extractDOCX(content)
	case domain.FormatDOC:
		log.Printf("docparse: legacy .doc format not supported, convert to .docx or use XML")
		return "", nil
	case domain.FormatTXT:
		return extractTXT(content)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
}

func extractPDF(content []byte) (text string, err error) {
	// The pdf reader panics on some malformed xref tables; turn that into
	// an extraction error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: pdf reader: %v", domain.ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailed, pageNum, err)
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

var (
	docxParaEndRe = regexp.MustCompile(`</w:p>`)
	docxTabRe     = regexp.MustCompile(`<w:tab[^>]*/>`)
	docxTagRe     = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCX(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: docx reader: %v", domain.ErrExtractionFailed, err)
	}
	defer doc.Close()

	// GetContent returns the raw word/document.xml body. Paragraph ends
	// become newlines and tab marks become tabs before stripping tags, so
	// table rows keep a line-per-row shape the item extractor can scan.
	raw := doc.Editable().GetContent()
	raw = docxParaEndRe.ReplaceAllString(raw, "\n")
	raw = docxTabRe.ReplaceAllString(raw, "\t")
	return docxTagRe.ReplaceAllString(raw, ""), nil
}

func extractTXT(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}
	// Fall back to Latin-1, which accepts any byte sequence.
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("%w: decoding text file: %v", domain.ErrExtractionFailed, err)
	}
	return string(decoded), nil
}
