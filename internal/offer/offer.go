// Package offer renders commercial offer PDFs for installation projects.
package offer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"solarops/internal/domain"
)

// diacriticReplacer maps Romanian diacritics to their ASCII equivalents. The
// built-in PDF fonts cover Latin-1 only, so the text is transliterated rather
// than rendered broken.
var diacriticReplacer = strings.NewReplacer(
	"ă", "a", "Ă", "A",
	"â", "a", "Â", "A",
	"î", "i", "Î", "I",
	"ș", "s", "Ș", "S",
	"ş", "s", "Ş", "S",
	"ț", "t", "Ț", "T",
	"ţ", "t", "Ţ", "T",
)

// RemoveDiacritics transliterates Romanian diacritics to ASCII.
func RemoveDiacritics(s string) string {
	return diacriticReplacer.Replace(s)
}

var terms = []string{
	"Preturile sunt exprimate in RON si nu includ TVA.",
	"Oferta este valabila 30 de zile de la data emiterii.",
	"Timpul de livrare va fi confirmat la plasarea comenzii.",
	"Montajul si punerea in functiune sunt incluse in pret.",
	"Garantie conform specificatiilor producatorilor.",
}

// CommercialOfferPDF renders an offer PDF for the project and its planned
// materials. The returned bytes are a complete A4 document.
func CommercialOfferPDF(project *domain.Project, materials []domain.ProjectMaterialDetail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 12, "OFERTA COMERCIALA", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(30, 64, 175)
		pdf.CellFormat(0, 8, RemoveDiacritics(text), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
	infoRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(60, 7, RemoveDiacritics(label), "", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(80, 7, RemoveDiacritics(value), "", 1, "L", false, 0, "")
	}
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	heading("Detalii Oferta")
	now := time.Now()
	infoRow("Data ofertei:", now.Format("02.01.2006"))
	infoRow("Nr. oferta:", fmt.Sprintf("OF-%s-%s", shortID(project), now.Format("20060102")))
	infoRow("Valabilitate:", "30 zile")
	pdf.Ln(6)

	heading("Date Client")
	infoRow("Nume client:", orNA(project.ClientName))
	infoRow("Contact:", orNA(project.ClientContact))
	infoRow("Locatie:", orNA(project.Location))
	pdf.Ln(6)

	heading("Detalii Proiect")
	infoRow("Nume proiect:", orNA(project.Name))
	if project.CapacityKW != nil {
		infoRow("Capacitate sistem:", fmt.Sprintf("%g kW", *project.CapacityKW))
	} else {
		infoRow("Capacitate sistem:", "N/A")
	}
	infoRow("Status:", statusLabel(project.Status))
	if project.StartDate != nil {
		infoRow("Data start estimata:", project.StartDate.Format("2006-01-02"))
	}
	pdf.Ln(6)

	if len(materials) > 0 {
		heading("Materiale si Costuri")
		writeMaterialsTable(pdf, materials)
		pdf.Ln(6)
	} else if project.EstimatedCost != nil {
		heading("Estimare Cost")
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(60, 8, "Cost estimat total:", "", 0, "R", false, 0, "")
		pdf.CellFormat(80, 8, fmt.Sprintf("%.2f RON", *project.EstimatedCost), "", 1, "L", false, 0, "")
		pdf.Ln(6)
	}

	if project.Notes != "" {
		heading("Note")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, RemoveDiacritics(project.Notes), "", "L", false)
		pdf.Ln(6)
	}

	heading("Termeni si Conditii")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, term := range terms {
		pdf.CellFormat(0, 6, "- "+term, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("offer: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMaterialsTable(pdf *gofpdf.Fpdf, materials []domain.ProjectMaterialDetail) {
	widths := []float64{10, 60, 30, 20, 25, 25}
	headers := []string{"Nr.", "Material", "SKU", "Cant.", "Pret (RON)", "Total (RON)"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(30, 64, 175)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)

	total := 0.0
	for idx, m := range materials {
		lineTotal := m.QuantityPlanned * m.UnitPrice
		total += lineTotal

		fill := idx%2 == 1
		pdf.SetFillColor(243, 244, 246)
		pdf.CellFormat(widths[0], 8, fmt.Sprintf("%d", idx+1), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[1], 8, RemoveDiacritics(m.MaterialName), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 8, m.MaterialSKU, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%.2f", m.QuantityPlanned), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%.2f", m.UnitPrice), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[5], 8, fmt.Sprintf("%.2f", lineTotal), "1", 1, "R", fill, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(219, 234, 254)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 10, "", "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4], 10, "TOTAL:", "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[5], 10, fmt.Sprintf("%.2f", total), "1", 1, "R", true, 0, "")
}

// shortID keeps the offer number readable instead of embedding a full UUID.
func shortID(project *domain.Project) string {
	id := project.ID.String()
	if len(id) >= 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

// statusLabel renders a project status the way it appears on paper.
func statusLabel(status domain.ProjectStatus) string {
	words := strings.Split(string(status), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
