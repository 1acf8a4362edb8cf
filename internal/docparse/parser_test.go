package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
)

const sampleInvoiceText = `S.C. Electro Solar S.R.L.
Factura: ES-2024-0042
Data: 15.03.2024

Descriere            Cantitate   Pret      Valoare
Panou fotovoltaic 450W   10   850.00   8500.00
Invertor hibrid 8kW      1    4500.00  4500.00

Subtotal: 13000.00
TVA 19%: 2470.00
Total: 15470.00`

func TestParseText_FullDocument(t *testing.T) {
	result := ParseText(sampleInvoiceText)

	assert.Equal(t, "ES-2024-0042", result.InvoiceNumber)
	assert.Equal(t, "2024-03-15", result.InvoiceDate)
	assert.Equal(t, "Electro Solar S.R.L.", result.SupplierName)
	assert.InDelta(t, 15470.00, result.TotalAmount, 0.001)
	assert.Equal(t, "RON", result.Currency)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "Panou fotovoltaic", result.Items[0].Description)
	assert.InDelta(t, 10, result.Items[0].Quantity, 0.001)
	assert.Equal(t, "Invertor hibrid", result.Items[1].Description)
}

func TestParseText_EmptyKeepsDefaults(t *testing.T) {
	result := ParseText("")

	assert.Empty(t, result.InvoiceNumber)
	assert.Equal(t, "RON", result.Currency)
	assert.Empty(t, result.Items)
}

func TestParse_TXT(t *testing.T) {
	p := New()

	result, err := p.Parse([]byte(sampleInvoiceText), domain.FormatTXT)

	require.NoError(t, err)
	assert.Equal(t, "ES-2024-0042", result.InvoiceNumber)
	require.Len(t, result.Items, 2)
}

func TestParse_TXTLatin1Fallback(t *testing.T) {
	p := New()

	// 0xE3 is not valid UTF-8 on its own; the Latin-1 fallback must accept it.
	content := append([]byte("Factura: F-1\nTotal: 100.00\nPre"), 0xE3)

	result, err := p.Parse(content, domain.FormatTXT)

	require.NoError(t, err)
	assert.Equal(t, "F-1", result.InvoiceNumber)
	assert.InDelta(t, 100.00, result.TotalAmount, 0.001)
}

func TestParse_LegacyDocDegradesToDefaults(t *testing.T) {
	p := New()

	result, err := p.Parse([]byte{0xd0, 0xcf, 0x11, 0xe0}, domain.FormatDOC)

	require.NoError(t, err)
	assert.Empty(t, result.InvoiceNumber)
	assert.Equal(t, "RON", result.Currency)
}

func TestParse_UnknownFormat(t *testing.T) {
	p := New()

	_, err := p.Parse([]byte("data"), domain.DocumentFormat("odt"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
