package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineItem_ThreeNumbers(t *testing.T) {
	item, ok := ParseLineItem("Cablu solar 6mm    100    12.50    1250.00")

	require.True(t, ok)
	assert.Equal(t, "Cablu solar", item.Description)
	assert.InDelta(t, 100, item.Quantity, 0.001)
	assert.InDelta(t, 12.50, item.UnitPrice, 0.001)
	assert.InDelta(t, 1250.00, item.TotalPrice, 0.001)
}

func TestParseLineItem_LastThreeNumbersWin(t *testing.T) {
	// Leading numbers belong to the description (model codes, wattage).
	item, ok := ParseLineItem("Panou fotovoltaic 450W 10 850.00 8500.00")

	require.True(t, ok)
	assert.InDelta(t, 10, item.Quantity, 0.001)
	assert.InDelta(t, 850.00, item.UnitPrice, 0.001)
	assert.InDelta(t, 8500.00, item.TotalPrice, 0.001)
}

func TestParseLineItem_TotalTakenVerbatim(t *testing.T) {
	// A stated total is kept even when it disagrees with qty * price.
	item, ok := ParseLineItem("Invertor hibrid 2 4500.00 9001.00")

	require.True(t, ok)
	assert.InDelta(t, 9001.00, item.TotalPrice, 0.001)
}

func TestParseLineItem_TwoNumbersComputesTotal(t *testing.T) {
	item, ok := ParseLineItem("Structura montaj, 4, 320.50")

	require.True(t, ok)
	assert.InDelta(t, 4, item.Quantity, 0.001)
	assert.InDelta(t, 320.50, item.UnitPrice, 0.001)
	assert.InDelta(t, 1282.00, item.TotalPrice, 0.001)
}

func TestParseLineItem_RejectsAggregateRows(t *testing.T) {
	for _, line := range []string{
		"Total: 10 100.00 1000.00",
		"Subtotal 2 500.00 1000.00",
		"TVA 19 190.00 1190.00",
	} {
		_, ok := ParseLineItem(line)
		assert.False(t, ok, line)
	}
}

func TestParseLineItem_RejectsTableHeader(t *testing.T) {
	_, ok := ParseLineItem("Produs | Cantitate | Pret | Valoare")
	assert.False(t, ok)
}

func TestParseLineItem_HeaderKeywordsWithRealDigitsAccepted(t *testing.T) {
	// Header keywords inside a genuine product name must not reject the row.
	item, ok := ParseLineItem("Product description plate 5 10.00 50.00")

	require.True(t, ok)
	assert.InDelta(t, 5, item.Quantity, 0.001)
}

func TestParseLineItem_RejectsTooFewNumbers(t *testing.T) {
	_, ok := ParseLineItem("Doar o cifra 5")
	assert.False(t, ok)

	_, ok = ParseLineItem("Niciun numar aici")
	assert.False(t, ok)
}

func TestParseLineItem_RejectsShortDescription(t *testing.T) {
	_, ok := ParseLineItem("ab 10 100.00 1000.00")
	assert.False(t, ok)

	_, ok = ParseLineItem("123 10 100.00 1000.00")
	assert.False(t, ok)
}

func TestExtractLineItems_TableMode(t *testing.T) {
	text := `Factura FAC-001
Descriere            Cantitate   Pret      Valoare
Panou fotovoltaic 450W   10   850.00   8500.00
Invertor hibrid          1    4500.00  4500.00

Total: 13000.00`

	items := ExtractLineItems(text)

	require.Len(t, items, 2)
	assert.Equal(t, "Panou fotovoltaic", items[0].Description)
	assert.InDelta(t, 8500.00, items[0].TotalPrice, 0.001)
	assert.Equal(t, "Invertor hibrid", items[1].Description)
	assert.InDelta(t, 4500.00, items[1].TotalPrice, 0.001)
}

func TestExtractLineItems_FallbackWithoutHeader(t *testing.T) {
	text := "Panou fotovoltaic 450W 10 850.00 8500.00\nInvertor hibrid 1 4500.00 4500.00"

	items := ExtractLineItems(text)

	require.Len(t, items, 2)
	assert.InDelta(t, 10, items[0].Quantity, 0.001)
}

func TestExtractLineItems_FallbackRequiresPositiveValues(t *testing.T) {
	items := ExtractLineItems("Retur marfa 0 0.00 0.00")

	assert.Empty(t, items)
}

func TestExtractLineItems_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractLineItems(""))
}
