package port

import (
	"context"

	"solarops/internal/domain"
)

// XMLInvoiceParser abstracts the remote UBL/e-Factura parser service.
type XMLInvoiceParser interface {
	ParseXML(ctx context.Context, filename string, content []byte) (*domain.InvoiceData, error)
}

// DocumentParser abstracts in-process document parsing for the heuristic path.
type DocumentParser interface {
	Parse(content []byte, format domain.DocumentFormat) (*domain.InvoiceData, error)
}
