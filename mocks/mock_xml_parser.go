package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"solarops/internal/domain"
)

// MockXMLInvoiceParser is a mock implementation of port.XMLInvoiceParser.
type MockXMLInvoiceParser struct {
	mock.Mock
}

func (m *MockXMLInvoiceParser) ParseXML(ctx context.Context, filename string, content []byte) (*domain.InvoiceData, error) {
	args := m.Called(ctx, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}

// MockDocumentParser is a mock implementation of port.DocumentParser.
type MockDocumentParser struct {
	mock.Mock
}

func (m *MockDocumentParser) Parse(content []byte, format domain.DocumentFormat) (*domain.InvoiceData, error) {
	args := m.Called(content, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceData), args.Error(1)
}
