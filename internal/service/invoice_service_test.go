package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
	"solarops/internal/port"
	"solarops/internal/service"
	"solarops/mocks"
)

func setupInvoiceService() (service.InvoiceService, *mocks.MockInvoiceRepo, *mocks.MockPurchaseRepo, *mocks.MockObjectStorage, *mocks.MockXMLInvoiceParser) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)
	storage := new(mocks.MockObjectStorage)
	parser := new(mocks.MockXMLInvoiceParser)
	svc := service.NewInvoiceService(invoiceRepo, purchaseRepo, storage, parser, "solarops-invoices")
	return svc, invoiceRepo, purchaseRepo, storage, parser
}

func parsedInvoice() *domain.InvoiceData {
	return &domain.InvoiceData{
		InvoiceNumber: "EF-2024-0099",
		InvoiceDate:   "2024-03-15",
		SupplierName:  "Electro Solar SRL",
		Currency:      "RON",
		TotalAmount:   15470,
		Items:         []domain.LineItem{},
	}
}

// --- Upload ---

func TestInvoiceService_Upload_Success(t *testing.T) {
	svc, invoiceRepo, purchaseRepo, storage, parser := setupInvoiceService()
	content := []byte("<Invoice/>")

	parser.On("ParseXML", mock.Anything, "factura.xml", content).Return(parsedInvoice(), nil)
	invoiceRepo.On("GetByNumber", mock.Anything, "EF-2024-0099").Return(nil, domain.ErrNotFound)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "solarops-invoices" &&
			strings.HasPrefix(in.Key, "invoices/") &&
			strings.HasSuffix(in.Key, "/factura.xml") &&
			in.ContentType == "application/xml"
	})).Return(&port.UploadOutput{}, nil)
	purchaseRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Purchase) bool {
		return p.Supplier == "Electro Solar SRL" &&
			p.InvoiceNumber == "EF-2024-0099" &&
			p.Notes == "Created from uploaded invoice factura.xml"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Purchase).ID = uuid.New()
	}).Return(nil)
	invoiceRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.InvoiceNumber == "EF-2024-0099" &&
			inv.PurchaseID != nil &&
			inv.InvoiceDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil)

	result, err := svc.Upload(context.Background(), "factura.xml", content)

	require.NoError(t, err)
	assert.Equal(t, "EF-2024-0099", result.Invoice.InvoiceNumber)
	assert.Equal(t, result.PurchaseID, *result.Invoice.PurchaseID)
	assert.Equal(t, 15470.0, result.ParsedData.TotalAmount)
	invoiceRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestInvoiceService_Upload_RejectsNonXML(t *testing.T) {
	svc, _, _, _, parser := setupInvoiceService()

	_, err := svc.Upload(context.Background(), "factura.pdf", []byte("%PDF-"))

	assert.ErrorIs(t, err, domain.ErrNotXML)
	parser.AssertNotCalled(t, "ParseXML", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Upload_DuplicateInvoiceNumber(t *testing.T) {
	svc, invoiceRepo, _, storage, parser := setupInvoiceService()
	content := []byte("<Invoice/>")

	parser.On("ParseXML", mock.Anything, "factura.xml", content).Return(parsedInvoice(), nil)
	invoiceRepo.On("GetByNumber", mock.Anything, "EF-2024-0099").Return(&domain.Invoice{}, nil)

	_, err := svc.Upload(context.Background(), "factura.xml", content)

	assert.ErrorIs(t, err, domain.ErrDuplicateInvoice)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestInvoiceService_Upload_ParserErrorPassesThrough(t *testing.T) {
	svc, _, _, _, parser := setupInvoiceService()

	parser.On("ParseXML", mock.Anything, "factura.xml", mock.Anything).Return(nil, domain.ErrParserUnavailable)

	_, err := svc.Upload(context.Background(), "factura.xml", []byte("<Invoice/>"))

	assert.ErrorIs(t, err, domain.ErrParserUnavailable)
}

func TestInvoiceService_Upload_MissingDateFallsBackToToday(t *testing.T) {
	svc, invoiceRepo, purchaseRepo, storage, parser := setupInvoiceService()
	parsed := parsedInvoice()
	parsed.InvoiceDate = ""

	parser.On("ParseXML", mock.Anything, "factura.xml", mock.Anything).Return(parsed, nil)
	invoiceRepo.On("GetByNumber", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	purchaseRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoiceRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return time.Since(inv.InvoiceDate) < 25*time.Hour
	})).Return(nil)

	_, err := svc.Upload(context.Background(), "factura.xml", []byte("<Invoice/>"))

	require.NoError(t, err)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Upload_StorageFailure(t *testing.T) {
	svc, invoiceRepo, purchaseRepo, storage, parser := setupInvoiceService()

	parser.On("ParseXML", mock.Anything, "factura.xml", mock.Anything).Return(parsedInvoice(), nil)
	invoiceRepo.On("GetByNumber", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.Upload(context.Background(), "factura.xml", []byte("<Invoice/>"))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- GetByID ---

func TestInvoiceService_GetByID_WithLinkedPurchase(t *testing.T) {
	svc, invoiceRepo, purchaseRepo, _, _ := setupInvoiceService()
	invoiceID := uuid.New()
	purchaseID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:         invoiceID,
		PurchaseID: &purchaseID,
	}, nil)
	purchaseRepo.On("GetByID", mock.Anything, purchaseID).Return(&domain.Purchase{ID: purchaseID}, nil)

	detail, err := svc.GetByID(context.Background(), invoiceID)

	require.NoError(t, err)
	require.NotNil(t, detail.Purchase)
	assert.Equal(t, purchaseID, detail.Purchase.ID)
}

func TestInvoiceService_GetByID_MissingPurchaseTolerated(t *testing.T) {
	svc, invoiceRepo, purchaseRepo, _, _ := setupInvoiceService()
	invoiceID := uuid.New()
	purchaseID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:         invoiceID,
		PurchaseID: &purchaseID,
	}, nil)
	purchaseRepo.On("GetByID", mock.Anything, purchaseID).Return(nil, domain.ErrNotFound)

	detail, err := svc.GetByID(context.Background(), invoiceID)

	require.NoError(t, err)
	assert.Nil(t, detail.Purchase)
}

// --- DownloadURL ---

func TestInvoiceService_DownloadURL(t *testing.T) {
	svc, invoiceRepo, _, storage, _ := setupInvoiceService()
	invoiceID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:         invoiceID,
		StorageKey: "invoices/abc/factura.xml",
	}, nil)
	storage.On("GetPresignedURL", mock.Anything, "solarops-invoices", "invoices/abc/factura.xml", int64(900)).
		Return("https://s3.example.com/signed", nil)

	url, err := svc.DownloadURL(context.Background(), invoiceID)

	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/signed", url)
}
