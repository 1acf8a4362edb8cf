package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// UploadResult is returned after a successful XML invoice upload.
type UploadResult struct {
	Invoice    *domain.Invoice     `json:"invoice"`
	PurchaseID uuid.UUID           `json:"purchase_id"`
	ParsedData *domain.InvoiceData `json:"parsed_data"`
}

// InvoiceDetail is an Invoice with its linked purchase, when one exists.
type InvoiceDetail struct {
	domain.Invoice
	Purchase *domain.Purchase `json:"purchase,omitempty"`
}

// InvoiceService defines the supplier invoice contract.
type InvoiceService interface {
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceDetail, error)
	Upload(ctx context.Context, filename string, content []byte) (*UploadResult, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

type invoiceService struct {
	invoices  port.InvoiceRepository
	purchases port.PurchaseRepository
	storage   port.ObjectStorage
	parser    port.XMLInvoiceParser
	bucket    string
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoices port.InvoiceRepository,
	purchases port.PurchaseRepository,
	storage port.ObjectStorage,
	parser port.XMLInvoiceParser,
	bucket string,
) InvoiceService {
	return &invoiceService{
		invoices:  invoices,
		purchases: purchases,
		storage:   storage,
		parser:    parser,
		bucket:    bucket,
	}
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoices.List(ctx, offset, limit)
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceDetail, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &InvoiceDetail{Invoice: *invoice}
	if invoice.PurchaseID != nil {
		purchase, err := s.purchases.GetByID(ctx, *invoice.PurchaseID)
		if err == nil {
			detail.Purchase = purchase
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return detail, nil
}

// Upload stores the XML in object storage, has the parser service extract the
// invoice data, and creates the purchase and invoice records. A previously
// uploaded invoice number is rejected before anything is written to the
// database.
func (s *invoiceService) Upload(ctx context.Context, filename string, content []byte) (*UploadResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xml") {
		return nil, domain.ErrNotXML
	}

	parsed, err := s.parser.ParseXML(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	// Invoice date falls back to today when the document carries none.
	invoiceDate, err := time.Parse("2006-01-02", parsed.InvoiceDate)
	if err != nil {
		invoiceDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	if _, err := s.invoices.GetByNumber(ctx, parsed.InvoiceNumber); err == nil {
		return nil, domain.ErrDuplicateInvoice
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	storageKey := fmt.Sprintf("invoices/%s/%s", uuid.New(), filename)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         storageKey,
		Body:        bytes.NewReader(content),
		ContentType: "application/xml",
		Size:        int64(len(content)),
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	purchase := &domain.Purchase{
		Supplier:      parsed.SupplierName,
		PurchaseDate:  invoiceDate,
		InvoiceNumber: parsed.InvoiceNumber,
		TotalAmount:   parsed.TotalAmount,
		Currency:      parsed.Currency,
		Notes:         fmt.Sprintf("Created from uploaded invoice %s", filename),
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	purchaseID := purchase.ID
	invoice := &domain.Invoice{
		InvoiceNumber: parsed.InvoiceNumber,
		Supplier:      parsed.SupplierName,
		InvoiceDate:   invoiceDate,
		TotalAmount:   parsed.TotalAmount,
		Currency:      parsed.Currency,
		StorageKey:    storageKey,
		PurchaseID:    &purchaseID,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}

	log.Printf("invoice %s uploaded, purchase %s created", invoice.InvoiceNumber, purchase.ID)

	return &UploadResult{
		Invoice:    invoice,
		PurchaseID: purchase.ID,
		ParsedData: parsed,
	}, nil
}

func (s *invoiceService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.bucket, invoice.StorageKey, 900)
}
