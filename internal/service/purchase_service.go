package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// PurchaseItemInput is one line of a purchase being created.
type PurchaseItemInput struct {
	MaterialID  *uuid.UUID `json:"material_id"`
	Description string     `json:"description" binding:"required"`
	SKU         string     `json:"sku"`
	Quantity    float64    `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64    `json:"unit_price"`
	TotalPrice  float64    `json:"total_price"`
}

// CreatePurchaseInput is the DTO for creating a purchase with its items.
type CreatePurchaseInput struct {
	Supplier      string              `json:"supplier" binding:"required"`
	PurchaseDate  string              `json:"purchase_date" binding:"required"`
	InvoiceNumber string              `json:"invoice_number"`
	TotalAmount   float64             `json:"total_amount"`
	Currency      string              `json:"currency"`
	Notes         string              `json:"notes"`
	Items         []PurchaseItemInput `json:"items"`
}

// PurchaseService defines the purchase recording contract.
type PurchaseService interface {
	Create(ctx context.Context, input CreatePurchaseInput) (*domain.PurchaseDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseDetail, error)
	List(ctx context.Context, offset, limit int) ([]domain.Purchase, int, error)
	ParsePreview(ctx context.Context, filename string, content []byte) (*domain.InvoiceData, error)
}

type purchaseService struct {
	purchases port.PurchaseRepository
	stock     StockService
	parser    port.DocumentParser
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(purchases port.PurchaseRepository, stock StockService, parser port.DocumentParser) PurchaseService {
	return &purchaseService{purchases: purchases, stock: stock, parser: parser}
}

// Create records a purchase with its items. Items matched to a material also
// produce an "in" stock movement referencing the purchase.
func (s *purchaseService) Create(ctx context.Context, input CreatePurchaseInput) (*domain.PurchaseDetail, error) {
	purchaseDate, err := time.Parse("2006-01-02", input.PurchaseDate)
	if err != nil {
		purchaseDate = time.Now().UTC()
	}

	purchase := &domain.Purchase{
		Supplier:      input.Supplier,
		PurchaseDate:  purchaseDate,
		InvoiceNumber: input.InvoiceNumber,
		TotalAmount:   input.TotalAmount,
		Currency:      input.Currency,
		Notes:         input.Notes,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	for _, itemInput := range input.Items {
		item := &domain.PurchaseItem{
			PurchaseID:  purchase.ID,
			MaterialID:  itemInput.MaterialID,
			Description: itemInput.Description,
			SKU:         itemInput.SKU,
			Quantity:    itemInput.Quantity,
			UnitPrice:   itemInput.UnitPrice,
			TotalPrice:  itemInput.TotalPrice,
		}
		if err := s.purchases.CreateItem(ctx, item); err != nil {
			return nil, err
		}

		if item.MaterialID != nil {
			refID := purchase.ID
			_, err := s.stock.RecordMovement(ctx, RecordMovementInput{
				MaterialID:    *item.MaterialID,
				MovementType:  string(domain.MovementIn),
				Quantity:      item.Quantity,
				ReferenceType: string(domain.ReferencePurchase),
				ReferenceID:   &refID,
				Notes:         "Purchase from " + purchase.Supplier,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return s.GetByID(ctx, purchase.ID)
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseDetail, error) {
	purchase, err := s.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.purchases.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.PurchaseDetail{Purchase: *purchase, Items: items}, nil
}

func (s *purchaseService) List(ctx context.Context, offset, limit int) ([]domain.Purchase, int, error) {
	return s.purchases.List(ctx, offset, limit)
}

// ParsePreview runs the in-process document parser over an uploaded file and
// returns the extracted invoice data without persisting anything.
func (s *purchaseService) ParsePreview(ctx context.Context, filename string, content []byte) (*domain.InvoiceData, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	format, ok := domain.ParseableFormats[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return s.parser.Parse(content, format)
}
