package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
	"solarops/internal/service"
	"solarops/mocks"
)

func setupPurchaseService() (service.PurchaseService, *mocks.MockPurchaseRepo, *mocks.MockStockService, *mocks.MockDocumentParser) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	stockSvc := new(mocks.MockStockService)
	parser := new(mocks.MockDocumentParser)
	svc := service.NewPurchaseService(purchaseRepo, stockSvc, parser)
	return svc, purchaseRepo, stockSvc, parser
}

// --- Create ---

func TestPurchaseService_Create_MatchedItemRecordsMovement(t *testing.T) {
	svc, purchaseRepo, stockSvc, _ := setupPurchaseService()
	materialID := uuid.New()

	purchaseRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Purchase) bool {
		return p.Supplier == "Electro Solar SRL" &&
			p.PurchaseDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Purchase).ID = uuid.New()
	}).Return(nil)
	purchaseRepo.On("CreateItem", mock.Anything, mock.Anything).Return(nil)
	stockSvc.On("RecordMovement", mock.Anything, mock.MatchedBy(func(in service.RecordMovementInput) bool {
		return in.MaterialID == materialID &&
			in.MovementType == "in" &&
			in.Quantity == 10 &&
			in.ReferenceType == "purchase" &&
			in.Notes == "Purchase from Electro Solar SRL"
	})).Return(&domain.StockMovement{}, nil)
	purchaseRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Purchase{}, nil)
	purchaseRepo.On("ListItems", mock.Anything, mock.Anything).Return([]domain.PurchaseItemDetail{{}}, nil)

	detail, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		Supplier:     "Electro Solar SRL",
		PurchaseDate: "2024-03-15",
		Items: []service.PurchaseItemInput{
			{MaterialID: &materialID, Description: "Panou 450W", Quantity: 10, UnitPrice: 850},
		},
	})

	require.NoError(t, err)
	assert.Len(t, detail.Items, 1)
	stockSvc.AssertExpectations(t)
}

func TestPurchaseService_Create_UnmatchedItemSkipsMovement(t *testing.T) {
	svc, purchaseRepo, stockSvc, _ := setupPurchaseService()

	purchaseRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	purchaseRepo.On("CreateItem", mock.Anything, mock.Anything).Return(nil)
	purchaseRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Purchase{}, nil)
	purchaseRepo.On("ListItems", mock.Anything, mock.Anything).Return([]domain.PurchaseItemDetail{{}}, nil)

	_, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		Supplier:     "Electro Solar SRL",
		PurchaseDate: "2024-03-15",
		Items: []service.PurchaseItemInput{
			{Description: "Consumabile diverse", Quantity: 1, UnitPrice: 50},
		},
	})

	require.NoError(t, err)
	stockSvc.AssertNotCalled(t, "RecordMovement", mock.Anything, mock.Anything)
}

func TestPurchaseService_Create_BadDateFallsBackToNow(t *testing.T) {
	svc, purchaseRepo, _, _ := setupPurchaseService()

	purchaseRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Purchase) bool {
		return time.Since(p.PurchaseDate) < time.Minute
	})).Return(nil)
	purchaseRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Purchase{}, nil)
	purchaseRepo.On("ListItems", mock.Anything, mock.Anything).Return([]domain.PurchaseItemDetail{}, nil)

	_, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		Supplier:     "Electro Solar SRL",
		PurchaseDate: "15.03.2024",
	})

	require.NoError(t, err)
	purchaseRepo.AssertExpectations(t)
}

// --- ParsePreview ---

func TestPurchaseService_ParsePreview_DispatchesOnExtension(t *testing.T) {
	svc, _, _, parser := setupPurchaseService()
	content := []byte("Factura: F-1")

	parser.On("Parse", content, domain.FormatPDF).Return(&domain.InvoiceData{InvoiceNumber: "F-1"}, nil)

	result, err := svc.ParsePreview(context.Background(), "Factura_Martie.PDF", content)

	require.NoError(t, err)
	assert.Equal(t, "F-1", result.InvoiceNumber)
	parser.AssertExpectations(t)
}

func TestPurchaseService_ParsePreview_UnsupportedExtension(t *testing.T) {
	svc, _, _, parser := setupPurchaseService()

	_, err := svc.ParsePreview(context.Background(), "factura.odt", []byte("x"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	parser.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}
