package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"solarops/internal/domain"
	"solarops/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ID = uuid.New()
	invoice.CreatedAt = time.Now().UTC()
	if invoice.Currency == "" {
		invoice.Currency = domain.DefaultCurrency
	}

	query := `INSERT INTO invoices (id, invoice_number, supplier, invoice_date, total_amount, currency, storage_key, purchase_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.Supplier, invoice.InvoiceDate,
		invoice.TotalAmount, invoice.Currency, invoice.StorageKey, invoice.PurchaseID, invoice.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "invoice_number") {
			return domain.ErrDuplicateInvoice
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) GetByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, "SELECT * FROM invoices WHERE invoice_number = $1", invoiceNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByNumber: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	query := "SELECT * FROM invoices ORDER BY invoice_date DESC, created_at DESC LIMIT $1 OFFSET $2"
	if err := r.db.SelectContext(ctx, &invoices, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}
