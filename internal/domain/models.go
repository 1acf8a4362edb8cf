package domain

import (
	"time"

	"github.com/google/uuid"
)

// Material represents an inventory item (panel, inverter, cable, ...).
type Material struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Name        string           `db:"name" json:"name"`
	SKU         string           `db:"sku" json:"sku"`
	Description string           `db:"description" json:"description"`
	Category    MaterialCategory `db:"category" json:"category"`
	Unit        string           `db:"unit" json:"unit"`
	UnitPrice   float64          `db:"unit_price" json:"unit_price"`
	MinStock    float64          `db:"min_stock" json:"min_stock"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}

// MaterialWithStock is a Material enriched with its current stock level.
type MaterialWithStock struct {
	Material
	CurrentStock  float64 `db:"current_stock" json:"current_stock"`
	StockLocation string  `db:"stock_location" json:"stock_location"`
}

// Stock represents the current inventory level of a material at a location.
type Stock struct {
	ID         uuid.UUID `db:"id" json:"id"`
	MaterialID uuid.UUID `db:"material_id" json:"material_id"`
	Quantity   float64   `db:"quantity" json:"quantity"`
	Location   string    `db:"location" json:"location"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// StockLevel is a Stock row joined with its material for listing endpoints.
type StockLevel struct {
	Stock
	MaterialName     string           `db:"material_name" json:"material_name"`
	MaterialSKU      string           `db:"material_sku" json:"material_sku"`
	MaterialCategory MaterialCategory `db:"material_category" json:"material_category"`
	MinStock         float64          `db:"min_stock" json:"min_stock"`
	IsLow            bool             `db:"is_low" json:"is_low"`
	Shortage         float64          `db:"shortage" json:"shortage,omitempty"`
}

// StockMovement records a single inventory change.
type StockMovement struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	MaterialID    uuid.UUID     `db:"material_id" json:"material_id"`
	MovementType  MovementType  `db:"movement_type" json:"movement_type"`
	Quantity      float64       `db:"quantity" json:"quantity"`
	ReferenceType ReferenceType `db:"reference_type" json:"reference_type"`
	ReferenceID   *uuid.UUID    `db:"reference_id" json:"reference_id"`
	Notes         string        `db:"notes" json:"notes"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	CreatedBy     string        `db:"created_by" json:"created_by"`
}

// StockMovementDetail is a StockMovement joined with material info.
type StockMovementDetail struct {
	StockMovement
	MaterialName string `db:"material_name" json:"material_name"`
	MaterialSKU  string `db:"material_sku" json:"material_sku"`
}

// Project represents a solar installation project for a client.
type Project struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	ClientName    string        `db:"client_name" json:"client_name"`
	ClientContact string        `db:"client_contact" json:"client_contact"`
	Location      string        `db:"location" json:"location"`
	CapacityKW    *float64      `db:"capacity_kw" json:"capacity_kw"`
	Status        ProjectStatus `db:"status" json:"status"`
	StartDate     *time.Time    `db:"start_date" json:"start_date"`
	EndDate       *time.Time    `db:"end_date" json:"end_date"`
	EstimatedCost *float64      `db:"estimated_cost" json:"estimated_cost"`
	ActualCost    *float64      `db:"actual_cost" json:"actual_cost"`
	Notes         string        `db:"notes" json:"notes"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// ProjectMaterial links a material to a project with planned and used quantities.
type ProjectMaterial struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ProjectID       uuid.UUID `db:"project_id" json:"project_id"`
	MaterialID      uuid.UUID `db:"material_id" json:"material_id"`
	QuantityPlanned float64   `db:"quantity_planned" json:"quantity_planned"`
	QuantityUsed    float64   `db:"quantity_used" json:"quantity_used"`
	UnitPrice       float64   `db:"unit_price" json:"unit_price"`
}

// ProjectMaterialDetail is a ProjectMaterial joined with material info.
type ProjectMaterialDetail struct {
	ProjectMaterial
	MaterialName string `db:"material_name" json:"material_name"`
	MaterialSKU  string `db:"material_sku" json:"material_sku"`
	MaterialUnit string `db:"material_unit" json:"material_unit"`
}

// Purchase represents a material purchase from a supplier.
type Purchase struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Supplier      string    `db:"supplier" json:"supplier"`
	PurchaseDate  time.Time `db:"purchase_date" json:"purchase_date"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	TotalAmount   float64   `db:"total_amount" json:"total_amount"`
	Currency      string    `db:"currency" json:"currency"`
	Notes         string    `db:"notes" json:"notes"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// PurchaseItem is a single line of a purchase, optionally matched to a material.
type PurchaseItem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PurchaseID  uuid.UUID  `db:"purchase_id" json:"purchase_id"`
	MaterialID  *uuid.UUID `db:"material_id" json:"material_id"`
	Description string     `db:"description" json:"description"`
	SKU         string     `db:"sku" json:"sku"`
	Quantity    float64    `db:"quantity" json:"quantity"`
	UnitPrice   float64    `db:"unit_price" json:"unit_price"`
	TotalPrice  float64    `db:"total_price" json:"total_price"`
}

// PurchaseItemDetail is a PurchaseItem joined with the matched material name.
type PurchaseItemDetail struct {
	PurchaseItem
	MaterialName *string `db:"material_name" json:"material_name,omitempty"`
}

// PurchaseDetail is a Purchase with its items.
type PurchaseDetail struct {
	Purchase
	Items []PurchaseItemDetail `json:"items"`
}

// Invoice represents an uploaded supplier invoice.
type Invoice struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	InvoiceNumber string     `db:"invoice_number" json:"invoice_number"`
	Supplier      string     `db:"supplier" json:"supplier"`
	InvoiceDate   time.Time  `db:"invoice_date" json:"invoice_date"`
	TotalAmount   float64    `db:"total_amount" json:"total_amount"`
	Currency      string     `db:"currency" json:"currency"`
	StorageKey    string     `db:"storage_key" json:"storage_key"`
	PurchaseID    *uuid.UUID `db:"purchase_id" json:"purchase_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// DashboardStats aggregates headline numbers for the dashboard endpoint.
type DashboardStats struct {
	TotalMaterials int `json:"total_materials"`
	LowStockCount  int `json:"low_stock_count"`
	ActiveProjects int `json:"active_projects"`
	TotalProjects  int `json:"total_projects"`
}

// LineItem is one parsed row of an invoice document.
type LineItem struct {
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// InvoiceData is the common output of all invoice parsers. Absent fields keep
// their defaults; the heuristic parser never fails on a missing field.
type InvoiceData struct {
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceDate   string     `json:"invoice_date"`
	SupplierName  string     `json:"supplier_name"`
	SupplierTaxID string     `json:"supplier_tax_id,omitempty"`
	CustomerName  string     `json:"customer_name,omitempty"`
	CustomerTaxID string     `json:"customer_tax_id,omitempty"`
	Currency      string     `json:"currency"`
	TotalAmount   float64    `json:"total_amount"`
	TaxAmount     float64    `json:"tax_amount,omitempty"`
	Items         []LineItem `json:"items"`
}

// NewInvoiceData returns an InvoiceData with parser defaults applied.
func NewInvoiceData() *InvoiceData {
	return &InvoiceData{
		Currency: DefaultCurrency,
		Items:    []LineItem{},
	}
}
