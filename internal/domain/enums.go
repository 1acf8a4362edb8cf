package domain

// DefaultCurrency is assumed when a document does not declare one.
const DefaultCurrency = "RON"

// DefaultLocation is the stock location used when none is given.
const DefaultLocation = "Main Warehouse"

// DocumentFormat identifies the declared format of an uploaded invoice document.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatDOC  DocumentFormat = "doc"
	FormatTXT  DocumentFormat = "txt"
	FormatXML  DocumentFormat = "xml"
)

// ParseableFormats maps file extensions (without dot) to document formats.
var ParseableFormats = map[string]DocumentFormat{
	"pdf":  FormatPDF,
	"docx": FormatDOCX,
	"doc":  FormatDOC,
	"txt":  FormatTXT,
	"xml":  FormatXML,
}

// MaterialCategory classifies inventory items.
type MaterialCategory string

const (
	CategoryPanel    MaterialCategory = "panel"
	CategoryInverter MaterialCategory = "inverter"
	CategoryBattery  MaterialCategory = "battery"
	CategoryCable    MaterialCategory = "cable"
	CategoryMounting MaterialCategory = "mounting"
	CategoryOther    MaterialCategory = "other"
)

// ValidCategories lists every accepted material category.
var ValidCategories = map[MaterialCategory]bool{
	CategoryPanel:    true,
	CategoryInverter: true,
	CategoryBattery:  true,
	CategoryCable:    true,
	CategoryMounting: true,
	CategoryOther:    true,
}

// MovementType describes how a stock movement changes the level.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
	MovementTransfer   MovementType = "transfer"
)

// ValidMovementTypes lists every accepted movement type.
var ValidMovementTypes = map[MovementType]bool{
	MovementIn:         true,
	MovementOut:        true,
	MovementAdjustment: true,
	MovementTransfer:   true,
}

// ReferenceType links a stock movement back to its originating record.
type ReferenceType string

const (
	ReferencePurchase ReferenceType = "purchase"
	ReferenceProject  ReferenceType = "project"
	ReferenceManual   ReferenceType = "manual"
)

// ProjectStatus is the lifecycle state of an installation project.
type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatuses lists every accepted project status.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectPlanned:    true,
	ProjectInProgress: true,
	ProjectCompleted:  true,
	ProjectCancelled:  true,
}
