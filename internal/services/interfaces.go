package services

import (
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/ControlFin/internal/ledger"
	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/pagination"
	"github.com/PoseidonKRL/ControlFin/internal/report"
)

// SnapshotStore is the persistence collaborator for transaction snapshots.
// The ledger engine never calls it; services load a snapshot, run the engine,
// and store the result.
type SnapshotStore interface {
	LoadTransactions(ownerKey string) ([]models.Transaction, error)
	ReplaceTransactions(ownerKey string, snapshot []models.Transaction) error
	CountTransactionsByCategory(ownerKey, name string) (int64, error)
}

// CategoryStore is the persistence collaborator for categories.
type CategoryStore interface {
	CreateCategory(category *models.Category) error
	GetCategoryByID(ownerKey, id string) (*models.Category, error)
	CountCategoriesByName(ownerKey, name string) (int64, error)
	ListCategories(ownerKey string, page pagination.PageRequest) ([]models.Category, int64, error)
	SaveCategory(category *models.Category) error
	DeleteCategory(category *models.Category) error
}

// TransactionInput carries the caller-editable fields of a transaction.
// Amounts arrive already parsed and validated by the HTTP boundary.
type TransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Type        models.TransactionType
	Category    string
	Notes       string
	Priority    models.Priority
}

// TransactionServicer defines the contract for ledger mutations and reads.
type TransactionServicer interface {
	CreateTransaction(ownerKey string, input TransactionInput) (*models.Transaction, error)
	CreateSubItem(ownerKey, parentID string, input TransactionInput) (*models.Transaction, error)
	GetTransaction(ownerKey, id string) (*models.Transaction, error)
	ListTransactions(ownerKey, monthKey string, sortKey ledger.SortKey, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	UpdateTransaction(ownerKey, id string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ownerKey, id string) error
}

// CategoryServicer defines the contract for category management.
type CategoryServicer interface {
	CreateCategory(ownerKey, name, icon string) (*models.Category, error)
	ListCategories(ownerKey string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(ownerKey, id string) (*models.Category, error)
	UpdateCategory(ownerKey, id, name, icon string) (*models.Category, error)
	DeleteCategory(ownerKey, id string) error
}

// ReportServicer derives the aggregated report views over an optional month
// window ("all" for the full history).
type ReportServicer interface {
	MonthlySeries(ownerKey, monthKey string) ([]report.SeriesPoint, error)
	CategoryBreakdown(ownerKey, monthKey string) ([]report.CategorySlice, error)
	BalanceEvolution(ownerKey, monthKey string) ([]report.BalancePoint, error)
}

// ExportServicer streams a filtered snapshot as CSV.
type ExportServicer interface {
	WriteCSV(w io.Writer, ownerKey, monthKey, currencyCode string) error
}
