package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/PoseidonKRL/ControlFin/internal/id"
	"github.com/PoseidonKRL/ControlFin/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount literal %q: %v", s, err)
	}
	return d
}

// Date parses a YYYY-MM-DD day into a UTC instant.
func Date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", s, err)
	}
	return d.UTC()
}

// NewTransaction builds an in-memory ledger record with an assigned ID and
// sensible defaults. It does not touch the database.
func NewTransaction(t *testing.T, txType models.TransactionType, amount, date string) models.Transaction {
	t.Helper()

	tx := models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      Amount(t, amount),
		Date:        Date(t, date),
		Type:        txType,
		Category:    "Outros",
		Priority:    models.PriorityMedium,
	}
	tx.ID = id.New()
	return tx
}

// NewSubItem builds an in-memory sub-item of the given parent.
func NewSubItem(t *testing.T, parent *models.Transaction, amount, date string) models.Transaction {
	t.Helper()

	sub := NewTransaction(t, parent.Type, amount, date)
	sub.Category = parent.Category
	pid := parent.ID
	sub.ParentID = &pid
	return sub
}

// CreateTestCategory inserts a category row for the owner.
func CreateTestCategory(t *testing.T, db *gorm.DB, ownerKey string) *models.Category {
	t.Helper()

	category := &models.Category{
		OwnerKey: ownerKey,
		Name:     fmt.Sprintf("Test Category %d", nextID()),
		Icon:     "tag",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
