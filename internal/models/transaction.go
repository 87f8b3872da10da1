package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Priority is an optional user-assigned priority for a transaction.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight returns the numeric ordering weight of a priority.
// An unset priority counts as medium.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// Transaction represents a single ledger entry. A transaction is either
// top-level (ParentID unset) or a sub-item of exactly one parent; nesting is
// never deeper than one level. When SubItems is non-empty the Amount is
// derived as the sum of the sub-item amounts and is not independently
// editable.
type Transaction struct {
	Base
	OwnerKey    string          `gorm:"not null;index" json:"-"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null" json:"category"`
	ParentID    *string         `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Priority    Priority        `gorm:"default:'medium'" json:"priority,omitempty"`

	// Position orders sub-items within their parent (creation order).
	Position int `gorm:"not null;default:0" json:"-"`

	// SubItems is assembled from flat rows by the storage layer and is not a
	// database column.
	SubItems []Transaction `gorm:"-" json:"sub_items,omitempty"`
}

// IsChild reports whether the transaction is a sub-item of another transaction.
func (t *Transaction) IsChild() bool {
	return t.ParentID != nil && *t.ParentID != ""
}

// IsParent reports whether the transaction currently has sub-items.
func (t *Transaction) IsParent() bool {
	return len(t.SubItems) > 0
}

// MonthKey returns the YYYY-MM bucket of the transaction date, in UTC.
func (t *Transaction) MonthKey() string {
	return t.Date.UTC().Format("2006-01")
}

// Clone returns a deep copy of the transaction, including its sub-items.
func (t Transaction) Clone() Transaction {
	out := t
	if t.ParentID != nil {
		pid := *t.ParentID
		out.ParentID = &pid
	}
	if t.SubItems != nil {
		out.SubItems = make([]Transaction, len(t.SubItems))
		for i, sub := range t.SubItems {
			out.SubItems[i] = sub.Clone()
		}
	}
	return out
}

// CloneTransactions deep-copies a snapshot of transactions.
func CloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		out[i] = t.Clone()
	}
	return out
}
