// Package ledger implements the transaction ledger engine: pure operations
// over snapshots of the transaction list. Every operation takes the current
// snapshot and returns a new one, leaving the input untouched; on a rejected
// operation the returned snapshot is the input, unchanged. The caller owns
// the single mutable reference and is responsible for serializing mutations
// and persisting results.
package ledger

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/models"
)

// Add inserts a transaction into the snapshot. A transaction with ParentID
// set becomes a sub-item of that parent; otherwise it is appended at top
// level. A top-level insert may carry an initial SubItems list, in which case
// its amount is derived immediately.
func Add(snapshot []models.Transaction, tx models.Transaction) ([]models.Transaction, error) {
	if err := validateRecord(&tx); err != nil {
		return snapshot, err
	}
	if _, _, ok := locate(snapshot, tx.ID); ok {
		return snapshot, apperrors.ErrDuplicateID
	}

	if tx.IsChild() {
		if len(tx.SubItems) > 0 {
			return snapshot, apperrors.ErrNestedSubItems
		}
		parentIdx, subIdx, ok := locate(snapshot, *tx.ParentID)
		if !ok {
			return snapshot, apperrors.ErrParentNotFound
		}
		if subIdx >= 0 {
			// The referenced parent is itself a sub-item.
			return snapshot, apperrors.ErrParentIsChild
		}
		out := models.CloneTransactions(snapshot)
		tx.Position = len(out[parentIdx].SubItems)
		out[parentIdx].SubItems = append(out[parentIdx].SubItems, tx)
		out[parentIdx].Amount = sumSubItems(out[parentIdx].SubItems)
		return out, nil
	}

	for i := range tx.SubItems {
		sub := &tx.SubItems[i]
		if len(sub.SubItems) > 0 {
			return snapshot, apperrors.ErrNestedSubItems
		}
		if err := validateRecord(sub); err != nil {
			return snapshot, err
		}
		if _, _, ok := locate(snapshot, sub.ID); ok {
			return snapshot, apperrors.ErrDuplicateID
		}
	}

	out := models.CloneTransactions(snapshot)
	tx = tx.Clone()
	for i := range tx.SubItems {
		pid := tx.ID
		tx.SubItems[i].ParentID = &pid
		tx.SubItems[i].Position = i
	}
	if tx.IsParent() {
		tx.Amount = sumSubItems(tx.SubItems)
	}
	return append(out, tx), nil
}

// Update replaces the scalar fields of the transaction identified by tx.ID,
// wherever it lives (top level or inside a parent's SubItems). Structural
// fields are immutable: a record cannot move between levels or parents, and a
// sub-item cannot acquire sub-items of its own. Parent amounts are re-derived
// after the edit.
func Update(snapshot []models.Transaction, tx models.Transaction) ([]models.Transaction, error) {
	if err := validateRecord(&tx); err != nil {
		return snapshot, err
	}

	topIdx, subIdx, ok := locate(snapshot, tx.ID)
	if !ok {
		return snapshot, apperrors.ErrTransactionNotFound
	}

	if subIdx >= 0 {
		// Target is a sub-item.
		if len(tx.SubItems) > 0 {
			return snapshot, apperrors.ErrNestedSubItems
		}
		parent := &snapshot[topIdx]
		if !tx.IsChild() || *tx.ParentID != parent.ID {
			return snapshot, apperrors.ErrReparenting
		}
		out := models.CloneTransactions(snapshot)
		replaceScalars(&out[topIdx].SubItems[subIdx], tx)
		out[topIdx].Amount = sumSubItems(out[topIdx].SubItems)
		return out, nil
	}

	// Target is top-level.
	if tx.IsChild() {
		return snapshot, apperrors.ErrReparenting
	}
	out := models.CloneTransactions(snapshot)
	replaceScalars(&out[topIdx], tx)
	if out[topIdx].IsParent() {
		// The stored amount of a parent stays derived no matter what the
		// caller supplied.
		out[topIdx].Amount = sumSubItems(out[topIdx].SubItems)
	}
	return out, nil
}

// Remove deletes the transaction with the given id wherever it is found.
// Removing a parent discards its sub-items with it; removing a sub-item
// re-derives the parent amount, which becomes zero (the sum of the empty set)
// when the last sub-item goes, never the parent's former manual value.
func Remove(snapshot []models.Transaction, id string) ([]models.Transaction, error) {
	topIdx, subIdx, ok := locate(snapshot, id)
	if !ok {
		return snapshot, apperrors.ErrTransactionNotFound
	}

	out := models.CloneTransactions(snapshot)
	if subIdx >= 0 {
		parent := &out[topIdx]
		parent.SubItems = append(parent.SubItems[:subIdx], parent.SubItems[subIdx+1:]...)
		for i := range parent.SubItems {
			parent.SubItems[i].Position = i
		}
		parent.Amount = sumSubItems(parent.SubItems)
		return out, nil
	}
	return append(out[:topIdx], out[topIdx+1:]...), nil
}

// Find returns a copy of the transaction with the given id, wherever it
// lives in the snapshot.
func Find(snapshot []models.Transaction, id string) (models.Transaction, bool) {
	topIdx, subIdx, ok := locate(snapshot, id)
	if !ok {
		return models.Transaction{}, false
	}
	if subIdx >= 0 {
		return snapshot[topIdx].SubItems[subIdx].Clone(), true
	}
	return snapshot[topIdx].Clone(), true
}

// CategoryInUse reports whether any transaction in the snapshot, sub-items
// included, references the category name.
func CategoryInUse(snapshot []models.Transaction, name string) bool {
	for i := range snapshot {
		if snapshot[i].Category == name {
			return true
		}
		for j := range snapshot[i].SubItems {
			if snapshot[i].SubItems[j].Category == name {
				return true
			}
		}
	}
	return false
}

// locate finds a transaction by id. It returns the top-level index and, when
// the record is a sub-item, the index inside its parent's SubItems (-1 for
// top-level records).
func locate(snapshot []models.Transaction, id string) (topIdx, subIdx int, ok bool) {
	for i := range snapshot {
		if snapshot[i].ID == id {
			return i, -1, true
		}
		for j := range snapshot[i].SubItems {
			if snapshot[i].SubItems[j].ID == id {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// validateRecord checks the field-level constraints the engine assumes.
func validateRecord(tx *models.Transaction) error {
	if tx.ID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction ID is required")
	}
	if tx.Amount.IsNegative() {
		return apperrors.ErrNegativeAmount
	}
	if tx.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	switch tx.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported transaction type")
	}
	return nil
}

// replaceScalars copies the editable fields of src onto dst, leaving
// identity, linkage, and sub-items untouched.
func replaceScalars(dst *models.Transaction, src models.Transaction) {
	dst.Description = src.Description
	dst.Amount = src.Amount
	dst.Date = src.Date
	dst.Type = src.Type
	dst.Category = src.Category
	dst.Notes = src.Notes
	dst.Priority = src.Priority
}

// sumSubItems adds up sub-item amounts exactly.
func sumSubItems(subs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range subs {
		total = total.Add(subs[i].Amount)
	}
	return total
}
