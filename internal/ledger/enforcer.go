package ledger

import (
	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/models"
)

// Normalize re-derives every parent amount in the snapshot: any top-level
// transaction with one or more sub-items gets amount = sum of its sub-items.
// Records without sub-items keep their stored amount. Normalize is idempotent
// and is applied by every mutation that touches sub-items; it is exported so
// hosts can re-establish the invariant over snapshots from external sources
// (imports, stale persistence).
func Normalize(snapshot []models.Transaction) []models.Transaction {
	out := models.CloneTransactions(snapshot)
	for i := range out {
		if out[i].IsParent() {
			out[i].Amount = sumSubItems(out[i].SubItems)
		}
	}
	return out
}

// Validate checks the structural invariants of a snapshot: nesting depth
// never exceeds one level, no record is both parent and child, sub-item
// linkage matches the containing parent, and no id appears twice. It returns
// the first violation found.
func Validate(snapshot []models.Transaction) error {
	seen := make(map[string]bool)
	for i := range snapshot {
		t := &snapshot[i]
		if t.IsChild() && t.IsParent() {
			return apperrors.ErrNestedSubItems
		}
		if t.IsChild() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "sub-item found at top level")
		}
		if seen[t.ID] {
			return apperrors.ErrDuplicateID
		}
		seen[t.ID] = true
		for j := range t.SubItems {
			sub := &t.SubItems[j]
			if sub.IsParent() {
				return apperrors.ErrNestedSubItems
			}
			if !sub.IsChild() || *sub.ParentID != t.ID {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "sub-item parent linkage is inconsistent")
			}
			if seen[sub.ID] {
				return apperrors.ErrDuplicateID
			}
			seen[sub.ID] = true
		}
	}
	return nil
}
