package ledger

import (
	"sort"

	"github.com/PoseidonKRL/ControlFin/internal/models"
)

// SortKey selects the ordering applied to top-level transactions.
type SortKey string

const (
	SortDateDesc     SortKey = "date-desc"
	SortDateAsc      SortKey = "date-asc"
	SortAmountDesc   SortKey = "amount-desc"
	SortAmountAsc    SortKey = "amount-asc"
	SortPriorityDesc SortKey = "priority-desc"
)

// DefaultSortKey is the ordering used when the caller does not pick one.
const DefaultSortKey = SortDateDesc

// SortTopLevel orders the top-level transactions of a snapshot by the given
// key. The sort is stable, so ties keep their input order. Sub-items are
// never reordered here; they stay in creation order inside their parent. An
// unknown key falls back to DefaultSortKey.
func SortTopLevel(snapshot []models.Transaction, key SortKey) []models.Transaction {
	out := models.CloneTransactions(snapshot)
	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b *models.Transaction) bool {
	switch key {
	case SortDateAsc:
		return func(a, b *models.Transaction) bool { return a.Date.Before(b.Date) }
	case SortAmountDesc:
		return func(a, b *models.Transaction) bool { return a.Amount.GreaterThan(b.Amount) }
	case SortAmountAsc:
		return func(a, b *models.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortPriorityDesc:
		return func(a, b *models.Transaction) bool { return a.Priority.Weight() > b.Priority.Weight() }
	default:
		return func(a, b *models.Transaction) bool { return a.Date.After(b.Date) }
	}
}
