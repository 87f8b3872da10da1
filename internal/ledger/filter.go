package ledger

import "github.com/PoseidonKRL/ControlFin/internal/models"

// MonthAll selects every transaction regardless of date.
const MonthAll = "all"

// FilterByMonth restricts the snapshot to a single YYYY-MM month bucket, or
// returns it whole for MonthAll. Every record is matched against its own
// date: a top-level transaction is kept when its date falls in the month,
// and within a kept parent each sub-item is kept only when its own date also
// falls in the month. A sub-item dated outside the window therefore drops
// out of the filtered view even while its parent remains.
func FilterByMonth(snapshot []models.Transaction, monthKey string) []models.Transaction {
	if monthKey == MonthAll {
		return models.CloneTransactions(snapshot)
	}

	var out []models.Transaction
	for i := range snapshot {
		if snapshot[i].MonthKey() != monthKey {
			continue
		}
		t := snapshot[i].Clone()
		if t.IsParent() {
			kept := t.SubItems[:0]
			for _, sub := range t.SubItems {
				if sub.MonthKey() == monthKey {
					kept = append(kept, sub)
				}
			}
			t.SubItems = kept
		}
		out = append(out, t)
	}
	return out
}
