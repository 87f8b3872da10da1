// Package report derives aggregated views from transaction snapshots: the
// income-vs-expense series, the expense-by-category breakdown, and the
// monthly balance evolution. The functions are pure and assume the caller
// has already filtered the snapshot to the desired scope.
//
// Sub-item amounts are folded into their parent's derived amount, so every
// aggregation walks top-level records only; touching sub-items again would
// double-count them.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/ControlFin/internal/models"
)

// MonthLabeler turns a YYYY-MM month key into the display label used as the
// name of a report row.
type MonthLabeler func(monthKey string) string

// SeriesPoint is one month of the income-vs-expense series. The field names
// Receita and Despesa are part of the chart contract consumed by the
// dashboard front end.
type SeriesPoint struct {
	Name    string          `json:"name"`
	Receita decimal.Decimal `json:"Receita"`
	Despesa decimal.Decimal `json:"Despesa"`
}

// CategorySlice is one category of the expense breakdown.
type CategorySlice struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// BalancePoint is one month of the net-balance series.
type BalancePoint struct {
	Name  string          `json:"name"`
	Saldo decimal.Decimal `json:"Saldo"`
}

// MonthlySeries groups top-level transactions by month bucket and sums
// income and expense amounts separately per bucket. Only months present in
// the data appear, in chronological order.
func MonthlySeries(snapshot []models.Transaction, label MonthLabeler) []SeriesPoint {
	type sums struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*sums)
	for i := range snapshot {
		t := &snapshot[i]
		if t.IsChild() {
			continue
		}
		key := t.MonthKey()
		b := buckets[key]
		if b == nil {
			b = &sums{income: decimal.Zero, expense: decimal.Zero}
			buckets[key] = b
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			b.income = b.income.Add(t.Amount)
		case models.TransactionTypeExpense:
			b.expense = b.expense.Add(t.Amount)
		}
	}

	out := make([]SeriesPoint, 0, len(buckets))
	for _, key := range sortedKeys(buckets) {
		out = append(out, SeriesPoint{
			Name:    label(key),
			Receita: buckets[key].income,
			Despesa: buckets[key].expense,
		})
	}
	return out
}

// CategoryBreakdown groups top-level expense transactions by category name,
// summing amounts. Percent is each category's share of the total; categories
// are emitted largest first so pie legends read naturally.
func CategoryBreakdown(snapshot []models.Transaction) []CategorySlice {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for i := range snapshot {
		t := &snapshot[i]
		if t.IsChild() || t.Type != models.TransactionTypeExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		grand = grand.Add(t.Amount)
	}

	out := make([]CategorySlice, 0, len(totals))
	for name, value := range totals {
		slice := CategorySlice{Name: name, Value: value, Percent: decimal.Zero}
		if grand.IsPositive() {
			slice.Percent = value.Div(grand).Mul(decimal.NewFromInt(100))
		}
		out = append(out, slice)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value.Equal(out[j].Value) {
			return out[i].Name < out[j].Name
		}
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

// BalanceEvolution computes income minus expense per month bucket, in
// chronological order.
func BalanceEvolution(snapshot []models.Transaction, label MonthLabeler) []BalancePoint {
	series := MonthlySeries(snapshot, label)
	out := make([]BalancePoint, len(series))
	for i, p := range series {
		out[i] = BalancePoint{Name: p.Name, Saldo: p.Receita.Sub(p.Despesa)}
	}
	return out
}

// sortedKeys returns map keys in ascending order. YYYY-MM keys sort
// lexicographically into chronological order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
