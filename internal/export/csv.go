// Package export serializes transaction snapshots to delimited text for
// download. The one-level hierarchy is flattened: a parent row carries its
// derived total and each sub-item follows as a row of its own.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/ControlFin/internal/models"
)

// Header is the column order of the exported CSV.
var Header = []string{"description", "amount", "date", "type", "category", "notes", "priority"}

const dateFormat = time.RFC3339

// AmountFormatter renders an amount for display in the given currency.
// *currency.Formatter satisfies this.
type AmountFormatter interface {
	Format(amount decimal.Decimal, code string) string
}

// WriteCSV writes the snapshot as CSV rows to w, formatting amounts in the
// given currency. encoding/csv quotes fields containing the delimiter, so
// descriptions and notes are safe as-is.
func WriteCSV(w io.Writer, snapshot []models.Transaction, currencyCode string, amounts AmountFormatter) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 1
	for i := range snapshot {
		t := &snapshot[i]
		if err := cw.Write(marshalRow(t, currencyCode, amounts)); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
		row++
		for j := range t.SubItems {
			if err := cw.Write(marshalRow(&t.SubItems[j], currencyCode, amounts)); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}
	return cw.Error()
}

// marshalRow converts one transaction to a CSV row.
func marshalRow(t *models.Transaction, currencyCode string, amounts AmountFormatter) []string {
	return []string{
		t.Description,
		amounts.Format(t.Amount, currencyCode),
		t.Date.UTC().Format(dateFormat),
		string(t.Type),
		t.Category,
		t.Notes,
		string(t.Priority),
	}
}
