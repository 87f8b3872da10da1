package services

import (
	"io"

	"github.com/PoseidonKRL/ControlFin/internal/currency"
	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/export"
	"github.com/PoseidonKRL/ControlFin/internal/ledger"
)

// exportService streams filtered snapshots as CSV downloads.
type exportService struct {
	store           SnapshotStore
	amounts         *currency.Formatter
	defaultCurrency string
}

// NewExportService creates an ExportServicer formatting amounts for the
// given locale, with defaultCurrency used when a request names none.
func NewExportService(store SnapshotStore, locale, defaultCurrency string) ExportServicer {
	return &exportService{
		store:           store,
		amounts:         currency.NewFormatter(locale),
		defaultCurrency: defaultCurrency,
	}
}

// WriteCSV writes the owner's ledger for the month window to w, flattening
// sub-items into rows of their own.
func (s *exportService) WriteCSV(w io.Writer, ownerKey, monthKey, currencyCode string) error {
	snapshot, err := s.store.LoadTransactions(ownerKey)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if monthKey == "" {
		monthKey = ledger.MonthAll
	}
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	if err := export.WriteCSV(w, ledger.FilterByMonth(snapshot, monthKey), currencyCode, s.amounts); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
