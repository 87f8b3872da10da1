package services

import (
	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/i18n"
	"github.com/PoseidonKRL/ControlFin/internal/ledger"
	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/report"
)

// reportService derives chart-ready views from the owner's ledger snapshot.
type reportService struct {
	store SnapshotStore
	label report.MonthLabeler
}

// NewReportService creates a ReportServicer labelling months for the given
// locale.
func NewReportService(store SnapshotStore, locale string) ReportServicer {
	return &reportService{store: store, label: i18n.Labeler(locale)}
}

// MonthlySeries returns the income-vs-expense series for the window.
func (s *reportService) MonthlySeries(ownerKey, monthKey string) ([]report.SeriesPoint, error) {
	snapshot, err := s.window(ownerKey, monthKey)
	if err != nil {
		return nil, err
	}
	return report.MonthlySeries(snapshot, s.label), nil
}

// CategoryBreakdown returns the expense-by-category breakdown for the window.
func (s *reportService) CategoryBreakdown(ownerKey, monthKey string) ([]report.CategorySlice, error) {
	snapshot, err := s.window(ownerKey, monthKey)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(snapshot), nil
}

// BalanceEvolution returns the monthly net-balance series for the window.
func (s *reportService) BalanceEvolution(ownerKey, monthKey string) ([]report.BalancePoint, error) {
	snapshot, err := s.window(ownerKey, monthKey)
	if err != nil {
		return nil, err
	}
	return report.BalanceEvolution(snapshot, s.label), nil
}

func (s *reportService) window(ownerKey, monthKey string) ([]models.Transaction, error) {
	snapshot, err := s.store.LoadTransactions(ownerKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if monthKey == "" {
		monthKey = ledger.MonthAll
	}
	return ledger.FilterByMonth(snapshot, monthKey), nil
}
