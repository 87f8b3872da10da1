package services

import (
	"testing"

	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/storage"
	"github.com/PoseidonKRL/ControlFin/internal/testutil"
)

func setupReportService(t *testing.T) (ReportServicer, TransactionServicer) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	repo := storage.NewRepository(db)
	return NewReportService(repo, "pt-BR"), NewTransactionService(repo)
}

func seedMonth(t *testing.T, transactions TransactionServicer) {
	t.Helper()

	_, err := transactions.CreateTransaction(testOwner, TransactionInput{
		Description: "Salário",
		Amount:      testutil.Amount(t, "1000.00"),
		Date:        testutil.Date(t, "2024-01-05"),
		Type:        models.TransactionTypeIncome,
		Category:    "Salário",
	})
	testutil.AssertNoError(t, err)
	_, err = transactions.CreateTransaction(testOwner, TransactionInput{
		Description: "Compras do mês",
		Amount:      testutil.Amount(t, "300.00"),
		Date:        testutil.Date(t, "2024-01-10"),
		Type:        models.TransactionTypeExpense,
		Category:    "Supermercado",
	})
	testutil.AssertNoError(t, err)
}

func TestReportMonthlySeries(t *testing.T) {
	svc, transactions := setupReportService(t)
	seedMonth(t, transactions)

	series, err := svc.MonthlySeries(testOwner, "")
	testutil.AssertNoError(t, err)

	if len(series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(series))
	}
	if series[0].Name != "janeiro de 2024" {
		t.Errorf("expected localized label, got %q", series[0].Name)
	}
	testutil.AssertAmount(t, series[0].Receita, "1000.00")
	testutil.AssertAmount(t, series[0].Despesa, "300.00")
}

func TestReportCategoryBreakdown(t *testing.T) {
	svc, transactions := setupReportService(t)
	seedMonth(t, transactions)

	breakdown, err := svc.CategoryBreakdown(testOwner, "2024-01")
	testutil.AssertNoError(t, err)

	if len(breakdown) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(breakdown))
	}
	if breakdown[0].Name != "Supermercado" {
		t.Errorf("unexpected category %q", breakdown[0].Name)
	}
	testutil.AssertAmount(t, breakdown[0].Value, "300.00")
	testutil.AssertAmount(t, breakdown[0].Percent, "100")
}

func TestReportBalanceEvolution(t *testing.T) {
	svc, transactions := setupReportService(t)
	seedMonth(t, transactions)

	points, err := svc.BalanceEvolution(testOwner, "")
	testutil.AssertNoError(t, err)

	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	testutil.AssertAmount(t, points[0].Saldo, "700.00")
}

func TestReportMonthWindow(t *testing.T) {
	svc, transactions := setupReportService(t)
	seedMonth(t, transactions)

	_, err := transactions.CreateTransaction(testOwner, TransactionInput{
		Description: "Viagem",
		Amount:      testutil.Amount(t, "800.00"),
		Date:        testutil.Date(t, "2024-02-15"),
		Type:        models.TransactionTypeExpense,
		Category:    "Viagens",
	})
	testutil.AssertNoError(t, err)

	series, err := svc.MonthlySeries(testOwner, "2024-02")
	testutil.AssertNoError(t, err)
	if len(series) != 1 {
		t.Fatalf("expected only February, got %d points", len(series))
	}
	testutil.AssertAmount(t, series[0].Despesa, "800.00")
}
