package storage

import (
	"testing"

	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/pagination"
	"github.com/PoseidonKRL/ControlFin/internal/testutil"
)

const testOwner = "test-owner"

func TestTransactionsRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "55.50", "2024-01-10")
	parent.SubItems = []models.Transaction{
		testutil.NewSubItem(t, &parent, "20.00", "2024-01-10"),
		testutil.NewSubItem(t, &parent, "35.50", "2024-01-10"),
	}
	leaf := testutil.NewTransaction(t, models.TransactionTypeIncome, "1000.00", "2024-01-05")

	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, []models.Transaction{parent, leaf}))

	snapshot, err := repo.LoadTransactions(testOwner)
	testutil.AssertNoError(t, err)

	if len(snapshot) != 2 {
		t.Fatalf("expected 2 top-level transactions, got %d", len(snapshot))
	}
	got, ok := findByID(snapshot, parent.ID)
	if !ok {
		t.Fatal("parent transaction missing after round trip")
	}
	testutil.AssertAmount(t, got.Amount, "55.50")
	if len(got.SubItems) != 2 {
		t.Fatalf("expected 2 sub-items, got %d", len(got.SubItems))
	}
	// Sub-items come back in stored position order.
	testutil.AssertAmount(t, got.SubItems[0].Amount, "20.00")
	testutil.AssertAmount(t, got.SubItems[1].Amount, "35.50")
}

func TestReplaceTransactionsSwapsRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	first := testutil.NewTransaction(t, models.TransactionTypeExpense, "10.00", "2024-01-01")
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, []models.Transaction{first}))

	second := testutil.NewTransaction(t, models.TransactionTypeExpense, "20.00", "2024-01-02")
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, []models.Transaction{second}))

	snapshot, err := repo.LoadTransactions(testOwner)
	testutil.AssertNoError(t, err)
	if len(snapshot) != 1 || snapshot[0].ID != second.ID {
		t.Fatalf("expected only the replacement row, got %d records", len(snapshot))
	}
}

func TestReplaceTransactionsEmptySnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	tx := testutil.NewTransaction(t, models.TransactionTypeExpense, "10.00", "2024-01-01")
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, []models.Transaction{tx}))
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, nil))

	snapshot, err := repo.LoadTransactions(testOwner)
	testutil.AssertNoError(t, err)
	if len(snapshot) != 0 {
		t.Fatalf("expected empty snapshot, got %d records", len(snapshot))
	}
}

func TestLoadTransactionsIsolatesOwners(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	mine := testutil.NewTransaction(t, models.TransactionTypeExpense, "10.00", "2024-01-01")
	theirs := testutil.NewTransaction(t, models.TransactionTypeExpense, "99.00", "2024-01-01")
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, []models.Transaction{mine}))
	testutil.AssertNoError(t, repo.ReplaceTransactions("someone-else", []models.Transaction{theirs}))

	snapshot, err := repo.LoadTransactions(testOwner)
	testutil.AssertNoError(t, err)
	if len(snapshot) != 1 || snapshot[0].ID != mine.ID {
		t.Fatal("owner scoping leaked another owner's rows")
	}

	// Replacing one owner's rows must not touch the other's.
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, nil))
	other, err := repo.LoadTransactions("someone-else")
	testutil.AssertNoError(t, err)
	if len(other) != 1 {
		t.Fatal("replacing one owner's snapshot removed another owner's rows")
	}
}

func TestCountTransactionsByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "20.00", "2024-01-10")
	parent.Category = "Supermercado"
	sub := testutil.NewSubItem(t, &parent, "20.00", "2024-01-10")
	sub.Category = "Padaria"
	parent.SubItems = []models.Transaction{sub}
	testutil.AssertNoError(t, repo.ReplaceTransactions(testOwner, []models.Transaction{parent}))

	count, err := repo.CountTransactionsByCategory(testOwner, "Padaria")
	testutil.AssertNoError(t, err)
	if count != 1 {
		t.Errorf("expected sub-item category references to count, got %d", count)
	}

	count, err = repo.CountTransactionsByCategory(testOwner, "Aluguel")
	testutil.AssertNoError(t, err)
	if count != 0 {
		t.Errorf("expected 0 references, got %d", count)
	}
}

func TestCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewRepository(db)

	t.Run("create_and_get", func(t *testing.T) {
		category := &models.Category{OwnerKey: testOwner, Name: "Transporte", Icon: "bus"}
		testutil.AssertNoError(t, repo.CreateCategory(category))

		got, err := repo.GetCategoryByID(testOwner, category.ID)
		testutil.AssertNoError(t, err)
		if got.Name != "Transporte" || got.Icon != "bus" {
			t.Errorf("unexpected category: %+v", got)
		}

		if _, err := repo.GetCategoryByID("someone-else", category.ID); err == nil {
			t.Error("expected lookup under another owner to fail")
		}
	})

	t.Run("count_by_name", func(t *testing.T) {
		category := &models.Category{OwnerKey: testOwner, Name: "Lazer"}
		testutil.AssertNoError(t, repo.CreateCategory(category))

		count, err := repo.CountCategoriesByName(testOwner, "Lazer")
		testutil.AssertNoError(t, err)
		if count != 1 {
			t.Errorf("expected 1, got %d", count)
		}
	})

	t.Run("list_paged_by_name", func(t *testing.T) {
		owner := "list-owner"
		for _, name := range []string{"Saúde", "Aluguel", "Mercado"} {
			testutil.AssertNoError(t, repo.CreateCategory(&models.Category{OwnerKey: owner, Name: name}))
		}

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		categories, total, err := repo.ListCategories(owner, page)
		testutil.AssertNoError(t, err)
		if total != 3 {
			t.Errorf("expected total 3, got %d", total)
		}
		if len(categories) != 2 || categories[0].Name != "Aluguel" || categories[1].Name != "Mercado" {
			t.Errorf("unexpected first page: %+v", categories)
		}
	})

	t.Run("save_and_delete", func(t *testing.T) {
		category := &models.Category{OwnerKey: testOwner, Name: "Assinaturas"}
		testutil.AssertNoError(t, repo.CreateCategory(category))

		category.Icon = "tv"
		testutil.AssertNoError(t, repo.SaveCategory(category))

		got, err := repo.GetCategoryByID(testOwner, category.ID)
		testutil.AssertNoError(t, err)
		if got.Icon != "tv" {
			t.Errorf("expected saved icon, got %q", got.Icon)
		}

		testutil.AssertNoError(t, repo.DeleteCategory(category))
		if _, err := repo.GetCategoryByID(testOwner, category.ID); err == nil {
			t.Error("expected deleted category to be gone")
		}
	})
}

func findByID(snapshot []models.Transaction, id string) (models.Transaction, bool) {
	for i := range snapshot {
		if snapshot[i].ID == id {
			return snapshot[i], true
		}
	}
	return models.Transaction{}, false
}
