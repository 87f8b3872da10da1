package ledger

import (
	"testing"

	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/testutil"
)

func TestNormalize(t *testing.T) {
	t.Run("rederives_parent_amounts", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "999.00", "2024-01-10")
		parent.SubItems = []models.Transaction{
			testutil.NewSubItem(t, &parent, "20.00", "2024-01-10"),
			testutil.NewSubItem(t, &parent, "35.50", "2024-01-10"),
		}
		leaf := testutil.NewTransaction(t, models.TransactionTypeIncome, "100.00", "2024-01-05")

		out := Normalize([]models.Transaction{parent, leaf})

		testutil.AssertAmount(t, out[0].Amount, "55.50")
		testutil.AssertAmount(t, out[1].Amount, "100.00")
	})

	t.Run("idempotent", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "0", "2024-01-10")
		parent.SubItems = []models.Transaction{
			testutil.NewSubItem(t, &parent, "12.30", "2024-01-10"),
		}

		once := Normalize([]models.Transaction{parent})
		twice := Normalize(once)

		testutil.AssertAmount(t, once[0].Amount, "12.30")
		testutil.AssertAmount(t, twice[0].Amount, "12.30")
	})

	t.Run("input_untouched", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "999.00", "2024-01-10")
		parent.SubItems = []models.Transaction{
			testutil.NewSubItem(t, &parent, "20.00", "2024-01-10"),
		}
		in := []models.Transaction{parent}

		_ = Normalize(in)

		testutil.AssertAmount(t, in[0].Amount, "999.00")
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid_snapshot", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "0", "2024-01-10")
		parent.SubItems = []models.Transaction{
			testutil.NewSubItem(t, &parent, "20.00", "2024-01-10"),
		}
		leaf := testutil.NewTransaction(t, models.TransactionTypeIncome, "100.00", "2024-01-05")

		testutil.AssertNoError(t, Validate([]models.Transaction{parent, leaf}))
	})

	t.Run("child_at_top_level", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "0", "2024-01-10")
		stray := testutil.NewSubItem(t, &parent, "5.00", "2024-01-10")

		err := Validate([]models.Transaction{parent, stray})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("nested_sub_item", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "0", "2024-01-10")
		sub := testutil.NewSubItem(t, &parent, "5.00", "2024-01-10")
		sub.SubItems = []models.Transaction{testutil.NewSubItem(t, &sub, "1.00", "2024-01-10")}
		parent.SubItems = []models.Transaction{sub}

		err := Validate([]models.Transaction{parent})
		testutil.AssertAppError(t, err, "NESTED_SUB_ITEMS")
	})

	t.Run("broken_linkage", func(t *testing.T) {
		parent := testutil.NewTransaction(t, models.TransactionTypeExpense, "0", "2024-01-10")
		other := testutil.NewTransaction(t, models.TransactionTypeExpense, "0", "2024-01-10")
		sub := testutil.NewSubItem(t, &other, "5.00", "2024-01-10")
		parent.SubItems = []models.Transaction{sub}

		err := Validate([]models.Transaction{parent})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_id", func(t *testing.T) {
		tx := testutil.NewTransaction(t, models.TransactionTypeIncome, "100.00", "2024-01-05")

		err := Validate([]models.Transaction{tx, tx})
		testutil.AssertAppError(t, err, "DUPLICATE_ID")
	})
}
