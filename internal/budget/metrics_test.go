package budget

import (
	"math"
	"testing"

	"github.com/qawamdev/qawam/internal/model"
)

func exp(name string, amount float64, c model.Category) model.Expense {
	return NewExpense(name, amount, c, "")
}

func TestComputeMetricsTotals(t *testing.T) {
	expenses := []model.Expense{
		exp("Rent", 3000, model.Need),
		exp("Groceries", 1200, model.Need),
		exp("Dining", 800, model.Want),
		exp("Emergency fund", 500, model.Saving),
	}

	m := ComputeMetrics(10000, expenses)

	if m.TotalNeeds != 4200 {
		t.Fatalf("TotalNeeds = %.2f, want 4200", m.TotalNeeds)
	}
	if m.TotalWants != 800 {
		t.Fatalf("TotalWants = %.2f, want 800", m.TotalWants)
	}
	if m.TotalSavingsExpenses != 500 {
		t.Fatalf("TotalSavingsExpenses = %.2f, want 500", m.TotalSavingsExpenses)
	}
	if m.TotalExpenses != m.TotalNeeds+m.TotalWants+m.TotalSavingsExpenses {
		t.Fatalf("TotalExpenses = %.2f, want sum of category totals", m.TotalExpenses)
	}
	if m.RemainingSalary != 10000-5500 {
		t.Fatalf("RemainingSalary = %.2f, want 4500", m.RemainingSalary)
	}
	// Savings capacity includes untagged leftover, not just tagged savings.
	if m.TotalSavingsCalculated != 5000 {
		t.Fatalf("TotalSavingsCalculated = %.2f, want 5000", m.TotalSavingsCalculated)
	}
}

func TestComputeMetricsNegativeRemaining(t *testing.T) {
	expenses := []model.Expense{exp("Rent", 6000, model.Need)}
	m := ComputeMetrics(5000, expenses)

	if m.RemainingSalary != -1000 {
		t.Fatalf("RemainingSalary = %.2f, want -1000 (must not be clamped)", m.RemainingSalary)
	}
	if m.TotalSavingsCalculated != 0 {
		t.Fatalf("TotalSavingsCalculated = %.2f, want 0 when committed spend exceeds salary", m.TotalSavingsCalculated)
	}
}

func TestComputeMetricsZeroSalary(t *testing.T) {
	m := ComputeMetrics(0, []model.Expense{exp("Dining", 100, model.Want)})
	if m.TotalSavingsCalculated != 0 {
		t.Fatalf("TotalSavingsCalculated = %.2f, want 0 for zero salary", m.TotalSavingsCalculated)
	}
	if m.RemainingSalary != -100 {
		t.Fatalf("RemainingSalary = %.2f, want -100", m.RemainingSalary)
	}
}

func TestComputeMetricsIdempotent(t *testing.T) {
	expenses := []model.Expense{
		exp("Rent", 3333.33, model.Need),
		exp("Dining", 777.77, model.Want),
	}
	first := ComputeMetrics(9876.54, expenses)
	second := ComputeMetrics(9876.54, expenses)
	if first != second {
		t.Fatalf("metrics differ across identical calls: %+v vs %+v", first, second)
	}
}

func TestLedgerPrependOrdering(t *testing.T) {
	ledger := Prepend(nil, exp("First", 10, model.Need))
	ledger = Prepend(ledger, exp("Second", 20, model.Want))

	if ledger[0].Name != "Second" || ledger[1].Name != "First" {
		t.Fatalf("expected most-recent-first ordering, got %q then %q", ledger[0].Name, ledger[1].Name)
	}
}

func TestLedgerReplaceKeepsID(t *testing.T) {
	e := exp("Dining", 500, model.Want)
	ledger := Prepend(nil, e)

	edited := e
	edited.Amount = 450
	edited.Category = model.Need
	ledger = Replace(ledger, edited)

	if len(ledger) != 1 {
		t.Fatalf("ledger length = %d, want 1", len(ledger))
	}
	if ledger[0].ID != e.ID {
		t.Fatal("edit must keep the same id")
	}
	if ledger[0].Amount != 450 || ledger[0].Category != model.Need {
		t.Fatalf("edit not applied: %+v", ledger[0])
	}
}

func TestLedgerRemove(t *testing.T) {
	a := exp("A", 10, model.Need)
	b := exp("B", 20, model.Want)
	ledger := Prepend(Prepend(nil, a), b)

	ledger = Remove(ledger, a.ID)
	if len(ledger) != 1 || ledger[0].ID != b.ID {
		t.Fatalf("remove failed: %+v", ledger)
	}
}

func TestLedgerUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		e := NewExpense("x", 1, model.Need, "")
		if _, dup := seen[e.ID]; dup {
			t.Fatalf("duplicate expense id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
}

func TestValidateEntry(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   bool
	}{
		{"Rent", 100, true},
		{"", 100, false},
		{"Rent", 0, false},
		{"Rent", -5, false},
		{"Rent", math.NaN(), false},
	}
	for _, tc := range cases {
		if got := ValidateEntry(tc.name, tc.amount); got != tc.want {
			t.Fatalf("ValidateEntry(%q, %v) = %v, want %v", tc.name, tc.amount, got, tc.want)
		}
	}
}
