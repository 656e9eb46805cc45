package store

import (
	"path/filepath"
	"testing"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/model"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "qawam.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestExpensesRoundTrip(t *testing.T) {
	s := openTest(t)

	ledger := []model.Expense{
		budget.NewExpense("Dining", 800.50, model.Want, "weekend"),
		budget.NewExpense("Rent", 3000, model.Need, ""),
		budget.NewExpense("Investments", 500, model.Saving, ""),
	}
	if err := s.SaveExpenses(ledger); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	got, err := s.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(got) != len(ledger) {
		t.Fatalf("loaded %d expenses, want %d", len(got), len(ledger))
	}
	for i := range ledger {
		if got[i] != ledger[i] {
			t.Fatalf("row %d changed: %+v vs %+v", i, got[i], ledger[i])
		}
	}
}

func TestSaveExpensesReplaces(t *testing.T) {
	s := openTest(t)

	if err := s.SaveExpenses([]model.Expense{
		budget.NewExpense("Old", 1, model.Need, ""),
	}); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}
	if err := s.SaveExpenses([]model.Expense{
		budget.NewExpense("New", 2, model.Want, ""),
	}); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	got, err := s.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(got) != 1 || got[0].Name != "New" {
		t.Fatalf("save must replace the ledger, got %+v", got)
	}
}

func TestCorruptCategoryFallsBack(t *testing.T) {
	s := openTest(t)

	_, err := s.db.Exec(`INSERT INTO expenses (id, name, amount, category, note, position)
		VALUES ('x', 'Mystery', 10, 'junk', '', 0)`)
	if err != nil {
		t.Fatalf("seeding: %v", err)
	}

	got, err := s.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(got) != 1 || got[0].Category != model.Need {
		t.Fatalf("corrupt category must load as need, got %+v", got)
	}
}

func TestSalaryRoundTrip(t *testing.T) {
	s := openTest(t)

	if got := s.LoadSalary(); got != 0 {
		t.Fatalf("unset salary = %v, want 0", got)
	}
	if err := s.SaveSalary(12345.67); err != nil {
		t.Fatalf("SaveSalary: %v", err)
	}
	if got := s.LoadSalary(); got != 12345.67 {
		t.Fatalf("salary = %v, want 12345.67", got)
	}

	// Corrupt value loads as zero.
	if err := s.setSetting(keySalary, "not a number"); err != nil {
		t.Fatalf("setSetting: %v", err)
	}
	if got := s.LoadSalary(); got != 0 {
		t.Fatalf("corrupt salary = %v, want 0", got)
	}
}

func TestRuleRoundTrip(t *testing.T) {
	s := openTest(t)

	if got := s.LoadRule(); got != model.DefaultRule() {
		t.Fatalf("unset rule = %+v, want default", got)
	}

	custom := model.BudgetRule{Needs: 70, Wants: 20, Savings: 10}
	if err := s.SaveRule(custom); err != nil {
		t.Fatalf("SaveRule: %v", err)
	}
	if got := s.LoadRule(); got != custom {
		t.Fatalf("rule = %+v, want %+v", got, custom)
	}

	if err := s.setSetting(keyRule, "{broken"); err != nil {
		t.Fatalf("setSetting: %v", err)
	}
	if got := s.LoadRule(); got != model.DefaultRule() {
		t.Fatalf("corrupt rule = %+v, want default", got)
	}
}

func TestVisitorCounter(t *testing.T) {
	s := openTest(t)

	if got := s.VisitorCount(); got != 0 {
		t.Fatalf("fresh counter = %d, want 0", got)
	}
	for i := int64(1); i <= 3; i++ {
		n, err := s.BumpVisitors()
		if err != nil {
			t.Fatalf("BumpVisitors: %v", err)
		}
		if n != i {
			t.Fatalf("counter = %d, want %d", n, i)
		}
	}
}

func TestReset(t *testing.T) {
	s := openTest(t)

	if err := s.SaveSalary(5000); err != nil {
		t.Fatalf("SaveSalary: %v", err)
	}
	if err := s.SaveRule(model.BudgetRule{Needs: 70, Wants: 20, Savings: 10}); err != nil {
		t.Fatalf("SaveRule: %v", err)
	}
	if err := s.SaveExpenses([]model.Expense{
		budget.NewExpense("Rent", 3000, model.Need, ""),
	}); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}
	if _, err := s.BumpVisitors(); err != nil {
		t.Fatalf("BumpVisitors: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got := s.LoadSalary(); got != 0 {
		t.Fatalf("salary after reset = %v, want 0", got)
	}
	if got := s.LoadRule(); got != model.DefaultRule() {
		t.Fatalf("rule after reset = %+v, want default", got)
	}
	expenses, err := s.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Fatalf("ledger after reset = %d rows, want 0", len(expenses))
	}
	if got := s.VisitorCount(); got != 1 {
		t.Fatalf("visitor counter must survive reset, got %d", got)
	}
}

func TestLoadBundlesState(t *testing.T) {
	s := openTest(t)

	if err := s.SaveSalary(9000); err != nil {
		t.Fatalf("SaveSalary: %v", err)
	}
	if err := s.SaveExpenses([]model.Expense{
		budget.NewExpense("Rent", 4000, model.Need, ""),
	}); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	st, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Salary != 9000 || len(st.Expenses) != 1 || st.Rule != model.DefaultRule() {
		t.Fatalf("state = %+v", st)
	}
}
