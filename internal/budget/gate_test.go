package budget

import (
	"testing"

	"github.com/qawamdev/qawam/internal/model"
)

func TestStepOrdering(t *testing.T) {
	order := []Step{StepSalary, StepWizard, StepAdvisor, StepReview, StepDashboard}
	for i := 0; i < len(order)-1; i++ {
		if order[i].Next() != order[i+1] {
			t.Fatalf("Next(%d) = %d, want %d", order[i], order[i].Next(), order[i+1])
		}
		if order[i+1].Prev() != order[i] {
			t.Fatalf("Prev(%d) = %d, want %d", order[i+1], order[i+1].Prev(), order[i])
		}
	}
	if StepDashboard.Next() != StepDashboard {
		t.Fatal("Next must clamp at the dashboard")
	}
	if StepSalary.Prev() != StepSalary {
		t.Fatal("Prev must clamp at salary entry")
	}
}

func TestEvaluateAdvanceBlocksOverage(t *testing.T) {
	expenses := []model.Expense{
		exp("Rent", 3000, model.Need),
		exp("Dining", 2001, model.Want),
	}
	adv := EvaluateAdvance(5000, expenses, model.DefaultRule())

	if adv.Allowed() {
		t.Fatal("spending 5001 against salary 5000 must block")
	}
	if adv.Block.Current != 5001 {
		t.Fatalf("Block.Current = %.2f, want 5001", adv.Block.Current)
	}
	if adv.Block.Limit != 5000 {
		t.Fatalf("Block.Limit = %.2f, want 5000", adv.Block.Limit)
	}
	if adv.Block.Overage() != 1 {
		t.Fatalf("Overage = %.2f, want 1", adv.Block.Overage())
	}
}

func TestEvaluateAdvanceRoundsBeforeComparing(t *testing.T) {
	// A float artifact a fraction of a unit over salary must not block.
	expenses := []model.Expense{exp("Rent", 5000.4, model.Need)}
	adv := EvaluateAdvance(5000, expenses, model.BudgetRule{Needs: 100})
	if !adv.Allowed() {
		t.Fatal("sub-unit overage blocked despite rounding policy")
	}
}

func TestEvaluateAdvanceWantsWarning(t *testing.T) {
	expenses := []model.Expense{
		exp("Dining", 2000, model.Want),
		exp("Shopping", 1500, model.Want),
	}
	adv := EvaluateAdvance(10000, expenses, model.DefaultRule())

	if !adv.Allowed() {
		t.Fatal("ceiling breach must warn, not block")
	}
	w := adv.Warning
	if w == nil {
		t.Fatal("expected a warning for wants at 35%")
	}
	if w.Category != model.Want {
		t.Fatalf("warning category = %s, want want", w.Category)
	}
	if w.Ceiling != 3000 {
		t.Fatalf("ceiling = %.2f, want 3000", w.Ceiling)
	}
	if w.Excess != 500 {
		t.Fatalf("excess = %.2f, want 500", w.Excess)
	}
	if len(w.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(w.Suggestions))
	}
	if w.Suggestions[0].Name != "Dining" {
		t.Fatalf("first suggestion = %q, want the largest item Dining", w.Suggestions[0].Name)
	}
	if w.Suggestions[0].ReduceBy != 500 {
		t.Fatalf("ReduceBy = %.2f, want min(2000, 500) = 500", w.Suggestions[0].ReduceBy)
	}
}

func TestEvaluateAdvanceWantsCheckedBeforeNeeds(t *testing.T) {
	// Both categories breach; only the wants warning may surface.
	expenses := []model.Expense{
		exp("Rent", 6000, model.Need),
		exp("Dining", 3600, model.Want),
	}
	adv := EvaluateAdvance(10000, expenses, model.DefaultRule())

	if adv.Warning == nil {
		t.Fatal("expected a warning")
	}
	if adv.Warning.Category != model.Want {
		t.Fatalf("warning category = %s, want want (checked first, short-circuits)", adv.Warning.Category)
	}
}

func TestEvaluateAdvanceNeedsWarning(t *testing.T) {
	expenses := []model.Expense{
		exp("Rent", 4000, model.Need),
		exp("Groceries", 1600, model.Need),
	}
	adv := EvaluateAdvance(10000, expenses, model.DefaultRule())

	if adv.Warning == nil || adv.Warning.Category != model.Need {
		t.Fatalf("expected a needs warning, got %+v", adv.Warning)
	}
	if adv.Warning.Excess != 600 {
		t.Fatalf("excess = %.2f, want 600", adv.Warning.Excess)
	}
}

func TestEvaluateAdvanceSavingsNeverWarns(t *testing.T) {
	// Savings massively over its share: no ceiling applies to savings here.
	expenses := []model.Expense{exp("Investments", 9000, model.Saving)}
	adv := EvaluateAdvance(10000, expenses, model.DefaultRule())

	if adv.Block != nil || adv.Warning != nil {
		t.Fatalf("savings must not trigger the gate, got %+v", adv)
	}
}

func TestEvaluateAdvanceClean(t *testing.T) {
	expenses := []model.Expense{
		exp("Rent", 4800, model.Need),
		exp("Dining", 2900, model.Want),
		exp("Investments", 2000, model.Saving),
	}
	adv := EvaluateAdvance(10000, expenses, model.DefaultRule())

	if adv.Block != nil || adv.Warning != nil {
		t.Fatalf("within-budget ledger triggered the gate: %+v", adv)
	}
}

func TestEvaluateAdvanceSuggestionCap(t *testing.T) {
	expenses := []model.Expense{
		exp("A", 1500, model.Want),
		exp("B", 1200, model.Want),
		exp("C", 900, model.Want),
		exp("D", 600, model.Want),
	}
	adv := EvaluateAdvance(10000, expenses, model.DefaultRule())

	if adv.Warning == nil {
		t.Fatal("expected a warning")
	}
	if len(adv.Warning.Suggestions) != 3 {
		t.Fatalf("suggestions = %d, want capped at 3", len(adv.Warning.Suggestions))
	}
	for i := 1; i < len(adv.Warning.Suggestions); i++ {
		if adv.Warning.Suggestions[i].Amount > adv.Warning.Suggestions[i-1].Amount {
			t.Fatal("suggestions must be sorted by amount descending")
		}
	}
}
