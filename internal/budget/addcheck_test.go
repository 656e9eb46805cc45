package budget

import (
	"strings"
	"testing"

	"github.com/qawamdev/qawam/internal/model"
)

func TestCheckAdditionFits(t *testing.T) {
	expenses := []model.Expense{exp("Rent", 3000, model.Need)}
	if w := CheckAddition(10000, expenses, nil, 2000, model.DefaultRule()); w != nil {
		t.Fatalf("addition that fits produced a warning: %+v", w)
	}
}

func TestCheckAdditionDeficit(t *testing.T) {
	expenses := []model.Expense{exp("Rent", 4500, model.Need)}
	w := CheckAddition(5000, expenses, nil, 800, model.DefaultRule())
	if w == nil {
		t.Fatal("expected a warning for 5300 against 5000")
	}
	if w.Deficit != 300 {
		t.Fatalf("Deficit = %.2f, want 300", w.Deficit)
	}
}

func TestCheckAdditionEditUsesAmountDelta(t *testing.T) {
	e := exp("Dining", 1000, model.Want)
	expenses := []model.Expense{e, exp("Rent", 4000, model.Need)}

	// Raising Dining from 1000 to 1500 keeps the total at 5500 <= 6000.
	if w := CheckAddition(6000, expenses, &e, 1500, model.DefaultRule()); w != nil {
		t.Fatalf("edit within budget produced a warning: %+v", w)
	}

	// Raising it to 2100 pushes the total to 6100.
	w := CheckAddition(6000, expenses, &e, 2100, model.DefaultRule())
	if w == nil {
		t.Fatal("expected a warning")
	}
	if w.Deficit != 100 {
		t.Fatalf("Deficit = %.2f, want 100", w.Deficit)
	}
}

func TestCheckAdditionWantsShareBoundaryExact(t *testing.T) {
	// Wants at exactly the target share: the strict comparison must not
	// trip on float artifacts (3000/10000*100 would read 30.000000000000004).
	expenses := []model.Expense{
		exp("Rent", 6500, model.Need),
		exp("Dining", 3000, model.Want),
	}
	w := CheckAddition(10000, expenses, nil, 1000, model.DefaultRule())
	if w == nil {
		t.Fatal("expected a warning, total would reach 10500")
	}
	if w.WantsPct != 30 {
		t.Fatalf("WantsPct = %v, want exactly 30", w.WantsPct)
	}
	if w.Kind != AdviceTrimWant {
		t.Fatalf("kind = %v, want AdviceTrimWant when wants sit exactly on target", w.Kind)
	}
}

func TestCheckAdditionAdvicePriority(t *testing.T) {
	rule := model.DefaultRule()

	// Wants over target: trim the largest want, named.
	expenses := []model.Expense{
		exp("Dining", 2500, model.Want),
		exp("Shopping", 1000, model.Want),
		exp("Rent", 1400, model.Need),
	}
	w := CheckAddition(5000, expenses, nil, 500, rule)
	if w == nil || w.Kind != AdviceTrimHighWants {
		t.Fatalf("kind = %+v, want AdviceTrimHighWants", w)
	}
	if w.Target != "Dining" {
		t.Fatalf("Target = %q, want the largest want Dining", w.Target)
	}

	// Wants present but under target: still point at the largest want.
	expenses = []model.Expense{
		exp("Dining", 500, model.Want),
		exp("Rent", 4400, model.Need),
	}
	w = CheckAddition(5000, expenses, nil, 500, rule)
	if w == nil || w.Kind != AdviceTrimWant {
		t.Fatalf("kind = %+v, want AdviceTrimWant", w)
	}

	// Needs only: point at the largest need.
	expenses = []model.Expense{exp("Rent", 4900, model.Need)}
	w = CheckAddition(5000, expenses, nil, 500, rule)
	if w == nil || w.Kind != AdviceTrimNeed || w.Target != "Rent" {
		t.Fatalf("got %+v, want AdviceTrimNeed targeting Rent", w)
	}

	// Empty ledger: generic advice.
	w = CheckAddition(5000, nil, nil, 5500, rule)
	if w == nil || w.Kind != AdviceGeneric {
		t.Fatalf("got %+v, want AdviceGeneric", w)
	}
}

func TestCheckAdditionAdviceLocalized(t *testing.T) {
	w := AddWarning{Deficit: 300, Kind: AdviceTrimWant, Target: "Dining"}

	en := w.Advice(model.English, model.DefaultRule())
	if !strings.Contains(en, "Dining") {
		t.Fatalf("english advice missing target: %q", en)
	}

	ar := w.Advice(model.Arabic, model.DefaultRule())
	if !strings.Contains(ar, "Dining") {
		t.Fatalf("arabic advice missing target: %q", ar)
	}
	if ar == en {
		t.Fatal("advice not localized")
	}
}
