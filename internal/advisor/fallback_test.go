package advisor

import (
	"context"
	"testing"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/model"
)

func exp(name string, amount float64, c model.Category) model.Expense {
	return budget.NewExpense(name, amount, c, "")
}

func TestLocalPresetSelection(t *testing.T) {
	cases := []struct {
		name  string
		needs float64
		want  model.BudgetRule
	}{
		{"high needs", 7000, model.BudgetRule{Needs: 70, Wants: 20, Savings: 10}},
		{"elevated needs", 5600, model.BudgetRule{Needs: 60, Wants: 20, Savings: 20}},
		{"balanced needs", 5000, model.DefaultRule()},
		{"no expenses", 0, model.DefaultRule()},
	}
	for _, tc := range cases {
		var ledger []model.Expense
		if tc.needs > 0 {
			ledger = []model.Expense{exp("Rent", tc.needs, model.Need)}
		}
		rec, err := Local{Lang: model.English}.RecommendRule(context.Background(), 10000, ledger)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if rec.Rule != tc.want {
			t.Fatalf("%s: rule = %+v, want %+v", tc.name, rec.Rule, tc.want)
		}
		if rec.Message == "" {
			t.Fatalf("%s: empty message", tc.name)
		}
		if rec.Remote {
			t.Fatalf("%s: local recommendation flagged remote", tc.name)
		}
	}
}

func TestLocalBoundariesAreStrict(t *testing.T) {
	// Exactly 65% stays on the middle preset, exactly 55% on the default.
	rec, _ := Local{}.RecommendRule(context.Background(), 10000,
		[]model.Expense{exp("Rent", 6500, model.Need)})
	if rec.Rule.Needs != 60 {
		t.Fatalf("needs at exactly 65%% picked %v, want 60/20/20", rec.Rule)
	}

	rec, _ = Local{}.RecommendRule(context.Background(), 10000,
		[]model.Expense{exp("Rent", 5500, model.Need)})
	if rec.Rule != model.DefaultRule() {
		t.Fatalf("needs at exactly 55%% picked %v, want default", rec.Rule)
	}
}

func TestLocalDeterministic(t *testing.T) {
	ledger := []model.Expense{exp("Rent", 7000, model.Need)}
	first, _ := Local{Lang: model.Arabic}.RecommendRule(context.Background(), 10000, ledger)
	for i := 0; i < 10; i++ {
		again, _ := Local{Lang: model.Arabic}.RecommendRule(context.Background(), 10000, ledger)
		if *again != *first {
			t.Fatalf("recommendation changed between identical calls: %+v vs %+v", again, first)
		}
	}
	if first.Rule != (model.BudgetRule{Needs: 70, Wants: 20, Savings: 10}) {
		t.Fatalf("needs at 70%% must always yield 70/20/10, got %+v", first.Rule)
	}
}

func TestLocalMessagesLocalized(t *testing.T) {
	ledger := []model.Expense{exp("Rent", 7000, model.Need)}
	ar, _ := Local{Lang: model.Arabic}.RecommendRule(context.Background(), 10000, ledger)
	en, _ := Local{Lang: model.English}.RecommendRule(context.Background(), 10000, ledger)
	if ar.Message == en.Message {
		t.Fatal("fallback message not localized")
	}
}

func TestLocalChatEchoesRecommendation(t *testing.T) {
	reply, err := Local{Lang: model.English}.Chat(context.Background(), "help", 10000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Rule == nil || *reply.Rule != model.DefaultRule() {
		t.Fatalf("chat rule = %+v, want default", reply.Rule)
	}
	if reply.Message == "" {
		t.Fatal("empty chat message")
	}
	if len(reply.Expenses) != 0 {
		t.Fatal("local chat must not invent expenses")
	}
}

func TestRecommendFallsBackWhenNoRemote(t *testing.T) {
	rec := Recommend(context.Background(), nil, model.English, 10000,
		[]model.Expense{exp("Rent", 7000, model.Need)})
	if rec == nil {
		t.Fatal("Recommend returned nil")
	}
	if rec.Remote {
		t.Fatal("no remote configured but recommendation flagged remote")
	}
	if rec.Rule.Needs != 70 {
		t.Fatalf("rule = %+v, want 70/20/10", rec.Rule)
	}
}
