package budget

import (
	"math"
	"sort"

	"github.com/qawamdev/qawam/internal/model"
)

// Step is a position in the linear onboarding flow.
type Step int

// The flow steps, in order. Back transitions mirror forward ones.
const (
	StepSalary Step = iota + 1
	StepWizard
	StepAdvisor
	StepReview
	StepDashboard
)

// Next returns the following step, clamped at the dashboard.
func (s Step) Next() Step {
	if s < StepDashboard {
		return s + 1
	}
	return s
}

// Prev returns the preceding step, clamped at salary entry.
func (s Step) Prev() Step {
	if s > StepSalary {
		return s - 1
	}
	return s
}

// maxSuggestions caps how many trim candidates a warning carries.
const maxSuggestions = 3

// Block is a hard stop: committed spend exceeds salary, which the
// percentage model cannot represent. Only editing the ledger clears it.
type Block struct {
	Current float64 // rounded total expenses
	Limit   float64 // salary
}

// Overage returns the amount by which spending exceeds the limit.
func (b Block) Overage() float64 {
	return b.Current - b.Limit
}

// Suggestion proposes reducing one expense to clear a category overage.
type Suggestion struct {
	Name     string
	Amount   float64
	ReduceBy float64
}

// Warning flags a category over its rule ceiling. Dismissible: the user
// may proceed to the dashboard anyway or go back and edit.
type Warning struct {
	Category    model.Category
	Actual      float64
	Ceiling     float64
	Excess      float64
	Suggestions []Suggestion
}

// Advance is the gate decision for the review → dashboard transition.
type Advance struct {
	Block   *Block
	Warning *Warning
}

// Allowed reports whether the transition may proceed (possibly after
// dismissing a warning).
func (a Advance) Allowed() bool {
	return a.Block == nil
}

// EvaluateAdvance gates the review → dashboard transition.
//
// Spending past salary blocks outright. Otherwise category ceilings are
// checked in fixed priority order, wants before needs, and only the first
// breach produces a warning. Savings has no ceiling here; its shortfall
// only surfaces through Analyze. All threshold comparisons round to the
// nearest currency unit first so float artifacts never trigger a flag.
func EvaluateAdvance(salary float64, expenses []model.Expense, rule model.BudgetRule) Advance {
	total := ComputeMetrics(salary, expenses).TotalExpenses

	if math.Round(total) > math.Round(salary) {
		return Advance{Block: &Block{Current: math.Round(total), Limit: salary}}
	}

	for _, c := range []model.Category{model.Want, model.Need} {
		actual := CategoryTotal(expenses, c)
		ceiling := rule.Ceiling(c, salary)
		if math.Round(actual) <= math.Round(ceiling) {
			continue
		}

		excess := actual - ceiling
		return Advance{Warning: &Warning{
			Category:    c,
			Actual:      actual,
			Ceiling:     ceiling,
			Excess:      excess,
			Suggestions: trimCandidates(expenses, c, excess),
		}}
	}

	return Advance{}
}

// trimCandidates returns the category's largest expenses with a proposed
// reduction each, capped at the item amount.
func trimCandidates(expenses []model.Expense, c model.Category, excess float64) []Suggestion {
	var members []model.Expense
	for _, e := range expenses {
		if e.Category == c {
			members = append(members, e)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Amount > members[j].Amount
	})

	if len(members) > maxSuggestions {
		members = members[:maxSuggestions]
	}

	out := make([]Suggestion, 0, len(members))
	for _, e := range members {
		reduce := excess
		if e.Amount < reduce {
			reduce = e.Amount
		}
		out = append(out, Suggestion{Name: e.Name, Amount: e.Amount, ReduceBy: reduce})
	}
	return out
}
