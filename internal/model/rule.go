package model

// BudgetRule is the target percentage split of salary across the three
// categories. The percentages are independent sliders and are deliberately
// never validated to sum to 100.
type BudgetRule struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// DefaultRule returns the classic 50/30/20 split.
func DefaultRule() BudgetRule {
	return BudgetRule{Needs: 50, Wants: 30, Savings: 20}
}

// Share returns the target percentage for the given category.
func (r BudgetRule) Share(c Category) float64 {
	switch c {
	case Need:
		return r.Needs
	case Want:
		return r.Wants
	case Saving:
		return r.Savings
	}
	return 0
}

// Ceiling returns the absolute amount of salary the rule allots to a category.
func (r BudgetRule) Ceiling(c Category, salary float64) float64 {
	return r.Share(c) / 100 * salary
}
