// Package budget implements the core calculations: derived metrics, the
// rule comparison, the step progression gate, and expense categorization.
// Everything here is pure; callers own all state and I/O.
package budget

import (
	"github.com/google/uuid"

	"github.com/qawamdev/qawam/internal/model"
)

// CategoryTotal sums the amounts of all expenses in one category.
func CategoryTotal(expenses []model.Expense, c model.Category) float64 {
	var total float64
	for _, e := range expenses {
		if e.Category == c {
			total += e.Amount
		}
	}
	return total
}

// ComputeMetrics derives the dashboard totals from a salary and ledger
// snapshot. Deterministic and side-effect free; safe to call on every change.
func ComputeMetrics(salary float64, expenses []model.Expense) model.DashboardMetrics {
	m := model.DashboardMetrics{
		TotalNeeds:           CategoryTotal(expenses, model.Need),
		TotalWants:           CategoryTotal(expenses, model.Want),
		TotalSavingsExpenses: CategoryTotal(expenses, model.Saving),
	}
	m.TotalExpenses = m.TotalNeeds + m.TotalWants + m.TotalSavingsExpenses
	m.RemainingSalary = salary - m.TotalExpenses

	capacity := salary - m.TotalNeeds - m.TotalWants
	if capacity > 0 {
		m.TotalSavingsCalculated = capacity
	}

	return m
}

// NewExpense creates an expense with a fresh unique ID.
func NewExpense(name string, amount float64, c model.Category, note string) model.Expense {
	return model.Expense{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   amount,
		Category: c,
		Note:     note,
	}
}

// Prepend inserts an expense at the front of the ledger (most recent first).
func Prepend(expenses []model.Expense, e model.Expense) []model.Expense {
	out := make([]model.Expense, 0, len(expenses)+1)
	out = append(out, e)
	return append(out, expenses...)
}

// Replace swaps the expense with the same ID in place, preserving order.
// Returns the ledger unchanged if the ID is not present.
func Replace(expenses []model.Expense, e model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	for i := range out {
		if out[i].ID == e.ID {
			out[i] = e
			break
		}
	}
	return out
}

// Remove deletes the expense with the given ID.
func Remove(expenses []model.Expense, id string) []model.Expense {
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// ValidateEntry reports whether a name/amount pair is acceptable for
// submission. Empty names and non-positive or NaN amounts are rejected;
// submission with invalid input is simply inert.
func ValidateEntry(name string, amount float64) bool {
	if name == "" {
		return false
	}
	if amount != amount || amount <= 0 { // NaN or non-positive
		return false
	}
	return true
}
