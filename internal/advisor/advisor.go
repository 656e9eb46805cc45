// Package advisor recommends budget rules from the current ledger. A remote
// LLM-backed client and a deterministic local heuristic share one interface;
// callers always get an answer because every remote failure falls back to
// the local analysis.
package advisor

import (
	"context"

	"github.com/qawamdev/qawam/internal/model"
)

// Recommendation is the outcome of a rule analysis.
type Recommendation struct {
	Rule    model.BudgetRule
	Message string
	// Remote is true when the recommendation came from the remote model
	// rather than the local heuristic.
	Remote bool
}

// ExtractedExpense is an expense the remote model pulled out of a free-text
// chat message. It has no identity yet; the caller mints one when adding it
// to the ledger.
type ExtractedExpense struct {
	Name     string
	Amount   float64
	Category model.Category
}

// ChatReply is the advisor's answer to a free-text message.
type ChatReply struct {
	Message  string
	Rule     *model.BudgetRule
	Expenses []ExtractedExpense
}

// Advisor analyzes a ledger and recommends a budget rule.
type Advisor interface {
	RecommendRule(ctx context.Context, salary float64, expenses []model.Expense) (*Recommendation, error)
	Chat(ctx context.Context, message string, salary float64, expenses []model.Expense) (*ChatReply, error)
}

// Recommend runs the remote advisor when one is configured and falls back
// to the local heuristic on any error. It never fails.
func Recommend(ctx context.Context, remote Advisor, lang model.Language, salary float64, expenses []model.Expense) *Recommendation {
	if remote != nil {
		if rec, err := remote.RecommendRule(ctx, salary, expenses); err == nil && rec != nil {
			return rec
		}
	}
	rec, _ := Local{Lang: lang}.RecommendRule(ctx, salary, expenses)
	return rec
}
