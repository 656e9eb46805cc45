package advisor

import (
	"context"
	"fmt"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/model"
)

// Local is the offline rule heuristic. It looks only at the needs share of
// salary and picks one of three presets, so the same ledger always yields
// the same answer.
type Local struct {
	Lang model.Language
}

var _ Advisor = Local{}

// RecommendRule classifies the needs share: over 65% of salary gets the
// 70/20/10 preset, over 55% gets 60/20/20, anything else the default
// 50/30/20. The error is always nil.
func (l Local) RecommendRule(_ context.Context, salary float64, expenses []model.Expense) (*Recommendation, error) {
	needsPct := 0.0
	if salary > 0 {
		// Multiply before dividing so a needs share of exactly 55% or 65%
		// stays exact and the strict > comparisons below hold.
		needsPct = budget.CategoryTotal(expenses, model.Need) * 100 / salary
	}

	switch {
	case needsPct > 65:
		return &Recommendation{
			Rule:    model.BudgetRule{Needs: 70, Wants: 20, Savings: 10},
			Message: l.text(msgHighNeeds),
		}, nil
	case needsPct > 55:
		return &Recommendation{
			Rule:    model.BudgetRule{Needs: 60, Wants: 20, Savings: 20},
			Message: l.text(msgElevatedNeeds),
		}, nil
	default:
		return &Recommendation{
			Rule:    model.DefaultRule(),
			Message: l.text(msgBalancedNeeds),
		}, nil
	}
}

// Chat answers with the rule recommendation for the current ledger; the
// free-text message itself is not interpreted offline.
func (l Local) Chat(ctx context.Context, _ string, salary float64, expenses []model.Expense) (*ChatReply, error) {
	rec, err := l.RecommendRule(ctx, salary, expenses)
	if err != nil {
		return nil, err
	}
	rule := rec.Rule
	msg := rec.Message
	if l.Lang == model.Arabic {
		msg = fmt.Sprintf("%s (المستشار الذكي غير متاح حالياً، هذا تحليل محلي.)", msg)
	} else {
		msg = fmt.Sprintf("%s (The AI advisor is unavailable right now; this is a local analysis.)", msg)
	}
	return &ChatReply{Message: msg, Rule: &rule}, nil
}

type fallbackMsg int

const (
	msgHighNeeds fallbackMsg = iota
	msgElevatedNeeds
	msgBalancedNeeds
)

func (l Local) text(m fallbackMsg) string {
	if l.Lang == model.Arabic {
		switch m {
		case msgHighNeeds:
			return "نظراً لأن التزاماتك الأساسية مرتفعة (أكثر من 65% من الراتب)، نقترح قاعدة 70/20/10 لتكون الخطة واقعية وقابلة للتطبيق."
		case msgElevatedNeeds:
			return "تشكل الاحتياجات جزءاً كبيراً من دخلك، لذا قمنا بتعديل القاعدة إلى 60/20/20. هذا سيمنحك مرونة أكبر في إدارة المصاريف الضرورية دون الضغط على ميزانيتك."
		default:
			return "بناءً على مصاريفك الحالية، وضعك المالي يسمح بتطبيق القاعدة الذهبية 50/30/20. هذا التوزيع يضمن توازناً مثالياً بين الالتزامات، الرفاهية، والادخار للمستقبل."
		}
	}

	switch m {
	case msgHighNeeds:
		return "Since your essential obligations are high (over 65% of salary), we suggest the 70/20/10 rule to make the plan realistic and achievable."
	case msgElevatedNeeds:
		return "Needs make up a large part of your income, so we adjusted the rule to 60/20/20. This gives you more flexibility in managing essentials without straining your budget."
	default:
		return "Based on your current expenses, your financial situation allows for the golden 50/30/20 rule. This distribution ensures a perfect balance between obligations, lifestyle, and savings."
	}
}
