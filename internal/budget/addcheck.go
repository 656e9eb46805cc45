package budget

import (
	"fmt"
	"sort"

	"github.com/qawamdev/qawam/internal/model"
)

// AdviceKind identifies which trim advice applies to an overage at entry time.
type AdviceKind int

// Advice kinds, from most to least specific.
const (
	AdviceTrimHighWants AdviceKind = iota // wants already past target, trim largest want
	AdviceTrimWant                        // trim the largest want
	AdviceTrimNeed                        // no wants left, reconsider the largest need
	AdviceGeneric                         // empty ledger, nothing to point at
)

// AddWarning reports that saving an expense would push total spending past
// salary. It is advisory: the caller may still force-save.
type AddWarning struct {
	Deficit  float64
	Kind     AdviceKind
	Target   string  // name of the suggested expense to trim, if any
	WantsPct float64 // current wants share of salary
}

// CheckAddition evaluates adding (or editing, when editing is non-nil) an
// expense of the given amount. Returns nil when the budget still fits.
//
// The advice looks at the ledger without the item being edited, finds the
// largest want (or need) and classifies which message fits: wants already
// over target, a want to trim, a need to reconsider, or generic.
func CheckAddition(salary float64, expenses []model.Expense, editing *model.Expense, amount float64, rule model.BudgetRule) *AddWarning {
	current := ComputeMetrics(salary, expenses).TotalExpenses

	diff := amount
	if editing != nil {
		diff = amount - editing.Amount
	}
	if current+diff <= salary {
		return nil
	}

	w := &AddWarning{Deficit: current + diff - salary}

	others := expenses
	if editing != nil {
		others = Remove(expenses, editing.ID)
	}

	if salary > 0 {
		// Multiply first, same as Analyze: keeps exact-boundary shares exact.
		w.WantsPct = CategoryTotal(others, model.Want) * 100 / salary
	}

	largestWant := largestIn(others, model.Want)
	largestNeed := largestIn(others, model.Need)

	switch {
	case largestWant != nil && w.WantsPct > rule.Wants:
		w.Kind = AdviceTrimHighWants
		w.Target = largestWant.Name
	case largestWant != nil:
		w.Kind = AdviceTrimWant
		w.Target = largestWant.Name
	case largestNeed != nil:
		w.Kind = AdviceTrimNeed
		w.Target = largestNeed.Name
	default:
		w.Kind = AdviceGeneric
	}

	return w
}

// Advice renders the localized expert recommendation for the warning.
func (w AddWarning) Advice(lang model.Language, rule model.BudgetRule) string {
	if lang == model.Arabic {
		switch w.Kind {
		case AdviceTrimHighWants:
			return fmt.Sprintf("توصية الخبير: إنفاقك على الرغبات مرتفع (%.0f%% بينما الموصى به %.0f%%). لإتاحة المجال لهذا المصروف، نقترح تقليل بند \"%s\" بمقدار %.0f.",
				w.WantsPct, rule.Wants, w.Target, w.Deficit)
		case AdviceTrimWant:
			return fmt.Sprintf("توصية الخبير: لإضافة هذا المصروف، ابدأ بتقليل الكماليات. هل يمكنك تخفيض بند \"%s\"؟", w.Target)
		case AdviceTrimNeed:
			return fmt.Sprintf("توصية الخبير: ميزانيتك مضغوطة جداً وتتكون معظمها من احتياجات. راجع بند \"%s\" إن أمكن استبداله ببديل أقل تكلفة لتوفير %.0f.", w.Target, w.Deficit)
		default:
			return fmt.Sprintf("توصية الخبير: حاول تقليل أي مصروف آخر بمقدار %.0f لإتمام العملية.", w.Deficit)
		}
	}

	switch w.Kind {
	case AdviceTrimHighWants:
		return fmt.Sprintf("Expert tip: your wants spending is high (%.0f%% vs the recommended %.0f%%). To make room, consider reducing \"%s\" by %.0f.",
			w.WantsPct, rule.Wants, w.Target, w.Deficit)
	case AdviceTrimWant:
		return fmt.Sprintf("Expert tip: start with the nice-to-haves. Could you trim \"%s\"?", w.Target)
	case AdviceTrimNeed:
		return fmt.Sprintf("Expert tip: your budget is tight and mostly needs. Review \"%s\" for a cheaper alternative to free up %.0f.", w.Target, w.Deficit)
	default:
		return fmt.Sprintf("Expert tip: reduce any other expense by %.0f to make this fit.", w.Deficit)
	}
}

func largestIn(expenses []model.Expense, c model.Category) *model.Expense {
	var members []model.Expense
	for _, e := range expenses {
		if e.Category == c {
			members = append(members, e)
		}
	}
	if len(members) == 0 {
		return nil
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Amount > members[j].Amount
	})
	return &members[0]
}
