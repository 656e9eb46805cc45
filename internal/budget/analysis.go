package budget

import (
	"math"

	"github.com/qawamdev/qawam/internal/model"
)

// tolerancePct is the band around each target inside which a category is
// considered on track. The band is strict: exactly 5 points off is fine.
const tolerancePct = 5

// Analyze compares the metrics snapshot against the budget rule and
// produces one card per category plus the overall balanced verdict.
//
// Needs and wants flag "over" when the actual share exceeds the target by
// more than the tolerance. Savings is a floor, not a ceiling: it flags
// "under" when more than the tolerance below target. The savings share is
// measured against TotalSavingsCalculated, not the tagged saving expenses.
// With salary zero every actual share is reported as zero.
func Analyze(m model.DashboardMetrics, salary float64, rule model.BudgetRule) model.Analysis {
	pct := func(v float64) float64 {
		if salary <= 0 {
			return 0
		}
		// Multiply before dividing: v/salary*100 picks up a float artifact
		// at exact tolerance boundaries (5500/10000*100 = 55.000000000000007)
		// and would flag a share that is not strictly past the band.
		return v * 100 / salary
	}

	needsPct := pct(m.TotalNeeds)
	wantsPct := pct(m.TotalWants)
	savePct := pct(m.TotalSavingsCalculated)

	cards := []model.CategoryAnalysis{
		{Category: model.Need, ActualPct: needsPct, TargetPct: rule.Needs},
		{Category: model.Want, ActualPct: wantsPct, TargetPct: rule.Wants},
		{Category: model.Saving, ActualPct: savePct, TargetPct: rule.Savings},
	}

	if needsPct-rule.Needs > tolerancePct {
		cards[0].Status = model.StatusOver
	}
	if wantsPct-rule.Wants > tolerancePct {
		cards[1].Status = model.StatusOver
	}
	if rule.Savings-savePct > tolerancePct {
		cards[2].Status = model.StatusUnder
	}

	balanced := math.Abs(needsPct-rule.Needs) <= tolerancePct &&
		math.Abs(wantsPct-rule.Wants) <= tolerancePct &&
		savePct >= rule.Savings-tolerancePct

	return model.Analysis{Cards: cards, Balanced: balanced}
}
