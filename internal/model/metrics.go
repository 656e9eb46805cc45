package model

// DashboardMetrics holds the derived totals for a salary + ledger snapshot.
// Always recomputed fresh, never stored.
type DashboardMetrics struct {
	TotalNeeds           float64
	TotalWants           float64
	TotalSavingsExpenses float64 // savings explicitly entered as expenses
	TotalExpenses        float64
	RemainingSalary      float64 // may be negative, never clamped

	// TotalSavingsCalculated is max(0, salary - needs - wants): the full
	// savings capacity including money simply left over. Kept distinct
	// from TotalSavingsExpenses; the two are never reconciled.
	TotalSavingsCalculated float64
}

// AnalysisStatus describes how a category compares to its rule target.
type AnalysisStatus int

// Analysis statuses.
const (
	StatusOK    AnalysisStatus = iota
	StatusOver                 // needs/wants above target beyond tolerance
	StatusUnder                // savings below target beyond tolerance
)

// CategoryAnalysis is one (actual, target, status) tuple of the rule comparison.
type CategoryAnalysis struct {
	Category  Category
	ActualPct float64
	TargetPct float64
	Status    AnalysisStatus
}

// Analysis is the full rule comparison for one metrics snapshot.
type Analysis struct {
	Cards    []CategoryAnalysis // needs, wants, savings in display order
	Balanced bool
}
