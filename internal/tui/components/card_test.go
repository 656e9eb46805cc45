package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/model"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	metrics := []Metric{
		{Label: "Salary", Value: "10,000"},
		{Label: "Spent", Value: "8,000"},
		{Label: "Left", Value: "2,000"},
	}
	row := MetricCardRow(metrics, 90)
	if lipgloss.Width(row) != 90 {
		t.Fatalf("row width = %d, want 90", lipgloss.Width(row))
	}
	for _, m := range metrics {
		if !strings.Contains(row, m.Value) {
			t.Errorf("row missing value %q", m.Value)
		}
	}
}

func TestCategoryBarsShowTotals(t *testing.T) {
	m := budget.ComputeMetrics(10000, []model.Expense{
		budget.NewExpense("Rent", 5000, model.Need, ""),
		budget.NewExpense("Dining", 2000, model.Want, ""),
	})
	out := CategoryBars(m, model.English, 80)

	if !strings.Contains(out, "5,000") || !strings.Contains(out, "2,000") {
		t.Fatalf("breakdown missing totals:\n%s", out)
	}
	if len(strings.Split(out, "\n")) != len(model.Categories) {
		t.Fatal("expected one bar per category")
	}
}

func TestRenderStepBarMarksCurrent(t *testing.T) {
	out := RenderStepBar(budget.StepAdvisor, model.English, 80)

	if !strings.Contains(out, "● Advisor") {
		t.Fatalf("current step not highlighted:\n%s", out)
	}
	if !strings.Contains(out, "✓ Salary") {
		t.Fatalf("completed step not checked:\n%s", out)
	}
	if !strings.Contains(out, "○ Dashboard") {
		t.Fatalf("future step not pending:\n%s", out)
	}
}
