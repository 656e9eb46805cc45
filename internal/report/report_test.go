package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/qawamdev/qawam/internal/budget"
	"github.com/qawamdev/qawam/internal/model"
)

func sample() Report {
	expenses := []model.Expense{
		budget.NewExpense("Rent", 5000, model.Need, ""),
		budget.NewExpense("Dining out", 3000, model.Want, ""),
		budget.NewExpense("Investments", 2000, model.Saving, ""),
	}
	return Build(10000, expenses, model.DefaultRule(), model.English, "SAR",
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
}

func TestRenderContainsBudgetNumbers(t *testing.T) {
	out := sample().Render()

	for _, want := range []string{
		"QAWAM",
		"2026-08-01",
		"10,000 SAR",
		"Rent",
		"Dining out",
		"Investments",
		"Expense Ledger",
		"Target vs Actual",
		"balanced",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderUnbalancedVerdict(t *testing.T) {
	r := Build(10000, []model.Expense{
		budget.NewExpense("Rent", 8000, model.Need, ""),
	}, model.DefaultRule(), model.English, "", time.Now())

	if !strings.Contains(r.Render(), "outside the target range") {
		t.Error("unbalanced budget must render the warning verdict")
	}
}

func TestRenderArabic(t *testing.T) {
	r := sample()
	r.Lang = model.Arabic
	out := r.Render()

	if !strings.Contains(out, "قوام") {
		t.Error("arabic report missing title")
	}
	if !strings.Contains(out, "سجل المصاريف") {
		t.Error("arabic report missing ledger section")
	}
}

func TestExportAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	if err := Export(path, sample()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "QAWAM") {
		t.Fatal("exported file missing content")
	}

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("export left %d files, want 1", len(entries))
	}
}

func TestExportFailureLeavesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	err := Export(filepath.Join(dir, "report.txt"), sample())
	if err == nil {
		t.Fatal("export into a missing directory must fail")
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Fatal("failed export must not create the directory")
	}
}
