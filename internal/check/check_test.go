package check

// check_test.go — RunAll ordering, independence and panic recovery.

import (
	"strings"
	"testing"

	"siteaudit/internal/budget"
	"siteaudit/internal/inventory"
)

// stubCheck emits fixed violations or panics.
type stubCheck struct {
	id     string
	emit   []Violation
	panics bool
}

func (s *stubCheck) ID() string { return s.id }

func (s *stubCheck) Run(*inventory.Inventory, *budget.Budgets) []Violation {
	if s.panics {
		panic("malformed content")
	}
	return s.emit
}

func TestRunAllSectionsInRegistryOrder(t *testing.T) {
	checks := []Check{
		&stubCheck{id: "a", emit: []Violation{{RuleID: "a", Message: "a1", Severity: SeverityError}}},
		&stubCheck{id: "b"},
		&stubCheck{id: "c", emit: []Violation{{RuleID: "c", Message: "c1", Severity: SeverityWarning}}},
	}
	sections, all := RunAll(checks, inv(), budget.Default())

	if len(sections) != 3 {
		t.Fatalf("expected a section per check, got %d", len(sections))
	}
	for i, want := range []string{"a", "b", "c"} {
		if sections[i].CheckID != want {
			t.Errorf("section %d = %s, want %s", i, sections[i].CheckID, want)
		}
	}
	if len(all) != 2 {
		t.Fatalf("flat list = %v, want 2 violations", all)
	}
	if all[0].RuleID != "a" || all[1].RuleID != "c" {
		t.Errorf("flat list out of section order: %v", all)
	}
}

func TestRunAllRecoversPanickingCheck(t *testing.T) {
	checks := []Check{
		&stubCheck{id: "first", emit: []Violation{{RuleID: "first", Message: "x", Severity: SeverityError}}},
		&stubCheck{id: "broken", panics: true},
		&stubCheck{id: "last", emit: []Violation{{RuleID: "last", Message: "y", Severity: SeverityWarning}}},
	}
	sections, all := RunAll(checks, inv(), budget.Default())

	if len(all) != 3 {
		t.Fatalf("expected 3 violations (including the recovery note), got %v", all)
	}
	recovered := sections[1].Violations
	if len(recovered) != 1 {
		t.Fatalf("broken check must contribute exactly one warning, got %v", recovered)
	}
	if recovered[0].Severity != SeverityWarning {
		t.Errorf("recovery note severity = %s, want warning", recovered[0].Severity)
	}
	if !strings.Contains(recovered[0].Message, "could not complete") {
		t.Errorf("recovery note %q does not say the check could not complete", recovered[0].Message)
	}
	// Checks after the panic still ran.
	if len(sections[2].Violations) != 1 {
		t.Errorf("check after the panic did not run: %v", sections[2])
	}
}

// Checks are independent: running a subset never changes another's outcome.
func TestChecksAreOrderInsensitive(t *testing.T) {
	root := t.TempDir()
	artifacts := []inventory.Artifact{
		writeArtifact(t, root, "index.html", fullDocument),
		writeArtifact(t, root, "robots.txt", "User-agent: *\n"),
		{RelPath: "img/hero.png", Size: 150 * 1024, Ext: ".png"},
	}
	i := &inventory.Inventory{Root: root, Artifacts: artifacts}
	b := budget.Default()

	alone := (&AssetOptimization{}).Run(i, b)
	_, together := RunAll(Defaults(), i, b)

	var fromFull []Violation
	for _, v := range together {
		if v.RuleID == "asset-optimization" {
			fromFull = append(fromFull, v)
		}
	}
	if len(alone) != len(fromFull) {
		t.Fatalf("subset run emitted %d violations, full run %d", len(alone), len(fromFull))
	}
	for idx := range alone {
		if alone[idx] != fromFull[idx] {
			t.Errorf("violation %d differs: %+v vs %+v", idx, alone[idx], fromFull[idx])
		}
	}
}

func TestDefaultsRegistry(t *testing.T) {
	want := []string{"bundle-size", "asset-optimization", "minification", "seo-presence"}
	checks := Defaults()
	if len(checks) != len(want) {
		t.Fatalf("Defaults() has %d checks, want %d", len(checks), len(want))
	}
	for i, c := range checks {
		if c.ID() != want[i] {
			t.Errorf("Defaults()[%d] = %s, want %s", i, c.ID(), want[i])
		}
	}
}

func TestKiBFormatting(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{102400, "100.0 KiB"},
		{135782, "132.6 KiB"},
	}
	for _, tc := range tests {
		if got := kib(tc.n); got != tc.want {
			t.Errorf("kib(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
