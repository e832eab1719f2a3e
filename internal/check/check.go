// Package check defines the audit rule checks and the violations they emit.
//
// Every check is pure over a completed inventory snapshot: checks are
// independent and order-insensitive, so running a subset never changes the
// outcome of the others.
package check

import (
	"fmt"
	"sort"

	"siteaudit/internal/budget"
	"siteaudit/internal/inventory"
)

// Severity of a violation. Only errors affect the exit code.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Violation is a single budget or presence-check failure.
type Violation struct {
	RuleID   string   `json:"ruleId"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Check is the interface every audit rule implements.
type Check interface {
	// ID returns the rule's canonical short identifier (e.g. "bundle-size").
	ID() string

	// Run evaluates the rule against the inventory and budgets, returning
	// zero or more violations.
	Run(inv *inventory.Inventory, budgets *budget.Budgets) []Violation
}

// Defaults returns the standard rule set in report order.
func Defaults() []Check {
	return []Check{
		&BundleSize{},
		&AssetOptimization{},
		&Minification{},
		&SEOPresence{},
	}
}

// Section groups one check's violations for console output.
type Section struct {
	CheckID    string
	Violations []Violation
}

// RunAll executes every check against the inventory. A panicking check
// contributes a single warning noting it could not complete; the remaining
// checks still run. Returns per-check sections plus the flat violation list
// in section order.
func RunAll(checks []Check, inv *inventory.Inventory, budgets *budget.Budgets) ([]Section, []Violation) {
	sections := make([]Section, 0, len(checks))
	var all []Violation
	for _, c := range checks {
		vs := runRecovered(c, inv, budgets)
		sections = append(sections, Section{CheckID: c.ID(), Violations: vs})
		all = append(all, vs...)
	}
	return sections, all
}

func runRecovered(c Check, inv *inventory.Inventory, budgets *budget.Budgets) (vs []Violation) {
	defer func() {
		if r := recover(); r != nil {
			vs = []Violation{{
				RuleID:   c.ID(),
				Message:  fmt.Sprintf("check could not complete: %v", r),
				Severity: SeverityWarning,
			}}
		}
	}()
	return c.Run(inv, budgets)
}

// kib formats a byte count in KiB to one decimal place.
func kib(n int64) string {
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}

// sortedByPath returns artifacts ordered by path for deterministic messages.
func sortedByPath(artifacts []inventory.Artifact) []inventory.Artifact {
	out := make([]inventory.Artifact, len(artifacts))
	copy(out, artifacts)
	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out
}
