package check

// minify.go — Cheap unminified-output heuristic.
//
// Short average line length in a sizeable script or stylesheet usually means
// the bundler's minification step was skipped. This is a heuristic, not a
// ground-truth check: false positives are acceptable, so everything it emits
// is a warning.

import (
	"bytes"
	"fmt"
	"os"

	"siteaudit/internal/budget"
	"siteaudit/internal/inventory"
)

const (
	// minifySizeFloor skips files too small for the average to mean anything.
	minifySizeFloor = 2 * 1024

	// Average-line-length thresholds. Generated HTML is routinely
	// pretty-printed, so documents get a much lower bar than bundles.
	minAvgLineScript   = 100
	minAvgLineDocument = 40
)

// Minification flags text outputs that look unminified.
type Minification struct{}

func (*Minification) ID() string { return "minification" }

func (c *Minification) Run(inv *inventory.Inventory, _ *budget.Budgets) []Violation {
	var vs []Violation
	for _, a := range sortedByPath(inv.Artifacts) {
		threshold := 0
		switch a.Ext {
		case ".js", ".mjs", ".css":
			threshold = minAvgLineScript
		case ".html":
			threshold = minAvgLineDocument
		default:
			continue
		}
		if a.Size < minifySizeFloor {
			continue
		}

		data, err := os.ReadFile(inv.Abs(a))
		if err != nil {
			vs = append(vs, Violation{
				RuleID:   c.ID(),
				Message:  fmt.Sprintf("could not read %s: %v (skipped)", a.RelPath, err),
				Severity: SeverityWarning,
			})
			continue
		}

		if avg := avgLineLength(data); avg > 0 && avg < threshold {
			vs = append(vs, Violation{
				RuleID: c.ID(),
				Message: fmt.Sprintf("%s looks unminified (average line length %d < %d)",
					a.RelPath, avg, threshold),
				Severity: SeverityWarning,
			})
		}
	}
	return vs
}

// avgLineLength returns the mean line length in bytes, 0 for empty input.
func avgLineLength(data []byte) int {
	data = bytes.TrimRight(data, "\n")
	if len(data) == 0 {
		return 0
	}
	lines := bytes.Count(data, []byte("\n")) + 1
	return len(data) / lines
}
