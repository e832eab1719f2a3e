// Package report assembles the audit report and persists it.
//
// Assemble is pure; writing and console rendering are separate, mirroring
// the build-then-write split used throughout this codebase so the aggregation
// stays trivially testable.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"siteaudit/internal/check"
	"siteaudit/internal/inventory"
)

// Filename is the fixed report name written at the inventory root. The
// driver excludes it from the walk so a re-run audits the same inventory.
const Filename = "build-report.json"

// ExtStat aggregates artifacts sharing one extension.
type ExtStat struct {
	Count     int   `json:"count"`
	SizeBytes int64 `json:"sizeBytes"`
}

// Report is the single structured output of an audit run. Never mutated
// after Assemble returns.
type Report struct {
	GeneratedAt    time.Time            `json:"generatedAt"`
	TotalFiles     int                  `json:"totalFiles"`
	TotalSizeBytes int64                `json:"totalSizeBytes"`
	ByExtension    map[string]ExtStat   `json:"byExtension"`
	LargestFiles   []inventory.Artifact `json:"largestFiles"`
	Violations     []check.Violation    `json:"violations"`
}

// Assemble aggregates the inventory and the violations of this run.
// TotalSizeBytes equals the sum of all artifact sizes; LargestFiles holds at
// most 10 artifacts, descending by size with ties broken by path so output
// is deterministic.
func Assemble(inv *inventory.Inventory, violations []check.Violation) *Report {
	byExt := make(map[string]ExtStat)
	for _, a := range inv.Artifacts {
		s := byExt[a.Ext]
		s.Count++
		s.SizeBytes += a.Size
		byExt[a.Ext] = s
	}

	largest := make([]inventory.Artifact, len(inv.Artifacts))
	copy(largest, inv.Artifacts)
	sort.Slice(largest, func(i, j int) bool {
		if largest[i].Size != largest[j].Size {
			return largest[i].Size > largest[j].Size
		}
		return largest[i].RelPath < largest[j].RelPath
	})
	if len(largest) > 10 {
		largest = largest[:10]
	}

	if violations == nil {
		violations = []check.Violation{}
	}
	return &Report{
		GeneratedAt:    time.Now().UTC(),
		TotalFiles:     len(inv.Artifacts),
		TotalSizeBytes: inv.TotalSize(),
		ByExtension:    byExt,
		LargestFiles:   largest,
		Violations:     violations,
	}
}

// Pass reports whether the run passed: no error-severity violations.
// Warnings never fail a run.
func (r *Report) Pass() bool {
	return r.ErrorCount() == 0
}

// ErrorCount returns the number of error-severity violations.
func (r *Report) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == check.SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity violations.
func (r *Report) WarningCount() int {
	return len(r.Violations) - r.ErrorCount()
}

// Write persists the report as indented JSON at dir/Filename. A failure here
// is fatal to the run: the saved artifact is the point of the tool.
func Write(r *Report, dir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
