package report

// render.go — Human-readable console summary.
//
// Pure presentation over the structured report: one section per check, a
// marker per violation, aggregate stats, final pass/fail line. Nothing is
// printed that isn't also in the persisted report.

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"siteaudit/internal/check"
)

var (
	styleSection = lipgloss.NewStyle().Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	stylePass    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	styleFail    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	styleMuted   = lipgloss.NewStyle().Faint(true)
)

// Render writes the grouped console summary for a finished run.
func Render(w io.Writer, r *Report, sections []check.Section) {
	for _, s := range sections {
		fmt.Fprintln(w, styleSection.Render("── "+s.CheckID+" "))
		if len(s.Violations) == 0 {
			fmt.Fprintln(w, styleMuted.Render("   ok"))
		}
		for _, v := range s.Violations {
			fmt.Fprintf(w, "   %s %s\n", marker(v.Severity), v.Message)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "files: %d   total: %s\n", r.TotalFiles, humanSize(r.TotalSizeBytes))
	if len(r.LargestFiles) > 0 {
		fmt.Fprintln(w, styleMuted.Render("largest:"))
		for i, a := range r.LargestFiles {
			if i == 5 {
				break
			}
			fmt.Fprintf(w, "   %8s  %s\n", humanSize(a.Size), a.RelPath)
		}
	}
	if exts := topExtensions(r, 5); len(exts) > 0 {
		fmt.Fprintf(w, "by extension: ")
		for i, e := range exts {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprintf(w, "%s ×%d (%s)", e.ext, e.stat.Count, humanSize(e.stat.SizeBytes))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	if r.Pass() {
		fmt.Fprintf(w, "%s", stylePass.Render("PASS"))
		if n := r.WarningCount(); n > 0 {
			fmt.Fprintf(w, " %s", styleWarning.Render(fmt.Sprintf("(%d warning(s))", n)))
		}
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "%s %d error(s), %d warning(s)\n",
		styleFail.Render("FAIL"), r.ErrorCount(), r.WarningCount())
}

func marker(s check.Severity) string {
	if s == check.SeverityError {
		return styleError.Render("✗")
	}
	return styleWarning.Render("!")
}

type extEntry struct {
	ext  string
	stat ExtStat
}

// topExtensions returns up to n extensions, descending by size, ties by name.
func topExtensions(r *Report, n int) []extEntry {
	entries := make([]extEntry, 0, len(r.ByExtension))
	for ext, stat := range r.ByExtension {
		entries = append(entries, extEntry{ext, stat})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].stat.SizeBytes != entries[j].stat.SizeBytes {
			return entries[i].stat.SizeBytes > entries[j].stat.SizeBytes
		}
		return entries[i].ext < entries[j].ext
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// humanSize formats a byte count with a binary unit.
func humanSize(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KiB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
