package check

// bundlesize.go — Byte-size budgets for scripts, styles, images and the
// site as a whole.

import (
	"fmt"
	"strings"

	"siteaudit/internal/budget"
	"siteaudit/internal/inventory"
)

var (
	scriptExts = []string{".js", ".mjs"}
	styleExts  = []string{".css"}
	rasterExts = []string{".png", ".jpg", ".jpeg", ".gif"}
)

// BundleSize compares artifact sizes against the budget table:
// the script sum against script-initial, each non-entry script against
// script-async, the style sum against style-total, each raster image against
// image-per-page, and everything against page-total.
type BundleSize struct{}

func (*BundleSize) ID() string { return "bundle-size" }

func (b *BundleSize) Run(inv *inventory.Inventory, budgets *budget.Budgets) []Violation {
	var vs []Violation

	scripts := sortedByPath(inv.WithExt(scriptExts...))
	var scriptSum int64
	for _, a := range scripts {
		scriptSum += a.Size
	}
	if ceiling := budgets.For(budget.ScriptInitial); ceiling > 0 && scriptSum > ceiling {
		vs = append(vs, b.violation("initial script payload %s exceeds %s budget %s",
			kib(scriptSum), budget.ScriptInitial, kib(ceiling)))
	}
	if ceiling := budgets.For(budget.ScriptAsync); ceiling > 0 {
		for _, a := range scripts {
			if isEntryScript(a.RelPath) {
				continue
			}
			if a.Size > ceiling {
				vs = append(vs, b.violation("chunk %s is %s, exceeds %s budget %s",
					a.RelPath, kib(a.Size), budget.ScriptAsync, kib(ceiling)))
			}
		}
	}

	var styleSum int64
	for _, a := range inv.WithExt(styleExts...) {
		styleSum += a.Size
	}
	if ceiling := budgets.For(budget.StyleTotal); ceiling > 0 && styleSum > ceiling {
		vs = append(vs, b.violation("stylesheet payload %s exceeds %s budget %s",
			kib(styleSum), budget.StyleTotal, kib(ceiling)))
	}

	if ceiling := budgets.For(budget.ImagePerPage); ceiling > 0 {
		for _, a := range sortedByPath(inv.WithExt(rasterExts...)) {
			if a.Size > ceiling {
				vs = append(vs, b.violation("image %s is %s, exceeds %s budget %s",
					a.RelPath, kib(a.Size), budget.ImagePerPage, kib(ceiling)))
			}
		}
	}

	if ceiling := budgets.For(budget.PageTotal); ceiling > 0 {
		if total := inv.TotalSize(); total > ceiling {
			vs = append(vs, b.violation("total output %s exceeds %s budget %s",
				kib(total), budget.PageTotal, kib(ceiling)))
		}
	}

	return vs
}

func (b *BundleSize) violation(format string, args ...any) Violation {
	return Violation{
		RuleID:   b.ID(),
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	}
}

// isEntryScript reports whether a script path looks like an entry chunk.
// The base name up to the first "." or "-" separator decides, so hashed
// bundler output ("index.3fab2c.js", "main-Bx91.js") still matches.
func isEntryScript(relPath string) bool {
	base := relPath
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexAny(base, ".-"); i >= 0 {
		base = base[:i]
	}
	switch strings.ToLower(base) {
	case "index", "main", "entry":
		return true
	}
	return false
}
