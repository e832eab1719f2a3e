package check

// assetopt.go — Modern-format siblings for large raster images.

import (
	"fmt"
	"strings"

	"siteaudit/internal/budget"
	"siteaudit/internal/inventory"
)

// sizeFloor below which a raster image is left alone.
const assetSizeFloor = 100 * 1024

var modernExts = []string{".webp", ".avif"}

// AssetOptimization warns about raster images above 100 KiB that have no
// sibling file with the same base name in a modern format. Warnings only:
// a run may still pass with unoptimized images.
type AssetOptimization struct{}

func (*AssetOptimization) ID() string { return "asset-optimization" }

func (c *AssetOptimization) Run(inv *inventory.Inventory, _ *budget.Budgets) []Violation {
	var vs []Violation
	for _, a := range sortedByPath(inv.WithExt(rasterExts...)) {
		if a.Size < assetSizeFloor {
			continue
		}
		if hasModernSibling(inv, a) {
			continue
		}
		vs = append(vs, Violation{
			RuleID: c.ID(),
			Message: fmt.Sprintf("%s is %s with no %s sibling",
				a.RelPath, kib(a.Size), strings.Join(modernExts, "/")),
			Severity: SeverityWarning,
		})
	}
	return vs
}

func hasModernSibling(inv *inventory.Inventory, a inventory.Artifact) bool {
	base := strings.TrimSuffix(a.RelPath, a.Ext)
	for _, ext := range modernExts {
		if _, ok := inv.Lookup(base + ext); ok {
			return true
		}
	}
	return false
}
