// Package budget holds the size ceilings an audit run checks against.
//
// Defaults apply when no config file exists; a siteaudit.yaml next to the
// project may raise or lower any ceiling and add exclude globs.
package budget

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Budget categories.
const (
	ScriptInitial = "script-initial" // sum of all script files
	ScriptAsync   = "script-async"   // single non-entry chunk
	StyleTotal    = "style-total"    // sum of all stylesheets
	ImagePerPage  = "image-per-page" // single raster image
	PageTotal     = "page-total"     // site-wide, all artifact classes
)

// Budgets maps category name to a byte ceiling, plus the exclude globs that
// keep paths out of the inventory. Loaded once at startup, read-only after.
type Budgets struct {
	Ceilings map[string]int64
	Excludes []string
}

// Default returns the built-in budget table.
func Default() *Budgets {
	return &Budgets{
		Ceilings: map[string]int64{
			ScriptInitial: 100 * 1024,
			ScriptAsync:   50 * 1024,
			StyleTotal:    50 * 1024,
			ImagePerPage:  500 * 1024,
			PageTotal:     1024 * 1024,
		},
	}
}

// For returns the ceiling for category. 0 means unbudgeted: no check fires.
func (b *Budgets) For(category string) int64 {
	return b.Ceilings[category]
}

// configFile is the YAML shape of siteaudit.yaml. Budget values may be bare
// integers or suffixed strings, so they decode loosely.
type configFile struct {
	Budgets map[string]any `yaml:"budgets"`
	Exclude []string       `yaml:"exclude"`
}

// Load reads a config file and overlays it on Default. A missing file is not
// an error: the defaults apply unchanged.
func Load(path string) (*Budgets, error) {
	b := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for category, raw := range cfg.Budgets {
		n, err := ParseSize(fmt.Sprintf("%v", raw))
		if err != nil {
			return nil, fmt.Errorf("%s: budget %q: %w", path, category, err)
		}
		b.Ceilings[category] = n
	}
	b.Excludes = append(b.Excludes, cfg.Exclude...)
	return b, nil
}

// ParseSize parses a byte count. Accepts a plain integer (bytes) or an
// integer with a KB/KiB/MB/MiB suffix; both suffix families are binary
// (1 KB = 1024 bytes), matching how the ceilings are stated.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	mult := int64(1)
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "KIB"):
		mult, s = 1024, s[:len(s)-3]
	case strings.HasSuffix(upper, "MIB"):
		mult, s = 1024*1024, s[:len(s)-3]
	case strings.HasSuffix(upper, "KB"):
		mult, s = 1024, s[:len(s)-2]
	case strings.HasSuffix(upper, "MB"):
		mult, s = 1024*1024, s[:len(s)-2]
	case strings.HasSuffix(upper, "B"):
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	return n * mult, nil
}

// defaultConfig is the commented config written by `siteaudit init`.
const defaultConfig = `# siteaudit budgets. Sizes accept plain bytes or KB/MB suffixes (binary).
budgets:
  script-initial: 100KB
  script-async: 50KB
  style-total: 50KB
  image-per-page: 500KB
  page-total: 1MB

# Glob patterns excluded from the audit. "dir/**" covers everything beneath
# dir; other patterns use path-match semantics (* does not cross /).
exclude: []
`

// WriteDefault writes the default config to path. Errors if the file already
// exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
