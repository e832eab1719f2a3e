// Package inventory builds an immutable snapshot of a build output directory.
//
// One Artifact per regular file. The walk never visits a path twice, so
// artifact paths are unique. Walk order is not part of the contract;
// consumers sort where order matters.
package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingBuildOutput reports that the audit root does not exist.
// Detectable with errors.Is; the driver turns it into a remediation hint.
var ErrMissingBuildOutput = errors.New("build output directory not found")

// Artifact describes a single file in the build output.
type Artifact struct {
	RelPath string `json:"path"`      // forward-slash, relative to the root
	Size    int64  `json:"sizeBytes"` // size in bytes
	Ext     string `json:"extension"` // lower-case, with leading dot ("" if none)
}

// Inventory is the completed snapshot of one audit run. Fields are never
// mutated after Build returns.
type Inventory struct {
	Root      string
	Artifacts []Artifact
	Warnings  []string // non-fatal walk problems (broken symlinks, stat failures)
}

// Build walks root depth-first and returns one Artifact per regular file.
//
// Symlinks are resolved and treated as regular files; unresolvable links are
// skipped with a warning. Paths matching any exclude pattern (see Match) are
// left out of the inventory. A missing root is fatal and wraps
// ErrMissingBuildOutput.
func Build(root string, excludes []string) (*Inventory, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingBuildOutput, root)
		}
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingBuildOutput, root)
	}

	inv := &Inventory{Root: root}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			inv.Warnings = append(inv.Warnings, fmt.Sprintf("%s: %v (skipped)", path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("rel path %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if matchAny(excludes, rel) {
			return nil
		}

		// Stat through symlinks; a dangling link is a warning, not a failure.
		fi, err := os.Stat(path)
		if err != nil {
			inv.Warnings = append(inv.Warnings, fmt.Sprintf("%s: %v (skipped)", rel, err))
			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		inv.Artifacts = append(inv.Artifacts, Artifact{
			RelPath: rel,
			Size:    fi.Size(),
			Ext:     strings.ToLower(filepath.Ext(rel)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return inv, nil
}

// TotalSize returns the sum of all artifact sizes.
func (inv *Inventory) TotalSize() int64 {
	var total int64
	for _, a := range inv.Artifacts {
		total += a.Size
	}
	return total
}

// WithExt returns all artifacts whose extension matches one of exts
// (lower-case, with dot).
func (inv *Inventory) WithExt(exts ...string) []Artifact {
	var out []Artifact
	for _, a := range inv.Artifacts {
		for _, e := range exts {
			if a.Ext == e {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// Lookup returns the artifact at rel (forward-slash, relative to the root).
func (inv *Inventory) Lookup(rel string) (Artifact, bool) {
	for _, a := range inv.Artifacts {
		if a.RelPath == rel {
			return a, true
		}
	}
	return Artifact{}, false
}

// Abs returns the absolute path of an artifact.
func (inv *Inventory) Abs(a Artifact) string {
	return filepath.Join(inv.Root, filepath.FromSlash(a.RelPath))
}
