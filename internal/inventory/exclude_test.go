package inventory

// exclude_test.go — Tests for exclude glob matching.

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// /** matches the prefix dir itself.
		{"pagefind/**", "pagefind", true},
		// /** matches files directly inside.
		{"pagefind/**", "pagefind/pagefind.js", true},
		// /** matches files in subdirectories.
		{"pagefind/**", "pagefind/fragment/en_abc.pf_fragment", true},
		// /** does not match sibling paths.
		{"pagefind/**", "assets/pagefind/x.js", false},
		// /** does not match unrelated paths.
		{"pagefind/**", "index.html", false},
		// Single * matches within one path segment.
		{"*.map", "index.js.map", true},
		{"*.map", "assets/index.js.map", false},
		{"assets/*.map", "assets/index.js.map", true},
		// Exact match.
		{"robots.txt", "robots.txt", true},
		{"robots.txt", "drafts/robots.txt", false},
	}
	for _, tc := range tests {
		got := Match(tc.pattern, tc.path)
		if got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestMatchAny(t *testing.T) {
	patterns := []string{"*.map", "pagefind/**"}
	if !matchAny(patterns, "pagefind/pagefind.js") {
		t.Error("expected pagefind/pagefind.js to match")
	}
	if matchAny(patterns, "index.html") {
		t.Error("did not expect index.html to match")
	}
	if matchAny(nil, "index.html") {
		t.Error("empty pattern list must match nothing")
	}
}
