package deploy

// deploy_test.go — Platform template generation.

import (
	"strings"
	"testing"
)

func TestPlatforms(t *testing.T) {
	want := []string{"cloudflare", "firebase", "github", "netlify", "vercel"}
	got := Platforms()
	if len(got) != len(want) {
		t.Fatalf("Platforms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Platforms() = %v, want %v (sorted)", got, want)
		}
	}
}

func TestGenerateUnknownPlatform(t *testing.T) {
	_, err := Generate("heroku", Site{URL: "https://example.dev"})
	if err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if !strings.Contains(err.Error(), "netlify") {
		t.Errorf("error %q does not list the supported platforms", err)
	}
}

func TestGenerateNetlify(t *testing.T) {
	files, err := Generate("netlify", Site{URL: "https://example.dev", BasePath: "/"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected netlify.toml + _headers, got %v", files)
	}
	byPath := indexFiles(files)
	toml := byPath["netlify.toml"]
	if !strings.Contains(toml, "https://example.dev") {
		t.Errorf("netlify.toml does not interpolate the site URL:\n%s", toml)
	}
	if !strings.Contains(byPath["_headers"], "Cache-Control") {
		t.Error("_headers missing cache directives")
	}
}

func TestGenerateBasePathDefault(t *testing.T) {
	files, err := Generate("vercel", Site{URL: "https://example.dev"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	content := files[0].Content
	if !strings.Contains(content, `"source": "/(.*)"`) {
		t.Errorf("empty base path must default to /:\n%s", content)
	}
}

func TestGenerateGithubCNAME(t *testing.T) {
	tests := []struct {
		url       string
		wantCNAME bool
	}{
		// Custom domain gets a CNAME file.
		{"https://example.dev", true},
		// A github.io URL needs none.
		{"https://someone.github.io", false},
	}
	for _, tc := range tests {
		files, err := Generate("github", Site{URL: tc.url})
		if err != nil {
			t.Fatalf("Generate(%s): %v", tc.url, err)
		}
		byPath := indexFiles(files)
		if _, ok := byPath[".nojekyll"]; !ok {
			t.Errorf("%s: .nojekyll always present", tc.url)
		}
		cname, ok := byPath["CNAME"]
		if ok != tc.wantCNAME {
			t.Errorf("%s: CNAME present = %v, want %v", tc.url, ok, tc.wantCNAME)
			continue
		}
		if tc.wantCNAME && strings.TrimSpace(cname) != "example.dev" {
			t.Errorf("CNAME = %q, want bare host", cname)
		}
	}
}

func TestGenerateCloudflareRedirects(t *testing.T) {
	files, err := Generate("cloudflare", Site{URL: "https://example.dev", BasePath: "/portfolio"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	byPath := indexFiles(files)
	if !strings.Contains(byPath["_redirects"], "/portfolio*") {
		t.Errorf("_redirects does not use the base path: %q", byPath["_redirects"])
	}
}

func TestGenerateFirebase(t *testing.T) {
	files, err := Generate("firebase", Site{URL: "https://example.dev"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(files) != 1 || files[0].Path != "firebase.json" {
		t.Fatalf("expected a single firebase.json, got %v", files)
	}
	if !strings.Contains(files[0].Content, `"hosting"`) {
		t.Error("firebase.json missing hosting block")
	}
}

func indexFiles(files []File) map[string]string {
	m := make(map[string]string, len(files))
	for _, f := range files {
		m[f.Path] = f.Content
	}
	return m
}
