// Package deploy generates static-host configuration files.
//
// Stateless templating: given a platform identifier, a site URL and a base
// path, it emits the platform's fixed config text. No logic beyond string
// interpolation lives here.
package deploy

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Site holds the two values every platform template interpolates.
type Site struct {
	URL      string // canonical site URL, e.g. https://example.dev
	BasePath string // base path the site is served under, "/" for the root
}

// File is one generated config file, path relative to the output directory.
type File struct {
	Path    string
	Content string
}

// generators maps platform identifier to its template function.
var generators = map[string]func(Site) []File{
	"netlify":    netlify,
	"vercel":     vercel,
	"github":     githubPages,
	"firebase":   firebase,
	"cloudflare": cloudflare,
}

// Platforms returns the supported platform identifiers, sorted.
func Platforms() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns the config files for platform. Unknown platforms error,
// naming the supported set.
func Generate(platform string, site Site) ([]File, error) {
	gen, ok := generators[platform]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q (supported: %s)",
			platform, strings.Join(Platforms(), ", "))
	}
	if site.BasePath == "" {
		site.BasePath = "/"
	}
	return gen(site), nil
}

// FromEnv reads SITE_URL and BASE_PATH, loading a .env file first when one
// exists. Missing values stay empty; the caller decides whether to prompt.
func FromEnv() Site {
	_ = godotenv.Load() // no .env file is fine
	return Site{
		URL:      os.Getenv("SITE_URL"),
		BasePath: os.Getenv("BASE_PATH"),
	}
}

// cacheHeaders is shared by the platforms that take a headers file.
const cacheHeaders = `/assets/*
  Cache-Control: public, max-age=31536000, immutable
/*
  X-Content-Type-Options: nosniff
  X-Frame-Options: DENY
  Referrer-Policy: strict-origin-when-cross-origin
`

func netlify(s Site) []File {
	toml := fmt.Sprintf(`[build]
  publish = "dist"

[[redirects]]
  from = "%s*"
  to = "%sindex.html"
  status = 200

# Site: %s
`, s.BasePath, ensureTrailingSlash(s.BasePath), s.URL)
	return []File{
		{Path: "netlify.toml", Content: toml},
		{Path: "_headers", Content: cacheHeaders},
	}
}

func vercel(s Site) []File {
	content := fmt.Sprintf(`{
  "cleanUrls": true,
  "trailingSlash": false,
  "headers": [
    {
      "source": "/assets/(.*)",
      "headers": [
        { "key": "Cache-Control", "value": "public, max-age=31536000, immutable" }
      ]
    }
  ],
  "rewrites": [
    { "source": "%s(.*)", "destination": "%sindex.html" }
  ]
}
`, s.BasePath, ensureTrailingSlash(s.BasePath))
	return []File{{Path: "vercel.json", Content: content}}
}

func githubPages(s Site) []File {
	files := []File{{Path: ".nojekyll", Content: ""}}
	if host := hostOf(s.URL); host != "" && !strings.HasSuffix(host, "github.io") {
		files = append(files, File{Path: "CNAME", Content: host + "\n"})
	}
	return files
}

func firebase(s Site) []File {
	content := fmt.Sprintf(`{
  "hosting": {
    "public": "dist",
    "ignore": ["firebase.json", "**/.*"],
    "cleanUrls": true,
    "rewrites": [
      { "source": "%s**", "destination": "%sindex.html" }
    ]
  }
}
`, s.BasePath, ensureTrailingSlash(s.BasePath))
	return []File{{Path: "firebase.json", Content: content}}
}

func cloudflare(s Site) []File {
	redirects := fmt.Sprintf("%s*  %sindex.html  200\n",
		s.BasePath, ensureTrailingSlash(s.BasePath))
	return []File{
		{Path: "_headers", Content: cacheHeaders},
		{Path: "_redirects", Content: redirects},
	}
}

func ensureTrailingSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// hostOf extracts the host from a URL, "" when unparseable.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
