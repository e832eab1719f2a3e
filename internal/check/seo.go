package check

// seo.go — Required document markers plus crawler files.
//
// Documents are parsed with a real HTML parser rather than substring
// matching, so markers inside comments or attribute values don't count.

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"siteaudit/internal/budget"
	"siteaudit/internal/inventory"
)

// docMarkers lists the required markers in report order.
var docMarkers = []struct {
	key   string
	label string
}{
	{"title", "title element"},
	{"description", "description meta"},
	{"viewport", "viewport meta"},
	{"og", "Open Graph property"},
	{"ldjson", "structured-data script (application/ld+json)"},
	{"canonical", "canonical link"},
}

// SEOPresence verifies every document carries the required head markers and
// that sitemap and robots files exist at the inventory root.
type SEOPresence struct{}

func (*SEOPresence) ID() string { return "seo-presence" }

func (c *SEOPresence) Run(inv *inventory.Inventory, _ *budget.Budgets) []Violation {
	var vs []Violation

	for _, a := range sortedByPath(inv.WithExt(".html")) {
		data, err := os.ReadFile(inv.Abs(a))
		if err != nil {
			vs = append(vs, Violation{
				RuleID:   c.ID(),
				Message:  fmt.Sprintf("could not read %s: %v (skipped)", a.RelPath, err),
				Severity: SeverityWarning,
			})
			continue
		}
		found, err := scanDocument(data)
		if err != nil {
			vs = append(vs, Violation{
				RuleID:   c.ID(),
				Message:  fmt.Sprintf("could not parse %s: %v (skipped)", a.RelPath, err),
				Severity: SeverityWarning,
			})
			continue
		}
		for _, m := range docMarkers {
			if !found[m.key] {
				vs = append(vs, Violation{
					RuleID:   c.ID(),
					Message:  fmt.Sprintf("%s: missing %s", a.RelPath, m.label),
					Severity: SeverityError,
				})
			}
		}
	}

	if !hasAny(inv, "sitemap.xml", "sitemap-index.xml") {
		vs = append(vs, Violation{
			RuleID:   c.ID(),
			Message:  "no sitemap.xml (or sitemap-index.xml) at the output root",
			Severity: SeverityError,
		})
	}
	if !hasAny(inv, "robots.txt") {
		vs = append(vs, Violation{
			RuleID:   c.ID(),
			Message:  "no robots.txt at the output root",
			Severity: SeverityError,
		})
	}

	return vs
}

func hasAny(inv *inventory.Inventory, paths ...string) bool {
	for _, p := range paths {
		if _, ok := inv.Lookup(p); ok {
			return true
		}
	}
	return false
}

// scanDocument parses an HTML document and reports which markers are present.
func scanDocument(data []byte) (map[string]bool, error) {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool, len(docMarkers))
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if strings.TrimSpace(textContent(n)) != "" {
					found["title"] = true
				}
			case "meta":
				name := strings.ToLower(attr(n, "name"))
				property := strings.ToLower(attr(n, "property"))
				switch {
				case name == "description" && attr(n, "content") != "":
					found["description"] = true
				case name == "viewport":
					found["viewport"] = true
				case strings.HasPrefix(property, "og:"):
					found["og"] = true
				}
			case "script":
				if strings.EqualFold(attr(n, "type"), "application/ld+json") {
					found["ldjson"] = true
				}
			case "link":
				if strings.EqualFold(attr(n, "rel"), "canonical") && attr(n, "href") != "" {
					found["canonical"] = true
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(doc)
	return found, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}
