// Package chrome serves the shared page chrome: header navigation with
// active-link resolution and the static footer content.
package chrome

import (
	"strings"
)

// NavLink is one header navigation entry.
type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// navLinks is the canonical header menu, in display order.
var navLinks = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Catalog", Href: "/html/catalog.html"},
	{Label: "About us", Href: "/html/about.html"},
	{Label: "Contact us", Href: "/html/contact.html"},
}

// NormalizePath strips trailing slashes from a path; an empty result is the
// site root.
func NormalizePath(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// Nav returns the header menu with the entry matching the current path
// flagged active. The root matches the home link (including its index.html
// spelling); any other path matches on its final segment.
func Nav(currentPath string) []NavLink {
	current := NormalizePath(currentPath)

	links := make([]NavLink, len(navLinks))
	copy(links, navLinks)
	for i := range links {
		links[i].Active = isActive(current, NormalizePath(links[i].Href))
	}
	return links
}

func isActive(current, path string) bool {
	if current == "/" {
		return path == "/" || strings.HasSuffix(path, "/index.html")
	}
	if path == "/" {
		return false
	}
	segments := strings.Split(path, "/")
	return strings.Contains(current, segments[len(segments)-1])
}
