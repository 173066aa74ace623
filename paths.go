package main

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ResolveOutputPath maps a source URL to its markdown output path under
// contentRoot. Pure: no I/O, no normalization of case or unicode — catalogs
// are expected to contain path-safe URLs, and within one run the mapping is
// injective over the catalog's URL set.
//
//	https://example.com/blog/       -> content/blog/index.md
//	https://example.com/blog/post-a -> content/blog/post-a.md
func ResolveOutputPath(contentRoot, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("resolving output path for %s: %w", rawURL, err)
	}

	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}
	p = strings.TrimPrefix(p, "/")

	return path.Join(contentRoot, p) + ".md", nil
}
