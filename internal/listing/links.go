package listing

import (
	"errors"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks returns the href of every anchor in markup whose path ends with
// one of suffixes, in document order with duplicates dropped.
func ExtractLinks(r io.Reader, suffixes []string) ([]string, error) {
	z := html.NewTokenizer(r)

	var links []string
	seen := make(map[string]bool)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return links, nil
			}
			return links, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}

			for {
				key, val, more := z.TagAttr()
				if string(key) == "href" {
					href := strings.TrimSpace(string(val))
					if !seen[href] && HasSuffix(href, suffixes) {
						seen[href] = true
						links = append(links, href)
					}
				}
				if !more {
					break
				}
			}
		}
	}
}

// HasSuffix reports whether the path part of href ends with any suffix.
// Query strings and fragments are ignored.
func HasSuffix(href string, suffixes []string) bool {
	p := href
	if u, err := url.Parse(href); err == nil {
		p = u.Path
	}

	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(p, s) {
			return true
		}
	}
	return false
}
