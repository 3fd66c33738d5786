package linkverify

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Link is a reference found in rendered HTML.
type Link struct {
	URL        string // Raw attribute value
	Text       string // Link text, or alt text for images
	Tag        string // a, img, link
	Attribute  string // href or src
	IsInternal bool
}

// ExtractLinks returns the links of r in document order.
func ExtractLinks(r io.Reader, baseURL string) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to parse HTML").Build()
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid base URL").
			WithContext("base_url", baseURL).
			Build()
	}

	var links []Link
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if l, ok := elementLink(n, base); ok {
				links = append(links, l)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return links, nil
}

func elementLink(n *html.Node, base *url.URL) (Link, bool) {
	var l Link
	switch n.Data {
	case "a":
		l = Link{URL: getAttr(n, "href"), Text: extractText(n), Tag: "a", Attribute: "href"}
	case "img":
		l = Link{URL: getAttr(n, "src"), Text: getAttr(n, "alt"), Tag: "img", Attribute: "src"}
	case "link":
		l = Link{URL: getAttr(n, "href"), Text: getAttr(n, "rel"), Tag: "link", Attribute: "href"}
	default:
		return Link{}, false
	}
	if l.URL == "" {
		return Link{}, false
	}
	l.IsInternal = isInternalLink(l.URL, base)
	return l, true
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}
	return strings.TrimSpace(text.String())
}

// isInternalLink reports whether linkURL points into the site. Anchors and
// special schemes count as internal; they are filtered by ShouldVerifyLink.
func isInternalLink(linkURL string, base *url.URL) bool {
	if hasSpecialScheme(linkURL) || strings.HasPrefix(linkURL, "#") {
		return true
	}
	u, err := url.Parse(linkURL)
	if err != nil {
		return false
	}
	if u.Scheme == "" && u.Host == "" {
		return true
	}
	return base != nil && base.Host != "" && u.Host == base.Host
}

func hasSpecialScheme(linkURL string) bool {
	for _, p := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(linkURL, p) {
			return true
		}
	}
	return false
}

// ShouldVerifyLink reports whether l refers to a page or asset the site must
// provide.
func ShouldVerifyLink(l Link) bool {
	if l.URL == "" || !l.IsInternal {
		return false
	}
	return !strings.HasPrefix(l.URL, "#") && !hasSpecialScheme(l.URL)
}
