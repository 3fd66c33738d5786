package linkverify

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/render"
)

// Routes resolves site paths to routes.
type Routes interface {
	Lookup(path string) (render.Route, bool)
}

// Page is one rendered fragment to check.
type Page struct {
	Name string // Sidebar name or output file, used in error reports
	Path string // URL path the fragment is served under, for relative links
	HTML []byte
}

// Verifier checks that internal links in rendered HTML resolve.
type Verifier struct {
	Routes  Routes
	BaseURL string
	// StaticDir holds assets served verbatim. Links with a file extension are
	// checked against it; when empty they are not checked.
	StaticDir string
}

// Verify checks every page and returns one navigation error per unresolved
// link, combined.
func (v Verifier) Verify(pages ...Page) error {
	var errs error
	checked := 0
	for _, p := range pages {
		links, err := ExtractLinks(bytes.NewReader(p.HTML), v.BaseURL)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name, err))
			continue
		}
		for i, l := range links {
			if !ShouldVerifyLink(l) {
				continue
			}
			checked++
			target, ok := v.resolve(p, l)
			if ok {
				continue
			}
			slog.Warn("Unresolved link", logfields.Sidebar(p.Name), logfields.Route(target))
			broken := &nav.BrokenReferenceError{
				Sidebar: p.Name,
				ID:      target,
				Loc:     fmt.Sprintf("%s[%d] %s", l.Tag, i, l.Text),
			}
			errs = multierr.Append(errs, derrors.WrapError(broken, derrors.CategoryNavigation, "unresolved link").
				Fatal().
				UserAction().
				WithContext("page", p.Name).
				WithContext("href", l.URL).
				Build())
		}
	}
	slog.Debug("Verified links", logfields.Count(checked))
	return errs
}

// resolve returns the site path a link points to and whether it exists. The raw
// href is returned when it cannot be parsed into a path.
func (v Verifier) resolve(p Page, l Link) (string, bool) {
	target, ok := v.targetPath(p, l.URL)
	if !ok {
		return l.URL, false
	}
	if _, ok := v.Routes.Lookup(target); ok {
		return target, true
	}
	if path.Ext(target) == "" {
		return target, false
	}
	if v.StaticDir == "" {
		return target, true
	}
	st, err := os.Stat(filepath.Join(v.StaticDir, filepath.FromSlash(strings.TrimPrefix(target, "/"))))
	return target, err == nil && !st.IsDir()
}

// targetPath returns the site path a link points to, resolving relative links
// against the page path.
func (v Verifier) targetPath(p Page, raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Path == "" {
		return "", false
	}
	if !strings.HasPrefix(u.Path, "/") {
		pageURL := &url.URL{Path: p.Path}
		if p.Path == "" {
			pageURL.Path = "/"
		}
		u = pageURL.ResolveReference(&url.URL{Path: u.Path})
	}
	return path.Clean(u.Path), true
}
