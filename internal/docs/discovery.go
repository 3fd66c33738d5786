package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/docsite/internal/docs/errors"
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Document is one content page addressable from navigation.
type Document struct {
	ID           string // e.g. "donors/how-to-donate"
	Path         string // Absolute path to the source file
	RelativePath string // Path relative to the content directory, slash separated
	Title        string
	SidebarLabel string
	Slug         string
	Description  string
	ContentHash  string
}

// Label returns the text used for the document in a sidebar.
func (d Document) Label() string {
	if d.SidebarLabel != "" {
		return d.SidebarLabel
	}
	return d.Title
}

// Options controls discovery.
type Options struct {
	// IncludeDrafts keeps documents marked draft: true.
	IncludeDrafts bool
}

// Discover walks dir for Markdown documents and returns a registry of them.
//
// A document's id is its path relative to dir without extension. A frontmatter
// id replaces the last path segment. Files and directories starting with "_" or
// "." are partials or hidden and are skipped.
func Discover(dir string, opts Options) (*Registry, error) {
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", derrors.ErrContentDirNotFound, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrContentWalkFailed, err)
	}

	reg := NewRegistry()
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if p != abs && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdownFile(name) {
			return nil
		}

		doc, draft, err := loadDocument(abs, p)
		if err != nil {
			return err
		}
		if draft && !opts.IncludeDrafts {
			slog.Debug("Skipping draft document", logfields.DocID(doc.ID), logfields.File(doc.RelativePath))
			return nil
		}
		if err := reg.Add(doc); err != nil {
			return err
		}
		slog.Debug("Discovered document", logfields.DocID(doc.ID), logfields.File(doc.RelativePath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrContentWalkFailed, dir, err)
	}

	slog.Info("Content discovery complete", logfields.Path(abs), logfields.Count(reg.Len()))
	return reg, nil
}

func loadDocument(root, p string) (Document, bool, error) {
	content, err := os.ReadFile(filepath.Clean(p))
	if err != nil {
		return Document{}, false, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, p, err)
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return Document{}, false, fmt.Errorf("%w: %w", derrors.ErrContentWalkFailed, err)
	}
	rel = filepath.ToSlash(rel)

	meta, body, err := frontmatter.Parse(content)
	if err != nil {
		return Document{}, false, fmt.Errorf("%w: %s: %w", derrors.ErrFrontmatterInvalid, rel, err)
	}

	stem := strings.TrimSuffix(rel, path.Ext(rel))
	id := stem
	if meta.ID != "" {
		id = path.Join(path.Dir(stem), meta.ID)
	}

	title := meta.Title
	if title == "" {
		title = FirstHeading(body)
	}
	if title == "" {
		title = path.Base(stem)
	}

	return Document{
		ID:           id,
		Path:         p,
		RelativePath: rel,
		Title:        title,
		SidebarLabel: meta.SidebarLabel,
		Slug:         meta.Slug,
		Description:  meta.Description,
		ContentHash:  hashBytes(content),
	}, meta.Draft, nil
}

func isMarkdownFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown":
		return true
	default:
		return false
	}
}
