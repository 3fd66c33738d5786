package site

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path"

	"go.uber.org/multierr"

	"git.home.luguber.info/inful/docsite/internal/assets"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/docs"
	"git.home.luguber.info/inful/docsite/internal/features"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/linkverify"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/render"
)

// Output file names.
const (
	RoutesFile   = "routes.json"
	ManifestFile = "manifest.json"
	FeaturesFile = "features.html"
)

// SidebarFile is the output path of a rendered sidebar.
func SidebarFile(name string) string { return "sidebars/" + name + ".html" }

// IndexFile is the output path of the generated index page served at route.
func IndexFile(route string) string { return path.Join(route, "index.html")[1:] }

// LoadNavigation returns the configured sidebars, or the built-in Amply sidebars
// when none are configured. The sidebars are not validated.
func LoadNavigation(cfg *config.Config) (*nav.Sidebars, error) {
	if cfg.Sidebars == "" {
		return nav.Default(), nil
	}
	p := cfg.Resolve(cfg.Sidebars)
	sidebars, err := nav.LoadSidebars(p)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryNavigation, "failed to load sidebars").
			Fatal().
			UserAction().
			WithContext("path", p).
			Build()
	}
	return sidebars, nil
}

// LoadFeatures returns the configured feature list, or the built-in Amply
// features when none is configured.
func LoadFeatures(cfg *config.Config) ([]features.Descriptor, error) {
	if cfg.Features == "" {
		return features.Default(), nil
	}
	p := cfg.Resolve(cfg.Features)
	descs, err := features.Load(p)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "failed to load features").
			Fatal().
			UserAction().
			WithContext("path", p).
			Build()
	}
	return descs, nil
}

func stageDiscoverDocs(_ context.Context, bs *BuildState) error {
	cfg := bs.Generator.cfg
	reg, err := docs.Discover(cfg.ContentDir(), docs.Options{IncludeDrafts: cfg.Content.IncludeDrafts})
	if err != nil {
		return errors.WrapError(err, errors.CategoryContent, "content discovery failed").
			Fatal().
			UserAction().
			WithContext("dir", cfg.ContentDir()).
			Build()
	}
	bs.Registry = reg
	bs.Report.Documents = reg.Len()
	bs.Report.ContentHash = reg.ComputeHash()
	bs.recorder().SetArtifactCount("documents", reg.Len())
	slog.Info("Discovered documents", logfields.Count(reg.Len()))
	return nil
}

// stageLoadNavigation validates each sidebar and reports every problem found.
func stageLoadNavigation(_ context.Context, bs *BuildState) error {
	sidebars, err := LoadNavigation(bs.Generator.cfg)
	if err != nil {
		return err
	}
	var errs error
	for _, sb := range sidebars.All() {
		verr := nav.Validate(sb, bs.Registry)
		if verr == nil {
			continue
		}
		problems := multierr.Errors(verr)
		bs.recorder().AddNavigationErrors(sb.Name, len(problems))
		for _, p := range problems {
			slog.Error("Invalid navigation", logfields.Sidebar(sb.Name), logfields.Error(p))
		}
		errs = multierr.Append(errs, nav.Classify(sb.Name, verr))
	}
	if errs != nil {
		return errs
	}
	bs.Sidebars = sidebars
	bs.Report.Sidebars = sidebars.Len()
	bs.recorder().SetArtifactCount("sidebars", sidebars.Len())
	return nil
}

func stageBuildRoutes(_ context.Context, bs *BuildState) error {
	routes, err := render.BuildRoutes(bs.Generator.cfg.Site.DocsBasePath, bs.Sidebars, bs.Registry)
	if err != nil {
		return errors.WrapError(err, errors.CategoryNavigation, "failed to build routes").Fatal().UserAction().Build()
	}
	data, err := json.MarshalIndent(routes.Routes(), "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode routes").Build()
	}
	bs.Routes = routes
	bs.Report.Routes = len(routes.Routes())
	bs.recorder().SetArtifactCount("routes", bs.Report.Routes)
	return bs.Artifacts.Add(RoutesFile, data)
}

func stageRenderSidebars(ctx context.Context, bs *BuildState) error {
	base := bs.Generator.cfg.Site.DocsBasePath
	for _, sb := range bs.Sidebars.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		items, err := render.SidebarModel(sb, bs.Registry, bs.Routes, "")
		if err != nil {
			return nav.Classify(sb.Name, err)
		}
		var buf bytes.Buffer
		if err := render.WriteSidebar(&buf, sb.Name, items); err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to render sidebar").
				WithContext("sidebar", sb.Name).
				Build()
		}
		if err := bs.Artifacts.Add(SidebarFile(sb.Name), buf.Bytes()); err != nil {
			return err
		}
		bs.Pages = append(bs.Pages, linkverify.Page{Name: sb.Name, Path: base + "/", HTML: buf.Bytes()})
	}
	return nil
}

func stageRenderIndexes(ctx context.Context, bs *BuildState) error {
	for _, sb := range bs.Sidebars.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		pages, err := render.IndexPages(sb, bs.Registry, bs.Routes)
		if err != nil {
			return nav.Classify(sb.Name, err)
		}
		for _, page := range pages {
			var buf bytes.Buffer
			if err := render.WriteIndexPage(&buf, page); err != nil {
				return errors.WrapError(err, errors.CategoryRender, "failed to render index page").
					WithContext("route", page.Path).
					Build()
			}
			if err := bs.Artifacts.Add(IndexFile(page.Path), buf.Bytes()); err != nil {
				return errors.WrapError(err, errors.CategoryInternal, "index page rendered twice").Build()
			}
			bs.Pages = append(bs.Pages, linkverify.Page{Name: page.Path, Path: page.Path, HTML: buf.Bytes()})
			bs.Report.IndexPages++
		}
	}
	bs.recorder().SetArtifactCount("index_pages", bs.Report.IndexPages)
	return nil
}

func stageRenderFeatures(_ context.Context, bs *BuildState) error {
	cfg := bs.Generator.cfg
	descs, err := LoadFeatures(cfg)
	if err != nil {
		return err
	}
	var icons features.IconResolver = features.ImageResolver{}
	if cfg.Static != "" {
		icons = assets.NewSVGResolver(cfg.Resolve(cfg.Static))
	}
	tiles, err := features.Render(descs, icons)
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return err
		}
		return errors.WrapError(err, errors.CategoryAsset, "failed to render features").Fatal().Build()
	}
	var buf bytes.Buffer
	if err := features.WriteSection(&buf, tiles); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "failed to render features").Build()
	}
	bs.Features = descs
	bs.Report.Features = len(tiles)
	bs.recorder().SetArtifactCount("features", len(tiles))
	bs.Pages = append(bs.Pages, linkverify.Page{Name: FeaturesFile, Path: "/", HTML: buf.Bytes()})
	return bs.Artifacts.Add(FeaturesFile, buf.Bytes())
}

func stageVerifyLinks(_ context.Context, bs *BuildState) error {
	cfg := bs.Generator.cfg
	v := linkverify.Verifier{
		Routes:    bs.Routes,
		BaseURL:   cfg.Site.BaseURL,
		StaticDir: cfg.Resolve(cfg.Static),
	}
	return v.Verify(bs.Pages...)
}

func stageWriteOutput(ctx context.Context, bs *BuildState) error {
	cfg := bs.Generator.cfg
	out := cfg.OutputDir()
	if cfg.Output.Clean {
		if err := cleanDir(out); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to clean output directory").
				WithContext("dir", out).
				Build()
		}
	}

	bs.Report.finish("success")
	manifest, err := bs.Report.MarshalIndent()
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode manifest").Build()
	}
	if err := bs.Artifacts.Add(ManifestFile, manifest); err != nil {
		return err
	}

	for _, rel := range bs.Artifacts.Paths() {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, _ := bs.Artifacts.Get(rel)
		if err := writeFile(out, rel, data); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to write artifact").
				WithContext("file", rel).
				Build()
		}
	}
	slog.Info("Wrote artifacts", logfields.Path(out), logfields.Count(bs.Artifacts.Len()))
	return nil
}
