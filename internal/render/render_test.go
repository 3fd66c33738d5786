package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/docs"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

func amplyRegistry(t *testing.T) *docs.Registry {
	t.Helper()
	reg, err := docs.NewStaticRegistry(
		docs.Document{ID: "intro", Title: "Welcome to Amply"},
		docs.Document{ID: "donors/how-to-donate", Title: "How to Donate", Description: "Ways to give."},
		docs.Document{ID: "donors/impact-tracking", Title: "Impact Tracking"},
		docs.Document{ID: "donors/tax-benefits", Title: "Tax Benefits", SidebarLabel: "Taxes"},
		docs.Document{ID: "organizations/getting-started", Title: "Getting Started", Slug: "start"},
		docs.Document{ID: "organizations/requirements", Title: "Requirements"},
		docs.Document{ID: "organizations/reporting", Title: "Reporting"},
		docs.Document{ID: "platform/overview", Title: "Platform Overview"},
		docs.Document{ID: "platform/features", Title: "Features"},
		docs.Document{ID: "api/overview", Title: "API Overview", Slug: "/api"},
	)
	require.NoError(t, err)
	return reg
}

func TestBuildRoutes(t *testing.T) {
	reg := amplyRegistry(t)
	rt, err := BuildRoutes("/docs/", nav.Default(), reg)
	require.NoError(t, err)

	p, ok := rt.DocPath("intro")
	require.True(t, ok)
	assert.Equal(t, "/docs/intro", p)

	p, _ = rt.DocPath("organizations/getting-started")
	assert.Equal(t, "/docs/organizations/start", p)
	p, _ = rt.DocPath("api/overview")
	assert.Equal(t, "/docs/api", p)

	intro, ok := rt.Lookup("/docs/intro")
	require.True(t, ok)
	assert.Equal(t, RouteDoc, intro.Kind)
	assert.Equal(t, nav.DocsSidebar, intro.Sidebar)

	for _, path := range []string{
		"/docs/category/for-donors",
		"/docs/category/for-organizations",
		"/docs/category/platform-guide",
		"/docs/category/api-reference",
		"/docs/category/organizations",
		"/docs/category/organizations/compliance",
		"/docs/category/platform",
		"/docs/category/developers",
	} {
		r, ok := rt.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, RouteGeneratedIndex, r.Kind, path)
	}

	assert.Len(t, rt.Routes(), reg.Len()+8)
	routes := rt.Routes()
	for i := 1; i < len(routes); i++ {
		assert.Less(t, routes[i-1].Path, routes[i].Path)
	}

	js, err := rt.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(js), `{"path":"/docs/category/api-reference","kind":"generated-index","sidebar":"docsSidebar","title":"API Reference"}`)
}

func TestBuildRoutes_RootSlug(t *testing.T) {
	reg, err := docs.NewStaticRegistry(
		docs.Document{ID: "intro", Title: "Intro", Slug: "/"},
		docs.Document{ID: "guides/start", Title: "Start", Slug: "//begin/"},
	)
	require.NoError(t, err)

	rt, err := BuildRoutes("/docs", nil, reg)
	require.NoError(t, err)
	p, _ := rt.DocPath("intro")
	assert.Equal(t, "/docs", p)
	_, ok := rt.Lookup("/docs")
	assert.True(t, ok)
	p, _ = rt.DocPath("guides/start")
	assert.Equal(t, "/docs/begin", p)

	rt, err = BuildRoutes("/", nil, reg)
	require.NoError(t, err)
	p, _ = rt.DocPath("intro")
	assert.Equal(t, "/", p)
}

func TestBuildRoutes_Conflicts(t *testing.T) {
	reg, err := docs.NewStaticRegistry(
		docs.Document{ID: "a", Title: "A", Slug: "/same"},
		docs.Document{ID: "b", Title: "B", Slug: "/same"},
	)
	require.NoError(t, err)
	_, err = BuildRoutes("", nil, reg)
	require.ErrorIs(t, err, ErrRouteConflict)

	reg, err = docs.NewStaticRegistry(docs.Document{ID: "intro", Title: "Intro"})
	require.NoError(t, err)
	sidebars, err := nav.NewSidebars(
		nav.Sidebar{Name: "one", Items: []nav.Entry{nav.NewCategory("Guides", nav.Docs("intro"), nav.WithGeneratedIndex("x"))}},
		nav.Sidebar{Name: "two", Items: []nav.Entry{nav.NewCategory("Guides", nav.Docs("intro"), nav.WithGeneratedIndex("y"))}},
	)
	require.NoError(t, err)
	_, err = BuildRoutes("/docs", sidebars, reg)
	require.ErrorIs(t, err, ErrRouteConflict)
}

func donorsSidebar() nav.Sidebar {
	return nav.Sidebar{Name: "docsSidebar", Items: []nav.Entry{
		nav.Doc("intro"),
		nav.NewCategory("For Donors",
			nav.Docs("donors/how-to-donate", "donors/impact-tracking", "donors/tax-benefits"),
			nav.Expanded(),
		),
		nav.NewCategory("API Reference", nav.Docs("api/overview"), nav.WithGeneratedIndex("Technical documentation for developers.")),
	}}
}

func TestSidebar_DonorsScenario(t *testing.T) {
	reg := amplyRegistry(t)
	sb := donorsSidebar()
	rt, err := BuildRoutes("/docs", nil, reg)
	require.NoError(t, err)

	items, err := SidebarModel(sb, reg, rt, "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, Item{Label: "Welcome to Amply", Href: "/docs/intro"}, items[0])

	donors := items[1]
	assert.True(t, donors.Category)
	assert.True(t, donors.Open)
	assert.Empty(t, donors.Href)
	require.Len(t, donors.Items, 3)
	assert.Equal(t, []string{"How to Donate", "Impact Tracking", "Taxes"},
		[]string{donors.Items[0].Label, donors.Items[1].Label, donors.Items[2].Label})

	var buf bytes.Buffer
	require.NoError(t, WriteSidebar(&buf, sb.Name, items))
	out := buf.String()

	introAt := strings.Index(out, `href="/docs/intro"`)
	donorsAt := strings.Index(out, "For Donors")
	require.NotEqual(t, -1, introAt)
	require.Greater(t, donorsAt, introAt)
	prev := donorsAt
	for _, href := range []string{"/docs/donors/how-to-donate", "/docs/donors/impact-tracking", "/docs/donors/tax-benefits"} {
		at := strings.Index(out, `href="`+href+`"`)
		require.Greater(t, at, prev, href)
		prev = at
	}

	// For Donors is expanded, API Reference starts collapsed.
	assert.Equal(t, 1, strings.Count(out, "menu__list-item--collapsed"))
	assert.Less(t, strings.Index(out, "For Donors"), strings.Index(out, "menu__list-item--collapsed"))
	assert.Contains(t, out, `<a class="menu__link menu__link--sublist menu__link--sublist-caret" href="/docs/category/api-reference" aria-expanded="false">API Reference</a>`)
	assert.Contains(t, out, `<button class="menu__link menu__link--sublist menu__link--sublist-caret" type="button" aria-expanded="true">For Donors</button>`)
}

func TestSidebar_ActiveDocOpensAncestors(t *testing.T) {
	reg := amplyRegistry(t)
	rt, err := BuildRoutes("/docs", nil, reg)
	require.NoError(t, err)

	items, err := SidebarModel(donorsSidebar(), reg, rt, "api/overview")
	require.NoError(t, err)
	api := items[2]
	assert.True(t, api.Open)
	assert.True(t, api.Items[0].Active)

	var buf bytes.Buffer
	require.NoError(t, WriteSidebar(&buf, "docsSidebar", items))
	assert.NotContains(t, buf.String(), "menu__list-item--collapsed")
	assert.Contains(t, buf.String(), `<a class="menu__link menu__link--active" href="/docs/api" aria-current="page">API Overview</a>`)
}

func TestSidebar_DocIndexCategory(t *testing.T) {
	reg := amplyRegistry(t)
	sidebars := nav.Default()
	rt, err := BuildRoutes("/docs", sidebars, reg)
	require.NoError(t, err)
	guide, _ := sidebars.Get(nav.GuideSidebar)

	items, err := SidebarModel(guide, reg, rt, "donors/how-to-donate")
	require.NoError(t, err)
	donors := items[1]
	assert.Equal(t, "/docs/donors/how-to-donate", donors.Href)
	assert.True(t, donors.Active)

	compliance := items[2].Items[1]
	assert.Equal(t, "Compliance", compliance.Label)
	assert.False(t, compliance.Open)
}

func TestSidebar_UnknownDocument(t *testing.T) {
	reg := amplyRegistry(t)
	rt, err := BuildRoutes("/docs", nil, reg)
	require.NoError(t, err)

	_, err = SidebarModel(nav.Sidebar{Name: "s", Items: nav.Docs("ghost")}, reg, rt, "")
	var broken *nav.BrokenReferenceError
	require.ErrorAs(t, err, &broken)
	assert.Equal(t, "s[0]", broken.Loc)
}

func TestIndexPages(t *testing.T) {
	reg := amplyRegistry(t)
	sidebars := nav.Default()
	rt, err := BuildRoutes("/docs", sidebars, reg)
	require.NoError(t, err)

	docsSB, _ := sidebars.Get(nav.DocsSidebar)
	pages, err := IndexPages(docsSB, reg, rt)
	require.NoError(t, err)
	require.Len(t, pages, 4)

	donors := pages[0]
	assert.Equal(t, "/docs/category/for-donors", donors.Path)
	assert.Equal(t, "For Donors", donors.Title)
	assert.Equal(t, "Learn how to make an impact through donations.", donors.Description)
	assert.Equal(t, []Card{
		{Label: "How to Donate", Href: "/docs/donors/how-to-donate", Description: "Ways to give."},
		{Label: "Impact Tracking", Href: "/docs/donors/impact-tracking"},
		{Label: "Tax Benefits", Href: "/docs/donors/tax-benefits"},
	}, donors.Cards)

	guideSB, _ := sidebars.Get(nav.GuideSidebar)
	pages, err = IndexPages(guideSB, reg, rt)
	require.NoError(t, err)
	require.Len(t, pages, 4)
	orgs := pages[0]
	assert.Equal(t, "/docs/category/organizations", orgs.Path)
	assert.Equal(t, Card{Label: "Compliance", Href: "/docs/category/organizations/compliance", Description: "2 items", Category: true}, orgs.Cards[1])

	var buf bytes.Buffer
	require.NoError(t, WriteIndexPage(&buf, donors))
	out := buf.String()
	assert.Contains(t, out, "<h1>For Donors</h1>")
	assert.Contains(t, out, `<p class="generated-index__description">Learn how to make an impact through donations.</p>`)
	assert.Equal(t, 3, strings.Count(out, `class="card padding--lg"`))
}

func TestNewIndexPage_RequiresGeneratedIndex(t *testing.T) {
	reg := amplyRegistry(t)
	rt, err := BuildRoutes("/docs", nil, reg)
	require.NoError(t, err)

	_, err = NewIndexPage(nav.NewCategory("Plain", nav.Docs("intro")), reg, rt)
	assert.Error(t, err)
}
