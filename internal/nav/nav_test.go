package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

type setRegistry map[string]struct{}

func registryOf(ids ...string) setRegistry {
	r := setRegistry{}
	for _, id := range ids {
		r[id] = struct{}{}
	}
	return r
}

func (r setRegistry) Has(id string) bool {
	_, ok := r[id]
	return ok
}

var amplyDocs = registryOf(
	"intro",
	"donors/how-to-donate", "donors/impact-tracking", "donors/tax-benefits",
	"organizations/getting-started", "organizations/requirements", "organizations/reporting",
	"platform/overview", "platform/features",
	"api/overview",
)

func TestDonorsScenario(t *testing.T) {
	items := []Entry{
		Doc("intro"),
		NewCategory("For Donors",
			Docs("donors/how-to-donate", "donors/impact-tracking", "donors/tax-benefits"),
			Expanded(),
		),
	}

	require.NoError(t, Validate(Sidebar{Name: "docs", Items: items}, amplyDocs))

	require.Len(t, items, 2)
	assert.Equal(t, DocRef{ID: "intro"}, items[0])
	donors, ok := items[1].(Category)
	require.True(t, ok)
	assert.Equal(t, "For Donors", donors.Label)
	assert.True(t, donors.InitiallyOpen())
	assert.Equal(t, []string{"donors/how-to-donate", "donors/impact-tracking", "donors/tax-benefits"}, DocIDs(donors.Items))
}

func TestNewCategoryDefaults(t *testing.T) {
	c := NewCategory("API Reference", Docs("api/overview"), WithGeneratedIndex("Technical documentation for developers."))

	assert.True(t, c.Collapsed)
	assert.True(t, c.Collapsible)
	assert.False(t, c.InitiallyOpen())
	require.NotNil(t, c.Link)
	assert.Equal(t, IndexGenerated, c.Link.Kind)
	assert.Equal(t, "api-reference", c.IndexSlug())

	pinned := NewCategory("Pinned", Docs("a"), NotCollapsible())
	assert.True(t, pinned.InitiallyOpen())

	withDoc := NewCategory("Donors", Docs("b"), WithDocIndex("a"))
	assert.Empty(t, withDoc.IndexSlug())
	assert.Equal(t, "doc", withDoc.Link.Kind.String())

	custom := NewCategory("Org", Docs("a"), WithGeneratedIndex("d"), WithSlug("/organizations/"))
	assert.Equal(t, "organizations", custom.IndexSlug())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		items []Entry
		check func(t *testing.T, errs []error)
		nerrs int
	}{
		{
			name:  "broken leaf",
			items: []Entry{Doc("intro"), Doc("donors/missing")},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var broken *BrokenReferenceError
				require.ErrorAs(t, errs[0], &broken)
				assert.Equal(t, "donors/missing", broken.ID)
				assert.Equal(t, "s[1]", broken.Loc)
			},
		},
		{
			name:  "broken index doc",
			items: []Entry{NewCategory("Donors", Docs("intro"), WithDocIndex("donors/landing"))},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var broken *BrokenReferenceError
				require.ErrorAs(t, errs[0], &broken)
				assert.Equal(t, "donors/landing", broken.ID)
				assert.Equal(t, "s[0].link", broken.Loc)
			},
		},
		{
			name: "duplicate across nesting",
			items: []Entry{
				Doc("intro"),
				NewCategory("Outer", []Entry{NewCategory("Inner", Docs("intro"))}),
			},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var dup *DuplicateReferenceError
				require.ErrorAs(t, errs[0], &dup)
				assert.Equal(t, "intro", dup.ID)
				assert.Equal(t, "s[0]", dup.First)
				assert.Equal(t, "s[1].items[0].items[0]", dup.Second)
			},
		},
		{
			name:  "index doc duplicates a leaf",
			items: []Entry{NewCategory("Donors", Docs("donors/how-to-donate"), WithDocIndex("donors/how-to-donate"))},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var dup *DuplicateReferenceError
				require.ErrorAs(t, errs[0], &dup)
			},
		},
		{
			name: "generated index slug collision",
			items: []Entry{
				NewCategory("For Donors", Docs("intro"), WithGeneratedIndex("a")),
				NewCategory("for donors", Docs("api/overview"), WithGeneratedIndex("b")),
			},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var dup *DuplicateReferenceError
				require.ErrorAs(t, errs[0], &dup)
				assert.Equal(t, "category/for-donors", dup.ID)
			},
		},
		{
			name:  "generated index without usable slug",
			items: []Entry{NewCategory("???", Docs("intro"), WithGeneratedIndex("x"))},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var missing *MissingSlugError
				require.ErrorAs(t, errs[0], &missing)
				assert.Equal(t, "???", missing.Label)
				assert.Equal(t, "s[0].link", missing.Loc)
				assert.Contains(t, missing.Error(), "link.slug")
			},
		},
		{
			name:  "empty category",
			items: []Entry{NewCategory("Empty", nil)},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				var empty *EmptyCategoryError
				require.ErrorAs(t, errs[0], &empty)
				assert.Equal(t, "Empty", empty.Label)
			},
		},
		{
			name:  "nil entry",
			items: []Entry{nil},
			nerrs: 1,
			check: func(t *testing.T, errs []error) {
				assert.ErrorIs(t, errs[0], ErrInvalidEntry)
			},
		},
		{
			name:  "all problems reported together",
			items: []Entry{Doc("nope"), Doc("nope"), NewCategory("Empty", nil)},
			nerrs: 4, // two broken, one duplicate, one empty
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Sidebar{Name: "s", Items: tt.items}, amplyDocs)
			require.Error(t, err)
			errs := multierr.Errors(err)
			require.Len(t, errs, tt.nerrs)
			if tt.check != nil {
				tt.check(t, errs)
			}
		})
	}
}

func TestValidate_ExplicitSlugForSymbolLabel(t *testing.T) {
	c := NewCategory("???", Docs("intro"), WithGeneratedIndex("x"), WithSlug("faq"))
	assert.Equal(t, "faq", c.IndexSlug())
	assert.NoError(t, Validate(Sidebar{Name: "s", Items: []Entry{c}}, amplyDocs))
}

func TestValidate_NilRegistrySkipsExistence(t *testing.T) {
	sb := Sidebar{Name: "s", Items: Docs("anything", "else")}
	assert.NoError(t, Validate(sb, nil))

	sb.Items = Docs("same", "same")
	var dup *DuplicateReferenceError
	assert.ErrorAs(t, Validate(sb, nil), &dup)
}

func TestDefaultSidebarsValidate(t *testing.T) {
	s := Default()

	assert.Equal(t, []string{DocsSidebar, GuideSidebar}, s.Names())
	require.NoError(t, s.Validate(amplyDocs))

	docs, ok := s.Get(DocsSidebar)
	require.True(t, ok)
	assert.Equal(t, []string{
		"intro",
		"donors/how-to-donate", "donors/impact-tracking", "donors/tax-benefits",
		"organizations/getting-started", "organizations/requirements", "organizations/reporting",
		"platform/overview", "platform/features",
		"api/overview",
	}, DocIDs(docs.Items))

	platform := docs.Items[3].(Category)
	assert.Equal(t, "Platform Guide", platform.Label)
	assert.False(t, platform.InitiallyOpen())
	assert.Equal(t, "Learn how to use the Amply platform.", platform.Link.Description)
}

func TestSidebarsValidate_PerSidebarUniqueness(t *testing.T) {
	s, err := NewSidebars(
		Sidebar{Name: "a", Items: Docs("intro")},
		Sidebar{Name: "b", Items: Docs("intro", "ghost")},
	)
	require.NoError(t, err)

	err = s.Validate(amplyDocs)
	errs := multierr.Errors(err)
	require.Len(t, errs, 1)
	var broken *BrokenReferenceError
	require.ErrorAs(t, errs[0], &broken)
	assert.Equal(t, "b", broken.Sidebar)
}

func TestNewSidebars_DuplicateName(t *testing.T) {
	_, err := NewSidebars(Sidebar{Name: "x"}, Sidebar{Name: "x"})
	assert.ErrorIs(t, err, ErrDuplicateSidebar)
}

func TestFind(t *testing.T) {
	guide, _ := Default().Get(GuideSidebar)

	trail, ok := Find(guide.Items, "organizations/reporting")
	require.True(t, ok)
	require.Len(t, trail, 2)
	assert.Equal(t, "Organizations", trail[0].Label)
	assert.Equal(t, "Compliance", trail[1].Label)

	trail, ok = Find(guide.Items, "donors/how-to-donate")
	require.True(t, ok)
	require.Len(t, trail, 1)
	assert.Equal(t, "Donors", trail[0].Label)

	_, ok = Find(guide.Items, "missing")
	assert.False(t, ok)

	sb, ok := Default().SidebarFor("platform/features")
	require.True(t, ok)
	assert.Equal(t, DocsSidebar, sb.Name)
}

func TestWalk_SkipChildren(t *testing.T) {
	items := []Entry{NewCategory("A", Docs("a1", "a2")), Doc("b")}
	var visited []string
	err := Walk("r", items, func(loc string, e Entry) error {
		visited = append(visited, loc)
		if _, ok := e.(Category); ok {
			return ErrSkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"r[0]", "r[1]"}, visited)

	stop := errors.New("stop")
	err = Walk("r", items, func(string, Entry) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify("s", nil))

	err := Classify("docsSidebar", &BrokenReferenceError{Sidebar: "docsSidebar", ID: "x", Loc: "docsSidebar[0]"})
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNavigation))
	var broken *BrokenReferenceError
	assert.ErrorAs(t, err, &broken)
}
