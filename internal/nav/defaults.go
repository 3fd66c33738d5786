package nav

// Default sidebar names.
const (
	DocsSidebar  = "docsSidebar"
	GuideSidebar = "guideSidebar"
)

// Default returns the Amply documentation sidebars. Each call builds a fresh value.
//
// docsSidebar is the flat, one-level layout. guideSidebar presents the same pages
// with nested groups and an authored landing page for donors.
func Default() *Sidebars {
	s, err := NewSidebars(
		Sidebar{Name: DocsSidebar, Items: docsSidebar()},
		Sidebar{Name: GuideSidebar, Items: guideSidebar()},
	)
	if err != nil {
		// Names above are distinct constants.
		panic(err)
	}
	return s
}

func docsSidebar() []Entry {
	return []Entry{
		Doc("intro"),
		NewCategory("For Donors",
			Docs("donors/how-to-donate", "donors/impact-tracking", "donors/tax-benefits"),
			WithGeneratedIndex("Learn how to make an impact through donations."),
			Expanded(),
		),
		NewCategory("For Organizations",
			Docs("organizations/getting-started", "organizations/requirements", "organizations/reporting"),
			WithGeneratedIndex("Information for non-profit organizations using Amply."),
			Expanded(),
		),
		NewCategory("Platform Guide",
			Docs("platform/overview", "platform/features"),
			WithGeneratedIndex("Learn how to use the Amply platform."),
		),
		NewCategory("API Reference",
			Docs("api/overview"),
			WithGeneratedIndex("Technical documentation for developers."),
		),
	}
}

func guideSidebar() []Entry {
	return []Entry{
		Doc("intro"),
		NewCategory("Donors",
			Docs("donors/impact-tracking", "donors/tax-benefits"),
			WithDocIndex("donors/how-to-donate"),
			Expanded(),
		),
		NewCategory("Organizations",
			[]Entry{
				Doc("organizations/getting-started"),
				NewCategory("Compliance",
					Docs("organizations/requirements", "organizations/reporting"),
					WithGeneratedIndex("Requirements and reporting obligations for listed organizations."),
					WithSlug("organizations/compliance"),
				),
			},
			WithGeneratedIndex("Information for non-profit organizations using Amply."),
			WithSlug("organizations"),
		),
		NewCategory("Platform",
			[]Entry{
				Doc("platform/overview"),
				Doc("platform/features"),
				NewCategory("Developers",
					Docs("api/overview"),
					WithGeneratedIndex("Technical documentation for developers."),
					WithSlug("developers"),
				),
			},
			WithGeneratedIndex("Learn how to use the Amply platform."),
			WithSlug("platform"),
		),
	}
}
