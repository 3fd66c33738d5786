package features

// Default returns the Amply landing page features.
func Default() []Descriptor {
	return []Descriptor{
		{
			Title: "Transparent Giving",
			Icon:  "img/undraw_docusaurus_mountain.svg",
			Description: "Track exactly where your donations go and the impact they create. " +
				"Our transparent reporting ensures every contribution is accounted for.",
		},
		{
			Title: "Verified Organizations",
			Icon:  "img/undraw_docusaurus_tree.svg",
			Description: "All organizations on Amply are thoroughly vetted to ensure legitimacy " +
				"and effectiveness. Give with confidence.",
		},
		{
			Title: "Maximize Your Impact",
			Icon:  "img/undraw_docusaurus_react.svg",
			Description: "Low fees mean more of your donation reaches those in need. " +
				"Join a community of donors making a real difference.",
		},
	}
}
