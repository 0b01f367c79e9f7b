package navigation

// Item represents a navigation link rendered in the shared header. AriaLabel
// carries the machine-readable label exposed to assistive technology; it is
// kept separate from the visible Label so the two can diverge in wording
// while staying consistent in meaning.
type Item struct {
	Label     string
	Path      string
	AriaLabel string
}

// Header returns the site's fixed navigation. The order is part of the
// contract: Home, About, Branches, Contact. Renderers must not reorder or
// filter the slice.
func Header() []Item {
	return []Item{
		{Label: "Home", Path: "/", AriaLabel: "Go to the home page"},
		{Label: "About", Path: "/about", AriaLabel: "Learn about the team"},
		{Label: "Branches", Path: "/branches", AriaLabel: "Browse our branch locations"},
		{Label: "Contact", Path: "/contact", AriaLabel: "Contact the team"},
	}
}
