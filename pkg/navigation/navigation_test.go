package navigation

import "testing"

func TestHeaderOrderIsFixed(t *testing.T) {
	items := Header()
	if len(items) != 4 {
		t.Fatalf("expected exactly 4 navigation items, got %d", len(items))
	}

	wantLabels := []string{"Home", "About", "Branches", "Contact"}
	wantPaths := []string{"/", "/about", "/branches", "/contact"}
	for i, item := range items {
		if item.Label != wantLabels[i] {
			t.Fatalf("item %d: expected label %q, got %q", i, wantLabels[i], item.Label)
		}
		if item.Path != wantPaths[i] {
			t.Fatalf("item %d: expected path %q, got %q", i, wantPaths[i], item.Path)
		}
	}
}

func TestHeaderItemsCarryAriaLabels(t *testing.T) {
	for _, item := range Header() {
		if item.AriaLabel == "" {
			t.Fatalf("navigation item %q has no aria label", item.Label)
		}
		if item.AriaLabel == item.Label {
			t.Fatalf("navigation item %q reuses its visible label as the aria label", item.Label)
		}
	}
}

func TestHeaderReturnsFreshSlice(t *testing.T) {
	first := Header()
	first[0].Label = "mutated"

	second := Header()
	if second[0].Label != "Home" {
		t.Fatalf("mutating a returned slice leaked into later calls: got %q", second[0].Label)
	}
}
