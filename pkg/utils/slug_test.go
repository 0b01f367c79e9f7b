package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"About":            "about",
		"Parañaque City":   "para-aque-city",
		"  Lucena  City  ": "lucena-city",
		"Hello, World!":    "hello-world",
	}

	for input, want := range cases {
		if got := GenerateSlug(input); got != want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", input, got, want)
		}
	}
}
