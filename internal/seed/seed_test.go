package seed

import (
	"io/fs"
	"testing"
)

func TestParseBranchDefinitionsAcceptsArrayAndObject(t *testing.T) {
	array := []byte(`[{"name":"A","description":"a"},{"name":"B","description":"b"}]`)
	definitions, err := parseBranchDefinitions(array)
	if err != nil {
		t.Fatalf("failed to parse array: %v", err)
	}
	if len(definitions) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(definitions))
	}

	object := []byte(`{"name":"C","description":"c","position":5}`)
	definitions, err = parseBranchDefinitions(object)
	if err != nil {
		t.Fatalf("failed to parse object: %v", err)
	}
	if len(definitions) != 1 || definitions[0].Name != "C" {
		t.Fatalf("unexpected definitions: %+v", definitions)
	}
	if definitions[0].Position == nil || *definitions[0].Position != 5 {
		t.Fatalf("expected explicit position 5, got %+v", definitions[0].Position)
	}
}

func TestParseBranchDefinitionsRejectsGarbage(t *testing.T) {
	if _, err := parseBranchDefinitions([]byte(`{"name":`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestEmbeddedBranchDefinitionsAreWellFormed(t *testing.T) {
	data, err := fs.ReadFile(defaultBranchesFS, "data/branches/branches.json")
	if err != nil {
		t.Fatalf("failed to read embedded branch file: %v", err)
	}

	definitions, err := parseBranchDefinitions(data)
	if err != nil {
		t.Fatalf("embedded branch definitions do not parse: %v", err)
	}
	if len(definitions) != 2 {
		t.Fatalf("expected 2 seeded branches, got %d", len(definitions))
	}

	seen := make(map[string]bool)
	for i, def := range definitions {
		if def.Name == "" || def.Description == "" {
			t.Fatalf("definition %d has empty fields: %+v", i, def)
		}
		if seen[def.Name] {
			t.Fatalf("duplicate branch name %q", def.Name)
		}
		seen[def.Name] = true
	}
}

func TestEmbeddedPageDefinitionsCoverAllRoutes(t *testing.T) {
	entries, err := fs.ReadDir(defaultPagesFS, "data/pages")
	if err != nil {
		t.Fatalf("failed to read embedded pages: %v", err)
	}

	paths := make(map[string]bool)
	for _, entry := range entries {
		data, err := fs.ReadFile(defaultPagesFS, "data/pages/"+entry.Name())
		if err != nil {
			t.Fatalf("failed to read %s: %v", entry.Name(), err)
		}
		definitions, err := parsePageDefinitions(data)
		if err != nil {
			t.Fatalf("page definitions in %s do not parse: %v", entry.Name(), err)
		}
		for _, def := range definitions {
			paths[def.Path] = true
		}
	}

	for _, path := range []string{"/", "/about", "/branches", "/contact"} {
		if !paths[path] {
			t.Fatalf("no seeded page for navigation target %s", path)
		}
	}
}
