package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"recipe-chatbot/internal/infrastructure/config"
)

const yamlCatalog = `
recipes:
  - id: 12
    title: Phở Bò
    description: Phở bò Hà Nội
    prepTime: 30
    cookTime: 180
    difficulty: medium
  - id: 7
    title: Bún Chả
    difficulty: EASY
  - id: 3
    title: Gỏi Cuốn
    difficulty: legendary
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileProviderYAML(t *testing.T) {
	p := NewFileProvider(writeFile(t, "recipes.yaml", yamlCatalog))

	recipes, err := p.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(recipes) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(recipes))
	}

	pho := recipes[0]
	if pho.ID != 12 || pho.Title != "Phở Bò" {
		t.Fatalf("unexpected first recipe: %+v", pho)
	}
	if pho.PrepTime == nil || *pho.PrepTime != 30 || pho.CookTime == nil || *pho.CookTime != 180 {
		t.Fatalf("times not parsed: %+v", pho)
	}
	if pho.Difficulty == nil || *pho.Difficulty != DifficultyMedium {
		t.Fatalf("difficulty not normalized: %v", pho.Difficulty)
	}
	if recipes[1].Description != nil {
		t.Fatal("missing description should stay nil")
	}
	if recipes[1].Difficulty == nil || *recipes[1].Difficulty != DifficultyEasy {
		t.Fatalf("difficulty not normalized: %v", recipes[1].Difficulty)
	}
	if recipes[2].Difficulty != nil {
		t.Fatalf("unknown difficulty should be dropped, got %v", *recipes[2].Difficulty)
	}
}

func TestFileProviderJSON(t *testing.T) {
	p := NewFileProvider(writeFile(t, "recipes.json",
		`{"recipes":[{"id":1,"title":"Cơm Tấm","prepTime":15,"difficulty":"Hard"}]}`))

	recipes, err := p.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Title != "Cơm Tấm" {
		t.Fatalf("unexpected recipes: %+v", recipes)
	}
	if *recipes[0].Difficulty != DifficultyHard {
		t.Fatalf("difficulty = %v", *recipes[0].Difficulty)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := p.All(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileProviderRereadsOnEveryCall(t *testing.T) {
	path := writeFile(t, "recipes.yaml", "recipes:\n  - id: 1\n    title: Phở Gà\n")
	p := NewFileProvider(path)

	first, err := p.All(context.Background())
	if err != nil || len(first) != 1 {
		t.Fatalf("first read: %v %v", first, err)
	}

	if err := os.WriteFile(path, []byte("recipes:\n  - id: 1\n    title: Phở Gà\n  - id: 2\n    title: Bánh Mì\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := p.All(context.Background())
	if err != nil || len(second) != 2 {
		t.Fatalf("second read should see the new recipe: %v %v", second, err)
	}
}

func TestMemoryProviderReturnsCopy(t *testing.T) {
	p := NewMemoryProvider([]Recipe{{ID: 1, Title: "Phở Bò"}})

	got, _ := p.All(context.Background())
	got[0].Title = "changed"

	again, _ := p.All(context.Background())
	if again[0].Title != "Phở Bò" {
		t.Fatalf("provider data was mutated: %q", again[0].Title)
	}
}

func TestDecodeRows(t *testing.T) {
	rows, err := encodeRows([]Recipe{
		{ID: 5, Title: "Chả Giò", PrepTime: IntPtr(20), Difficulty: DifficultyPtr(DifficultyMedium)},
	})
	if err != nil {
		t.Fatalf("encodeRows: %v", err)
	}

	strs := make([]string, len(rows))
	for i, r := range rows {
		strs[i] = r.(string)
	}
	strs = append(strs, `{"id":6,"title":"Bánh Xèo","difficulty":"easy"}`)

	recipes, err := decodeRows(strs)
	if err != nil {
		t.Fatalf("decodeRows: %v", err)
	}
	if len(recipes) != 2 || recipes[0].ID != 5 || *recipes[0].PrepTime != 20 {
		t.Fatalf("unexpected recipes: %+v", recipes)
	}
	if *recipes[1].Difficulty != DifficultyEasy {
		t.Fatalf("difficulty = %v", *recipes[1].Difficulty)
	}

	if _, err := decodeRows([]string{"not json"}); err == nil {
		t.Fatal("expected error for malformed row")
	}
}

func TestOpen(t *testing.T) {
	path := writeFile(t, "recipes.yaml", yamlCatalog)

	file, closeFn, err := Open(context.Background(), config.CatalogConfig{Source: config.CatalogSourceFile, Path: path})
	if err != nil {
		t.Fatalf("Open file: %v", err)
	}
	defer closeFn()
	if _, ok := file.(*FileProvider); !ok {
		t.Errorf("file source returned %T", file)
	}

	mem, _, err := Open(context.Background(), config.CatalogConfig{Source: config.CatalogSourceMemory, Path: path})
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	recipes, err := mem.All(context.Background())
	if err != nil || len(recipes) != 3 {
		t.Fatalf("memory recipes = %v, err = %v", recipes, err)
	}

	if _, _, err := Open(context.Background(), config.CatalogConfig{Source: "postgres"}); err == nil {
		t.Error("expected error for unknown source")
	}
}
