package files

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/blockpad/blockpad-cli/pkg/models"
)

// setupTestProject runs the test inside an initialized temp project.
func setupTestProject(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	setupTestProject(t)

	if _, err := os.Stat(filepath.Join(BlockpadDir, BlocksDir)); err != nil {
		t.Errorf("blocks directory missing: %v", err)
	}
}

func TestBlockRoundTrip(t *testing.T) {
	setupTestProject(t)

	block := &models.Block{
		Name: "Hero Section",
		Type: "section",
		Attributes: map[string]any{
			"title":   "Welcome",
			"visible": true,
			"items": []models.RepeaterItem{
				{ID: 1, Label: "First", Value: "2024-01-01", Collapsed: true},
				{ID: 2, Label: "Second"},
			},
		},
	}

	if err := WriteBlock(block); err != nil {
		t.Fatalf("WriteBlock: %v", err)
	}
	if block.Path != "hero-section.yaml" {
		t.Errorf("expected derived path hero-section.yaml, got %q", block.Path)
	}

	got, err := ReadBlock(block.Path)
	if err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}
	if got.Name != "Hero Section" || got.Type != "section" {
		t.Errorf("unexpected block header: %+v", got)
	}
	if got.Attributes["title"] != "Welcome" {
		t.Errorf("title attribute lost: %v", got.Attributes["title"])
	}
	if got.Attributes["visible"] != true {
		t.Errorf("visible attribute lost: %v", got.Attributes["visible"])
	}

	// Items come back as generic maps; decoding is the attrs package's job.
	items, ok := got.Attributes["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items attribute lost or mistyped: %T", got.Attributes["items"])
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		t.Fatalf("item entry mistyped: %T", items[0])
	}
	if first["id"] != 1 || first["label"] != "First" || first["collapsed"] != true {
		t.Errorf("unexpected first item: %v", first)
	}
}

func TestListBlocks(t *testing.T) {
	setupTestProject(t)

	for _, name := range []string{"Sidebar", "About", "Hero"} {
		if err := WriteBlock(&models.Block{Name: name, Type: "section"}); err != nil {
			t.Fatalf("WriteBlock(%s): %v", name, err)
		}
	}

	got, err := ListBlocks()
	if err != nil {
		t.Fatalf("ListBlocks: %v", err)
	}
	want := []string{"about.yaml", "hero.yaml", "sidebar.yaml"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListBlocks() = %v, want %v", got, want)
	}
}

func TestListBlocksWithoutProject(t *testing.T) {
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(dir)
	t.Cleanup(func() { os.Chdir(oldWd) })

	got, err := ListBlocks()
	if err != nil {
		t.Fatalf("ListBlocks without project should not error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no blocks, got %v", got)
	}
}

func TestDeleteBlock(t *testing.T) {
	setupTestProject(t)

	block := &models.Block{Name: "Doomed", Type: "section"}
	if err := WriteBlock(block); err != nil {
		t.Fatalf("WriteBlock: %v", err)
	}
	if err := DeleteBlock(block.Path); err != nil {
		t.Fatalf("DeleteBlock: %v", err)
	}
	if _, err := ReadBlock(block.Path); err == nil {
		t.Error("expected read of deleted block to fail")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	setupTestProject(t)

	// Missing file falls back to defaults
	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	if !settings.UI.ShowHelp || settings.UI.AccentColor != "170" {
		t.Errorf("unexpected defaults: %+v", settings.UI)
	}

	settings.UI.AccentColor = "39"
	settings.Editor.DefaultItemLabel = "Row"
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings after write: %v", err)
	}
	if got.UI.AccentColor != "39" || got.Editor.DefaultItemLabel != "Row" {
		t.Errorf("settings not persisted: %+v", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hero Section", "hero-section"},
		{"  spaced  out  ", "spaced-out"},
		{"Weird!@#Chars", "weirdchars"},
		{"", "untitled"},
		{"---", "untitled"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
