package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestParseMigratesLegacyItems(t *testing.T) {
	data := []byte(`{
		"pages": [
			{"title": "Old", "content": "hello"},
			{"itemType": "section", "title": "Part", "zoom": "150"},
			{"itemType": "page", "content": "x", "imageWidth": null, "headerFocusX": "30"}
		]
	}`)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(doc.Pages))
	}

	first := doc.Pages[0]
	if first.Type() != ItemPage {
		t.Errorf("Expected item without itemType to be a page, got %s", first.Type())
	}
	if first.Page.ImageWidth != 100 {
		t.Errorf("Expected default image width 100, got %d", first.Page.ImageWidth)
	}
	if first.ID == "" {
		t.Error("Expected migrated item to get an ID")
	}

	if !doc.Pages[1].IsSection() || doc.Pages[1].Section.Zoom != 150 {
		t.Errorf("Expected section with zoom 150, got %+v", doc.Pages[1].Section)
	}

	third := doc.Pages[2].Page
	if third.ImageWidth != 100 {
		t.Errorf("Expected null image width to become 100, got %d", third.ImageWidth)
	}
	if third.HeaderFocusX != 30 {
		t.Errorf("Expected string focus to parse, got %d", third.HeaderFocusX)
	}
}

func TestParseDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{"tags": [{"name": "Only", "value": "One"}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !doc.EnableTags || !doc.EnablePageFold {
		t.Error("Expected enableTags and enablePageFold to default to true")
	}
	if doc.CoverZoom != 120 || doc.CoverFocusX != 50 || doc.CoverFocusY != 28 {
		t.Errorf("Unexpected cover defaults: %d %d %d", doc.CoverZoom, doc.CoverFocusX, doc.CoverFocusY)
	}
	if doc.CoverArchiveNo != "ARCHIVE NO.001" {
		t.Errorf("Unexpected archive number %q", doc.CoverArchiveNo)
	}
	if doc.FontFamily != DefaultFont || doc.GlobalTheme != DefaultTheme {
		t.Errorf("Unexpected font/theme %q %q", doc.FontFamily, doc.GlobalTheme)
	}
	if doc.TextSpacing.FontSize != 14.2 {
		t.Errorf("Expected default spacing, got %+v", doc.TextSpacing)
	}

	if len(doc.Tags) != 3 {
		t.Fatalf("Expected tags padded to 3, got %d", len(doc.Tags))
	}
	if doc.Tags[0].Name != "Only" || doc.Tags[1].Name != "Model" || doc.Tags[2].Name != "Prompt" {
		t.Errorf("Unexpected padded tags: %+v", doc.Tags)
	}
}

func TestParseExplicitFalseFlags(t *testing.T) {
	doc, err := Parse([]byte(`{"enableTags": false, "enablePageFold": false, "textSpacing": {"fontSize": 16}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.EnableTags || doc.EnablePageFold {
		t.Error("Expected explicit false flags to be kept")
	}
	if doc.TextSpacing.FontSize != 16 || doc.TextSpacing.LineHeight != 1.7 {
		t.Errorf("Expected spacing merged over defaults, got %+v", doc.TextSpacing)
	}
}

func TestParseLegacyProfiles(t *testing.T) {
	doc, err := Parse([]byte(`{"userName": "Me", "charName": "", "userFocusY": 12, "charDesc": "cat"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Profiles) != 2 {
		t.Fatalf("Expected 2 synthesized profiles, got %d", len(doc.Profiles))
	}
	if doc.Profiles[0].Name != "Me" || doc.Profiles[0].FocusY != 12 || doc.Profiles[0].FocusX != 50 {
		t.Errorf("Unexpected user profile: %+v", doc.Profiles[0])
	}
	if doc.Profiles[1].Name != "Char" || doc.Profiles[1].Desc != "cat" || doc.Profiles[1].FocusY != 30 {
		t.Errorf("Unexpected char profile: %+v", doc.Profiles[1])
	}
	if !doc.EnableProfiles {
		t.Error("Expected profiles to be enabled when present")
	}
}

func TestParseLegacyCustomColors(t *testing.T) {
	doc, err := Parse([]byte(`{
		"customColors": {"bg": "#fff", "line": "#123456"},
		"customThemes": [{"name": "Mine", "bg": "#000000", "headerText": "#abcdef"}]
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.CustomColors.Header != "#123456" {
		t.Errorf("Expected header from legacy line color, got %q", doc.CustomColors.Header)
	}
	saved := doc.CustomThemes[0]
	if saved.Header != "#abcdef" || saved.Line != "#abcdef" {
		t.Errorf("Expected saved palette header filled in, got %+v", saved)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	log := zap.NewNop()

	missing, err := Load(filepath.Join(dir, "missing.json"), log)
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if missing.CoverTitle != "Yuzu" {
		t.Errorf("Expected default document, got cover title %q", missing.CoverTitle)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(broken, log)
	if err != nil {
		t.Fatalf("Load of broken file should not fail: %v", err)
	}
	if len(doc.Pages) != 2 || !doc.Pages[0].IsSection() {
		t.Errorf("Expected default document pages, got %d items", len(doc.Pages))
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "diary.json")

	doc := Default()
	doc.Presets = []byte(`[{"slot":1}]`)
	doc.Version = "2.0"
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Pages) != len(doc.Pages) {
		t.Fatalf("Expected %d items, got %d", len(doc.Pages), len(loaded.Pages))
	}
	for i := range doc.Pages {
		if loaded.Pages[i].ID != doc.Pages[i].ID {
			t.Errorf("Item %d: ID changed from %s to %s", i, doc.Pages[i].ID, loaded.Pages[i].ID)
		}
		if loaded.Pages[i].Type() != doc.Pages[i].Type() {
			t.Errorf("Item %d: type changed", i)
		}
	}
	var presets bytes.Buffer
	if err := json.Compact(&presets, loaded.Presets); err != nil {
		t.Fatalf("Presets not preserved as JSON: %v", err)
	}
	if loaded.Version != "2.0" || presets.String() != `[{"slot":1}]` {
		t.Errorf("Expected export envelope preserved, got %q %s", loaded.Version, presets.String())
	}
}

func TestPageNumbers(t *testing.T) {
	items := []Item{
		{Page: &Page{}},
		{Page: &Page{}},
		{Section: &Section{Title: "s"}},
		{Page: &Page{}},
	}
	got := PageNumbers(items)
	want := []int{1, 2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PageNumbers()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in   string
		want FlexInt
	}{
		{`42`, 42},
		{`42.9`, 42},
		{`"77"`, 77},
		{`"  12px"`, 12},
		{`"abc"`, 0},
		{`""`, 0},
		{`-5`, -5},
	}
	for _, tc := range tests {
		var f FlexInt
		if err := f.UnmarshalJSON([]byte(tc.in)); err != nil {
			t.Errorf("UnmarshalJSON(%s) failed: %v", tc.in, err)
			continue
		}
		if f != tc.want {
			t.Errorf("UnmarshalJSON(%s) = %d, want %d", tc.in, f, tc.want)
		}
	}
}
