package workspace

import (
	"path/filepath"
	"testing"
	"time"
)

func TestState_NewState(t *testing.T) {
	state := NewState("/tmp/test-state.json")

	if state.Exports == nil {
		t.Error("Exports map should be initialized")
	}
	if state.LastExport != nil {
		t.Error("LastExport should be nil")
	}
}

func TestState_SaveLoad(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "nested", "state.json")

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	state := NewState(statePath)
	state.DocumentPath = "/docs/diary.json"
	state.RecordExport("/out/diary.html", "doc-hash", "html-hash", 3, at)

	if err := state.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := LoadState(statePath)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if loaded.DocumentPath != "/docs/diary.json" {
		t.Errorf("DocumentPath not preserved: %s", loaded.DocumentPath)
	}
	es := loaded.Export("/out/diary.html")
	if es == nil {
		t.Fatal("export record not preserved")
	}
	if es.DocumentHash != "doc-hash" || es.ContentHash != "html-hash" || es.Items != 3 {
		t.Errorf("export record = %+v", es)
	}
	if loaded.LastExport == nil || !loaded.LastExport.Equal(at) {
		t.Errorf("LastExport = %v", loaded.LastExport)
	}
}

func TestState_LoadMissing(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(state.Exports) != 0 {
		t.Error("missing state should be empty")
	}
}

func TestState_DetectChange(t *testing.T) {
	state := NewState("")
	state.RecordExport("out.html", "doc", "html", 1, time.Now())

	tests := []struct {
		name    string
		output  string
		docHash string
		outHash string
		want    ChangeType
	}{
		{"current", "out.html", "doc", "html", ChangeNone},
		{"document edited", "out.html", "doc2", "html", ChangeDocument},
		{"output edited", "out.html", "doc", "other", ChangeOutput},
		{"output removed", "out.html", "doc", "", ChangeOutput},
		{"both", "out.html", "doc2", "other", ChangeBoth},
		{"never exported", "else.html", "doc", "html", ChangeNeverExported},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := state.DetectChange(tc.output, tc.docHash, tc.outHash); got != tc.want {
				t.Errorf("DetectChange() = %s, want %s", got, tc.want)
			}
		})
	}

	state.Forget("out.html")
	if state.Export("out.html") != nil {
		t.Error("Forget should drop the record")
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("hello"))
	if a != ContentHash([]byte("hello")) {
		t.Error("hash should be deterministic")
	}
	if a == ContentHash([]byte("hello!")) {
		t.Error("different content should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}
