// Package workspace ties a config, its document and the renderer together:
// export, export-state tracking, init and confirmed item removal.
package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// State tracks what was last exported to each output file.
type State struct {
	LastExport   *time.Time             `json:"last_export"`
	DocumentPath string                 `json:"document_path"`
	Exports      map[string]ExportState `json:"exports"`

	filePath string
}

// ExportState is the record of one export.
type ExportState struct {
	DocumentHash string `json:"document_hash"`
	ContentHash  string `json:"content_hash"`
	Items        int    `json:"items"`
	ExportedAt   string `json:"exported_at"`
}

// ChangeType describes how a document and its export differ.
type ChangeType string

const (
	// ChangeNone indicates the export is current.
	ChangeNone ChangeType = "none"
	// ChangeDocument indicates the document was edited after the export.
	ChangeDocument ChangeType = "document_modified"
	// ChangeOutput indicates the exported file was edited or removed.
	ChangeOutput ChangeType = "output_modified"
	// ChangeBoth indicates both sides changed.
	ChangeBoth ChangeType = "both_modified"
	// ChangeNeverExported indicates no export has been recorded.
	ChangeNeverExported ChangeType = "never_exported"
)

// LoadState reads the state file from the given path. A missing file
// yields an empty state.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(path), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	state.filePath = path
	if state.Exports == nil {
		state.Exports = make(map[string]ExportState)
	}

	return state, nil
}

// NewState creates a new empty state.
func NewState(path string) *State {
	return &State{
		Exports:  make(map[string]ExportState),
		filePath: path,
	}
}

// Save writes the state to its file.
func (s *State) Save() error {
	if s.filePath == "" {
		return fmt.Errorf("state file path not set")
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// RecordExport records an export of the document to output.
func (s *State) RecordExport(output, docHash, contentHash string, items int, at time.Time) {
	s.Exports[output] = ExportState{
		DocumentHash: docHash,
		ContentHash:  contentHash,
		Items:        items,
		ExportedAt:   at.Format(time.RFC3339),
	}
	s.LastExport = &at
}

// Export returns the record for output, or nil if it was never exported.
func (s *State) Export(output string) *ExportState {
	if es, exists := s.Exports[output]; exists {
		return &es
	}
	return nil
}

// Forget drops the record for output.
func (s *State) Forget(output string) {
	delete(s.Exports, output)
}

// DetectChange compares the current document hash and the hash of the file
// on disk with the recorded export. An empty outputHash means the file is
// gone.
func (s *State) DetectChange(output, docHash, outputHash string) ChangeType {
	es := s.Export(output)
	if es == nil {
		return ChangeNeverExported
	}

	docChanged := es.DocumentHash != docHash
	outChanged := es.ContentHash != outputHash

	if docChanged && outChanged {
		return ChangeBoth
	}
	if docChanged {
		return ChangeDocument
	}
	if outChanged {
		return ChangeOutput
	}

	return ChangeNone
}

// ContentHash returns the hex SHA-256 of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
