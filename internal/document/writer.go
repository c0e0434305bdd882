package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the document to path as indented JSON, creating the parent
// directory if needed.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create document directory: %w", err)
		}
	}

	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Marshal encodes the document as indented JSON.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}
