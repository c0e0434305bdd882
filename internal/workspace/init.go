package workspace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/sweiss/logdiary/internal/config"
	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/theme"
)

// InitOptions control RunInit.
type InitOptions struct {
	ConfigPath   string
	DocumentPath string
	Interactive  bool
	In           io.Reader
	Out          io.Writer
}

// RunInit writes a new config and, unless the document already exists, the
// default document.
func RunInit(opts InitOptions, log *zap.Logger) (*config.Config, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.FileName
	}
	if fileExists(opts.ConfigPath) {
		return nil, fmt.Errorf("config '%s' already exists. Edit it or remove it first", opts.ConfigPath)
	}

	cfg := config.Default()
	cfg.SetPath(opts.ConfigPath)
	if opts.DocumentPath != "" {
		cfg.Document = relativeTo(filepath.Dir(opts.ConfigPath), opts.DocumentPath)
	}

	docPath := cfg.DocumentPath()
	var doc *document.Document
	if fileExists(docPath) {
		fmt.Fprintf(opts.Out, "Using existing document %s\n", docPath)
		loaded, err := document.Load(docPath, log)
		if err != nil {
			return nil, err
		}
		doc = loaded
	} else {
		doc = document.Default()
		if opts.Interactive {
			promptDocument(doc, opts.In, opts.Out)
		}
		if err := doc.Save(docPath); err != nil {
			return nil, err
		}
		fmt.Fprintf(opts.Out, "Created document %s\n", docPath)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(opts.Out, "\nWorkspace config written to %s.\n", opts.ConfigPath)
	fmt.Fprintf(opts.Out, "Theme: %s, %d item(s).\n", doc.GlobalTheme, len(doc.Pages))
	fmt.Fprintln(opts.Out, "\nTo export, run: logdiary render")

	return cfg, nil
}

// promptDocument asks for the cover title and global theme of a new
// document.
func promptDocument(doc *document.Document, in io.Reader, out io.Writer) {
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "Cover title [%s]: ", doc.CoverTitle)
	if input, err := reader.ReadString('\n'); err == nil || input != "" {
		if title := strings.TrimSpace(input); title != "" {
			doc.CoverTitle = title
		}
	}

	names := theme.BuiltinNames()
	fmt.Fprintln(out, "\nThemes:")
	for i, name := range names {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, name)
	}

	for {
		fmt.Fprintf(out, "\nTheme [%s]: ", doc.GlobalTheme)
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return
		}

		var num int
		if _, scanErr := fmt.Sscanf(input, "%d", &num); scanErr == nil && num >= 1 && num <= len(names) {
			doc.GlobalTheme = names[num-1]
			return
		}
		if slices.Contains(names, input) {
			doc.GlobalTheme = input
			return
		}
		if err != nil {
			return
		}
		fmt.Fprintf(out, "Invalid theme. Enter 1-%d or a theme name.\n", len(names))
	}
}

// relativeTo expresses path relative to dir when it lies inside it.
func relativeTo(dir, path string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return path
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return rel
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
