package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/sweiss/logdiary/internal/config"
	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/render"
)

// Stdout is the output name that sends an export to the given writer
// instead of a file.
const Stdout = "-"

// Workspace is a loaded document with its config and export state.
type Workspace struct {
	cfg     *config.Config
	session *document.Session
	state   *State
	log     *zap.Logger

	now func() time.Time
}

// Open loads the document and export state named by cfg.
func Open(cfg *config.Config, log *zap.Logger) (*Workspace, error) {
	doc, err := document.Load(cfg.DocumentPath(), log)
	if err != nil {
		return nil, err
	}

	statePath, err := cfg.StatePath()
	if err != nil {
		return nil, err
	}
	state, err := LoadState(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load export state: %w", err)
	}
	state.DocumentPath = cfg.DocumentPath()

	return &Workspace{
		cfg:     cfg,
		session: document.NewSession(doc),
		state:   state,
		log:     log,
		now:     time.Now,
	}, nil
}

// Config returns the workspace config.
func (w *Workspace) Config() *config.Config {
	return w.cfg
}

// Session returns the editing session over the document.
func (w *Workspace) Session() *document.Session {
	return w.session
}

// Document returns the loaded document.
func (w *Workspace) Document() *document.Document {
	return w.session.Document()
}

// Save writes the document back to its file.
func (w *Workspace) Save() error {
	path := w.cfg.DocumentPath()
	if err := w.Document().Save(path); err != nil {
		return err
	}
	w.log.Debug("Document saved", zap.String("path", path), zap.Int("items", len(w.Document().Pages)))
	return nil
}

// Render assembles the document, substituting an open edit draft.
func (w *Workspace) Render(preview bool) string {
	return render.HTML(w.Document(), render.Options{
		Preview: preview,
		Items:   w.session.Items(),
		Now:     w.now,
	})
}

// Export renders the document and writes it to output. A blank output uses
// the configured default; Stdout writes to out. File exports are recorded
// in the export state. It returns where the HTML went.
func (w *Workspace) Export(output string, preview bool, out io.Writer) (string, error) {
	html := w.Render(preview)

	if output == Stdout {
		if _, err := io.WriteString(out, html); err != nil {
			return "", fmt.Errorf("failed to write export: %w", err)
		}
		return Stdout, nil
	}

	if output == "" {
		output = w.cfg.OutputPath(w.Document().CoverTitle)
	}
	output, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(output, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	docHash, err := w.documentHash()
	if err != nil {
		return "", err
	}
	w.state.RecordExport(output, docHash, ContentHash([]byte(html)), len(w.Document().Pages), w.now())
	if err := w.state.Save(); err != nil {
		return "", fmt.Errorf("failed to save export state: %w", err)
	}

	w.log.Info("Exported", zap.String("output", output), zap.Int("bytes", len(html)))
	return output, nil
}

// documentHash hashes the document without item ids. Files written by
// other editors carry no ids, and Load generates fresh ones on every read.
func (w *Workspace) documentHash() (string, error) {
	doc := *w.Document()
	doc.Pages = make([]document.Item, len(doc.Pages))
	for i, it := range w.Document().Pages {
		it.ID = ""
		doc.Pages[i] = it
	}

	data, err := doc.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	return ContentHash(data), nil
}

// Status reports whether output is current. A blank output uses the
// configured default.
func (w *Workspace) Status(output string) (*Status, error) {
	if output == "" {
		output = w.cfg.OutputPath(w.Document().CoverTitle)
	}
	output, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	docHash, err := w.documentHash()
	if err != nil {
		return nil, err
	}

	var outHash string
	data, err := os.ReadFile(output)
	switch {
	case err == nil:
		outHash = ContentHash(data)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	st := &Status{
		Document: w.cfg.DocumentPath(),
		Output:   output,
		Change:   w.state.DetectChange(output, docHash, outHash),
	}
	if es := w.state.Export(output); es != nil {
		st.ExportedAt, _ = time.Parse(time.RFC3339, es.ExportedAt)
	}
	for _, it := range w.Document().Pages {
		if it.IsSection() {
			st.Sections++
		} else {
			st.Pages++
		}
	}
	return st, nil
}

// Status is the export status of a document.
type Status struct {
	Document   string
	Output     string
	Change     ChangeType
	ExportedAt time.Time
	Pages      int
	Sections   int
}

// Summary returns a one-line description of the status.
func (s *Status) Summary() string {
	switch s.Change {
	case ChangeNone:
		return "Export is up to date."
	case ChangeDocument:
		return "Document changed since the last export."
	case ChangeOutput:
		return "Exported file was modified or removed."
	case ChangeBoth:
		return "Document changed and the exported file was modified."
	default:
		return "Document has not been exported yet."
	}
}

// Print writes the status report.
func (s *Status) Print(out io.Writer) {
	fmt.Fprintf(out, "Document: %s (%d pages, %d sections)\n", s.Document, s.Pages, s.Sections)
	fmt.Fprintf(out, "Output:   %s\n", s.Output)
	if !s.ExportedAt.IsZero() {
		fmt.Fprintf(out, "Last export: %s\n", s.ExportedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Summary())
}
