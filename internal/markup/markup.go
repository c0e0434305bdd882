// Package markup converts the plain-text markup authors write inside pages
// into inline-styled HTML fragments.
//
// Supported constructs:
//
//	[IMG:url] / [IMG:url:N]   centered image, optional width percent N in [30,100]
//	[HR]                      short centered divider
//	[FN:word]note[/FN]        word with a superscript marker, note printed below
//	*text*                    emphasis
//	"…" '…' “…” ‘…’           quote highlighting, nested one level
//
// Feet/inches expressions such as 5'10" are never treated as quotes.
package markup

import (
	"strconv"
	"strings"

	"github.com/sweiss/logdiary/internal/theme"
)

// Spacing controls paragraph typography.
type Spacing struct {
	FontSize         float64 `json:"fontSize"`
	LineHeight       float64 `json:"lineHeight"`
	LetterSpacing    float64 `json:"letterSpacing"`
	ParagraphSpacing float64 `json:"paragraphSpacing"`
	TextIndent       float64 `json:"textIndent"`
}

// DefaultSpacing returns the stock typography values.
func DefaultSpacing() Spacing {
	return Spacing{
		FontSize:         14.2,
		LineHeight:       1.7,
		LetterSpacing:    -0.5,
		ParagraphSpacing: 10,
		TextIndent:       0,
	}
}

// Config holds the document-wide settings that affect every render.
type Config struct {
	Spacing       Spacing
	RoundedQuotes bool
	TextIndent    bool
	Replacements  []Replacement
}

// Options tweak a single render call.
type Options struct {
	// SkipIndent suppresses the first-line indent even when it is enabled.
	SkipIndent bool
	// ReduceSpacing replaces the paragraph gap with a fixed 5px.
	ReduceSpacing bool
	// ImageWidth is the default [IMG:...] width percent; zero means 100.
	ImageWidth int
}

// Renderer renders markup with a fixed document configuration.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a Renderer for the given configuration.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render converts text line by line. Blank lines are dropped, directive lines
// become images or dividers, and every other line becomes one paragraph
// followed by its footnotes.
func (r *Renderer) Render(text string, p theme.Palette, opts Options) string {
	if text == "" {
		return ""
	}

	text = ApplyReplacements(text, r.cfg.Replacements)

	width := opts.ImageWidth
	if width == 0 {
		width = 100
	}

	st := r.styles(p, opts)

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if img, ok := ParseImage(line); ok {
			b.WriteString(img.HTML(width))
			continue
		}

		if strings.TrimSpace(line) == "[HR]" {
			b.WriteString(dividerHTML(p))
			continue
		}

		para := Tokenize(line, LineMode, r.cfg.RoundedQuotes)

		b.WriteString(`<p style="`)
		b.WriteString(st.paragraph)
		b.WriteString(`">`)
		writeSpans(&b, para.Spans, st, false)
		b.WriteString("</p>")

		for _, fn := range para.Notes {
			b.WriteString(`<p style="`)
			b.WriteString(st.note)
			b.WriteString(`"><span style="vertical-align: middle; margin-right: 2px;">`)
			b.WriteString(marker(fn.Marker))
			b.WriteString("</span>")
			writeSpans(&b, fn.Note, st, false)
			b.WriteString("</p>")
		}
	}

	return b.String()
}

// RenderBlock converts a whole block at once: the text is trimmed, line
// breaks become <br> and footnotes are appended as trailing notes.
func (r *Renderer) RenderBlock(text string, p theme.Palette) string {
	if text == "" {
		return ""
	}

	text = ApplyReplacements(text, r.cfg.Replacements)
	para := Tokenize(strings.TrimSpace(text), BlockMode, r.cfg.RoundedQuotes)

	st := r.styles(p, Options{})
	st.blockSup = true

	var b strings.Builder
	writeSpans(&b, para.Spans, st, true)

	for _, fn := range para.Notes {
		b.WriteString(`<div style="font-size: 11px; color: `)
		b.WriteString(p.TagText)
		b.WriteString(`; margin: 0px -50px 10px -50px; padding: 0 50px; line-height: 1.4;"><span style="display: inline-block; vertical-align: middle; margin-right: 6px;">`)
		b.WriteString(marker(fn.Marker))
		b.WriteString("</span>")
		writeSpans(&b, fn.Note, st, false)
		b.WriteString("</div>")
	}

	return b.String()
}

func marker(n int) string {
	return strings.Repeat("*", n)
}

// formatNumber prints a float the way the stylesheet expects: no trailing
// zeros, no exponent.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
