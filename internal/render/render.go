// Package render composes a document into one self-contained HTML string
// with inline styles only.
package render

import (
	"strings"
	"time"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/markup"
	"github.com/sweiss/logdiary/internal/theme"
)

// Options control a single render.
type Options struct {
	// Preview replaces embedded players with static thumbnails.
	Preview bool
	// Items overrides the document's page list, e.g. with an edit draft
	// substituted. Nil means the document's own list.
	Items []document.Item
	// Now supplies the comment date. Nil means time.Now.
	Now func() time.Time
}

// Renderer renders one document with its resolved global theme.
type Renderer struct {
	doc   *document.Document
	opts  Options
	theme theme.Palette
	text  *markup.Renderer
	font  string
}

// New creates a Renderer for doc.
func New(doc *document.Document, opts Options) *Renderer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Renderer{
		doc:   doc,
		opts:  opts,
		theme: doc.Palette(),
		text:  markup.NewRenderer(doc.MarkupConfig()),
		font:  fontStack(doc.FontFamily),
	}
}

// HTML renders doc in one call.
func HTML(doc *document.Document, opts Options) string {
	return New(doc, opts).Document()
}

// Palette returns the palette the renderer applies.
func (r *Renderer) Palette() theme.Palette {
	return r.theme
}

func (r *Renderer) items() []document.Item {
	if r.opts.Items != nil {
		return r.opts.Items
	}
	return r.doc.Pages
}

// Document renders the whole document: hidden cover image, top region,
// pages and sections, comment and credit line.
func (r *Renderer) Document() string {
	items := r.items()

	var b strings.Builder
	b.WriteString(r.hiddenCover())

	if r.doc.EnableTopSection {
		b.WriteString(r.topRegion())
		if len(items) > 0 {
			b.WriteString("<br>")
		}
	}

	b.WriteString(newAssembler(r, items).run())

	if b.Len() > 0 {
		b.WriteString("<br>")
	}

	if r.doc.EnableComment && strings.TrimSpace(r.doc.CommentText) != "" {
		b.WriteString(r.comment())
	}
	b.WriteString(creditFooter)

	return b.String()
}

var sansSerifFonts = map[string]bool{
	"Pretendard":       true,
	"Noto Sans KR":     true,
	"Nanum Gothic":     true,
	"Gothic A1":        true,
	"Gowun Dodum":      true,
	"IBM Plex Sans KR": true,
}

// fontStack returns the CSS font-family value for font with its generic
// fallback.
func fontStack(font string) string {
	fallback := "serif"
	if sansSerifFonts[font] {
		fallback = "sans-serif"
	}
	return "'" + font + "', " + fallback
}
