package render

import (
	"strings"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/markup"
)

// assemblyState is where the assembler stands in the page list.
type assemblyState int

const (
	// stateIdle: pages render as standalone cards.
	stateIdle assemblyState = iota
	// stateInSection: pages accumulate into the open section's card.
	stateInSection
)

func (s assemblyState) String() string {
	if s == stateInSection {
		return "in-section"
	}
	return "idle"
}

const (
	bodyPadding          = "padding: clamp(20px, 4vw, 30px) clamp(30px, 5vw, 50px);"
	collapsedBodyPadding = "padding: clamp(15px, 3vw, 20px) clamp(30px, 5vw, 50px);"
)

// assembler walks the page list. Each transition returns the next state
// and the HTML that leaves the assembler at that step; grouped pages stay
// buffered until their section is flushed.
type assembler struct {
	r     *Renderer
	items []document.Item

	state           assemblyState
	pageNumber      int
	sectionNumber   int
	sectionHasImage bool
	buffer          strings.Builder
}

func newAssembler(r *Renderer, items []document.Item) *assembler {
	return &assembler{r: r, items: items}
}

func (a *assembler) run() string {
	var out strings.Builder
	for i, it := range a.items {
		var emitted string
		switch {
		case it.Section != nil:
			a.state, emitted = a.onSection(i, it.Section)
		case it.Page != nil:
			a.state, emitted = a.onPage(i, it.Page)
		}
		out.WriteString(emitted)
	}
	out.WriteString(a.finish())
	return out.String()
}

func (a *assembler) nextIsPage(i int) bool {
	return i+1 < len(a.items) && !a.items[i+1].IsSection()
}

func (a *assembler) nextIsSection(i int) bool {
	return i+1 < len(a.items) && a.items[i+1].IsSection()
}

// flush closes the open section card and empties the buffer.
func (a *assembler) flush() string {
	card := a.r.sectionCard(a.buffer.String(), a.sectionHasImage)
	a.buffer.Reset()
	return card
}

func (a *assembler) onSection(i int, s *document.Section) (assemblyState, string) {
	var out strings.Builder

	if a.state == stateInSection && a.buffer.Len() > 0 {
		out.WriteString(a.flush())
		out.WriteString("<br>")
	}

	a.pageNumber = 0
	a.sectionNumber++
	a.sectionHasImage = strings.TrimSpace(s.Image) != ""

	next := stateIdle
	if a.nextIsPage(i) {
		next = stateInSection
	}

	block := a.r.sectionBlock(s, next == stateInSection)
	if next == stateInSection {
		a.buffer.WriteString(block)
		return next, out.String()
	}

	out.WriteString(a.r.terminalSectionCard(block))
	if a.nextIsSection(i) {
		out.WriteString("<br>")
	}
	return next, out.String()
}

func (a *assembler) onPage(i int, p *document.Page) (assemblyState, string) {
	a.pageNumber++

	grouped := a.state == stateInSection
	r := a.r

	header := r.Header(HeaderText(a.pageNumber, p.Title, p.Subtitle), Banner{
		Image:  p.HeaderImage,
		FocusX: p.HeaderFocusX.Int(),
		FocusY: p.HeaderFocusY.Int(),
	})
	body := r.text.Render(p.Content, r.theme, markup.Options{ImageWidth: p.ImageWidth.Int()})

	var out strings.Builder
	place := func(html string) {
		if grouped {
			a.buffer.WriteString(html)
		} else {
			out.WriteString(html)
		}
	}
	divide := func() {
		if a.nextIsPage(i) {
			a.buffer.WriteString(r.pageDivider())
		}
	}

	switch {
	case !r.doc.EnablePageFold:
		content := `<div style="` + bodyPadding + `">` + body + `</div>`
		switch {
		case p.BgImage != "":
			place(r.Container(content, Frame{BgImage: p.BgImage}))
		case grouped:
			a.buffer.WriteString(content)
			divide()
		default:
			out.WriteString(r.Container(content, Frame{}))
		}

	case p.Collapsed:
		content := `<div style="` + collapsedBodyPadding + `">` + body + `</div>`
		switch {
		case p.BgImage != "":
			place(r.Container(content, Frame{BgImage: p.BgImage, Collapsed: true, Header: header}))
		case grouped:
			summary := r.withArrow(strings.Replace(header, "vertical-align: center;", "vertical-align: middle;", 1))
			a.buffer.WriteString(details("margin: 0;", summary, content))
			divide()
		default:
			out.WriteString(r.Container(content, Frame{Collapsed: true, Header: header}))
		}

	default:
		content := `<div style="` + bodyPadding + `">` + body + `</div>`
		switch {
		case p.BgImage != "":
			place(r.Container(content, Frame{BgImage: p.BgImage, Header: header}))
		case grouped:
			a.buffer.WriteString(header + content)
			divide()
		default:
			out.WriteString(r.Container(content, Frame{Header: header}))
		}
	}

	if !grouped && i < len(a.items)-1 {
		out.WriteString("<br>")
	}
	return a.state, out.String()
}

// finish flushes a section card left open at the end of the list.
func (a *assembler) finish() string {
	if a.state == stateInSection && a.buffer.Len() > 0 {
		return a.flush()
	}
	return ""
}
