package workspace

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/markup"
)

// PageStats are the text statistics of one page.
type PageStats struct {
	Index  int    `json:"index"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	markup.Stats
}

// Report holds per-page statistics and their totals. Sections are not
// counted.
type Report struct {
	Pages []PageStats  `json:"pages"`
	Total markup.Stats `json:"total"`
}

// BuildReport counts the content of every page item.
func BuildReport(items []document.Item) Report {
	numbers := document.PageNumbers(items)

	rpt := Report{Pages: []PageStats{}}
	for i, it := range items {
		if it.Page == nil {
			continue
		}
		st := markup.CountText(it.Page.Content)
		rpt.Pages = append(rpt.Pages, PageStats{
			Index:  i,
			Number: numbers[i],
			Title:  it.Page.Title,
			Stats:  st,
		})
		rpt.Total = rpt.Total.Add(st)
	}
	return rpt
}

// Write prints the report with numbers grouped for tag.
func (r Report) Write(w io.Writer, tag language.Tag) {
	p := message.NewPrinter(tag)

	for _, ps := range r.Pages {
		title := ps.Title
		if title == "" {
			title = "(untitled)"
		}
		p.Fprintf(w, "[%d] #%d %s\n", ps.Index, ps.Number, title)
		p.Fprintf(w, "    %d chars (%d with spaces), %d words\n", ps.NoSpace, ps.WithSpace, ps.Words)
	}
	p.Fprintf(w, "\nTotal: %d chars (%d with spaces), %d words in %d pages\n",
		r.Total.NoSpace, r.Total.WithSpace, r.Total.Words, len(r.Pages))
}
