package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	statsHR       = regexp.MustCompile(`\[HR\]`)
	statsImage    = regexp.MustCompile(`\[IMG:[^\]]*\]`)
	statsFootnote = regexp.MustCompile(`\[FN:[^\]]*\].*?\[/FN\]`)
)

// Stats are character and word counts of a page's readable text.
type Stats struct {
	NoSpace   int `json:"noSpace"`
	WithSpace int `json:"withSpace"`
	Words     int `json:"words"`
}

// CountText counts the text left after removing directives and footnotes.
func CountText(text string) Stats {
	text = statsHR.ReplaceAllString(text, "")
	text = statsImage.ReplaceAllString(text, "")
	text = statsFootnote.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	var s Stats
	s.WithSpace = utf8.RuneCountInString(text)
	for _, r := range text {
		if !unicode.IsSpace(r) {
			s.NoSpace++
		}
	}
	s.Words = len(strings.Fields(text))
	return s
}

// Add returns the element-wise sum of two counts.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		NoSpace:   s.NoSpace + o.NoSpace,
		WithSpace: s.WithSpace + o.WithSpace,
		Words:     s.Words + o.Words,
	}
}
