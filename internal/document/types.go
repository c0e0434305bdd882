// Package document holds the diary data model, its JSON load/save boundary
// and the editing session that mutates it.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sweiss/logdiary/internal/markup"
	"github.com/sweiss/logdiary/internal/theme"
)

// Document is the whole persisted diary: settings, top-of-document fields
// and the ordered page/section list.
type Document struct {
	UseRoundedQuotes bool `json:"useRoundedQuotes"`
	UseTextIndent    bool `json:"useTextIndent"`
	EnableTopSection bool `json:"enableTopSection"`

	EnableCover    bool    `json:"enableCover"`
	CoverImage     string  `json:"coverImage"`
	CoverAutoFit   bool    `json:"coverAutoFit"`
	CoverZoom      FlexInt `json:"coverZoom"`
	CoverFocusX    FlexInt `json:"coverFocusX"`
	CoverFocusY    FlexInt `json:"coverFocusY"`
	CoverArchiveNo string  `json:"coverArchiveNo"`
	CoverTitle     string  `json:"coverTitle"`
	CoverSubtitle  string  `json:"coverSubtitle"`

	EnableProfiles   bool   `json:"enableProfiles"`
	IntroText        string `json:"introText"`
	SummaryText      string `json:"summaryText"`
	SoundtrackURL    string `json:"soundtrackUrl"`
	SoundtrackTitle  string `json:"soundtrackTitle"`
	SoundtrackArtist string `json:"soundtrackArtist"`
	EnableComment    bool   `json:"enableComment"`
	CommentText      string `json:"commentText"`
	CommentNickname  string `json:"commentNickname"`
	EnableTags       bool   `json:"enableTags"`

	CustomColors theme.Colors         `json:"customColors"`
	Pages        []Item               `json:"pages"`
	Tags         []Tag                `json:"tags"`
	Replacements []markup.Replacement `json:"replacements"`
	CustomThemes []theme.Palette      `json:"customThemes"`
	Profiles     []Profile            `json:"profiles"`
	TextSpacing  markup.Spacing       `json:"textSpacing"`
	FontFamily   string               `json:"fontFamily"`
	GlobalTheme  string               `json:"globalTheme"`

	HidePageNumbers bool `json:"hidePageNumbers"`
	EnablePageFold  bool `json:"enablePageFold"`

	// Export envelope fields, kept so a round trip does not drop them.
	ExportDate string          `json:"exportDate,omitempty"`
	Version    string          `json:"version,omitempty"`
	Presets    json.RawMessage `json:"presets,omitempty"`
}

// Palette resolves the document's global theme.
func (d *Document) Palette() theme.Palette {
	return d.Resolver().Resolve(d.GlobalTheme)
}

// Resolver returns a theme resolver bound to this document's custom colors
// and saved palettes.
func (d *Document) Resolver() theme.Resolver {
	return theme.Resolver{Custom: d.CustomColors, Saved: d.CustomThemes}
}

// MarkupConfig returns the markup settings derived from the document.
func (d *Document) MarkupConfig() markup.Config {
	return markup.Config{
		Spacing:       d.TextSpacing,
		RoundedQuotes: d.UseRoundedQuotes,
		TextIndent:    d.UseTextIndent,
		Replacements:  d.Replacements,
	}
}

// ItemType discriminates the entries of Document.Pages.
type ItemType string

const (
	// ItemPage is a content page.
	ItemPage ItemType = "page"
	// ItemSection is a section break.
	ItemSection ItemType = "section"
)

// Item is one entry of the ordered page list. Exactly one of Page and
// Section is set.
type Item struct {
	ID      string
	Page    *Page
	Section *Section
}

// Type returns the item's discriminator.
func (it Item) Type() ItemType {
	if it.Section != nil {
		return ItemSection
	}
	return ItemPage
}

// IsSection returns true if the item is a section break.
func (it Item) IsSection() bool {
	return it.Section != nil
}

// Title returns the display title of either variant.
func (it Item) Title() string {
	if it.Section != nil {
		return it.Section.Title
	}
	if it.Page != nil {
		return it.Page.Title
	}
	return ""
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	c := Item{ID: it.ID}
	if it.Page != nil {
		p := *it.Page
		p.Tags = append(json.RawMessage(nil), it.Page.Tags...)
		c.Page = &p
	}
	if it.Section != nil {
		s := *it.Section
		c.Section = &s
	}
	return c
}

// MarshalJSON flattens the variant into one object with an itemType field.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Section != nil {
		return json.Marshal(struct {
			ID       string   `json:"id,omitempty"`
			ItemType ItemType `json:"itemType"`
			*Section
		}{it.ID, ItemSection, it.Section})
	}

	p := it.Page
	if p == nil {
		p = &Page{}
	}
	return json.Marshal(struct {
		ID       string   `json:"id,omitempty"`
		ItemType ItemType `json:"itemType"`
		*Page
	}{it.ID, ItemPage, p})
}

// UnmarshalJSON reads either variant. Records without itemType are pages,
// and pages without imageWidth get 100.
func (it *Item) UnmarshalJSON(data []byte) error {
	var probe struct {
		ID       string   `json:"id"`
		ItemType ItemType `json:"itemType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	it.ID = probe.ID
	it.Page, it.Section = nil, nil

	if probe.ItemType == ItemSection {
		s := &Section{}
		if err := json.Unmarshal(data, s); err != nil {
			return fmt.Errorf("failed to parse section: %w", err)
		}
		it.Section = s
		return nil
	}

	p := &Page{ImageWidth: 100, HeaderFocusX: 50, HeaderFocusY: 50}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}
	it.Page = p
	return nil
}

// Page is a content unit rendered with a synthesized "#N Title - Subtitle"
// header.
type Page struct {
	// Theme is the theme identifier active when the page was created. The
	// renderer always uses the document's global theme.
	Theme        string  `json:"type,omitempty"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Content      string  `json:"content"`
	ImageWidth   FlexInt `json:"imageWidth"`
	BgImage      string  `json:"bgImage"`
	Collapsed    bool    `json:"collapsed"`
	HeaderImage  string  `json:"headerImage"`
	HeaderFocusX FlexInt `json:"headerFocusX"`
	HeaderFocusY FlexInt `json:"headerFocusY"`

	// Per-page tags are no longer rendered; they are kept as-is.
	UseGlobalTags bool            `json:"useGlobalTags,omitempty"`
	Tags          json.RawMessage `json:"tags,omitempty"`
}

// Section is a document break that resets page numbering and groups the
// following pages into one card.
type Section struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Image    string  `json:"image"`
	Align    string  `json:"align,omitempty"`
	Zoom     FlexInt `json:"zoom,omitempty"`
	FocusX   FlexInt `json:"focusX,omitempty"`
	FocusY   FlexInt `json:"focusY,omitempty"`
}

// Profile is one entry of the cover profile grid.
type Profile struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Zoom     FlexInt `json:"zoom,omitempty"`
	FocusX   FlexInt `json:"focusX"`
	FocusY   FlexInt `json:"focusY"`
	Desc     string  `json:"desc"`
	Tag      string  `json:"tag"`
}

// Profile tags.
const (
	ProfileTagNone = ""
	ProfileTagUser = "USER"
	ProfileTagChar = "CHAR"
)

// Tag is a cover tag. A non-empty Link wraps the value in an anchor.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Link  string `json:"link"`
}

// FlexInt is an integer that also accepts numeric strings and fractional
// numbers in JSON. Strings are read like parseInt: leading digits only,
// anything unparsable is zero. null leaves the value unchanged.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexInt(parseLeadingInt(s))
		return nil
	}

	if len(data) > 0 && (data[0] == 't' || data[0] == 'f') {
		// booleans show up in hand-edited files
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*f = FlexInt(math.Trunc(v))
	return nil
}

// Int returns the value as an int.
func (f FlexInt) Int() int {
	return int(f)
}

// Or returns f, or def when f is zero.
func (f FlexInt) Or(def int) int {
	if f == 0 {
		return def
	}
	return int(f)
}

func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// PageNumbers returns the derived page number of every item: a running
// count of pages since the last section. Sections get zero.
func PageNumbers(items []Item) []int {
	nums := make([]int, len(items))
	n := 0
	for i, it := range items {
		if it.IsSection() {
			n = 0
			continue
		}
		n++
		nums[i] = n
	}
	return nums
}
