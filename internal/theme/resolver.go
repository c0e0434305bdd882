package theme

import (
	"strconv"
	"strings"
)

// CustomIdentifier selects the live custom colors.
const CustomIdentifier = "custom"

// customThemePrefix selects a saved palette by index, e.g. "customTheme_3".
const customThemePrefix = "customTheme_"

// Colors are the user-edited colors behind the "custom" identifier. A single
// header color drives header, headerText and line.
type Colors struct {
	Bg         string `json:"bg"`
	Text       string `json:"text"`
	Em         string `json:"em"`
	Header     string `json:"header"`
	Quote1Bg   string `json:"quote1Bg"`
	Quote1Text string `json:"quote1Text"`
	Quote2Bg   string `json:"quote2Bg"`
	Quote2Text string `json:"quote2Text"`
	TagText    string `json:"tagText"`
	Divider    string `json:"divider"`
}

// Palette expands the custom colors into a full palette. A missing tag color
// falls back to text; a missing divider falls back to tag color, then text.
func (c Colors) Palette() Palette {
	tag := firstNonEmpty(c.TagText, c.Text)
	return Palette{
		Name:       CustomIdentifier,
		Bg:         c.Bg,
		Text:       c.Text,
		Em:         c.Em,
		Header:     c.Header,
		HeaderText: c.Header,
		Line:       c.Header,
		Quote1Bg:   c.Quote1Bg,
		Quote1Text: c.Quote1Text,
		Quote2Bg:   c.Quote2Bg,
		Quote2Text: c.Quote2Text,
		TagText:    tag,
		Divider:    firstNonEmpty(c.Divider, tag),
	}
}

// Resolver maps theme identifiers to palettes for one document.
type Resolver struct {
	Custom Colors
	Saved  []Palette
}

// Resolve never fails: unknown identifiers resolve to "dark", except "user"
// which resolves to "light".
func (r Resolver) Resolve(id string) Palette {
	if id == CustomIdentifier {
		return r.Custom.Palette()
	}

	if rest, ok := strings.CutPrefix(id, customThemePrefix); ok {
		if idx, err := strconv.Atoi(leadingDigits(rest)); err == nil && idx >= 0 && idx < len(r.Saved) {
			return r.Saved[idx]
		}
	}

	if p, ok := Builtin(id); ok {
		return p
	}

	if id == "user" {
		p, _ := Builtin("light")
		return p
	}
	p, _ := Builtin("dark")
	return p
}

// SavedIdentifier returns the identifier that selects the saved palette at idx.
func SavedIdentifier(idx int) string {
	return customThemePrefix + strconv.Itoa(idx)
}

// leadingDigits keeps the numeric prefix so "2_old" still selects index 2.
func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
