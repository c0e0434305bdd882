package render

import (
	"strings"

	"github.com/sweiss/logdiary/internal/markup"
	"github.com/sweiss/logdiary/internal/theme"
)

// Frame describes how Container wraps its content.
type Frame struct {
	// BgImage switches to a background-image card with a translucent panel.
	BgImage string
	// Collapsed renders an accordion with the header as its summary.
	Collapsed bool
	// Header is rendered header HTML, or empty.
	Header string
	// HasTopImage drops the card's top padding for a flush banner.
	HasTopImage bool
}

const (
	cardShadow   = "box-shadow:0 4px 16px rgba(0,0,0,0.1);max-width: 900px; margin: 5px auto; "
	summaryStyle = "cursor: pointer; list-style: none; outline: none; color: inherit; font-weight: normal;"
	arrowStart   = `<div style="width: 100%; display: table;"><div style="display: table-row;"><div style="display: table-cell; vertical-align: middle;">`
)

// Container wraps content in a themed card.
func (r *Renderer) Container(content string, f Frame) string {
	top := "clamp(20px, 4vw, 30px)"
	if f.HasTopImage {
		top = "0"
	}
	card := cardShadow + "border-radius: 1rem; background-color: " + r.theme.Bg + "; padding: " + top + " 0 clamp(20px, 4vw, 30px) 0; font-family: " + r.font + "; font-size: clamp(13px, 2.3vw, 14.2px);"

	if f.BgImage != "" {
		return r.backgroundContainer(content, f)
	}

	if f.Collapsed && f.Header != "" {
		return details(card, r.withArrow(f.Header), content)
	}
	if f.Header != "" {
		return `<div style="` + card + `">` + r.withArrow(f.Header) + content + `</div>`
	}
	return `<div style="` + card + `">` + content + `</div>`
}

// backgroundContainer lays content over the image on a panel made from the
// theme background at 85% opacity. The header sits above the panel.
func (r *Renderer) backgroundContainer(content string, f Frame) string {
	card := cardShadow + "padding: clamp(15px, 3vw, 30px); border-radius: 1rem; background-image: url('" + markup.NormalizeImageURL(f.BgImage) + "'); background-size: cover; background-position: center; font-family: " + r.font + "; font-size: clamp(13px, 2.3vw, 14.2px);"
	panelBg := "background-color: " + theme.HexToRGB(r.theme.Bg).RGBA("0.85") + "; padding: 0; "

	if f.Header == "" {
		return `<div style="` + card + `"><div style="` + panelBg + `border-radius: 8px;">` + content + `</div></div>`
	}

	headerInBg := `<div style="padding: clamp(15px, 3vw, 20px) 0;">` + f.Header + `</div>`
	if f.Collapsed {
		panel := `<div style="` + panelBg + `border-radius: 1rem; margin-top: clamp(15px, 3vw, 20px);">` + content + `</div>`
		return details(card, headerInBg, panel)
	}
	panel := `<div style="` + panelBg + `border-radius: 8px; margin-top: clamp(15px, 3vw, 20px);">` + content + `</div>`
	return `<div style="` + card + `">` + headerInBg + panel + `</div>`
}

// withArrow puts the header in a two-column table with the fold glyph on
// the right.
func (r *Renderer) withArrow(header string) string {
	return arrowStart + header +
		`</div><div style="display: table-cell; vertical-align: middle; width: clamp(50px, 10vw, 70px); text-align: right; padding-right: clamp(30px, 5vw, 50px);"><span style="font-size: clamp(16px, 3vw, 20px); color: ` + r.theme.TagText + `;">⌵</span></div></div></div>`
}

func details(style, summary, body string) string {
	var b strings.Builder
	b.WriteString(`<details style="` + style + `">`)
	b.WriteString(`<summary style="` + summaryStyle + `">`)
	b.WriteString(summary)
	b.WriteString(`</summary>`)
	b.WriteString(body)
	b.WriteString(`</details>`)
	return b.String()
}
