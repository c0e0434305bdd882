package render

import (
	"regexp"
	"strconv"
	"strings"
)

// HeaderText synthesizes the "#N Title - Subtitle" line of a page. Blank
// title and subtitle are left out.
func HeaderText(number int, title, subtitle string) string {
	s := "#" + strconv.Itoa(number)
	if strings.TrimSpace(title) != "" {
		s += " " + title
	}
	if strings.TrimSpace(subtitle) != "" {
		s += " - " + subtitle
	}
	return s
}

type headerParts struct {
	number   string
	title    string
	subtitle string
}

var headerNumber = regexp.MustCompile(`^#(\d+)\s*(.*)`)

// parseHeader splits once on " - " for the subtitle, then reads a leading
// "#digits" as the number.
func parseHeader(text string) headerParts {
	var h headerParts

	head, sub, found := strings.Cut(text, " - ")
	if found {
		h.subtitle = sub
	}

	if m := headerNumber.FindStringSubmatch(head); m != nil {
		h.number = m[1]
		h.title = m[2]
	} else {
		h.title = head
	}
	return h
}

// Banner is an optional image strip under a page header.
type Banner struct {
	Image  string
	FocusX int
	FocusY int
}

func (b Banner) present() bool {
	return strings.TrimSpace(b.Image) != ""
}

// Header renders a page header from its synthesized text.
func (r *Renderer) Header(text string, banner Banner) string {
	h := parseHeader(text)

	numberColor := r.theme.Header
	titleColor := r.theme.Header
	subtitleColor := r.theme.TagText
	if subtitleColor == "" {
		subtitleColor = r.theme.Text
	}
	if banner.present() {
		numberColor = "#ffffff"
		titleColor = "#ffffff"
		subtitleColor = "rgba(255, 255, 255, 0.85)"
	}

	titleStyle := "font-size: clamp(14px, 2.5vw, 16px); font-weight: 700; color: " + titleColor + "; margin-bottom: 4px; font-family: " + r.font + "; line-height: 1.3;"
	subtitleStyle := "font-size: clamp(11px, 2vw, 12px); color: " + subtitleColor + "; font-family: " + r.font + "; line-height: 1.4;"

	hide := r.doc.HidePageNumbers

	var b strings.Builder
	switch {
	case h.number != "" && !hide:
		b.WriteString(`<div style="display: table; width: 100%; padding: clamp(15px, 3vw, 20px) 0; ">`)
		b.WriteString(`<div style="display: table-cell; width: clamp(70px, 15vw, 100px); vertical-align: center; padding-left: clamp(30px, 5vw, 50px);padding-right: clamp(20px, 3vw, 30px);">`)
		b.WriteString(`<div style="font-size: clamp(32px, 7vw, 48px); font-weight: 700; color: ` + numberColor + `; font-family: ` + r.font + `; line-height: 1;">` + h.number + `</div>`)
		b.WriteString(`</div>`)
		b.WriteString(`<div style="display: table-cell; vertical-align: middle; padding-top: 0;">`)
		writeTitles(&b, h, titleStyle, subtitleStyle)
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)

	case hide && (h.title != "" || h.subtitle != ""):
		b.WriteString(`<div style="padding: clamp(15px, 3vw, 20px) clamp(30px, 5vw, 50px);">`)
		writeTitles(&b, h, titleStyle, subtitleStyle)
		b.WriteString(`</div>`)

	case hide && h.number != "":
		b.WriteString(`<div style="padding: clamp(15px, 3vw, 20px) clamp(30px, 5vw, 50px);">`)
		b.WriteString(`<div style="font-size: clamp(14px, 2.5vw, 16px); font-weight: 700; color: ` + titleColor + `; font-family: ` + r.font + `; line-height: 1.3;">Page ` + h.number + `</div>`)
		b.WriteString(`</div>`)

	default:
		lineStyle := "display: inline-block; width: clamp(25px, 5vw, 40px); height: 0px; border-top: 1px solid " + titleColor + "; vertical-align: middle; font-size: 0px; line-height: 0px;"
		b.WriteString(`<div style="text-align: center; font-size: clamp(13px, 2.5vw, 16px); letter-spacing: clamp(2px, 0.5vw, 4px); font-weight: 600; color: ` + titleColor + `; margin-bottom: 0; padding: clamp(15px, 3vw, 20px) 0; line-height: 1; white-space: nowrap;">`)
		b.WriteString(`<span style="` + lineStyle + `">&nbsp;</span>`)
		b.WriteString(`<span style="display: inline-block; margin: 0 clamp(10px, 2vw, 15px); vertical-align: middle;">` + strings.ToUpper(text) + `</span>`)
		b.WriteString(`<span style="` + lineStyle + `">&nbsp;</span>`)
		b.WriteString(`</div>`)
	}

	if banner.present() {
		fx, fy := banner.FocusX, banner.FocusY
		if fx == 0 {
			fx = 50
		}
		if fy == 0 {
			fy = 50
		}
		b.WriteString(`<div style="width: calc(100% + clamp(30px, 6vw, 60px)); margin: 0 -clamp(15px, 3vw, 30px); height: 100px; background: url('` + banner.Image + `') ` + strconv.Itoa(fx) + `% ` + strconv.Itoa(fy) + `% / cover no-repeat; margin-bottom: 20px; margin-top: -20px;"></div>`)
	}

	return b.String()
}

func writeTitles(b *strings.Builder, h headerParts, titleStyle, subtitleStyle string) {
	if h.title != "" {
		b.WriteString(`<div style="` + titleStyle + `">` + h.title + `</div>`)
	}
	if h.subtitle != "" {
		b.WriteString(`<div style="` + subtitleStyle + `">` + h.subtitle + `</div>`)
	}
}
