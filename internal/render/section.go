package render

import (
	"strconv"
	"strings"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/markup"
)

// sectionBlock renders a section's banner or title block. grouped is true
// when pages follow and the block opens a section card.
func (r *Renderer) sectionBlock(s *document.Section, grouped bool) string {
	align := s.Align
	if align == "" {
		align = "center"
	}

	var b strings.Builder

	if strings.TrimSpace(s.Image) == "" {
		b.WriteString(`<div style="width: 100%; padding: clamp(15px, 3vw, 20px) clamp(30px, 5vw, 40px); text-align: ` + align + `;">`)
		if strings.TrimSpace(s.Subtitle) != "" {
			b.WriteString(`<div style="font-size: clamp(10px, 1.8vw, 11px); color: ` + r.theme.TagText + `; letter-spacing: clamp(1.5px, 0.3vw, 2px); margin-bottom: clamp(8px, 1.5vw, 10px); text-transform: uppercase;">` + s.Subtitle + `</div>`)
		}
		if s.Title != "" {
			b.WriteString(`<div style="font-size: clamp(16px, 3vw, 20px); font-weight: 700; color: ` + r.theme.Header + `; letter-spacing: clamp(0.5px, 0.2vw, 1px);">` + s.Title + `</div>`)
		}
		b.WriteString(`</div>`)
		return b.String()
	}

	radius := "border-radius:10px;"
	margin := ""
	if grouped {
		radius = "border-radius:10px 10px 0 0;"
		margin = "margin-bottom:20px;"
	}

	zoom := strconv.Itoa(s.Zoom.Or(100))
	fx := strconv.Itoa(s.FocusX.Or(50))
	fy := strconv.Itoa(s.FocusY.Or(50))

	b.WriteString(`<div style="width:100%;height:15vh;display:table;background-color:#1a1a1a;background-image:url('` + markup.NormalizeImageURL(s.Image) + `');background-size:` + zoom + `% auto;background-position:` + fx + `% ` + fy + `%;background-repeat:no-repeat;` + radius + margin + `">`)
	b.WriteString(`<div style="display:table-cell;vertical-align:middle;width:100%;height:15vh;padding:clamp(15px, 3vw, 20px) clamp(30px, 5vw, 40px);box-sizing:border-box;background:linear-gradient(to top, rgba(0,0,0,0.9) 0%, rgba(0,0,0,0.6) 30%, transparent 60%);` + radius + `text-align:` + align + `;">`)
	if strings.TrimSpace(s.Subtitle) != "" {
		b.WriteString(`<div style="font-size:clamp(10px, 1.8vw, 11px);line-height:1.3;letter-spacing:clamp(1.5px, 0.3vw, 2px);color:rgba(255, 255, 255, 0.7);margin:0 0 clamp(6px, 1.2vw, 8px) 0;font-family:` + r.font + `;text-transform:uppercase;text-shadow:0 1px 3px rgba(0,0,0,0.8);">` + s.Subtitle + `</div>`)
	}
	if s.Title != "" {
		b.WriteString(`<h1 style="font-size:clamp(20px, 4vw, 28px);color:rgba(255, 255, 255, 1.0);margin:0;font-family:` + r.font + `;font-weight:700;line-height:1.2;text-shadow:0 4px 15px rgba(0,0,0,0.6);">` + s.Title + `</h1>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// sectionCard wraps a section's accumulated pages. A section with a banner
// gets no top padding so the banner sits flush with the card edge.
func (r *Renderer) sectionCard(content string, hasImage bool) string {
	top := "clamp(20px, 4vw, 30px)"
	if hasImage {
		top = "0"
	}
	return `<div style="` + cardShadow + `border-radius: 1rem; background-color: ` + r.theme.Bg + `; padding: ` + top + ` 0 clamp(20px, 4vw, 30px) 0; font-family: ` + r.font + `; font-size: clamp(13px, 2.2vw, 14.2px);">` + content + `</div>`
}

// terminalSectionCard wraps a section that has no pages of its own.
func (r *Renderer) terminalSectionCard(content string) string {
	return `<div style="` + cardShadow + `border-radius: 10px; background-color: ` + r.theme.Bg + `; padding: 0; font-family: ` + r.font + `;">` + content + `</div>`
}

// pageDivider separates consecutive pages inside a section card.
func (r *Renderer) pageDivider() string {
	color := r.theme.Divider
	if color == "" {
		color = r.theme.TagText
	}
	if color == "" {
		color = "rgba(0,0,0,0.1)"
	}
	return `<div style="height: 1px; background-color: ` + color + `; margin: clamp(10px, 2vw, 15px) clamp(30px, 5vw, 50px);"></div>`
}
