package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/markup"
)

const sectionLabelStyle = "display: inline-block; font-size: clamp(11px, 2vw, 13px); font-weight: 600; letter-spacing: clamp(1.5px, 0.3vw, 2px); color: "

// coverURL is the normalized cover image, empty when the cover is off.
func (r *Renderer) coverURL() string {
	if !r.doc.EnableCover {
		return ""
	}
	return markup.NormalizeImageURL(r.doc.CoverImage)
}

// hiddenCover emits a zero-size copy of the cover image first, so hosts
// that pick a thumbnail from the first image pick the cover.
func (r *Renderer) hiddenCover() string {
	src := r.coverURL()
	if src == "" {
		return ""
	}

	original := strings.TrimSpace(r.doc.CoverImage)
	if !markup.NeedsProxy(original) {
		return `<img style="width: 0px; height: 0px;" src="` + html.EscapeString(src) + `" class="fr-fic fr-dii">`
	}
	return `<img style="width: 0px; height: 0px;" src="` + html.EscapeString(src) + `" class="fr-fic fr-dii" data-proxies="` +
		html.EscapeString(strings.Join(markup.ProxyChain(original), "|")) +
		`" data-proxy-index="0" onerror="` + markup.ProxyErrorHandler("img.remove();") + `">`
}

func (r *Renderer) hasCoverContent() bool {
	d := r.doc
	return r.coverURL() != "" || d.CoverArchiveNo != "" || d.CoverTitle != "" || d.CoverSubtitle != ""
}

func (r *Renderer) showProfiles() bool {
	return r.doc.EnableProfiles && len(r.doc.Profiles) > 0
}

// topRegion renders the cover, profiles, intro, summary and soundtrack as
// one card. Nothing is emitted when the cover is off and none of them has
// content.
func (r *Renderer) topRegion() string {
	d := r.doc
	intro := strings.TrimSpace(d.IntroText) != ""
	summary := strings.TrimSpace(d.SummaryText) != ""
	soundtrack := r.soundtrack()

	hasContent := r.showProfiles() || intro || summary || soundtrack != "" ||
		d.CoverArchiveNo != "" || d.CoverTitle != "" || d.CoverSubtitle != ""
	if !d.EnableCover && !hasContent {
		return ""
	}

	var b strings.Builder
	if d.EnableCover && r.hasCoverContent() {
		if r.coverURL() != "" {
			r.writeImageCover(&b)
		} else {
			r.writeTextCover(&b)
		}
	}

	if r.showProfiles() {
		r.writeProfiles(&b)
	}

	if intro {
		top := "10px"
		if !r.hasCoverContent() && !r.showProfiles() {
			top = "30px"
		}
		b.WriteString(`<div style="padding: ` + top + ` clamp(30px, 5vw, 50px) 10px clamp(30px, 5vw, 50px);">`)
		b.WriteString(r.text.Render(d.IntroText, r.theme, markup.Options{SkipIndent: true, ReduceSpacing: true}))
		b.WriteString(`</div>`)
	}

	if summary {
		top := "20px"
		if !r.hasCoverContent() && !r.showProfiles() && !intro {
			top = "30px"
		}
		if !r.showProfiles() {
			b.WriteString(`<div style="padding-top: ` + top + `;"></div>`)
		}
		if intro {
			b.WriteString("<br>")
		}
		b.WriteString(`<div style="padding: 0 clamp(20px, 3vw, 25px) 5px clamp(20px, 3vw, 25px); text-align: center;">`)
		b.WriteString(`<span style="` + sectionLabelStyle + r.theme.HeaderText + `; text-transform: uppercase; border-bottom: 1px solid ` + r.theme.HeaderText + `; padding-bottom: 5px; font-family: ` + r.font + `;">Story So Far</span>`)
		b.WriteString(`</div>`)
		b.WriteString(`<div style="padding: 10px clamp(30px, 5vw, 50px) 10px clamp(30px, 5vw, 50px);">`)
		b.WriteString(r.text.Render(d.SummaryText, r.theme, markup.Options{SkipIndent: true, ReduceSpacing: true}))
		b.WriteString(`</div>`)
	}

	b.WriteString(soundtrack)

	return r.Container(b.String(), Frame{HasTopImage: r.coverURL() != ""})
}

func (r *Renderer) writeImageCover(b *strings.Builder) {
	d := r.doc

	size := strconv.Itoa(d.CoverZoom.Int()) + "% auto"
	if d.CoverAutoFit {
		size = "cover"
	}

	b.WriteString(`<div style="width:100%;margin:0 0 30px 0;box-sizing:border-box;background:transparent;">`)
	b.WriteString(`<div style="width:100%;height:30vh;min-height:300px;display:table;background-color:#1a1a1a;background-image:url('` + r.coverURL() + `');background-size:` + size + `;background-position:` + strconv.Itoa(d.CoverFocusX.Int()) + `% ` + strconv.Itoa(d.CoverFocusY.Int()) + `%;background-repeat:no-repeat;border-radius:10px 10px 0 0;">`)
	b.WriteString(`<div style="display:table-cell;vertical-align:bottom;width:100%;height:30vh;padding:clamp(15px, 3vw, 20px) clamp(30px, 5vw, 40px);box-sizing:border-box;background:linear-gradient(to top, rgba(0,0,0,0.85) 0%, rgba(0,0,0,0.5) 25%, transparent 45%);border-radius:10px 10px 0 0;">`)

	if d.CoverArchiveNo != "" {
		b.WriteString(`<p style="font-size:clamp(10px, 1.8vw, 11px);color:rgba(255, 255, 255, 0.8);letter-spacing:clamp(2px, 0.4vw, 3px);margin:0 0 5px 0;font-family:` + r.font + `;text-shadow:0 2px 4px rgba(0,0,0,0.5);">` + d.CoverArchiveNo + `</p>`)
	}
	if d.CoverTitle != "" {
		margin := "0 0 10px 0"
		if d.CoverSubtitle != "" {
			margin = "0 0 0px 0"
		}
		b.WriteString(`<h1 style="font-size:clamp(32px, 6vw, 52px);color:rgba(255, 255, 255, 1.0);margin:` + margin + `;font-family:` + r.font + `;font-weight:700;line-height:1.0;text-shadow:0 4px 15px rgba(0,0,0,0.6);">` + d.CoverTitle + `</h1>`)
	}
	if d.CoverSubtitle != "" {
		b.WriteString(`<div style="font-size:clamp(12px, 2.2vw, 14.2px);letter-spacing:-0.5px;color:rgba(255, 255, 255, 0.9);margin:5px 0 10px 0;font-family:` + r.font + `;max-width:90%;text-shadow:0 1px 3px rgba(0,0,0,0.8);">` + d.CoverSubtitle + `</div>`)
	}

	r.writeTags(b, `<div style="font-size:0;">`,
		"background:rgba(255, 255, 255, 0.1);color:#ffffff;",
		"border:1px solid rgba(255, 255, 255, 0.3);")

	b.WriteString(`</div></div></div>`)
}

func (r *Renderer) writeTextCover(b *strings.Builder) {
	d := r.doc

	b.WriteString(`<div style="padding: clamp(20px, 4vw, 30px) clamp(30px, 5vw, 40px) clamp(15px, 3vw, 20px) clamp(30px, 5vw, 40px);">`)
	if d.CoverArchiveNo != "" {
		b.WriteString(`<p style="font-size:clamp(10px, 1.8vw, 11px);color:` + r.theme.TagText + `;letter-spacing:clamp(2px, 0.4vw, 3px);margin:0 0 8px 0;font-family:` + r.font + `;">` + d.CoverArchiveNo + `</p>`)
	}
	if d.CoverTitle != "" {
		margin := "0 0 15px 0"
		if d.CoverSubtitle != "" {
			margin = "0 0 5px 0"
		}
		b.WriteString(`<h1 style="font-size:clamp(32px, 6vw, 52px);color:` + r.theme.Header + `;margin:` + margin + `;font-family:` + r.font + `;font-weight:700;line-height:1.1;">` + d.CoverTitle + `</h1>`)
	}
	if d.CoverSubtitle != "" {
		b.WriteString(`<div style="font-size:clamp(12px, 2.2vw, 14.2px);letter-spacing:-0.5px;color:` + r.theme.Text + `;margin:5px 0 15px 0;font-family:` + r.font + `;max-width:90%;">` + d.CoverSubtitle + `</div>`)
	}

	r.writeTags(b, `<div style="font-size:0;margin-top:10px;">`,
		"background:"+r.theme.Quote1Bg+";color:"+r.theme.Text+";",
		"border:1px solid "+r.theme.Divider+";")

	b.WriteString(`</div>`)
}

// writeTags renders the cover tags with non-blank values.
func (r *Renderer) writeTags(b *strings.Builder, open, colors, border string) {
	if !r.doc.EnableTags {
		return
	}

	var tags []document.Tag
	for _, t := range r.doc.Tags {
		if strings.TrimSpace(t.Value) != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return
	}

	style := "display:inline-block;" + colors + "padding:clamp(4px, 0.8vw, 5px) clamp(10px, 2vw, 12px);margin:0 clamp(6px, 1.2vw, 8px) clamp(6px, 1.2vw, 8px) 0;" + border + "font-size:clamp(10px, 1.8vw, 11px);font-family:" + r.font + ";"

	b.WriteString(open)
	for _, t := range tags {
		value := t.Value
		if t.Link != "" {
			value = `<a href="` + t.Link + `" style="text-decoration:none;color:inherit;">` + t.Value + `</a>`
		}
		b.WriteString(`<span style="` + style + `">` + value + `</span> `)
	}
	b.WriteString(`</div>`)
}

func (r *Renderer) writeProfiles(b *strings.Builder) {
	top := "30px"
	if r.hasCoverContent() {
		top = "0px"
	}

	b.WriteString(`<div style="padding: ` + top + ` 0 10px 0;">`)
	b.WriteString(`<div style="padding: 0 clamp(30px, 5vw, 50px) 10px clamp(30px, 5vw, 50px); text-align: center;">`)
	b.WriteString(`<span style="` + sectionLabelStyle + r.theme.HeaderText + `; text-transform: uppercase; border-bottom: 1px solid ` + r.theme.HeaderText + `; padding-bottom: 5px;margin-bottom:10px">Profile</span>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="width: 100%; text-align: center; font-size: 0; margin-bottom: 0px;">`)
	for _, p := range r.doc.Profiles {
		r.writeProfile(b, p)
	}
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
}

func (r *Renderer) writeProfile(b *strings.Builder, p document.Profile) {
	name := strings.TrimSpace(p.Name) != ""
	desc := strings.TrimSpace(p.Desc) != ""
	if !name && !desc {
		return
	}

	b.WriteString(`<div style="display: inline-block; width: 50%; max-width: 350px; vertical-align: top; text-align: center; box-sizing: border-box; padding: 0 clamp(15px, 4vw, 30px); margin-bottom: clamp(20px, 4vw, 30px);">`)

	if img := markup.NormalizeImageURL(p.ImageURL); img != "" {
		position := strconv.Itoa(p.FocusX.Or(50)) + "% " + strconv.Itoa(p.FocusY.Or(30)) + "%"
		size := strconv.Itoa(p.Zoom.Or(100)) + "% auto"
		b.WriteString(`<div style="display: inline-block; width: 100%; max-width: clamp(130px, 18vw, 200px); vertical-align: top; margin: 0 auto clamp(10px, 2vw, 15px) auto;">`)
		b.WriteString(`<div style="width: 100%; height: 0; padding-bottom: 100%; border-radius: 50%; margin: 0 auto; background: url('` + img + `') ` + position + ` / ` + size + ` no-repeat;"></div>`)
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div style="text-align: center;">`)
	if p.Tag != "" {
		b.WriteString(`<div style="font-size: clamp(8px, 1.3vw, 10px); color: ` + r.theme.TagText + `; margin-bottom: 3px; font-weight: 600; text-transform: uppercase; font-family: ` + r.font + `;">` + p.Tag + `</div>`)
	}
	if name {
		b.WriteString(`<div style="display: block; font-size: clamp(13px, 2.5vw, 18px); font-weight: 700; font-family: ` + r.font + `; color: ` + r.theme.HeaderText + `; line-height: 1.2; margin-bottom: clamp(6px, 1.5vw, 10px);">` + p.Name + `</div>`)
	}
	if desc {
		b.WriteString(`<div style="font-size: clamp(11px, 2vw, 12px); line-height: 1.6; color: ` + r.theme.Text + `; word-break: keep-all; text-align: center; padding: 0 5px; font-family: ` + r.font + `;">` + strings.ReplaceAll(p.Desc, "\n", "<br>") + `</div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
}
