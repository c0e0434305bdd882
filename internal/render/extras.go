package render

import (
	"regexp"
	"strings"

	"github.com/sweiss/logdiary/internal/markup"
)

const creditFooter = `<div style="text-align: center; padding: clamp(15px, 3vw, 20px) 0; font-size: clamp(9px, 1.5vw, 10px); color: #999999; max-width: 900px; margin: 0 auto;">Template by <a href="https://arca.live/b/characterai/161701867" style="color: #999999; text-decoration: none;">Log Diary</a></div>`

// comment renders the author's closing note with a signature line dated
// at render time.
func (r *Renderer) comment() string {
	d := r.doc
	p := r.theme

	var b strings.Builder
	b.WriteString(`<div style="box-shadow:0 4px 16px rgba(0,0,0,0.1);max-width: 900px; margin: 5px auto; border-radius: 1rem; background-color: ` + p.Bg + `; padding: clamp(20px, 4vw, 30px) 0; font-family: ` + r.font + `; font-size: clamp(13px, 2.3vw, 14.2px);">`)

	b.WriteString(`<div style="padding: 0 clamp(30px, 5vw, 50px) clamp(10px, 2vw, 15px) clamp(30px, 5vw, 50px); text-align: center;">`)
	b.WriteString(`<span style="display: inline-block; font-size: clamp(10px, 1.8vw, 12px); font-weight: 600; letter-spacing: clamp(1.5px, 0.3vw, 2px); color: ` + p.HeaderText + `; text-transform: uppercase; border-bottom: 1px solid ` + p.HeaderText + `; padding-bottom: 5px; font-family: ` + r.font + `;">Comment</span>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="padding: 0 clamp(30px, 5vw, 50px);">`)
	b.WriteString(r.text.Render(d.CommentText, p, markup.Options{SkipIndent: true, ReduceSpacing: true}))
	b.WriteString(`</div>`)

	sign := p.TagText
	if sign == "" {
		sign = p.Text
	}
	date := r.opts.Now().Format("2006.01.02")

	b.WriteString(`<div style="text-align: right; padding: clamp(10px, 2vw, 15px) clamp(30px, 5vw, 50px) 0 clamp(30px, 5vw, 50px); font-size: clamp(9px, 1.5vw, 10px); color: ` + sign + `; font-family: ` + r.font + `;">`)
	if nick := d.CommentNickname; strings.TrimSpace(nick) != "" {
		b.WriteString("BY " + nick + " • " + date)
	} else {
		b.WriteString(date)
	}
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
	return b.String()
}

var videoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&?/\s]+)`),
	regexp.MustCompile(`youtube\.com/.*[?&]v=([^&?/\s]+)`),
}

// VideoID extracts the YouTube video id from the usual URL shapes.
func VideoID(u string) (string, bool) {
	for _, re := range videoPatterns {
		if m := re.FindStringSubmatch(u); m != nil && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

const (
	triangleSmall = "display: inline-block; width: 0; height: 0; border-top: 6px solid transparent; border-bottom: 6px solid transparent; "
	playOverlay   = `<div style="display: table; width: 100%; height: 100%;"><div style="display: table-cell; vertical-align: middle; text-align: center;"><div style="width: 60px; height: 60px; margin: 0 auto; background: rgba(255,0,0,0.9); border-radius: 12px;"><div style="display: table; width: 100%; height: 100%;"><div style="display: table-cell; vertical-align: middle; text-align: center;"><div style="display: inline-block; width: 0; height: 0; border-top: 12px solid transparent; border-bottom: 12px solid transparent; border-left: 18px solid #fff; margin-left: 4px;"></div></div></div></div></div></div>`
)

// soundtrack renders the music player block. Preview renders show a
// static thumbnail; exports embed the player. An unrecognized URL renders
// nothing.
func (r *Renderer) soundtrack() string {
	d := r.doc
	if strings.TrimSpace(d.SoundtrackURL) == "" {
		return ""
	}
	id, ok := VideoID(d.SoundtrackURL)
	if !ok {
		return ""
	}
	p := r.theme

	muted := p.TagText
	if muted == "" {
		muted = "#888"
	}
	play := p.Em
	if play == "" {
		play = p.Header
	}
	titleColor := p.Header
	if titleColor == "" {
		titleColor = p.Text
	}

	var b strings.Builder
	b.WriteString(`<div style="padding-top: clamp(20px, 4vw, 30px);"></div>`)

	b.WriteString(`<div style="text-align: center; padding-bottom: clamp(15px, 3vw, 20px);">`)
	b.WriteString(`<span style="` + sectionLabelStyle + p.HeaderText + `; text-transform: uppercase; border-bottom: 1px solid ` + p.HeaderText + `; padding-bottom: 5px; font-family: ` + r.font + `;">Soundtrack</span>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="text-align: center; padding: 0 clamp(20px, 5vw, 40px) clamp(25px, 4vw, 35px);">`)

	b.WriteString(`<div style="max-width: 300px; margin: 0 auto;">`)
	if r.opts.Preview {
		b.WriteString(`<div style="width: 300px; height: 300px; background: #000 url('https://img.youtube.com/vi/` + id + `/hqdefault.jpg') center center / cover no-repeat; border-radius: 4px;">`)
		b.WriteString(playOverlay)
		b.WriteString(`</div>`)
	} else {
		b.WriteString(`<iframe src="https://www.youtube.com/embed/` + id + `" width="300" height="300" allowfullscreen="true"></iframe>`)
	}
	b.WriteString(`</div>`)

	if d.SoundtrackTitle != "" || d.SoundtrackArtist != "" {
		b.WriteString(`<div style="max-width: 300px; margin: clamp(12px, 2.5vw, 18px) auto 0; text-align: center;">`)
		if d.SoundtrackTitle != "" {
			b.WriteString(`<div style="font-size: clamp(13px, 2.5vw, 15px); font-weight: 600; color: ` + titleColor + `; line-height: 1.4; font-family: ` + r.font + `;">` + d.SoundtrackTitle + `</div>`)
		}
		if d.SoundtrackArtist != "" {
			b.WriteString(`<div style="font-size: clamp(11px, 2vw, 12px); color: ` + muted + `; margin-top: 4px; font-family: ` + r.font + `;">` + d.SoundtrackArtist + `</div>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div style="max-width: 200px; margin: clamp(15px, 3vw, 22px) auto 0;">`)
	b.WriteString(`<div style="display: table; width: 100%;">`)

	b.WriteString(`<div style="display: table-cell; width: 33%; text-align: center; vertical-align: middle;">`)
	b.WriteString(`<div style="` + triangleSmall + `border-right: 8px solid ` + muted + `;"></div>`)
	b.WriteString(`<div style="` + triangleSmall + `border-right: 8px solid ` + muted + `; margin-left: 2px;"></div>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="display: table-cell; width: 34%; text-align: center; vertical-align: middle;">`)
	b.WriteString(`<div style="display: inline-block; width: 0; height: 0; border-top: 10px solid transparent; border-bottom: 10px solid transparent; border-left: 14px solid ` + play + `;"></div>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="display: table-cell; width: 33%; text-align: center; vertical-align: middle;">`)
	b.WriteString(`<div style="` + triangleSmall + `border-left: 8px solid ` + muted + `;"></div>`)
	b.WriteString(`<div style="` + triangleSmall + `border-left: 8px solid ` + muted + `; margin-left: 2px;"></div>`)
	b.WriteString(`</div>`)

	b.WriteString(`</div></div>`)

	b.WriteString(`</div>`)
	return b.String()
}
