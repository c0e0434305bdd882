package markup

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/sweiss/logdiary/internal/theme"
)

type styles struct {
	paragraph  string
	note       string
	em         string
	quote1     string
	quote1Bare string
	quote2     string
	emColor    string
	blockSup   bool
}

func (r *Renderer) styles(p theme.Palette, opts Options) styles {
	sp := r.cfg.Spacing

	gap := formatNumber(sp.ParagraphSpacing) + "px"
	if opts.ReduceSpacing {
		gap = "5px"
	}

	indent := ""
	if r.cfg.TextIndent && !opts.SkipIndent {
		v := sp.TextIndent
		if v <= 0 {
			v = 1
		}
		indent = " text-indent: " + formatNumber(v) + "em;"
	}

	return styles{
		paragraph: "margin: 0 0 " + gap + " 0; color: " + p.Text +
			"; line-height: " + formatNumber(sp.LineHeight) +
			"; letter-spacing: " + formatNumber(sp.LetterSpacing) +
			"px; font-size: " + formatNumber(sp.FontSize) + "px;" + indent,
		note:       "font-size: 11px; color: " + p.TagText + "; margin: -8px 0 10px 0; line-height: 1.4;",
		em:         "font-style: italic; color: " + p.Em + ";",
		quote1:     "background-color: " + p.Quote1Bg + "; color: " + p.Quote1Text + "; padding: 0 4px; border-radius: 2px;",
		quote1Bare: "background-color: " + p.Quote1Bg + "; color: " + p.Quote1Text + "; border-radius: 2px;",
		quote2:     "background-color: " + p.Quote2Bg + "; color: " + p.Quote2Text + "; font-weight: 600; padding: 0 4px; border-radius: 2px;",
		emColor:    p.Em,
	}
}

func writeSpans(b *strings.Builder, spans []Span, st styles, breaks bool) {
	for _, s := range spans {
		switch s.Kind {
		case SpanText, SpanUnit:
			if breaks {
				b.WriteString(strings.ReplaceAll(s.Text, "\n", "<br>"))
			} else {
				b.WriteString(s.Text)
			}
		case SpanDouble:
			writeQuote(b, st.quote2, s, st, breaks)
		case SpanSingle:
			writeQuote(b, st.quote1, s, st, breaks)
		case SpanNestedSingle:
			writeQuote(b, st.quote1Bare, s, st, breaks)
		case SpanItalic:
			b.WriteString(`<em><span style="`)
			b.WriteString(st.em)
			b.WriteString(`">`)
			writeSpans(b, s.Children, st, breaks)
			b.WriteString("</span></em>")
		case SpanFootnoteRef:
			if st.blockSup {
				b.WriteString(`<sup style="color:` + st.emColor + `;font-size:0.8em;">`)
			} else {
				b.WriteString(`<sup style="font-size: 0.7em;">`)
			}
			b.WriteString(marker(s.Marker))
			b.WriteString("</sup>")
		}
	}
}

func writeQuote(b *strings.Builder, style string, s Span, st styles, breaks bool) {
	b.WriteString(`<span style="`)
	b.WriteString(style)
	b.WriteString(`">`)
	b.WriteString(s.Open)
	writeSpans(b, s.Children, st, breaks)
	b.WriteString(s.Close)
	b.WriteString("</span>")
}

func dividerHTML(p theme.Palette) string {
	color := p.Divider
	if color == "" {
		color = p.TagText
	}
	if color == "" {
		color = p.Header
	}
	return `<div style="width: 30%; height: 1px; background-color: ` + color + `; margin: 20px auto;"></div>`
}

var imageDirective = regexp.MustCompile(`\[IMG:([^\]]+)\]`)

// Image is a parsed [IMG:...] directive.
type Image struct {
	// Source is the URL as written, trimmed.
	Source string
	// Width is the explicit width percent, already clamped, or zero.
	Width int
}

// ParseImage finds the first [IMG:...] directive on a line. A trailing
// ":N" segment without a slash that starts with an optionally signed
// number is read as the width and clamped to [30,100], so "10px" reads as
// 10. Any other colon belongs to the URL.
func ParseImage(line string) (Image, bool) {
	m := imageDirective.FindStringSubmatch(line)
	if m == nil {
		return Image{}, false
	}

	arg := m[1]
	img := Image{Source: strings.TrimSpace(arg)}
	if i := strings.LastIndexByte(arg, ':'); i >= 0 {
		seg := arg[i+1:]
		if n, ok := leadingInt(seg); ok && !strings.Contains(seg, "/") {
			img.Source = strings.TrimSpace(arg[:i])
			img.Width = min(100, max(30, n))
		}
	}
	return img, true
}

// leadingInt reads an optionally signed run of digits at the start of s,
// ignoring leading spaces.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow; only the sign matters after clamping
		if s[0] == '-' {
			return 0, true
		}
		return 100, true
	}
	return n, true
}

// HTML renders the image centered. defaultWidth applies when the directive
// has no width of its own. An empty source renders nothing.
func (img Image) HTML(defaultWidth int) string {
	src := NormalizeImageURL(img.Source)
	if src == "" {
		return ""
	}

	width := img.Width
	if width == 0 {
		width = defaultWidth
	}

	style := "max-width: " + strconv.Itoa(width) + "%; height: auto; border-radius: 15px; display: block; margin: 0 auto;"

	var b strings.Builder
	b.WriteString(`<div style="text-align: center; margin: 20px 0;"><img src="`)
	b.WriteString(html.EscapeString(src))
	b.WriteString(`" style="`)
	b.WriteString(style)
	b.WriteString(`"`)
	if NeedsProxy(img.Source) {
		b.WriteString(` data-original="`)
		b.WriteString(html.EscapeString(img.Source))
		b.WriteString(`" data-proxies="`)
		b.WriteString(html.EscapeString(strings.Join(ProxyChain(img.Source), "|")))
		b.WriteString(`" data-proxy-index="0" onerror="`)
		b.WriteString(ProxyErrorHandler("img.style.display='none';"))
		b.WriteString(`"`)
	} else {
		b.WriteString(` onerror="this.style.display='none'"`)
	}
	b.WriteString("></div>")
	return b.String()
}

// ProxyErrorHandler returns the inline onerror script that walks
// data-proxies and runs giveUp once every source has failed.
func ProxyErrorHandler(giveUp string) string {
	return "(function(img){var proxies=img.dataset.proxies.split('|');var idx=parseInt(img.dataset.proxyIndex||0);if(idx<proxies.length-1){img.dataset.proxyIndex=idx+1;img.src=proxies[idx+1];}else{" + giveUp + "};})(this)"
}

// NormalizeImageURL trims the URL and upgrades protocol-relative URLs to https.
func NormalizeImageURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

// restrictedHosts serve images that fail on cross-origin embedding.
var restrictedHosts = []string{"namu.la", "arca.live"}

// NeedsProxy reports whether the URL points at a host that needs proxy fallbacks.
func NeedsProxy(u string) bool {
	for _, h := range restrictedHosts {
		if strings.Contains(u, h) {
			return true
		}
	}
	return false
}

// ProxyChain lists the sources tried in order: the original URL, then two
// public image proxies.
func ProxyChain(u string) []string {
	enc := encodeURIComponent(u)
	return []string{
		u,
		"https://images.weserv.nl/?url=" + enc,
		"https://api.allorigins.win/raw?url=" + enc,
	}
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}
