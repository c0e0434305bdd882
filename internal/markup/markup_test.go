package markup

import (
	"strings"
	"testing"

	"github.com/sweiss/logdiary/internal/theme"
)

func testPalette(t *testing.T) theme.Palette {
	t.Helper()
	p, ok := theme.Builtin("basic")
	if !ok {
		t.Fatal("basic palette missing")
	}
	return p
}

func TestRenderParagraphs(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing(), RoundedQuotes: true})
	out := r.Render("first\n\n   \nsecond\r\n", testPalette(t), Options{})

	if n := strings.Count(out, "<p "); n != 2 {
		t.Fatalf("paragraphs = %d, want 2: %s", n, out)
	}
	if !strings.Contains(out, "margin: 0 0 10px 0;") {
		t.Errorf("missing paragraph gap: %s", out)
	}
	if !strings.Contains(out, "line-height: 1.7; letter-spacing: -0.5px; font-size: 14.2px;") {
		t.Errorf("unexpected typography: %s", out)
	}
	if strings.Contains(out, "\r") {
		t.Errorf("carriage return leaked into output")
	}
}

func TestRenderOptions(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing(), TextIndent: true})
	p := testPalette(t)

	if out := r.Render("x", p, Options{}); !strings.Contains(out, "text-indent: 1em;") {
		t.Errorf("indent missing: %s", out)
	}
	if out := r.Render("x", p, Options{SkipIndent: true}); strings.Contains(out, "text-indent") {
		t.Errorf("indent should be skipped: %s", out)
	}
	if out := r.Render("x", p, Options{ReduceSpacing: true}); !strings.Contains(out, "margin: 0 0 5px 0;") {
		t.Errorf("reduced spacing missing: %s", out)
	}
}

func TestRenderImageWidth(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing()})
	p := testPalette(t)

	tests := []struct {
		line string
		want string
	}{
		{"[IMG:https://x.test/a.png:10]", "max-width: 30%;"},
		{"[IMG:https://x.test/a.png:999]", "max-width: 100%;"},
		{"[IMG:https://x.test/a.png:55]", "max-width: 55%;"},
		{"[IMG:https://x.test/a.png]", "max-width: 100%;"},
	}
	for _, tt := range tests {
		out := r.Render(tt.line, p, Options{})
		if !strings.Contains(out, tt.want) {
			t.Errorf("%s: want %q in %s", tt.line, tt.want, out)
		}
		if !strings.Contains(out, `src="https://x.test/a.png"`) {
			t.Errorf("%s: source not preserved: %s", tt.line, out)
		}
	}

	if out := r.Render("[IMG:https://x.test/a.png]", p, Options{ImageWidth: 80}); !strings.Contains(out, "max-width: 80%;") {
		t.Errorf("default width not applied: %s", out)
	}
}

func TestParseImagePort(t *testing.T) {
	img, ok := ParseImage("[IMG:http://host:8080/a.png]")
	if !ok {
		t.Fatal("directive not found")
	}
	if img.Source != "http://host:8080/a.png" || img.Width != 0 {
		t.Errorf("got %+v", img)
	}
}

func TestRenderProxyHosts(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing()})
	p := testPalette(t)

	out := r.Render("[IMG://ac.namu.la/pic.png]", p, Options{})
	if !strings.Contains(out, `src="https://ac.namu.la/pic.png"`) {
		t.Errorf("protocol-relative url not upgraded: %s", out)
	}
	if !strings.Contains(out, "data-proxies=") || !strings.Contains(out, "images.weserv.nl") {
		t.Errorf("proxy chain missing: %s", out)
	}

	plain := r.Render("[IMG:https://example.com/pic.png]", p, Options{})
	if strings.Contains(plain, "data-proxies") {
		t.Errorf("unexpected proxy chain: %s", plain)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	got := encodeURIComponent("https://a.b/c d?x=1&y=(2)!")
	want := "https%3A%2F%2Fa.b%2Fc%20d%3Fx%3D1%26y%3D(2)!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDivider(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing()})
	p := testPalette(t)

	out := r.Render("  [HR]  ", p, Options{})
	if !strings.HasPrefix(out, `<div style="width: 30%; height: 1px;`) {
		t.Errorf("divider not rendered: %s", out)
	}
}

func TestRenderFootnoteParagraph(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing(), RoundedQuotes: true})
	p := testPalette(t)

	out := r.Render("A [FN:cat]a small animal[/FN] sat.", p, Options{})
	if !strings.Contains(out, `cat<sup style="font-size: 0.7em;">*</sup>`) {
		t.Errorf("marker missing: %s", out)
	}
	if !strings.Contains(out, "margin: -8px 0 10px 0;") || !strings.Contains(out, "a small animal</p>") {
		t.Errorf("note paragraph missing: %s", out)
	}
}

func TestRenderBlock(t *testing.T) {
	r := NewRenderer(Config{Spacing: DefaultSpacing(), RoundedQuotes: true})
	p := testPalette(t)

	out := r.RenderBlock("  line one\nline [FN:two]note[/FN]  ", p)
	if !strings.HasPrefix(out, "line one<br>line two<sup style=\"color:"+p.Em+";font-size:0.8em;\">*</sup>") {
		t.Errorf("unexpected block output: %s", out)
	}
	if !strings.Contains(out, "margin: 0px -50px 10px -50px;") {
		t.Errorf("block footnote missing: %s", out)
	}
	if r.RenderBlock("", p) != "" {
		t.Errorf("empty block should render nothing")
	}
}

func TestRenderAppliesReplacements(t *testing.T) {
	r := NewRenderer(Config{
		Spacing:      DefaultSpacing(),
		Replacements: []Replacement{{From: "Yuzu", To: "유즈"}},
	})
	out := r.Render("Yuzu waves", testPalette(t), Options{})
	if !strings.Contains(out, "유즈 waves") {
		t.Errorf("replacement not applied: %s", out)
	}
}

func TestRenderQuoteStyles(t *testing.T) {
	p := testPalette(t)

	double := `<span style="background-color: ` + p.Quote2Bg + `; color: ` + p.Quote2Text + `; font-weight: 600; padding: 0 4px; border-radius: 2px;">`
	single := `<span style="background-color: ` + p.Quote1Bg + `; color: ` + p.Quote1Text + `; padding: 0 4px; border-radius: 2px;">`
	nested := `<span style="background-color: ` + p.Quote1Bg + `; color: ` + p.Quote1Text + `; border-radius: 2px;">`

	tests := []struct {
		name    string
		in      string
		rounded bool
		want    string
	}{
		{"nested rounded", `"She said 'no' to him"`, true,
			double + "“She said " + nested + "‘no’</span> to him”</span>"},
		{"nested straight", `"She said 'no' to him"`, false,
			double + `"She said ` + nested + `'no'</span> to him"</span>`},
		{"single rounded", `'solo'`, true,
			single + "‘solo’</span>"},
		{"single straight", `'solo'`, false,
			single + `'solo'</span>`},
		{"unit rounded", `He is 5'10" tall, she said "hi"`, true,
			`He is 5'10" tall, she said ` + double + "“hi”</span>"},
		{"unit straight", `He is 5'10" tall, she said "hi"`, false,
			`He is 5'10" tall, she said ` + double + `"hi"</span>`},
	}

	for _, tc := range tests {
		r := NewRenderer(Config{Spacing: DefaultSpacing(), RoundedQuotes: tc.rounded})
		out := r.Render(tc.in, p, Options{})

		if !strings.HasSuffix(out, `">`+tc.want+"</p>") {
			t.Errorf("%s: got %s\nwant body %s", tc.name, out, tc.want)
		}
		if strings.Contains(out, "{{") {
			t.Errorf("%s: placeholder leaked: %s", tc.name, out)
		}
	}
}

func TestParseImageLooseWidth(t *testing.T) {
	tests := []struct {
		line   string
		source string
		width  int
	}{
		{"[IMG:http://x/a.png:-5]", "http://x/a.png", 30},
		{"[IMG:http://x/a.png:10px]", "http://x/a.png", 30},
		{"[IMG:http://x/a.png: 70]", "http://x/a.png", 70},
		{"[IMG:http://x/a.png:+250]", "http://x/a.png", 100},
		{"[IMG:http://x/a.png:wide]", "http://x/a.png:wide", 0},
		{"[IMG:http://host:8080/a.png]", "http://host:8080/a.png", 0},
	}
	for _, tc := range tests {
		img, ok := ParseImage(tc.line)
		if !ok {
			t.Fatalf("%s: directive not found", tc.line)
		}
		if img.Source != tc.source || img.Width != tc.width {
			t.Errorf("%s: got %+v, want source %q width %d", tc.line, img, tc.source, tc.width)
		}
	}

	r := NewRenderer(Config{Spacing: DefaultSpacing()})
	out := r.Render("[IMG:http://x/a.png:-5]", testPalette(t), Options{})
	if !strings.Contains(out, `src="http://x/a.png"`) || !strings.Contains(out, "max-width: 30%;") {
		t.Errorf("signed width not clamped: %s", out)
	}
}
