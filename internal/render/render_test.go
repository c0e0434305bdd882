package render

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sweiss/logdiary/internal/document"
	"github.com/sweiss/logdiary/internal/markup"
)

func testDoc(items ...document.Item) *document.Document {
	return &document.Document{
		GlobalTheme:    "basic",
		FontFamily:     "Pretendard",
		TextSpacing:    markup.DefaultSpacing(),
		EnablePageFold: true,
		Pages:          items,
	}
}

func page(title, content string) document.Item {
	return document.Item{Page: &document.Page{Title: title, Content: content, ImageWidth: 100}}
}

func section(title, image string) document.Item {
	return document.Item{Section: &document.Section{Title: title, Image: image}}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func pageNumbers(doc *goquery.Document) []string {
	var nums []string
	doc.Find(`div[style*="clamp(32px, 7vw, 48px)"]`).Each(func(_ int, s *goquery.Selection) {
		nums = append(nums, s.Text())
	})
	return nums
}

func TestHTML_PageNumbersResetPerSection(t *testing.T) {
	d := testDoc(
		page("One", "a"),
		page("Two", "b"),
		section("Part", ""),
		page("Three", "c"),
	)

	got := pageNumbers(parse(t, HTML(d, Options{})))
	want := []string{"1", "2", "1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("page numbers = %v, want %v", got, want)
	}
}

func TestHTML_SectionGrouping(t *testing.T) {
	d := testDoc(
		section("Banner", "https://example.com/banner.png"),
		page("One", "first"),
		page("Two", "second"),
		section("Tail", ""),
	)

	doc := parse(t, HTML(d, Options{}))
	cards := doc.Find("body > div")
	if cards.Length() != 3 {
		t.Fatalf("top-level blocks = %d, want 3 (section card, terminal card, credit)", cards.Length())
	}

	grouped := cards.Eq(0)
	style, _ := grouped.Attr("style")
	if !strings.Contains(style, "padding: 0 0 clamp(20px, 4vw, 30px) 0;") {
		t.Errorf("section card with banner should have no top padding, style = %q", style)
	}
	if n := grouped.Find(`div[style^="height: 1px;"]`).Length(); n != 1 {
		t.Errorf("dividers in section card = %d, want 1", n)
	}
	if !strings.Contains(grouped.Text(), "first") || !strings.Contains(grouped.Text(), "second") {
		t.Errorf("section card is missing page content: %q", grouped.Text())
	}

	terminal, _ := cards.Eq(1).Attr("style")
	if !strings.Contains(terminal, "border-radius: 10px;") || !strings.Contains(terminal, "padding: 0;") {
		t.Errorf("terminal section style = %q", terminal)
	}
	if !strings.Contains(cards.Eq(1).Text(), "Tail") {
		t.Errorf("terminal section text = %q", cards.Eq(1).Text())
	}
}

func TestHTML_SectionWithoutBannerKeepsPadding(t *testing.T) {
	d := testDoc(section("Plain", ""), page("One", "x"))

	doc := parse(t, HTML(d, Options{}))
	style, _ := doc.Find("body > div").First().Attr("style")
	if !strings.Contains(style, "padding: clamp(20px, 4vw, 30px) 0 clamp(20px, 4vw, 30px) 0;") {
		t.Errorf("style = %q", style)
	}
}

func TestHTML_PageFoldOff(t *testing.T) {
	d := testDoc(page("Hidden", "body text"))
	d.EnablePageFold = false

	out := HTML(d, Options{})
	if strings.Contains(out, "Hidden") {
		t.Error("header rendered with page fold off")
	}
	if strings.Contains(out, "<details") {
		t.Error("accordion rendered with page fold off")
	}
	if !strings.Contains(out, "body text") {
		t.Error("content missing")
	}
}

func TestHTML_CollapsedPage(t *testing.T) {
	it := page("Folded", "inside")
	it.Page.Collapsed = true

	doc := parse(t, HTML(testDoc(it), Options{}))
	details := doc.Find("details")
	if details.Length() != 1 {
		t.Fatalf("details = %d, want 1", details.Length())
	}
	if !strings.Contains(details.Find("summary").Text(), "Folded") {
		t.Errorf("summary = %q", details.Find("summary").Text())
	}
	if !strings.Contains(details.Text(), "inside") {
		t.Error("collapsed body missing")
	}
	if !strings.Contains(details.Find("summary").Text(), "⌵") {
		t.Error("fold glyph missing")
	}
}

func TestHTML_CollapsedPageInSection(t *testing.T) {
	it := page("Folded", "inside")
	it.Page.Collapsed = true
	d := testDoc(section("S", ""), it, page("Open", "visible"))

	doc := parse(t, HTML(d, Options{}))
	details := doc.Find(`details[style="margin: 0;"]`)
	if details.Length() != 1 {
		t.Fatalf("in-section details = %d, want 1", details.Length())
	}
	if summary, _ := details.Find("summary").Html(); strings.Contains(summary, "vertical-align: center;") {
		t.Error("summary header kept vertical-align: center")
	}
	if n := doc.Find(`div[style^="height: 1px;"]`).Length(); n != 1 {
		t.Errorf("dividers = %d, want 1", n)
	}
}

func TestHTML_BackgroundImagePage(t *testing.T) {
	it := page("Bg", "over image")
	it.Page.BgImage = "//example.com/bg.png"

	out := HTML(testDoc(it), Options{})
	if !strings.Contains(out, "background-image: url('https://example.com/bg.png')") {
		t.Error("background image missing or not normalized")
	}
	if !strings.Contains(out, "rgba(255, 255, 255, 0.85)") {
		t.Error("translucent panel missing")
	}
	if strings.Contains(out, "⌵") {
		t.Error("open background page should not carry the fold glyph")
	}
}

func TestHTML_DraftItems(t *testing.T) {
	d := testDoc(page("Saved", "saved body"))
	draft := []document.Item{page("Draft", "draft body")}

	out := HTML(d, Options{Items: draft})
	if !strings.Contains(out, "draft body") || strings.Contains(out, "saved body") {
		t.Error("override items not used")
	}
}

func TestHTML_HidePageNumbers(t *testing.T) {
	d := testDoc(page("Hello", "x"), page("", "y"))
	d.HidePageNumbers = true

	doc := parse(t, HTML(d, Options{}))
	if got := pageNumbers(doc); len(got) != 0 {
		t.Errorf("numbers rendered while hidden: %v", got)
	}
	out, _ := doc.Html()
	if !strings.Contains(out, ">Hello</div>") {
		t.Error("title missing")
	}
	if !strings.Contains(out, ">Page 2</div>") {
		t.Error("untitled page should fall back to its page number")
	}
}

func TestHTML_EmptyDocument(t *testing.T) {
	d := testDoc()
	d.EnableTopSection = true

	if got := HTML(d, Options{}); got != creditFooter {
		t.Errorf("empty document = %q, want only the credit line", got)
	}
}

func TestHTML_Comment(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.March, 5, 22, 0, 0, 0, time.UTC) }

	d := testDoc(page("A", "b"))
	d.EnableComment = true
	d.CommentText = "Thanks for reading"
	d.CommentNickname = "Yuzu"

	out := HTML(d, Options{Now: now})
	if !strings.Contains(out, "BY Yuzu • 2024.03.05") {
		t.Error("signature missing")
	}
	if !strings.HasSuffix(out, creditFooter) {
		t.Error("credit line must come last")
	}

	d.CommentNickname = "  "
	out = HTML(d, Options{Now: now})
	if strings.Contains(out, "BY ") || !strings.Contains(out, ">2024.03.05</div>") {
		t.Error("anonymous signature should be the date alone")
	}

	d.CommentText = " "
	if strings.Contains(HTML(d, Options{Now: now}), "2024.03.05") {
		t.Error("blank comment rendered")
	}
}

func TestHTML_Soundtrack(t *testing.T) {
	d := testDoc()
	d.EnableTopSection = true
	d.SoundtrackURL = "https://www.youtube.com/watch?v=abc123&t=10"
	d.SoundtrackTitle = "Song"

	preview := HTML(d, Options{Preview: true})
	if strings.Contains(preview, "<iframe") {
		t.Error("preview embedded a player")
	}
	if !strings.Contains(preview, "https://img.youtube.com/vi/abc123/hqdefault.jpg") {
		t.Error("preview thumbnail missing")
	}

	doc := parse(t, HTML(d, Options{}))
	src, ok := doc.Find("iframe").Attr("src")
	if !ok || src != "https://www.youtube.com/embed/abc123" {
		t.Errorf("iframe src = %q", src)
	}
	if !strings.Contains(doc.Text(), "Song") {
		t.Error("song title missing")
	}
}

func TestHTML_SoundtrackUnknownURL(t *testing.T) {
	d := testDoc()
	d.EnableTopSection = true
	d.SoundtrackURL = "https://example.com/track.mp3"

	if got := HTML(d, Options{}); got != creditFooter {
		t.Errorf("unrecognized soundtrack produced output: %q", got)
	}
}

func TestHTML_HiddenCover(t *testing.T) {
	d := testDoc()
	d.EnableCover = true
	d.CoverImage = " https://namu.la/cover.png "

	doc := parse(t, HTML(d, Options{}))
	img := doc.Find(`img[style="width: 0px; height: 0px;"]`).First()
	if src, _ := img.Attr("src"); src != "https://namu.la/cover.png" {
		t.Errorf("src = %q", src)
	}
	proxies, _ := img.Attr("data-proxies")
	if n := len(strings.Split(proxies, "|")); n != 3 {
		t.Errorf("proxy chain length = %d, want 3", n)
	}
	if onerr, _ := img.Attr("onerror"); !strings.Contains(onerr, "img.remove();") {
		t.Errorf("onerror = %q", onerr)
	}

	d.EnableCover = false
	if strings.Contains(HTML(d, Options{}), "<img") {
		t.Error("hidden cover emitted with the cover off")
	}
}

func TestHTML_TextCover(t *testing.T) {
	d := testDoc()
	d.EnableTopSection = true
	d.EnableCover = true
	d.CoverTitle = "Yuzu"
	d.EnableTags = true
	d.Tags = []document.Tag{{Name: "Bot", Value: "Bot", Link: "https://example.com"}, {Name: "Empty", Value: " "}}

	doc := parse(t, HTML(d, Options{}))
	h1 := doc.Find("h1")
	if h1.Text() != "Yuzu" {
		t.Errorf("title = %q", h1.Text())
	}
	if style, _ := h1.Attr("style"); !strings.Contains(style, "color:#162a3e;") {
		t.Errorf("text cover should use the theme header color, style = %q", style)
	}
	if doc.Find(`a[href="https://example.com"]`).Length() != 1 {
		t.Error("linked tag missing")
	}
	if n := doc.Find(`span[style^="display:inline-block;"]`).Length(); n != 1 {
		t.Errorf("tags = %d, want 1 (blank values dropped)", n)
	}
}

func TestHTML_ImageCover(t *testing.T) {
	d := testDoc()
	d.EnableTopSection = true
	d.EnableCover = true
	d.CoverImage = "https://example.com/c.png"
	d.CoverZoom = 120
	d.CoverFocusX = 50
	d.CoverFocusY = 28

	out := HTML(d, Options{})
	if !strings.Contains(out, "background-size:120% auto;background-position:50% 28%;") {
		t.Error("cover sizing missing")
	}
	d.CoverAutoFit = true
	if !strings.Contains(HTML(d, Options{}), "background-size:cover;") {
		t.Error("auto fit should use cover sizing")
	}
}

func TestHTML_Profiles(t *testing.T) {
	d := testDoc()
	d.EnableTopSection = true
	d.EnableProfiles = true
	d.Profiles = []document.Profile{
		{Name: "Yuzu", ImageURL: "https://example.com/p.png", Desc: "line one\nline two", Tag: document.ProfileTagChar},
		{Name: " ", Desc: ""},
	}

	out := HTML(d, Options{})
	if !strings.Contains(out, ">Profile</span>") {
		t.Error("profile heading missing")
	}
	if !strings.Contains(out, "line one<br>line two") {
		t.Error("description line breaks not converted")
	}
	if !strings.Contains(out, "50% 30% / 100% auto") {
		t.Error("profile image defaults missing")
	}
	if n := strings.Count(out, "max-width: 350px;"); n != 1 {
		t.Errorf("rendered profiles = %d, want 1", n)
	}
}

func TestHeader_Layouts(t *testing.T) {
	r := New(testDoc(), Options{})

	numbered := r.Header("#3 Title - Sub", Banner{})
	if !strings.Contains(numbered, ">3</div>") || !strings.Contains(numbered, ">Sub</div>") {
		t.Errorf("numbered header = %q", numbered)
	}

	plain := r.Header("Prologue", Banner{})
	if !strings.Contains(plain, ">PROLOGUE</span>") {
		t.Errorf("plain header = %q", plain)
	}

	banner := r.Header("#1 T", Banner{Image: "https://example.com/h.png"})
	if !strings.Contains(banner, "color: #ffffff;") || !strings.Contains(banner, "50% 50% / cover") {
		t.Errorf("banner header = %q", banner)
	}
}

func TestHeaderText(t *testing.T) {
	tests := []struct {
		n               int
		title, subtitle string
		want            string
	}{
		{1, "Title", "Sub", "#1 Title - Sub"},
		{2, "Title", "", "#2 Title"},
		{3, "", "Sub", "#3 - Sub"},
		{4, " ", " ", "#4"},
	}
	for _, tt := range tests {
		if got := HeaderText(tt.n, tt.title, tt.subtitle); got != tt.want {
			t.Errorf("HeaderText(%d, %q, %q) = %q, want %q", tt.n, tt.title, tt.subtitle, got, tt.want)
		}
	}
}

func TestParseHeader(t *testing.T) {
	h := parseHeader("#12 Night - Rain - Again")
	if h.number != "12" || h.title != "Night" || h.subtitle != "Rain - Again" {
		t.Errorf("parseHeader = %+v", h)
	}
	h = parseHeader("#3 - Sub")
	if h.number != "3" || h.title != "" || h.subtitle != "Sub" {
		t.Errorf("parseHeader = %+v", h)
	}
}

func TestVideoID(t *testing.T) {
	tests := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=x":                 "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=L&v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
	}
	for in, want := range tests {
		if got, ok := VideoID(in); !ok || got != want {
			t.Errorf("VideoID(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := VideoID("https://vimeo.com/1"); ok {
		t.Error("non-YouTube URL matched")
	}
}

func TestAssemblyStateString(t *testing.T) {
	if stateIdle.String() != "idle" || stateInSection.String() != "in-section" {
		t.Error("unexpected state names")
	}
}
