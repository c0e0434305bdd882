package document

import (
	"github.com/sweiss/logdiary/internal/markup"
	"github.com/sweiss/logdiary/internal/theme"
)

const (
	// DefaultFont is the font family used when a document names none.
	DefaultFont = "Pretendard"
	// DefaultTheme is the global theme used when a document names none.
	DefaultTheme = "basic"

	defaultArchiveNo = "ARCHIVE NO.001"
	defaultCoverZoom = 120
	defaultCoverX    = 50
	defaultCoverY    = 28
	minTags          = 3
)

// DefaultTags are the cover tags of a fresh document. Short tag lists are
// padded from this list on load.
func DefaultTags() []Tag {
	return []Tag{
		{Name: "Bot", Value: "Bot"},
		{Name: "Model", Value: "Model"},
		{Name: "Prompt", Value: "Prompt"},
		{Name: "Language", Value: "Eng"},
	}
}

// Default returns the first-run document: a cover, two profiles, a section
// with a banner and one page.
func Default() *Document {
	return &Document{
		UseRoundedQuotes: true,
		EnableTopSection: true,

		EnableCover:    true,
		CoverImage:     "DefaultCover.png",
		CoverZoom:      120,
		CoverFocusX:    50,
		CoverFocusY:    30,
		CoverArchiveNo: defaultArchiveNo,
		CoverTitle:     "Yuzu",
		CoverSubtitle:  "귀여운 고양이 메이드",

		EnableProfiles: true,
		EnableTags:     true,

		CustomColors: theme.Colors{
			Bg:         "#ffffff",
			Text:       "#2c3e50",
			Em:         "#2d5af0",
			Header:     "#2c3e50",
			Quote1Bg:   "#f0f2f5",
			Quote1Text: "#2c3e50",
			Quote2Bg:   "#f0f2f5",
			Quote2Text: "#162a3e",
			TagText:    "#6c8da8",
			Divider:    "#c8d6e0",
		},

		Pages: []Item{
			{
				ID: newID(),
				Section: &Section{
					Title:    "Section Title",
					Subtitle: "Story",
					Image:    "DefaultSection.png",
					FocusX:   50,
					FocusY:   40,
				},
			},
			{
				ID: newID(),
				Page: &Page{
					Theme:         DefaultTheme,
					Title:         "Page Title",
					Subtitle:      "Page Subtitle",
					Content:       "[IMG:DefaultImg.png]\nPage Content",
					ImageWidth:    100,
					HeaderFocusX:  50,
					HeaderFocusY:  50,
					UseGlobalTags: true,
				},
			},
		},

		Tags: DefaultTags(),
		Profiles: []Profile{
			{Name: "Yuzu", ImageURL: "DefaultProfile1.png", Zoom: 100, FocusX: 50, FocusY: 30, Desc: " Profile 1 Description", Tag: ProfileTagChar},
			{Name: "Jong-won", ImageURL: "DefaultProfile2.png", Zoom: 100, FocusX: 50, FocusY: 10, Desc: "Profile 2 Description", Tag: ProfileTagUser},
		},
		Replacements: []markup.Replacement{{}},
		TextSpacing:  markup.DefaultSpacing(),
		FontFamily:   "Noto Serif KR",
		GlobalTheme:  DefaultTheme,

		EnablePageFold: true,
	}
}
