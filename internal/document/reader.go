package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Load reads a document from path. A missing file yields the default
// document. A file that cannot be parsed is logged and also yields the
// default document; only I/O failures are returned as errors.
func Load(path string, log *zap.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Document not found, using default", zap.String("path", path))
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		log.Warn("Unable to parse document, using default", zap.String("path", path), zap.Error(err))
		return Default(), nil
	}
	return doc, nil
}

// legacyProfiles are the two fixed profiles older files stored inline.
type legacyProfiles struct {
	UserName       string   `json:"userName"`
	UserImageURL   string   `json:"userImageUrl"`
	UserFocusX     *FlexInt `json:"userFocusX"`
	UserFocusY     *FlexInt `json:"userFocusY"`
	UserDesc       string   `json:"userDesc"`
	UserProfileTag string   `json:"userProfileTag"`
	CharName       string   `json:"charName"`
	CharImageURL   string   `json:"charImageUrl"`
	CharFocusX     *FlexInt `json:"charFocusX"`
	CharFocusY     *FlexInt `json:"charFocusY"`
	CharDesc       string   `json:"charDesc"`
	CharProfileTag string   `json:"charProfileTag"`
}

// legacyColors carries custom color keys that older files used before the
// single header color existed.
type legacyColors struct {
	CustomColors struct {
		Line       string `json:"line"`
		HeaderText string `json:"headerText"`
	} `json:"customColors"`
}

// Parse decodes a document and applies the load-time migrations. It fails
// only when data is not a JSON object of the expected shape.
func Parse(data []byte) (*Document, error) {
	doc := &Document{
		EnableTags:     true,
		EnablePageFold: true,
		TextSpacing:    Default().TextSpacing,
		FontFamily:     DefaultFont,
		GlobalTheme:    DefaultTheme,
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	var legacy legacyProfiles
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse legacy profile fields: %w", err)
	}
	var colors legacyColors
	if err := json.Unmarshal(data, &colors); err != nil {
		return nil, fmt.Errorf("failed to parse custom colors: %w", err)
	}

	migrate(doc, legacy, colors)
	return doc, nil
}

func migrate(doc *Document, legacy legacyProfiles, colors legacyColors) {
	if doc.CoverZoom == 0 {
		doc.CoverZoom = defaultCoverZoom
	}
	if doc.CoverFocusX == 0 {
		doc.CoverFocusX = defaultCoverX
	}
	if doc.CoverFocusY == 0 {
		doc.CoverFocusY = defaultCoverY
	}
	if doc.CoverArchiveNo == "" {
		doc.CoverArchiveNo = defaultArchiveNo
	}
	if doc.FontFamily == "" {
		doc.FontFamily = DefaultFont
	}
	if doc.GlobalTheme == "" {
		doc.GlobalTheme = DefaultTheme
	}

	if doc.CustomColors.Header == "" {
		doc.CustomColors.Header = firstNonEmpty(colors.CustomColors.Line, colors.CustomColors.HeaderText)
	}

	// Saved palettes were stored with line/headerText but no header.
	for i := range doc.CustomThemes {
		p := &doc.CustomThemes[i]
		if p.Header == "" {
			p.Header = firstNonEmpty(p.HeaderText, p.Line)
		}
		if p.HeaderText == "" {
			p.HeaderText = p.Header
		}
		if p.Line == "" {
			p.Line = p.Header
		}
	}

	if len(doc.Tags) == 0 {
		doc.Tags = DefaultTags()
	}
	defaults := DefaultTags()
	for len(doc.Tags) < minTags {
		doc.Tags = append(doc.Tags, defaults[len(doc.Tags)])
	}

	if len(doc.Profiles) == 0 && (legacy.UserName != "" || legacy.CharName != "") {
		doc.Profiles = []Profile{
			{
				Name:     firstNonEmpty(legacy.UserName, "User"),
				ImageURL: legacy.UserImageURL,
				FocusX:   flexOr(legacy.UserFocusX, 50),
				FocusY:   flexOr(legacy.UserFocusY, 30),
				Desc:     legacy.UserDesc,
				Tag:      legacy.UserProfileTag,
			},
			{
				Name:     firstNonEmpty(legacy.CharName, "Char"),
				ImageURL: legacy.CharImageURL,
				FocusX:   flexOr(legacy.CharFocusX, 50),
				FocusY:   flexOr(legacy.CharFocusY, 30),
				Desc:     legacy.CharDesc,
				Tag:      legacy.CharProfileTag,
			},
		}
	}
	if len(doc.Profiles) > 0 {
		doc.EnableProfiles = true
	}

	items := doc.Pages[:0]
	for _, it := range doc.Pages {
		if it.Page == nil && it.Section == nil {
			continue
		}
		if it.ID == "" {
			it.ID = newID()
		}
		items = append(items, it)
	}
	doc.Pages = items
}

func flexOr(v *FlexInt, def int) FlexInt {
	if v == nil {
		return FlexInt(def)
	}
	return *v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func newID() string {
	return uuid.New().String()
}
