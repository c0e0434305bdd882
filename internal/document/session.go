package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sweiss/logdiary/internal/markup"
	"github.com/sweiss/logdiary/internal/theme"
)

// Limits on user-managed lists.
const (
	MaxCustomThemes = 20
	MaxProfiles     = 6
)

var (
	// ErrEmptyContent is returned when a page is saved without content.
	ErrEmptyContent = errors.New("page content is empty")
	// ErrEmptySection is returned when a section has no title, subtitle or image.
	ErrEmptySection = errors.New("section needs a title, subtitle or image")
	// ErrIndexOutOfRange is returned for an index that addresses no entry.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotPage is returned when a page operation addresses a section.
	ErrNotPage = errors.New("item is not a page")
	// ErrNotSection is returned when a section operation addresses a page.
	ErrNotSection = errors.New("item is not a section")
	// ErrTooManyThemes is returned when the saved palette list is full.
	ErrTooManyThemes = fmt.Errorf("at most %d custom themes can be saved", MaxCustomThemes)
	// ErrTooManyProfiles is returned when the profile list is full.
	ErrTooManyProfiles = fmt.Errorf("at most %d profiles are allowed", MaxProfiles)
	// ErrEmptyName is returned when a saved palette is given a blank name.
	ErrEmptyName = errors.New("name is empty")
	// ErrEmptyRule is returned when a replacement rule has nothing to find.
	ErrEmptyRule = errors.New("replacement needs a non-empty find string")
	// ErrNotEditing is returned when there is no page being edited.
	ErrNotEditing = errors.New("no page is being edited")
)

// Session owns one document and applies user edits to it. It is not safe
// for concurrent use.
type Session struct {
	doc *Document

	editing int
	draft   *Page
}

// NewSession starts a session on doc.
func NewSession(doc *Document) *Session {
	return &Session{doc: doc, editing: -1}
}

// Document returns the document the session edits.
func (s *Session) Document() *Document {
	return s.doc
}

// Items returns the page list as it should be rendered: the page being
// edited is replaced by its unsaved draft.
func (s *Session) Items() []Item {
	if s.draft == nil {
		return s.doc.Pages
	}
	items := make([]Item, len(s.doc.Pages))
	copy(items, s.doc.Pages)
	if s.editing >= 0 && s.editing < len(items) {
		draft := *s.draft
		items[s.editing] = Item{ID: items[s.editing].ID, Page: &draft}
	}
	return items
}

// Find returns the index of the item with the given ID.
func (s *Session) Find(id string) (int, bool) {
	for i, it := range s.doc.Pages {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Session) checkIndex(idx int) error {
	if idx < 0 || idx >= len(s.doc.Pages) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	return nil
}

// AddPage appends a new page. Title and subtitle are trimmed; content must
// not be blank. A zero image width becomes 100.
func (s *Session) AddPage(p Page) (Item, error) {
	if strings.TrimSpace(p.Content) == "" {
		return Item{}, ErrEmptyContent
	}

	p.Title = strings.TrimSpace(p.Title)
	p.Subtitle = strings.TrimSpace(p.Subtitle)
	if p.ImageWidth == 0 {
		p.ImageWidth = 100
	}
	if p.Theme == "" {
		p.Theme = s.doc.GlobalTheme
	}
	p.HeaderFocusX = FlexInt(p.HeaderFocusX.Or(50))
	p.HeaderFocusY = FlexInt(p.HeaderFocusY.Or(50))
	p.UseGlobalTags = true

	it := Item{ID: newID(), Page: &p}
	s.doc.Pages = append(s.doc.Pages, it)
	return it, nil
}

// BeginEdit starts editing the page at idx. The draft starts as a copy of
// the stored page.
func (s *Session) BeginEdit(idx int) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	it := s.doc.Pages[idx]
	if it.Page == nil {
		return ErrNotPage
	}
	draft := *it.Page
	s.editing = idx
	s.draft = &draft
	return nil
}

// Editing returns the index and draft of the page being edited.
func (s *Session) Editing() (int, *Page, bool) {
	if s.draft == nil {
		return -1, nil, false
	}
	return s.editing, s.draft, true
}

// UpdateDraft applies fn to the draft of the page being edited.
func (s *Session) UpdateDraft(fn func(*Page)) error {
	if s.draft == nil {
		return ErrNotEditing
	}
	fn(s.draft)
	return nil
}

// CommitEdit writes the draft's title, subtitle, content and image width
// back to the stored page. Blank content is rejected and leaves both the
// page and the draft untouched.
func (s *Session) CommitEdit() error {
	if s.draft == nil {
		return ErrNotEditing
	}
	if strings.TrimSpace(s.draft.Content) == "" {
		return ErrEmptyContent
	}
	if err := s.checkIndex(s.editing); err != nil {
		return err
	}

	stored := s.doc.Pages[s.editing].Page
	if stored == nil {
		return ErrNotPage
	}
	stored.Title = strings.TrimSpace(s.draft.Title)
	stored.Subtitle = strings.TrimSpace(s.draft.Subtitle)
	stored.Content = s.draft.Content
	stored.ImageWidth = s.draft.ImageWidth

	s.CancelEdit()
	return nil
}

// CancelEdit drops the draft.
func (s *Session) CancelEdit() {
	s.editing = -1
	s.draft = nil
}

func normalizeSection(sec Section) (Section, error) {
	sec.Title = strings.TrimSpace(sec.Title)
	sec.Subtitle = strings.TrimSpace(sec.Subtitle)
	sec.Image = strings.TrimSpace(sec.Image)
	if sec.Title == "" && sec.Subtitle == "" && sec.Image == "" {
		return Section{}, ErrEmptySection
	}
	switch sec.Align {
	case "left", "center", "right":
	default:
		sec.Align = "center"
	}
	return sec, nil
}

// AddSection appends a section. At least one of title, subtitle and image
// must be set; an unknown alignment becomes center.
func (s *Session) AddSection(sec Section) (Item, error) {
	sec, err := normalizeSection(sec)
	if err != nil {
		return Item{}, err
	}
	it := Item{ID: newID(), Section: &sec}
	s.doc.Pages = append(s.doc.Pages, it)
	return it, nil
}

// UpdateSection replaces the section at idx.
func (s *Session) UpdateSection(idx int, sec Section) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	if !s.doc.Pages[idx].IsSection() {
		return ErrNotSection
	}
	sec, err := normalizeSection(sec)
	if err != nil {
		return err
	}
	s.doc.Pages[idx].Section = &sec
	return nil
}

// Remove deletes the item at idx. Removing the page being edited drops its
// draft.
func (s *Session) Remove(idx int) (Item, error) {
	if err := s.checkIndex(idx); err != nil {
		return Item{}, err
	}
	removed := s.doc.Pages[idx]
	s.doc.Pages = append(s.doc.Pages[:idx], s.doc.Pages[idx+1:]...)

	switch {
	case s.draft == nil:
	case s.editing == idx:
		s.CancelEdit()
	case s.editing > idx:
		s.editing--
	}
	return removed, nil
}

// MoveUp swaps the item at idx with its predecessor. It reports whether
// anything moved.
func (s *Session) MoveUp(idx int) bool {
	if idx <= 0 || idx >= len(s.doc.Pages) {
		return false
	}
	s.swap(idx, idx-1)
	return true
}

// MoveDown swaps the item at idx with its successor. It reports whether
// anything moved.
func (s *Session) MoveDown(idx int) bool {
	if idx < 0 || idx >= len(s.doc.Pages)-1 {
		return false
	}
	s.swap(idx, idx+1)
	return true
}

func (s *Session) swap(i, j int) {
	s.doc.Pages[i], s.doc.Pages[j] = s.doc.Pages[j], s.doc.Pages[i]
	if s.draft == nil {
		return
	}
	switch s.editing {
	case i:
		s.editing = j
	case j:
		s.editing = i
	}
}

// AddCustomTheme saves the current custom colors as a named palette and
// returns its identifier.
func (s *Session) AddCustomTheme(name string) (string, error) {
	if len(s.doc.CustomThemes) >= MaxCustomThemes {
		return "", ErrTooManyThemes
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	p := s.doc.CustomColors.Palette()
	p.Name = name
	s.doc.CustomThemes = append(s.doc.CustomThemes, p)
	return theme.SavedIdentifier(len(s.doc.CustomThemes) - 1), nil
}

// OverwriteCustomTheme replaces the colors of a saved palette with the
// current custom colors, keeping its name.
func (s *Session) OverwriteCustomTheme(idx int) error {
	if idx < 0 || idx >= len(s.doc.CustomThemes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	p := s.doc.CustomColors.Palette()
	p.Name = s.doc.CustomThemes[idx].Name
	s.doc.CustomThemes[idx] = p
	return nil
}

// LoadCustomTheme copies a saved palette into the custom colors.
func (s *Session) LoadCustomTheme(idx int) error {
	if idx < 0 || idx >= len(s.doc.CustomThemes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	p := s.doc.CustomThemes[idx]
	s.doc.CustomColors = theme.Colors{
		Bg:         p.Bg,
		Text:       p.Text,
		Em:         p.Em,
		Header:     p.Header,
		Quote1Bg:   p.Quote1Bg,
		Quote1Text: p.Quote1Text,
		Quote2Bg:   p.Quote2Bg,
		Quote2Text: p.Quote2Text,
		TagText:    p.TagText,
		Divider:    p.Divider,
	}
	return nil
}

// RenameCustomTheme renames a saved palette.
func (s *Session) RenameCustomTheme(idx int, name string) error {
	if idx < 0 || idx >= len(s.doc.CustomThemes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.doc.CustomThemes[idx].Name = name
	return nil
}

// DeleteCustomTheme removes a saved palette. Identifiers of later palettes
// shift down by one.
func (s *Session) DeleteCustomTheme(idx int) error {
	if idx < 0 || idx >= len(s.doc.CustomThemes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	s.doc.CustomThemes = append(s.doc.CustomThemes[:idx], s.doc.CustomThemes[idx+1:]...)
	return nil
}

// AddProfile appends a profile.
func (s *Session) AddProfile(p Profile) error {
	if len(s.doc.Profiles) >= MaxProfiles {
		return ErrTooManyProfiles
	}
	switch p.Tag {
	case ProfileTagNone, ProfileTagUser, ProfileTagChar:
	default:
		p.Tag = ProfileTagNone
	}
	s.doc.Profiles = append(s.doc.Profiles, p)
	return nil
}

// RemoveProfile deletes the profile at idx.
func (s *Session) RemoveProfile(idx int) error {
	if idx < 0 || idx >= len(s.doc.Profiles) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	s.doc.Profiles = append(s.doc.Profiles[:idx], s.doc.Profiles[idx+1:]...)
	return nil
}

// AddReplacement appends a find/replace rule.
func (s *Session) AddReplacement(from, to string) error {
	if strings.TrimSpace(from) == "" {
		return ErrEmptyRule
	}
	s.doc.Replacements = append(s.doc.Replacements, markup.Replacement{From: from, To: to})
	return nil
}

// AddTag appends a cover tag.
func (s *Session) AddTag(t Tag) {
	s.doc.Tags = append(s.doc.Tags, t)
}

// RemoveTag deletes the cover tag at idx.
func (s *Session) RemoveTag(idx int) error {
	if idx < 0 || idx >= len(s.doc.Tags) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	s.doc.Tags = append(s.doc.Tags[:idx], s.doc.Tags[idx+1:]...)
	return nil
}
