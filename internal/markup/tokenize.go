package markup

import (
	"regexp"
	"strings"
	"unicode"
)

// SpanKind identifies what a Span renders as.
type SpanKind int

const (
	// SpanText is literal author text, passed through unchanged.
	SpanText SpanKind = iota
	// SpanDouble is a double-quoted run.
	SpanDouble
	// SpanSingle is a standalone single-quoted run.
	SpanSingle
	// SpanNestedSingle is a straight single-quoted run inside a double-quoted run.
	SpanNestedSingle
	// SpanItalic is an *asterisk* run.
	SpanItalic
	// SpanFootnoteRef is the superscript marker left where a footnote was.
	SpanFootnoteRef
	// SpanUnit is a protected feet/inches expression such as 5'10".
	SpanUnit
)

func (k SpanKind) String() string {
	switch k {
	case SpanText:
		return "text"
	case SpanDouble:
		return "double"
	case SpanSingle:
		return "single"
	case SpanNestedSingle:
		return "nested-single"
	case SpanItalic:
		return "italic"
	case SpanFootnoteRef:
		return "footnote-ref"
	case SpanUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Span is one typed piece of a tokenized paragraph.
type Span struct {
	Kind SpanKind
	// Text holds the literal for SpanText and SpanUnit.
	Text string
	// Open and Close are the quote glyphs emitted around quoted runs.
	Open, Close string
	// Marker is the 1-based footnote ordinal for SpanFootnoteRef.
	Marker   int
	Children []Span
}

// Footnote is a note collected from a [FN:word]note[/FN] directive.
type Footnote struct {
	Marker int
	Note   []Span
}

// Paragraph is the tokenized form of one line (or one block).
type Paragraph struct {
	Spans []Span
	Notes []Footnote
}

// Mode selects between the per-line pass and the whole-block pass. The two
// passes resolve constructs in a different order and differ in a few
// boundary rules.
type Mode int

const (
	// LineMode handles one content line: footnotes are pulled out first,
	// italics apply inside quoted runs too.
	LineMode Mode = iota
	// BlockMode handles a whole multi-line block: units are protected first,
	// italics and footnotes only apply outside quoted runs.
	BlockMode
)

const (
	leftDouble  = '“'
	rightDouble = '”'
	leftSingle  = '‘'
	rightSingle = '’'
	prime       = '′'
	doublePrime = '″'
)

// Tokenize splits text into typed spans. rounded selects curly glyphs for
// straight-quoted input.
func Tokenize(text string, m Mode, rounded bool) Paragraph {
	t := &tokenizer{mode: m, rounded: rounded}
	return t.run(text)
}

// atom is either a single rune of source text or an already resolved span.
// Resolved spans are opaque to later passes and never count as word
// characters.
type atom struct {
	r rune
	n *node
}

type node struct {
	kind   SpanKind
	text   string
	open   string
	close  string
	marker int
	body   seq
}

type seq []atom

func atomsOf(s string) seq {
	q := make(seq, 0, len(s))
	for _, r := range s {
		q = append(q, atom{r: r})
	}
	return q
}

func (q seq) is(i int, r rune) bool {
	return i >= 0 && i < len(q) && q[i].n == nil && q[i].r == r
}

func (q seq) isAny(i int, rs ...rune) bool {
	for _, r := range rs {
		if q.is(i, r) {
			return true
		}
	}
	return false
}

func (q seq) hasPrefix(i int, lit string) bool {
	for _, r := range lit {
		if !q.is(i, r) {
			return false
		}
		i++
	}
	return true
}

func (q seq) index(from int, r rune) int {
	for j := from; j < len(q); j++ {
		if q.is(j, r) {
			return j
		}
	}
	return -1
}

func (q seq) hasNodes() bool {
	for _, a := range q {
		if a.n != nil {
			return true
		}
	}
	return false
}

// literal returns the source text of a node-free run.
func (q seq) literal() string {
	var b strings.Builder
	for _, a := range q {
		if a.n == nil {
			b.WriteRune(a.r)
		}
	}
	return b.String()
}

// trim drops surrounding whitespace runes.
func (q seq) trim() seq {
	start, end := 0, len(q)
	for start < end && q[start].n == nil && unicode.IsSpace(q[start].r) {
		start++
	}
	for end > start && q[end-1].n == nil && unicode.IsSpace(q[end-1].r) {
		end--
	}
	return q[start:end]
}

func isDigit(a atom) bool {
	return a.n == nil && a.r >= '0' && a.r <= '9'
}

// isWord matches ASCII letters, digits and underscore only. Hangul and other
// scripts count as boundaries.
func isWord(a atom) bool {
	if a.n != nil {
		return false
	}
	r := a.r
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isLineBreak matches the characters a "." never crosses.
func isLineBreak(a atom) bool {
	if a.n != nil {
		return false
	}
	switch a.r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func nodeAtom(n *node) atom {
	return atom{n: n}
}

type tokenizer struct {
	mode    Mode
	rounded bool
	notes   []Footnote
}

func (t *tokenizer) run(text string) Paragraph {
	q := atomsOf(text)

	if t.mode == LineMode {
		q = t.footnotes(q)
		q = curlyDoubles(q, t.doubleGlyphs(true))
		q = curlySingles(q, true)
		q = units(q)
		q = straightDoubles(q, t.doubleGlyphs(false), t.singleGlyphs())
		q = straightSingles(q, SpanSingle, t.singleGlyphs())
		q = italicize(q, true)
	} else {
		q = units(q)
		q = curlyDoubles(q, t.doubleGlyphs(true))
		q = curlySingles(q, false)
		q = straightDoubles(q, t.doubleGlyphs(false), t.singleGlyphs())
		q = straightSingles(q, SpanSingle, t.singleGlyphs())
		q = italicize(q, false)
		q = t.footnotes(q)
	}

	p := Paragraph{Spans: toSpans(q)}
	p.Notes = t.notes
	return p
}

type glyphs struct {
	open, close string
}

var (
	curlyDouble    = glyphs{string(leftDouble), string(rightDouble)}
	curlySingle    = glyphs{string(leftSingle), string(rightSingle)}
	straightDouble = glyphs{`"`, `"`}
	straightSingle = glyphs{`'`, `'`}
)

// doubleGlyphs picks the glyphs for a double-quoted run. Curly input keeps
// curly glyphs in line mode regardless of the rounded setting; the block pass
// straightens it when rounded quotes are off.
func (t *tokenizer) doubleGlyphs(curlyInput bool) glyphs {
	if curlyInput {
		if t.mode == BlockMode && !t.rounded {
			return straightDouble
		}
		return curlyDouble
	}
	if t.rounded {
		return curlyDouble
	}
	return straightDouble
}

func (t *tokenizer) singleGlyphs() glyphs {
	if t.rounded {
		return curlySingle
	}
	return straightSingle
}

// footnotes resolves [FN:word]note[/FN]. The word stays inline followed by a
// marker; the note is collected. Markers count from 1 per paragraph.
func (t *tokenizer) footnotes(q seq) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		word, note, end, ok := matchFootnote(q, i)
		if !ok {
			out = append(out, q[i])
			i++
			continue
		}
		marker := len(t.notes) + 1
		t.notes = append(t.notes, Footnote{Marker: marker, Note: toSpans(note.trim())})
		out = append(out, word...)
		out = append(out, nodeAtom(&node{kind: SpanFootnoteRef, marker: marker}))
		i = end
	}
	return out
}

func matchFootnote(q seq, i int) (word, note seq, end int, ok bool) {
	if !q.hasPrefix(i, "[FN:") {
		return nil, nil, 0, false
	}
	wordStart := i + 4
	wordEnd := q.index(wordStart, ']')
	if wordEnd <= wordStart {
		return nil, nil, 0, false
	}
	noteStart := wordEnd + 1
	noteEnd := q.index(noteStart, '[')
	if noteEnd < 0 || !q.hasPrefix(noteEnd, "[/FN]") {
		return nil, nil, 0, false
	}
	return q[wordStart:wordEnd], q[noteStart:noteEnd], noteEnd + 5, true
}

// units protects feet/inches expressions. Full 5'10" forms are matched over
// the whole text before bare 5' forms.
func units(q seq) seq {
	q = protect(q, matchFeetInches)
	return protect(q, matchFeet)
}

func protect(q seq, match func(seq, int) int) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		if end := match(q, i); end > i {
			out = append(out, nodeAtom(&node{kind: SpanUnit, text: q[i:end].literal()}))
			i = end
			continue
		}
		out = append(out, q[i])
		i++
	}
	return out
}

func skipDigits(q seq, i int) int {
	for i < len(q) && isDigit(q[i]) {
		i++
	}
	return i
}

func skipSpaces(q seq, i int) int {
	for i < len(q) && q[i].n == nil && unicode.IsSpace(q[i].r) {
		i++
	}
	return i
}

// matchFeet matches \d+\s*['′] at i and returns the end, or -1.
func matchFeet(q seq, i int) int {
	j := skipDigits(q, i)
	if j == i {
		return -1
	}
	j = skipSpaces(q, j)
	if !q.isAny(j, '\'', prime) {
		return -1
	}
	return j + 1
}

// matchFeetInches matches \d+\s*['′]\s*\d+\s*["″] at i and returns the end, or -1.
func matchFeetInches(q seq, i int) int {
	j := matchFeet(q, i)
	if j < 0 {
		return -1
	}
	j = skipSpaces(q, j)
	k := skipDigits(q, j)
	if k == j {
		return -1
	}
	k = skipSpaces(q, k)
	if !q.isAny(k, '"', doublePrime) {
		return -1
	}
	return k + 1
}

// curlyDoubles resolves “…” runs. Curly singles inside are resolved first
// and keep the padded single style.
func curlyDoubles(q seq, g glyphs) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		if q.is(i, leftDouble) {
			if j := q.index(i+1, rightDouble); j >= 0 {
				body := curlySingles(q[i+1:j], false)
				out = append(out, nodeAtom(&node{kind: SpanDouble, open: g.open, close: g.close, body: body}))
				i = j + 1
				continue
			}
		}
		out = append(out, q[i])
		i++
	}
	return out
}

// curlySingles resolves ‘…’ runs. With boundary set, a closing ’ only
// counts when followed by a non-word character or the end, so apostrophes
// inside words are skipped over.
func curlySingles(q seq, boundary bool) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		if q.is(i, leftSingle) {
			if j := findClose(q, i+1, rightSingle, 0, boundary); j >= 0 {
				out = append(out, nodeAtom(&node{kind: SpanSingle, open: curlySingle.open, close: curlySingle.close, body: cloneSeq(q[i+1 : j])}))
				i = j + 1
				continue
			}
		}
		out = append(out, q[i])
		i++
	}
	return out
}

// findClose finds the nearest closing rune on the same line, at least
// minBody atoms after from. It returns -1 when there is none.
func findClose(q seq, from int, closing rune, minBody int, boundary bool) int {
	for j := from; j < len(q); j++ {
		if j-from >= minBody && q.is(j, closing) {
			if !boundary || j+1 == len(q) || !isWord(q[j+1]) {
				return j
			}
		}
		if isLineBreak(q[j]) {
			return -1
		}
	}
	return -1
}

var unitContent = regexp.MustCompile(`^\d+['′]\s*\d*["″]?$`)

// straightDoubles resolves "…" runs. A pair is left literal when the opening
// quote follows a digit or when the whole body is itself a unit expression.
func straightDoubles(q seq, g, nested glyphs) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		if q.is(i, '"') {
			if j := q.index(i+1, '"'); j >= 0 {
				body := q[i+1 : j]
				if (i > 0 && isDigit(q[i-1])) || isUnitBody(body) {
					out = append(out, q[i:j+1]...)
					i = j + 1
					continue
				}
				inner := straightSingles(body, SpanNestedSingle, nested)
				out = append(out, nodeAtom(&node{kind: SpanDouble, open: g.open, close: g.close, body: inner}))
				i = j + 1
				continue
			}
		}
		out = append(out, q[i])
		i++
	}
	return out
}

func isUnitBody(body seq) bool {
	if body.hasNodes() {
		return false
	}
	return unitContent.MatchString(strings.TrimSpace(body.literal()))
}

// straightSingles resolves '…' runs. The opening quote must start the run or
// follow a non-word character, and the closing quote must end the run or
// precede one, so contractions like don't are left alone.
func straightSingles(q seq, kind SpanKind, g glyphs) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		if q.is(i, '\'') && (i == 0 || !isWord(q[i-1])) {
			if j := findClose(q, i+1, '\'', 1, true); j >= 0 {
				out = append(out, nodeAtom(&node{kind: kind, open: g.open, close: g.close, body: cloneSeq(q[i+1 : j])}))
				i = j + 1
				continue
			}
		}
		out = append(out, q[i])
		i++
	}
	return out
}

// italicize resolves *…* runs. With deep set, runs inside quoted and
// italic bodies are resolved as well.
func italicize(q seq, deep bool) seq {
	out := make(seq, 0, len(q))
	for i := 0; i < len(q); {
		if q.is(i, '*') {
			if j := q.index(i+1, '*'); j > i+1 {
				out = append(out, nodeAtom(&node{kind: SpanItalic, body: cloneSeq(q[i+1 : j])}))
				i = j + 1
				continue
			}
		}
		out = append(out, q[i])
		i++
	}
	if deep {
		for _, a := range out {
			if a.n != nil && a.n.body != nil {
				a.n.body = italicize(a.n.body, true)
			}
		}
	}
	return out
}

func cloneSeq(q seq) seq {
	c := make(seq, len(q))
	copy(c, q)
	return c
}

// toSpans converts resolved atoms into spans, merging runs of literal runes.
func toSpans(q seq) []Span {
	var (
		spans []Span
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: text.String()})
			text.Reset()
		}
	}
	for _, a := range q {
		if a.n == nil {
			text.WriteRune(a.r)
			continue
		}
		flush()
		spans = append(spans, a.n.span())
	}
	flush()
	return spans
}

func (n *node) span() Span {
	s := Span{Kind: n.kind, Text: n.text, Open: n.open, Close: n.close, Marker: n.marker}
	if n.body != nil {
		s.Children = toSpans(n.body)
	}
	return s
}

// PlainText flattens spans back into their visible text, glyphs included.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case SpanText, SpanUnit:
			b.WriteString(s.Text)
		case SpanFootnoteRef:
			b.WriteString(strings.Repeat("*", s.Marker))
		default:
			b.WriteString(s.Open)
			b.WriteString(PlainText(s.Children))
			b.WriteString(s.Close)
		}
	}
	return b.String()
}
