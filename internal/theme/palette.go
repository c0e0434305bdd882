// Package theme resolves theme identifiers into concrete color palettes.
package theme

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/maruel/natural"
)

// Palette is the fixed set of CSS colors applied to a rendered document.
type Palette struct {
	Name       string `json:"name,omitempty"`
	Bg         string `json:"bg"`
	Text       string `json:"text"`
	Em         string `json:"em"`
	Header     string `json:"header"`
	HeaderText string `json:"headerText"`
	Line       string `json:"line"`
	Quote1Bg   string `json:"quote1Bg"`
	Quote1Text string `json:"quote1Text"`
	Quote2Bg   string `json:"quote2Bg"`
	Quote2Text string `json:"quote2Text"`
	TagText    string `json:"tagText"`
	Divider    string `json:"divider"`
}

// RGB is a decoded hex color.
type RGB struct {
	R, G, B int
}

// RGBA formats the color as a CSS rgba() value with the given alpha.
func (c RGB) RGBA(alpha string) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}

var hexColor = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// fallbackRGB is used for anything that is not a six digit hex color.
var fallbackRGB = RGB{R: 236, G: 236, B: 237}

// HexToRGB decodes "#rrggbb" (the leading # is optional). Short forms,
// named colors and malformed input decode to a neutral light gray.
func HexToRGB(hex string) RGB {
	m := hexColor.FindStringSubmatch(hex)
	if m == nil {
		return fallbackRGB
	}
	var c [3]int
	for i := range c {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return fallbackRGB
		}
		c[i] = int(v)
	}
	return RGB{R: c[0], G: c[1], B: c[2]}
}

// Builtin returns the named built-in palette.
func Builtin(name string) (Palette, bool) {
	p, ok := builtins[name]
	if ok {
		p.Name = name
	}
	return p, ok
}

// BuiltinNames lists the built-in palette names in natural order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}
