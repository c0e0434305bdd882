package markup

import "strings"

// Replacement is a literal find/replace rule applied before rendering.
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ApplyReplacements runs every rule in order, replacing all occurrences.
// Rules whose From is blank are skipped. Matching is literal, never a pattern.
func ApplyReplacements(text string, rules []Replacement) string {
	for _, rule := range rules {
		if strings.TrimSpace(rule.From) == "" {
			continue
		}
		text = strings.ReplaceAll(text, rule.From, rule.To)
	}
	return text
}
