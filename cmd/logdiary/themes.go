package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sweiss/logdiary/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in and saved palettes",
	RunE:  runThemes,
}

var (
	themeNameStyle    = lipgloss.NewStyle().Width(18)
	themeCurrentStyle = lipgloss.NewStyle().Width(18).Bold(true).Foreground(lipgloss.Color("#5f9fb0"))
)

func swatch(hex string) string {
	if hex == "" {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func writePalette(w io.Writer, id string, p theme.Palette, current bool) {
	name := themeNameStyle.Render(id)
	if current {
		name = themeCurrentStyle.Render(id + " *")
	}

	var b strings.Builder
	for _, c := range []string{p.Bg, p.Text, p.Em, p.Header, p.Quote1Bg, p.Quote2Bg, p.TagText, p.Divider} {
		b.WriteString(swatch(c))
	}
	fmt.Fprintf(w, "%s %s\n", name, b.String())
}

func runThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Saved palettes and the current theme are shown only inside a workspace.
	var current string
	var saved []theme.Palette
	if ws, err := openWorkspace(); err == nil {
		current = ws.Document().GlobalTheme
		saved = ws.Document().CustomThemes
	}

	fmt.Fprintln(out, "Built-in:")
	for _, name := range theme.BuiltinNames() {
		p, _ := theme.Builtin(name)
		writePalette(out, name, p, name == current)
	}

	if len(saved) > 0 {
		fmt.Fprintln(out, "\nSaved:")
		for i, p := range saved {
			id := theme.SavedIdentifier(i)
			label := id
			if p.Name != "" {
				label += " " + p.Name
			}
			writePalette(out, label, p, id == current)
		}
	}
	return nil
}
