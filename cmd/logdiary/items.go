package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sweiss/logdiary/internal/document"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Add or edit pages",
}

var pageAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a page",
	RunE:  runPageAdd,
}

var pageEditCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Change fields of an existing page",
	Args:  cobra.ExactArgs(1),
	RunE:  runPageEdit,
}

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add sections",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a section",
	RunE:  runSectionAdd,
}

var rmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Remove a page or section",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var mvCmd = &cobra.Command{
	Use:       "mv <index> up|down",
	Short:     "Move a page or section one position",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"up", "down"},
	RunE:      runMove,
}

var (
	pageTitle     string
	pageSubtitle  string
	pageContent   string
	pageFile      string
	pageWidth     int
	pageCollapsed bool
	pageBgImage   string
	pageHeaderImg string

	sectionTitle    string
	sectionSubtitle string
	sectionImage    string
	sectionAlign    string

	assumeYes bool
)

func init() {
	for _, c := range []*cobra.Command{pageAddCmd, pageEditCmd} {
		c.Flags().StringVar(&pageTitle, "title", "", "page title")
		c.Flags().StringVar(&pageSubtitle, "subtitle", "", "page subtitle")
		c.Flags().StringVar(&pageContent, "content", "", "page content")
		c.Flags().StringVar(&pageFile, "file", "", "read page content from a file")
		c.Flags().IntVar(&pageWidth, "width", 100, "default image width percent")
	}
	pageAddCmd.Flags().BoolVar(&pageCollapsed, "collapsed", false, "render the page folded")
	pageAddCmd.Flags().StringVar(&pageBgImage, "bg-image", "", "background image URL")
	pageAddCmd.Flags().StringVar(&pageHeaderImg, "header-image", "", "header banner image URL")
	pageCmd.AddCommand(pageAddCmd, pageEditCmd)

	sectionAddCmd.Flags().StringVar(&sectionTitle, "title", "", "section title")
	sectionAddCmd.Flags().StringVar(&sectionSubtitle, "subtitle", "", "section subtitle")
	sectionAddCmd.Flags().StringVar(&sectionImage, "image", "", "banner image URL")
	sectionAddCmd.Flags().StringVar(&sectionAlign, "align", "", "text alignment: left, center or right")
	sectionCmd.AddCommand(sectionAddCmd)

	rmCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "remove without asking")
}

func readContent() (string, error) {
	if pageFile == "" {
		return pageContent, nil
	}
	data, err := os.ReadFile(pageFile)
	if err != nil {
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return string(data), nil
}

func runPageAdd(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	content, err := readContent()
	if err != nil {
		return err
	}

	it, err := ws.Session().AddPage(document.Page{
		Title:       pageTitle,
		Subtitle:    pageSubtitle,
		Content:     content,
		ImageWidth:  document.FlexInt(pageWidth),
		Collapsed:   pageCollapsed,
		BgImage:     pageBgImage,
		HeaderImage: pageHeaderImg,
	})
	if err != nil {
		return err
	}
	if err := ws.Save(); err != nil {
		return err
	}

	numbers := document.PageNumbers(ws.Document().Pages)
	idx := len(numbers) - 1
	fmt.Fprintf(cmd.OutOrStdout(), "Added page %d (#%d, id %s)\n", idx, numbers[idx], it.ID)
	return nil
}

func runPageEdit(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	content, err := readContent()
	if err != nil {
		return err
	}

	s := ws.Session()
	if err := s.BeginEdit(idx); err != nil {
		return err
	}

	flags := cmd.Flags()
	err = s.UpdateDraft(func(p *document.Page) {
		if flags.Changed("title") {
			p.Title = pageTitle
		}
		if flags.Changed("subtitle") {
			p.Subtitle = pageSubtitle
		}
		if flags.Changed("content") || flags.Changed("file") {
			p.Content = content
		}
		if flags.Changed("width") {
			p.ImageWidth = document.FlexInt(pageWidth)
		}
	})
	if err != nil {
		s.CancelEdit()
		return err
	}
	if err := s.CommitEdit(); err != nil {
		s.CancelEdit()
		return err
	}
	if err := ws.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated page %d\n", idx)
	return nil
}

func runSectionAdd(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	it, err := ws.Session().AddSection(document.Section{
		Title:    sectionTitle,
		Subtitle: sectionSubtitle,
		Image:    sectionImage,
		Align:    sectionAlign,
	})
	if err != nil {
		return err
	}
	if err := ws.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added section %d (id %s)\n", len(ws.Document().Pages)-1, it.ID)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	interactive := !nonInteractive && !assumeYes
	removed, err := ws.RemoveItem(idx, interactive, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed item %d\n", idx)
	}
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	var up bool
	switch args[1] {
	case "up":
		up = true
	case "down":
	default:
		return fmt.Errorf("direction must be up or down, got %q", args[1])
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	moved, err := ws.MoveItem(idx, up)
	if err != nil {
		return err
	}
	if !moved {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to move.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved item %d %s\n", idx, args[1])
	return nil
}
