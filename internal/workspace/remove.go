package workspace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/sweiss/logdiary/internal/document"
)

// confirmRemoval asks whether to remove the item. The default is no.
func confirmRemoval(it document.Item, idx int, in io.Reader, out io.Writer) bool {
	reader := bufio.NewReader(in)

	title := it.Title()
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(out, "Remove %s %d: '%s'?\n", it.Type(), idx, title)

	for {
		fmt.Fprint(out, "Confirm [y/N]: ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "" {
			return false
		}

		switch input {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(out, "Invalid choice. Please enter y or n.")
	}
}

// RemoveItem removes the item at idx and saves the document. Unless
// interactive is false the user confirms first. It reports whether the
// item was removed.
func (w *Workspace) RemoveItem(idx int, interactive bool, in io.Reader, out io.Writer) (bool, error) {
	items := w.Document().Pages
	if idx < 0 || idx >= len(items) {
		return false, fmt.Errorf("%w: %d", document.ErrIndexOutOfRange, idx)
	}

	if interactive && !confirmRemoval(items[idx], idx, in, out) {
		fmt.Fprintln(out, "Skipped.")
		return false, nil
	}

	removed, err := w.session.Remove(idx)
	if err != nil {
		return false, err
	}
	if err := w.Save(); err != nil {
		return false, err
	}

	w.log.Info("Removed item", zap.String("type", string(removed.Type())), zap.String("title", removed.Title()))
	return true, nil
}

// MoveItem moves the item at idx one position up or down and saves the
// document. Moving past either end is a no-op.
func (w *Workspace) MoveItem(idx int, up bool) (bool, error) {
	var moved bool
	if up {
		moved = w.session.MoveUp(idx)
	} else {
		moved = w.session.MoveDown(idx)
	}
	if !moved {
		return false, nil
	}
	return true, w.Save()
}
