// Output rendering for item commands: JSON or a styled text table.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/samples/pkg/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// padRight pads s with spaces to the given display width. Width is measured
// in terminal cells, so Hangul and other wide runes count double.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// writeItemTable prints items as aligned ID / TITLE / DESCRIPTION columns.
func writeItemTable(w io.Writer, list []types.Item) {
	if len(list) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No items."))
		return
	}

	idWidth, titleWidth := len("ID"), len("TITLE")
	for _, it := range list {
		idWidth = max(idWidth, len(strconv.Itoa(it.ID)))
		titleWidth = max(titleWidth, lipgloss.Width(it.Title))
	}

	fmt.Fprintf(w, "%s  %s  %s\n",
		headerStyle.Render(padRight("ID", idWidth)),
		headerStyle.Render(padRight("TITLE", titleWidth)),
		headerStyle.Render("DESCRIPTION"),
	)
	for _, it := range list {
		fmt.Fprintf(w, "%s  %s  %s\n",
			idStyle.Render(padRight(strconv.Itoa(it.ID), idWidth)),
			padRight(it.Title, titleWidth),
			it.Description,
		)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d item(s)", len(list))))
}

func writeItemDetail(w io.Writer, it types.Item) {
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("ID:"), it.ID)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Title:"), it.Title)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Description:"), it.Description)
}
