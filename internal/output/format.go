// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasksync/internal/page"
	"tasksync/internal/stats"
)

// EmptyMessage is printed when the list has no tasks.
const EmptyMessage = "No tasks yet. Add one above!"

// FormatRow formats one rendered task.
// Format: "{ID:>4}  [x] {TITLE}\n" (4-wide right-aligned id, two spaces, checkbox, title)
func FormatRow(w io.Writer, row page.Row) {
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4s  %s %s\n", row.TaskID, box, NormalizeTitle(row.Title))
}

// FormatStats formats the counter line.
// Format: "Total: N tasks | Completed: N\n"
func FormatStats(w io.Writer, s stats.Stats) {
	fmt.Fprintf(w, "%s | %s\n", s.TotalText(), s.CompletedText())
}

// NormalizeTitle normalizes a task title for terminal display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
