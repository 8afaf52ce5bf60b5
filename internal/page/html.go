package page

import (
	"bufio"
	"fmt"
	"io"

	"tasksync/internal/sanitize"
)

// WriteHTML writes the view as an HTML fragment. Row controls carry
// data-task-id attributes; no inline handlers are emitted.
func (v View) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<input type="text" id="%s" name="title" placeholder="Add a new task..." value="%s">`+"\n",
		v.Input.ID, sanitize.Escape(v.Input.Value))

	fmt.Fprintf(bw, `<div id="%s" class="%s">`+"\n", v.List.ID, classes("tasks-list", v.List.Hidden))
	for _, r := range v.List.Rows {
		writeRow(bw, r)
	}
	fmt.Fprint(bw, "</div>\n")

	fmt.Fprintf(bw, `<div id="%s" class="%s">No tasks yet. Add one above!</div>`+"\n",
		v.EmptyState.ID, classes("empty-state", v.EmptyState.Hidden))

	fmt.Fprintf(bw, `<span id="%s">%s</span>`+"\n", v.Total.ID, sanitize.Escape(v.Total.Content))
	fmt.Fprintf(bw, `<span id="%s">%s</span>`+"\n", v.Completed.ID, sanitize.Escape(v.Completed.Content))

	return bw.Flush()
}

func writeRow(w io.Writer, r Row) {
	id := sanitize.Escape(r.TaskID)
	class := "task-item"
	checked := ""
	if r.Completed {
		class += " completed"
		checked = " checked"
	}
	fmt.Fprintf(w, `<div class="%s" data-task-id="%s">`+"\n", class, id)
	fmt.Fprintf(w, `  <input type="checkbox" class="task-checkbox" data-task-id="%s"%s>`+"\n", id, checked)
	fmt.Fprintf(w, `  <span class="task-title">%s</span>`+"\n", r.TitleHTML)
	fmt.Fprintf(w, `  <button type="button" class="delete-btn" data-task-id="%s">Delete</button>`+"\n", id)
	fmt.Fprint(w, "</div>\n")
}

func classes(base string, hidden bool) string {
	if hidden {
		return base + " hidden"
	}
	return base
}
