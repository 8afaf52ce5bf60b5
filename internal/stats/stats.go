// Package stats derives aggregate counts from a task slice.
package stats

import (
	"fmt"
	"math"

	"tasksync/internal/page"
	"tasksync/internal/service"
)

// Stats holds the counts shown under the list.
type Stats struct {
	Total     int
	Completed int
}

// Compute counts all tasks and completed tasks.
func Compute(tasks []service.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// Pending returns the number of tasks not yet completed.
func (s Stats) Pending() int {
	return s.Total - s.Completed
}

// CompletionRate returns the completed share as a percentage rounded to one
// decimal. It is 0 when there are no tasks.
func (s Stats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return math.Round(float64(s.Completed)/float64(s.Total)*1000) / 10
}

// TotalText is the display text of the total counter.
func (s Stats) TotalText() string {
	return fmt.Sprintf("Total: %d tasks", s.Total)
}

// CompletedText is the display text of the completed counter.
func (s Stats) CompletedText() string {
	return fmt.Sprintf("Completed: %d", s.Completed)
}

// Apply writes the counters into the page.
func Apply(doc *page.Document, s Stats) {
	doc.Update(func(v *page.View) {
		v.Total.Content = s.TotalText()
		v.Completed.Content = s.CompletedText()
	})
}
