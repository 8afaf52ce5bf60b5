package stats

import (
	"testing"

	"tasksync/internal/page"
	"tasksync/internal/service"
)

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	if s != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}
	if s.CompletionRate() != 0 {
		t.Errorf("expected rate 0, got %v", s.CompletionRate())
	}
}

func TestCompute_Mixed(t *testing.T) {
	s := Compute([]service.Task{
		{ID: "1", Completed: true},
		{ID: "2", Completed: false},
		{ID: "3", Completed: true},
	})
	if s.Total != 3 || s.Completed != 2 {
		t.Errorf("expected {3 2}, got %+v", s)
	}
	if s.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", s.Pending())
	}
	if s.CompletionRate() != 66.7 {
		t.Errorf("expected rate 66.7, got %v", s.CompletionRate())
	}
}

func TestApply_WritesCounters(t *testing.T) {
	doc := page.New()
	Apply(doc, Stats{Total: 3, Completed: 2})

	v := doc.Snapshot()
	if v.Total.Content != "Total: 3 tasks" {
		t.Errorf("unexpected total text %q", v.Total.Content)
	}
	if v.Completed.Content != "Completed: 2" {
		t.Errorf("unexpected completed text %q", v.Completed.Content)
	}
}
