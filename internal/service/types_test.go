package service_test

import (
	"encoding/json"
	"testing"

	"tasksync/internal/service"
)

func TestTask_DecodeNumericID(t *testing.T) {
	var tasks []service.Task
	if err := json.Unmarshal([]byte(`[{"id": 42, "title": "Buy milk", "completed": true}]`), &tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != "42" {
		t.Errorf("expected ID '42', got %q", tasks[0].ID)
	}
	if !tasks[0].Completed {
		t.Error("expected task to be completed")
	}
}

func TestTask_DecodeStringID(t *testing.T) {
	var task service.Task
	if err := json.Unmarshal([]byte(`{"id": "a-1", "title": "x", "completed": false}`), &task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "a-1" {
		t.Errorf("expected ID 'a-1', got %q", task.ID)
	}
}

func TestTask_DecodeInvalidID(t *testing.T) {
	var task service.Task
	if err := json.Unmarshal([]byte(`{"id": true, "title": "x"}`), &task); err == nil {
		t.Fatal("expected error for boolean id")
	}
}
