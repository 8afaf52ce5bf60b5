package service

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskID is the opaque identifier assigned by the store.
// The wire form may be a JSON number or a JSON string; the text is kept verbatim.
type TaskID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid task id %s", data)
	}
	*id = TaskID(n.String())
	return nil
}

func (id TaskID) String() string { return string(id) }

// Task represents a single task record.
type Task struct {
	ID        TaskID `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
