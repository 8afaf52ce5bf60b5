package restapi

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tasksync/internal/service"
)

// taskListSchemaJSON describes the list response. Extra fields sent by
// the server (description, category, timestamps) are allowed and ignored.
const taskListSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "completed"],
    "properties": {
      "id": {"type": ["integer", "string"]},
      "title": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var taskListSchema = jsonschema.MustCompileString("tasks.schema.json", taskListSchemaJSON)

// decodeTaskList validates body against the list schema and decodes it.
func decodeTaskList(body []byte) ([]service.Task, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := taskListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}

	tasks := []service.Task{}
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return tasks, nil
}
