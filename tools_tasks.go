// tools_tasks.go defines the CRUD tool types: add_task, list_tasks,
// update_task and delete_task.
package main

// AddTaskArgs is the input for the add_task tool.
type AddTaskArgs struct {
	Title       string `json:"title" jsonschema:"Título de la tarea"`
	Description string `json:"description" jsonschema:"Descripción detallada de la tarea"`
}

// AddTaskOutput carries the created task, or the existing near-duplicate
// that blocked creation.
type AddTaskOutput struct {
	Task      *Task `json:"task,omitempty"`
	Duplicate bool  `json:"duplicate,omitempty"`
	Existing  *Task `json:"existing,omitempty"`
}

// ListTasksArgs is the input for the list_tasks tool.
type ListTasksArgs struct {
	// Filter maps field names (id, title, description, status) to exact
	// values. All entries must match. Empty returns every task.
	Filter map[string]string `json:"filter,omitempty" jsonschema:"Filtros para aplicar (status, etc.)"`
}

// ListTasksOutput lists the matching tasks sorted by numeric ID.
type ListTasksOutput struct {
	Count int     `json:"count"`
	Tasks []*Task `json:"tasks"`
}

// UpdateTaskArgs is the input for the update_task tool. Absent update
// fields leave the task untouched.
type UpdateTaskArgs struct {
	TaskID  string     `json:"taskId" jsonschema:"ID de la tarea a actualizar"`
	Updates TaskUpdate `json:"updates" jsonschema:"Campos a actualizar (status, etc.)"`
}

// UpdateTaskOutput returns the task after the merge.
type UpdateTaskOutput struct {
	Task *Task `json:"task"`
}

// DeleteTaskArgs is the input for the delete_task tool.
type DeleteTaskArgs struct {
	TaskID string `json:"taskId" jsonschema:"ID de la tarea a eliminar"`
}

// DeleteTaskOutput confirms the removal.
type DeleteTaskOutput struct {
	Deleted bool `json:"deleted"`
}
