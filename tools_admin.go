// tools_admin.go defines the housekeeping tool types: markdown export,
// sequential-thinking import, the auto-execute toggle, working-directory
// management and duplicate cleanup.
package main

// ExportMarkdownArgs is the input for export_to_markdown. No arguments
// needed.
type ExportMarkdownArgs struct{}

// ExportMarkdownOutput carries the rendered report.
type ExportMarkdownOutput struct {
	Markdown string `json:"markdown"`
}

// ImportThoughtsArgs is the input for import_from_sequential_thinking.
type ImportThoughtsArgs struct {
	SequentialThoughtData SequentialThoughtData `json:"sequentialThoughtData" jsonschema:"Datos del MCP de Pensamiento Secuencial"`
}

// ImportThoughtsOutput reports what the import created and what it
// rejected as duplicates.
type ImportThoughtsOutput struct {
	Imported   int     `json:"imported"`
	Duplicates int     `json:"duplicates"`
	Tasks      []*Task `json:"tasks"`
}

// ToggleAutoExecuteArgs is the input for toggle_auto_execute.
type ToggleAutoExecuteArgs struct {
	Enabled bool `json:"enabled" jsonschema:"true para habilitar, false para deshabilitar"`
}

// ToggleAutoExecuteOutput echoes the stored flag.
type ToggleAutoExecuteOutput struct {
	Enabled bool `json:"enabled"`
}

// SetWorkingDirectoryArgs is the input for set_working_directory.
type SetWorkingDirectoryArgs struct {
	Directory string `json:"directory" jsonschema:"Ruta del directorio donde guardar las tareas"`
}

// SetWorkingDirectoryOutput confirms the new roots.
type SetWorkingDirectoryOutput struct {
	Directory string `json:"directory"`
	TasksFile string `json:"tasksFile"`
}

// GetCurrentDirectoryArgs is the input for get_current_directory. No
// arguments needed.
type GetCurrentDirectoryArgs struct{}

// GetCurrentDirectoryOutput describes where state currently lives.
type GetCurrentDirectoryOutput struct {
	Directory  string `json:"directory"`
	TasksFile  string `json:"tasksFile"`
	TotalTasks int    `json:"totalTasks"`
}

// RemoveDuplicateTasksArgs is the input for remove_duplicate_tasks. No
// arguments needed.
type RemoveDuplicateTasksArgs struct{}

// RemoveDuplicateTasksOutput reports the cleanup counts.
type RemoveDuplicateTasksOutput struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}
