// tools_execute.go defines the execution tool types: execute_task,
// execute_pending_tasks and get_execution_stats.
package main

// ExecuteTaskArgs is the input for the execute_task tool.
type ExecuteTaskArgs struct {
	TaskID string `json:"taskId" jsonschema:"ID de la tarea a ejecutar"`
}

// ExecuteTaskOutput carries the attempt record stored on the task.
type ExecuteTaskOutput struct {
	TaskID string           `json:"taskId"`
	Result *ExecutionResult `json:"result"`
}

// ExecutePendingTasksArgs is the input for execute_pending_tasks. No
// arguments needed.
type ExecutePendingTasksArgs struct{}

// ExecutePendingTasksOutput collects one independent outcome per pending
// task; failures never abort the batch.
type ExecutePendingTasksOutput struct {
	Results []BatchResult `json:"results"`
}

// GetExecutionStatsArgs is the input for get_execution_stats. No arguments
// needed.
type GetExecutionStatsArgs struct{}

// GetExecutionStatsOutput aggregates task counts per status.
type GetExecutionStatsOutput struct {
	Stats ExecutionStats `json:"stats"`
}
