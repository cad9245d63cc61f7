// task.go defines the persisted task representation shared by the store,
// the executor and the MCP tool surface.
package main

import "time"

// Task status values. Transitions go through the Manager only.
//
// Lifecycle: pending -> in-progress -> completed | failed
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Task is one unit of work in the registry. The JSON field names are the
// on-disk format of tasks.json and must stay stable across releases.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	// Terminal stamps. Exactly one of these is set once the task reaches a
	// terminal status; both stay nil while the task is pending/in-progress.
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	FailedAt    *time.Time `json:"failedAt,omitempty"`

	// ExecutionResult records the most recent execution attempt. It is
	// overwritten on every attempt, not accumulated as history.
	ExecutionResult *ExecutionResult `json:"executionResult,omitempty"`

	// ExecutionInstructions is the advisory payload computed once at
	// creation time. It is never re-derived afterwards.
	ExecutionInstructions *ExecutionInstructions `json:"executionInstructions,omitempty"`
}

// ExecutionResult is the outcome of a single execution attempt.
type ExecutionResult struct {
	AttemptID  string    `json:"attemptId"`
	Success    bool      `json:"success"`
	Result     string    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	ExecutedAt time.Time `json:"executedAt"`
}

// ExecutionInstructions tells a calling agent how it could carry out the
// task itself: the detected action type, ordered instruction strings, the
// IDE tools that fit, and the working directory the task is scoped to.
type ExecutionInstructions struct {
	TaskID               string   `json:"taskId"`
	ActionType           string   `json:"actionType"`
	SpecificInstructions []string `json:"specificInstructions"`
	SuggestedTools       []string `json:"suggestedTools"`
	WorkingDirectory     string   `json:"workingDirectory"`
}

// TaskUpdate is a partial update merged into an existing task: present
// (non-nil) fields overwrite, absent fields are left untouched.
type TaskUpdate struct {
	Title           *string          `json:"title,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Status          *string          `json:"status,omitempty"`
	CompletedAt     *time.Time       `json:"completedAt,omitempty"`
	FailedAt        *time.Time       `json:"failedAt,omitempty"`
	ExecutionResult *ExecutionResult `json:"executionResult,omitempty"`
}

// apply merges the update into t, later fields winning.
func (u TaskUpdate) apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.CompletedAt != nil {
		t.CompletedAt = u.CompletedAt
	}
	if u.FailedAt != nil {
		t.FailedAt = u.FailedAt
	}
	if u.ExecutionResult != nil {
		t.ExecutionResult = u.ExecutionResult
	}
}

// ExecutionStats aggregates task counts per status for get_execution_stats.
type ExecutionStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}
