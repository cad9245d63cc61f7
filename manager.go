// manager.go is the task lifecycle coordinator: duplicate-checked creation,
// execution with status transitions, batch execution, and the export and
// import operations built on top of the store.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Common errors.
var (
	// ErrTaskNotFound indicates the referenced task ID does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDirectoryNotFound indicates a working-directory change targeted a
	// path that doesn't exist.
	ErrDirectoryNotFound = errors.New("directory not found")
)

// Manager coordinates the task lifecycle. Public operations are
// synchronous: each runs to completion before the next is accepted, and the
// only suspension points are file I/O and spawned-process waits.
type Manager struct {
	workDir     string
	tasksPath   string
	store       *TaskStore
	executor    *Executor
	autoExecute bool
	logger      *zap.Logger
}

// NewManager builds a coordinator over a file-backed store rooted at the
// configured working directory.
func NewManager(cfg Config, logger *zap.Logger) *Manager {
	return &Manager{
		workDir:     cfg.WorkingDirectory,
		tasksPath:   cfg.TasksFilePath,
		store:       NewTaskStore(NewJSONTaskFile(cfg.TasksFilePath), logger),
		executor:    NewExecutor(cfg.WorkingDirectory, logger),
		autoExecute: cfg.AutoExecute,
		logger:      logger,
	}
}

// newManagerWith wires a manager over explicit collaborators. Used by
// tests and the demo driver.
func newManagerWith(workDir string, store *TaskStore, executor *Executor, logger *zap.Logger) *Manager {
	return &Manager{
		workDir:     workDir,
		tasksPath:   defaultTasksPath(workDir),
		store:       store,
		executor:    executor,
		autoExecute: true,
		logger:      logger,
	}
}

// AddResult is the outcome of AddTask: either a freshly created task, or
// the existing near-duplicate that blocked creation plus a warning for the
// caller. Duplicate detection is an advisory, not an error.
type AddResult struct {
	Task      *Task
	Duplicate *Task
	Warning   string
}

// IsDuplicate reports whether creation was blocked by a near-duplicate.
func (r *AddResult) IsDuplicate() bool { return r.Duplicate != nil }

// AddTask creates a task after checking the existing set for near
// duplicates. New tasks start pending, get the next monotonic ID, and carry
// creation-time execution instructions.
func (m *Manager) AddTask(title, description string) *AddResult {
	if existing := findSimilarTask(title, description, m.store.Snapshot()); existing != nil {
		m.logger.Info("duplicate task blocked",
			zap.String("title", title),
			zap.String("existingId", existing.ID),
		)
		return &AddResult{
			Duplicate: existing,
			Warning:   duplicateWarning(existing),
		}
	}

	task := &Task{
		ID:          fmt.Sprintf("task-%d", m.store.NextID()),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	task.ExecutionInstructions = buildExecutionInstructions(task, m.workDir)
	m.store.Add(task)

	m.logger.Info("task created", zap.String("taskId", task.ID), zap.String("title", title))
	return &AddResult{Task: task}
}

func duplicateWarning(existing *Task) string {
	var b strings.Builder
	b.WriteString("⚠️ TAREA DUPLICADA DETECTADA\n\n")
	b.WriteString("Ya existe una tarea similar:\n")
	fmt.Fprintf(&b, "ID: %s\n", existing.ID)
	fmt.Fprintf(&b, "Título: %s\n", existing.Title)
	fmt.Fprintf(&b, "Estado: %s\n\n", existing.Status)
	b.WriteString("❓ ¿Quieres continuar creando esta tarea duplicada?\n")
	b.WriteString("Si es así, usa 'add_task' con un título más específico.")
	return b.String()
}

// GetTask returns a task by ID, or nil.
func (m *Manager) GetTask(id string) *Task { return m.store.Get(id) }

// UpdateTask merges a partial update into an existing task.
func (m *Manager) UpdateTask(id string, u TaskUpdate) bool { return m.store.Update(id, u) }

// DeleteTask removes a task by ID.
func (m *Manager) DeleteTask(id string) bool { return m.store.Delete(id) }

// ListTasks returns tasks matching the filter, sorted by numeric ID.
func (m *Manager) ListTasks(filter map[string]string) []*Task { return m.store.List(filter) }

// Stats aggregates per-status task counts.
func (m *Manager) Stats() ExecutionStats { return m.store.Stats() }

// RemoveDuplicates collapses duplicate (title, status) tasks.
func (m *Manager) RemoveDuplicates() (removed, remaining int) {
	return m.store.RemoveDuplicates()
}

// ExecuteTask runs a single task through its resolved strategy.
//
// Already-completed tasks short-circuit successfully without re-executing.
// Otherwise the task goes to in-progress, the handler runs, and the outcome
// lands on the task as a terminal status plus result record. A handler
// failure is recorded AND propagated to the caller.
func (m *Manager) ExecuteTask(ctx context.Context, id string) (*ExecutionResult, error) {
	task := m.store.Get(id)
	if task == nil {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	if task.Status == StatusCompleted {
		return &ExecutionResult{
			AttemptID:  uuid.NewString(),
			Success:    true,
			Result:     "Tarea ya completada",
			ExecutedAt: time.Now(),
		}, nil
	}

	m.store.SetInProgress(id)

	output, err := m.executor.Execute(ctx, task)
	res := &ExecutionResult{
		AttemptID:  uuid.NewString(),
		ExecutedAt: time.Now(),
	}
	if err != nil {
		res.Error = err.Error()
		m.store.SetFailed(id, res)
		m.logger.Warn("task execution failed", zap.String("taskId", id), zap.Error(err))
		return res, err
	}

	res.Success = true
	res.Result = output
	m.store.SetCompleted(id, res)
	return res, nil
}

// BatchResult is one task's outcome within ExecutePendingTasks.
type BatchResult struct {
	TaskID  string `json:"taskId"`
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExecutePendingTasks executes every currently pending task independently.
// The pending set is snapshotted up front, so tasks that become pending
// while the batch runs wait for the next call. Individual failures are
// collected, never abort the batch.
func (m *Manager) ExecutePendingTasks(ctx context.Context) []BatchResult {
	pending := m.store.List(map[string]string{"status": StatusPending})

	results := make([]BatchResult, 0, len(pending))
	for _, task := range pending {
		res, err := m.ExecuteTask(ctx, task.ID)
		if err != nil {
			results = append(results, BatchResult{TaskID: task.ID, Error: err.Error()})
			continue
		}
		results = append(results, BatchResult{TaskID: task.ID, Success: true, Result: res.Result})
	}
	return results
}

// SetAutoExecute flips the stored auto-execute flag. The flag is exposed
// through toggle_auto_execute but no code path currently consults it to
// trigger execution after creation.
func (m *Manager) SetAutoExecute(enabled bool) { m.autoExecute = enabled }

// AutoExecute reports the stored flag.
func (m *Manager) AutoExecute() bool { return m.autoExecute }

// WorkingDirectory returns the directory scoping all handler side effects.
func (m *Manager) WorkingDirectory() string { return m.workDir }

// TasksFilePath returns the path of the backing tasks file.
func (m *Manager) TasksFilePath() string { return m.tasksPath }

// SetWorkingDirectory re-roots the manager: the executor's side effects,
// the tasks-file path and the store contents all switch to the new
// directory. The previous store is abandoned, not migrated.
func (m *Manager) SetWorkingDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	m.workDir = dir
	m.tasksPath = resolveTasksFilePath(dir)
	m.store = NewTaskStore(NewJSONTaskFile(m.tasksPath), m.logger)
	m.executor = NewExecutor(dir, m.logger)

	m.logger.Info("working directory updated",
		zap.String("workDir", dir),
		zap.String("tasksFile", m.tasksPath),
	)
	return nil
}

// ToMarkdown renders the full task list as a Markdown report.
func (m *Manager) ToMarkdown() string {
	tasks := m.store.List(nil)

	var b strings.Builder
	b.WriteString("# Lista de Tareas\n\n")
	if len(tasks) == 0 {
		b.WriteString("No hay tareas para mostrar.\n")
		return b.String()
	}

	for _, t := range tasks {
		fmt.Fprintf(&b, "## %s (ID: %s)\n", t.Title, t.ID)
		fmt.Fprintf(&b, "**Descripción:** %s\n", t.Description)
		fmt.Fprintf(&b, "**Estado:** %s\n", t.Status)
		fmt.Fprintf(&b, "**Creada el:** %s\n\n", t.CreatedAt.Format("2/1/2006, 15:04:05"))
	}
	return b.String()
}
