// executor.go maps a task's free text onto one of the execution strategies
// and runs the matching handler against the working directory.
package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Action identifiers. These double as the actionType field of the
// execution instructions generated at creation time.
const (
	actionCreateFile        = "create_file"
	actionCreateFolder      = "create_folder"
	actionWriteCode         = "write_code"
	actionExecuteCommand    = "execute_command"
	actionInstallDependency = "install_dependency"
	actionCreateComponent   = "create_component"
	actionModifyFile        = "modify_file"
	actionGeneric           = "generic_task"
)

// executionStrategies is the ordered trigger table. Resolution is strictly
// first-match in THIS order, regardless of where the trigger appears in the
// task text — the order is a load-bearing contract, do not reorder.
var executionStrategies = []struct {
	trigger string
	action  string
}{
	{"crear archivo", actionCreateFile},
	{"crear carpeta", actionCreateFolder},
	{"escribir código", actionWriteCode},
	{"ejecutar comando", actionExecuteCommand},
	{"instalar dependencia", actionInstallDependency},
	{"crear componente", actionCreateComponent},
	{"modificar archivo", actionModifyFile},
}

// resolveStrategy returns the action for the first registered trigger found
// in the task's lower-cased title+description blob, or false if none match
// (the caller falls back to the generic handler).
func resolveStrategy(task *Task) (string, bool) {
	blob := strings.ToLower(task.Title) + " " + strings.ToLower(task.Description)
	for _, s := range executionStrategies {
		if strings.Contains(blob, s.trigger) {
			return s.action, true
		}
	}
	return "", false
}

// defaultCommandTimeout bounds spawned shell commands.
const defaultCommandTimeout = 30 * time.Second

// ErrCommandTimeout classifies a command handler failure caused by the
// wall-clock timeout rather than the command itself.
var ErrCommandTimeout = errors.New("command timed out")

// Executor runs resolved strategies. All side effects are scoped to
// WorkDir. CommandTimeout defaults to 30s when zero.
type Executor struct {
	WorkDir        string
	CommandTimeout time.Duration
	logger         *zap.Logger
}

// NewExecutor creates an executor rooted at workDir.
func NewExecutor(workDir string, logger *zap.Logger) *Executor {
	return &Executor{
		WorkDir:        workDir,
		CommandTimeout: defaultCommandTimeout,
		logger:         logger,
	}
}

// Execute resolves the task to a strategy and runs it, returning the
// handler's textual result. Unmatched tasks go through the generic
// fallback, which only appends to the execution log.
func (e *Executor) Execute(ctx context.Context, task *Task) (string, error) {
	action, ok := resolveStrategy(task)
	if !ok {
		action = actionGeneric
	}
	e.logger.Info("executing task",
		zap.String("taskId", task.ID),
		zap.String("action", action),
	)

	switch action {
	case actionCreateFile:
		return e.createFile(task)
	case actionCreateFolder:
		return e.createFolder(task)
	case actionWriteCode:
		return e.writeCode(task)
	case actionExecuteCommand:
		return e.executeCommand(ctx, task)
	case actionInstallDependency:
		return e.installDependency(ctx, task)
	case actionCreateComponent:
		return e.createComponent(task)
	case actionModifyFile:
		return e.modifyFile(task)
	default:
		return e.genericExecution(task)
	}
}
