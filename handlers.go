// handlers.go contains the concrete strategy handlers. Each performs one
// side effect under the executor's working directory and returns a short
// user-facing result string, or an error describing the underlying cause.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

func (e *Executor) createFile(task *Task) (string, error) {
	fileName := extractFileName(task.Description)
	content := extractFileContent(task.Description)

	path := filepath.Join(e.WorkDir, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("creando archivo %s: %w", fileName, err)
	}
	return "Archivo creado: " + fileName, nil
}

func (e *Executor) createFolder(task *Task) (string, error) {
	folderName := extractFolderName(task.Description)

	path := filepath.Join(e.WorkDir, folderName)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("creando carpeta %s: %w", folderName, err)
	}
	return "Carpeta creada: " + folderName, nil
}

func (e *Executor) writeCode(task *Task) (string, error) {
	fileName := extractFileName(task.Description)
	code := fmt.Sprintf(`// Código generado automáticamente para: %s
// Descripción: %s
// Generado el: %s

console.log('Código ejecutado automáticamente');
`, task.Title, task.Description, time.Now().Format(time.RFC3339))

	path := filepath.Join(e.WorkDir, fileName)
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("escribiendo código en %s: %w", fileName, err)
	}
	return "Código escrito en: " + fileName, nil
}

// executeCommand spawns the extracted shell command with a hard wall-clock
// timeout. Timeout and non-zero exit are both failures.
func (e *Executor) executeCommand(ctx context.Context, task *Task) (string, error) {
	command := extractCommand(task.Description)

	output, err := e.runShell(ctx, command)
	if err != nil {
		return "", fmt.Errorf("error ejecutando comando: %w", err)
	}
	return fmt.Sprintf("Comando ejecutado: %s\nSalida: %s", command, output), nil
}

func (e *Executor) installDependency(ctx context.Context, task *Task) (string, error) {
	dependency := extractDependencyName(task.Description)

	if _, err := e.runShell(ctx, "npm install "+dependency); err != nil {
		return "", fmt.Errorf("error instalando dependencia: %w", err)
	}
	return "Dependencia instalada: " + dependency, nil
}

// runShell runs command under the working directory, bounded by the
// executor's timeout. Returns combined stdout+stderr.
func (e *Executor) runShell(ctx context.Context, command string) (string, error) {
	timeout := e.CommandTimeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = e.WorkDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %q", ErrCommandTimeout, timeout, command)
		}
		return "", fmt.Errorf("%q: %w (salida: %s)", command, err, output)
	}
	return string(output), nil
}

func (e *Executor) createComponent(task *Task) (string, error) {
	componentName := extractComponentName(task.Description)
	code := fmt.Sprintf(`// Componente %[1]s generado automáticamente
// Tarea: %[2]s
// Descripción: %[3]s

import React from 'react';

const %[1]s = () => {
    return (
        <div>
            <h1>%[1]s</h1>
            <p>Componente generado automáticamente</p>
        </div>
    );
};

export default %[1]s;
`, componentName, task.Title, task.Description)

	fileName := componentName + ".js"
	path := filepath.Join(e.WorkDir, "src", "components", fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creando directorio de componentes: %w", err)
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("creando componente %s: %w", fileName, err)
	}
	return "Componente creado: " + fileName, nil
}

// modifyFile appends the extracted modification note to an existing file.
// A missing target is a handler failure, not a silent create.
func (e *Executor) modifyFile(task *Task) (string, error) {
	fileName := extractFileName(task.Description)
	modifications := extractModifications(task.Description)

	path := filepath.Join(e.WorkDir, fileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("archivo no encontrado: %s", fileName)
		}
		return "", fmt.Errorf("leyendo %s: %w", fileName, err)
	}

	content = append(content, []byte("\n// Modificación automática: "+modifications)...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("modificando %s: %w", fileName, err)
	}
	return "Archivo modificado: " + fileName, nil
}

// executionLogEntry is one record in the generic fallback's execution log.
type executionLogEntry struct {
	TaskID      string    `json:"taskId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ExecutedAt  time.Time `json:"executedAt"`
	Status      string    `json:"status"`
}

// genericExecution handles tasks that match no trigger. It doesn't touch
// the task's target content; it appends a structured entry to the
// execution log, creating the log as an empty list first if absent.
func (e *Executor) genericExecution(task *Task) (string, error) {
	logPath := filepath.Join(e.WorkDir, "Tasks", "execution_log.json")

	var entries []executionLogEntry
	data, err := os.ReadFile(logPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &entries); err != nil {
			return "", fmt.Errorf("parsing execution log: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// first generic execution, start a fresh log
	default:
		return "", fmt.Errorf("reading execution log: %w", err)
	}

	entries = append(entries, executionLogEntry{
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		ExecutedAt:  time.Now(),
		Status:      "executed_generically",
	})

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding execution log: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}
	if err := os.WriteFile(logPath, out, 0o644); err != nil {
		return "", fmt.Errorf("writing execution log: %w", err)
	}
	return "Tarea ejecutada genéricamente y registrada en log", nil
}
