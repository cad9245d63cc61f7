// demo.go runs a scripted tour of the registry against a real working
// directory, no MCP client needed. Useful for eyeballing the lifecycle.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted demo of the task lifecycle in a temp directory",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	workDir := workDirFlag
	if workDir == "" {
		var err error
		workDir, err = os.MkdirTemp("", "tasksmcp-demo-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(workDir)
	}

	cfg := Config{
		WorkingDirectory: workDir,
		TasksFilePath:    defaultTasksPath(workDir),
		AutoExecute:      true,
	}
	manager := NewManager(cfg, logger)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Println("=== Creando tareas ===")
	demoTasks := []struct{ title, description string }{
		{"Crear archivo de configuración", `Crear archivo config.json con contenido: {"debug": true}`},
		{"Preparar carpeta de datos", "Crear carpeta datos para los resultados"},
		{"Listar el directorio", `Ejecutar comando "ls -la"`},
		{"Revisar métricas del sprint", "Analizar los resultados de la última semana"},
	}
	for _, d := range demoTasks {
		result := manager.AddTask(d.title, d.description)
		if result.IsDuplicate() {
			fmt.Printf("duplicada: %s (ya existe %s)\n", d.title, result.Duplicate.ID)
			continue
		}
		fmt.Printf("creada: %s -> %s (%s)\n", result.Task.ID, result.Task.Title,
			result.Task.ExecutionInstructions.ActionType)
	}

	// A near-duplicate title should be blocked, not created.
	fmt.Println("\n=== Detección de duplicados ===")
	dup := manager.AddTask("Crear archivo de configuracion", "otra vez")
	if dup.IsDuplicate() {
		fmt.Println(dup.Warning)
	}

	fmt.Println("\n=== Ejecutando tareas pendientes ===")
	for _, r := range manager.ExecutePendingTasks(ctx) {
		if r.Success {
			fmt.Printf("%s: OK: %s\n", r.TaskID, r.Result)
		} else {
			fmt.Printf("%s: FALLO: %s\n", r.TaskID, r.Error)
		}
	}

	fmt.Println("\n=== Estadísticas ===")
	stats := manager.Stats()
	fmt.Printf("total=%d pending=%d inProgress=%d completed=%d failed=%d\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Completed, stats.Failed)

	fmt.Println("\n=== Exportación a Markdown ===")
	fmt.Println(manager.ToMarkdown())
	return nil
}
