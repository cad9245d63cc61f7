// server.go exposes the task registry over MCP. One tool per registry
// operation; handlers are thin adapters onto the Manager.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Server binds the Manager to the MCP tool surface.
type Server struct {
	manager *Manager
	logger  *zap.Logger
}

// NewServer creates the MCP server and registers all tools.
func NewServer(manager *Manager, logger *zap.Logger) (*Server, *mcp.Server) {
	s := &Server{manager: manager, logger: logger}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tasksmcp",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Añadir una nueva tarea al orquestador",
	}, s.addTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "Listar todas las tareas o filtrar por criterios",
	}, s.listTasks)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_task",
		Description: "Actualizar una tarea existente",
	}, s.updateTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Eliminar una tarea",
	}, s.deleteTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_to_markdown",
		Description: "Exportar todas las tareas a formato Markdown",
	}, s.exportToMarkdown)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_from_sequential_thinking",
		Description: "Importar tareas desde el MCP de Pensamiento Secuencial",
	}, s.importFromSequentialThinking)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_task",
		Description: "Ejecutar una tarea específica manualmente",
	}, s.executeTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_pending_tasks",
		Description: "Ejecutar todas las tareas pendientes",
	}, s.executePendingTasks)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_execution_stats",
		Description: "Obtener estadísticas de ejecución de tareas",
	}, s.getExecutionStats)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_auto_execute",
		Description: "Habilitar o deshabilitar la ejecución automática de tareas",
	}, s.toggleAutoExecute)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_working_directory",
		Description: "Configurar el directorio de trabajo donde se guardarán las tareas",
	}, s.setWorkingDirectory)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_current_directory",
		Description: "Obtener el directorio de trabajo actual donde se guardan las tareas",
	}, s.getCurrentDirectory)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_duplicate_tasks",
		Description: "Eliminar tareas duplicadas del archivo de tareas",
	}, s.removeDuplicateTasks)

	return s, server
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func (s *Server) addTask(ctx context.Context, req *mcp.CallToolRequest, args AddTaskArgs) (*mcp.CallToolResult, AddTaskOutput, error) {
	result := s.manager.AddTask(args.Title, args.Description)

	if result.IsDuplicate() {
		out := AddTaskOutput{Duplicate: true, Existing: result.Duplicate}
		return textResult(result.Warning), out, nil
	}

	out := AddTaskOutput{Task: result.Task}
	return textResult(formatTaskCreationResponse(result.Task)), out, nil
}

// formatTaskCreationResponse renders the creation advisory the calling
// agent sees: the instruction list, the suggested tools and the prompt to
// mark the task completed afterwards.
func formatTaskCreationResponse(task *Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ TAREA CREADA: %s (ID: %s)\n\n", task.Title, task.ID)
	fmt.Fprintf(&b, "📋 DESCRIPCIÓN: %s\n\n", task.Description)

	ins := task.ExecutionInstructions
	if ins == nil || len(ins.SpecificInstructions) == 0 {
		b.WriteString("⚠️ Esta tarea requiere análisis manual para determinar las acciones específicas.\n")
		return b.String()
	}

	b.WriteString("🤖 INSTRUCCIONES PARA EJECUTAR ESTA TAREA:\n\n")
	for i, instruction := range ins.SpecificInstructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, instruction)
	}
	if len(ins.SuggestedTools) > 0 {
		fmt.Fprintf(&b, "\n🔧 HERRAMIENTAS SUGERIDAS: %s\n", strings.Join(ins.SuggestedTools, ", "))
	}
	fmt.Fprintf(&b, "\n📁 DIRECTORIO DE TRABAJO: %s\n", ins.WorkingDirectory)
	b.WriteString("\n⚡ ACCIÓN REQUERIDA: Por favor, ejecuta estas instrucciones ahora para completar la tarea.\n")
	fmt.Fprintf(&b, "Cuando termines, actualiza el estado de la tarea usando: update_task con taskId %q y status \"completed\"\n", task.ID)
	return b.String()
}

func (s *Server) listTasks(ctx context.Context, req *mcp.CallToolRequest, args ListTasksArgs) (*mcp.CallToolResult, ListTasksOutput, error) {
	tasks := s.manager.ListTasks(args.Filter)
	return nil, ListTasksOutput{Count: len(tasks), Tasks: tasks}, nil
}

func (s *Server) updateTask(ctx context.Context, req *mcp.CallToolRequest, args UpdateTaskArgs) (*mcp.CallToolResult, UpdateTaskOutput, error) {
	if !s.manager.UpdateTask(args.TaskID, args.Updates) {
		return nil, UpdateTaskOutput{}, fmt.Errorf("%w: %s", ErrTaskNotFound, args.TaskID)
	}
	return nil, UpdateTaskOutput{Task: s.manager.GetTask(args.TaskID)}, nil
}

func (s *Server) deleteTask(ctx context.Context, req *mcp.CallToolRequest, args DeleteTaskArgs) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	if !s.manager.DeleteTask(args.TaskID) {
		return nil, DeleteTaskOutput{}, fmt.Errorf("%w: %s", ErrTaskNotFound, args.TaskID)
	}
	return textResult(fmt.Sprintf("Tarea %s eliminada exitosamente", args.TaskID)), DeleteTaskOutput{Deleted: true}, nil
}

func (s *Server) exportToMarkdown(ctx context.Context, req *mcp.CallToolRequest, args ExportMarkdownArgs) (*mcp.CallToolResult, ExportMarkdownOutput, error) {
	markdown := s.manager.ToMarkdown()
	return textResult(markdown), ExportMarkdownOutput{Markdown: markdown}, nil
}

func (s *Server) importFromSequentialThinking(ctx context.Context, req *mcp.CallToolRequest, args ImportThoughtsArgs) (*mcp.CallToolResult, ImportThoughtsOutput, error) {
	results := s.manager.ImportFromSequentialThinking(args.SequentialThoughtData)

	var out ImportThoughtsOutput
	for _, r := range results {
		if r.IsDuplicate() {
			out.Duplicates++
			continue
		}
		out.Imported++
		out.Tasks = append(out.Tasks, r.Task)
	}
	return nil, out, nil
}

func (s *Server) executeTask(ctx context.Context, req *mcp.CallToolRequest, args ExecuteTaskArgs) (*mcp.CallToolResult, ExecuteTaskOutput, error) {
	result, err := s.manager.ExecuteTask(ctx, args.TaskID)
	if err != nil {
		return nil, ExecuteTaskOutput{}, fmt.Errorf("ejecutando tarea %s: %w", args.TaskID, err)
	}
	return nil, ExecuteTaskOutput{TaskID: args.TaskID, Result: result}, nil
}

func (s *Server) executePendingTasks(ctx context.Context, req *mcp.CallToolRequest, args ExecutePendingTasksArgs) (*mcp.CallToolResult, ExecutePendingTasksOutput, error) {
	return nil, ExecutePendingTasksOutput{Results: s.manager.ExecutePendingTasks(ctx)}, nil
}

func (s *Server) getExecutionStats(ctx context.Context, req *mcp.CallToolRequest, args GetExecutionStatsArgs) (*mcp.CallToolResult, GetExecutionStatsOutput, error) {
	return nil, GetExecutionStatsOutput{Stats: s.manager.Stats()}, nil
}

func (s *Server) toggleAutoExecute(ctx context.Context, req *mcp.CallToolRequest, args ToggleAutoExecuteArgs) (*mcp.CallToolResult, ToggleAutoExecuteOutput, error) {
	s.manager.SetAutoExecute(args.Enabled)
	state := "deshabilitada"
	if args.Enabled {
		state = "habilitada"
	}
	return textResult("Ejecución automática " + state), ToggleAutoExecuteOutput{Enabled: args.Enabled}, nil
}

func (s *Server) setWorkingDirectory(ctx context.Context, req *mcp.CallToolRequest, args SetWorkingDirectoryArgs) (*mcp.CallToolResult, SetWorkingDirectoryOutput, error) {
	if err := s.manager.SetWorkingDirectory(args.Directory); err != nil {
		return nil, SetWorkingDirectoryOutput{}, err
	}
	out := SetWorkingDirectoryOutput{
		Directory: s.manager.WorkingDirectory(),
		TasksFile: s.manager.TasksFilePath(),
	}
	msg := fmt.Sprintf("✅ Directorio de trabajo actualizado a: %s\n📁 Las tareas se guardarán en: %s",
		out.Directory, out.TasksFile)
	return textResult(msg), out, nil
}

func (s *Server) getCurrentDirectory(ctx context.Context, req *mcp.CallToolRequest, args GetCurrentDirectoryArgs) (*mcp.CallToolResult, GetCurrentDirectoryOutput, error) {
	out := GetCurrentDirectoryOutput{
		Directory:  s.manager.WorkingDirectory(),
		TasksFile:  s.manager.TasksFilePath(),
		TotalTasks: len(s.manager.ListTasks(nil)),
	}
	return nil, out, nil
}

func (s *Server) removeDuplicateTasks(ctx context.Context, req *mcp.CallToolRequest, args RemoveDuplicateTasksArgs) (*mcp.CallToolResult, RemoveDuplicateTasksOutput, error) {
	removed, remaining := s.manager.RemoveDuplicates()
	return nil, RemoveDuplicateTasksOutput{Removed: removed, Remaining: remaining}, nil
}
