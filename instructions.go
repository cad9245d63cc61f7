// instructions.go builds the advisory execution instructions attached to a
// task at creation time. These tell the calling agent how it could do the
// work itself with its own IDE tools; they are informational only and are
// not consulted by the executor.
package main

import "strings"

// detectActionType classifies the combined title+description text. The
// check order here intentionally differs from the strategy table: it is
// the classification order of the creation-time advisory, not the
// execution dispatch order.
func detectActionType(fullText string) string {
	switch {
	case strings.Contains(fullText, "crear archivo"):
		return actionCreateFile
	case strings.Contains(fullText, "crear carpeta"):
		return actionCreateFolder
	case strings.Contains(fullText, "instalar dependencia"):
		return actionInstallDependency
	case strings.Contains(fullText, "ejecutar comando"):
		return actionExecuteCommand
	case strings.Contains(fullText, "crear componente"):
		return actionCreateComponent
	case strings.Contains(fullText, "modificar archivo"):
		return actionModifyFile
	case strings.Contains(fullText, "escribir código"):
		return actionWriteCode
	default:
		return actionGeneric
	}
}

// buildExecutionInstructions generates the creation-time advisory payload.
// Unlike strategy resolution, several instruction blocks can apply to the
// same task — a description mentioning both a file and a command gets both.
func buildExecutionInstructions(task *Task, workDir string) *ExecutionInstructions {
	fullText := strings.ToLower(task.Title) + " " + strings.ToLower(task.Description)

	ins := &ExecutionInstructions{
		TaskID:           task.ID,
		ActionType:       detectActionType(fullText),
		WorkingDirectory: workDir,
	}

	if strings.Contains(fullText, "crear archivo") {
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			"Crear un archivo usando la herramienta fsWrite",
			"Nombre del archivo: "+extractFileName(task.Description),
			"Contenido: "+extractFileContent(task.Description),
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "fsWrite")
	}

	if strings.Contains(fullText, "crear carpeta") || strings.Contains(fullText, "crear directorio") {
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			"Crear directorio usando fsWrite",
			"Nombre del directorio: "+extractFolderName(task.Description),
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "fsWrite")
	}

	if strings.Contains(fullText, "instalar") && strings.Contains(fullText, "dependencia") {
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			"Ejecutar comando de instalación usando executePwsh",
			"Comando: npm install "+extractDependencyName(task.Description),
			"Directorio: "+workDir,
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "executePwsh")
	}

	if strings.Contains(fullText, "ejecutar comando") {
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			"Ejecutar el siguiente comando usando executePwsh",
			"Comando: "+extractCommand(task.Description),
			"Directorio: "+workDir,
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "executePwsh")
	}

	if strings.Contains(fullText, "crear componente") {
		name := extractComponentName(task.Description)
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			"Crear componente React usando fsWrite",
			"Nombre: "+name,
			"Ubicación: src/components/"+name+".js",
			"Generar código de componente React básico",
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "fsWrite")
	}

	if strings.Contains(fullText, "modificar archivo") {
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			"Leer el archivo existente usando readFile",
			"Archivo: "+extractFileName(task.Description),
			"Realizar las modificaciones especificadas",
			"Guardar cambios usando strReplace o fsWrite",
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "readFile", "strReplace")
	}

	if len(ins.SpecificInstructions) == 0 {
		ins.SpecificInstructions = append(ins.SpecificInstructions,
			`Analizar la descripción de la tarea: "`+task.Description+`"`,
			"Determinar las acciones necesarias para completar la tarea",
			"Usar las herramientas apropiadas del IDE para ejecutar la tarea",
			"Actualizar el estado de la tarea cuando esté completada",
		)
		ins.SuggestedTools = append(ins.SuggestedTools, "readFile", "fsWrite", "executePwsh")
	}

	return ins
}
