package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	return NewExecutor(t.TempDir(), zap.NewNop())
}

func execTask(title, description string) *Task {
	return &Task{ID: "task-1", Title: title, Description: description, Status: StatusPending}
}

// --- strategy resolution -------------------------------------------------

func TestResolveStrategyRegistrationOrderWins(t *testing.T) {
	// "crear archivo" is registered before "ejecutar comando": it wins even
	// when the command trigger appears first in the text.
	task := execTask("tarea", `ejecutar comando "ls" y luego crear archivo notas.txt`)
	action, ok := resolveStrategy(task)
	require.True(t, ok)
	assert.Equal(t, actionCreateFile, action)

	task = execTask("tarea", `crear archivo notas.txt y luego ejecutar comando "ls"`)
	action, ok = resolveStrategy(task)
	require.True(t, ok)
	assert.Equal(t, actionCreateFile, action)
}

func TestResolveStrategyMatchesTitleToo(t *testing.T) {
	task := execTask("Crear carpeta de resultados", "sin más detalles")
	action, ok := resolveStrategy(task)
	require.True(t, ok)
	assert.Equal(t, actionCreateFolder, action)
}

func TestResolveStrategyCaseInsensitive(t *testing.T) {
	task := execTask("INSTALAR DEPENDENCIA lodash", "")
	action, ok := resolveStrategy(task)
	require.True(t, ok)
	assert.Equal(t, actionInstallDependency, action)
}

func TestResolveStrategyNoMatch(t *testing.T) {
	task := execTask("analizar métricas", "revisar el dashboard")
	_, ok := resolveStrategy(task)
	assert.False(t, ok)
}

// --- parameter extraction ------------------------------------------------

func TestExtractionPatterns(t *testing.T) {
	tests := []struct {
		name    string
		extract func(string) string
		in      string
		want    string
	}{
		{"file name", extractFileName, "crear archivo informe.txt vacío", "informe.txt"},
		{"file name quoted", extractFileName, `crear archivo "main.go"`, "main.go"},
		{"folder name", extractFolderName, "crear carpeta datos ahora", "datos"},
		{"command quoted", extractCommand, `ejecutar comando "echo hola"`, "echo hola"},
		{"dependency", extractDependencyName, "instalar dependencia lodash por favor", "lodash"},
		{"component", extractComponentName, "crear componente Header nuevo", "Header"},
		{"content", extractFileContent, `con contenido: "hola mundo"`, "hola mundo"},
		{"modification", extractModifications, "modificar la cabecera del archivo", "la cabecera del archivo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.extract(tt.in))
		})
	}
}

func TestExtractionFallbacks(t *testing.T) {
	const none = "sin parámetros reconocibles"
	assert.Equal(t, "nuevo_archivo.txt", extractFileName(none))
	assert.Equal(t, "nueva_carpeta", extractFolderName(none))
	assert.Equal(t, `echo "Comando no especificado"`, extractCommand(none))
	assert.Equal(t, "express", extractDependencyName(none))
	assert.Equal(t, "NuevoComponente", extractComponentName(none))
	assert.Equal(t, "// Contenido generado automáticamente", extractFileContent(none))
	assert.Equal(t, "modificación no especificada", extractModifications(none))
}

// --- handlers ------------------------------------------------------------

func TestCreateFileHandler(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("crear archivo", `crear archivo saludo.txt con contenido: "hola"`)

	result, err := e.Execute(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "Archivo creado: saludo.txt", result)

	data, err := os.ReadFile(filepath.Join(e.WorkDir, "saludo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))
}

func TestCreateFolderHandler(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("crear carpeta", "crear carpeta resultados")

	result, err := e.Execute(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "Carpeta creada: resultados", result)

	info, err := os.Stat(filepath.Join(e.WorkDir, "resultados"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteCodeHandler(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("escribir código", "escribir código en el archivo app.js")

	result, err := e.Execute(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "Código escrito en: app.js", result)

	data, err := os.ReadFile(filepath.Join(e.WorkDir, "app.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Código generado automáticamente")
}

func TestExecuteCommandHandler(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("ejecutar comando", `ejecutar comando "echo hola"`)

	result, err := e.Execute(context.Background(), task)
	require.NoError(t, err)
	assert.Contains(t, result, "Comando ejecutado: echo hola")
	assert.Contains(t, result, "hola")
}

func TestExecuteCommandNonZeroExit(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("ejecutar comando", `ejecutar comando "exit 3"`)

	_, err := e.Execute(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCommandTimeout)
}

func TestExecuteCommandTimeout(t *testing.T) {
	e := newTestExecutor(t)
	e.CommandTimeout = 50 * time.Millisecond
	task := execTask("ejecutar comando", `ejecutar comando "sleep 5"`)

	start := time.Now()
	_, err := e.Execute(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandTimeout)
	assert.Less(t, time.Since(start), 3*time.Second, "timeout must cut the command short")
}

func TestCreateComponentHandler(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("crear componente", "crear componente Cabecera principal")

	result, err := e.Execute(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "Componente creado: Cabecera.js", result)

	data, err := os.ReadFile(filepath.Join(e.WorkDir, "src", "components", "Cabecera.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "const Cabecera = () =>")
}

func TestModifyFileHandler(t *testing.T) {
	e := newTestExecutor(t)
	path := filepath.Join(e.WorkDir, "notas.txt")
	require.NoError(t, os.WriteFile(path, []byte("línea original"), 0o644))

	task := execTask("modificar archivo", "modificar archivo notas.txt")
	result, err := e.Execute(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "Archivo modificado: notas.txt", result)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "línea original"))
	assert.Contains(t, string(data), "// Modificación automática: archivo notas.txt")
}

func TestModifyFileMissingTarget(t *testing.T) {
	e := newTestExecutor(t)
	task := execTask("modificar archivo", "modificar archivo inexistente.txt")

	_, err := e.Execute(context.Background(), task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archivo no encontrado: inexistente.txt")
}

func TestGenericExecutionAppendsToLog(t *testing.T) {
	e := newTestExecutor(t)
	logPath := filepath.Join(e.WorkDir, "Tasks", "execution_log.json")

	first := execTask("analizar métricas", "sin estrategia conocida")
	result, err := e.Execute(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, "Tarea ejecutada genéricamente y registrada en log", result)

	second := &Task{ID: "task-2", Title: "otra tarea libre", Description: "tampoco coincide"}
	_, err = e.Execute(context.Background(), second)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entries []executionLogEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "task-1", entries[0].TaskID)
	assert.Equal(t, "task-2", entries[1].TaskID)
	assert.Equal(t, "executed_generically", entries[0].Status)
	assert.Equal(t, "analizar métricas", entries[0].Title)
	assert.False(t, entries[0].ExecutedAt.IsZero())
}

func TestGenericExecutionCorruptLog(t *testing.T) {
	e := newTestExecutor(t)
	logPath := filepath.Join(e.WorkDir, "Tasks", "execution_log.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0o755))
	require.NoError(t, os.WriteFile(logPath, []byte("{broken"), 0o644))

	_, err := e.Execute(context.Background(), execTask("tarea libre", "nada"))
	require.Error(t, err)
}
