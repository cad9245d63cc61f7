package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestJSONTaskFileMissingFileIsEmptySet(t *testing.T) {
	f := NewJSONTaskFile(filepath.Join(t.TempDir(), "tasks.json"))
	tasks, err := f.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty set, got %d tasks", len(tasks))
	}
}

func TestJSONTaskFileMalformedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewJSONTaskFile(path).Load(); err == nil {
		t.Fatal("malformed content should surface as an error")
	}
}

func TestJSONTaskFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")
	f := NewJSONTaskFile(path)

	completed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	original := []*Task{
		{
			ID:          "task-1",
			Title:       "Crear archivo informe.txt",
			Description: `crear archivo informe.txt con contenido: "hola"`,
			Status:      StatusCompleted,
			CreatedAt:   time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
			CompletedAt: &completed,
			ExecutionResult: &ExecutionResult{
				AttemptID:  "9f1c1c2e-0000-4000-8000-000000000001",
				Success:    true,
				Result:     "Archivo creado: informe.txt",
				ExecutedAt: completed,
			},
			ExecutionInstructions: &ExecutionInstructions{
				TaskID:               "task-1",
				ActionType:           actionCreateFile,
				SpecificInstructions: []string{"Crear un archivo usando la herramienta fsWrite"},
				SuggestedTools:       []string{"fsWrite"},
				WorkingDirectory:     "/tmp/proyecto",
			},
		},
		{
			ID:          "task-2",
			Title:       "Tarea pendiente",
			Description: "sin estrategia",
			Status:      StatusPending,
			CreatedAt:   time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC),
		},
	}

	if err := f.Save(original); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := f.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("round-trip mismatch:\nsaved:  %+v\nloaded: %+v", original[0], loaded[0])
	}
}

func TestJSONTaskFileEmptySetWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	f := NewJSONTaskFile(path)

	if err := f.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}
