package main

import "testing"

func TestFindSimilarCaseOnlyDifference(t *testing.T) {
	existing := []*Task{makeTask("task-1", "Implementar backend API", StatusPending)}

	got := findSimilarTask("Implementar backend api", "misma tarea", existing)
	if got == nil {
		t.Fatal("case-only title difference must be detected as duplicate")
	}
	if got.ID != "task-1" {
		t.Fatalf("expected task-1, got %s", got.ID)
	}
}

func TestFindSimilarBySharedKeywords(t *testing.T) {
	// titles far apart by edit distance, but sharing two significant words
	existing := []*Task{makeTask("task-1", "configurar base de datos postgres", StatusPending)}

	got := findSimilarTask("documentar postgres y configurar backups", "", existing)
	if got == nil {
		t.Fatal("two shared significant words must be detected as duplicate")
	}
}

func TestFindSimilarSubstringWordMatch(t *testing.T) {
	// "config" is contained in "configuración": counts as a shared word
	existing := []*Task{makeTask("task-1", "revisar configuración completa", StatusPending)}

	got := findSimilarTask("revisar config completa", "", existing)
	if got == nil {
		t.Fatal("substring containment should count as a shared word")
	}
}

func TestFindSimilarNoMatch(t *testing.T) {
	existing := []*Task{
		makeTask("task-1", "desplegar servicio", StatusPending),
		makeTask("task-2", "revisar métricas", StatusCompleted),
	}

	if got := findSimilarTask("escribir pruebas unitarias", "", existing); got != nil {
		t.Fatalf("expected no duplicate, got %s", got.ID)
	}
}

func TestFindSimilarShortWordsIgnored(t *testing.T) {
	// every shared word has <= 3 characters, so keyword overlap cannot trigger
	existing := []*Task{makeTask("task-1", "ir a la web ya", StatusPending)}

	if got := findSimilarTask("ver la web hoy mismo ahora entonces", "", existing); got != nil {
		t.Fatalf("short words must not count as shared keywords, got %s", got.ID)
	}
}

func TestFindSimilarReturnsFirstInStoreOrder(t *testing.T) {
	existing := []*Task{
		makeTask("task-7", "actualizar dependencias del proyecto", StatusPending),
		makeTask("task-2", "actualizar dependencias del proyecto", StatusCompleted),
	}

	got := findSimilarTask("actualizar dependencias del proyecto", "", existing)
	if got == nil || got.ID != "task-7" {
		t.Fatalf("expected first match in iteration order (task-7), got %v", got)
	}
}

func TestFindSimilarEmptyStore(t *testing.T) {
	if got := findSimilarTask("cualquier cosa", "", nil); got != nil {
		t.Fatal("empty store can't contain duplicates")
	}
}
