package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// --- tasks-file path resolution ------------------------------------------

func TestResolveTasksFilePathDefault(t *testing.T) {
	t.Setenv("TASKSMCP_FILE_PATH", "")

	got := resolveTasksFilePath("/srv/proyecto")
	if got != filepath.Join("/srv/proyecto", "tasks.json") {
		t.Errorf("resolveTasksFilePath() = %q", got)
	}
}

func TestResolveTasksFilePathEnvOverride(t *testing.T) {
	t.Setenv("TASKSMCP_FILE_PATH", "/var/state/tareas.json")
	if got := resolveTasksFilePath("/srv/proyecto"); got != "/var/state/tareas.json" {
		t.Errorf("absolute override = %q", got)
	}

	t.Setenv("TASKSMCP_FILE_PATH", "estado/tareas.json")
	want := filepath.Join("/srv/proyecto", "estado", "tareas.json")
	if got := resolveTasksFilePath("/srv/proyecto"); got != want {
		t.Errorf("relative override = %q, want %q", got, want)
	}
}

// --- loadConfig ----------------------------------------------------------

func TestLoadConfigFlagsWin(t *testing.T) {
	t.Setenv("TASKSMCP_WORKING_DIR", "/elsewhere")
	t.Setenv("TASKSMCP_FILE_PATH", "/elsewhere/tasks.json")

	workDir := t.TempDir()
	cfg := loadConfig(workDir, "mis-tareas.json", zap.NewNop())
	if cfg.WorkingDirectory != workDir {
		t.Errorf("WorkingDirectory = %q, want %q", cfg.WorkingDirectory, workDir)
	}
	if cfg.TasksFilePath != filepath.Join(workDir, "mis-tareas.json") {
		t.Errorf("TasksFilePath = %q", cfg.TasksFilePath)
	}
}

func TestLoadConfigAutoExecuteEnv(t *testing.T) {
	workDir := t.TempDir()

	t.Setenv("TASKSMCP_AUTO_EXECUTE", "")
	if cfg := loadConfig(workDir, "", zap.NewNop()); !cfg.AutoExecute {
		t.Error("AutoExecute should default to true")
	}

	t.Setenv("TASKSMCP_AUTO_EXECUTE", "false")
	if cfg := loadConfig(workDir, "", zap.NewNop()); cfg.AutoExecute {
		t.Error("AutoExecute should honor TASKSMCP_AUTO_EXECUTE=false")
	}
}

// --- working-directory detection -----------------------------------------

func TestResolveWorkingDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKSMCP_WORKING_DIR", dir)

	if got := resolveWorkingDirectory(zap.NewNop()); got != dir {
		t.Errorf("resolveWorkingDirectory() = %q, want %q", got, dir)
	}
}

func TestResolveOverrideRelative(t *testing.T) {
	base := t.TempDir()
	t.Setenv("INIT_CWD", base)

	if got := resolveOverride("sub"); got != filepath.Join(base, "sub") {
		t.Errorf("resolveOverride(sub) = %q", got)
	}
	if got := resolveOverride("/abs/path"); got != "/abs/path" {
		t.Errorf("resolveOverride(/abs/path) = %q", got)
	}
}

func TestResolveWorkingDirectoryInitCwd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKSMCP_WORKING_DIR", "")
	t.Setenv("INIT_CWD", dir)

	if got := resolveWorkingDirectory(zap.NewNop()); got != dir {
		t.Errorf("resolveWorkingDirectory() = %q, want %q", got, dir)
	}
}

func TestHasProjectIndicator(t *testing.T) {
	dir := t.TempDir()
	if hasProjectIndicator(dir) {
		t.Error("empty directory reported as project")
	}

	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !hasProjectIndicator(dir) {
		t.Error(".git not recognized as a project indicator")
	}

	// only the documented indicator set counts
	other := t.TempDir()
	if err := os.Mkdir(filepath.Join(other, ".idea"), 0o755); err != nil {
		t.Fatal(err)
	}
	if hasProjectIndicator(other) {
		t.Error("unlisted marker treated as a project indicator")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !dirExists(dir) {
		t.Error("existing directory reported missing")
	}
	if dirExists(filepath.Join(dir, "nope")) {
		t.Error("missing directory reported present")
	}

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if dirExists(file) {
		t.Error("regular file reported as directory")
	}
}
