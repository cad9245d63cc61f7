// config.go assembles the configuration the core consumes: a working
// directory, a tasks-file path and the auto-execute flag. Flags win over
// environment variables, which win over detection.
package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Config is the resolved configuration surface handed to the Manager.
type Config struct {
	WorkingDirectory string
	TasksFilePath    string

	// AutoExecute is stored and exposed through toggle_auto_execute.
	// No lifecycle code path consults it today.
	AutoExecute bool
}

// loadConfig resolves the configuration. An empty workDirFlag triggers the
// detection chain in workdir.go.
func loadConfig(workDirFlag, tasksFileFlag string, logger *zap.Logger) Config {
	workDir := workDirFlag
	if workDir == "" {
		workDir = resolveWorkingDirectory(logger)
	}

	tasksPath := tasksFileFlag
	if tasksPath == "" {
		tasksPath = resolveTasksFilePath(workDir)
	} else if !filepath.IsAbs(tasksPath) {
		tasksPath = filepath.Join(workDir, tasksPath)
	}

	return Config{
		WorkingDirectory: workDir,
		TasksFilePath:    tasksPath,
		AutoExecute:      getEnv("TASKSMCP_AUTO_EXECUTE", "true") != "false",
	}
}

// resolveTasksFilePath computes the tasks-file path for a (possibly new)
// working directory, honoring the environment override.
func resolveTasksFilePath(workDir string) string {
	if p := getEnv("TASKSMCP_FILE_PATH", ""); p != "" {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(workDir, p)
	}
	return defaultTasksPath(workDir)
}

func defaultTasksPath(workDir string) string {
	return filepath.Join(workDir, "tasks.json")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
