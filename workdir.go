// workdir.go resolves the working directory that scopes all handler side
// effects. The chain mirrors how IDE-launched MCP processes actually start:
// an explicit override wins, then the invoking shell's directory, then IDE
// workspace variables, then a scan of common project locations, and finally
// the process cwd.
package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ideWorkspaceVars are environment variables that IDEs set to point at the
// open workspace. Probed in order.
var ideWorkspaceVars = []string{
	"KIRO_WORKSPACE_DIR",
	"WORKSPACE_DIR",
	"PROJECT_DIR",
	"VSCODE_CWD",
	"KIRO_PROJECT_ROOT",
	"EDITOR_WORKSPACE",
}

// projectIndicators mark a directory as "project-like" during the scan.
var projectIndicators = []string{
	"package.json", ".git", "src", "index.html", "README.md", ".vscode",
}

// resolveWorkingDirectory walks the detection chain and returns the first
// usable directory.
func resolveWorkingDirectory(logger *zap.Logger) string {
	if dir := os.Getenv("TASKSMCP_WORKING_DIR"); dir != "" {
		resolved := resolveOverride(dir)
		logger.Info("working directory from TASKSMCP_WORKING_DIR", zap.String("dir", resolved))
		return resolved
	}

	// npm/yarn record the directory the user launched from.
	if dir := os.Getenv("INIT_CWD"); dir != "" && dirExists(dir) {
		logger.Info("working directory from INIT_CWD", zap.String("dir", dir))
		return dir
	}

	cwd, _ := os.Getwd()
	if dir := os.Getenv("PWD"); dir != "" && dir != cwd && dirExists(dir) {
		logger.Info("working directory from PWD", zap.String("dir", dir))
		return dir
	}

	for _, v := range ideWorkspaceVars {
		if dir := os.Getenv(v); dir != "" && dirExists(dir) {
			logger.Info("working directory from IDE variable",
				zap.String("var", v), zap.String("dir", dir))
			return dir
		}
	}

	if dir := detectProjectDirectory(); dir != "" {
		logger.Info("working directory detected from project scan", zap.String("dir", dir))
		return dir
	}

	logger.Info("working directory falling back to cwd", zap.String("dir", cwd))
	return cwd
}

// resolveOverride interprets the explicit override: "." and relative paths
// are resolved against the directory the process was invoked from, not the
// process cwd (which, under an IDE, is usually the IDE's install dir).
func resolveOverride(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	base := os.Getenv("INIT_CWD")
	if base == "" {
		base = os.Getenv("PWD")
	}
	if base == "" {
		base, _ = os.Getwd()
	}
	return filepath.Join(base, dir)
}

// detectProjectDirectory scans common user project locations and returns
// the most recently modified directory carrying a project indicator, or "".
func detectProjectDirectory() string {
	userDir := os.Getenv("HOME")
	if userDir == "" {
		userDir = os.Getenv("USERPROFILE")
	}
	if userDir == "" {
		return ""
	}

	candidates := []string{
		filepath.Join(userDir, "Desktop"),
		filepath.Join(userDir, "Documents"),
		filepath.Join(userDir, "Projects"),
		filepath.Join(userDir, "workspace"),
		filepath.Join(userDir, "dev"),
		filepath.Join(userDir, "code"),
	}

	var best string
	var bestTime int64
	for _, base := range candidates {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			projectPath := filepath.Join(base, entry.Name())
			if !hasProjectIndicator(projectPath) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if mt := info.ModTime().UnixNano(); mt > bestTime {
				bestTime = mt
				best = projectPath
			}
		}
	}
	return best
}

func hasProjectIndicator(dir string) bool {
	for _, indicator := range projectIndicators {
		if _, err := os.Stat(filepath.Join(dir, indicator)); err == nil {
			return true
		}
	}
	return false
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
