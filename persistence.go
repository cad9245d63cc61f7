// persistence.go defines the storage port the TaskStore writes through, plus
// the JSON flat-file implementation that backs it in production.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TaskFile is the persistence port. Load returns the previously saved task
// set (empty, not an error, when no prior state exists). Save is an
// idempotent full overwrite of the entire set — there is no incremental
// journal, every mutation re-serializes everything.
type TaskFile interface {
	Load() ([]*Task, error)
	Save(tasks []*Task) error
}

// JSONTaskFile persists tasks as a pretty-printed JSON array at a fixed
// path, the format shared with the agents that read tasks.json directly.
type JSONTaskFile struct {
	Path string
}

// NewJSONTaskFile returns a file-backed TaskFile at path.
func NewJSONTaskFile(path string) *JSONTaskFile {
	return &JSONTaskFile{Path: path}
}

// Load reads the task array from disk. A missing file is an empty task set.
func (f *JSONTaskFile) Load() ([]*Task, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Path, err)
	}
	return tasks, nil
}

// Save overwrites the file with the full task set, creating the parent
// directory if needed. An empty set is written as [] rather than null so
// readers of the file always see an array.
func (f *JSONTaskFile) Save(tasks []*Task) error {
	if tasks == nil {
		tasks = []*Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}
