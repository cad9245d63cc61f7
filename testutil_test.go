package main

import (
	"time"

	"go.uber.org/zap"
)

// memoryTaskFile is an in-memory TaskFile for tests. Optional error
// injection exercises the degraded-persistence paths.
type memoryTaskFile struct {
	tasks   []*Task
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryTaskFile) Load() ([]*Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.tasks, nil
}

func (m *memoryTaskFile) Save(tasks []*Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks = make([]*Task, len(tasks))
	copy(m.tasks, tasks)
	m.saves++
	return nil
}

// makeTask builds a minimal task with the given id, title, and status.
func makeTask(id, title, status string) *Task {
	return &Task{
		ID:          id,
		Title:       title,
		Description: "desc:" + id,
		Status:      status,
		CreatedAt:   time.Now(),
	}
}

// newMemoryStore creates a store over a fresh in-memory file.
func newMemoryStore() (*TaskStore, *memoryTaskFile) {
	file := &memoryTaskFile{}
	return NewTaskStore(file, zap.NewNop()), file
}
