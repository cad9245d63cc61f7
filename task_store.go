// task_store.go implements the in-memory task collection behind every MCP
// tool handler.
//
// Tasks are held in a slice in insertion order so iteration (and therefore
// duplicate detection) is stable. The store is the single source of truth at
// runtime; the injected TaskFile is a mirror that every mutating operation
// fully rewrites. A failed save is logged and the in-memory state stays
// authoritative for the rest of the process lifetime.
package main

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var taskIDPattern = regexp.MustCompile(`task-(\d+)$`)

// taskIDNumber extracts the numeric suffix from an ID like "task-12".
// IDs that don't match the pattern count as 0.
func taskIDNumber(id string) int {
	m := taskIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// TaskStore holds all tasks in memory, protected by a mutex, and mirrors
// every mutation to the injected TaskFile.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []*Task
	file   TaskFile
	logger *zap.Logger

	// maxID is the highest numeric ID ever seen by this store. It only
	// grows: deletions never lower it, so a deleted task's ID is not
	// handed out again within the process lifetime.
	maxID int
}

// NewTaskStore creates a store backed by file. Prior state is loaded
// eagerly; a load failure degrades to an empty task set rather than
// refusing to start.
func NewTaskStore(file TaskFile, logger *zap.Logger) *TaskStore {
	s := &TaskStore{file: file, logger: logger}
	if file != nil {
		tasks, err := file.Load()
		if err != nil {
			logger.Warn("could not load tasks, starting empty", zap.Error(err))
		} else {
			s.tasks = tasks
		}
	}
	for _, t := range s.tasks {
		if n := taskIDNumber(t.ID); n > s.maxID {
			s.maxID = n
		}
	}
	return s
}

// save rewrites the full task set through the persistence port. Must be
// called with the lock held. Save failures are reported, never rolled back.
func (s *TaskStore) save() {
	if s.file == nil {
		return
	}
	if err := s.file.Save(s.tasks); err != nil {
		s.logger.Error("saving tasks failed, in-memory state kept", zap.Error(err))
	}
}

// NextID returns the high-water mark + 1, or 1 for a store that has never
// held a numbered task. The mark never moves backwards: after task-1 and
// task-3 the next ID is task-4, and deleting task-3 does not bring task-3
// back into circulation.
func (s *TaskStore) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxID + 1
}

// Add appends the task, advances the ID high-water mark, and persists.
func (s *TaskStore) Add(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := taskIDNumber(t.ID); n > s.maxID {
		s.maxID = n
	}
	s.tasks = append(s.tasks, t)
	s.save()
}

// Get returns the task with the given ID, or nil.
//
// The returned pointer aliases store-owned state; callers on the synchronous
// tool path read it freely, anything else should copy.
func (s *TaskStore) Get(id string) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

func (s *TaskStore) getLocked(id string) *Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Update merges the partial update into the task with the given ID and
// persists. Returns false if the ID is absent.
func (s *TaskStore) Update(id string, u TaskUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.getLocked(id)
	if t == nil {
		return false
	}
	u.apply(t)
	s.save()
	return true
}

// Delete removes the first task with the given ID and persists. Returns
// false if the ID is absent.
func (s *TaskStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// List returns tasks matching every filter entry (exact match, AND logic),
// sorted ascending by the numeric suffix of the ID so task-2 comes before
// task-10. A nil or empty filter returns all tasks.
//
// Recognized filter fields: id, title, description, status.
func (s *TaskStore) List(filter map[string]string) []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*Task
	for _, t := range s.tasks {
		if matchesFilter(t, filter) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return taskIDNumber(result[i].ID) < taskIDNumber(result[j].ID)
	})
	return result
}

func matchesFilter(t *Task, filter map[string]string) bool {
	for field, want := range filter {
		var got string
		switch field {
		case "id":
			got = t.ID
		case "title":
			got = t.Title
		case "description":
			got = t.Description
		case "status":
			got = t.Status
		default:
			return false
		}
		if got != want {
			return false
		}
	}
	return true
}

// Snapshot returns the full task set in insertion order. Used by the
// manager for duplicate detection, which depends on stable iteration.
func (s *TaskStore) Snapshot() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the current task count.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stats counts tasks per status.
func (s *TaskStore) Stats() ExecutionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats ExecutionStats
	for _, t := range s.tasks {
		stats.Total++
		switch t.Status {
		case StatusPending:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		case StatusFailed:
			stats.Failed++
		}
	}
	return stats
}

// RemoveDuplicates collapses the task list by (lowercased trimmed title,
// status), keeping the first occurrence per key in list order. Persists
// only when something was actually discarded. Returns the number removed
// and the number remaining.
func (s *TaskStore) RemoveDuplicates() (removed, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var unique []*Task
	for _, t := range s.tasks {
		key := strings.ToLower(strings.TrimSpace(t.Title)) + "_" + t.Status
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
	}

	removed = len(s.tasks) - len(unique)
	s.tasks = unique
	if removed > 0 {
		s.save()
	}
	return removed, len(unique)
}

// SetInProgress transitions a task to in-progress ahead of handler
// invocation. Returns false if the task doesn't exist or is already
// completed — completed tasks are never re-entered.
func (s *TaskStore) SetInProgress(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.getLocked(id)
	if t == nil || t.Status == StatusCompleted {
		return false
	}
	t.Status = StatusInProgress
	s.save()
	return true
}

// SetCompleted marks a task completed, stamps CompletedAt and stores the
// attempt result. Only transitions from in-progress.
func (s *TaskStore) SetCompleted(id string, res *ExecutionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.getLocked(id)
	if t == nil || t.Status != StatusInProgress {
		return false
	}
	now := time.Now()
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.FailedAt = nil
	t.ExecutionResult = res
	s.save()
	return true
}

// SetFailed marks a task failed, stamps FailedAt and stores the attempt
// result. Only transitions from in-progress.
func (s *TaskStore) SetFailed(id string, res *ExecutionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.getLocked(id)
	if t == nil || t.Status != StatusInProgress {
		return false
	}
	now := time.Now()
	t.Status = StatusFailed
	t.FailedAt = &now
	t.CompletedAt = nil
	t.ExecutionResult = res
	s.save()
	return true
}
