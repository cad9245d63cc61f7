// import.go converts sequential-thinking thought chains into registry
// tasks.
package main

import "fmt"

// SequentialThoughtData is the payload of import_from_sequential_thinking.
type SequentialThoughtData struct {
	Thoughts []Thought `json:"thoughts"`
}

// Thought is one step of a sequential-thinking chain.
type Thought struct {
	ID                int    `json:"id"`
	Content           string `json:"content"`
	NextThoughtNeeded bool   `json:"nextThoughtNeeded"`
	BranchFromThought *int   `json:"branchFromThought"`
	IsRevision        bool   `json:"isRevision"`
}

// taskDraft is the intermediate conversion record. Priority and
// Dependencies inform the conversion only — they are not part of the
// persisted Task model.
type taskDraft struct {
	Title        string
	Description  string
	Priority     string
	Dependencies []string
}

// convertThoughtsToTasks maps each thought to a draft: the content becomes
// the title, the description names the step position.
func convertThoughtsToTasks(thoughts []Thought) []taskDraft {
	drafts := make([]taskDraft, 0, len(thoughts))
	for i, th := range thoughts {
		drafts = append(drafts, taskDraft{
			Title:        th.Content,
			Description:  fmt.Sprintf("Paso %d: %s", i+1, th.Content),
			Priority:     determinePriority(th),
			Dependencies: findThoughtDependencies(th),
		})
	}
	return drafts
}

func determinePriority(th Thought) string {
	if th.IsRevision {
		return "high"
	}
	if th.BranchFromThought != nil {
		return "medium"
	}
	return "normal"
}

func findThoughtDependencies(th Thought) []string {
	if th.BranchFromThought == nil {
		return nil
	}
	return []string{fmt.Sprintf("task-%d", *th.BranchFromThought)}
}

// ImportFromSequentialThinking creates one task per thought through the
// normal duplicate-checked creation path, so a thought restating an
// existing task surfaces as a duplicate advisory instead of a new entry.
func (m *Manager) ImportFromSequentialThinking(data SequentialThoughtData) []*AddResult {
	drafts := convertThoughtsToTasks(data.Thoughts)

	results := make([]*AddResult, 0, len(drafts))
	for _, d := range drafts {
		results = append(results, m.AddTask(d.Title, d.Description))
	}
	return results
}
