package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// StatusCounts is the fixed-shape status histogram of a project's tasks.
// All three statuses are always present, zero-valued when absent.
type StatusCounts struct {
	Todo       int
	InProgress int
	Done       int
}

// AssigneeCount is one entry of the top-assignee ranking.
// Username and Email are resolved by the caller after counting.
type AssigneeCount struct {
	UserID    uuid.UUID
	Username  string
	Email     string
	TaskCount int
}

// ProjectSummary is the four-facet statistical summary of a project.
type ProjectSummary struct {
	TotalTasks    int
	TasksByStatus StatusCounts
	OverdueTasks  int
	TopAssignees  []AssigneeCount
}

// TopAssigneesLimit caps the assignee ranking in a project summary.
const TopAssigneesLimit = 5

// BuildProjectSummary computes all four summary facets from a single
// in-memory snapshot of a project's tasks. now is evaluated once by the
// caller so the overdue count is consistent within one response.
// TopAssignees carries only IDs and counts; display fields are joined later.
func BuildProjectSummary(tasks []*Task, now time.Time) ProjectSummary {
	s := ProjectSummary{
		TotalTasks:   len(tasks),
		TopAssignees: []AssigneeCount{},
	}

	for _, t := range tasks {
		switch t.Status {
		case TaskStatusTodo:
			s.TasksByStatus.Todo++
		case TaskStatusInProgress:
			s.TasksByStatus.InProgress++
		case TaskStatusDone:
			s.TasksByStatus.Done++
		}
	}

	for _, t := range tasks {
		if t.IsOverdue(now) {
			s.OverdueTasks++
		}
	}

	// Group by non-null assignee preserving first-seen order, so ties keep
	// stable input order after the sort below.
	counts := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, t := range tasks {
		if t.AssigneeID == nil {
			continue
		}
		id := *t.AssigneeID
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}

	ranking := make([]AssigneeCount, 0, len(order))
	for _, id := range order {
		ranking = append(ranking, AssigneeCount{UserID: id, TaskCount: counts[id]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TaskCount > ranking[j].TaskCount
	})

	if len(ranking) > TopAssigneesLimit {
		ranking = ranking[:TopAssigneesLimit]
	}
	s.TopAssignees = ranking

	return s
}
