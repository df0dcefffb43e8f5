package service

import (
	"context"
	"strings"
	"time"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// DueState classifies a task's due date against a reference date.
type DueState int

const (
	// DueStateScheduled means the due date is today or later.
	DueStateScheduled DueState = iota
	// DueStateOverdue means the due date is strictly before today.
	DueStateOverdue
	// DueStateInvalid means the due date text does not parse. Such tasks
	// are deliberately treated as not overdue instead of raising an error;
	// the store accepts whatever text the caller wrote (see the validate
	// package), so this state is the explicit name for that leniency.
	DueStateInvalid
)

// Statistics summarizes the store at a point in time.
type Statistics struct {
	Total                int
	Completed            int
	Active               int
	CompletionPercentage float64
}

// QueryService answers read-only questions over the current store
// snapshot. Nothing is cached; every call recomputes.
type QueryService struct {
	repo *repository.TaskRepository
}

func NewQueryService(repo *repository.TaskRepository) *QueryService {
	return &QueryService{repo: repo}
}

// FilterByStatus returns completed or active tasks; a nil filter returns
// all tasks.
func (s *QueryService) FilterByStatus(ctx context.Context, completed *bool) ([]model.Task, error) {
	if completed == nil {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByStatus(ctx, *completed)
}

// Search returns tasks whose title or description contains the query,
// case-insensitively. The scan runs in Go: SQLite's lower() folds only
// ASCII, which would break matching on Cyrillic titles.
func (s *QueryService) Search(ctx context.Context, query string) ([]model.Task, error) {
	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func (s *QueryService) FilterByCategory(ctx context.Context, category model.Category) ([]model.Task, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *QueryService) FilterByPriority(ctx context.Context, priority model.Priority) ([]model.Task, error) {
	return s.repo.ListByPriority(ctx, priority)
}

// EvaluateDue classifies the task's due date against now (date precision).
func EvaluateDue(task model.Task, now time.Time) DueState {
	due, err := model.ParseDueDate(task.DueDate)
	if err != nil {
		return DueStateInvalid
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(today) {
		return DueStateOverdue
	}
	return DueStateScheduled
}

// OverdueTasks returns incomplete tasks whose due date is strictly before
// now. Tasks with unparseable due dates are excluded (DueStateInvalid).
func (s *QueryService) OverdueTasks(ctx context.Context, now time.Time) ([]model.Task, error) {
	tasks, err := s.repo.ListByStatus(ctx, false)
	if err != nil {
		return nil, err
	}

	overdue := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if EvaluateDue(task, now) == DueStateOverdue {
			overdue = append(overdue, task)
		}
	}
	return overdue, nil
}

func (s *QueryService) OverdueCount(ctx context.Context, now time.Time) (int, error) {
	overdue, err := s.OverdueTasks(ctx, now)
	if err != nil {
		return 0, err
	}
	return len(overdue), nil
}

func (s *QueryService) Statistics(ctx context.Context) (Statistics, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return Statistics{}, err
	}
	completed, err := s.repo.CountByStatus(ctx, true)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		Total:     int(total),
		Completed: int(completed),
		Active:    int(total - completed),
	}
	if stats.Total > 0 {
		stats.CompletionPercentage = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats, nil
}

// PriorityDistribution counts tasks per priority; priorities with no tasks
// are omitted.
func (s *QueryService) PriorityDistribution(ctx context.Context) (map[model.Priority]int, error) {
	return s.repo.CountByPriority(ctx)
}

// CategoryDistribution counts tasks per category; categories with no tasks
// are omitted.
func (s *QueryService) CategoryDistribution(ctx context.Context) (map[model.Category]int, error) {
	return s.repo.CountByCategory(ctx)
}
