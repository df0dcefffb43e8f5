package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// ErrTaskCompleted is returned when an edit targets a completed task.
// Completed tasks are immutable; they can only be deleted.
var ErrTaskCompleted = errors.New("task is completed and cannot be edited")

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Category    model.Category
	DueDate     string
}

// TaskUpdate carries the fields to change; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *model.Priority
	Category    *model.Category
	DueDate     *string
}

// TaskService wraps task lifecycle logic.
type TaskService struct {
	repo *repository.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo *repository.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// Create stores a new task. Inputs are assumed to be validated by the
// caller (see the validate package); no checks are repeated here.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Category:    input.Category,
		DueDate:     input.DueDate,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}

	s.log.Info().Uint("id", task.ID).Str("category", task.Category.String()).Msg("task created")
	return &task, nil
}

// List returns all tasks in creation order.
func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.ListAll(ctx)
}

func (s *TaskService) Get(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, taskID)
}

// Update applies upd to the task. It fails with repository.ErrTaskNotFound
// for unknown ids and with ErrTaskCompleted for completed tasks, in which
// case nothing is changed.
func (s *TaskService) Update(ctx context.Context, taskID uint, upd TaskUpdate) (*model.Task, error) {
	return s.mutate(ctx, taskID, func(task *model.Task) {
		if upd.Title != nil {
			task.Title = *upd.Title
		}
		if upd.Description != nil {
			task.Description = *upd.Description
		}
		if upd.Priority != nil {
			task.Priority = *upd.Priority
		}
		if upd.Category != nil {
			task.Category = *upd.Category
		}
		if upd.DueDate != nil {
			task.DueDate = *upd.DueDate
		}
	})
}

// Complete marks a task as done. A second call on the same task fails with
// ErrTaskCompleted, the same guard every edit goes through.
func (s *TaskService) Complete(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.mutate(ctx, taskID, func(task *model.Task) {
		task.IsCompleted = true
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("id", task.ID).Msg("task completed")
	return task, nil
}

// Delete removes a task regardless of its completion state.
func (s *TaskService) Delete(ctx context.Context, taskID uint) error {
	if err := s.repo.Delete(ctx, taskID); err != nil {
		return err
	}
	s.log.Info().Uint("id", taskID).Msg("task deleted")
	return nil
}

func (s *TaskService) mutate(ctx context.Context, taskID uint, apply func(*model.Task)) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted {
		return nil, ErrTaskCompleted
	}

	apply(task)
	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
