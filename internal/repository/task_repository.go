package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-manager/internal/model"
)

// ErrTaskNotFound is returned when no task with the requested id exists.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository owns the task collection. Ids are assigned by SQLite
// AUTOINCREMENT, so they start at 1, grow strictly and are never reused
// even after deletes.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// ListAll returns every task in creation order.
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Delete removes a task regardless of its completion state.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, taskID)
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) ListByStatus(ctx context.Context, completed bool) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("is_completed = ?", completed).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByCategory(ctx context.Context, category model.Category) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("category = ?", category).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByPriority(ctx context.Context, priority model.Priority) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("priority = ?", priority).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TaskRepository) CountByStatus(ctx context.Context, completed bool) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("is_completed = ?", completed).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPriority groups tasks by priority. Priorities with no tasks are
// absent from the result.
func (r *TaskRepository) CountByPriority(ctx context.Context) (map[model.Priority]int, error) {
	var rows []struct {
		Priority model.Priority
		Count    int
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("priority, count(*) as count").
		Group("priority").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[model.Priority]int, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}

// CountByCategory groups tasks by category. Categories with no tasks are
// absent from the result.
func (r *TaskRepository) CountByCategory(ctx context.Context) (map[model.Category]int, error) {
	var rows []struct {
		Category model.Category
		Count    int
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("category, count(*) as count").
		Group("category").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[model.Category]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
