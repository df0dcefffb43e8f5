package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-manager/internal/model"
)

// ReportService builds the human-readable analytics summary.
type ReportService struct {
	queries *QueryService
}

func NewReportService(queries *QueryService) *ReportService {
	return &ReportService{queries: queries}
}

// Summary renders totals, completion percentage, both distributions and
// the overdue list for the store's current state.
func (s *ReportService) Summary(ctx context.Context, now time.Time) (string, error) {
	stats, err := s.queries.Statistics(ctx)
	if err != nil {
		return "", err
	}
	byPriority, err := s.queries.PriorityDistribution(ctx)
	if err != nil {
		return "", err
	}
	byCategory, err := s.queries.CategoryDistribution(ctx)
	if err != nil {
		return "", err
	}
	overdue, err := s.queries.OverdueTasks(ctx, now)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("📊 Аналитика\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format(model.DueDateLayout)))

	builder.WriteString(fmt.Sprintf("Всего задач: %d\n", stats.Total))
	builder.WriteString(fmt.Sprintf("Выполнено: %d\n", stats.Completed))
	builder.WriteString(fmt.Sprintf("Активных: %d\n", stats.Active))
	builder.WriteString(fmt.Sprintf("Прогресс: %.1f%%\n", stats.CompletionPercentage))

	builder.WriteString("\n🔥 По приоритетам\n")
	if len(byPriority) == 0 {
		builder.WriteString("— задач пока нет\n")
	} else {
		for _, priority := range model.Priorities() {
			if count, ok := byPriority[priority]; ok {
				builder.WriteString(fmt.Sprintf("• %s: %d\n", priority, count))
			}
		}
	}

	builder.WriteString("\n📂 По категориям\n")
	if len(byCategory) == 0 {
		builder.WriteString("— задач пока нет\n")
	} else {
		for _, category := range model.Categories() {
			if count, ok := byCategory[category]; ok {
				builder.WriteString(fmt.Sprintf("• %s %s: %d\n", category.Icon(), category, count))
			}
		}
	}

	builder.WriteString(fmt.Sprintf("\n⚠️ Просроченных задач: %d\n", len(overdue)))
	for _, task := range overdue {
		builder.WriteString(fmt.Sprintf("• #%d %s · до %s\n", task.ID, strings.TrimSpace(task.Title), task.DueDate))
	}

	return strings.TrimSpace(builder.String()), nil
}
