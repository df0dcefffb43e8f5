package service

import (
	"context"
	"testing"
	"time"

	"task-manager/internal/model"
)

// Reference date for due checks: 22 December 2024.
var testNow = time.Date(2024, 12, 22, 15, 0, 0, 0, time.UTC)

func mustCreate(t *testing.T, tasks *TaskService, input TaskInput) *model.Task {
	t.Helper()
	task, err := tasks.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create %q: %v", input.Title, err)
	}
	return task
}

func TestFilterByStatus_Partition(t *testing.T) {
	tasks, queries := newTestServices(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c", "d"} {
		mustCreate(t, tasks, sampleInput(title))
	}
	for _, id := range []uint{2, 4} {
		if _, err := tasks.Complete(ctx, id); err != nil {
			t.Fatalf("complete %d: %v", id, err)
		}
	}

	completedTrue, completedFalse := true, false
	done, err := queries.FilterByStatus(ctx, &completedTrue)
	if err != nil {
		t.Fatalf("filter completed: %v", err)
	}
	active, err := queries.FilterByStatus(ctx, &completedFalse)
	if err != nil {
		t.Fatalf("filter active: %v", err)
	}
	all, err := queries.FilterByStatus(ctx, nil)
	if err != nil {
		t.Fatalf("filter unspecified: %v", err)
	}

	if len(done)+len(active) != len(all) {
		t.Fatalf("partition broken: %d + %d != %d", len(done), len(active), len(all))
	}
	seen := make(map[uint]bool)
	for _, task := range append(done, active...) {
		if seen[task.ID] {
			t.Errorf("task %d appears in both halves", task.ID)
		}
		seen[task.ID] = true
	}
	for _, task := range all {
		if !seen[task.ID] {
			t.Errorf("task %d missing from the partition", task.ID)
		}
	}
}

func TestSearch(t *testing.T) {
	tasks, queries := newTestServices(t)
	ctx := context.Background()

	mustCreate(t, tasks, TaskInput{Title: "Купить молоко", Priority: model.PriorityLow, Category: model.CategoryShopping, DueDate: "01.01.2025"})
	mustCreate(t, tasks, TaskInput{Title: "Позвонить врачу", Description: "про молоко спросить тоже", Priority: model.PriorityHigh, Category: model.CategoryHealth, DueDate: "02.01.2025"})
	mustCreate(t, tasks, TaskInput{Title: "Отчёт", Priority: model.PriorityUrgent, Category: model.CategoryWork, DueDate: "03.01.2025"})

	t.Run("empty query returns all", func(t *testing.T) {
		found, err := queries.Search(ctx, "")
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(found) != 3 {
			t.Errorf("expected all 3 tasks, got %d", len(found))
		}
	})

	t.Run("matches title and description", func(t *testing.T) {
		found, err := queries.Search(ctx, "молоко")
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(found) != 2 {
			t.Errorf("expected 2 matches, got %d", len(found))
		}
	})

	t.Run("case-insensitive for cyrillic", func(t *testing.T) {
		found, err := queries.Search(ctx, "МОЛОКО")
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(found) != 2 {
			t.Errorf("expected 2 matches regardless of case, got %d", len(found))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		found, err := queries.Search(ctx, "теннис")
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no matches, got %d", len(found))
		}
	})
}

func TestEvaluateDue(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		want    DueState
	}{
		{"past date is overdue", "20.12.2024", DueStateOverdue},
		{"today is not overdue", "22.12.2024", DueStateScheduled},
		{"future date is scheduled", "25.12.2024", DueStateScheduled},
		{"garbage text is invalid, not overdue", "когда-нибудь", DueStateInvalid},
		{"wrong layout is invalid", "2024-12-20", DueStateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateDue(model.Task{DueDate: tt.dueDate}, testNow)
			if got != tt.want {
				t.Errorf("EvaluateDue(%q) = %v, want %v", tt.dueDate, got, tt.want)
			}
		})
	}
}

func TestOverdueTasks(t *testing.T) {
	tasks, queries := newTestServices(t)
	ctx := context.Background()

	overdue := mustCreate(t, tasks, TaskInput{Title: "просрочена", Priority: model.PriorityLow, Category: model.CategoryWork, DueDate: "20.12.2024"})
	mustCreate(t, tasks, TaskInput{Title: "на сегодня", Priority: model.PriorityLow, Category: model.CategoryWork, DueDate: "22.12.2024"})
	mustCreate(t, tasks, TaskInput{Title: "в будущем", Priority: model.PriorityLow, Category: model.CategoryWork, DueDate: "31.12.2024"})
	mustCreate(t, tasks, TaskInput{Title: "битая дата", Priority: model.PriorityLow, Category: model.CategoryWork, DueDate: "скоро"})
	done := mustCreate(t, tasks, TaskInput{Title: "сделана вовремя", Priority: model.PriorityLow, Category: model.CategoryWork, DueDate: "01.12.2024"})
	if _, err := tasks.Complete(ctx, done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, err := queries.OverdueTasks(ctx, testNow)
	if err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if len(got) != 1 || got[0].ID != overdue.ID {
		t.Fatalf("expected only task %d overdue, got %+v", overdue.ID, got)
	}

	count, err := queries.OverdueCount(ctx, testNow)
	if err != nil {
		t.Fatalf("overdue count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected overdue count 1, got %d", count)
	}
}

func TestStatistics_EmptyStore(t *testing.T) {
	_, queries := newTestServices(t)

	stats, err := queries.Statistics(context.Background())
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Total != 0 || stats.Completed != 0 || stats.Active != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if stats.CompletionPercentage != 0 {
		t.Errorf("expected 0%% on empty store, got %v", stats.CompletionPercentage)
	}
}

func TestDistributions_OmitAbsentValues(t *testing.T) {
	tasks, queries := newTestServices(t)
	ctx := context.Background()

	urgent := TaskInput{Title: "горит", Priority: model.PriorityUrgent, Category: model.CategoryWork, DueDate: "01.01.2025"}
	mustCreate(t, tasks, urgent)
	mustCreate(t, tasks, urgent)
	mustCreate(t, tasks, TaskInput{Title: "спорт", Priority: model.PriorityLow, Category: model.CategoryHealth, DueDate: "01.01.2025"})

	byPriority, err := queries.PriorityDistribution(ctx)
	if err != nil {
		t.Fatalf("priority distribution: %v", err)
	}
	if len(byPriority) != 2 || byPriority[model.PriorityUrgent] != 2 || byPriority[model.PriorityLow] != 1 {
		t.Errorf("unexpected priority distribution: %+v", byPriority)
	}

	byCategory, err := queries.CategoryDistribution(ctx)
	if err != nil {
		t.Fatalf("category distribution: %v", err)
	}
	if len(byCategory) != 2 || byCategory[model.CategoryWork] != 2 || byCategory[model.CategoryHealth] != 1 {
		t.Errorf("unexpected category distribution: %+v", byCategory)
	}
}
