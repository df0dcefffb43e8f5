package cli

import (
	"task-manager/internal/model"
	"task-manager/internal/service"
)

// ExampleTasks returns the two demo tasks created before the first menu is
// shown, so the list screens have something to display.
func ExampleTasks() []service.TaskInput {
	return []service.TaskInput{
		{
			Title:       "Сдать проект",
			Description: "Финальная версия курсового проекта",
			Priority:    model.PriorityHigh,
			Category:    model.CategoryStudy,
			DueDate:     "25.12.2024",
		},
		{
			Title:       "Купить подарки",
			Description: "",
			Priority:    model.PriorityMedium,
			Category:    model.CategoryPersonal,
			DueDate:     "20.12.2024",
		},
	}
}
