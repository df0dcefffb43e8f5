package cli

import (
	"context"
	"errors"

	"task-manager/internal/model"
	"task-manager/internal/repository"
	"task-manager/internal/service"
)

func (c *CLI) showTasks(ctx context.Context) error {
	tasks, err := c.tasks.List(ctx)
	if err != nil {
		return err
	}
	c.renderTaskList(tasks)
	return nil
}

func (c *CLI) addTask(ctx context.Context) error {
	c.printf("\n🆕 Создаём новую задачу.\n")

	title, err := c.promptTitle()
	if err != nil {
		return err
	}
	description, err := c.promptDescription()
	if err != nil {
		return err
	}
	priority, err := c.promptPriority()
	if err != nil {
		return err
	}
	category, err := c.promptCategory()
	if err != nil {
		return err
	}
	dueDate, err := c.promptDueDate()
	if err != nil {
		return err
	}

	task, err := c.tasks.Create(ctx, service.TaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}

	c.printf("\n✅ Задача сохранена.\n")
	c.printf("%s", c.formatTask(*task))
	return nil
}

func (c *CLI) editTask(ctx context.Context) error {
	id, err := c.promptTaskID()
	if err != nil {
		return err
	}

	task, err := c.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.printf("Задача не найдена.\n")
			return nil
		}
		return err
	}
	if task.IsCompleted {
		c.printf("Нельзя редактировать завершённую задачу.\n")
		return nil
	}

	choice, err := c.promptChoice("Что меняем?", []string{
		"Название",
		"Описание",
		"Приоритет",
		"Категорию",
		"Дедлайн",
		"Отмена",
	})
	if err != nil {
		return err
	}

	var upd service.TaskUpdate
	switch choice {
	case 1:
		title, err := c.promptTitle()
		if err != nil {
			return err
		}
		upd.Title = &title
	case 2:
		description, err := c.promptDescription()
		if err != nil {
			return err
		}
		upd.Description = &description
	case 3:
		priority, err := c.promptPriority()
		if err != nil {
			return err
		}
		upd.Priority = &priority
	case 4:
		category, err := c.promptCategory()
		if err != nil {
			return err
		}
		upd.Category = &category
	case 5:
		dueDate, err := c.promptDueDate()
		if err != nil {
			return err
		}
		upd.DueDate = &dueDate
	case 6:
		return nil
	}

	updated, err := c.tasks.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.printf("Задача не найдена.\n")
			return nil
		case errors.Is(err, service.ErrTaskCompleted):
			c.printf("Нельзя редактировать завершённую задачу.\n")
			return nil
		}
		return err
	}

	c.printf("\n✏️ Задача обновлена.\n")
	c.printf("%s", c.formatTask(*updated))
	return nil
}

func (c *CLI) completeTask(ctx context.Context) error {
	id, err := c.promptTaskID()
	if err != nil {
		return err
	}

	task, err := c.tasks.Complete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.printf("Задача не найдена.\n")
			return nil
		case errors.Is(err, service.ErrTaskCompleted):
			c.printf("Задача уже выполнена.\n")
			return nil
		}
		return err
	}

	c.printf("✅ Задача «%s» выполнена.\n", task.Title)
	return nil
}

func (c *CLI) deleteTask(ctx context.Context) error {
	id, err := c.promptTaskID()
	if err != nil {
		return err
	}

	if err := c.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.printf("Задача не найдена.\n")
			return nil
		}
		return err
	}

	c.printf("🗑 Задача #%d удалена.\n", id)
	return nil
}

func (c *CLI) searchMenu(ctx context.Context) error {
	choice, err := c.promptChoice("🔍 Поиск и фильтры", []string{
		"По слову",
		"По статусу",
		"По категории",
		"По приоритету",
		"Просроченные",
		"Отмена",
	})
	if err != nil {
		return err
	}

	var tasks []model.Task
	switch choice {
	case 1:
		c.printf("Что ищем: ")
		query, err := c.readLine()
		if err != nil {
			return err
		}
		tasks, err = c.queries.Search(ctx, query)
		if err != nil {
			return err
		}
	case 2:
		statusChoice, err := c.promptChoice("Статус", []string{"Выполненные", "Активные", "Все"})
		if err != nil {
			return err
		}
		var completed *bool
		if statusChoice != 3 {
			value := statusChoice == 1
			completed = &value
		}
		tasks, err = c.queries.FilterByStatus(ctx, completed)
		if err != nil {
			return err
		}
	case 3:
		category, err := c.promptCategory()
		if err != nil {
			return err
		}
		tasks, err = c.queries.FilterByCategory(ctx, category)
		if err != nil {
			return err
		}
	case 4:
		priority, err := c.promptPriority()
		if err != nil {
			return err
		}
		tasks, err = c.queries.FilterByPriority(ctx, priority)
		if err != nil {
			return err
		}
	case 5:
		tasks, err = c.queries.OverdueTasks(ctx, c.now())
		if err != nil {
			return err
		}
	case 6:
		return nil
	}

	c.renderTaskList(tasks)
	return nil
}

func (c *CLI) showAnalytics(ctx context.Context) error {
	summary, err := c.reports.Summary(ctx, c.now())
	if err != nil {
		return err
	}
	c.printf("\n%s\n", summary)
	return nil
}
