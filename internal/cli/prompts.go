package cli

import (
	"task-manager/internal/model"
	"task-manager/internal/validate"
)

// promptTitle re-prompts until the user enters a non-blank title.
func (c *CLI) promptTitle() (string, error) {
	for {
		c.printf("Название задачи: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if validate.Title(line) {
			return line, nil
		}
		c.printf("Название не может быть пустым.\n")
	}
}

// promptDescription accepts any text, including an empty line.
func (c *CLI) promptDescription() (string, error) {
	c.printf("Описание (можно оставить пустым): ")
	return c.readLine()
}

// promptDueDate re-prompts until the text parses as dd.mm.yyyy.
func (c *CLI) promptDueDate() (string, error) {
	for {
		c.printf("Дедлайн в формате дд.мм.гггг (например, 25.12.2024): ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if validate.DueDate(line) {
			return line, nil
		}
		c.printf("Не могу распознать дату, попробуй ещё раз.\n")
	}
}

func (c *CLI) promptPriority() (model.Priority, error) {
	priorities := model.Priorities()
	c.printf("Приоритет:\n")
	for i, priority := range priorities {
		c.printf("%d. %s\n", i+1, priority)
	}
	for {
		c.printf("Выбор: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if choice, ok := validate.MenuChoice(line, 1, len(priorities)); ok {
			return priorities[choice-1], nil
		}
		c.printf("Нужен номер от 1 до %d.\n", len(priorities))
	}
}

func (c *CLI) promptCategory() (model.Category, error) {
	categories := model.Categories()
	c.printf("Категория:\n")
	for i, category := range categories {
		c.printf("%d. %s %s\n", i+1, category.Icon(), category)
	}
	for {
		c.printf("Выбор: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if choice, ok := validate.MenuChoice(line, 1, len(categories)); ok {
			return categories[choice-1], nil
		}
		c.printf("Нужен номер от 1 до %d.\n", len(categories))
	}
}

// promptTaskID re-prompts until the user enters a positive number.
func (c *CLI) promptTaskID() (uint, error) {
	for {
		c.printf("ID задачи: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if id, ok := validate.TaskID(line); ok {
			return id, nil
		}
		c.printf("ID задачи должен быть положительным числом.\n")
	}
}

// promptChoice shows a numbered list and re-prompts until a valid number
// comes in.
func (c *CLI) promptChoice(header string, options []string) (int, error) {
	c.printf("%s\n", header)
	for i, option := range options {
		c.printf("%d. %s\n", i+1, option)
	}
	for {
		c.printf("Выбор: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if choice, ok := validate.MenuChoice(line, 1, len(options)); ok {
			return choice, nil
		}
		c.printf("Нужен номер от 1 до %d.\n", len(options))
	}
}
