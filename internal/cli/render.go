package cli

import (
	"fmt"
	"strings"

	"task-manager/internal/model"
	"task-manager/internal/service"
)

const (
	ansiReset   = "\x1b[0m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiRed     = "\x1b[31m"
	ansiBoldRed = "\x1b[1;31m"
)

const noDescription = "Нет описания"

func (c *CLI) renderTaskList(tasks []model.Task) {
	if len(tasks) == 0 {
		c.printf("Задачи не найдены.\n")
		return
	}
	c.printf("\n")
	for _, task := range tasks {
		c.printf("%s", c.formatTask(task))
	}
}

// formatTask renders the fixed multi-line block for one task.
func (c *CLI) formatTask(task model.Task) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s #%d %s\n", c.statusIcon(task), task.ID, strings.TrimSpace(task.Title)))

	description := strings.TrimSpace(task.Description)
	if description == "" {
		description = noDescription
	}
	b.WriteString(fmt.Sprintf("   📝 %s\n", description))
	b.WriteString(fmt.Sprintf("   📂 %s %s\n", task.Category.Icon(), task.Category))
	b.WriteString(fmt.Sprintf("   🔥 %s\n", c.colorize(task.Priority)))
	b.WriteString(fmt.Sprintf("   🗓 Создана: %s\n", task.CreatedAt.Format(model.DueDateLayout)))

	switch {
	case task.IsCompleted:
		b.WriteString(fmt.Sprintf("   ⏰ Дедлайн: %s\n", task.DueDate))
		b.WriteString("   ✅ Выполнена\n")
	case service.EvaluateDue(task, c.now()) == service.DueStateOverdue:
		b.WriteString(fmt.Sprintf("   ⏰ Дедлайн: %s — просрочено\n", task.DueDate))
		b.WriteString("   ⬜ В работе\n")
	default:
		b.WriteString(fmt.Sprintf("   ⏰ Дедлайн: %s\n", task.DueDate))
		b.WriteString("   ⬜ В работе\n")
	}

	b.WriteByte('\n')
	return b.String()
}

func (c *CLI) statusIcon(task model.Task) string {
	if task.IsCompleted {
		return "✅"
	}
	if service.EvaluateDue(task, c.now()) == service.DueStateOverdue {
		return "⚠️"
	}
	return "🟢"
}

// colorize wraps the priority label in its ANSI color unless colors are
// disabled.
func (c *CLI) colorize(priority model.Priority) string {
	if c.noColor {
		return priority.String()
	}

	var color string
	switch priority {
	case model.PriorityLow:
		color = ansiGreen
	case model.PriorityMedium:
		color = ansiYellow
	case model.PriorityHigh:
		color = ansiRed
	case model.PriorityUrgent:
		color = ansiBoldRed
	default:
		return priority.String()
	}
	return color + priority.String() + ansiReset
}
