package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"task-manager/internal/service"
	"task-manager/internal/validate"
)

const (
	menuView      = 1
	menuAdd       = 2
	menuEdit      = 3
	menuComplete  = 4
	menuDelete    = 5
	menuSearch    = 6
	menuAnalytics = 7
	menuExit      = 8
)

// CLI drives the interactive menu loop over stdin/stdout.
type CLI struct {
	in      *bufio.Scanner
	out     io.Writer
	tasks   *service.TaskService
	queries *service.QueryService
	reports *service.ReportService
	log     zerolog.Logger
	noColor bool
	now     func() time.Time
}

func New(in io.Reader, out io.Writer, tasks *service.TaskService, queries *service.QueryService, reports *service.ReportService, log zerolog.Logger) *CLI {
	return &CLI{
		in:      bufio.NewScanner(in),
		out:     out,
		tasks:   tasks,
		queries: queries,
		reports: reports,
		log:     log,
		now:     time.Now,
	}
}

// SetNoColor disables ANSI colors in task rendering.
func (c *CLI) SetNoColor(noColor bool) {
	c.noColor = noColor
}

// Run shows the menu until the user picks exit or stdin ends.
func (c *CLI) Run(ctx context.Context) error {
	c.printf("👋 Менеджер задач. Все данные живут до завершения программы.\n")

	for {
		c.printMenu()
		line, err := c.readLine()
		if err != nil {
			// Stdin is gone; nothing left to prompt for.
			c.printf("\nВвод завершён, выходим.\n")
			return nil
		}

		choice, ok := validate.MenuChoice(line, menuView, menuExit)
		if !ok {
			c.printf("Нужен номер пункта от %d до %d.\n", menuView, menuExit)
			continue
		}
		c.log.Debug().Int("choice", choice).Msg("menu selection")

		switch choice {
		case menuView:
			err = c.showTasks(ctx)
		case menuAdd:
			err = c.addTask(ctx)
		case menuEdit:
			err = c.editTask(ctx)
		case menuComplete:
			err = c.completeTask(ctx)
		case menuDelete:
			err = c.deleteTask(ctx)
		case menuSearch:
			err = c.searchMenu(ctx)
		case menuAnalytics:
			err = c.showAnalytics(ctx)
		case menuExit:
			c.printf("До встречи! 👋\n")
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.printf("\nВвод завершён, выходим.\n")
				return nil
			}
			return err
		}
	}
}

func (c *CLI) printMenu() {
	c.printf("\n🔹 Главное меню\n")
	c.printf("1. Показать задачи\n")
	c.printf("2. Добавить задачу\n")
	c.printf("3. Редактировать задачу\n")
	c.printf("4. Отметить выполненной\n")
	c.printf("5. Удалить задачу\n")
	c.printf("6. Поиск и фильтры\n")
	c.printf("7. Аналитика\n")
	c.printf("8. Выход\n")
	c.printf("Выбор: ")
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine blocks for the next input line. io.EOF means stdin terminated.
func (c *CLI) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
