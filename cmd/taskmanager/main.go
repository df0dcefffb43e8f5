package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/repository"
	"task-manager/internal/service"
)

var Version = "dev"

func main() {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:     "taskmanager",
		Short:   "Интерактивный менеджер задач",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(noColor)
		},
	}
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "отключить цветной вывод")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(noColor bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logging.New(cfg.LogLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	taskSvc := service.NewTaskService(taskRepo, log)
	querySvc := service.NewQueryService(taskRepo)
	reportSvc := service.NewReportService(querySvc)

	if cfg.SeedExamples {
		if err := seedExamples(ctx, taskSvc); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	app := cli.New(os.Stdin, os.Stdout, taskSvc, querySvc, reportSvc, log)
	app.SetNoColor(noColor || cfg.NoColor)

	log.Info().Str("version", Version).Msg("task manager started")
	return app.Run(ctx)
}

// seedExamples creates the two demo tasks shown on first launch.
func seedExamples(ctx context.Context, tasks *service.TaskService) error {
	for _, input := range cli.ExampleTasks() {
		if _, err := tasks.Create(ctx, input); err != nil {
			return err
		}
	}
	return nil
}
