package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/nyayak/docket/internal/cli"
	"github.com/nyayak/docket/internal/config"
	"github.com/nyayak/docket/internal/db"
	"github.com/nyayak/docket/internal/notify"
	"github.com/nyayak/docket/internal/reminder"
	"github.com/nyayak/docket/internal/repository"
	"github.com/nyayak/docket/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	dbPath := os.Getenv("DOCKET_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".docket", "docket.db")
	}

	configPath := os.Getenv("DOCKET_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configPath = filepath.Join(home, ".docket", "docket.yaml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	eventRepo := repository.NewSQLiteEventRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Reminders print to stderr so they never corrupt piped output.
	notifier := notify.NewWriterNotifier(os.Stderr)
	reminders := reminder.NewScheduler(
		reminder.SystemClock{},
		reminder.AfterFunc,
		time.Duration(cfg.LeadMinutes)*time.Minute,
		time.Duration(cfg.HorizonHours)*time.Hour,
		func(sig reminder.Signal) {
			notifier.Reminder(sig.EventID, sig.Title, sig.StartAt)
		},
	)
	defer reminders.Stop()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("DOCKET_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	docketSvc := service.NewDocketService(
		eventRepo,
		settingsRepo,
		uow,
		reminders,
		notifier,
		reminder.SystemClock{},
		cfg,
		observer,
	)

	app := &cli.App{Docket: docketSvc}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
