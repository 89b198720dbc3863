package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/revisio/internal/cli"
	"github.com/alexanderramin/revisio/internal/cli/formatter"
	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/repository"
	"github.com/alexanderramin/revisio/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColors()
	}

	// Determine DB path: env var or default ~/.revisio/revisio.db
	dbPath := os.Getenv("REVISIO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".revisio", "revisio.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	ratingRepo := repository.NewSQLiteRatingRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	blockedRepo := repository.NewSQLiteBlockedRepo(database)
	commitRepo := repository.NewSQLiteCommitmentRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Verbose use-case logging is opt-in; the CLI stays quiet by default.
	var observers []service.UseCaseObserver
	if os.Getenv("REVISIO_VERBOSE") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	scheduleSvc := service.NewScheduleService(ratingRepo, prefsRepo, blockedRepo, commitRepo, sessionRepo, uow, observers...)
	profileSvc := service.NewProfileService(userRepo, ratingRepo, prefsRepo, blockedRepo, commitRepo)

	app := &cli.App{
		Schedule: scheduleSvc,
		Sessions: service.NewSessionService(sessionRepo, prefsRepo, blockedRepo, commitRepo, uow, observers...),
		Cycle:    service.NewCycleService(userRepo, scheduleSvc, observers...),
		Profile:  profileSvc,
		Status:   service.NewStatusService(sessionRepo, ratingRepo, profileSvc),
		Import:   service.NewImportService(uow, observers...),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
