package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/skillpath/internal/cli"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.skillpath/skillpath.db
	dbPath := os.Getenv("SKILLPATH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".skillpath", "skillpath.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	skillRepo := repository.NewSQLiteSkillRepo(database)
	outlookRepo := repository.NewSQLiteOutlookRepo(database)
	runRepo := repository.NewSQLitePlanRunRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// SKILLPATH_LOG=1 traces use-case execution to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("SKILLPATH_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Catalog:     service.NewCatalogService(skillRepo, outlookRepo, uow, observers...),
		Imports:     service.NewImportService(uow, observers...),
		Plans:       service.NewPlanService(skillRepo, runRepo, observers...),
		Simulations: service.NewSimulationService(skillRepo, observers...),
		Studies:     service.NewStudyService(skillRepo, observers...),
		Recommend:   service.NewRecommendService(skillRepo, outlookRepo, observers...),
		Status:      service.NewStatusService(skillRepo, outlookRepo, runRepo),
	}

	root := cli.NewRootCmd(app)

	// A bare invocation on a real terminal opens the interactive explorer.
	if len(os.Args) == 1 && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		root.SetArgs([]string{"explore"})
	}

	return root.Execute()
}
