package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alexanderramin/studypal/internal/cli"
	"github.com/alexanderramin/studypal/internal/config"
	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/intelligence"
	"github.com/alexanderramin/studypal/internal/llm"
	"github.com/alexanderramin/studypal/internal/logging"
	"github.com/alexanderramin/studypal/internal/personality"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/responder"
	"github.com/alexanderramin/studypal/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Metrics registry shared by the use-case and LLM observers
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := service.NewPrometheusObserver(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observers := []service.UseCaseObserver{service.NewSlogUseCaseObserver(logger), metrics}

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	personalityRepo := repository.NewSQLitePersonalityRepo(database)
	profileRepo := repository.NewSQLiteStudentProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// LLM phrasing is optional; the rules responder always backs it
	var client llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		llmObservers := llm.MultiObserver{metrics}
		if llmCfg.LogCalls {
			llmObservers = append(llmObservers, llm.NewSlogObserver(logger))
		}
		client = llm.NewOllamaClient(llmCfg, llmObservers)
	}
	selector := personality.NewSelector(nil)
	if cfg.Deterministic {
		selector = personality.NewFixedSelector()
	}
	coach := intelligence.NewCoachService(client, responder.New(selector, nil), logger)

	// Wire services
	personalities := service.NewPersonalityService(personalityRepo, cfg.CacheSize, logger, nil)
	app := &cli.App{
		UserID:            cfg.UserID,
		Tasks:             service.NewTaskService(taskRepo, nil, observers...),
		Personality:       personalities,
		Profiles:          service.NewProfileService(taskRepo, profileRepo, personalities, uow, logger, nil, observers...),
		Assistant:         service.NewAssistantService(taskRepo, personalities, coach, logger, nil, observers...),
		Import:            service.NewImportService(uow, nil, observers...),
		Logger:            logger,
		Gatherer:          reg,
		RecomputeInterval: cfg.RecomputeInterval,
		MetricsAddr:       cfg.MetricsAddr,
		Adaptive:          cfg.Adaptive,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
