package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefrontGraphQL/internal/config"
	"storefrontGraphQL/internal/db"
	"storefrontGraphQL/internal/graph"
	grpcserver "storefrontGraphQL/internal/grpc"
	"storefrontGraphQL/internal/httpserver"
	"storefrontGraphQL/internal/logging"
	"storefrontGraphQL/internal/metrics"
	"storefrontGraphQL/repository"
)

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("configuration loaded", zap.Stringer("config", cfg))

	// Open DB
	d, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Warn("close db", zap.Error(err))
		}
	}()

	accounts := repository.NewAccountRepository(d)
	var tasks repository.TaskStore = repository.NewMemoryTaskStore()
	if cfg.Tasks.Store == config.TaskStoreSQL {
		tasks = repository.NewTaskRepository(d)
	}
	m := metrics.New()

	schema, err := graph.NewSchema(graph.NewResolver(graph.Deps{
		Accounts: accounts,
		Products: repository.NewProductRepository(d),
		Sales:    repository.NewSaleRepository(d),
		Tasks:    tasks,
		Logger:   logger,
		Metrics:  m,
	}), cfg.GraphQL.MaxParallelism)
	if err != nil {
		return err
	}

	handler := httpserver.NewRouter(httpserver.Deps{
		Schema:   schema,
		Accounts: accounts,
		Logger:   logger,
		Metrics:  m,
		GraphiQL: cfg.GraphQL.GraphiQL,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpAddr, stopHTTP, httpErrs, err := httpserver.StartHTTP(cfg.HTTP.Address, handler, logger)
	if err != nil {
		return fmt.Errorf("start http: %w", err)
	}
	logger.Info("http server listening", zap.Stringer("address", httpAddr))

	checker := grpcserver.NewChecker(d, cfg.Health.Interval, logger)
	stopGRPC := func(context.Context) error { return nil }
	if cfg.GRPC.Address != "" {
		grpcAddr, shutdown, err := grpcserver.StartGRPC(cfg.GRPC.Address, checker.Server())
		if err != nil {
			_ = stopHTTP(context.Background())
			return fmt.Errorf("start grpc: %w", err)
		}
		stopGRPC = shutdown
		logger.Info("grpc health server listening", zap.Stringer("address", grpcAddr))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		checker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		select {
		case err, ok := <-httpErrs:
			if ok {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case <-gctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpErr := stopHTTP(shutdownCtx)
		grpcErr := stopGRPC(shutdownCtx)
		if httpErr != nil {
			return fmt.Errorf("http shutdown: %w", httpErr)
		}
		if grpcErr != nil {
			return fmt.Errorf("grpc shutdown: %w", grpcErr)
		}
		return nil
	})
	return g.Wait()
}
