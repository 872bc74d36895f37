package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/export"
	"github.com/rocketscienceinc/tictactoe-solver/internal/render"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - solves the configured variant, writes the visualisation file and
// optionally serves lookups until interrupted.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rules, err := tictactoe.NewRules(conf.Variant)
	if err != nil {
		return fmt.Errorf("could not select variant: %w", err)
	}

	var stateRepo repository.StateRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisClient, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		stateRepo = repository.NewStateRepository(redisClient)
	}

	analyzer := usecase.NewAnalyzer(logger, stateRepo)

	analysis, err := analyzer.Analyze(ctx, rules)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if conf.OutputPath != "" {
		doc, err := export.WriteFile(conf.OutputPath, analysis.Coloring)
		if err != nil {
			return fmt.Errorf("could not export graph: %w", err)
		}

		log.Info("graph written", "path", conf.OutputPath, "nodes", len(doc.Nodes), "edges", len(doc.Edges))
	}

	root := analysis.Coloring.Graph().Root()
	if _, err = io.WriteString(out, render.NewForTerminal().State(root, analysis.Coloring.Verdict(root))); err != nil {
		return fmt.Errorf("could not print root state: %w", err)
	}

	if !conf.Serve {
		return nil
	}

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, rest.NewHandler(logger, analyzer)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
