package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-solver/internal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// main - is the entry point of the application. It parses the command line, loads the configuration and runs the solver.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		serve      bool
	)

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("tictactoe-solver [%s]", strings.Join(tictactoe.Variants(), "|")),
		Short: "Enumerate a tic-tac-toe variant and classify every state under perfect play",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if len(args) == 1 {
				conf.Variant = args[0]
			}
			if cmd.Flags().Changed("output") {
				conf.OutputPath = outputPath
			}
			if cmd.Flags().Changed("serve") {
				conf.Serve = serve
			}

			return app.RunApp(initLogger(conf), conf, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "Path to the YAML config file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "graph.js", "Where to write the graph for the visualisation")
	cmd.Flags().BoolVar(&serve, "serve", false, "Serve state lookups over HTTP after solving")

	return cmd
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
