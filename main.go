package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "1.0.0"

var (
	// Global flags
	verbose       bool
	workDirFlag   string
	tasksFileFlag string

	// Logger
	logger *zap.Logger
)

// rootCmd serves MCP over stdio when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "tasksmcp",
	Short: "tasksmcp - persistent task registry with keyword-driven execution, served over MCP",
	Long: `tasksmcp is an MCP server that keeps a persistent task registry in a
flat JSON file, blocks near-duplicate tasks via fuzzy title matching, and
can execute tasks itself through keyword-triggered strategies (crear
archivo, ejecutar comando, instalar dependencia, ...) scoped to a working
directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// stdout belongs to the MCP stdio transport; all logs go to stderr.
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task registry over MCP on stdio",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tasksmcp", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&workDirFlag, "workdir", "", "working directory for task side effects (default: auto-detected)")
	rootCmd.PersistentFlags().StringVar(&tasksFileFlag, "tasks-file", "", "path of the tasks file (default: <workdir>/tasks.json)")
	rootCmd.AddCommand(serveCmd, demoCmd, versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	cfg := loadConfig(workDirFlag, tasksFileFlag, logger)
	logger.Info("tasksmcp starting",
		zap.String("version", version),
		zap.String("workDir", cfg.WorkingDirectory),
		zap.String("tasksFile", cfg.TasksFilePath),
	)

	manager := NewManager(cfg, logger)
	_, server := NewServer(manager, logger)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
