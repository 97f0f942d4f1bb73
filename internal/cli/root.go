package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	application "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

const stderrLogFile = "-"

type flags struct {
	configPath string
	logLevel   string
	thinkDelay time.Duration
	boardSize  int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &flags{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the computer in your terminal",
		Long: `tictactoe is a terminal game against a computer opponent.

Move the cursor with the arrow keys, place your token with Enter,
and leave with Escape or Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger, closeLog, err := initLogger(conf, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("could not create screen: %w", err)
			}

			return application.RunApp(cmd.Context(), logger, conf, screen)
		},
		SilenceUsage: true,
	}

	bindFlags(rootCmd, opts)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func bindFlags(cmd *cobra.Command, opts *flags) {
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "Path to the YAML config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: LOG_LEVEL)")
	cmd.Flags().DurationVar(&opts.thinkDelay, "think-delay", 0, "Computer thinking delay (env: COMPUTER_THINK_DELAY)")
	cmd.Flags().IntVar(&opts.boardSize, "board-size", 0, "Board side length, at least 3 (env: BOARD_SIZE)")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tictactoe", Version)
		},
	}
}

// loadConfig - reads the config file, applies the flags that were set explicitly and validates the result.
func loadConfig(cmd *cobra.Command, opts *flags) (*config.Config, error) {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("think-delay") {
		conf.Computer.ThinkDelay = opts.thinkDelay
	}
	if cmd.Flags().Changed("board-size") {
		conf.BoardSize = opts.boardSize
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// initLogger - the screen belongs to the game, so records go to the configured file.
func initLogger(conf *config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	out := stderr
	closeLog := func() {}

	if conf.LogFile != stderrLogFile {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open log file: %w", err)
		}

		out = file
		closeLog = func() {
			_ = file.Close()
		}
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog, nil
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
