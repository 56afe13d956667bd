// cmd/requestdesk/main.go
//
// This is the entry point for the requestdesk TUI.
//
// Flow:
// 1. Parse flags
// 2. Make sure .requestdesk/ exists and load its config
// 3. Open the structured log file (never stderr: the TUI owns the screen)
// 4. Run the bubbletea program until the user quits

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/kingrea/request-desk/internal/config"
	"github.com/kingrea/request-desk/internal/logging"
	"github.com/kingrea/request-desk/internal/tui"
)

var version = "dev"

type options struct {
	configPath  string
	logFile     string
	noAltScreen bool
	noColor     bool
	showHelp    bool
	showVersion bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet, opts := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if opts.showHelp {
		printHelp(flagSet)
		return nil
	}
	if opts.showVersion {
		fmt.Printf("requestdesk %s\n", version)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	// The working directory hosts .requestdesk/
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	if err := config.InitDeskDir(cwd); err != nil {
		return fmt.Errorf("initializing %s directory: %w", config.DeskDir, err)
	}
	cfg, err := config.NewConfig(cwd, opts.configPath)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logPath := opts.logFile
	if logPath == "" {
		logPath = cfg.LogPath()
	}
	logger, err := logging.New(logPath, cfg.LogLevel(), sessionID)
	if err != nil {
		return err
	}
	defer logger.Close()

	if opts.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app, err := tui.NewApp(cfg, tui.WithLogger(logger), tui.WithSessionID(sessionID))
	if err != nil {
		return err
	}
	logger.Info("session started", "config", cfg.Path, "version", version)

	programOpts := []tea.ProgramOption{}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	// Run blocks until the user quits
	if _, err := tea.NewProgram(app, programOpts...).Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func newFlagSet() (*pflag.FlagSet, *options) {
	opts := &options{}
	flagSet := pflag.NewFlagSet("requestdesk", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to config file (default: .requestdesk/config.yaml)")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this file (default: .requestdesk/logs/requestdesk.log)")
	flagSet.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "draw inline instead of using the alternate screen")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flagSet.BoolVarP(&opts.showHelp, "help", "h", false, "show help")
	return flagSet, opts
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `requestdesk: submit and track department work requests in the terminal.

Requests live in memory for the length of the session; quitting discards
them. Settings and logs are kept in .requestdesk/ in the working directory.

Usage:
  requestdesk [flags]

Keys:
  ctrl+n  submit a request      ctrl+t  track requests
  ctrl+l  toggle the journal    ctrl+c  quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
