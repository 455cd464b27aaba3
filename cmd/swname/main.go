package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/swname/internal/cli"
	"github.com/zarlcorp/swname/internal/config"
	"github.com/zarlcorp/swname/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("swname"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))
		code := runCLI(ctx, os.Args[1], os.Args[2:])
		_ = app.Close()
		os.Exit(code)
	}

	if err := runTUI(cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string, args []string) int {
	var err error
	switch cmd {
	case "version":
		fmt.Printf("swname %s\n", version)
	case "generate":
		err = cli.CmdGenerate(args, os.Stdin, os.Stdout, os.Stderr)
	case "check":
		err = cli.CmdCheck(args, os.Stdin, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "swname: unknown command %q\n", cmd)
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "swname: %v\n", err)
		return 1
	}
	return 0
}

func runTUI(cfg config.Config) error {
	restore, err := tuiLogging(cfg)
	if err != nil {
		return err
	}
	defer restore()

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	m := tui.New(version, tui.Options{CharLimit: cfg.CharLimit})
	p := tea.NewProgram(m, opts...)
	_, err = p.Run()
	return err
}

// tuiLogging points slog at the configured log file while the TUI owns the
// terminal, or discards records when no file is set.
func tuiLogging(cfg config.Config) (func(), error) {
	prev := slog.Default()
	opts := &slog.HandlerOptions{Level: cfg.Level()}

	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
		return func() { slog.SetDefault(prev) }, nil
	}

	f, err := tea.LogToFile(cfg.LogFile, "swname")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, opts)))

	return func() {
		slog.SetDefault(prev)
		_ = f.Close()
	}, nil
}
