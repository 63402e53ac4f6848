package main

import (
	"io"
	"log/slog"
	"os"

	studylipgloss "github.com/fwojciec/study/lipgloss"
	studyviper "github.com/fwojciec/study/viper"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const fallbackWidth = 80

// app holds what every command needs. Environment-dependent values are
// resolved here and passed down as values.
type app struct {
	cfg    studyviper.Config
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	hostname  string
	termWidth func() int
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	host, _ := os.Hostname()
	return &app{
		logger:    slog.New(slog.DiscardHandler),
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		hostname:  host,
		termWidth: stdoutWidth,
	}
}

// configure installs the resolved configuration and the logger it implies.
func (a *app) configure(cfg studyviper.Config) {
	a.cfg = cfg
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// width picks the render width: flag or config, then the terminal, then 80.
func (a *app) width() int {
	if a.cfg.Width > 0 {
		return a.cfg.Width
	}
	if w := a.termWidth(); w > 0 {
		return w
	}
	return fallbackWidth
}

// profile picks the colour profile for styled command output from the
// writer it goes to, so that piped output carries no escape codes.
func (a *app) profile() studylipgloss.Option {
	return studylipgloss.WithProfile(termenv.NewOutput(a.stdout).EnvColorProfile())
}

func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
