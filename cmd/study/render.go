package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/study"
	studyfsnotify "github.com/fwojciec/study/fsnotify"
	studyglamour "github.com/fwojciec/study/glamour"
	studygoldmark "github.com/fwojciec/study/goldmark"
	studyjson "github.com/fwojciec/study/json"
	studylipgloss "github.com/fwojciec/study/lipgloss"
	"github.com/fwojciec/study/markdown"
	studyviper "github.com/fwojciec/study/viper"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Output formats for study render.
const (
	formatANSI     = "ansi"
	formatPlain    = "plain"
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatGlamour  = "glamour"
)

var formats = []string{formatANSI, formatPlain, formatMarkdown, formatJSON, formatGlamour}

func newRenderCmd(a *app, v *viper.Viper) *cobra.Command {
	var (
		format string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "render [files|globs...]",
		Short: "Render Markdown for the terminal",
		Long: `Render Markdown files, or stdin when no files are given.

Arguments may be doublestar globs such as notes/**/*.md. With --watch, each
file is rendered again in full whenever it changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(formats, format) {
				return fmt.Errorf("unknown format %q (want one of %s): %w", format, strings.Join(formats, ", "), study.ErrValidation)
			}
			if watch && len(args) == 0 {
				return fmt.Errorf("--watch needs at least one file: %w", study.ErrValidation)
			}
			if len(args) == 0 {
				source, err := io.ReadAll(a.stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				return a.renderTo(a.stdout, string(source), format)
			}

			paths, err := expandPaths(args)
			if err != nil {
				return err
			}
			for i, p := range paths {
				if i > 0 {
					fmt.Fprintln(a.stdout)
				}
				if err := a.renderFile(p, format); err != nil {
					return err
				}
			}
			if !watch {
				return nil
			}
			return a.watch(cmd.Context(), paths, format)
		},
	}

	f := cmd.Flags()
	f.StringVar(&format, "format", formatANSI, "output format: "+strings.Join(formats, "|"))
	f.BoolVar(&watch, "watch", false, "re-render files when they change")
	f.Int("width", 0, "wrap width in columns (0 = terminal width)")
	f.String("parser", studyviper.ParserBuiltin, "markdown parser: builtin|goldmark")
	f.String("style", "dark", "glamour style: "+strings.Join(studyglamour.Styles, "|"))
	_ = v.BindPFlag("width", f.Lookup("width"))
	_ = v.BindPFlag("parser", f.Lookup("parser"))
	_ = v.BindPFlag("style", f.Lookup("style"))

	return cmd
}

// formatProfile makes ansi output coloured even when piped and plain output
// free of escape codes even on a terminal.
func formatProfile(format string) termenv.Profile {
	if format == formatPlain {
		return termenv.Ascii
	}
	return termenv.ANSI
}

func (a *app) renderFile(path, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return a.renderTo(a.stdout, string(data), format)
}

func (a *app) renderTo(w io.Writer, source, format string) error {
	out, err := a.render(source, format)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return err
}

// render converts source to the requested format.
func (a *app) render(source, format string) (string, error) {
	if format == formatGlamour {
		return studyglamour.Render(source, a.width(), a.cfg.Style)
	}
	blocks := a.parse(source)
	a.logger.Debug("parsed markdown", "parser", a.cfg.Parser, "blocks", len(blocks))
	switch format {
	case formatMarkdown:
		return markdown.Format(blocks), nil
	case formatJSON:
		data, err := studyjson.MarshalBlocks(blocks)
		if err != nil {
			return "", fmt.Errorf("encode blocks: %w", err)
		}
		return string(data), nil
	default:
		return studylipgloss.Render(blocks, a.width(), study.DefaultTheme(), studylipgloss.WithProfile(formatProfile(format))), nil
	}
}

func (a *app) parse(source string) []study.Block {
	if a.cfg.Parser == studyviper.ParserGoldmark {
		return studygoldmark.Parse(source)
	}
	return markdown.Parse(source)
}

// watch re-renders a file in full each time it changes, until ctx is done.
func (a *app) watch(ctx context.Context, paths []string, format string) error {
	w, err := studyfsnotify.New(paths, func(path string) {
		fmt.Fprintf(a.stdout, "\n==> %s <==\n", path)
		if err := a.renderFile(path, format); err != nil {
			a.logger.Warn("re-render failed", "path", path, "error", err)
		}
	}, a.logger)
	if err != nil {
		return err
	}
	a.logger.Debug("watching files", "count", len(paths))
	return w.Run(ctx)
}

// expandPaths resolves doublestar globs. Arguments without glob syntax are
// passed through so that a missing file is reported when it is read.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		if !doublestar.ValidatePattern(arg) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, study.ErrValidation)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", arg)
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
