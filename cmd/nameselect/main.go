package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dicklesworthstone/nameselector/pkg/config"
	"github.com/Dicklesworthstone/nameselector/pkg/loader"
	"github.com/Dicklesworthstone/nameselector/pkg/selector"
	"github.com/Dicklesworthstone/nameselector/pkg/ui"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

var errAborted = errors.New("selection aborted")

type options struct {
	configPath      string
	label           string
	placeholder     bool
	placeholderText string
	required        bool
	values          []string
	optionsFile     string
	value           string
	format          string
	copy            bool
	logFile         string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "nameselect [flags]",
		Short: "Pick a value from a filterable list in the terminal",
		Long: `nameselect shows one or more labeled selectors. Click or press enter to
open a selector, type to filter, enter to choose. Chosen values are printed to
stdout as name=value lines (or JSON with --format json).`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML file describing the selectors")
	f.StringVarP(&o.label, "label", "l", "Value", "label of the selector")
	f.BoolVar(&o.placeholder, "placeholder", false, "show the default placeholder while unset")
	f.StringVar(&o.placeholderText, "placeholder-text", "", "custom placeholder text (implies --placeholder)")
	f.BoolVarP(&o.required, "required", "r", false, "require a value; the selector cannot be cleared")
	f.StringArrayVarP(&o.values, "option", "o", nil, "candidate value (repeatable)")
	f.StringVarP(&o.optionsFile, "options-file", "f", "", "file with candidates (.txt, .jsonl, .yaml)")
	f.StringVar(&o.value, "value", "", "initially selected value")
	f.StringVar(&o.format, "format", config.OutputText, "output format: text or json")
	f.BoolVar(&o.copy, "copy", false, "copy the output to the clipboard")
	f.StringVar(&o.logFile, "log-file", "", "write debug logs to this file")
	return cmd
}

func buildConfig(cmd *cobra.Command, o options) (*config.File, error) {
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("format") {
			cfg.Output = o.format
		}
		return cfg, cfg.Validate()
	}

	customPlaceholder := o.placeholderText != "" || cmd.Flags().Changed("placeholder-text")
	field := config.Field{
		Name:     o.label,
		Label:    o.label,
		Required: o.required,
		Options:  o.values,
		Value:    o.value,
		Placeholder: config.PlaceholderSetting{
			Enabled: o.placeholder || customPlaceholder,
			Custom:  customPlaceholder,
			Text:    o.placeholderText,
		},
	}
	if o.optionsFile != "" {
		extra, err := loader.LoadOptions(o.optionsFile)
		if err != nil {
			return nil, err
		}
		field.Options = append(field.Options, extra...)
	}
	cfg := &config.File{Output: o.format, Selectors: []config.Field{field}}
	return cfg, cfg.Validate()
}

func setupLogging(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	})
	return slog.New(handler), func() { logFile.Close() }, nil
}

func run(cmd *cobra.Command, o options) error {
	cfg, err := buildConfig(cmd, o)
	if err != nil {
		return err
	}

	// The UI draws on stderr so stdout stays free for the result.
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		return errors.New("nameselect needs an interactive terminal on stdin and stderr")
	}

	logger, closeLog, err := setupLogging(o.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	theme := ui.DefaultTheme(lipgloss.NewRenderer(os.Stderr))
	m, err := newAppModel(cfg, theme, logger, selector.DefaultRegistry)
	if err != nil {
		return err
	}
	logger.Info("starting", "selectors", len(cfg.Selectors), "output", cfg.Output)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running selector: %w", err)
	}
	app := final.(*appModel)
	app.unmount()
	if app.aborted {
		return errAborted
	}

	out, err := formatResults(app.results(), cfg.Output)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if o.copy {
		if err := clipboard.WriteAll(strings.TrimRight(out, "\n")); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
