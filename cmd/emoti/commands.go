package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/emoti/internal/config"
	"github.com/muurk/emoti/internal/entries"
	"github.com/muurk/emoti/internal/logging"
	"github.com/muurk/emoti/internal/picker"
	"github.com/muurk/emoti/internal/selector"
	"github.com/muurk/emoti/internal/ui"
	"github.com/muurk/emoti/internal/version"
)

// Command flags
var (
	configPath string
	pickerName string
	rofiPath   string
	rofiArgs   []string
	hold       time.Duration
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "emoti",
	Short: "Pick a snippet and copy it to the clipboard",
	Long: `Pick a predefined snippet (emoji, shortcode, any text) from your
configuration and copy it to the clipboard.

Snippets are read from $XDG_CONFIG_HOME/emoti/config.yaml, falling back to
$HOME/.config/emoti/config.yaml and /home/$USER/emoti/config.yaml.

The picker is rofi when it is installed, otherwise a list in the terminal.
After copying, emoti stays running for --hold so the clipboard contents
remain available on desktops where the copying process must stay alive.`,
	Example: `  # Pick with rofi (or the terminal list when rofi is missing)
  emoti

  # Use a specific config file and the terminal picker
  emoti --config ./snippets.yaml --picker terminal

  # Exit right after copying
  emoti --hold 0

  # Pass a theme to rofi
  emoti --rofi-arg -theme --rofi-arg gruvbox-dark`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runPick,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: resolved from XDG_CONFIG_HOME, HOME or USER)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	rootCmd.Flags().StringVar(&pickerName, "picker", string(picker.KindAuto), "Picker to use (auto, rofi, terminal)")
	rootCmd.Flags().StringVar(&rofiPath, "rofi", "rofi", "Path to the rofi binary")
	rootCmd.Flags().StringArrayVar(&rofiArgs, "rofi-arg", nil, "Extra argument passed to rofi (repeatable)")
	rootCmd.Flags().DurationVar(&hold, "hold", selector.DefaultHold, "How long to stay running after copying (0 to exit immediately)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	kind, err := picker.ParseKind(pickerName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := cmd.ErrOrStderr()
	s := selector.New(selector.Config{
		ConfigPath: configPath,
		OnPath: func(path string) {
			ui.NewPrinter(stderr, isTerminal(stderr)).PrintMuted("path: " + path)
		},
		NewPicker: func(style config.Style) (picker.Picker, error) {
			return picker.New(picker.Options{
				Kind:     kind,
				RofiPath: rofiPath,
				RofiArgs: rofiArgs,
				Style:    style,
			})
		},
		Hold: hold,
	}, logging.GetLogger())

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}

	logging.Info("Done",
		zap.String("outcome", result.Outcome.String()),
		zap.String("config", result.Path),
	)
	return nil
}

// listCmd prints the formatted entries
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured snippets",
	Long: `Print every configured snippet as an aligned "key  value" line, in the
order the picker shows them.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	path, err := resolvePath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", selector.StageLoadConfig, err)
	}

	items, err := entries.Format(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", selector.StageFormat, err)
	}

	out := cmd.OutOrStdout()
	ui.NewPrinter(out, isTerminal(out)).PrintEntries(items, cfg.Style())
	return nil
}

// pathCmd prints the config path that would be used
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "emoti %s\n", version.Full())
	},
}

// isTerminal reports whether w is a terminal, so styling is only applied to
// interactive output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func resolvePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.ResolvePath(os.LookupEnv)
	if err != nil {
		return "", fmt.Errorf("%s: %w", selector.StageResolvePath, err)
	}
	return path, nil
}
