package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/claude-switch/cmd/claude-switch/tui"
	"github.com/ruminaider/claude-switch/internal/commands"
	"github.com/ruminaider/claude-switch/internal/logging"
	"github.com/ruminaider/claude-switch/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// app carries the global flags and the logger shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	storeDir  string
	claudeDir string

	log *slog.Logger

	// interactive reports whether prompts and the TUI may be used.
	interactive func() bool
}

func newApp() *app {
	return &app{
		log: logging.Discard(),
		interactive: func() bool {
			return term.IsTerminal(os.Stdin.Fd())
		},
	}
}

// setupLogger builds the logger from the global flags, writing to w.
func (a *app) setupLogger(w io.Writer) error {
	l, err := logging.New(w, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.log = l
	return nil
}

// open loads AppSettings and the store. Notices go to stderr.
func (a *app) open(cmd *cobra.Command) *commands.Switcher {
	sw, notices := commands.Open(a.options())
	for _, n := range notices {
		prefix := "warning"
		if n.Level == commands.NoticeError {
			prefix = "error"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", prefix, n.Message)
	}
	return sw
}

func (a *app) options() commands.Options {
	return commands.Options{
		ClaudeDir: a.claudeDir,
		StoreDir:  a.storeDir,
		Logger:    a.log,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-switch",
		Short: "Switch between Claude Code settings profiles",
		Long: "claude-switch keeps named JSON profiles of Claude Code's settings.json and copies\n" +
			"the chosen default into ~/.claude/settings.json. Without a subcommand it opens the editor UI.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// TTY guard: fall back to list when stdin is not a terminal
			// (piping, CI, scripts, etc.)
			if !a.interactive() {
				return runList(cmd, a, false)
			}
			return runTUI(a)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info",
		"log level ("+strings.Join(logging.AllLevels, ", ")+")")
	flags.StringVar(&a.logFormat, "log-format", "text",
		"log format ("+strings.Join(logging.AllFormats, ", ")+")")
	flags.StringVar(&a.storeDir, "store-dir", "", "profile store directory for this run (not saved)")
	flags.StringVar(&a.claudeDir, "claude-dir", "", "Claude Code configuration directory (default ~/.claude)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(a),
		newShowCmd(a),
		newNewCmd(a),
		newRenameCmd(a),
		newDeleteCmd(a),
		newDefaultCmd(a),
		newActivateCmd(a),
		newFormatCmd(a),
		newSyncCmd(a),
		newDiffCmd(a),
		newStatusCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "claude-switch %s\n", version)
		},
	}
}

// runTUI launches the full-screen editor. Logs go to the log file so they do
// not tear the screen.
func runTUI(a *app) error {
	f, err := logging.OpenFile(paths.LogFile())
	if err != nil {
		return err
	}
	defer f.Close()
	if err := a.setupLogger(f); err != nil {
		return err
	}

	sw, notices := commands.Open(a.options())
	model := tui.NewModel(sw, notices, tui.Options{
		Watch:     true,
		Clipboard: clipboard.WriteAll,
		Logger:    a.log,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(tui.Model); ok {
		if err := m.Close(); err != nil {
			a.log.Warn("closing watcher", "err", err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
