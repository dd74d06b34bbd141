package main

import (
	"fmt"

	"github.com/ruminaider/claude-switch/internal/commands"
	"github.com/spf13/cobra"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Match Claude Code's settings.json against the profiles",
		Long: "Mark the profile whose JSON equals ~/.claude/settings.json as default, or import\n" +
			"settings.json as a new default profile when none matches.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			res, err := sw.Sync()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch res.Outcome {
			case commands.SyncMatched:
				fmt.Fprintf(out, "Claude Code settings match %s (default)\n", res.Profile)
			case commands.SyncImported:
				fmt.Fprintf(out, "Imported Claude Code settings as %s (default)\n", res.Profile)
			default:
				fmt.Fprintln(out, "No readable Claude Code settings.json; nothing to sync.")
			}
			return nil
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff NAME",
		Short: "Show how a profile differs from Claude Code's settings.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := profileArg(args[0])
			if err != nil {
				return err
			}
			d, err := sw.Diff(name)
			if err != nil {
				return err
			}
			if d == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store location, default profile and sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			reportSync(cmd, sw)

			res, err := sw.Status()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Store:     %s\n", res.StoreDir)
			fmt.Fprintf(out, "Claude:    %s\n", res.ClaudeDir)
			fmt.Fprintf(out, "Theme:     %s\n", res.Theme)
			fmt.Fprintf(out, "Profiles:  %d\n", res.Profiles)

			switch {
			case res.Default == "":
				fmt.Fprintln(out, "Default:   (none)")
			case res.DefaultMissing:
				fmt.Fprintf(out, "Default:   %s (file missing)\n", res.Default)
			default:
				fmt.Fprintf(out, "Default:   %s\n", res.Default)
			}

			switch {
			case !res.ClaudeSettings:
				fmt.Fprintln(out, "Claude Code settings.json not found.")
			case res.InSync:
				fmt.Fprintln(out, "Claude Code settings.json matches the default profile.")
			case res.Default != "" && !res.DefaultMissing:
				fmt.Fprintf(out, "Claude Code settings.json differs from %s (see 'claude-switch diff %s').\n", res.Default, res.Default)
			}
			return nil
		},
	}
}
