package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/ruminaider/claude-switch/internal/commands"
	"github.com/ruminaider/claude-switch/internal/profiles"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles (* marks the default)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, a, long)
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show size and modification time")
	return cmd
}

func runList(cmd *cobra.Command, a *app, long bool) error {
	sw := a.open(cmd)
	reportSync(cmd, sw)

	names, err := sw.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No profiles. Create one with 'claude-switch new'.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		marker := " "
		if sw.IsDefault(name) {
			marker = "*"
		}
		if !long {
			fmt.Fprintf(tw, "%s %s\n", marker, name)
			continue
		}
		info, err := sw.Store().Stat(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, name,
			humanize.Bytes(uint64(info.Size)), humanize.Time(info.ModTime))
	}
	return tw.Flush()
}

// reportSync runs the startup sync and prints what it changed.
func reportSync(cmd *cobra.Command, sw *commands.Switcher) {
	res, err := sw.Sync()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: sync failed: %v\n", err)
		return
	}
	if res.Outcome == commands.SyncImported {
		fmt.Fprintf(cmd.ErrOrStderr(), "Imported Claude Code settings as %s (default)\n", res.Profile)
	}
}

func newShowCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := profiles.NormalizeName(args[0])
			if err != nil {
				return err
			}
			content, err := sw.Read(name)
			if err != nil {
				return err
			}
			if asYAML {
				content, err = profiles.ToYAML(content)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	return cmd
}
