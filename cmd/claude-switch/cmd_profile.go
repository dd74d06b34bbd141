package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/claude-switch/internal/paths"
	"github.com/ruminaider/claude-switch/internal/profiles"
	"github.com/spf13/cobra"
)

// errNotConfirmed is returned when a destructive command is cancelled.
var errNotConfirmed = errors.New("cancelled")

// profileArg accepts a profile name with or without the .json extension.
func profileArg(arg string) (string, error) {
	return profiles.NormalizeName(arg)
}

func newNewCmd(a *app) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a profile from the template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := sw.Create(base)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "name", "", "base name (default "+profiles.NewProfileBase+"); _N is appended on collision")
	return cmd
}

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			oldName, err := profileArg(args[0])
			if err != nil {
				return err
			}
			newName, err := sw.Rename(oldName, args[1])
			if newName == "" {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", oldName, newName)
			return err
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := profileArg(args[0])
			if err != nil {
				return err
			}
			if !sw.Store().Exists(name) {
				return fmt.Errorf("profile %s not found", name)
			}

			if !yes {
				if !a.interactive() {
					return fmt.Errorf("refusing to delete %s without --yes in a non-interactive session", name)
				}
				confirmed := false
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Delete %s?", name)).
							Description("This cannot be undone.").
							Affirmative("Delete").
							Negative("Cancel").
							Value(&confirmed),
					),
				).Run()
				if err != nil || !confirmed {
					return errNotConfirmed
				}
			}

			if err := sw.Delete(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

func newDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default NAME",
		Short: "Mark a profile as default and apply it to Claude Code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := profileArg(args[0])
			if err != nil {
				return err
			}
			if !sw.Store().Exists(name) {
				return fmt.Errorf("profile %s not found", name)
			}
			if err := sw.SetDefault(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now the default and was copied to Claude Code's settings.json\n", name)
			return nil
		},
	}
}

func newActivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activate NAME",
		Short: "Copy a profile into the store's settings.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := profileArg(args[0])
			if err != nil {
				if strings.TrimSpace(args[0]) == paths.ActiveSettingsName {
					return fmt.Errorf("activating %s: %w", paths.ActiveSettingsName, profiles.ErrReservedTarget)
				}
				return err
			}
			if err := sw.ActivateLocal(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to %s\n", name, sw.Store().ReservedPath())
			return nil
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "format NAME",
		Short: "Pretty-print a profile's JSON",
		Long:  "Print the formatted profile, or rewrite it in place with --write. Writing the default profile also updates Claude Code's settings.json.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			name, err := profileArg(args[0])
			if err != nil {
				return err
			}
			content, err := sw.Read(name)
			if err != nil {
				return err
			}

			if !write {
				formatted, err := profiles.Format(content)
				if err != nil {
					return fmt.Errorf("formatting %s: %w", name, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
				return nil
			}

			res, err := sw.Save(name, content)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", name)
			if res.Mirrored {
				fmt.Fprintln(cmd.OutOrStdout(), "Applied to Claude Code")
			}
			return res.MirrorErr
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file")
	return cmd
}
