package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/claude-switch/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change app settings",
	}
	cmd.AddCommand(newConfigDirCmd(a), newConfigThemeCmd(a))
	return cmd
}

func newConfigDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dir [PATH]",
		Short: "Show or change the profile store directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			out := cmd.OutOrStdout()

			var dir string
			switch {
			case len(args) == 1:
				dir = args[0]
			case a.interactive():
				dir = sw.StoreDir()
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Profile store directory:").
							Description("Profiles live in its settings/ subdirectory.").
							Value(&dir).
							Validate(func(s string) error {
								if strings.TrimSpace(s) == "" {
									return fmt.Errorf("directory cannot be empty")
								}
								return nil
							}),
					),
				).Run()
				if err != nil {
					return errNotConfirmed
				}
			default:
				fmt.Fprintln(out, sw.StoreDir())
				return nil
			}

			dir = strings.TrimSpace(dir)
			if err := sw.ChangeStoreDir(dir); err != nil {
				return err
			}
			fmt.Fprintf(out, "Store directory set to %s\n", dir)
			return nil
		},
	}
}

func newConfigThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [Dark|Light|toggle]",
		Short:     "Show or change the UI theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(config.ThemeDark), string(config.ThemeLight), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.open(cmd)
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, sw.Settings().Theme)
				return nil
			}

			switch strings.ToLower(args[0]) {
			case "toggle":
				if _, err := sw.ToggleTheme(); err != nil {
					return err
				}
			case "dark":
				if err := sw.SetTheme(config.ThemeDark); err != nil {
					return err
				}
			case "light":
				if err := sw.SetTheme(config.ThemeLight); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown theme %q (want Dark, Light or toggle)", args[0])
			}
			fmt.Fprintf(out, "Theme set to %s\n", sw.Settings().Theme)
			return nil
		},
	}
}
