package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/internal/config"
	"hopd/internal/errors"
)

// NewThemesCmd creates the themes command
func NewThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes [name]",
		Short: "List color themes, or pick one",
		Long: `List the color themes hopd ships with. With a name, switch to that
theme and write the choice to the config file. Individual colors can
still be overridden per key under the theme section.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return setTheme(cmd, args[0])
			}

			ui := cli.NewWriter(cmd.OutOrStdout(), cfg)
			for _, name := range config.ListThemes() {
				if name == cfg.Theme.Name {
					ui.Plain("%s %s", name, ui.Styles().Emphasis.Render("(active)"))
				} else {
					ui.Plain("%s", name)
				}
			}
			return nil
		},
	}
}

func setTheme(cmd *cobra.Command, name string) error {
	known := false
	for _, t := range config.ListThemes() {
		if t == name {
			known = true
			break
		}
	}
	if !known {
		return errors.NewConfigError("unknown theme", name, errors.InvalidConfig, nil)
	}

	cfg.ApplyTheme(name)

	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}

	cli.NewWriter(cmd.OutOrStdout(), cfg).Success("theme set to %s", name)
	return nil
}
