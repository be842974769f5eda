package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/fasam/internal/config"
	"github.com/rileyhilliard/fasam/internal/errors"
	"github.com/rileyhilliard/fasam/internal/logger"
	"github.com/rileyhilliard/fasam/internal/ui"
)

// confirmOverwrite asks before replacing an existing config. Tests replace it.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// stdinIsTerminal reports whether prompting is possible. Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// InitOptions holds options for the config init command.
type InitOptions struct {
	Path      string // Target file; defaults to ./.fasam.yaml
	Global    bool   // Write ~/.config/fasam/config.yaml instead
	Overwrite bool   // Overwrite existing config without asking
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fasam config file",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(root))
	cmd.AddCommand(newConfigSetCmd(root))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	opts := InitOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Long: `Write a config file populated with the default settings.

Examples:
  fasam config init
  fasam config init --global
  fasam config init --path ./dev.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Path, "path", "", "where to write the config (default ./"+config.ConfigFileName+")")
	cmd.Flags().BoolVar(&opts.Global, "global", false, "write the global config in ~/"+config.GlobalConfigDir)
	cmd.Flags().BoolVarP(&opts.Overwrite, "force", "f", false, "overwrite existing config")
	return cmd
}

// initConfig writes a default config file.
func initConfig(cmd *cobra.Command, opts InitOptions) error {
	path, err := initTarget(opts)
	if err != nil {
		return err
	}

	overwrite := opts.Overwrite
	if _, statErr := os.Stat(path); statErr == nil && !overwrite {
		if !stdinIsTerminal() {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		ok, err := confirmOverwrite(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !ok {
			ui.Muted(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		overwrite = true
	}

	if err := config.Write(path, config.DefaultConfig(), overwrite); err != nil {
		return err
	}
	logger.Default().Debug("wrote default config to %s", path)
	ui.Success(cmd.OutOrStdout(), "Wrote %s", path)
	return nil
}

func initTarget(opts InitOptions) (string, error) {
	switch {
	case opts.Path != "" && opts.Global:
		return "", errors.New(errors.ErrConfig,
			"--path and --global can't be used together",
			"Pick one of them.")
	case opts.Path != "":
		return opts.Path, nil
	case opts.Global:
		global := config.GlobalPath()
		if global == "" {
			return "", errors.New(errors.ErrConfig,
				"Cannot determine your home directory",
				"Use --path to choose where to write the config.")
		}
		return global, nil
	default:
		return filepath.Join(".", config.ConfigFileName), nil
	}
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved config",
		Long: `Print the config after applying defaults, the config file and
FASAM_* environment overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig, "Failed to render config", "")
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, "# source: defaults (no config file found)")
			} else {
				fmt.Fprintf(out, "# source: %s\n", path)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigSetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one value in the config file",
		Long: `Change one value in the config file, keeping comments and the
rest of the file as they are. The new value is validated before saving.

Examples:
  fasam config set tick_interval 1s
  fasam config set color never`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Find(root.configPath)
			if err != nil {
				return err
			}
			if path == "" {
				return errors.New(errors.ErrConfig,
					"No config file found",
					"Run 'fasam config init' first.")
			}
			if err := config.Set(path, args[0], args[1]); err != nil {
				return err
			}
			ui.Success(cmd.OutOrStdout(), "Set %s = %s in %s", args[0], args[1], path)
			return nil
		},
	}
}
