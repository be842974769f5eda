package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/fasam/internal/errors"
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	configPath string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fasam",
		Short: "Fire and Security Alarm Monitoring dashboard",
		Long: `fasam shows a terminal dashboard of fire and security alarm statistics:
a rolling 29-hour bar chart of alarm counts, a live log panel and controls
to trigger and reset alarms.

Keys:
  t  trigger the alarm
  r  reset the alarms
  q  quit

Alarm history is synthetic and nothing is persisted between runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), opts.configPath)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./.fasam.yaml, then ~/.config/fasam/config.yaml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newCompletionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}
