package main

import (
	"github.com/spf13/cobra"

	"github.com/sayotte/pathstate/internal/logging"
)

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "pathdemo",
		Short:         "Find shortest paths across grid maps with A*",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(flags.logFormat)
			if err != nil {
				return err
			}
			logging.Init(level, format, cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.Version = version

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newGenmapCmd())
	rootCmd.AddCommand(newSolveCmd())
	return rootCmd
}
