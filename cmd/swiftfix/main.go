package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vitormf/swiftfix/cmd/swiftfix/commands"
	"github.com/vitormf/swiftfix/cmd/swiftfix/opts"
	"github.com/vitormf/swiftfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the root command. Shared options are filled in by the
// persistent pre-run, after cobra has parsed the flags.
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "swiftfix",
		Short: "Fix outdated factory.create calls in Swift view factory tests",
		Long: `swiftfix rewrites the platform-view factory test file for the new
factory API: factory.create(withFrame:viewIdentifier:) becomes
factory.create(withViewIdentifier:), and the .view() accessor calls are
removed. Running swiftfix with no arguments fixes the target file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := log.Logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			initialized, err := newRootOpts(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}
			*rootOpts = *initialized

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare swiftfix behaves like swiftfix fix
			return commands.RunFix(cmd.Context(), rootOpts, false)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewFixCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewDiffCmd(rootOpts),
		commands.NewVersionCmd(),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		userLogger := status.NewUserLogger(ctx)
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
