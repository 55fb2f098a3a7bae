package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vitormf/swiftfix/cmd/swiftfix/opts"
	"github.com/vitormf/swiftfix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(o *opts.RootOpts) *cobra.Command {
	var (
		dryRun bool
		backup bool
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite the target test file in place",
		Long: `Fix rewrites the target Swift test file:
1. Rewrite factory.create(withFrame:viewIdentifier:) calls to the
   single-argument withViewIdentifier: form
2. Delete every .view() accessor call
3. Apply any extra replacements from the config
4. Write the result back atomically`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "fix").Logger().WithContext(ctx)

			if backup {
				o.Config.Backup = true
			}

			return RunFix(ctx, o, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().BoolVar(&backup, "backup", false, "keep a .bak copy of the original before rewriting")

	return cmd
}

// RunFix executes the fix operation. The bare root command delegates here.
func RunFix(ctx context.Context, o *opts.RootOpts, dryRun bool) error {
	op := operation.NewFixOperation(operation.Options{
		Config:     o.Config,
		StatusMgr:  o.StatusMgr,
		UserLogger: o.UserLogger,
		DryRun:     dryRun,
	})

	if err := o.Runner.Run(ctx, op); err != nil {
		return errors.Errorf("fixing target: %w", err)
	}

	return nil
}
