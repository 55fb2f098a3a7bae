package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vitormf/swiftfix/cmd/swiftfix/opts"
	"github.com/vitormf/swiftfix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the target still needs fixing",
		Long: `Check applies the ruleset in memory and reports whether the target
still contains rewritable occurrences. The target is never modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			op := operation.NewCheckOperation(operation.Options{
				Config:     o.Config,
				StatusMgr:  o.StatusMgr,
				UserLogger: o.UserLogger,
			})

			if err := o.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("checking target: %w", err)
			}

			return nil
		},
	}

	return cmd
}
