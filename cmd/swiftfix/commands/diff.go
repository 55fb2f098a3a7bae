package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vitormf/swiftfix/cmd/swiftfix/opts"
	"github.com/vitormf/swiftfix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewDiffCmd creates a new diff command
func NewDiffCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Preview the planned rewrite as a diff",
		Long: `Diff renders the change the fix command would apply, without writing
anything. The target is never modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "diff").Logger().WithContext(ctx)

			op := operation.NewDiffOperation(operation.Options{
				Config:     o.Config,
				StatusMgr:  o.StatusMgr,
				UserLogger: o.UserLogger,
			})

			if err := o.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("previewing changes: %w", err)
			}

			return nil
		},
	}

	return cmd
}
