package operation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vitormf/swiftfix/pkg/status"
)

// 🔍 NewCheckOperation creates a new check operation
func NewCheckOperation(opts Options) Operation {
	return &checkOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🔍 checkOperation reports whether the target still needs fixing
type checkOperation struct {
	BaseOperation
}

func (op *checkOperation) Name() string { return "check" }

// 🏃 Execute runs the check operation. It never writes to the target.
func (op *checkOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	target := op.Config.Target

	result, err := op.plan(ctx)
	if err != nil {
		return err
	}

	if result.WasModified {
		op.UserLogger.LogValidation(false, fmt.Sprintf("%s needs fixing (%d occurrences)", target, result.ReplacementCount), nil)
		op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
			Path:         target,
			Status:       status.StatusModified,
			Replacements: result.ReplacementCount,
		})
	} else {
		op.UserLogger.LogValidation(true, fmt.Sprintf("%s is already fixed", target), nil)
		op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
			Path:   target,
			Status: status.StatusUnchanged,
		})
	}

	logger.Debug().Str("target", target).Bool("needs_fixing", result.WasModified).Msg("check complete")
	return nil
}
