package operation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vitormf/swiftfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 💬 ConfirmationMessage is printed to stdout after every successful fix,
// even when nothing matched.
const ConfirmationMessage = "Fixed all factory.create calls and .view() references"

// 🔧 NewFixOperation creates a new fix operation
func NewFixOperation(opts Options) Operation {
	return &fixOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🔧 fixOperation rewrites the target file in place
type fixOperation struct {
	BaseOperation
}

func (op *fixOperation) Name() string { return "fix" }

// 🏃 Execute runs the fix operation
func (op *fixOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	target := op.Config.Target

	result, err := op.plan(ctx)
	if err != nil {
		return err
	}

	if op.DryRun {
		op.UserLogger.LogFileChange(status.FileChange{
			Type:        status.FileSkipped,
			Path:        target,
			Description: fmt.Sprintf("dry run, %d replacements pending", result.ReplacementCount),
		})
		op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
			Path:         target,
			Status:       status.StatusSkipped,
			Replacements: result.ReplacementCount,
		})
		return nil
	}

	if op.Config.Backup {
		if err := op.StatusMgr.BackupFile(ctx, target); err != nil {
			return errors.Errorf("backing up %s: %w", target, err)
		}
		op.UserLogger.LogFileChange(status.FileChange{
			Type: status.FileBackedUp,
			Path: target,
		})
	}

	// The target is always rewritten, changed or not
	if err := op.StatusMgr.WriteFileAtomic(ctx, target, result.ModifiedContent); err != nil {
		return errors.Errorf("writing %s: %w", target, err)
	}

	if result.WasModified {
		op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
			Path:         target,
			Status:       status.StatusModified,
			Size:         int64(len(result.ModifiedContent)),
			Replacements: result.ReplacementCount,
		})
		op.UserLogger.LogFileChange(status.FileChange{
			Type:        status.FileUpdated,
			Path:        target,
			Description: fmt.Sprintf("%d replacements", result.ReplacementCount),
		})
	} else {
		op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
			Path:   target,
			Status: status.StatusUnchanged,
			Size:   int64(len(result.ModifiedContent)),
		})
		op.UserLogger.LogFileChange(status.FileChange{
			Type:        status.FileUnchanged,
			Path:        target,
			Description: "already migrated",
		})
	}

	// Per-rule counts for the structured log
	logEvent := logger.Debug().Str("target", target).Int("replacements", result.ReplacementCount)
	for _, match := range result.RuleMatches {
		logEvent = logEvent.Int(match.Rule, match.Count)
	}
	logEvent.Msg("fix complete")

	op.UserLogger.LogConfirmation(ConfirmationMessage)

	return nil
}
