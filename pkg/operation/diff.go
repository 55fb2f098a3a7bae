package operation

import (
	"context"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/vitormf/swiftfix/pkg/status"
)

// 📋 NewDiffOperation creates a new diff operation
func NewDiffOperation(opts Options) Operation {
	return &diffOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📋 diffOperation previews the rewrite without applying it
type diffOperation struct {
	BaseOperation
}

func (op *diffOperation) Name() string { return "diff" }

// 🏃 Execute runs the diff operation. It never writes to the target.
func (op *diffOperation) Execute(ctx context.Context) error {
	target := op.Config.Target

	result, err := op.plan(ctx)
	if err != nil {
		return err
	}

	if !result.WasModified {
		op.UserLogger.LogStateChange(fmt.Sprintf("no pending changes for %s", target))
		op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
			Path:   target,
			Status: status.StatusUnchanged,
		})
		return nil
	}

	// Character diff, rendered with color for the terminal
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(result.OriginalContent), string(result.ModifiedContent), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	op.UserLogger.LogDiff(
		fmt.Sprintf("planned changes for %s (%d replacements)", target, result.ReplacementCount),
		dmp.DiffPrettyText(diffs),
	)
	op.StatusMgr.TrackFile(ctx, target, status.FileInfo{
		Path:         target,
		Status:       status.StatusModified,
		Replacements: result.ReplacementCount,
	})

	return nil
}
