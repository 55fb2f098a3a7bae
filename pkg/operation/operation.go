package operation

import (
	"context"
	"fmt"

	"github.com/vitormf/swiftfix/pkg/config"
	"github.com/vitormf/swiftfix/pkg/rewrite"
	"github.com/vitormf/swiftfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work against the target file
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
	// Name identifies the operation in logs
	Name() string
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config is the swiftfix configuration
	Config *config.Config
	// StatusMgr handles file access and status tracking
	StatusMgr *status.Manager
	// UserLogger provides user-facing output
	UserLogger *status.UserLogger
	// DryRun reports what would change without writing
	DryRun bool
}

// 🏗️ BaseOperation provides common functionality for operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}

// 🧰 newRewriter builds the ruleset: the built-in rules first, then any
// configured replacements, in config order.
func (op *BaseOperation) newRewriter() (*rewrite.Rewriter, error) {
	rules := rewrite.BuiltinRules()

	for i, r := range op.Config.Replacements {
		glob := rewrite.MatchAllGlob
		if r.File != nil {
			glob = *r.File
		}
		rules = append(rules, &rewrite.LiteralRule{
			RuleName: fmt.Sprintf("extra-replacement-%d", i+1),
			FromText: r.Old,
			ToText:   r.New,
			Glob:     glob,
		})
	}

	return rewrite.New(rules...)
}

// 📐 plan reads the target and computes the rewrite in memory. Nothing on
// disk changes.
func (op *BaseOperation) plan(ctx context.Context) (*rewrite.Result, error) {
	content, err := op.StatusMgr.ReadFile(ctx, op.Config.Target)
	if err != nil {
		return nil, errors.Errorf("reading target %s: %w", op.Config.Target, err)
	}

	rewriter, err := op.newRewriter()
	if err != nil {
		return nil, errors.Errorf("building ruleset: %w", err)
	}

	result, err := rewriter.Rewrite(ctx, op.Config.Target, content)
	if err != nil {
		return nil, errors.Errorf("rewriting %s: %w", op.Config.Target, err)
	}

	return result, nil
}
