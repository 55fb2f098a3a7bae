package rewrite

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// RuleMatch records the outcome of one rule against a document.
type RuleMatch struct {
	// Rule is the name of the rule that ran.
	Rule string

	// Count is the number of occurrences the rule rewrote.
	Count int

	// Skipped reports whether the rule was skipped because its file
	// filter did not match the target path.
	Skipped bool
}

// Result contains the results of rewriting a document.
type Result struct {
	// WasModified indicates if any rule changed the content
	WasModified bool

	// ReplacementCount is the total number of occurrences rewritten
	ReplacementCount int

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte

	// RuleMatches holds per-rule outcomes, in application order
	RuleMatches []RuleMatch
}

// Rewriter applies an ordered ruleset to document content. Rules run in
// the order they were given; each rule sees the output of the previous one.
type Rewriter struct {
	rules []Rule
}

// New creates a Rewriter after validating every rule.
func New(rules ...Rule) (*Rewriter, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return &Rewriter{rules: rules}, nil
}

// Rules returns the ruleset in application order.
func (r *Rewriter) Rules() []Rule {
	return r.rules
}

// Rewrite applies the ruleset to content, in order. Rules whose file filter
// does not match path are skipped, not applied. The content must decode as
// UTF-8 text; nothing is rewritten otherwise.
func (r *Rewriter) Rewrite(ctx context.Context, path string, content []byte) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if !utf8.Valid(content) {
		return nil, errors.Errorf("decoding %s: content is not valid UTF-8", path)
	}

	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
		RuleMatches:     make([]RuleMatch, 0, len(r.rules)),
	}

	// Apply each rule
	currentContent := string(content)
	for _, rule := range r.rules {
		if !appliesTo(rule, path) {
			logger.Debug().
				Str("rule", rule.Name()).
				Str("path", path).
				Msg("rule skipped by file filter")
			result.RuleMatches = append(result.RuleMatches, RuleMatch{Rule: rule.Name(), Skipped: true})
			continue
		}

		newContent, count := rule.Apply(currentContent)

		// Update counts if changed
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += count
		}
		result.RuleMatches = append(result.RuleMatches, RuleMatch{Rule: rule.Name(), Count: count})

		logger.Debug().
			Str("rule", rule.Name()).
			Str("path", path).
			Int("count", count).
			Msg("rule applied")

		currentContent = newContent
	}

	// Update final content
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}
