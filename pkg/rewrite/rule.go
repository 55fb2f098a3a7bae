package rewrite

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Rule is a single substitution applied to document content. Every rule
// carries a doublestar file filter; a rule whose filter does not match the
// target path is skipped rather than applied.
type Rule interface {
	// Name identifies the rule in logs and results.
	Name() string

	// FileFilterGlob is the doublestar pattern deciding whether the rule
	// applies to a target path.
	FileFilterGlob() string

	// Apply rewrites content, returning the new content and the number of
	// occurrences rewritten.
	Apply(content string) (string, int)

	// Validate checks that the rule is well formed.
	Validate() error
}

// PatternRule rewrites every match of a regular expression with literal
// replacement text. The replacement is inserted verbatim; capture-group
// references are not expanded.
type PatternRule struct {
	// RuleName identifies the rule in logs and results.
	RuleName string

	// Pattern is the compiled expression to search for.
	Pattern *regexp.Regexp

	// Replacement is the literal text inserted for each match.
	Replacement string

	// Glob filters which target paths the rule applies to.
	Glob string
}

func (r *PatternRule) Name() string           { return r.RuleName }
func (r *PatternRule) FileFilterGlob() string { return r.Glob }

// Apply implements Rule.Apply.
func (r *PatternRule) Apply(content string) (string, int) {
	count := len(r.Pattern.FindAllStringIndex(content, -1))
	if count == 0 {
		return content, 0
	}
	return r.Pattern.ReplaceAllLiteralString(content, r.Replacement), count
}

// Validate implements Rule.Validate.
func (r *PatternRule) Validate() error {
	if r.RuleName == "" {
		return errors.New("name is required")
	}
	if r.Pattern == nil {
		return errors.New("pattern is required")
	}
	if r.Glob == "" {
		return errors.New("file_filter_glob is required")
	}
	return nil
}

// LiteralRule replaces every occurrence of an exact substring. An empty
// ToText deletes each occurrence outright.
type LiteralRule struct {
	// RuleName identifies the rule in logs and results.
	RuleName string

	// FromText is the text to replace.
	FromText string

	// ToText is the replacement text.
	ToText string

	// Glob filters which target paths the rule applies to.
	Glob string
}

func (r *LiteralRule) Name() string           { return r.RuleName }
func (r *LiteralRule) FileFilterGlob() string { return r.Glob }

// Apply implements Rule.Apply.
func (r *LiteralRule) Apply(content string) (string, int) {
	count := strings.Count(content, r.FromText)
	if count == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, r.FromText, r.ToText), count
}

// Validate implements Rule.Validate.
func (r *LiteralRule) Validate() error {
	if r.RuleName == "" {
		return errors.New("name is required")
	}
	if r.FromText == "" {
		return errors.New("from_text is required")
	}
	if r.Glob == "" {
		return errors.New("file_filter_glob is required")
	}
	return nil
}

// ValidateRules checks every rule in the set.
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// appliesTo reports whether a rule's file filter matches the target path.
// Globs are validated up front, so a match error counts as a miss.
func appliesTo(rule Rule, path string) bool {
	matched, err := doublestar.Match(rule.FileFilterGlob(), filepath.ToSlash(path))
	if err != nil {
		return false
	}
	return matched
}
