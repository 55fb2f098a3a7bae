package rewrite

import "regexp"

// DefaultFileFilterGlob scopes the built-in rules to Swift sources.
const DefaultFileFilterGlob = "**/*.swift"

// MatchAllGlob applies a rule to every target path. Configured replacements
// without an explicit file filter use it.
const MatchAllGlob = "**"

// Names of the built-in rules.
const (
	FrameArgumentRuleName = "factory-frame-argument"
	ViewAccessorRuleName  = "view-accessor"
)

// frameCreatePattern matches factory.create calls that still pass a frame
// ahead of the view identifier. Arbitrary whitespace, including newlines, may
// separate the arguments. The frame expression match stops at the first
// comma, so a frame built from a multi-argument constructor
// (CGRect(x: 0, y: 0, width: w, height: h)) is not matched and passes
// through unchanged.
var frameCreatePattern = regexp.MustCompile(`factory\.create\(\s*withFrame:\s*[^,]+,\s*viewIdentifier:`)

// BuiltinRules returns a fresh copy of the fixed ruleset for the
// platform-view factory migration: rewrite factory.create calls to the
// withViewIdentifier: form, then delete every .view() accessor call. The
// frame rewrite always runs before the accessor deletion.
func BuiltinRules() []Rule {
	return []Rule{
		&PatternRule{
			RuleName:    FrameArgumentRuleName,
			Pattern:     frameCreatePattern,
			Replacement: "factory.create(withViewIdentifier:",
			Glob:        DefaultFileFilterGlob,
		},
		&LiteralRule{
			RuleName: ViewAccessorRuleName,
			FromText: ".view()",
			ToText:   "",
			Glob:     DefaultFileFilterGlob,
		},
	}
}
