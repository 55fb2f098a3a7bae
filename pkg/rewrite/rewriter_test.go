package rewrite

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		rules       []Rule
		wantErr     bool
		errContains string
	}{
		{
			name:  "builtin_rules",
			rules: BuiltinRules(),
		},
		{
			name: "invalid_rule",
			rules: []Rule{
				&LiteralRule{RuleName: "broken", Glob: "**/*.swift"},
			},
			wantErr:     true,
			errContains: "from_text is required",
		},
		{
			name:  "no_rules",
			rules: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewriter, err := New(tt.rules...)
			if tt.wantErr {
				require.Error(t, err, "New should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "New should succeed")
			assert.Len(t, rewriter.Rules(), len(tt.rules), "rules should be kept in order")
		})
	}
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		content     string
		want        string
		wantCount   int
		wantErr     bool
		errContains string
	}{
		{
			name:      "frame_argument_removed",
			path:      "VideoPlayerViewFactoryTests.swift",
			content:   `let view = factory.create(withFrame: someExpr, viewIdentifier: "id")`,
			want:      `let view = factory.create(withViewIdentifier: "id")`,
			wantCount: 1,
		},
		{
			name: "frame_argument_removed_across_lines",
			path: "VideoPlayerViewFactoryTests.swift",
			content: `let view = factory.create(
            withFrame: CGRect.zero,
            viewIdentifier: "player")`,
			want:      `let view = factory.create(withViewIdentifier: "player")`,
			wantCount: 1,
		},
		{
			name:      "comma_in_frame_expression_left_alone",
			path:      "VideoPlayerViewFactoryTests.swift",
			content:   `let view = factory.create(withFrame: CGRect(x: 0, y: 0, width: 100, height: 100), viewIdentifier: "x")`,
			want:      `let view = factory.create(withFrame: CGRect(x: 0, y: 0, width: 100, height: 100), viewIdentifier: "x")`,
			wantCount: 0,
		},
		{
			name:      "view_accessor_deleted",
			path:      "VideoPlayerViewFactoryTests.swift",
			content:   `XCTAssertNotNil(someFactoryCall().view())`,
			want:      `XCTAssertNotNil(someFactoryCall())`,
			wantCount: 1,
		},
		{
			name:      "no_matches_preserves_content",
			path:      "VideoPlayerViewFactoryTests.swift",
			content:   "import XCTest\n\nfinal class UnrelatedTests: XCTestCase {}\n",
			want:      "import XCTest\n\nfinal class UnrelatedTests: XCTestCase {}\n",
			wantCount: 0,
		},
		{
			name: "interleaved_occurrences_rewritten_in_place",
			path: "VideoPlayerViewFactoryTests.swift",
			content: `import XCTest

final class VideoPlayerViewFactoryTests: XCTestCase {
    func testCreatesPlayerView() {
        let first = factory.create(withFrame: .zero, viewIdentifier: "one")
        XCTAssertNotNil(first.view())
    }

    func testCreatesCompactView() {
        let second = factory.create(
            withFrame: frameFor(.compact),
            viewIdentifier: "two")
        XCTAssertEqual(second.accessibilityIdentifier, "two")
    }

    func testCreatesThirdView() {
        let third = factory.create(withFrame: bounds, viewIdentifier: "three")
        XCTAssertNotNil(third.view())
    }
}
`,
			want: `import XCTest

final class VideoPlayerViewFactoryTests: XCTestCase {
    func testCreatesPlayerView() {
        let first = factory.create(withViewIdentifier: "one")
        XCTAssertNotNil(first)
    }

    func testCreatesCompactView() {
        let second = factory.create(withViewIdentifier: "two")
        XCTAssertEqual(second.accessibilityIdentifier, "two")
    }

    func testCreatesThirdView() {
        let third = factory.create(withViewIdentifier: "three")
        XCTAssertNotNil(third)
    }
}
`,
			wantCount: 5,
		},
		{
			name:      "empty_content",
			path:      "VideoPlayerViewFactoryTests.swift",
			content:   "",
			want:      "",
			wantCount: 0,
		},
		{
			name:        "invalid_utf8",
			path:        "VideoPlayerViewFactoryTests.swift",
			content:     string([]byte{0xff, 0xfe, 0xfd}),
			wantErr:     true,
			errContains: "not valid UTF-8",
		},
	}

	rewriter, err := New(BuiltinRules()...)
	require.NoError(t, err, "New should succeed")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := rewriter.Rewrite(testContext(t), tt.path, []byte(tt.content))
			if tt.wantErr {
				require.Error(t, err, "Rewrite should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Rewrite should succeed")
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent), "original content should be kept")
			assert.Equal(t, tt.want, string(result.ModifiedContent), "modified content should match")
			assert.Equal(t, tt.wantCount, result.ReplacementCount, "replacement count should match")
			assert.Equal(t, tt.wantCount > 0, result.WasModified, "modified flag should match")
		})
	}
}

func TestRewriteReportsPerRuleMatches(t *testing.T) {
	rewriter, err := New(BuiltinRules()...)
	require.NoError(t, err, "New should succeed")

	content := `let a = factory.create(withFrame: .zero, viewIdentifier: "a")
let b = factory.create(withFrame: .zero, viewIdentifier: "b")
XCTAssertNotNil(a.view())
`
	result, err := rewriter.Rewrite(testContext(t), "Tests.swift", []byte(content))
	require.NoError(t, err, "Rewrite should succeed")

	require.Len(t, result.RuleMatches, 2, "should report one match entry per rule")
	assert.Equal(t, FrameArgumentRuleName, result.RuleMatches[0].Rule, "frame rule should run first")
	assert.Equal(t, 2, result.RuleMatches[0].Count, "frame rule should rewrite both calls")
	assert.Equal(t, ViewAccessorRuleName, result.RuleMatches[1].Rule, "accessor rule should run second")
	assert.Equal(t, 1, result.RuleMatches[1].Count, "accessor rule should delete one call")
	assert.Equal(t, 3, result.ReplacementCount, "total count should sum per-rule counts")
}

func TestRewriteSkipsRulesByFileFilter(t *testing.T) {
	rewriter, err := New(BuiltinRules()...)
	require.NoError(t, err, "New should succeed")

	content := `factory.create(withFrame: .zero, viewIdentifier: "a").view()`
	result, err := rewriter.Rewrite(testContext(t), "README.md", []byte(content))
	require.NoError(t, err, "Rewrite should succeed")

	assert.False(t, result.WasModified, "non-Swift target should pass through unchanged")
	assert.Equal(t, content, string(result.ModifiedContent), "content should be untouched")
	require.Len(t, result.RuleMatches, 2, "skipped rules should still be reported")
	for _, match := range result.RuleMatches {
		assert.True(t, match.Skipped, "rule %s should be skipped", match.Rule)
		assert.Zero(t, match.Count, "skipped rule %s should count nothing", match.Rule)
	}
}

func TestRewriteTwiceChangesNothing(t *testing.T) {
	rewriter, err := New(BuiltinRules()...)
	require.NoError(t, err, "New should succeed")

	content := `let v = factory.create(withFrame: .zero, viewIdentifier: "v")
XCTAssertNotNil(v.view())
`
	first, err := rewriter.Rewrite(testContext(t), "Tests.swift", []byte(content))
	require.NoError(t, err, "first rewrite should succeed")
	require.True(t, first.WasModified, "first rewrite should change the content")

	second, err := rewriter.Rewrite(testContext(t), "Tests.swift", first.ModifiedContent)
	require.NoError(t, err, "second rewrite should succeed")
	assert.False(t, second.WasModified, "second rewrite should be a no-op")
	assert.Equal(t, string(first.ModifiedContent), string(second.ModifiedContent), "content should be stable")
}

func TestBuiltinRules(t *testing.T) {
	rules := BuiltinRules()
	require.Len(t, rules, 2, "should have exactly two built-in rules")
	assert.Equal(t, FrameArgumentRuleName, rules[0].Name(), "frame rule should come first")
	assert.Equal(t, ViewAccessorRuleName, rules[1].Name(), "accessor rule should come second")
	require.NoError(t, ValidateRules(rules), "built-in rules should validate")

	// Each call hands out a fresh slice
	rules[0] = nil
	assert.NotNil(t, BuiltinRules()[0], "callers must not be able to alter the built-ins")
}

func TestDefaultFileFilterGlob(t *testing.T) {
	rule := BuiltinRules()[0]

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "bare_swift_file",
			path: "VideoPlayerViewFactoryTests.swift",
			want: true,
		},
		{
			name: "nested_swift_file",
			path: "ios/Tests/VideoPlayerViewFactoryTests.swift",
			want: true,
		},
		{
			name: "markdown_file",
			path: "README.md",
			want: false,
		},
		{
			name: "swift_named_directory_suffix",
			path: "tests.swift/notes.txt",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appliesTo(rule, tt.path), "filter decision should match")
		})
	}
}
