/*
Package rewrite implements the text rewriting engine for swiftfix.

	+-------------+
	|  Rewriter   |
	|  (Ruleset)  |
	+------+------+
	       |
	+------+------+
	|    Rules    |
	| (pattern /  |
	|  literal)   |
	+-------------+

🎯 Purpose:
- Applies an ordered sequence of substitution rules to file content
- Provides the two built-in migration rules as fixed constants
- Reports per-rule match counts for logging and dry-run output

🔄 Flow:
1. Receives the target path and full document content
2. Rejects content that does not decode as UTF-8 text
3. Skips rules whose file filter glob misses the target path
4. Applies the remaining rules in order, each seeing the previous output
5. Returns a Result with original/modified content and per-rule counts

⚡ Key Responsibilities:
- Pattern (regexp) and literal substring substitution
- Rule validation and file filter matching
- Match counting

📝 Design Philosophy:
The engine is purely textual. It never parses the surrounding Swift source
into a syntax tree: the built-in patterns are narrow and literal, which is
enough for the migration they serve. A pattern can over-match inside string
literals or comments and under-match unusual argument orderings; callers get
a dry-run view (check, diff) to inspect the planned change before writing.

A rule finding zero matches is not an error. Content passes through a
non-matching rule unchanged, and the rewrite as a whole still succeeds.

🔍 Example:

	rewriter, err := rewrite.New(rewrite.BuiltinRules()...)
	if err != nil {
		return err
	}
	result, err := rewriter.Rewrite(ctx, "Tests.swift", content)
	if err != nil {
		return err
	}
	fmt.Printf("rewrote %d occurrences\n", result.ReplacementCount)
*/
package rewrite
