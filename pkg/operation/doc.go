/*
Package operation implements the rewrite operations swiftfix can run.

	+-------------+
	|  Operation  |
	| (fix/check/ |
	|   diff)     |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Orchestrates reading, transforming, and writing the target file
- Builds the ruleset from the built-in rules plus configured replacements
- Coordinates between rewrite (transform) and status (storage)

🔄 Flow:
1. Reads the target through the status manager
2. Applies the ruleset in memory (rewrite package)
3. fix writes the result back atomically; check and diff only report
4. Reports outcomes via the user logger and status tracking

⚡ Key Responsibilities:
- Operation lifecycle (plan, then write or report)
- Dry-run semantics: check, diff, and fix --dry-run never touch the target
- Sync/async execution via the Runner
- Error handling with wrapped context

🤝 Interfaces:
- Operation: one unit of work against the target file
- status.Manager: file access and status tracking
- rewrite.Rewriter: the actual text transformation

📝 Design Philosophy:
The operation package is the heart of swiftfix, but it stays focused on
orchestration. The text transformation lives in rewrite, file I/O lives in
status. An operation computes its full result in memory before anything is
written, so a failed run never leaves a half-rewritten target behind.

🔍 Example:

	op := operation.NewFixOperation(opts)
	err := runner.Run(ctx, op)
*/
package operation
