/*
Package status manages file storage and status tracking for swiftfix.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Logs   |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Manages file system operations for the target file
- Tracks file status (modified, unchanged, skipped)
- Provides user-friendly status reporting
- Handles the write-back safely

🔄 Flow:
1. Receives rewritten content from the operation layer
2. Writes it back atomically (temp file + rename)
3. Tracks the resulting file status
4. Reports changes in a user-friendly format

⚡ Key Responsibilities:
- File system operations (read, atomic write, backup/restore)
- Status tracking
- Error handling for I/O
- User-facing console output

📝 Design Philosophy:
The status package owns all file system access and all console output. The
operation layer never touches the disk or the terminal directly; it hands
content and outcomes to this package. The atomic write keeps the promise
that the target file is never truncated before the replacement content
exists on disk: a failed rewrite leaves the original untouched.

🔍 Example:

	mgr := status.New(".", &logger)

	content, err := mgr.ReadFile(ctx, "Tests.swift")
	if err != nil {
		return err
	}

	if err := mgr.WriteFileAtomic(ctx, "Tests.swift", rewritten); err != nil {
		return err
	}

	mgr.TrackFile(ctx, "Tests.swift", status.FileInfo{
		Path:   "Tests.swift",
		Status: status.StatusModified,
	})
*/
package status
