/*
Package status records what happened to each action of a transfer plan.

	+-------------+
	|    Plan     |
	+------+------+
	       |
	+------+------+
	|   Outcome   |  planned -> copied -> (moved | kept)
	| (per file)  |  planned -> failed
	+------+------+
	       |
	+------+------+
	|   Report    |
	+-------------+

🎯 Purpose:
- Keeps one Outcome per planned action, in plan order
- Names the stage (create-dir, copy, delete) of a failure
- Lets callers detect partial completion without inspecting the filesystem

📝 Nothing here rolls back. A move whose delete failed stays "kept": the copy
exists in the destination and the source is still in place.
*/
package status
