/*
Package status manages file storage and status tracking for scrubrc.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Logs   |
	| Load/Save |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads target files as UTF-8 text with normalized line endings
- Writes cleaned content back through a temp file and an atomic rename
- Tracks per-file status (loaded, modified, unchanged, failed)
- Reports progress through the context logger

🔄 Flow:
1. Operation loads every target through Load
2. Operation tracks each file as it moves through the phases
3. Modified content is written back through Save
4. ListFiles returns the final status in processing order

📝 Notes:
Save replaces a file in one rename, so an interrupted write never leaves a
half written target behind. There is no backup: a successful Save is final.
*/
package status
