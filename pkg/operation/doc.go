/*
Package operation implements the cleanup of the extension's static files.

	+-------------+
	|   Config    |
	|  (Targets)  |
	+------+------+
	       |
	+------+------+
	|   Cleanup   |
	| load/strip/ |
	|    save     |
	+------+------+
	       |
	+------+------+
	|   Status    |
	| (Load/Save) |
	+-------------+

🎯 Purpose:
- Resolves configured targets (doublestar patterns) into files
- Applies each target's ordered removal rules
- Writes cleaned content back in place

🔄 Flow:
1. Validate every rule in the catalog
2. Load every target (nothing is written if any load fails)
3. Strip every target
4. Save the targets whose content changed, in target order

⚠️ Failure:
Loads and transforms finish before any save, but saves are not
transactional across files. If saving the second file fails the first one
stays rewritten.

🔍 Example:

	op, err := operation.NewCleanupOperation(ctx, operation.Options{
		Config: cfg,
		Files:  mgr,
		Status: mgr,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
*/
package operation
