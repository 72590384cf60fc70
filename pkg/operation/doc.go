/*
Package operation implements the execution side of randselect.

	+-------------+
	|   Runner    |  validate -> list -> sample -> plan
	+------+------+
	       |
	+------+------+
	|  Executor   |  preview, then (only with --go) mutate
	+------+------+
	       |
	+------+------+
	| FileSystem  |  MkdirAll, CopyFile, Remove
	+-------------+

🎯 Purpose:
- Always shows what a run would do before doing it
- Applies actions strictly in plan order, one at a time
- Records an outcome per action instead of stopping at the first failure

🔄 Action lifecycle:

	copy: planned -> copied
	move: planned -> copied -> moved
	                        -> kept    (source delete failed, copy stays)
	      planned -> failed            (copy failed, nothing written)

⚠️ There is no rollback. A run that fails half way leaves the files it already
copied or moved in place, and the report says which ones.

🔍 Example:

	exec, err := operation.NewExecutor(operation.Options{Renderer: renderer})
	if err != nil {
		return err
	}
	report, err := operation.NewRunner(exec).Run(ctx, cfg)
*/
package operation
