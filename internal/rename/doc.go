// Package rename implements the batch-rename engine: the step
// pipeline that maps an original filename to its target name, plan
// building with validation and conflict detection, sequential apply,
// and the undo/redo history of applied batches.
package rename
