package rename

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"refile/internal/pkg/apperror"
)

func testClassifier() *apperror.Classifier {
	return apperror.NewClassifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

func TestApplyUndoRedoRoundtrip(t *testing.T) {
	dir := t.TempDir()
	files := writeFiles(t, dir, "a.txt", "b.txt")
	c := testClassifier()

	steps := []Step{{Op: OpPrepend, A: "new_"}}
	plan, sum := BuildPlan(files, steps, nil)
	if sum.OkCount != 2 {
		t.Fatalf("summary = %+v", sum)
	}

	applied := ApplyPlan(plan, c)
	for _, it := range applied {
		if it.Status != StatusRenamed {
			t.Fatalf("item %s has status %s (%s)", it.OldName, it.Status, it.Reason)
		}
	}
	if !exists(t, filepath.Join(dir, "new_a.txt")) || exists(t, filepath.Join(dir, "a.txt")) {
		t.Fatal("rename did not happen on disk")
	}

	h := NewHistory(0)
	h.Record(NewBatch(applied))
	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("expected undo available, redo empty")
	}

	if _, failed, ok := h.Undo(c); !ok || failed != 0 {
		t.Fatalf("undo: ok=%v failed=%d", ok, failed)
	}
	if !exists(t, filepath.Join(dir, "a.txt")) || exists(t, filepath.Join(dir, "new_a.txt")) {
		t.Fatal("undo did not restore the original names")
	}
	if h.CanUndo() || !h.CanRedo() {
		t.Fatal("expected redo available, undo empty")
	}

	if _, failed, ok := h.Redo(c); !ok || failed != 0 {
		t.Fatalf("redo: ok=%v failed=%d", ok, failed)
	}
	if !exists(t, filepath.Join(dir, "new_b.txt")) {
		t.Fatal("redo did not replay the renames")
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("expected batch back on the undo stack")
	}
}

func TestUndoCountsFailures(t *testing.T) {
	dir := t.TempDir()
	files := writeFiles(t, dir, "a.txt")
	c := testClassifier()

	plan, _ := BuildPlan(files, []Step{{Op: OpPrepend, A: "new_"}}, nil)
	applied := ApplyPlan(plan, c)

	h := NewHistory(0)
	h.Record(NewBatch(applied))

	// Pull the renamed file out from under the history.
	if err := os.Remove(filepath.Join(dir, "new_a.txt")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, failed, ok := h.Undo(c)
	if !ok {
		t.Fatal("undo reported nothing to do")
	}
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
}

func TestRecordIgnoresEmptyBatches(t *testing.T) {
	h := NewHistory(0)
	h.Record(Batch{})
	if h.CanUndo() {
		t.Fatal("empty batch must not be undoable")
	}
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	dir := t.TempDir()
	c := testClassifier()
	h := NewHistory(2)

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		files := writeFiles(t, dir, name)
		plan, _ := BuildPlan(files, []Step{{Op: OpPrepend, A: "new_"}}, nil)
		h.Record(NewBatch(ApplyPlan(plan, c)))
	}

	undone := 0
	for h.CanUndo() {
		if _, _, ok := h.Undo(c); !ok {
			break
		}
		undone++
	}
	if undone != 2 {
		t.Fatalf("undone %d batches, want 2", undone)
	}
}

func TestApplyPlanRecordsErrors(t *testing.T) {
	c := testClassifier()
	plan := []PlanItem{{
		OldPath: filepath.Join(t.TempDir(), "missing.txt"),
		NewPath: filepath.Join(t.TempDir(), "renamed.txt"),
		OldName: "missing.txt",
		NewName: "renamed.txt",
		Status:  StatusOK,
	}}

	out := ApplyPlan(plan, c)
	if out[0].Status != StatusError {
		t.Fatalf("status = %s, want error", out[0].Status)
	}
	if out[0].Reason == "" {
		t.Fatal("expected a reason on the failed item")
	}
}
