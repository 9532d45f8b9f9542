package rename

import (
	"os"
	"time"

	"github.com/google/uuid"

	"refile/internal/pkg/apperror"
)

// Pair records one executed rename.
type Pair struct {
	OldPath string
	NewPath string
}

// Batch is one applied rename operation, identified for the journal
// and the undo stack.
type Batch struct {
	ID        uuid.UUID
	AppliedAt time.Time
	Renamed   []Pair
}

// NewBatch collects the renamed items of an applied plan into a batch.
func NewBatch(items []PlanItem) Batch {
	b := Batch{ID: uuid.New(), AppliedAt: time.Now()}
	for _, it := range items {
		if it.Status == StatusRenamed {
			b.Renamed = append(b.Renamed, Pair{OldPath: it.OldPath, NewPath: it.NewPath})
		}
	}
	return b
}

// History holds applied batches for undo and redo. Not safe for
// concurrent use.
type History struct {
	undo  []Batch
	redo  []Batch
	limit int
}

// NewHistory creates a history keeping at most limit undoable batches;
// limit <= 0 means unlimited.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Record pushes an applied batch onto the undo stack and clears the
// redo stack. Empty batches are ignored.
func (h *History) Record(b Batch) {
	if len(b.Renamed) == 0 {
		return
	}
	h.undo = append(h.undo, b)
	h.redo = nil
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// CanUndo reports whether an applied batch is available to reverse.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an undone batch is available to replay.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo reverses the most recent batch, newest rename first. A failing
// reversal is classified and counted but does not stop the rest. The
// batch moves to the redo stack even when some reversals failed, so
// the user can retry after fixing the cause.
func (h *History) Undo(classifier *apperror.Classifier) (Batch, int, bool) {
	if len(h.undo) == 0 {
		return Batch{}, 0, false
	}

	b := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	failed := 0
	for i := len(b.Renamed) - 1; i >= 0; i-- {
		p := b.Renamed[i]
		if err := os.Rename(p.NewPath, p.OldPath); err != nil {
			classifier.Classify(err,
				apperror.WithDetail("batch", b.ID.String()),
				apperror.WithDetail("old_path", p.NewPath),
				apperror.WithDetail("new_path", p.OldPath))
			failed++
		}
	}

	h.redo = append(h.redo, b)
	return b, failed, true
}

// Redo replays the most recently undone batch in its original order.
func (h *History) Redo(classifier *apperror.Classifier) (Batch, int, bool) {
	if len(h.redo) == 0 {
		return Batch{}, 0, false
	}

	b := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	failed := 0
	for _, p := range b.Renamed {
		if err := os.Rename(p.OldPath, p.NewPath); err != nil {
			classifier.Classify(err,
				apperror.WithDetail("batch", b.ID.String()),
				apperror.WithDetail("old_path", p.OldPath),
				apperror.WithDetail("new_path", p.NewPath))
			failed++
		}
	}

	h.undo = append(h.undo, b)
	return b, failed, true
}
