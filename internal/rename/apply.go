package rename

import (
	"fmt"
	"os"

	"refile/internal/pkg/apperror"
)

// ApplyPlan renames every ok item in sequence. A failing item is
// classified, marked as an error, and does not stop the batch. Items
// with any other status pass through unchanged.
func ApplyPlan(plan []PlanItem, classifier *apperror.Classifier) []PlanItem {
	out := make([]PlanItem, 0, len(plan))

	for _, it := range plan {
		if it.Status != StatusOK {
			out = append(out, it)
			continue
		}

		if err := os.Rename(it.OldPath, it.NewPath); err != nil {
			ae := classifier.Classify(err,
				apperror.WithDetail("old_path", it.OldPath),
				apperror.WithDetail("new_path", it.NewPath))
			it.Status = StatusError
			it.Reason = ae.Error()
		} else {
			it.Status = StatusRenamed
			it.Reason = ""
		}
		out = append(out, it)
	}
	return out
}

// MarkDryRun rewrites ok items as dry-run so a previewed batch reports
// what would have happened.
func MarkDryRun(plan []PlanItem) []PlanItem {
	out := make([]PlanItem, len(plan))
	copy(out, plan)
	for i := range out {
		if out[i].Status == StatusOK {
			out[i].Status = StatusDryRun
		}
	}
	return out
}

// ResultMessage summarizes applied (or dry-run) items for the result
// dialog.
func ResultMessage(items []PlanItem, dryRun bool) string {
	var renamed, skipped, failed int
	for _, it := range items {
		switch it.Status {
		case StatusRenamed, StatusDryRun:
			renamed++
		case StatusSkip:
			skipped++
		case StatusError:
			failed++
		}
	}

	if dryRun {
		return fmt.Sprintf("Dry run complete.\nWould rename: %d\nSkipped: %d\nErrors: %d", renamed, skipped, failed)
	}
	return fmt.Sprintf("Apply complete.\nRenamed: %d\nSkipped: %d\nErrors: %d", renamed, skipped, failed)
}
