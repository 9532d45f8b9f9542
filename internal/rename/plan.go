package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Status describes a plan item's disposition.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkip    Status = "skip"
	StatusRenamed Status = "renamed"
	StatusError   Status = "error"
	StatusDryRun  Status = "dry-run"
)

// PlanItem is one file's entry in a rename plan.
type PlanItem struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
	Status  Status
	Reason  string
}

// Summary aggregates a plan for the confirmation dialog.
type Summary struct {
	Total        int
	OkCount      int
	Unchanged    int
	Invalid      []string
	Duplicate    []string
	TargetExists []string
}

// MetaFunc supplies the token metadata for a file at its position in
// the batch.
type MetaFunc func(path string, index int) FileMeta

// StatMeta is the default MetaFunc, reading size and mod time from the
// filesystem. A stat failure leaves the zero values; tokens then
// expand to their zero forms rather than failing the plan.
func StatMeta(path string, index int) FileMeta {
	meta := FileMeta{Path: path, Index: index}
	if info, err := os.Stat(path); err == nil {
		meta.ModTime = info.ModTime()
		meta.Size = info.Size()
	}
	return meta
}

// BuildPlan maps every file through the step pipeline and classifies
// each target name: unchanged, invalid, duplicate within the batch,
// colliding with an existing file, or ok to rename.
func BuildPlan(files []string, steps []Step, metaFor MetaFunc) ([]PlanItem, Summary) {
	if metaFor == nil {
		metaFor = StatMeta
	}

	newNames := make(map[string]string, len(files))
	dupCount := make(map[string]int, len(files))

	for i, p := range files {
		oldName := filepath.Base(p)
		newName := ApplySteps(oldName, steps, metaFor(p, i+1))
		newNames[p] = newName
		dupCount[filepath.Join(filepath.Dir(p), newName)]++
	}

	items := make([]PlanItem, 0, len(files))
	sum := Summary{Total: len(files)}

	for _, oldPath := range files {
		oldName := filepath.Base(oldPath)
		newName := newNames[oldPath]
		newPath := filepath.Join(filepath.Dir(oldPath), newName)

		it := PlanItem{
			OldPath: oldPath,
			NewPath: newPath,
			OldName: oldName,
			NewName: newName,
			Status:  StatusOK,
		}

		if newName == oldName {
			sum.Unchanged++
			it.Status = StatusSkip
			it.Reason = "unchanged"
			items = append(items, it)
			continue
		}

		if reason := InvalidNameReason(newName); reason != "" {
			sum.Invalid = append(sum.Invalid, fmt.Sprintf("%s → %s (%s)", oldName, newName, reason))
			it.Status = StatusSkip
			it.Reason = "invalid: " + reason
			items = append(items, it)
			continue
		}

		if dupCount[newPath] > 1 {
			sum.Duplicate = append(sum.Duplicate, fmt.Sprintf("%s → %s", oldName, newName))
			it.Status = StatusSkip
			it.Reason = "conflict: duplicate preview name"
			items = append(items, it)
			continue
		}

		if _, err := os.Stat(newPath); err == nil {
			sum.TargetExists = append(sum.TargetExists, fmt.Sprintf("%s → %s", oldName, newName))
			it.Status = StatusSkip
			it.Reason = "conflict: target exists on disk"
			items = append(items, it)
			continue
		}

		sum.OkCount++
		items = append(items, it)
	}

	return items, sum
}

// reservedNames are device names Windows refuses as file names.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// InvalidNameReason reports why name is not a usable filename, or ""
// when it is.
func InvalidNameReason(name string) string {
	trim := strings.TrimSpace(name)
	if trim == "" {
		return "empty name"
	}
	if strings.ContainsAny(trim, `<>:"/\|?*`) {
		return "invalid characters"
	}
	base := strings.TrimSuffix(trim, filepath.Ext(trim))
	if reservedNames[strings.ToUpper(base)] {
		return "reserved filename"
	}
	return ""
}
