// Package journal writes applied rename batches to a CSV undo log.
//
// Each batch starts with a header row carrying the batch ID and
// timestamp, followed by one row per plan item, so a journal holds a
// replayable record of everything the application changed.
package journal

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"time"

	"refile/internal/rename"
)

const batchMarker = "batch"

var columns = []string{"old_path", "new_path", "old_name", "new_name", "status", "reason"}

// Write emits one batch to w.
func Write(w io.Writer, batch rename.Batch, items []rename.PlanItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{batchMarker, batch.ID.String(), batch.AppliedAt.Format(time.RFC3339), "", "", ""}
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{it.OldPath, it.NewPath, it.OldName, it.NewName, string(it.Status), it.Reason}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Append adds one batch to the journal file at path, creating the
// file when absent.
func Append(path string, batch rename.Batch, items []rename.PlanItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(f, batch, items)
}

// Entry is one batch read back from a journal.
type Entry struct {
	BatchID   string
	AppliedAt time.Time
	Items     []rename.PlanItem
}

// Read parses every batch in a journal stream.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []Entry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		if row[0] == batchMarker && len(row) >= 3 {
			at, _ := time.Parse(time.RFC3339, row[2])
			entries = append(entries, Entry{BatchID: row[1], AppliedAt: at})
			continue
		}
		if len(entries) == 0 || len(row) < 6 || row[0] == columns[0] {
			continue
		}

		e := &entries[len(entries)-1]
		e.Items = append(e.Items, rename.PlanItem{
			OldPath: row[0],
			NewPath: row[1],
			OldName: row[2],
			NewName: row[3],
			Status:  rename.Status(row[4]),
			Reason:  row[5],
		})
	}
	return entries, nil
}
