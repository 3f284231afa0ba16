// Package attemptlog appends validation attempts to a CSV audit log so
// a teacher can review how a learner progressed through an activity.
package attemptlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the attempt log.
type Entry struct {
	Timestamp  time.Time
	ActivityID string
	Step       int
	Score      int
	MaxScore   int
	Letter     string
}

// Header is the CSV header for attempts.csv.
const Header = "timestamp,activity_id,step,score,max_score,letter"

const (
	numFields     = 6
	colTimestamp  = 0
	colActivityID = 1
	colStep       = 2
	colScore      = 3
	colMaxScore   = 4
	colLetter     = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colActivityID] = e.ActivityID
	row[colStep] = strconv.Itoa(e.Step)
	row[colScore] = strconv.Itoa(e.Score)
	row[colMaxScore] = strconv.Itoa(e.MaxScore)
	row[colLetter] = e.Letter
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	step, err := strconv.Atoi(record[colStep])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing step %q: %w", record[colStep], err)
	}
	score, err := strconv.Atoi(record[colScore])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing score %q: %w", record[colScore], err)
	}
	maxScore, err := strconv.Atoi(record[colMaxScore])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing max_score %q: %w", record[colMaxScore], err)
	}

	return Entry{
		Timestamp:  ts,
		ActivityID: record[colActivityID],
		Step:       step,
		Score:      score,
		MaxScore:   maxScore,
		Letter:     record[colLetter],
	}, nil
}

// Append adds an entry to the log at path, creating the file with a
// header row on first use.
func Append(path string, e Entry) error {
	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening attempt log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read parses all entries from an attempt log reader.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading attempt log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		if strings.Join(rec, ",") == Header {
			continue
		}
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
