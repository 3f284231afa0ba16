package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns an entry ID like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// ParseEntryID parses "2025-01-001" into year, month, seq.
func ParseEntryID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in entry ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// FormatPostingRef returns the key linking a journal line to its ledger
// posting, like "2025-01-003:dr0" (debit line 0 of entry 3).
func FormatPostingRef(entryID, side string, line int) string {
	return fmt.Sprintf("%s:%s%d", entryID, side, line)
}

// ParsePostingRef splits a posting ref into entry ID, side, and line index.
func ParsePostingRef(ref string) (entryID, side string, line int, err error) {
	i := strings.LastIndex(ref, ":")
	if i < 0 {
		return "", "", 0, fmt.Errorf("invalid posting ref %q", ref)
	}
	entryID = ref[:i]
	rest := ref[i+1:]
	if len(rest) < 3 || (rest[:2] != "dr" && rest[:2] != "cr") {
		return "", "", 0, fmt.Errorf("invalid posting ref side in %q", ref)
	}
	side = rest[:2]
	line, err = strconv.Atoi(rest[2:])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid posting ref line in %q: %w", ref, err)
	}
	return entryID, side, line, nil
}
