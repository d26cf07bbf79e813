package model

import (
	"encoding/json"
	"fmt"
)

// Journal is the push history of a remote branch: every change snapshot that was
// pushed under it, oldest first. A journal is never rewritten in place; appending
// produces a new journal that is stored under the new head.
type Journal []Change

// ParseJournal decodes a journal note.
func ParseJournal(data string) (Journal, error) {
	var journal Journal
	if err := json.Unmarshal([]byte(data), &journal); err != nil {
		return nil, fmt.Errorf("failed to parse journal: %w", err)
	}
	return journal, nil
}

// Append returns a new journal with change added at the end. The receiver is not modified.
func (j Journal) Append(change Change) Journal {
	out := make(Journal, 0, len(j)+1)
	out = append(out, j...)
	return append(out, change)
}

// Encode serializes the journal for storage in a note.
func (j Journal) Encode() (string, error) {
	if j == nil {
		j = Journal{}
	}
	data, err := json.Marshal(j)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal: %w", err)
	}
	return string(data), nil
}
