package notes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorewood/notesexport/internal/output"
)

// Every host script prints exactly one JSON document. Lists are arrays of
// strings; note reads are either {"notes": [...]} or {"error": "..."}.
// JSON keeps names containing commas or quotes unambiguous.

type wireNote struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Created int64  `json:"created"`
	Error   string `json:"error"`
}

type wireNotes struct {
	Notes []wireNote `json:"notes"`
	Error string     `json:"error"`
}

// decodeList parses a JSON array of names. Empty output is an empty list.
func decodeList(out string) ([]string, error) {
	names := []string{}
	if out == "" {
		return names, nil
	}
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		return nil, malformed(out, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// decodeNotes parses a note read. A non-empty error field means the target
// could not be resolved and is returned as resolveErr.
func decodeNotes(out string) (notes []Note, resolveErr string, err error) {
	var doc wireNotes
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		return nil, "", malformed(out, err)
	}
	if doc.Error != "" {
		return nil, doc.Error, nil
	}

	notes = make([]Note, 0, len(doc.Notes))
	for _, record := range doc.Notes {
		note := Note{
			Title:     record.Title,
			Body:      record.Body,
			ReadError: record.Error,
		}
		if record.Created != 0 {
			note.Created = time.UnixMilli(record.Created)
		}
		notes = append(notes, note)
	}
	return notes, "", nil
}

func malformed(out string, cause error) error {
	const maxShown = 120
	shown := out
	if len(shown) > maxShown {
		shown = shown[:maxShown] + "…"
	}
	return output.NewSystemErrorWithCause(fmt.Sprintf("unexpected output from host script: %q", shown), cause)
}
