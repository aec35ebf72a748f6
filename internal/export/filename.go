package export

import (
	"strings"
	"time"
)

// DateLayout is the creation date prefix of every exported filename.
const DateLayout = "2006-01-02"

// Stem fallbacks.
const (
	untitledStem  = "Untitled-Note"
	singleWordTag = "-Note"
)

// FormatDate formats t as YYYY-MM-DD in loc. A nil loc means time.Local.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// Stem derives the short filename stem from a note title:
//   - no words: "Untitled-Note"
//   - one word: "<word>-Note"
//   - more:     "<first>-<second>"
//
// Words are split on whitespace. Path separators inside a word are
// replaced with "_" so the file always lands in the export directory.
func Stem(title string) string {
	words := strings.Fields(title)
	switch len(words) {
	case 0:
		return untitledStem
	case 1:
		return safeWord(words[0]) + singleWordTag
	default:
		return safeWord(words[0]) + "-" + safeWord(words[1])
	}
}

var pathCharReplacer = strings.NewReplacer("/", "_", `\`, "_", ":", "_", "\x00", "_")

func safeWord(word string) string {
	return pathCharReplacer.Replace(word)
}

// Filename returns "<date>_<stem>.txt" for a note.
func Filename(title string, created time.Time, loc *time.Location) string {
	return FormatDate(created, loc) + "_" + Stem(title) + ".txt"
}
