package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/notesexport/internal/output"
)

// CollisionPolicy decides what happens when two notes in one run map to
// the same filename.
type CollisionPolicy string

const (
	// CollisionOverwrite lets the later note replace the earlier file.
	// Filenames stay exactly "<date>_<stem>.txt".
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSuffix appends -2, -3, ... to the second and later notes.
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy validates a --collisions value. Empty means overwrite.
func ParseCollisionPolicy(value string) (CollisionPolicy, error) {
	switch CollisionPolicy(value) {
	case "", CollisionOverwrite:
		return CollisionOverwrite, nil
	case CollisionSuffix:
		return CollisionSuffix, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("--collisions must be 'overwrite' or 'suffix' (got %q)", value))
	}
}

// namer hands out filenames for one export run.
type namer struct {
	policy CollisionPolicy
	seen   map[string]int
}

func newNamer(policy CollisionPolicy) *namer {
	return &namer{policy: policy, seen: make(map[string]int)}
}

// next returns the filename to use for base, applying the policy.
func (n *namer) next(base string) string {
	n.seen[base]++
	count := n.seen[base]
	if n.policy != CollisionSuffix || count == 1 {
		return base
	}

	stem := strings.TrimSuffix(base, ".txt")
	for {
		candidate := fmt.Sprintf("%s-%d.txt", stem, count)
		// A suffixed name can itself clash with a later title, e.g.
		// "Plan-2" vs the second "Plan"; keep counting until it is free.
		if _, taken := n.seen[candidate]; !taken {
			n.seen[candidate] = 1
			return candidate
		}
		count++
	}
}
