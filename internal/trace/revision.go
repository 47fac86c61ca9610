package trace

import (
	"fmt"
	"strings"
)

// Revision selects which trace grammar convention counts initiated
// transactions. The two conventions are never active together.
type Revision string

const (
	// RevisionBeginLines counts one transaction per "CLIENT <id> BEGIN" line.
	RevisionBeginLines Revision = "begin"
	// RevisionClientOrder counts the entries of "Client Order [...]" lines.
	RevisionClientOrder Revision = "client_order"
)

// DefaultRevision is used when no revision is configured.
const DefaultRevision = RevisionBeginLines

// ParseRevision maps a config or flag value to a Revision.
func ParseRevision(value string) (Revision, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return DefaultRevision, nil
	case string(RevisionBeginLines), "begin_lines":
		return RevisionBeginLines, nil
	case string(RevisionClientOrder), "client-order":
		return RevisionClientOrder, nil
	default:
		return "", fmt.Errorf("unknown grammar revision %q (expected begin|client_order)", value)
	}
}

func (r Revision) String() string {
	return string(r)
}
