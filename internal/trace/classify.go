package trace

import (
	"regexp"
	"strconv"
	"strings"
)

// rule recognizes one line shape. build returns false when the captures do
// not convert, in which case the line is treated as unrecognized.
type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(match []string) (Event, bool)
}

var (
	seedRule = rule{
		name:    "seed",
		pattern: regexp.MustCompile(`^\s*Seed: (\d+)\b`),
		build: func(m []string) (Event, bool) {
			seed, ok := parseUint(m[1])
			if !ok {
				return nil, false
			}
			return SeedAnnounced{Seed: seed}, true
		},
	}
	actorsRule = rule{
		name:    "actors",
		pattern: regexp.MustCompile(`^\s*Actor Info: clients:(\d+) coordinators:(\d+) servers:(\d+)\b`),
		build: func(m []string) (Event, bool) {
			clients, ok1 := parseInt(m[1])
			coordinators, ok2 := parseInt(m[2])
			servers, ok3 := parseInt(m[3])
			if !ok1 || !ok2 || !ok3 {
				return nil, false
			}
			return ActorsAnnounced{Clients: clients, Coordinators: coordinators, Servers: servers}, true
		},
	}
	beginRule = rule{
		name:    "txn_begin",
		pattern: regexp.MustCompile(`^\s*CLIENT (\d+) BEGIN\b`),
		build: func(m []string) (Event, bool) {
			id, ok := parseInt(m[1])
			if !ok {
				return nil, false
			}
			return TxnBegun{ClientID: id}, true
		},
	}
	clientOrderRule = rule{
		name:    "client_order",
		pattern: regexp.MustCompile(`^\s*Client Order \[([^\]]*)\]`),
		build: func(m []string) (Event, bool) {
			clients, ok := splitList(m[1])
			if !ok {
				return nil, false
			}
			return ClientOrderAnnounced{Clients: clients}, true
		},
	}
	timeoutRule = rule{
		name:    "txn_timeout",
		pattern: regexp.MustCompile(`^\s*CLIENT (\d+) TIMEOUT\b`),
		build: func(m []string) (Event, bool) {
			id, ok := parseInt(m[1])
			if !ok {
				return nil, false
			}
			return TxnTimedOut{ClientID: id}, true
		},
	}
	commitRule = rule{
		name:    "txn_commit",
		pattern: regexp.MustCompile(`^\s*CLIENT (\d+) COMMIT (\w+) \((\d+)/(\d+)\)`),
		build: func(m []string) (Event, bool) {
			outcome := Outcome(m[2])
			if outcome != OutcomeOK && outcome != OutcomeFail {
				return nil, false
			}
			id, ok1 := parseInt(m[1])
			num, ok2 := parseInt(m[3])
			den, ok3 := parseInt(m[4])
			if !ok1 || !ok2 || !ok3 {
				return nil, false
			}
			return TxnCommitAttempted{ClientID: id, Outcome: outcome, Numerator: num, Denominator: den}, true
		},
	}
	abortRule = rule{
		name:    "txn_abort",
		pattern: regexp.MustCompile(`^\s*CLIENT (\d+) END ABORT\b`),
		build: func(m []string) (Event, bool) {
			id, ok := parseInt(m[1])
			if !ok {
				return nil, false
			}
			return TxnAborted{ClientID: id}, true
		},
	}
	coordinatorCrashRule = rule{
		name:    "coordinator_crash",
		pattern: regexp.MustCompile(`^\s*COORDI (\d+) Crashing\b`),
		build: func(m []string) (Event, bool) {
			id, ok := parseInt(m[1])
			if !ok {
				return nil, false
			}
			return CoordinatorCrashed{CoordinatorID: id}, true
		},
	}
	serverCrashRule = rule{
		name:    "server_crash",
		pattern: regexp.MustCompile(`^\s*SERVER (\d+) Crashing\b`),
		build: func(m []string) (Event, bool) {
			id, ok := parseInt(m[1])
			if !ok {
				return nil, false
			}
			return ServerCrashed{ServerID: id}, true
		},
	}
	finalSumRule = rule{
		name:    "final_sum",
		pattern: regexp.MustCompile(`^\s*Final sum = (\d+) (\w+)`),
		build: func(m []string) (Event, bool) {
			sum, ok := parseUint(m[1])
			if !ok {
				return nil, false
			}
			return FinalSumReported{Sum: sum, Result: m[2]}, true
		},
	}
)

// rulesFor returns the ordered rule list for a revision.
func rulesFor(rev Revision) []rule {
	initiated := beginRule
	if rev == RevisionClientOrder {
		initiated = clientOrderRule
	}
	return []rule{
		seedRule,
		actorsRule,
		initiated,
		timeoutRule,
		commitRule,
		abortRule,
		coordinatorCrashRule,
		serverCrashRule,
		finalSumRule,
	}
}

// Rules returns the names of the active rules for a revision, in match order.
func Rules(rev Revision) []string {
	rules := rulesFor(rev)
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

// Classifier maps trace lines to events. It holds no per-line state and is
// safe to reuse across runs.
type Classifier struct {
	revision Revision
	rules    []rule
}

// NewClassifier builds a classifier for the given grammar revision.
// An empty revision selects DefaultRevision.
func NewClassifier(rev Revision) *Classifier {
	if rev == "" {
		rev = DefaultRevision
	}
	return &Classifier{revision: rev, rules: rulesFor(rev)}
}

// Revision reports the grammar revision in use.
func (c *Classifier) Revision() Revision {
	return c.revision
}

// Classify returns the event for line, or false when no rule recognizes it.
// The first matching rule wins.
func (c *Classifier) Classify(line string) (Event, bool) {
	for _, r := range c.rules {
		m := r.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return r.build(m)
	}
	return nil, false
}

// Matches reports the names of every active rule whose pattern accepts line.
// Used to check that rules stay mutually exclusive.
func (c *Classifier) Matches(line string) []string {
	var names []string
	for _, r := range c.rules {
		m := r.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, ok := r.build(m); ok {
			names = append(names, r.name)
		}
	}
	return names
}

func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseUint(value string) (uint64, bool) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitList parses the body of a bracketed, comma separated list.
func splitList(body string) ([]string, bool) {
	if strings.TrimSpace(body) == "" {
		return []string{}, true
	}
	parts := strings.Split(body, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			return nil, false
		}
		out = append(out, item)
	}
	return out, true
}
