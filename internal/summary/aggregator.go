package summary

import (
	"fmt"
	"io"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

// Aggregator folds the events of one run into a RunSummary. It is owned by
// a single run and is not safe for concurrent use.
type Aggregator struct {
	seed         *uint64
	clients      *int
	coordinators *int
	servers      *int
	finalSum     *uint64
	finalResult  *string

	counts Counts
	txns   txnTable

	sawBegin            bool
	unpairedAborts      int
	commitsWithoutBegin int
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{txns: txnTable{}}
}

// Apply folds one event. Scalars are last-write-wins and counters only grow.
func (a *Aggregator) Apply(event trace.Event) {
	switch e := event.(type) {
	case trace.SeedAnnounced:
		seed := e.Seed
		a.seed = &seed
	case trace.ActorsAnnounced:
		clients, coordinators, servers := e.Clients, e.Coordinators, e.Servers
		a.clients, a.coordinators, a.servers = &clients, &coordinators, &servers
	case trace.TxnBegun:
		a.sawBegin = true
		a.counts.Initiated++
		a.txns.set(e.ClientID, txnBegun)
	case trace.ClientOrderAnnounced:
		a.counts.Initiated += len(e.Clients)
	case trace.TxnTimedOut:
		a.counts.TimedOut++
		a.txns.set(e.ClientID, txnTimedOut)
	case trace.TxnCommitAttempted:
		a.applyCommit(e)
	case trace.TxnAborted:
		a.counts.Aborted++
		if a.txns.get(e.ClientID) == txnCommitFail {
			a.counts.FailedThenAborted++
		} else {
			a.unpairedAborts++
		}
		a.txns.set(e.ClientID, txnAborted)
	case trace.CoordinatorCrashed:
		a.counts.CoordinatorCrashes++
	case trace.ServerCrashed:
		a.counts.ServerCrashes++
	case trace.FinalSumReported:
		sum, result := e.Sum, e.Result
		a.finalSum, a.finalResult = &sum, &result
	}
}

func (a *Aggregator) applyCommit(e trace.TxnCommitAttempted) {
	if a.sawBegin && a.txns.get(e.ClientID) != txnBegun {
		a.commitsWithoutBegin++
	}
	a.counts.Finished++
	switch e.Outcome {
	case trace.OutcomeOK:
		a.counts.CommittedOK++
		a.txns.set(e.ClientID, txnCommitOK)
	case trace.OutcomeFail:
		a.counts.CommittedFail++
		a.txns.set(e.ClientID, txnCommitFail)
	}
}

// Counts returns a snapshot of the raw counters.
func (a *Aggregator) Counts() Counts {
	return a.counts
}

// Finalize computes the summary from the stored state. It does not modify
// the aggregator, so repeated calls return equal summaries.
func (a *Aggregator) Finalize() RunSummary {
	c := a.counts
	s := RunSummary{
		Seed:               copyUint(a.seed),
		Clients:            copyInt(a.clients),
		Coordinators:       copyInt(a.coordinators),
		Servers:            copyInt(a.servers),
		Initiated:          c.Initiated,
		TimedOut:           c.TimedOut,
		Finished:           c.Finished,
		CommittedOK:        c.CommittedOK,
		CommittedFail:      c.CommittedFail,
		Aborted:            c.Aborted,
		FailedThenAborted:  c.FailedThenAborted,
		CoordinatorCrashes: c.CoordinatorCrashes,
		ServerCrashes:      c.ServerCrashes,
		FinalSum:           copyUint(a.finalSum),
		FinalResult:        copyString(a.finalResult),
	}
	s.CommittedOKRate = NewRate(c.CommittedOK, c.Finished)
	s.CommittedFailRate = NewRate(c.CommittedFail-c.FailedThenAborted, c.Finished)
	s.AbortedRate = NewRate(c.Aborted, c.Finished)
	s.Warnings = a.warnings()
	return s
}

func (a *Aggregator) warnings() []string {
	var out []string
	if a.unpairedAborts > 0 {
		out = append(out, fmt.Sprintf("%d abort(s) not preceded by a failed commit attempt", a.unpairedAborts))
	}
	if a.counts.CommittedFail < a.counts.Aborted {
		out = append(out, fmt.Sprintf("commit failures (%d) fewer than aborts (%d): fail minus abort would be negative", a.counts.CommittedFail, a.counts.Aborted))
	}
	if a.commitsWithoutBegin > 0 {
		out = append(out, fmt.Sprintf("%d commit attempt(s) without a begun transaction", a.commitsWithoutBegin))
	}
	return out
}

// FromReader scans a whole trace into a finalized summary.
func FromReader(r io.Reader, classifier *trace.Classifier) (RunSummary, error) {
	agg := NewAggregator()
	if err := trace.Scan(r, classifier, agg.Apply); err != nil {
		return RunSummary{}, err
	}
	return agg.Finalize(), nil
}

// FromFile opens and summarizes a trace artifact.
func FromFile(path string, classifier *trace.Classifier) (RunSummary, error) {
	r, err := trace.Open(path)
	if err != nil {
		return RunSummary{}, err
	}
	defer r.Close()
	return FromReader(r, classifier)
}

func copyUint(v *uint64) *uint64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
