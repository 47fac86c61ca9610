package trace

// Event is a single recognized trace line.
type Event interface {
	// Kind returns the stable name of the event variant.
	Kind() string
	isEvent()
}

// Outcome is the result token of a commit attempt.
type Outcome string

const (
	OutcomeOK   Outcome = "OK"
	OutcomeFail Outcome = "FAIL"
)

// SeedAnnounced reports the simulator seed.
type SeedAnnounced struct {
	Seed uint64
}

// ActorsAnnounced reports the number of each actor kind.
type ActorsAnnounced struct {
	Clients      int
	Coordinators int
	Servers      int
}

// TxnBegun marks a client starting a transaction.
type TxnBegun struct {
	ClientID int
}

// ClientOrderAnnounced lists the clients that will start a transaction.
type ClientOrderAnnounced struct {
	Clients []string
}

// TxnTimedOut marks a client giving up on a transaction.
type TxnTimedOut struct {
	ClientID int
}

// TxnCommitAttempted marks the outcome of a client's commit request.
// Numerator and Denominator are the client's running tally and carry no
// meaning for aggregation.
type TxnCommitAttempted struct {
	ClientID    int
	Outcome     Outcome
	Numerator   int
	Denominator int
}

// TxnAborted marks a client ending a transaction with an abort.
type TxnAborted struct {
	ClientID int
}

// CoordinatorCrashed marks a coordinator crash.
type CoordinatorCrashed struct {
	CoordinatorID int
}

// ServerCrashed marks a server crash.
type ServerCrashed struct {
	ServerID int
}

// FinalSumReported carries the checksum printed at the end of a run.
type FinalSumReported struct {
	Sum    uint64
	Result string
}

func (SeedAnnounced) Kind() string        { return "seed" }
func (ActorsAnnounced) Kind() string      { return "actors" }
func (TxnBegun) Kind() string             { return "txn_begin" }
func (ClientOrderAnnounced) Kind() string { return "client_order" }
func (TxnTimedOut) Kind() string          { return "txn_timeout" }
func (TxnCommitAttempted) Kind() string   { return "txn_commit" }
func (TxnAborted) Kind() string           { return "txn_abort" }
func (CoordinatorCrashed) Kind() string   { return "coordinator_crash" }
func (ServerCrashed) Kind() string        { return "server_crash" }
func (FinalSumReported) Kind() string     { return "final_sum" }

func (SeedAnnounced) isEvent()        {}
func (ActorsAnnounced) isEvent()      {}
func (TxnBegun) isEvent()             {}
func (ClientOrderAnnounced) isEvent() {}
func (TxnTimedOut) isEvent()          {}
func (TxnCommitAttempted) isEvent()   {}
func (TxnAborted) isEvent()           {}
func (CoordinatorCrashed) isEvent()   {}
func (ServerCrashed) isEvent()        {}
func (FinalSumReported) isEvent()     {}
