package summary

// txnState is the lifecycle position of a client's current transaction.
//
//	begun -> timed_out | commit_ok | commit_fail -> aborted
type txnState int

const (
	txnNone txnState = iota
	txnBegun
	txnTimedOut
	txnCommitOK
	txnCommitFail
	txnAborted
)

func (s txnState) String() string {
	switch s {
	case txnBegun:
		return "begun"
	case txnTimedOut:
		return "timed_out"
	case txnCommitOK:
		return "commit_ok"
	case txnCommitFail:
		return "commit_fail"
	case txnAborted:
		return "aborted"
	default:
		return "none"
	}
}

// txnTable tracks the latest transaction of each client. Clients run one
// transaction at a time, so the client id keys the transaction.
type txnTable map[int]txnState

func (t txnTable) get(client int) txnState {
	return t[client]
}

func (t txnTable) set(client int, state txnState) {
	t[client] = state
}
