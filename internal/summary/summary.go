package summary

// RunSummary is the reduced view of one simulation run. Pointer fields are
// nil when the trace never announced the value.
type RunSummary struct {
	Run          int     `json:"run"`
	Seed         *uint64 `json:"seed"`
	Clients      *int    `json:"clients"`
	Coordinators *int    `json:"coordinators"`
	Servers      *int    `json:"servers"`

	Initiated          int `json:"initiated"`
	TimedOut           int `json:"timed_out"`
	Finished           int `json:"finished"`
	CommittedOK        int `json:"committed_ok"`
	CommittedFail      int `json:"committed_fail"`
	Aborted            int `json:"aborted"`
	FailedThenAborted  int `json:"failed_then_aborted"`
	CoordinatorCrashes int `json:"coordinator_crashes"`
	ServerCrashes      int `json:"server_crashes"`

	FinalSum    *uint64 `json:"final_sum"`
	FinalResult *string `json:"final_result"`

	CommittedOKRate   Rate `json:"committed_ok_rate"`
	CommittedFailRate Rate `json:"committed_fail_rate"`
	AbortedRate       Rate `json:"aborted_rate"`

	Warnings []string `json:"warnings,omitempty"`
}

// Counts holds the raw counters of a run in progress.
type Counts struct {
	Initiated          int
	TimedOut           int
	Finished           int
	CommittedOK        int
	CommittedFail      int
	Aborted            int
	FailedThenAborted  int
	CoordinatorCrashes int
	ServerCrashes      int
}

// FailedNotAborted is the number of failed commit attempts whose
// transaction was not later aborted.
func (s RunSummary) FailedNotAborted() int {
	return s.CommittedFail - s.FailedThenAborted
}
