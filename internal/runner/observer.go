package runner

import "github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"

// RunObserver receives session lifecycle events for UI or logging.
type RunObserver interface {
	// OnSessionStart signals the start of a session of runs.
	OnSessionStart(sessionID string, runs int)
	// OnRunStart signals the start of a run.
	OnRunStart(run int)
	// OnRunStage signals that a run entered a stage.
	OnRunStage(run int, stage Stage)
	// OnRunEnd delivers the run's summary, or the error that prevented one.
	OnRunEnd(run int, result *summary.RunSummary, err error)
	// OnSessionEnd signals that every run has been attempted.
	OnSessionEnd(session Session)
}

// Observers fans events out to several observers in order.
type Observers []RunObserver

func (o Observers) OnSessionStart(sessionID string, runs int) {
	for _, obs := range o {
		obs.OnSessionStart(sessionID, runs)
	}
}

func (o Observers) OnRunStart(run int) {
	for _, obs := range o {
		obs.OnRunStart(run)
	}
}

func (o Observers) OnRunStage(run int, stage Stage) {
	for _, obs := range o {
		obs.OnRunStage(run, stage)
	}
}

func (o Observers) OnRunEnd(run int, result *summary.RunSummary, err error) {
	for _, obs := range o {
		obs.OnRunEnd(run, result, err)
	}
}

func (o Observers) OnSessionEnd(session Session) {
	for _, obs := range o {
		obs.OnSessionEnd(session)
	}
}

// noopObserver ignores every event.
type noopObserver struct{}

func (noopObserver) OnSessionStart(string, int)               {}
func (noopObserver) OnRunStart(int)                           {}
func (noopObserver) OnRunStage(int, Stage)                    {}
func (noopObserver) OnRunEnd(int, *summary.RunSummary, error) {}
func (noopObserver) OnSessionEnd(Session)                     {}
