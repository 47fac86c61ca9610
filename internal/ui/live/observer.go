package live

import (
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

// Controller runs the live UI and implements runner.RunObserver.
type Controller struct {
	events  chan Event
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
	now     func() time.Time
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithInput(nil))
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
		now:     time.Now,
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.events)
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil || c.done == nil {
		return
	}
	<-c.done
}

// OnSessionStart forwards session start events to the UI.
func (c *Controller) OnSessionStart(sessionID string, runs int) {
	c.send(Event{Kind: EventSessionStart, SessionID: sessionID, Runs: runs})
}

// OnRunStart forwards run start events to the UI.
func (c *Controller) OnRunStart(run int) {
	c.send(Event{Kind: EventRunStart, Run: run})
}

// OnRunStage forwards stage changes to the UI.
func (c *Controller) OnRunStage(run int, stage runner.Stage) {
	c.send(Event{Kind: EventRunStage, Run: run, Stage: stage})
}

// OnRunEnd forwards run completion to the UI.
func (c *Controller) OnRunEnd(run int, result *summary.RunSummary, err error) {
	event := Event{Kind: EventRunEnd, Run: run, Summary: result}
	if err != nil {
		event.Error = err.Error()
	}
	c.send(event)
}

// OnSessionEnd forwards session completion to the UI and closes it.
func (c *Controller) OnSessionEnd(session runner.Session) {
	c.send(Event{Kind: EventSessionEnd, SessionID: session.ID})
	c.Close()
}

// send stamps and enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	if c.now != nil {
		event.EmittedAt = c.now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}

var _ runner.RunObserver = (*Controller)(nil)
