package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/config"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveUIMode picks live or plain output. Verbose logging always wins
// over the live UI because both write to the terminal.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", config.UIAuto:
		return uiModeDecision{useLive: !verbose && isTerminal(stdout)}, nil
	case config.UIPlain:
		return uiModeDecision{}, nil
	case config.UILive:
		switch {
		case verbose:
			return uiModeDecision{warning: "Live UI disabled by --verbose; using plain output."}, nil
		case !isTerminal(stdout):
			return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to plain output."}, nil
		default:
			return uiModeDecision{useLive: true}, nil
		}
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}
