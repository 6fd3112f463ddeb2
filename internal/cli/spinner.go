package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// spinner is a simple stderr progress indicator with context
// cancellation support. It renders nothing once stopped, leaving the log
// output clean.
type spinner struct {
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	frames  []string
}

// newSpinnerWithContext creates a spinner that stops when the context is
// cancelled or Stop is called.
func newSpinnerWithContext(ctx context.Context, message string) *spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				fmt.Fprintf(os.Stderr, "\r%s %s",
					styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				i++
			}
		}
	}()
}

// Stop halts the animation and clears the spinner line. It blocks until
// the render goroutine has exited.
func (s *spinner) Stop() {
	s.cancel()
	<-s.stopped
}

// clearLine erases the spinner output.
func (s *spinner) clearLine() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
}
