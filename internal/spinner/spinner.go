// Package spinner shows an activity indicator on a terminal while metric
// files load.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Spinner animates a message on one line until stopped.
type Spinner struct {
	w       io.Writer
	message string

	done    chan struct{}
	cleared chan struct{}
	once    sync.Once
}

// Start draws message with an animated frame on w. Stop clears the line.
func Start(w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:       w,
		message: message,
		done:    make(chan struct{}),
		cleared: make(chan struct{}),
	}
	go s.run()
	return s
}

// StartOnTerminal is Start when w is a terminal and a no-op otherwise, so
// piped and redirected output stays clean.
func StartOnTerminal(w io.Writer, message string) *Spinner {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return Start(w, message)
	}
	return nil
}

func (s *Spinner) run() {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.cleared)

	for i := 0; ; i++ {
		select {
		case <-s.done:
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+2)) //nolint:errcheck
			return
		case <-ticker.C:
			fmt.Fprintf(s.w, "\r%s %s", frames[i%len(frames)], s.message) //nolint:errcheck
		}
	}
}

// Stop halts the animation and waits for the line to be cleared. It is safe
// to call more than once and on a nil Spinner.
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() { close(s.done) })
	<-s.cleared
}
