package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Spinner is a terminal activity indicator shown while a generation
// pass runs.
type Spinner struct {
	out  io.Writer
	stop chan struct{}
}

// NewSpinner creates a spinner writing to stderr.
func NewSpinner() *Spinner {
	return &Spinner{out: os.Stderr}
}

// Start shows the indicator next to the message until Stop is called.
func (s *Spinner) Start(message string) {
	s.stop = make(chan struct{})

	go func() {
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stop:
					return
				default:
					fmt.Fprintf(s.out, "\r%s %s%c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(100 * time.Millisecond)
				}
			}
		}
	}()
}

// Stop halts the indicator and clears the line.
func (s *Spinner) Stop() {
	close(s.stop)
	fmt.Fprint(s.out, "\r")
}
