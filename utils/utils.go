package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// ANSI color sequences used for terminal status output. They are
// blanked when stderr is not a terminal so redirected output stays
// clean.
var (
	DefaultColor = "\x1b[0m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

func init() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		DefaultColor, SuccessColor, ErrorColor = "", "", ""
	}
}

// FormatTime formats a time.Duration to a human readable value.
func FormatTime(d time.Duration) string {
	switch {
	case d.Seconds() < 60:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d.Minutes() < 60:
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(math.Mod(d.Seconds(), 60)))
	default:
		return fmt.Sprintf("%dh:%dm:%ds", int64(d.Hours()),
			int64(math.Mod(d.Minutes(), 60)), int64(math.Mod(d.Seconds(), 60)))
	}
}
