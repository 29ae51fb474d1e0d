package main

import (
	"fmt"
	"io"
)

// Styling for the status lines dias writes to stderr. Values read from
// storage go to stdout unstyled so they can be piped.

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + ansiReset
}

// notice is a kind of one-line status message.
type notice struct {
	mark  string
	color string
}

var (
	noticeDone = notice{"✓", ansiGreen}
	noticeWarn = notice{"⚠", ansiYellow}
	noticeStep = notice{"→", ansiCyan}
)

func (n notice) print(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, colorize(n.color, n.mark+" "+fmt.Sprintf(format, args...)))
}

// field writes an indented "label: value" line.
func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", colorize(ansiBold, label+":"), value)
}
