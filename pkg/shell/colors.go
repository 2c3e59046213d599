// Package shell provides ANSI escape codes for colored terminal output.
//
// Colorize wraps text in the given codes and resets afterwards. Output can
// be disabled globally, and the NO_COLOR environment variable
// (https://no-color.org) is honored at startup.
package shell

import (
	"os"
	"strings"
)

// ANSI escape codes for text color and effects.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"
	Blink     = "\033[5m"
	Reverse   = "\033[7m"

	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BgBlack   = "\033[40m"
	BgRed     = "\033[41m"
	BgGreen   = "\033[42m"
	BgYellow  = "\033[43m"
	BgBlue    = "\033[44m"
	BgMagenta = "\033[45m"
	BgCyan    = "\033[46m"
	BgWhite   = "\033[47m"
)

// NoColor disables all coloring when true. It is initialized from the
// NO_COLOR environment variable.
var NoColor = os.Getenv("NO_COLOR") != ""

// Colorize wraps text in the given codes, followed by a reset. With no
// codes, or when NoColor is set, the text is returned unchanged.
func Colorize(text string, codes ...string) string {
	if NoColor || len(codes) == 0 {
		return text
	}
	var b strings.Builder
	for _, code := range codes {
		b.WriteString(code)
	}
	b.WriteString(text)
	b.WriteString(Reset)
	return b.String()
}
