// Package consoleutil provides utilities for handling colored console output.
package consoleutil

import (
	"os"
	"strings"
)

// ANSI color codes for text foreground
const (
	FgRed     = "\033[31m"
	FgGreen   = "\033[32m"
	FgYellow  = "\033[33m"
	FgBlue    = "\033[34m"
	FgMagenta = "\033[35m"
	FgCyan    = "\033[36m"
)

// ANSI format codes
const (
	Bold  = "\033[1m"
	Dim   = "\033[2m"
	Reset = "\033[0m"
)

// forceColor can be set to override automatic color detection
var forceColor *bool

// SetForceColor allows forcing color output on or off, overriding automatic detection.
// This is useful for unit tests or when the program knows better than the automatic detection.
func SetForceColor(force bool) {
	forceColor = &force
}

// IsColorSupported returns whether the current environment supports ANSI colors.
func IsColorSupported() bool {
	if forceColor != nil {
		return *forceColor
	}

	if os.Getenv("NO_COLOR") != "" || strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return false
	}

	return true
}

// ColorText applies a foreground color to the provided text and resets color at the end.
func ColorText(text, color string) string {
	if !IsColorSupported() {
		return text // Return plain text if colors not supported
	}
	return color + text + Reset
}

// Format applies multiple formatting options to text.
// Example: Format("Important", Bold, FgRed)
func Format(text string, formats ...string) string {
	if !IsColorSupported() {
		return text // Return plain text if colors not supported
	}

	formatting := ""
	for _, format := range formats {
		formatting += format
	}

	return formatting + text + Reset
}
