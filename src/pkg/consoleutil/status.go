package consoleutil

import (
	"fmt"
	"strings"
)

// StatusType represents the type of status message
type StatusType int

// Status type constants
const (
	StatusSuccess StatusType = iota
	StatusWarning
	StatusError
	StatusInfo
)

// statusIcons defines symbols that represent different status types
var statusIcons = map[StatusType]string{
	StatusSuccess: "✓",
	StatusWarning: "⚠",
	StatusError:   "✗",
	StatusInfo:    "ℹ",
}

// statusColors defines the color to be used for each status type
var statusColors = map[StatusType]string{
	StatusSuccess: FgGreen,
	StatusWarning: FgYellow,
	StatusError:   FgRed,
	StatusInfo:    FgBlue,
}

// FormatStatus formats a status message with a colored icon prefix
// based on the status type. The result is a string ready for printing
// to the console.
func FormatStatus(message string, statusType StatusType) string {
	icon := ColorText(statusIcons[statusType], statusColors[statusType])
	return fmt.Sprintf("%s %s", icon, message)
}

// FormatSuccess formats a success message
func FormatSuccess(message string) string {
	return FormatStatus(message, StatusSuccess)
}

// FormatWarning formats a warning message
func FormatWarning(message string) string {
	return FormatStatus(message, StatusWarning)
}

// FormatError formats an error message
func FormatError(message string) string {
	return FormatStatus(message, StatusError)
}

// FormatInfo formats an informational message
func FormatInfo(message string) string {
	return FormatStatus(message, StatusInfo)
}

// FormatTable formats a simple two-column table with optional headers
// and separators for displaying information in the console.
func FormatTable(headers []string, rows [][]string, useColor bool) string {
	var sb strings.Builder

	// Find the max width for each column
	colCount := 2 // we only support two columns for simplicity
	if len(headers) > colCount {
		headers = headers[:colCount]
	}

	colWidths := make([]int, colCount)

	// Check headers
	if len(headers) == colCount {
		for i, header := range headers {
			if len(header) > colWidths[i] {
				colWidths[i] = len(header)
			}
		}
	}

	// Check rows
	for _, row := range rows {
		if len(row) > colCount {
			row = row[:colCount]
		}

		for i, cell := range row {
			if i < colCount && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// Print headers
	if len(headers) == colCount {
		for i, header := range headers {
			if i > 0 {
				sb.WriteString(" | ")
			}

			padding := strings.Repeat(" ", colWidths[i]-len(header))
			if useColor {
				sb.WriteString(Format(header+padding, Bold))
			} else {
				sb.WriteString(header + padding)
			}
		}
		sb.WriteString("\n")

		// Print separator
		for i, width := range colWidths {
			if i > 0 {
				sb.WriteString("-+-")
			}
			sb.WriteString(strings.Repeat("-", width))
		}
		sb.WriteString("\n")
	}

	// Print rows
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			if i > 0 {
				sb.WriteString(" | ")
			}

			if i < len(row) {
				cell := row[i]
				padding := strings.Repeat(" ", colWidths[i]-len(cell))
				sb.WriteString(cell + padding)
			} else {
				sb.WriteString(strings.Repeat(" ", colWidths[i]))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
