package consoleutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTable(t *testing.T) {
	SetForceColor(false)
	defer SetForceColor(true)

	out := FormatTable(
		[]string{"Key", "Value"},
		[][]string{
			{"Length", "5"},
			{"Palindrome", "true"},
		},
		false,
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Key")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "Length")
	assert.Contains(t, lines[3], "Palindrome")

	// Columns align on the widest cell
	assert.Equal(t, strings.Index(lines[2], "|"), strings.Index(lines[3], "|"))
}

func TestFormatTableWithoutHeaders(t *testing.T) {
	out := FormatTable(nil, [][]string{{"a", "b"}}, false)
	assert.NotContains(t, out, "---")
}

func TestColorTextRespectsForceOff(t *testing.T) {
	SetForceColor(false)
	defer SetForceColor(true)

	assert.Equal(t, "plain", ColorText("plain", FgRed))
	assert.Equal(t, "plain", Format("plain", Bold, FgGreen))
}

func TestFormatStatusIncludesIcon(t *testing.T) {
	SetForceColor(false)
	defer SetForceColor(true)

	assert.Equal(t, "✓ done", FormatSuccess("done"))
	assert.Equal(t, "✗ failed", FormatError("failed"))
}
