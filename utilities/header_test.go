package utilities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeHeader(t *testing.T) {
	header := MakeHeader(map[string]string{
		"gonum": "0.14.0",
		"ftdc":  "2025.02",
	})

	lines := strings.Split(header, "\n")
	require.True(t, len(lines) >= 7)
	assert.Equal(t, strings.Repeat("#", 79), lines[0])
	assert.Equal(t, lines[0], lines[1])
	assert.Empty(t, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Date: "))
	assert.True(t, strings.HasPrefix(lines[4], "Executable: "))

	// dependencies are sorted by name
	assert.Contains(t, lines[5], "ftdc v.2025.02, gonum v.0.14.0")
	assert.True(t, strings.HasPrefix(lines[6], "Command-line arguments: "))
	assert.True(t, strings.HasSuffix(header, "\n"))
}

func TestMakeHeaderWithoutDependencies(t *testing.T) {
	header := MakeHeader(nil)
	assert.Contains(t, header, "Dependencies: \n")
}
