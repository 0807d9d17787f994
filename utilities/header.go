package utilities

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const headerWidth = 79

// MakeHeader returns a normalized header for run logs: rule lines, the
// date, the running executable, the given dependency versions, and the
// command-line arguments.
func MakeHeader(dependencies map[string]string) string {
	rule := strings.Repeat("#", headerWidth)

	names := make([]string, 0, len(dependencies))
	for name := range dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]string, len(names))
	for i, name := range names {
		deps[i] = fmt.Sprintf("%s v.%s", name, dependencies[name])
	}

	lines := []string{
		rule,
		rule,
		"",
		"Date: " + time.Now().Format("02 Jan 2006 15:04"),
		"Executable: " + os.Args[0],
		"Dependencies: " + strings.Join(deps, ", "),
		fmt.Sprintf("Command-line arguments: %v", os.Args[1:]),
	}

	return strings.Join(lines, "\n") + "\n"
}
