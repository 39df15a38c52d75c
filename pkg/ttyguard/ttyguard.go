// Package ttyguard keeps terminal probing away from machine-readable runs.
//
// Import it for side effects before anything that pulls in Bubble Tea or
// lipgloss:
//
//	import _ "github.com/vanderheijden86/handover/pkg/ttyguard"
package ttyguard

import (
	"os"
	"strings"
)

// init runs before Bubble Tea acquires the terminal.
//
// Lipgloss/termenv background detection can emit OSC/DSR control sequences
// to stdout. They are harmless in a real terminal but corrupt JSON and
// exported documents written to stdout. Setting CI=1 early makes termenv
// skip the probe.
func init() {
	if os.Getenv("CI") != "" {
		return
	}

	if !ShouldSuppressTTYQueries(os.Args, os.Getenv("HANDOVER_ROBOT") == "1", os.Getenv("HANDOVER_TEST_MODE") != "") {
		return
	}

	_ = os.Setenv("CI", "1")
}

// ShouldSuppressTTYQueries reports whether the invocation is non-interactive:
// robot or export output, --version, --help, or forced by the environment.
func ShouldSuppressTTYQueries(args []string, envRobot, envTest bool) bool {
	if envRobot || envTest {
		return true
	}

	for _, arg := range args {
		if strings.HasPrefix(arg, "--robot-") || strings.HasPrefix(arg, "-robot-") ||
			strings.HasPrefix(arg, "--export-") || strings.HasPrefix(arg, "-export-") {
			return true
		}
		switch arg {
		case "--version", "-version", "--help", "-help", "-h":
			return true
		}
	}

	return false
}
