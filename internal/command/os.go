// Package command defines the trainable shortcut commands, their
// per-platform key chords, and the dispatcher that resolves raw key
// presses into edit operations.
//
// The active OS is always an explicit parameter. Nothing in this
// package holds a process-wide "current OS".
package command

import (
	"fmt"
	"runtime"
)

// OS selects which platform's key chords are in effect.
type OS string

const (
	OSMac     OS = "mac"
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
)

// AllOS lists the supported platforms in display order.
func AllOS() []OS {
	return []OS{OSMac, OSWindows, OSLinux}
}

// ParseOS validates a user-supplied OS name.
func ParseOS(s string) (OS, error) {
	switch OS(s) {
	case OSMac, OSWindows, OSLinux:
		return OS(s), nil
	default:
		return "", fmt.Errorf("unknown os %q (want mac, windows, or linux)", s)
	}
}

// DetectOS maps the running platform to a trainer OS. Anything that is
// not darwin or windows trains the linux bindings.
func DetectOS() OS {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "windows":
		return OSWindows
	default:
		return OSLinux
	}
}
