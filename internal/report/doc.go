// Package report provides the explicit reporting context passed into
// every pipeline component.
//
// A Reporter replaces process-wide logging state: it mirrors events to a
// structured console logger and keeps warnings and errors in memory so
// that callers (and tests) can inspect what happened during a run
// without touching global state.
package report
