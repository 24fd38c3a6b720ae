// Copyright (c) 2026 Anindya Sen
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

//go:build windows

package stumpless

import (
	"golang.org/x/sys/windows/svc/eventlog"
)

// EventLog represents configuration for targets writing to the Windows
// Event Log.  Entries are recorded as informational, warning, or error
// events according to their severity.
type EventLog struct {
	// Required.  The event source name.
	Name string
}

// New returns a paused target based on the EventLog configuration.
func (e EventLog) New() (*Target, error) {
	if e.Name == "" {
		return nil, raise(ErrorArgumentEmpty, "event source name is empty")
	}
	clearError()
	return newTarget(WindowsEventLogTargetType, e.Name, &eventLogDriver{source: e.Name}), nil
}

// Open returns an open target based on the EventLog configuration.
func (e EventLog) Open() (*Target, error) {
	target, err := e.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

type eventLogDriver struct {
	source string
	log    *eventlog.Log
}

func (d *eventLogDriver) open(t *Target) error {
	log, err := eventlog.Open(d.source)
	if err != nil {
		return raiseCause(ErrorWindowsAPIFailure, 0, "failed to open event source", err)
	}
	d.log = log
	return nil
}

func (d *eventLogDriver) write(t *Target, record []byte) (int, error) {
	return 0, raisef(ErrorTargetIncompatible, "event log target %q does not accept serialized records", t.name)
}

func (d *eventLogDriver) writeEntry(t *Target, e *Entry) (int, error) {
	e.mu.Lock()
	severity := e.severity
	message := e.message
	e.mu.Unlock()

	var err error
	switch {
	case severity <= SeverityErr:
		err = d.log.Error(uint32(severity)+1, message)
	case severity == SeverityWarning:
		err = d.log.Warning(uint32(severity)+1, message)
	default:
		err = d.log.Info(uint32(severity)+1, message)
	}
	if err != nil {
		return 0, raiseCause(ErrorWindowsAPIFailure, 0, "failed to report event", err)
	}
	return len(message), nil
}

func (d *eventLogDriver) close() error {
	if d.log == nil {
		return nil
	}
	return d.log.Close()
}
