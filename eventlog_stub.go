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

//go:build !windows

package stumpless

// EventLog represents configuration for targets writing to the Windows
// Event Log.  On non-Windows platforms every operation on such a target,
// including close, reports target unsupported.
type EventLog struct {
	// Required.  The event source name.
	Name string
}

// New returns a target whose operations all report target unsupported.
func (e EventLog) New() (*Target, error) {
	clearError()
	return newTarget(WindowsEventLogTargetType, e.Name, unsupportedDriver{typ: WindowsEventLogTargetType}), nil
}

// Open reports event log targets as unsupported on this platform.
func (e EventLog) Open() (*Target, error) {
	target, err := e.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}
