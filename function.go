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

package stumpless

// LogFunc is the callback invoked by function targets.  The callback may
// inspect the entry directly.  The returned count is propagated as the
// dispatch result; a non-nil error marks the entry as failed.
//
// The callback runs while the target's lock is held, so it must not call
// methods on the target itself, the default getters included; the target's
// defaults are therefore not readable from inside the callback.  The entry's
// accessors are safe to use.
type LogFunc func(t *Target, e *Entry) (int, error)

// Function represents configuration for targets that hand each entry to a
// caller-supplied callback instead of a transport.  The callback receives
// the raw entry; no serialization is performed.
type Function struct {
	// Required.  A free-form label for the target.
	Name string

	// Required.  The callback invoked for each logged entry.
	Log LogFunc
}

// New returns a paused target based on the Function configuration.
func (f Function) New() (*Target, error) {
	if f.Log == nil {
		return nil, raise(ErrorArgumentEmpty, "log function is nil")
	}
	clearError()
	return newTarget(FunctionTargetType, f.Name, &functionDriver{fn: f.Log}), nil
}

// Open returns an open target based on the Function configuration.
func (f Function) Open() (*Target, error) {
	target, err := f.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

type functionDriver struct {
	fn LogFunc
}

func (d *functionDriver) open(*Target) error {
	return nil
}

func (d *functionDriver) write(t *Target, record []byte) (int, error) {
	return 0, raisef(ErrorTargetIncompatible, "function target %q does not accept serialized records", t.name)
}

func (d *functionDriver) writeEntry(t *Target, e *Entry) (int, error) {
	count, err := d.fn(t, e)
	if err != nil {
		return count, raiseCause(ErrorFunctionTargetFailure, 0, "log function reported failure", err)
	}
	if count < 0 {
		return count, raisef(ErrorFunctionTargetFailure, "log function returned %d", count)
	}
	return count, nil
}

func (d *functionDriver) close() error {
	return nil
}
