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

import (
	"io"
	"os"
	"time"

	"github.com/anindyasen/stumpless/format"
)

// console receives the OptionPerror and OptionCons side-channel copies.
// Write errors on this side channel are discarded.
var console io.Writer = os.Stderr

// AddEntry serializes the entry (or passes it raw to structured transports)
// and hands it to the target's driver.  It returns the length of the
// serialized record (framing the transport adds, such as a trailing newline
// or an octet count, is not counted), the count reported by a structured
// driver, or 0 for entries filtered by the target's severity mask.  The
// entire pipeline runs under the target lock, so concurrent entries on one
// target never interleave on the wire.
func (t *Target) AddEntry(e *Entry) (int, error) {
	if e == nil {
		return 0, raise(ErrorArgumentEmpty, "entry is nil")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if stub, ok := t.drv.(unsupportedDriver); ok {
		return 0, stub.unsupported()
	}

	switch t.state {
	case targetClosed:
		return 0, raisef(ErrorTargetClosed, "%s target %q is closed", t.typ, t.name)
	case targetPaused:
		return 0, raisef(ErrorTargetPaused, "%s target %q has not been opened", t.typ, t.name)
	}

	if t.mask != 0 && t.mask&MaskOf(e.Severity()) == 0 {
		clearError()
		return 0, nil
	}

	if structured, ok := t.drv.(structuredDriver); ok {
		return t.addStructured(structured, e)
	}
	return t.addSerialized(e)
}

// addStructured hands the entry directly to drivers that consume entries
// raw.  The driver reads entry fields under the entry's own lock, either
// directly or through the entry's getters.
func (t *Target) addStructured(structured structuredDriver, e *Entry) (int, error) {
	count, err := structured.writeEntry(t, e)
	if t.options&OptionPerror != 0 || (err != nil && t.options&OptionCons != 0) {
		t.writeConsole(e)
	}
	if err != nil {
		return 0, record(err)
	}
	clearError()
	return count, nil
}

// addSerialized renders the entry and routes the bytes to the driver,
// retrying once through a reconnect for transports that support it.
func (t *Target) addSerialized(e *Entry) (int, error) {
	buf := format.GetBuffer()
	defer format.ReleaseBuffer(buf)

	e.mu.Lock()
	serializeEntry(buf, t, e, time.Now())
	e.mu.Unlock()
	line := buf.Bytes()

	count, err := t.drv.write(t, line)
	if err != nil {
		if conn, ok := t.drv.(reconnector); ok {
			if rerr := conn.reconnect(t); rerr == nil {
				count, err = t.drv.write(t, line)
			}
		}
	}

	if t.options&OptionPerror != 0 || (err != nil && t.options&OptionCons != 0) {
		console.Write(append(line[:len(line):len(line)], '\n'))
	}

	if err != nil {
		return 0, record(err)
	}
	clearError()
	return count, nil
}

// writeConsole renders the entry for the stderr side channel of structured
// transports.
func (t *Target) writeConsole(e *Entry) {
	buf := format.GetBuffer()
	defer format.ReleaseBuffer(buf)
	e.mu.Lock()
	serializeEntry(buf, t, e, time.Now())
	e.mu.Unlock()
	console.Write(append(buf.Bytes(), '\n'))
}

// AddLog formats a message and logs it to the target with the given packed
// priority.
func (t *Target) AddLog(prival int, formatStr string, values ...interface{}) (int, error) {
	if !ValidPrival(prival) {
		return 0, raisef(ErrorInvalidSeverity, "prival %d is out of range", prival)
	}
	entry, err := NewEntryf(PrivalFacility(prival), PrivalSeverity(prival), "", "", formatStr, values...)
	if err != nil {
		return 0, err
	}
	return t.AddEntry(entry)
}

// AddMessage formats a message and logs it to the target using the target's
// default priority.
func (t *Target) AddMessage(formatStr string, values ...interface{}) (int, error) {
	t.mu.Lock()
	prival := t.defaultPrival
	t.mu.Unlock()
	return t.AddLog(prival, formatStr, values...)
}

// Stump formats a message and logs it to the current target with the
// current target's default priority.
func Stump(formatStr string, values ...interface{}) (int, error) {
	target, err := GetCurrentTarget()
	if err != nil {
		return 0, err
	}
	return target.AddMessage(formatStr, values...)
}

// Stumplog formats a message and logs it to the current target with the
// given packed priority.
func Stumplog(prival int, formatStr string, values ...interface{}) (int, error) {
	target, err := GetCurrentTarget()
	if err != nil {
		return 0, err
	}
	return target.AddLog(prival, formatStr, values...)
}

// StumpStr logs a plain message string to the current target, bypassing
// format expansion.
func StumpStr(message string) (int, error) {
	target, err := GetCurrentTarget()
	if err != nil {
		return 0, err
	}
	return target.AddMessage("%s", message)
}

// AddMessageStr logs a plain message string to the target, bypassing format
// expansion.
func (t *Target) AddMessageStr(message string) (int, error) {
	return t.AddMessage("%s", message)
}
