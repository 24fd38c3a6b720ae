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
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync"
)

// ErrorID classifies the failures the library can report.
type ErrorID int

// The error taxonomy.  Every failing public call records exactly one of
// these in the calling goroutine's last-error slot.
const (
	ErrorArgumentEmpty ErrorID = iota
	ErrorArgumentTooBig
	ErrorMemoryAllocationFailure
	ErrorInvalidEncoding
	ErrorInvalidFacility
	ErrorInvalidSeverity
	ErrorInvalidID
	ErrorTargetIncompatible
	ErrorTargetUnsupported
	ErrorTargetPaused
	ErrorTargetClosed
	ErrorSocketBindFailure
	ErrorSocketConnectFailure
	ErrorSocketSendFailure
	ErrorFileWriteFailure
	ErrorStreamWriteFailure
	ErrorWindowsAPIFailure
	ErrorJournaldFailure
	ErrorNetworkProtocolUnsupported
	ErrorAddressFailure
	ErrorFunctionTargetFailure
	ErrorInvalidArgument
)

var errorIDNames = map[ErrorID]string{
	ErrorArgumentEmpty:              "argument empty",
	ErrorArgumentTooBig:             "argument too big",
	ErrorMemoryAllocationFailure:    "memory allocation failure",
	ErrorInvalidEncoding:            "invalid encoding",
	ErrorInvalidFacility:            "invalid facility",
	ErrorInvalidSeverity:            "invalid severity",
	ErrorInvalidID:                  "invalid id",
	ErrorTargetIncompatible:         "target incompatible",
	ErrorTargetUnsupported:          "target unsupported",
	ErrorTargetPaused:               "target paused",
	ErrorTargetClosed:               "target closed",
	ErrorSocketBindFailure:          "socket bind failure",
	ErrorSocketConnectFailure:       "socket connect failure",
	ErrorSocketSendFailure:          "socket send failure",
	ErrorFileWriteFailure:           "file write failure",
	ErrorStreamWriteFailure:         "stream write failure",
	ErrorWindowsAPIFailure:          "windows api failure",
	ErrorJournaldFailure:            "journald failure",
	ErrorNetworkProtocolUnsupported: "network protocol unsupported",
	ErrorAddressFailure:             "address failure",
	ErrorFunctionTargetFailure:      "function target failure",
	ErrorInvalidArgument:            "invalid argument",
}

// String returns a human-readable name for the error id.
func (id ErrorID) String() string {
	name, present := errorIDNames[id]
	if present {
		return name
	}
	return "unknown error id " + strconv.Itoa(int(id))
}

// Error describes a failed library call.  Code carries a transport-specific
// value, such as an errno or API status, when one is available.
type Error struct {
	ID      ErrorID
	Code    int
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("stumpless: %s: %s: %s", e.ID, e.Message, e.cause)
	}
	return fmt.Sprintf("stumpless: %s: %s", e.ID, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// errorChannel holds the per-goroutine last-error slots.  Go has no
// thread-local storage, so the slots are keyed by goroutine id.  Slots are
// cleared on every successful public call and torn down by FreeAll.
type errorChannel struct {
	mu    sync.Mutex
	slots map[uint64]*Error
}

var lastErrors = &errorChannel{slots: make(map[uint64]*Error)}

// goroutineID parses the current goroutine's id out of its stack header.
// The header has the fixed form "goroutine N [state]:".
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	stack := buf[:n]
	stack = bytes.TrimPrefix(stack, []byte("goroutine "))
	if i := bytes.IndexByte(stack, ' '); i > 0 {
		id, err := strconv.ParseUint(string(stack[:i]), 10, 64)
		if err == nil {
			return id
		}
	}
	return 0
}

func (c *errorChannel) set(err *Error) {
	gid := goroutineID()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.slots, gid)
		return
	}
	c.slots[gid] = err
}

func (c *errorChannel) get() *Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slots[goroutineID()]
}

func (c *errorChannel) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots = make(map[uint64]*Error)
}

// LastError returns the error recorded by the most recent library call made
// on the calling goroutine, or nil if that call succeeded.
func LastError() *Error {
	return lastErrors.get()
}

// ClearError discards the calling goroutine's last-error slot.
func ClearError() {
	lastErrors.set(nil)
}

// clearError marks the current call as successful.  Public entry points call
// it on their success paths so that LastError reflects the most recent call.
func clearError() {
	lastErrors.set(nil)
}

// raise records and returns a new error with the given id and message.
func raise(id ErrorID, message string) *Error {
	err := &Error{ID: id, Message: message}
	lastErrors.set(err)
	return err
}

// raisef records and returns a new error with a formatted message.
func raisef(id ErrorID, formatStr string, values ...interface{}) *Error {
	return raise(id, fmt.Sprintf(formatStr, values...))
}

// raiseCause records and returns a new error wrapping a lower-level cause,
// along with a transport-specific code when one is known.
func raiseCause(id ErrorID, code int, message string, cause error) *Error {
	err := &Error{ID: id, Code: code, Message: message, cause: cause}
	lastErrors.set(err)
	return err
}

// record re-records an already constructed error, preserving root causes
// raised by inner layers.  Errors that are not *Error are wrapped so callers
// always observe the taxonomy.
func record(err error) error {
	if err == nil {
		clearError()
		return nil
	}
	typed, ok := err.(*Error)
	if !ok {
		typed = &Error{ID: ErrorTargetIncompatible, Message: err.Error(), cause: err}
	}
	lastErrors.set(typed)
	return typed
}
