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

/*
Package stumpless is a structured logging library producing RFC 5424 (and,
where needed, RFC 3164) syslog messages over a pluggable set of targets.

# Targets

A Target is a logging endpoint: one transport together with its defaults,
options, and lifecycle state.  Transports include an in-memory buffer, a
file, an open stream, a Unix domain socket, TCP and UDP network sockets, a
caller-supplied callback, the systemd journal, and the Windows Event Log.
Each transport has a configuration struct whose New method returns a paused
target and whose Open method returns a target ready for entries:

	target, err := stumpless.File{Name: "/var/log/app.log"}.Open()
	if err != nil {
		// handle
	}
	defer target.Close()
	target.AddMessage("ready to serve on %s", addr)

All targets present identical semantics to callers regardless of
transport.  Entries submitted to one target from multiple goroutines never
interleave on the wire; the whole dispatch pipeline runs under a per-target
lock.

# Entries

Log records can be built implicitly from a format string and priority, or
explicitly as an Entry carrying structured-data elements and parameters:

	entry, _ := stumpless.NewEntry(stumpless.FacilityUser,
		stumpless.SeverityInfo, "myapp", "req", "request handled")
	entry.SetParam("timing@9999", "elapsed", elapsed.String())
	target.AddEntry(entry)

Entries are caller-owned; the library reads an entry while dispatching but
keeps no reference once AddEntry returns.  Mutating an entry that is being
logged concurrently from another goroutine must be serialized by the
caller.

# The default and current targets

Implicit log calls write to the process-wide current target, which is the
most recently opened target or one chosen with SetCurrentTarget.  With no
target open, a default target is created on first use: the Windows Event
Log where available, the local syslog socket where one exists, and a file
named "stumpless-default.log" otherwise.

	stumpless.Stump("hello from %s", os.Args[0])

# Errors

Failing calls return an *Error carrying a kind from the library's error
taxonomy, a transport-specific code when one is available, and a wrapped
cause.  The same value is recorded in a per-goroutine last-error slot read
by LastError, which reflects the most recent library call made on the
calling goroutine.
*/
package stumpless
