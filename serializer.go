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
	"os"
	"time"

	"github.com/anindyasen/stumpless/format"
)

const (
	// nilValue is the RFC 5424 placeholder for an unknown or absent field.
	nilValue = "-"

	rfc5424Version  = "1"
	maxHostnameSize = 255
)

// rfc5424BOM precedes the message text per RFC 5424 section 6.4.
var rfc5424BOM = []byte{0xef, 0xbb, 0xbf}

var cachedHostname = lookupHostname()

func lookupHostname() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return nilValue
	}
	if len(hostname) > maxHostnameSize {
		hostname = hostname[:maxHostnameSize]
	}
	return hostname
}

// messageFormat selects the wire rendition used by text transports.
type messageFormat int

const (
	formatRFC5424 messageFormat = iota
	formatRFC3164
)

// serializeEntry renders the entry into buf using the target's defaults and
// selected wire format.  The caller must hold both the target lock and the
// entry lock; fields are read directly to avoid re-entering either.  No
// trailing newline is appended; framing belongs to the transport.
func serializeEntry(buf *format.Buffer, t *Target, e *Entry, now time.Time) {
	switch t.msgFormat {
	case formatRFC3164:
		serializeRFC3164(buf, t, e, now)
	default:
		serializeRFC5424(buf, t, e, now)
	}
}

// serializeRFC5424 renders:
//
//	<PRI>1 TIMESTAMP HOSTNAME APP-NAME PROCID MSGID STRUCTURED-DATA [MSG]
func serializeRFC5424(buf *format.Buffer, t *Target, e *Entry, now time.Time) {
	buf.AppendPri(NewPrival(e.facility, e.severity))
	buf.AppendString(rfc5424Version)
	buf.AppendByte(' ')
	buf.AppendTimestamp5424(now)
	buf.AppendByte(' ')
	buf.AppendString(cachedHostname)
	buf.AppendByte(' ')
	buf.AppendString(fieldOrDefault(e.appName, t.defaultAppName))
	buf.AppendByte(' ')
	appendProcID(buf, t.options)
	buf.AppendByte(' ')
	buf.AppendString(fieldOrDefault(e.msgid, t.defaultMsgID))
	buf.AppendByte(' ')
	appendStructuredData(buf, e.elements)
	if e.hasMessage && e.message != "" {
		buf.AppendByte(' ')
		buf.Append(rfc5424BOM)
		buf.AppendString(e.message)
	}
}

// serializeRFC3164 renders the legacy BSD format:
//
//	<PRI>MMM d HH:MM:SS HOSTNAME APP-NAME[PROCID]: MSG
//
// Structured data is dropped, matching traditional BSD relays.
func serializeRFC3164(buf *format.Buffer, t *Target, e *Entry, now time.Time) {
	buf.AppendPri(NewPrival(e.facility, e.severity))
	buf.AppendTimestamp3164(now)
	buf.AppendByte(' ')
	buf.AppendString(cachedHostname)
	buf.AppendByte(' ')
	buf.AppendString(fieldOrDefault(e.appName, t.defaultAppName))
	buf.AppendByte('[')
	buf.AppendInt(os.Getpid())
	buf.AppendString("]: ")
	if e.hasMessage {
		buf.AppendString(e.message)
	}
}

func fieldOrDefault(value string, fallback string) string {
	if value != "" {
		return value
	}
	if fallback != "" {
		return fallback
	}
	return nilValue
}

func appendProcID(buf *format.Buffer, options int) {
	if options&OptionPid != 0 {
		buf.AppendInt(os.Getpid())
		return
	}
	buf.AppendString(nilValue)
}

func appendStructuredData(buf *format.Buffer, elements []*Element) {
	if len(elements) == 0 {
		buf.AppendString(nilValue)
		return
	}
	for _, element := range elements {
		buf.AppendByte('[')
		buf.AppendString(element.name)
		for _, param := range element.params {
			buf.AppendByte(' ')
			buf.AppendString(param.name)
			buf.AppendString(`="`)
			buf.AppendEscaped(param.value)
			buf.AppendByte('"')
		}
		buf.AppendByte(']')
	}
}
