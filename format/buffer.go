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

package format

import (
	"strconv"
	"sync"
	"time"
)

var pool = newPool()

// Pooling the serialization scratch buffers keeps entry dispatch free of
// per-call allocations once the buffers have grown to record size.
type bufferPool struct {
	pool *sync.Pool
}

func newPool() *bufferPool {
	return &bufferPool{pool: &sync.Pool{
		New: func() interface{} {
			return newBuffer()
		},
	}}
}

func (p *bufferPool) get() *Buffer {
	buffer := p.pool.Get().(*Buffer)
	buffer.Reset()
	return buffer
}

func (p *bufferPool) put(b *Buffer) {
	p.pool.Put(b)
}

// GetBuffer returns an empty buffer from a pool of Buffers.  A corresponding
// "defer ReleaseBuffer()" should be used to free the buffer when finished.
func GetBuffer() *Buffer {
	return pool.get()
}

// ReleaseBuffer returns a buffer to the buffer pool.  Failing to release the
// buffer won't cause any harm, as the Go runtime will garbage collect it.
func ReleaseBuffer(buffer *Buffer) {
	pool.put(buffer)
}

// Buffer is a growable byte buffer used to assemble syslog records.  It's
// similar to bytes.Buffer but exposes only the append operations the
// serializers need, plus syslog-specific helpers for PRI brackets,
// structured-data escaping, and timestamps.
type Buffer struct {
	bytes []byte
}

func newBuffer() *Buffer {
	return &Buffer{
		bytes: make([]byte, 0, 128),
	}
}

// Bytes returns the buffered bytes.  The slice aliases the buffer's internal
// storage and is only valid until the next write or Reset.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return len(b.bytes)
}

// Reset restores the buffer to a blank state.  The underlying byte slice is
// retained.
func (b *Buffer) Reset() {
	b.bytes = b.bytes[:0]
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(value byte) {
	b.bytes = append(b.bytes, value)
}

// Append appends the byte slice value.
func (b *Buffer) Append(value []byte) {
	b.bytes = append(b.bytes, value...)
}

// AppendString appends the string value.
func (b *Buffer) AppendString(value string) {
	b.bytes = append(b.bytes, value...)
}

// AppendInt appends the decimal representation of value.
func (b *Buffer) AppendInt(value int) {
	b.bytes = strconv.AppendInt(b.bytes, int64(value), 10)
}

// AppendPri appends the bracketed PRI part for the given priority value,
// e.g. "<14>".
func (b *Buffer) AppendPri(prival int) {
	b.AppendByte('<')
	b.AppendInt(prival)
	b.AppendByte('>')
}

// AppendEscaped appends an RFC 5424 PARAM-VALUE, backslash-escaping each of
// the double quote, backslash, and closing bracket characters.  No other
// characters are altered.
func (b *Buffer) AppendEscaped(value string) {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '"' || c == '\\' || c == ']' {
			b.AppendByte('\\')
		}
		b.AppendByte(c)
	}
}

// rfc5424Time is the timestamp layout required by RFC 5424: RFC 3339 with
// microsecond precision.  Serialization always converts to UTC first so the
// offset renders as the literal "Z".
const rfc5424Time = "2006-01-02T15:04:05.000000Z"

// AppendTimestamp5424 appends ts as an RFC 5424 TIMESTAMP field in UTC.
func (b *Buffer) AppendTimestamp5424(ts time.Time) {
	b.bytes = ts.UTC().AppendFormat(b.bytes, rfc5424Time)
}

// AppendTimestamp3164 appends ts as a classic BSD syslog timestamp in local
// time, with the day of month space-padded per RFC 3164.
func (b *Buffer) AppendTimestamp3164(ts time.Time) {
	b.bytes = ts.AppendFormat(b.bytes, time.Stamp)
}

// OctetFrame prefixes the given record with its decimal byte length and a
// space, the octet-counting framing of RFC 6587.  The frame is assembled in
// a fresh slice since the length prefix precedes the record.
func OctetFrame(record []byte) []byte {
	framed := make([]byte, 0, len(record)+8)
	framed = strconv.AppendInt(framed, int64(len(record)), 10)
	framed = append(framed, ' ')
	return append(framed, record...)
}
