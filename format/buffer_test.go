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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBufferAppends(t *testing.T) {
	buf := GetBuffer()
	defer ReleaseBuffer(buf)

	buf.AppendString("abc")
	buf.AppendByte(' ')
	buf.Append([]byte("def"))
	buf.AppendInt(-42)
	assert.Equal(t, "abc def-42", string(buf.Bytes()))
	assert.Equal(t, 10, buf.Len())

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
}

func TestBufferAppendPri(t *testing.T) {
	buf := GetBuffer()
	defer ReleaseBuffer(buf)

	buf.AppendPri(14)
	assert.Equal(t, "<14>", string(buf.Bytes()))
}

func TestBufferAppendEscaped(t *testing.T) {
	buf := GetBuffer()
	defer ReleaseBuffer(buf)

	buf.AppendEscaped(`plain "quoted" back\slash bracket] end`)
	assert.Equal(t, `plain \"quoted\" back\\slash bracket\] end`, string(buf.Bytes()))
}

func TestBufferTimestamp5424(t *testing.T) {
	buf := GetBuffer()
	defer ReleaseBuffer(buf)

	ts := time.Date(2026, time.March, 14, 9, 26, 53, 589793000, time.FixedZone("plus2", 2*3600))
	buf.AppendTimestamp5424(ts)
	assert.Equal(t, "2026-03-14T07:26:53.589793Z", string(buf.Bytes()))
}

func TestBufferTimestamp3164(t *testing.T) {
	buf := GetBuffer()
	defer ReleaseBuffer(buf)

	ts := time.Date(2026, time.March, 4, 9, 26, 53, 0, time.Local)
	buf.AppendTimestamp3164(ts)
	assert.Equal(t, "Mar  4 09:26:53", string(buf.Bytes()))
}

func TestOctetFrame(t *testing.T) {
	framed := OctetFrame([]byte("hello"))
	assert.Equal(t, "5 hello", string(framed))

	framed = OctetFrame(nil)
	assert.Equal(t, "0 ", string(framed))
}

func TestBufferPoolReuse(t *testing.T) {
	buf := GetBuffer()
	buf.AppendString("leftovers")
	ReleaseBuffer(buf)

	fresh := GetBuffer()
	defer ReleaseBuffer(fresh)
	assert.Equal(t, 0, fresh.Len())
}
