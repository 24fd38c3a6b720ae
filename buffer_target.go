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

// Buffer represents configuration for targets writing into a caller-provided
// byte array.  Each record is appended followed by a NUL byte.  When a record
// doesn't fit in the remaining space, writing wraps to the head of the array,
// overwriting the oldest records.
type Buffer struct {
	// Required.  A free-form label for the target.
	Name string

	// Required.  The array records are written into.  The caller retains
	// ownership; closing the target does not release it.
	Bytes []byte
}

// New returns a paused target based on the Buffer configuration.
func (b Buffer) New() (*Target, error) {
	if len(b.Bytes) == 0 {
		return nil, raise(ErrorArgumentEmpty, "buffer is empty")
	}
	clearError()
	return newTarget(BufferTargetType, b.Name, &bufferDriver{data: b.Bytes}), nil
}

// Open returns an open target based on the Buffer configuration.
func (b Buffer) Open() (*Target, error) {
	target, err := b.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

type bufferDriver struct {
	data    []byte
	writeAt int
	readAt  int
}

func (d *bufferDriver) open(*Target) error {
	return nil
}

func (d *bufferDriver) write(t *Target, record []byte) (int, error) {
	needed := len(record) + 1
	if needed > len(d.data) {
		return 0, raisef(ErrorArgumentTooBig, "record of %d bytes exceeds the %d byte buffer", len(record), len(d.data))
	}
	if d.writeAt+needed > len(d.data) {
		// Wrap to the head, clobbering the oldest records.
		d.writeAt = 0
		d.readAt = 0
	}
	copy(d.data[d.writeAt:], record)
	d.data[d.writeAt+len(record)] = 0
	d.writeAt += needed
	return len(record), nil
}

func (d *bufferDriver) close() error {
	return nil
}

// ReadBuffer returns the next unread record from a buffer target, or the
// empty string once the reader has caught up with the writer.  Reading a
// non-buffer target reports the target as incompatible.
func (t *Target) ReadBuffer() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return "", err
	}
	buffered, ok := t.drv.(*bufferDriver)
	if !ok {
		return "", raisef(ErrorTargetIncompatible, "%s target %q is not a buffer target", t.typ, t.name)
	}
	if buffered.readAt >= buffered.writeAt {
		clearError()
		return "", nil
	}
	record := buffered.data[buffered.readAt:buffered.writeAt]
	end := 0
	for end < len(record) && record[end] != 0 {
		end++
	}
	buffered.readAt += end + 1
	clearError()
	return string(record[:end]), nil
}
