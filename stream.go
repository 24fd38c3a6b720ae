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

	"github.com/pkg/errors"
)

// Stream represents configuration for targets writing to an open stream.
// Each record is written followed by a newline, and the stream is flushed
// after each record when it exposes a Flush method.  The stream stays open
// when the target is closed; the caller owns it.
type Stream struct {
	// Required.  A free-form label for the target.
	Name string

	// Required.  The stream records are written to.
	Stream io.Writer
}

// New returns a paused target based on the Stream configuration.
func (s Stream) New() (*Target, error) {
	if s.Stream == nil {
		return nil, raise(ErrorArgumentEmpty, "stream is nil")
	}
	clearError()
	return newTarget(StreamTargetType, s.Name, &streamDriver{stream: s.Stream}), nil
}

// Open returns an open target based on the Stream configuration.
func (s Stream) Open() (*Target, error) {
	target, err := s.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

// OpenStdoutTarget returns an open stream target writing to standard out.
func OpenStdoutTarget(name string) (*Target, error) {
	return Stream{Name: name, Stream: os.Stdout}.Open()
}

// OpenStderrTarget returns an open stream target writing to standard error.
func OpenStderrTarget(name string) (*Target, error) {
	return Stream{Name: name, Stream: os.Stderr}.Open()
}

type flusher interface {
	Flush() error
}

type streamDriver struct {
	stream io.Writer
}

func (d *streamDriver) open(*Target) error {
	return nil
}

func (d *streamDriver) write(t *Target, record []byte) (int, error) {
	line := append(record[:len(record):len(record)], '\n')
	written := 0
	for written < len(line) {
		n, err := d.stream.Write(line[written:])
		written += n
		if err != nil {
			return written, raiseCause(ErrorStreamWriteFailure, errnoOf(err), "failed to write to stream", errors.Wrap(err, t.name))
		}
	}
	if buffered, ok := d.stream.(flusher); ok {
		if err := buffered.Flush(); err != nil {
			return len(record), raiseCause(ErrorStreamWriteFailure, errnoOf(err), "failed to flush stream", errors.Wrap(err, t.name))
		}
	}
	return len(record), nil
}

func (d *streamDriver) close() error {
	return nil
}
