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
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flushCountingStream counts Flush calls so tests can confirm records are
// flushed as they're written.
type flushCountingStream struct {
	bytes.Buffer
	flushes int
}

func (s *flushCountingStream) Flush() error {
	s.flushes++
	return nil
}

type failingStream struct{}

func (failingStream) Write([]byte) (int, error) {
	return 0, errors.New("stream is broken")
}

func TestStreamTargetWritesAndFlushes(t *testing.T) {
	stream := &flushCountingStream{}
	target, err := Stream{Name: "memory", Stream: stream}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "streamed")
	require.NoError(t, err)

	line := stream.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	parsed := parseRFC5424(t, strings.TrimSuffix(line, "\n"))
	assert.Equal(t, "streamed", parsed.message)
	assert.Equal(t, 1, stream.flushes)
}

func TestStreamTargetWriteFailure(t *testing.T) {
	target, err := Stream{Name: "broken", Stream: failingStream{}}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.AddMessage("nope")
	require.Error(t, err)
	assert.Equal(t, ErrorStreamWriteFailure, LastError().ID)
}

func TestStreamTargetNilStream(t *testing.T) {
	_, err := Stream{Name: "nil"}.New()
	require.Error(t, err)
	assert.Equal(t, ErrorArgumentEmpty, LastError().ID)
}

func TestOpenStderrTarget(t *testing.T) {
	target, err := OpenStderrTarget("console")
	require.NoError(t, err)
	assert.Equal(t, StreamTargetType, target.Type())
	require.NoError(t, target.Close())
}
