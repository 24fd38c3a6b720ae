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

//go:build !windows

package stumpless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogTargetUnsupported(t *testing.T) {
	target, err := EventLog{Name: "stumpless-test"}.New()
	require.NoError(t, err)
	assert.Equal(t, WindowsEventLogTargetType, target.Type())

	_, err = target.Open()
	require.Error(t, err)
	assert.Equal(t, ErrorTargetUnsupported, LastError().ID)
	assert.False(t, target.IsOpen())

	entry, err := NewEntry(FacilityUser, SeverityInfo, "app", "id", "msg")
	require.NoError(t, err)

	_, err = target.AddEntry(entry)
	require.Error(t, err)
	assert.Equal(t, ErrorTargetUnsupported, LastError().ID)

	err = target.Close()
	require.Error(t, err)
	assert.Equal(t, ErrorTargetUnsupported, LastError().ID)
	assert.False(t, target.IsOpen())
}

func TestDefaultTargetIsNotEventLogHere(t *testing.T) {
	defer FreeAll()
	FreeAll()

	def, err := GetDefaultTarget()
	require.NoError(t, err)
	assert.NotEqual(t, WindowsEventLogTargetType, def.Type())
}
