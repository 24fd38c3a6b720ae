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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTargetAppendsNewlineTerminatedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	target, err := File{Name: path}.Open()
	require.NoError(t, err)

	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "line one")
	require.NoError(t, err)
	_, err = target.AddLog(NewPrival(FacilityUser, SeverityWarning), "line two")
	require.NoError(t, err)
	require.NoError(t, target.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n")
	require.Len(t, lines, 2)

	first := parseRFC5424(t, lines[0])
	assert.Equal(t, "line one", first.message)
	second := parseRFC5424(t, lines[1])
	assert.Equal(t, NewPrival(FacilityUser, SeverityWarning), second.prival)
}

func TestFileTargetAppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	target, err := File{Name: path}.Open()
	require.NoError(t, err)
	_, err = target.AddMessage("first run")
	require.NoError(t, err)
	require.NoError(t, target.Close())

	target, err = File{Name: path}.Open()
	require.NoError(t, err)
	_, err = target.AddMessage("second run")
	require.NoError(t, err)
	require.NoError(t, target.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "first run")
	assert.Contains(t, string(contents), "second run")
}

func TestFileTargetOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "app.log")
	_, err := File{Name: path}.Open()
	require.Error(t, err)
	assert.Equal(t, ErrorFileWriteFailure, LastError().ID)
	assert.NotNil(t, LastError().Unwrap())
}

func TestFileTargetEmptyPath(t *testing.T) {
	_, err := File{}.New()
	require.Error(t, err)
	assert.Equal(t, ErrorArgumentEmpty, LastError().ID)
}
