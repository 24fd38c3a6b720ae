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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTargetFile(t *testing.T) {
	if localSyslogSocket() != "" {
		t.Skip("a local syslog socket exists; the default target won't be a file")
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer func() {
		FreeAll()
		os.Chdir(wd)
	}()
	FreeAll()

	_, err = Stump("first")
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)
	line := string(contents)
	assert.True(t, strings.HasPrefix(line, "<14>1 "), "default records use USER.INFO, got %q", line)
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, 1, strings.Count(line, "\n"))

	def, err := GetDefaultTarget()
	require.NoError(t, err)
	assert.Equal(t, FileTargetType, def.Type())
}

func TestDefaultTargetPrefersLocalSocket(t *testing.T) {
	if localSyslogSocket() == "" {
		t.Skip("no local syslog socket on this system")
	}

	defer FreeAll()
	FreeAll()

	def, err := GetDefaultTarget()
	require.NoError(t, err)
	assert.Equal(t, SocketTargetType, def.Type())

	name, err := def.Name()
	require.NoError(t, err)
	assert.Equal(t, DefaultTargetName, name)
}
