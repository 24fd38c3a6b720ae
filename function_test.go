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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionTargetReceivesRawEntry(t *testing.T) {
	var received *Entry
	target, err := Function{
		Name: "collector",
		Log: func(target *Target, entry *Entry) (int, error) {
			received = entry
			message, _ := entry.Message()
			return len(message), nil
		},
	}.Open()
	require.NoError(t, err)
	defer target.Close()

	entry, err := NewEntry(FacilityUser, SeverityInfo, "app", "id", "payload")
	require.NoError(t, err)

	count, err := target.AddEntry(entry)
	require.NoError(t, err)
	assert.Equal(t, len("payload"), count)
	assert.Same(t, entry, received)
	assert.Equal(t, "app", received.AppName())
}

func TestFunctionTargetErrorPropagates(t *testing.T) {
	target, err := Function{
		Name: "failing",
		Log: func(*Target, *Entry) (int, error) {
			return 0, errors.New("downstream rejected the entry")
		},
	}.Open()
	require.NoError(t, err)
	defer target.Close()

	entry, err := NewEntry(FacilityUser, SeverityInfo, "app", "id", "payload")
	require.NoError(t, err)

	_, err = target.AddEntry(entry)
	require.Error(t, err)
	require.NotNil(t, LastError())
	assert.Equal(t, ErrorFunctionTargetFailure, LastError().ID)
	assert.ErrorContains(t, err, "downstream rejected the entry")
}

func TestFunctionTargetNegativeCount(t *testing.T) {
	target, err := Function{
		Name: "negative",
		Log: func(*Target, *Entry) (int, error) {
			return -1, nil
		},
	}.Open()
	require.NoError(t, err)
	defer target.Close()

	entry, err := NewEntry(FacilityUser, SeverityInfo, "app", "id", "payload")
	require.NoError(t, err)

	_, err = target.AddEntry(entry)
	require.Error(t, err)
	assert.Equal(t, ErrorFunctionTargetFailure, LastError().ID)
}

func TestFunctionTargetNilCallback(t *testing.T) {
	_, err := Function{Name: "nilfn"}.New()
	require.Error(t, err)
	assert.Equal(t, ErrorArgumentEmpty, LastError().ID)
}

func TestFunctionTargetMaskFilterSkipsCallback(t *testing.T) {
	calls := 0
	target, err := Function{
		Name: "masked",
		Log: func(*Target, *Entry) (int, error) {
			calls++
			return 0, nil
		},
	}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.SetMask(MaskUpTo(SeverityErr))
	require.NoError(t, err)

	entry, err := NewEntry(FacilityUser, SeverityDebug, "app", "id", "quiet")
	require.NoError(t, err)

	count, err := target.AddEntry(entry)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, calls)
}
