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
	"sync"
	"sync/atomic"
)

const (
	// DefaultFile is the file written by the default target when neither
	// event log nor socket support is available.
	DefaultFile = "stumpless-default.log"

	// DefaultTargetName is the name of the default target when it is a
	// socket or event log target.  The file fallback is named by its path,
	// DefaultFile.
	DefaultTargetName = "stumpless-default"
)

// targetRef wraps a target pointer for storage in an atomic.Value, which
// rejects nil values.
type targetRef struct {
	target *Target
}

// registry holds the process-wide default and current target pointers.
// Reads go through atomic value loads; the mutex only serializes default
// target creation and teardown.
type targetRegistry struct {
	mu      sync.Mutex
	def     atomic.Value // targetRef
	current atomic.Value // targetRef
}

var registry = &targetRegistry{}

func (r *targetRegistry) loadDefault() *Target {
	ref, ok := r.def.Load().(targetRef)
	if !ok {
		return nil
	}
	return ref.target
}

func (r *targetRegistry) loadCurrent() *Target {
	ref, ok := r.current.Load().(targetRef)
	if !ok {
		return nil
	}
	return ref.target
}

// GetDefaultTarget returns the process-wide default target, creating it on
// first use.  The default is the Windows Event Log where supported, a local
// syslog socket where one exists, and otherwise a file target writing to
// DefaultFile.  The default carries no options and facility USER.
func GetDefaultTarget() (*Target, error) {
	if target := registry.loadDefault(); target != nil {
		clearError()
		return target, nil
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if target := registry.loadDefault(); target != nil {
		clearError()
		return target, nil
	}
	target, err := newDefaultTarget()
	if err != nil {
		return nil, record(err)
	}
	registry.def.Store(targetRef{target: target})
	clearError()
	return target, nil
}

// GetCurrentTarget returns the target implicit log calls write to: the most
// recently opened target, or the one set by SetCurrentTarget, falling back
// to the default target.
func GetCurrentTarget() (*Target, error) {
	if target := registry.loadCurrent(); target != nil {
		clearError()
		return target, nil
	}
	return GetDefaultTarget()
}

// SetCurrentTarget points implicit log calls at the given target.  The
// registry holds a non-owning reference; closing the target reverts the
// pointer to the default.  A nil target resets to the default explicitly.
func SetCurrentTarget(target *Target) {
	registry.current.Store(targetRef{target: target})
	clearError()
}

// markCurrentTarget records a freshly opened target as the current one.
func markCurrentTarget(target *Target) {
	registry.current.Store(targetRef{target: target})
}

// detachCurrentTarget resets the current-target pointer when the target it
// references is closed.
func detachCurrentTarget(target *Target) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.loadCurrent() == target {
		registry.current.Store(targetRef{})
	}
}

// FreeAll tears down the library's process-wide state: the default target
// is closed, the current-target pointer is cleared, and all last-error
// slots are released.  Targets created by the caller are unaffected.
func FreeAll() {
	registry.mu.Lock()
	def := registry.loadDefault()
	registry.def.Store(targetRef{})
	registry.current.Store(targetRef{})
	registry.mu.Unlock()

	if def != nil {
		def.Close()
	}
	lastErrors.reset()
}
