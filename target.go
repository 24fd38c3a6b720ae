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

	"github.com/google/uuid"
)

// TargetType tags the transport behind a target.  A target's type never
// changes over its lifetime.
type TargetType int

// The supported target types.
const (
	BufferTargetType TargetType = iota
	FileTargetType
	FunctionTargetType
	JournaldTargetType
	NetworkTargetType
	SocketTargetType
	StreamTargetType
	WindowsEventLogTargetType
)

var targetTypeNames = map[TargetType]string{
	BufferTargetType:          "buffer",
	FileTargetType:            "file",
	FunctionTargetType:        "function",
	JournaldTargetType:        "journald",
	NetworkTargetType:         "network",
	SocketTargetType:          "socket",
	StreamTargetType:          "stream",
	WindowsEventLogTargetType: "windows event log",
}

// String returns the conventional name of the target type.
func (t TargetType) String() string {
	name, present := targetTypeNames[t]
	if present {
		return name
	}
	return "unknown"
}

// Target options.  The bit layout matches the legacy syslog option values.
const (
	// OptionPid populates the PROCID field of serialized records.
	OptionPid = 0x01
	// OptionCons writes the formatted record to standard error when the
	// transport write fails.
	OptionCons = 0x02
	// OptionNdelay opens socket and network connections at target open
	// rather than lazily on the first logged entry.
	OptionNdelay = 0x08
	// OptionPerror writes every formatted record to standard error in
	// addition to the normal transport.
	OptionPerror = 0x20

	recognizedOptions = OptionPid | OptionCons | OptionNdelay | OptionPerror
)

type targetState int

const (
	targetPaused targetState = iota
	targetOpen
	targetClosed
)

// driver is the capability set every transport implements.  All calls are
// made under the owning target's lock.
type driver interface {
	// open acquires the transport's resources.  Called on the paused to
	// open transition.
	open(t *Target) error

	// write delivers one serialized record.  Framing is the driver's
	// responsibility.
	write(t *Target, record []byte) (int, error)

	// close releases the transport's resources.  Called exactly once.
	close() error
}

// structuredDriver marks transports that consume entries directly instead
// of serialized text, such as journald and the Windows Event Log.
type structuredDriver interface {
	writeEntry(t *Target, e *Entry) (int, error)
}

// reconnector marks transports with a broken/connected connection sub-state
// that dispatch may ask to re-establish once per call.
type reconnector interface {
	reconnect(t *Target) error
}

// Target is a logging endpoint: one transport with its defaults, options,
// and lifecycle state.  All mutable fields are guarded by the target lock;
// the identifier and type are immutable.
type Target struct {
	id  string
	typ TargetType

	mu             sync.Mutex
	name           string
	options        int
	defaultPrival  int
	defaultAppName string
	defaultMsgID   string
	mask           int
	msgFormat      messageFormat
	state          targetState
	drv            driver
}

// newTarget assembles a paused target around the given driver.  The default
// priority is USER.INFO, matching the traditional syslog default.
func newTarget(typ TargetType, name string, drv driver) *Target {
	return &Target{
		id:            uuid.NewString(),
		typ:           typ,
		name:          name,
		defaultPrival: NewPrival(FacilityUser, SeverityInfo),
		state:         targetPaused,
		drv:           drv,
	}
}

// ID returns the target's process-unique identifier.  Identifiers are never
// reused within a process, even after the target is closed.
func (t *Target) ID() string {
	return t.id
}

// Type returns the target's transport type.
func (t *Target) Type() TargetType {
	return t.typ
}

// Name returns the target's name.  The meaning is type-specific: a file
// path, socket path, host:port address, event source name, or free label.
func (t *Target) Name() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return "", err
	}
	clearError()
	return t.name, nil
}

// Open transitions a paused target to open, acquiring the transport's
// resources.  On failure the target stays paused with the error recorded.
func (t *Target) Open() (*Target, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == targetClosed {
		return nil, raisef(ErrorTargetClosed, "%s target %q is closed", t.typ, t.name)
	}
	if t.state == targetOpen {
		clearError()
		return t, nil
	}
	if err := t.drv.open(t); err != nil {
		return nil, record(err)
	}
	t.state = targetOpen
	markCurrentTarget(t)
	clearError()
	return t, nil
}

// IsOpen reports whether the target is accepting entries.
func (t *Target) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == targetOpen
}

// Close tears the target down: it waits for the lock, releases the
// transport's resources, and marks the target closed.  If this target is
// the current target, the current-target pointer reverts to the default.
// A closed target must not be used again.
func (t *Target) Close() error {
	t.mu.Lock()
	if t.state == targetClosed {
		t.mu.Unlock()
		return raisef(ErrorTargetClosed, "%s target %q is already closed", t.typ, t.name)
	}
	err := t.drv.close()
	t.state = targetClosed
	t.mu.Unlock()

	detachCurrentTarget(t)

	if err != nil {
		return record(err)
	}
	clearError()
	return nil
}

// Option returns the given option bit if it is set on the target, and 0
// otherwise, so callers can both test presence and retrieve the bit value.
func (t *Target) Option(option int) (int, error) {
	if option&^recognizedOptions != 0 {
		return 0, raisef(ErrorInvalidArgument, "option %#x is not recognized", option)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return 0, err
	}
	clearError()
	return t.options & option, nil
}

// SetOption sets the given option bits on the target.
func (t *Target) SetOption(option int) (*Target, error) {
	if option&^recognizedOptions != 0 {
		return nil, raisef(ErrorInvalidArgument, "option %#x is not recognized", option)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.options |= option
	clearError()
	return t, nil
}

// UnsetOption clears the given option bits on the target.
func (t *Target) UnsetOption(option int) (*Target, error) {
	if option&^recognizedOptions != 0 {
		return nil, raisef(ErrorInvalidArgument, "option %#x is not recognized", option)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.options &^= option
	clearError()
	return t, nil
}

// DefaultFacility returns the facility used for entries logged through the
// target without an explicit priority.
func (t *Target) DefaultFacility() (Facility, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return 0, err
	}
	clearError()
	return PrivalFacility(t.defaultPrival), nil
}

// SetDefaultFacility replaces the facility half of the target's default
// priority.
func (t *Target) SetDefaultFacility(facility Facility) (*Target, error) {
	if !facility.Valid() {
		return nil, raisef(ErrorInvalidFacility, "facility %d is out of range", int(facility))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.defaultPrival = NewPrival(facility, PrivalSeverity(t.defaultPrival))
	clearError()
	return t, nil
}

// DefaultSeverity returns the severity used for entries logged through the
// target without an explicit priority.
func (t *Target) DefaultSeverity() (Severity, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return 0, err
	}
	clearError()
	return PrivalSeverity(t.defaultPrival), nil
}

// SetDefaultSeverity replaces the severity half of the target's default
// priority.
func (t *Target) SetDefaultSeverity(severity Severity) (*Target, error) {
	if !severity.Valid() {
		return nil, raisef(ErrorInvalidSeverity, "severity %d is out of range", int(severity))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.defaultPrival = NewPrival(PrivalFacility(t.defaultPrival), severity)
	clearError()
	return t, nil
}

// DefaultAppName returns the app name substituted for entries that don't
// carry one, or the empty string if no default is set.
func (t *Target) DefaultAppName() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return "", err
	}
	clearError()
	return t.defaultAppName, nil
}

// SetDefaultAppName replaces the target's default app name.  On validation
// failure the stored default is left unchanged.
func (t *Target) SetDefaultAppName(appName string) (*Target, error) {
	if err := validateAppName(appName); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.defaultAppName = appName
	clearError()
	return t, nil
}

// DefaultMsgID returns the message id substituted for entries that don't
// carry one, or the empty string if no default is set.
func (t *Target) DefaultMsgID() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return "", err
	}
	clearError()
	return t.defaultMsgID, nil
}

// SetDefaultMsgID replaces the target's default message id.  On validation
// failure the stored default is left unchanged.
func (t *Target) SetDefaultMsgID(msgid string) (*Target, error) {
	if err := validateMsgID(msgid); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.defaultMsgID = msgid
	clearError()
	return t, nil
}

// Mask returns the target's severity mask.  A zero mask disables filtering.
func (t *Target) Mask() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return 0, err
	}
	clearError()
	return t.mask, nil
}

// SetMask replaces the target's severity mask.  Entries whose severity bit
// is absent from a non-zero mask are silently filtered by dispatch.  Use
// MaskOf and MaskUpTo to build mask values.
func (t *Target) SetMask(mask int) (*Target, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.mask = mask
	clearError()
	return t, nil
}

// usable rejects operations on unsupported and closed targets.  Callers hold
// the lock.
func (t *Target) usable() error {
	if stub, ok := t.drv.(unsupportedDriver); ok {
		return stub.unsupported()
	}
	if t.state == targetClosed {
		return raisef(ErrorTargetClosed, "%s target %q is closed", t.typ, t.name)
	}
	return nil
}
