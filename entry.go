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
	"fmt"
	"sync"
)

const (
	maxAppNameLength = 48
	maxMsgIDLength   = 32
	maxSDNameLength  = 32
)

// Entry is a structured log record: a priority pair, an app name, a message
// id, an optional message, and an ordered list of structured-data elements.
//
// Entries are caller-owned.  The library reads an entry while dispatching it
// but retains no reference after AddEntry returns.  Mutations of a shared
// entry must be serialized by the caller; the entry lock only protects reads
// performed during dispatch against setter calls.
type Entry struct {
	mu         sync.Mutex
	facility   Facility
	severity   Severity
	appName    string
	msgid      string
	message    string
	hasMessage bool
	elements   []*Element
}

// Element is a structured-data element: an id and an ordered list of
// name/value parameters.
type Element struct {
	name   string
	params []*Param
}

// Param is a single structured-data name/value parameter.  Values may hold
// any UTF-8 text; escaping happens during serialization.
type Param struct {
	name  string
	value string
}

// NewEntry creates an entry with the given priority pair, app name, message
// id, and message.  The app name and msgid may be empty, in which case the
// target's defaults (and finally the nil value "-") are used on the wire.
func NewEntry(facility Facility, severity Severity, appName string, msgid string, message string) (*Entry, error) {
	if !facility.Valid() {
		return nil, raisef(ErrorInvalidFacility, "facility %d is out of range", int(facility))
	}
	if !severity.Valid() {
		return nil, raisef(ErrorInvalidSeverity, "severity %d is out of range", int(severity))
	}
	if appName != "" && appName != nilValue {
		if err := validateAppName(appName); err != nil {
			return nil, err
		}
	}
	if msgid != "" && msgid != nilValue {
		if err := validateMsgID(msgid); err != nil {
			return nil, err
		}
	}

	clearError()
	return &Entry{
		facility:   facility,
		severity:   severity,
		appName:    appName,
		msgid:      msgid,
		message:    message,
		hasMessage: message != "",
	}, nil
}

// NewEntryf creates an entry using formatting rules from the fmt package for
// the message.
func NewEntryf(facility Facility, severity Severity, appName string, msgid string, formatStr string, values ...interface{}) (*Entry, error) {
	return NewEntry(facility, severity, appName, msgid, fmt.Sprintf(formatStr, values...))
}

// Clone returns a deep copy of the entry, including all elements and params.
func (e *Entry) Clone() *Entry {
	e.mu.Lock()
	defer e.mu.Unlock()

	clone := &Entry{
		facility:   e.facility,
		severity:   e.severity,
		appName:    e.appName,
		msgid:      e.msgid,
		message:    e.message,
		hasMessage: e.hasMessage,
	}
	if e.elements != nil {
		clone.elements = make([]*Element, len(e.elements))
		for i, element := range e.elements {
			clone.elements[i] = element.clone()
		}
	}
	return clone
}

// Facility returns the entry's facility.
func (e *Entry) Facility() Facility {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.facility
}

// Severity returns the entry's severity.
func (e *Entry) Severity() Severity {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.severity
}

// Prival returns the entry's packed priority value.
func (e *Entry) Prival() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return NewPrival(e.facility, e.severity)
}

// SetPrival replaces the entry's facility and severity from a packed
// priority value.
func (e *Entry) SetPrival(prival int) (*Entry, error) {
	if !ValidPrival(prival) {
		return nil, raisef(ErrorInvalidFacility, "prival %d is out of range", prival)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.facility = PrivalFacility(prival)
	e.severity = PrivalSeverity(prival)
	clearError()
	return e, nil
}

// AppName returns the entry's app name, which may be empty.
func (e *Entry) AppName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.appName
}

// SetAppName replaces the entry's app name.
func (e *Entry) SetAppName(appName string) (*Entry, error) {
	if appName != "" && appName != nilValue {
		if err := validateAppName(appName); err != nil {
			return nil, err
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.appName = appName
	clearError()
	return e, nil
}

// MsgID returns the entry's message id, which may be empty.
func (e *Entry) MsgID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.msgid
}

// SetMsgID replaces the entry's message id.
func (e *Entry) SetMsgID(msgid string) (*Entry, error) {
	if msgid != "" && msgid != nilValue {
		if err := validateMsgID(msgid); err != nil {
			return nil, err
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.msgid = msgid
	clearError()
	return e, nil
}

// Message returns the entry's message and whether one is present.
func (e *Entry) Message() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message, e.hasMessage
}

// SetMessage replaces any prior message on the entry.
func (e *Entry) SetMessage(message string) *Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = message
	e.hasMessage = true
	clearError()
	return e
}

// SetMessagef replaces the entry's message using formatting rules from the
// fmt package.
func (e *Entry) SetMessagef(formatStr string, values ...interface{}) *Entry {
	return e.SetMessage(fmt.Sprintf(formatStr, values...))
}

// ClearMessage removes the entry's message entirely, so that neither the
// message nor its separator appear on the wire.
func (e *Entry) ClearMessage() *Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = ""
	e.hasMessage = false
	clearError()
	return e
}

// AddElement appends a structured-data element to the entry.  Element ids
// must be unique within an entry.
func (e *Entry) AddElement(element *Element) (*Entry, error) {
	if element == nil {
		return nil, raise(ErrorArgumentEmpty, "element is nil")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.elements {
		if existing.name == element.name {
			return nil, raisef(ErrorInvalidID, "element id %q already present in entry", element.name)
		}
	}
	e.elements = append(e.elements, element)
	clearError()
	return e, nil
}

// NewElementForEntry creates an element with the given id and appends it to
// the entry in one step, returning the new element.
func (e *Entry) NewElementForEntry(name string) (*Element, error) {
	element, err := NewElement(name)
	if err != nil {
		return nil, err
	}
	if _, err = e.AddElement(element); err != nil {
		return nil, err
	}
	return element, nil
}

// Element returns the element with the given id, or nil with an error set if
// no such element exists.
func (e *Entry) Element(name string) (*Element, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, element := range e.elements {
		if element.name == name {
			clearError()
			return element, nil
		}
	}
	return nil, raisef(ErrorInvalidID, "no element with id %q in entry", name)
}

// Elements returns the entry's elements in insertion order.  The returned
// slice is a copy; the elements themselves are shared.
func (e *Entry) Elements() []*Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	elements := make([]*Element, len(e.elements))
	copy(elements, e.elements)
	return elements
}

// SetParam sets the value of the named parameter within the named element,
// creating the element and parameter if they don't exist yet.
func (e *Entry) SetParam(elementName string, paramName string, value string) (*Entry, error) {
	element, err := e.Element(elementName)
	if err != nil {
		element, err = e.NewElementForEntry(elementName)
		if err != nil {
			return nil, err
		}
	}
	if _, err = element.SetParam(paramName, value); err != nil {
		return nil, err
	}
	return e, nil
}

// ParamValue returns the value of the named parameter within the named
// element.
func (e *Entry) ParamValue(elementName string, paramName string) (string, error) {
	element, err := e.Element(elementName)
	if err != nil {
		return "", err
	}
	return element.ParamValue(paramName)
}

// NewElement creates a structured-data element with the given id.
func NewElement(name string) (*Element, error) {
	if err := validateSDName(name); err != nil {
		return nil, err
	}
	clearError()
	return &Element{name: name}, nil
}

// Name returns the element's id.
func (el *Element) Name() string {
	return el.name
}

// AddParam appends a name/value parameter to the element.  Parameter names
// must be unique within an element.
func (el *Element) AddParam(name string, value string) (*Element, error) {
	if err := validateSDName(name); err != nil {
		return nil, err
	}
	for _, param := range el.params {
		if param.name == name {
			return nil, raisef(ErrorInvalidID, "param %q already present in element %q", name, el.name)
		}
	}
	el.params = append(el.params, &Param{name: name, value: value})
	clearError()
	return el, nil
}

// SetParam sets the value of the named parameter, appending it if absent.
func (el *Element) SetParam(name string, value string) (*Element, error) {
	for _, param := range el.params {
		if param.name == name {
			param.value = value
			clearError()
			return el, nil
		}
	}
	return el.AddParam(name, value)
}

// ParamValue returns the value of the named parameter.
func (el *Element) ParamValue(name string) (string, error) {
	for _, param := range el.params {
		if param.name == name {
			clearError()
			return param.value, nil
		}
	}
	return "", raisef(ErrorInvalidID, "no param named %q in element %q", name, el.name)
}

// Params returns the element's parameters in insertion order as name/value
// pairs.
func (el *Element) Params() []Param {
	params := make([]Param, len(el.params))
	for i, param := range el.params {
		params[i] = *param
	}
	return params
}

// Name returns the parameter's name.
func (p Param) Name() string {
	return p.name
}

// Value returns the parameter's value.
func (p Param) Value() string {
	return p.value
}

func (el *Element) clone() *Element {
	clone := &Element{name: el.name}
	if el.params != nil {
		clone.params = make([]*Param, len(el.params))
		for i, param := range el.params {
			copied := *param
			clone.params[i] = &copied
		}
	}
	return clone
}

// validateSDName enforces the RFC 5424 SD-NAME grammar: 1-32 printable
// US-ASCII characters excluding '=', ']', '"', and space.
func validateSDName(name string) error {
	if name == "" {
		return raise(ErrorArgumentEmpty, "name is empty")
	}
	if len(name) > maxSDNameLength {
		return raisef(ErrorArgumentTooBig, "name %q exceeds %d characters", name, maxSDNameLength)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= 32 || c >= 127 || c == '=' || c == ']' || c == '"' {
			return raisef(ErrorInvalidEncoding, "name %q contains illegal character at index %d", name, i)
		}
	}
	return nil
}

// validateAppName enforces the RFC 5424 APP-NAME grammar: 1-48 printable
// US-ASCII characters.
func validateAppName(appName string) error {
	if appName == "" {
		return raise(ErrorArgumentEmpty, "app name is empty")
	}
	if len(appName) > maxAppNameLength {
		return raisef(ErrorArgumentTooBig, "app name %q exceeds %d characters", appName, maxAppNameLength)
	}
	for i := 0; i < len(appName); i++ {
		c := appName[i]
		if c < 33 || c >= 127 {
			return raisef(ErrorInvalidEncoding, "app name %q contains illegal character at index %d", appName, i)
		}
	}
	return nil
}

// validateMsgID enforces the RFC 5424 MSGID grammar: 1-32 US-ASCII
// characters in the range 33-126.
func validateMsgID(msgid string) error {
	if msgid == "" {
		return raise(ErrorArgumentEmpty, "msgid is empty")
	}
	if len(msgid) > maxMsgIDLength {
		return raisef(ErrorArgumentTooBig, "msgid %q exceeds %d characters", msgid, maxMsgIDLength)
	}
	for i := 0; i < len(msgid); i++ {
		c := msgid[i]
		if c < 33 || c > 126 {
			return raisef(ErrorInvalidEncoding, "msgid %q contains illegal character at index %d", msgid, i)
		}
	}
	return nil
}
