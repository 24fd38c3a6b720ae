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
	"strconv"

	"github.com/coreos/go-systemd/v22/journal"
)

// Journald represents configuration for targets sending entries to the
// systemd journal.  Entries are passed to the journal as structured records
// rather than serialized syslog lines: the app name becomes
// SYSLOG_IDENTIFIER, the facility SYSLOG_FACILITY, and structured-data
// parameters become ELEMENT_PARAM journal fields.
//
// On systems without a reachable journal every operation on the target,
// including close, reports target unsupported.
type Journald struct {
	// Optional.  A free-form label for the target, also used as the
	// journal identifier for entries without an app name.
	Name string
}

// New returns a paused target based on the Journald configuration.
func (j Journald) New() (*Target, error) {
	if !journal.Enabled() {
		clearError()
		return newTarget(JournaldTargetType, j.Name, unsupportedDriver{typ: JournaldTargetType}), nil
	}
	clearError()
	return newTarget(JournaldTargetType, j.Name, &journaldDriver{}), nil
}

// Open returns an open target based on the Journald configuration.
func (j Journald) Open() (*Target, error) {
	target, err := j.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

type journaldDriver struct{}

func (d *journaldDriver) open(*Target) error {
	return nil
}

func (d *journaldDriver) write(t *Target, record []byte) (int, error) {
	return 0, raisef(ErrorTargetIncompatible, "journald target %q does not accept serialized records", t.name)
}

func (d *journaldDriver) writeEntry(t *Target, e *Entry) (int, error) {
	e.mu.Lock()
	facility := e.facility
	severity := e.severity
	appName := e.appName
	msgid := e.msgid
	message := e.message
	elements := e.elements
	e.mu.Unlock()

	identifier := appName
	if identifier == "" {
		identifier = t.defaultAppName
	}
	if identifier == "" {
		identifier = t.name
	}
	if msgid == "" {
		msgid = t.defaultMsgID
	}

	vars := map[string]string{
		"SYSLOG_FACILITY": strconv.Itoa(int(facility)),
	}
	if identifier != "" {
		vars["SYSLOG_IDENTIFIER"] = identifier
	}
	if msgid != "" {
		vars["SYSLOG_MSGID"] = msgid
	}
	if t.options&OptionPid != 0 {
		vars["SYSLOG_PID"] = strconv.Itoa(os.Getpid())
	}
	for _, element := range elements {
		for _, param := range element.params {
			vars[journalFieldName(element.name, param.name)] = param.value
		}
	}

	err := journal.Send(message, journal.Priority(severity), vars)
	if err != nil {
		return 0, raiseCause(ErrorJournaldFailure, 0, "failed to send entry to the journal", err)
	}
	return len(message), nil
}

func (d *journaldDriver) close() error {
	return nil
}

// journalFieldName maps an element/param pair onto the journal's field
// grammar: uppercase letters, digits, and underscores, not starting with an
// underscore or digit.
func journalFieldName(elementName string, paramName string) string {
	joined := elementName + "_" + paramName
	field := make([]byte, 0, len(joined))
	for i := 0; i < len(joined); i++ {
		c := joined[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			c = '_'
		}
		field = append(field, c)
	}
	for len(field) > 0 && (field[0] == '_' || (field[0] >= '0' && field[0] <= '9')) {
		field = field[1:]
	}
	if len(field) == 0 {
		return "SD_PARAM"
	}
	return string(field)
}
