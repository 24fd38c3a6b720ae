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

import "strings"

// Facility represents a syslog facility as defined by RFC 5424.
type Facility int

// Facility constants, in the standard syslog ordering.
const (
	FacilityKern Facility = iota
	FacilityUser
	FacilityMail
	FacilityDaemon
	FacilityAuth
	FacilitySyslog
	FacilityLpr
	FacilityNews
	FacilityUucp
	FacilityCron
	FacilityAuthpriv
	FacilityFtp
	FacilityNtp
	FacilityAudit
	FacilityAlert
	FacilityCron2
	FacilityLocal0
	FacilityLocal1
	FacilityLocal2
	FacilityLocal3
	FacilityLocal4
	FacilityLocal5
	FacilityLocal6
	FacilityLocal7
)

// Severity represents a syslog severity as defined by RFC 5424.
type Severity int

// Severity constants, most severe first.
const (
	SeverityEmerg Severity = iota
	SeverityAlert
	SeverityCrit
	SeverityErr
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

var facilityNames = map[Facility]string{
	FacilityKern:     "KERN",
	FacilityUser:     "USER",
	FacilityMail:     "MAIL",
	FacilityDaemon:   "DAEMON",
	FacilityAuth:     "AUTH",
	FacilitySyslog:   "SYSLOG",
	FacilityLpr:      "LPR",
	FacilityNews:     "NEWS",
	FacilityUucp:     "UUCP",
	FacilityCron:     "CRON",
	FacilityAuthpriv: "AUTHPRIV",
	FacilityFtp:      "FTP",
	FacilityNtp:      "NTP",
	FacilityAudit:    "AUDIT",
	FacilityAlert:    "ALERT",
	FacilityCron2:    "CRON2",
	FacilityLocal0:   "LOCAL0",
	FacilityLocal1:   "LOCAL1",
	FacilityLocal2:   "LOCAL2",
	FacilityLocal3:   "LOCAL3",
	FacilityLocal4:   "LOCAL4",
	FacilityLocal5:   "LOCAL5",
	FacilityLocal6:   "LOCAL6",
	FacilityLocal7:   "LOCAL7",
}

var severityNames = map[Severity]string{
	SeverityEmerg:   "EMERG",
	SeverityAlert:   "ALERT",
	SeverityCrit:    "CRIT",
	SeverityErr:     "ERR",
	SeverityWarning: "WARNING",
	SeverityNotice:  "NOTICE",
	SeverityInfo:    "INFO",
	SeverityDebug:   "DEBUG",
}

// String returns the conventional name of the facility, or "INVALID" if the
// value is out of range.
func (f Facility) String() string {
	name, present := facilityNames[f]
	if present {
		return name
	}
	return "INVALID"
}

// String returns the conventional name of the severity, or "INVALID" if the
// value is out of range.
func (s Severity) String() string {
	name, present := severityNames[s]
	if present {
		return name
	}
	return "INVALID"
}

// Valid reports whether the facility is within the range defined by RFC 5424.
func (f Facility) Valid() bool {
	return f >= FacilityKern && f <= FacilityLocal7
}

// Valid reports whether the severity is within the range defined by RFC 5424.
func (s Severity) Valid() bool {
	return s >= SeverityEmerg && s <= SeverityDebug
}

// FacilityFromString looks up a facility by its conventional name.  The match
// is case-insensitive.
func FacilityFromString(name string) (Facility, error) {
	upper := strings.ToUpper(name)
	for facility, facilityName := range facilityNames {
		if facilityName == upper {
			return facility, nil
		}
	}
	return 0, raisef(ErrorInvalidFacility, "facility name %q is not recognized", name)
}

// SeverityFromString looks up a severity by its conventional name.  The match
// is case-insensitive.
func SeverityFromString(name string) (Severity, error) {
	upper := strings.ToUpper(name)
	for severity, severityName := range severityNames {
		if severityName == upper {
			return severity, nil
		}
	}
	return 0, raisef(ErrorInvalidSeverity, "severity name %q is not recognized", name)
}

// NewPrival packs a facility and severity into a single priority value,
// PRI = facility*8 + severity.
func NewPrival(facility Facility, severity Severity) int {
	return int(facility)<<3 + int(severity)
}

// PrivalFacility extracts the facility from a packed priority value.
func PrivalFacility(prival int) Facility {
	return Facility(prival >> 3)
}

// PrivalSeverity extracts the severity from a packed priority value.
func PrivalSeverity(prival int) Severity {
	return Severity(prival & 0x7)
}

// ValidPrival reports whether prival is a legal packed priority (0-191).
func ValidPrival(prival int) bool {
	return prival >= 0 && prival <= 191
}

// PrivalFromString parses a "facility.severity" pair such as "user.info"
// into a packed priority value.
func PrivalFromString(pair string) (int, error) {
	dot := strings.IndexByte(pair, '.')
	if dot < 0 {
		return -1, raisef(ErrorInvalidID, "priority %q is not a facility.severity pair", pair)
	}
	facility, err := FacilityFromString(pair[:dot])
	if err != nil {
		return -1, err
	}
	severity, err := SeverityFromString(pair[dot+1:])
	if err != nil {
		return -1, err
	}
	return NewPrival(facility, severity), nil
}

// MaskOf returns the severity mask bit for a single severity, in the manner
// of the classic LOG_MASK macro.
func MaskOf(severity Severity) int {
	return 1 << uint(severity)
}

// MaskUpTo returns a severity mask covering every severity from EMERG up to
// and including the given one, in the manner of the classic LOG_UPTO macro.
func MaskUpTo(severity Severity) int {
	return (1 << uint(severity+1)) - 1
}
