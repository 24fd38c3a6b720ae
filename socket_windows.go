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

//go:build windows

package stumpless

// Socket targets require Unix domain sockets, which this platform doesn't
// provide for syslog daemons.  Targets built from this configuration report
// every operation as unsupported.
type Socket struct {
	Name string
	Path string
}

// New returns a target whose operations all report target unsupported.
func (s Socket) New() (*Target, error) {
	clearError()
	return newTarget(SocketTargetType, s.Name, unsupportedDriver{typ: SocketTargetType}), nil
}

// Open reports socket targets as unsupported on this platform.
func (s Socket) Open() (*Target, error) {
	target, err := s.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}
