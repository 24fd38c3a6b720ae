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
	"net"
	"os"

	"github.com/pkg/errors"
)

// Default locations of the local syslog daemon's datagram socket.
var syslogSocketPaths = []string{"/var/run/syslog", "/dev/log"}

// Socket represents configuration for targets sending datagrams to a Unix
// domain socket, typically the local syslog daemon.  Each record is one
// datagram.  Send failures are reported without retry; datagram loss is
// acceptable per syslog tradition.
type Socket struct {
	// Optional.  A free-form label for the target.  Defaults to the
	// socket path.
	Name string

	// Optional.  The socket path.  Defaults to the first of
	// /var/run/syslog and /dev/log that exists.
	Path string
}

// New returns a paused target based on the Socket configuration.
func (s Socket) New() (*Target, error) {
	path := s.Path
	if path == "" {
		path = localSyslogSocket()
		if path == "" {
			return nil, raise(ErrorAddressFailure, "no local syslog socket was found")
		}
	}
	name := s.Name
	if name == "" {
		name = path
	}
	clearError()
	return newTarget(SocketTargetType, name, &socketDriver{path: path}), nil
}

// Open returns an open target based on the Socket configuration.  Unless
// OptionNdelay is set the connection itself is deferred to the first logged
// entry.
func (s Socket) Open() (*Target, error) {
	target, err := s.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

func localSyslogSocket() string {
	for _, path := range syslogSocketPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

type socketDriver struct {
	path string
	conn net.Conn
}

func (d *socketDriver) open(t *Target) error {
	if t.options&OptionNdelay == 0 {
		return nil
	}
	return d.connect()
}

func (d *socketDriver) connect() error {
	conn, err := net.Dial("unixgram", d.path)
	if err != nil {
		return raiseCause(ErrorSocketConnectFailure, errnoOf(err), "failed to connect to socket", errors.Wrap(err, d.path))
	}
	d.conn = conn
	return nil
}

func (d *socketDriver) write(t *Target, record []byte) (int, error) {
	if d.conn == nil {
		if err := d.connect(); err != nil {
			return 0, err
		}
	}
	n, err := d.conn.Write(record)
	if err != nil {
		return n, raiseCause(ErrorSocketSendFailure, errnoOf(err), "failed to send datagram", errors.Wrap(err, d.path))
	}
	return n, nil
}

func (d *socketDriver) close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
