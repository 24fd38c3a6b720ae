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
	"net"
	"strings"

	"github.com/anindyasen/stumpless/format"
	"github.com/pkg/errors"
)

// Transports supported by network targets.
const (
	TCP4 = "tcp4"
	TCP6 = "tcp6"
	UDP4 = "udp4"
	UDP6 = "udp6"
)

// Framing selects how records are delimited on stream transports.
type Framing int

const (
	// OctetCountingFraming prefixes each record with its decimal byte
	// length and a space, per RFC 6587.  This is the default for TCP.
	OctetCountingFraming Framing = iota

	// NewlineFraming terminates each record with a newline.
	NewlineFraming
)

// Network represents configuration for targets sending records to a remote
// syslog server over TCP or UDP.  The connection is opened lazily on the
// first logged entry unless OptionNdelay is set on the target.
//
// On a TCP write failure the connection is marked broken and the same
// dispatch makes exactly one reconnect attempt, retrying the write once if
// it succeeds.  If that reconnect fails the connection stays broken, and the
// next dispatch again makes one reconnect attempt before writing.  UDP sends
// one datagram per record with no framing and no reconnection.
type Network struct {
	// Required.  The server address as host:port.
	Name string

	// Optional.  One of TCP4, TCP6, UDP4, UDP6.  Default: TCP4.
	Transport string

	// Optional.  Record framing for TCP transports.
	Framing Framing

	// Optional.  Render records in the legacy RFC 3164 BSD format instead
	// of RFC 5424.  Conventional for UDP relays that predate RFC 5424.
	RFC3164 bool
}

// New returns a paused target based on the Network configuration.
func (n Network) New() (*Target, error) {
	if n.Name == "" {
		return nil, raise(ErrorArgumentEmpty, "network address is empty")
	}
	transport := n.Transport
	if transport == "" {
		transport = TCP4
	}
	switch transport {
	case TCP4, TCP6, UDP4, UDP6:
	default:
		return nil, raisef(ErrorNetworkProtocolUnsupported, "transport %q is not supported", transport)
	}

	target := newTarget(NetworkTargetType, n.Name, &networkDriver{
		transport: transport,
		address:   n.Name,
		framing:   n.Framing,
		datagram:  strings.HasPrefix(transport, "udp"),
	})
	if n.RFC3164 {
		target.msgFormat = formatRFC3164
	}
	clearError()
	return target, nil
}

// Open returns an open target based on the Network configuration.
func (n Network) Open() (*Target, error) {
	target, err := n.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

type networkDriver struct {
	transport string
	address   string
	framing   Framing
	datagram  bool
	conn      net.Conn
	broken    bool
}

func (d *networkDriver) open(t *Target) error {
	if t.options&OptionNdelay == 0 {
		return nil
	}
	return d.connect()
}

func (d *networkDriver) connect() error {
	conn, err := net.Dial(d.transport, d.address)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return raiseCause(ErrorAddressFailure, 0, "failed to resolve server address", errors.Wrap(err, d.address))
		}
		return raiseCause(ErrorSocketConnectFailure, errnoOf(err), "failed to connect to server", errors.Wrap(err, d.address))
	}
	d.conn = conn
	d.broken = false
	return nil
}

func (d *networkDriver) write(t *Target, record []byte) (int, error) {
	if d.broken {
		// Leave re-dialing to the dispatch-level reconnect so each entry
		// gets exactly one reconnect attempt.
		return 0, raisef(ErrorSocketSendFailure, "connection to %s is broken", d.address)
	}
	if d.conn == nil {
		if err := d.connect(); err != nil {
			return 0, err
		}
	}

	wire := record
	if !d.datagram {
		switch d.framing {
		case NewlineFraming:
			wire = append(record[:len(record):len(record)], '\n')
		default:
			wire = format.OctetFrame(record)
		}
	}

	n, err := d.conn.Write(wire)
	if err != nil {
		if !d.datagram {
			d.conn.Close()
			d.conn = nil
			d.broken = true
		}
		return n, raiseCause(ErrorSocketSendFailure, errnoOf(err), "failed to send record", errors.Wrap(err, d.address))
	}
	return len(record), nil
}

// reconnect re-establishes a broken TCP connection.  Dispatch calls it at
// most once per entry.  Datagram transports don't reconnect.
func (d *networkDriver) reconnect(t *Target) error {
	if d.datagram {
		return errors.New("datagram transports do not reconnect")
	}
	if d.conn != nil {
		d.conn.Close()
		d.conn = nil
	}
	return d.connect()
}

func (d *networkDriver) close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
