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

// Package stumplesstest provides network recorders for exercising targets
// against real listeners: a TCP recorder that decodes record framing and
// can kill connections on demand, and datagram recorders for UDP and Unix
// sockets.
package stumplesstest

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"strconv"
	"sync"
	"time"
)

// Framing selects how a TCPRecorder splits its byte stream into records.
type Framing int

const (
	// OctetCounting expects each record as "<length> SP <record>".
	OctetCounting Framing = iota

	// NewlineDelimited expects newline-terminated records.
	NewlineDelimited
)

// TCPRecorder is a TCP listener that decodes and stores every record sent
// to it.  Recorders start unstarted; call Start before connecting and Close
// when finished.  Setting DropAfter makes the recorder hard-close the
// serving connection once that many records have arrived in total, which
// lets tests exercise reconnection paths.
type TCPRecorder struct {
	Framing   Framing
	DropAfter int

	mu       sync.Mutex
	listener net.Listener
	records  [][]byte
	drops    int
	dropped  bool
}

// NewTCPRecorder returns an unstarted recorder using octet-counting
// framing.
func NewTCPRecorder() *TCPRecorder {
	return &TCPRecorder{}
}

// Start begins listening on a random loopback port.
func (r *TCPRecorder) Start() error {
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.listener = listener
	r.mu.Unlock()
	go r.serve(listener)
	return nil
}

// Address returns the listener's address string.  Start must have been
// called first.
func (r *TCPRecorder) Address() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listener.Addr().String()
}

// Records returns a copy of the records received so far.
func (r *TCPRecorder) Records() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make([][]byte, len(r.records))
	copy(records, r.records)
	return records
}

// Drops returns how many connections the recorder has hard-closed.
func (r *TCPRecorder) Drops() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drops
}

// WaitForRecords blocks until at least n records have arrived or the
// timeout elapses, returning the records seen either way.
func (r *TCPRecorder) WaitForRecords(n int, timeout time.Duration) [][]byte {
	deadline := time.Now().Add(timeout)
	for {
		records := r.Records()
		if len(records) >= n || time.Now().After(deadline) {
			return records
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Close stops the listener.  Active connections terminate as their reads
// fail.
func (r *TCPRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listener == nil {
		return nil
	}
	return r.listener.Close()
}

func (r *TCPRecorder) serve(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		go r.handle(conn)
	}
}

func (r *TCPRecorder) handle(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	for {
		var record []byte
		var err error
		if r.Framing == NewlineDelimited {
			record, err = reader.ReadBytes('\n')
			record = bytes.TrimSuffix(record, []byte{'\n'})
		} else {
			record, err = readOctetFrame(reader)
		}
		if err != nil {
			return
		}

		r.mu.Lock()
		r.records = append(r.records, record)
		drop := r.DropAfter > 0 && !r.dropped && len(r.records) >= r.DropAfter
		if drop {
			r.dropped = true
			r.drops++
		}
		r.mu.Unlock()

		if drop {
			// A hard close sends a reset so the sender's next write
			// fails instead of buffering into the void.
			if tcp, ok := conn.(*net.TCPConn); ok {
				tcp.SetLinger(0)
			}
			return
		}
	}
}

// readOctetFrame decodes one "<length> SP <record>" frame.
func readOctetFrame(reader *bufio.Reader) ([]byte, error) {
	header, err := reader.ReadBytes(' ')
	if err != nil {
		return nil, err
	}
	header = bytes.TrimSuffix(header, []byte{' '})
	size, err := strconv.Atoi(string(header))
	if err != nil || size < 0 {
		return nil, errors.New("stumplesstest: malformed octet-counting header")
	}
	record := make([]byte, size)
	if _, err = readFull(reader, record); err != nil {
		return nil, err
	}
	return record, nil
}

func readFull(reader *bufio.Reader, buf []byte) (int, error) {
	read := 0
	for read < len(buf) {
		n, err := reader.Read(buf[read:])
		read += n
		if err != nil {
			return read, err
		}
	}
	return read, nil
}

// PacketRecorder stores every datagram sent to a packet listener.  It backs
// both UDP and Unix datagram recorders.
type PacketRecorder struct {
	mu      sync.Mutex
	conn    net.PacketConn
	records [][]byte
}

// NewUDPRecorder returns a started recorder listening on a random loopback
// UDP port.
func NewUDPRecorder() (*PacketRecorder, error) {
	return newPacketRecorder("udp4", "127.0.0.1:0")
}

// NewUnixgramRecorder returns a started recorder listening on the given
// socket path.
func NewUnixgramRecorder(path string) (*PacketRecorder, error) {
	return newPacketRecorder("unixgram", path)
}

func newPacketRecorder(network, address string) (*PacketRecorder, error) {
	conn, err := net.ListenPacket(network, address)
	if err != nil {
		return nil, err
	}
	r := &PacketRecorder{conn: conn}
	go r.serve()
	return r, nil
}

// Address returns the listener's address string.
func (r *PacketRecorder) Address() string {
	return r.conn.LocalAddr().String()
}

// Records returns a copy of the datagrams received so far.
func (r *PacketRecorder) Records() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make([][]byte, len(r.records))
	copy(records, r.records)
	return records
}

// WaitForRecords blocks until at least n datagrams have arrived or the
// timeout elapses, returning the datagrams seen either way.
func (r *PacketRecorder) WaitForRecords(n int, timeout time.Duration) [][]byte {
	deadline := time.Now().Add(timeout)
	for {
		records := r.Records()
		if len(records) >= n || time.Now().After(deadline) {
			return records
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Close stops the listener.
func (r *PacketRecorder) Close() error {
	return r.conn.Close()
}

func (r *PacketRecorder) serve() {
	buf := make([]byte, 65536)
	for {
		n, _, err := r.conn.ReadFrom(buf)
		if n > 0 {
			record := make([]byte, n)
			copy(record, buf[:n])
			r.mu.Lock()
			r.records = append(r.records, record)
			r.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}
