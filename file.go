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
	"syscall"

	"github.com/pkg/errors"
)

// File represents configuration for file-based targets.  The default
// settings create or append to the file at the given path.  Each record is
// written followed by a newline.
type File struct {
	// Required.  The path of the file to log to.
	Name string

	// Optional.
	Flags int         // Default: os.O_CREATE | os.O_WRONLY | os.O_APPEND
	Perms os.FileMode // Default: 0644
}

// New returns a paused target based on the File configuration.
func (f File) New() (*Target, error) {
	if f.Name == "" {
		return nil, raise(ErrorArgumentEmpty, "file path is empty")
	}
	if f.Flags == 0 {
		f.Flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	if f.Perms == 0 {
		f.Perms = 0644
	}
	clearError()
	return newTarget(FileTargetType, f.Name, &fileDriver{path: f.Name, flags: f.Flags, perms: f.Perms}), nil
}

// Open returns an open target based on the File configuration.
func (f File) Open() (*Target, error) {
	target, err := f.New()
	if err != nil {
		return nil, err
	}
	return target.Open()
}

type fileDriver struct {
	path  string
	flags int
	perms os.FileMode
	file  *os.File
}

func (d *fileDriver) open(t *Target) error {
	file, err := os.OpenFile(d.path, d.flags, d.perms)
	if err != nil {
		return raiseCause(ErrorFileWriteFailure, errnoOf(err), "failed to open log file", errors.Wrap(err, d.path))
	}
	d.file = file
	return nil
}

func (d *fileDriver) write(t *Target, record []byte) (int, error) {
	line := append(record[:len(record):len(record)], '\n')
	written := 0
	for written < len(line) {
		n, err := d.file.Write(line[written:])
		written += n
		if err != nil {
			if errnoOf(err) == int(syscall.EINTR) {
				continue
			}
			return written, raiseCause(ErrorFileWriteFailure, errnoOf(err), "failed to write to log file", errors.Wrap(err, d.path))
		}
	}
	return len(record), nil
}

func (d *fileDriver) close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// errnoOf digs the errno out of an OS-level error chain, or 0 if there is
// none.
func errnoOf(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
