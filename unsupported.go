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

// unsupportedDriver backs target types whose transport doesn't exist on the
// current platform.  Every operation, including close, reports the target
// as unsupported; close still lets the target transition to closed so no
// state is leaked.
type unsupportedDriver struct {
	typ TargetType
}

func (d unsupportedDriver) unsupported() *Error {
	return raisef(ErrorTargetUnsupported, "%s targets are not supported by this build", d.typ)
}

func (d unsupportedDriver) open(*Target) error {
	return d.unsupported()
}

func (d unsupportedDriver) write(*Target, []byte) (int, error) {
	return 0, d.unsupported()
}

func (d unsupportedDriver) close() error {
	return d.unsupported()
}
