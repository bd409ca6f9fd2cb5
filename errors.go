/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import "fmt"

// ErrorKind classifies the domain errors EncodeText, EncodeBinary, and
// EncodeSegments can return. Internal invariant violations are never
// reported this way; they panic instead.
type ErrorKind int

const (
	// InvalidCharacter names a character outside a mode's alphabet. No
	// function in this package returns it: MakeNumeric and MakeAlphanumeric
	// panic on such input instead of returning an error.
	InvalidCharacter ErrorKind = iota
	// InvalidArgument means a caller-supplied parameter was out of range:
	// a bad version window, an out-of-range mask, or an ECI value outside
	// [0, 1000000).
	InvalidArgument
	// DataTooLong means no version in the allowed range has enough
	// capacity for the requested segments at the requested error
	// correction level.
	DataTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case InvalidArgument:
		return "invalid argument"
	case DataTooLong:
		return "data too long"
	default:
		return "unknown error"
	}
}

// QRError is the single error type returned by this package's public API.
type QRError struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *QRError) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *QRError) Unwrap() error {
	return e.err
}

func newError(kind ErrorKind, format string, args ...any) *QRError {
	return &QRError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...any) *QRError {
	return &QRError{Kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}
