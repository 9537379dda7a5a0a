/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a URI could not be decomposed. They are
// reachable with errors.Is through the *ParseError returned by Parse and
// Decompose.
var (
	// ErrEmptyHost is returned when an authority ("//") is present but does
	// not carry a host, e.g. "http:///path" or "http://user@".
	ErrEmptyHost = errors.New("empty host")
	// ErrInvalidPort is returned when the port is not a decimal number in the
	// range 0-65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrUnbalancedBrackets is returned when the host contains a '[' without
	// its closing ']' or the other way around.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets in host")
	// ErrInvalidIPLiteral is returned when an IP literal ("[...]") is followed
	// by something other than a port.
	ErrInvalidIPLiteral = errors.New("invalid IP literal")
)

// ParseError is the error type returned by the parsing functions in this
// package. It contains a descriptive message and wraps the detailed cause.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError wrapping err.
// It returns nil if the input error is nil.
func newParseError(input string, err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{
		Message: fmt.Sprintf("could not parse the requested URI %q: %s", input, err.Error()),
		Err:     err,
	}
}

// kindError gives detailed context about a decomposition failure. kind is one
// of the exported sentinels.
type kindError struct {
	kind    error
	char    byte
	details string
}

// Error formats the sentinel message with the offending character or details.
func (e *kindError) Error() string {
	msg := e.kind.Error()
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

func (e *kindError) Unwrap() error { return e.kind }
