// Package synerr holds the error taxonomy of the syndication packages.
//
// Only API misuse is reported as an error: malformed documents are
// tolerated field by field and never surface here.
package synerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the class of a syndication error
type Kind int

const (
	// KindPrecondition is a programming error: a nil argument, an
	// invalid format or a target of the wrong type
	KindPrecondition Kind = iota
	// KindFormatMismatch indicates the declared format disagrees with
	// the format detected in the document
	KindFormatMismatch
	// KindUnsupportedVersion indicates no adapter exists for the
	// detected format version
	KindUnsupportedVersion
	// KindExtension indicates a syndication extension failed to load
	KindExtension
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindFormatMismatch:
		return "format-mismatch"
	case KindUnsupportedVersion:
		return "unsupported-version"
	case KindExtension:
		return "extension"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "precondition":
		*k = KindPrecondition
	case "format-mismatch":
		*k = KindFormatMismatch
	case "unsupported-version":
		*k = KindUnsupportedVersion
	case "extension":
		*k = KindExtension
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error represents a syndication error.
type Error struct {
	Kind Kind `json:"kind"`
	// Op names the operation which failed, e.g. "ResourceAdapter.Fill"
	Op string `json:"op,omitempty"`
	// Format is the declared (or the only relevant) format
	Format string `json:"format,omitempty"`
	// Detected is the format detected in the source document
	Detected string `json:"detected,omitempty"`
	// Version is the format version involved
	Version string `json:"version,omitempty"`
	// Namespace is the XML namespace of a failing extension
	Namespace string `json:"namespace,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (e Error) Error() string {
	s := e.Kind.String() + " error"
	if e.Op != "" {
		s += " op:" + e.Op
	}
	if e.Format != "" {
		s += " format:" + e.Format
	}
	if e.Detected != "" {
		s += " detected:" + e.Detected
	}
	if e.Version != "" {
		s += " version:" + e.Version
	}
	if e.Namespace != "" {
		s += " namespace:" + e.Namespace
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// Precondition returns a precondition violation raised by op
func Precondition(op string, opts ...Option) *Error {
	e := &Error{Kind: KindPrecondition, Op: op}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FormatMismatch returns the error raised when the declared format of
// a resource disagrees with the detected one
func FormatMismatch(declared, detected string, opts ...Option) *Error {
	e := &Error{Format: declared, Detected: detected}
	for _, opt := range opts {
		opt(e)
	}
	// kind is fixed for format mismatches
	e.Kind = KindFormatMismatch
	return e
}

// UnsupportedVersion returns the error raised when no adapter handles
// version of format
func UnsupportedVersion(format, version string, opts ...Option) *Error {
	e := &Error{Format: format, Version: version}
	for _, opt := range opts {
		opt(e)
	}
	e.Kind = KindUnsupportedVersion
	return e
}

// ExtensionFailed returns the error describing a failed extension load
func ExtensionFailed(namespace string, opts ...Option) *Error {
	e := &Error{Namespace: namespace}
	for _, opt := range opts {
		opt(e)
	}
	e.Kind = KindExtension
	return e
}

// Is reports whether err, or an error it wraps, is an *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
