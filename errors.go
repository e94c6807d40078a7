package spellkit

import (
	"errors"
	"fmt"
)

// Kind classifies a LoadError or a query-time error from the engine.
type Kind int

const (
	// KindNotFound indicates a required source (dictionary or protected
	// terms file) could not be located.
	KindNotFound Kind = iota

	// KindParse indicates a source was found but could not be parsed into
	// the shape Load expects.
	KindParse

	// KindInvalidArg indicates a configuration value was out of range,
	// for example an edit_distance outside {1, 2}.
	KindInvalidArg

	// KindInvalidPattern indicates a protected-pattern regular expression
	// failed to compile.
	KindInvalidPattern

	// KindSourceUnavailable indicates the underlying I/O for a source
	// failed for a reason other than "not found" (permissions, a closed
	// reader, etc).
	KindSourceUnavailable

	// KindNotLoaded indicates a query operation was attempted before any
	// successful Load.
	KindNotLoaded
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindParse:
		return "Parse"
	case KindInvalidArg:
		return "InvalidArg"
	case KindInvalidPattern:
		return "InvalidPattern"
	case KindSourceUnavailable:
		return "SourceUnavailable"
	case KindNotLoaded:
		return "NotLoaded"
	default:
		return "Unknown"
	}
}

// LoadError is returned by Load when a dictionary, protected-terms source, or
// configuration value is rejected. Source and Diagnostic are populated for
// KindInvalidPattern so callers can report exactly which pattern failed and
// why.
type LoadError struct {
	Kind       Kind
	Source     string
	Diagnostic string
	Cause      error
}

func (e *LoadError) Error() string {
	switch {
	case e.Source != "" && e.Diagnostic != "":
		return fmt.Sprintf("spellkit: %s: %s: %s", e.Kind, e.Source, e.Diagnostic)
	case e.Source != "":
		return fmt.Sprintf("spellkit: %s: %s", e.Kind, e.Source)
	case e.Cause != nil:
		return fmt.Sprintf("spellkit: %s: %v", e.Kind, e.Cause)
	default:
		return fmt.Sprintf("spellkit: %s", e.Kind)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is(err, spellkit.ErrNotLoaded) style checks against a
// LoadError's Kind.
func (e *LoadError) Is(target error) bool {
	var other *LoadError
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// ErrNotLoaded is the *LoadError (Kind KindNotLoaded) returned by query
// operations invoked before a successful Load.
var ErrNotLoaded = &LoadError{Kind: KindNotLoaded}

func newLoadError(kind Kind, source string, cause error) *LoadError {
	return &LoadError{Kind: kind, Source: source, Cause: cause}
}

func newInvalidPatternError(source, diagnostic string, cause error) *LoadError {
	return &LoadError{Kind: KindInvalidPattern, Source: source, Diagnostic: diagnostic, Cause: cause}
}
