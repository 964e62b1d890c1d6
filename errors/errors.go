package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode  Phase = "decode"  // binary to record
	PhaseEncode  Phase = "encode"  // record to binary
	PhaseExport  Phase = "export"  // record to document
	PhaseResolve Phase = "resolve" // dependency resolution
	PhaseConfig  Phase = "config"  // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds         Kind = "out_of_bounds"
	KindUnsupportedVersion  Kind = "unsupported_version"
	KindUnresolvedReference Kind = "unresolved_reference"
	KindInvalidData         Kind = "invalid_data"
	KindOverflow            Kind = "overflow"
	KindNotFound            Kind = "not_found"
	KindRegistration        Kind = "registration"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Version string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Version != "" {
		b.WriteString(" (version ")
		b.WriteString(e.Version)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Version sets the format version the failure occurred at
func (b *Builder) Version(v fmt.Stringer) *Builder {
	b.err.Version = v.String()
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates a read-past-end error
func OutOfBounds(phase Phase, path []string, offset, want, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes at offset %d (length %d)", want, offset, length),
		Value:  offset,
	}
}

// UnsupportedVersion creates an error for a version outside every known layout
func UnsupportedVersion(phase Phase, path []string, v fmt.Stringer) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupportedVersion,
		Path:    path,
		Version: v.String(),
		Detail:  "no layout matches this version",
	}
}

// UnresolvedReference creates an error for a pointer missing from the lookup table
func UnresolvedReference(path []string, fileIndex int32, pathID int64) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnresolvedReference,
		Path:   path,
		Detail: fmt.Sprintf("no record for file %d path %d", fileIndex, pathID),
		Value:  pathID,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Registration creates a registration error
func Registration(name string, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s: %s", name, detail),
	}
}

// WithPath prefixes the path of a structured error. Errors that are not
// *Error are wrapped as invalid data so the path survives.
func WithPath(phase Phase, err error, prefix ...string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		out := *e
		out.Path = append(append([]string(nil), prefix...), e.Path...)
		return &out
	}
	return &Error{
		Phase: phase,
		Kind:  KindInvalidData,
		Path:  append([]string(nil), prefix...),
		Cause: err,
	}
}

// WithVersion stamps a version on a structured error that does not carry one.
func WithVersion(err error, v fmt.Stringer) error {
	var e *Error
	if !errors.As(err, &e) || e.Version != "" {
		return err
	}
	out := *e
	out.Version = v.String()
	return &out
}

// IsOutOfBounds reports whether err is a read past the end of a buffer.
func IsOutOfBounds(err error) bool {
	return isKind(err, KindOutOfBounds)
}

// IsUnsupportedVersion reports whether err names a version with no known layout.
func IsUnsupportedVersion(err error) bool {
	return isKind(err, KindUnsupportedVersion)
}

// IsUnresolved reports whether err is an unresolved reference.
func IsUnresolved(err error) bool {
	return isKind(err, KindUnresolvedReference)
}

func isKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
