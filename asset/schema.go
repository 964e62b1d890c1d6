package asset

import (
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// AlignMarker stands for an alignment step in Schema.Layout output.
const AlignMarker = "<align>"

type stepKind uint8

const (
	stepField stepKind = iota
	stepAlign
	stepSelect
)

// Step is one entry of a Schema: a field, an alignment point or a choice
// between layouts. Steps are built with Field, FieldIf, Align, AlignIf and
// Select.
type Step[T any] struct {
	kind  stepKind
	name  string
	gate  version.Gate
	read  func(r *binary.Reader, v *T) error
	write func(w *binary.Writer, v *T) error
	cases []Branch[T]
}

// Branch is one alternative of a Select step.
type Branch[T any] struct {
	gate  version.Gate
	steps []Step[T]
}

// Field is an unconditional field.
func Field[T any](name string, read func(*binary.Reader, *T) error, write func(*binary.Writer, *T) error) Step[T] {
	return Step[T]{kind: stepField, name: name, read: read, write: write}
}

// FieldIf is a field present only where gate holds.
func FieldIf[T any](name string, gate version.Gate, read func(*binary.Reader, *T) error, write func(*binary.Writer, *T) error) Step[T] {
	return Step[T]{kind: stepField, name: name, gate: gate, read: read, write: write}
}

// Align pads the stream to the next 4-byte boundary. name labels the
// alignment point in errors, usually after the field it follows.
func Align[T any](name string) Step[T] {
	return Step[T]{kind: stepAlign, name: name}
}

// AlignIf aligns only where gate holds.
func AlignIf[T any](name string, gate version.Gate) Step[T] {
	return Step[T]{kind: stepAlign, name: name, gate: gate}
}

// Select runs the steps of the first branch whose gate holds. A version
// matching no branch is an unsupported layout.
func Select[T any](name string, cases ...Branch[T]) Step[T] {
	return Step[T]{kind: stepSelect, name: name, cases: cases}
}

// Case is a Select branch.
func Case[T any](gate version.Gate, steps ...Step[T]) Branch[T] {
	return Branch[T]{gate: gate, steps: steps}
}

// Otherwise is a Select branch that always matches.
func Otherwise[T any](steps ...Step[T]) Branch[T] {
	return Branch[T]{gate: version.Always, steps: steps}
}

// Schema is the binary layout of a record type across versions.
type Schema[T any] struct {
	// Name is the record type name used in error paths.
	Name string

	// Supported limits the versions the layout is known for. Nil accepts
	// every non-zero version.
	Supported version.Gate

	Steps []Step[T]
}

// Read decodes the fields present at r.Version() into v, in declaration
// order.
func (s *Schema[T]) Read(r *binary.Reader, v *T) error {
	if err := s.check(errors.PhaseDecode, r.Version()); err != nil {
		return err
	}
	return s.readSteps(r, v, s.Steps)
}

func (s *Schema[T]) readSteps(r *binary.Reader, v *T, steps []Step[T]) error {
	ver := r.Version()
	for i := range steps {
		st := &steps[i]
		if !st.gate.Present(ver) {
			continue
		}
		switch st.kind {
		case stepField:
			if err := st.read(r, v); err != nil {
				return s.fail(errors.PhaseDecode, st.name, ver, err)
			}
		case stepAlign:
			if err := r.Align4(); err != nil {
				return s.fail(errors.PhaseDecode, st.name, ver, err)
			}
		case stepSelect:
			branch, err := s.choose(errors.PhaseDecode, st, ver)
			if err != nil {
				return err
			}
			if err := s.readSteps(r, v, branch.steps); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write encodes the fields present at w.Version() from v.
func (s *Schema[T]) Write(w *binary.Writer, v *T) error {
	if err := s.check(errors.PhaseEncode, w.Version()); err != nil {
		return err
	}
	return s.writeSteps(w, v, s.Steps)
}

func (s *Schema[T]) writeSteps(w *binary.Writer, v *T, steps []Step[T]) error {
	ver := w.Version()
	for i := range steps {
		st := &steps[i]
		if !st.gate.Present(ver) {
			continue
		}
		switch st.kind {
		case stepField:
			if err := st.write(w, v); err != nil {
				return s.fail(errors.PhaseEncode, st.name, ver, err)
			}
		case stepAlign:
			w.Align4()
		case stepSelect:
			branch, err := s.choose(errors.PhaseEncode, st, ver)
			if err != nil {
				return err
			}
			if err := s.writeSteps(w, v, branch.steps); err != nil {
				return err
			}
		}
	}
	return nil
}

// Layout lists the field names present at ver in stream order, with
// AlignMarker at every alignment point.
func (s *Schema[T]) Layout(ver version.Version) ([]string, error) {
	if err := s.check(errors.PhaseDecode, ver); err != nil {
		return nil, err
	}
	var out []string
	if err := s.layout(ver, s.Steps, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Schema[T]) layout(ver version.Version, steps []Step[T], out *[]string) error {
	for i := range steps {
		st := &steps[i]
		if !st.gate.Present(ver) {
			continue
		}
		switch st.kind {
		case stepField:
			*out = append(*out, st.name)
		case stepAlign:
			*out = append(*out, AlignMarker)
		case stepSelect:
			branch, err := s.choose(errors.PhaseDecode, st, ver)
			if err != nil {
				return err
			}
			if err := s.layout(ver, branch.steps, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Schema[T]) check(phase errors.Phase, ver version.Version) error {
	if ver.IsZero() || !s.Supported.Present(ver) {
		return errors.UnsupportedVersion(phase, []string{s.Name}, ver)
	}
	return nil
}

func (s *Schema[T]) choose(phase errors.Phase, st *Step[T], ver version.Version) (*Branch[T], error) {
	for i := range st.cases {
		if st.cases[i].gate.Present(ver) {
			return &st.cases[i], nil
		}
	}
	return nil, errors.UnsupportedVersion(phase, []string{s.Name, st.name}, ver)
}

func (s *Schema[T]) fail(phase errors.Phase, field string, ver version.Version, err error) error {
	return errors.WithVersion(errors.WithPath(phase, err, s.Name, field), ver)
}
