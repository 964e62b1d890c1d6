package asset

import (
	"iter"

	"go.uber.org/zap"

	"github.com/wippyai/assetripper/errors"
)

// Dependency is one outbound reference found by a walk.
type Dependency struct {
	Pointer PPtr

	// Owner and Field name where the reference sits, for diagnostics.
	Owner string
	Field string

	// Target is the resolved record, nil for null or unresolved pointers.
	Target Record

	// Err is set when the pointer has no entry in the lookup.
	Err error
}

// Path returns "Owner.Field".
func (d Dependency) Path() string {
	return d.Owner + "." + d.Field
}

// Resolved reports whether the dependency points at a known record.
func (d Dependency) Resolved() bool {
	return d.Target != nil
}

func unresolved(d Dependency) error {
	err := errors.UnresolvedReference([]string{d.Owner, d.Field}, d.Pointer.FileIndex, d.Pointer.PathID)
	Logger().Warn("unresolved reference",
		zap.String("path", d.Path()),
		zap.Int32("file_index", d.Pointer.FileIndex),
		zap.Int64("path_id", d.Pointer.PathID),
	)
	return err
}

// None is the walk of a record without references.
func None() iter.Seq[Dependency] {
	return func(func(Dependency) bool) {}
}

// Pointers yields the dependency of each pointer in order, all labelled
// with the same owner and field.
func Pointers(l Lookup, owner, field string, ptrs ...PPtr) iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, p := range ptrs {
			if !yield(p.FetchDependency(l, owner, field)) {
				return
			}
		}
	}
}

// Concat yields every sequence in turn.
func Concat(seqs ...iter.Seq[Dependency]) iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, seq := range seqs {
			for d := range seq {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Walk yields the dependencies of every Dependent record, depth first in
// record order. Records without references contribute nothing.
func Walk(l Lookup, records ...Record) iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, rec := range records {
			dep, ok := rec.(Dependent)
			if !ok {
				continue
			}
			for d := range dep.FetchDependencies(l) {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Dependency]) []Dependency {
	var out []Dependency
	for d := range seq {
		out = append(out, d)
	}
	return out
}
