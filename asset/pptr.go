package asset

import (
	"fmt"

	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/version"
)

// wideIDs reports whether path ids are 64-bit. Earlier layouts store them
// as int32.
var wideIDs = version.AtLeast(5)

// PPtr is a weak reference to a record: a file index into the owning
// bundle's dependency list (0 is the same file) and a path id within that
// file.
type PPtr struct {
	FileIndex int32
	PathID    int64
}

// ReadPPtr reads a pointer in the layout of r.Version().
func ReadPPtr(r *binary.Reader) (PPtr, error) {
	var p PPtr
	var err error
	if p.FileIndex, err = r.ReadInt32(); err != nil {
		return PPtr{}, err
	}
	if wideIDs(r.Version()) {
		p.PathID, err = r.ReadInt64()
	} else {
		var id int32
		id, err = r.ReadInt32()
		p.PathID = int64(id)
	}
	if err != nil {
		return PPtr{}, err
	}
	return p, nil
}

// Write encodes p in the layout of w.Version(). Narrow layouts truncate
// the path id to 32 bits.
func (p PPtr) Write(w *binary.Writer) {
	w.WriteInt32(p.FileIndex)
	if wideIDs(w.Version()) {
		w.WriteInt64(p.PathID)
	} else {
		w.WriteInt32(int32(p.PathID))
	}
}

// IsNull reports whether p points nowhere.
func (p PPtr) IsNull() bool {
	return p.PathID == 0
}

func (p PPtr) String() string {
	return fmt.Sprintf("PPtr{file: %d, path: %d}", p.FileIndex, p.PathID)
}

// FetchDependency resolves p through l and labels it with the owning
// record type and field. A non-null pointer missing from l is reported on
// the Dependency and logged.
func (p PPtr) FetchDependency(l Lookup, owner, field string) Dependency {
	dep := Dependency{Pointer: p, Owner: owner, Field: field}
	if p.IsNull() || l == nil {
		return dep
	}
	target, ok := l.Find(p)
	if !ok {
		dep.Err = unresolved(dep)
		return dep
	}
	dep.Target = target
	return dep
}
