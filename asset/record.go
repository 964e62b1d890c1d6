package asset

import (
	"iter"

	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// Record is a decoded asset or sub-object.
type Record interface {
	TypeName() string
}

// Decoder reads one record from r. It returns a record only when every
// field was read; on error the partial value is discarded.
type Decoder func(r *binary.Reader) (Record, error)

// Writable records can be re-encoded for the writer's version.
type Writable interface {
	Write(w *binary.Writer) error
}

// Exportable records convert themselves to a document tree.
type Exportable interface {
	ExportDocument(ctx *ExportContext) *document.Node
}

// Dependent records hold references to other records.
type Dependent interface {
	FetchDependencies(l Lookup) iter.Seq[Dependency]
}

// ExportContext carries the versions an export runs against.
type ExportContext struct {
	// Version is the format version the record was decoded from. Defaults
	// for fields absent from that layout are chosen by it.
	Version version.Version

	// ExportVersion is the engine version the document targets. It picks
	// schema revisions. Zero means Version.
	ExportVersion version.Version

	// ExportPointer overrides how references are written. Nil writes
	// {fileID: <path id>}.
	ExportPointer func(p PPtr) *document.Node
}

// NewExportContext exports a record decoded at v for the same version.
func NewExportContext(v version.Version) *ExportContext {
	return &ExportContext{Version: v, ExportVersion: v}
}

// Target returns the export version, falling back to the source version.
func (c *ExportContext) Target() version.Version {
	if c.ExportVersion.IsZero() {
		return c.Version
	}
	return c.ExportVersion
}

// Pointer exports p.
func (c *ExportContext) Pointer(p PPtr) *document.Node {
	if c.ExportPointer != nil {
		return c.ExportPointer(p)
	}
	n := document.NewFlowMapping()
	n.AddInt("fileID", p.PathID)
	return n
}

// Decode runs a decoder over data for version v and rejects trailing bytes
// that no field consumed.
func Decode(dec Decoder, data []byte, v version.Version) (Record, error) {
	r := binary.AcquireReader(data, v)
	defer binary.ReleaseReader(r)
	return DecodeAll(dec, r)
}

// DecodeAll runs dec over r, which must hold exactly one record.
func DecodeAll(dec Decoder, r *binary.Reader) (Record, error) {
	rec, err := dec(r)
	if err != nil {
		return nil, err
	}
	if n := r.Remaining(); n > 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(rec.TypeName()).
			Version(r.Version()).
			Value(n).
			Detail("%d trailing bytes after offset %d", n, r.Position()).
			Build()
	}
	return rec, nil
}

// Encode writes a record for version v.
func Encode(rec Writable, v version.Version) ([]byte, error) {
	w := binary.NewWriter(v)
	if err := rec.Write(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
