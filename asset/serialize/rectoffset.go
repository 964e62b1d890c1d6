package serialize

import (
	"iter"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/document"
)

type rectFields struct {
	left, right, top, bottom int32
}

var rectSchema = asset.Schema[rectFields]{
	Name: "RectOffset",
	Steps: []asset.Step[rectFields]{
		asset.Int32Field("m_Left", nil, func(f *rectFields) *int32 { return &f.left }),
		asset.Int32Field("m_Right", nil, func(f *rectFields) *int32 { return &f.right }),
		asset.Int32Field("m_Top", nil, func(f *rectFields) *int32 { return &f.top }),
		asset.Int32Field("m_Bottom", nil, func(f *rectFields) *int32 { return &f.bottom }),
	},
}

// RectOffset is a set of edge insets.
type RectOffset struct {
	f rectFields
}

// NewRectOffset builds a RectOffset from its edges.
func NewRectOffset(left, right, top, bottom int32) *RectOffset {
	return &RectOffset{f: rectFields{left, right, top, bottom}}
}

// ReadRectOffset decodes a RectOffset.
func ReadRectOffset(r *binary.Reader) (*RectOffset, error) {
	var f rectFields
	if err := rectSchema.Read(r, &f); err != nil {
		return nil, err
	}
	return &RectOffset{f: f}, nil
}

// DecodeRectOffset is the asset.Decoder for RectOffset.
func DecodeRectOffset(r *binary.Reader) (asset.Record, error) {
	return ReadRectOffset(r)
}

func (o *RectOffset) TypeName() string { return rectSchema.Name }

func (o *RectOffset) Left() int32   { return o.f.left }
func (o *RectOffset) Right() int32  { return o.f.right }
func (o *RectOffset) Top() int32    { return o.f.top }
func (o *RectOffset) Bottom() int32 { return o.f.bottom }

func (o *RectOffset) Write(w *binary.Writer) error {
	return rectSchema.Write(w, &o.f)
}

func (o *RectOffset) ExportDocument(*asset.ExportContext) *document.Node {
	n := document.NewMapping()
	n.AddInt("m_Left", int64(o.f.left))
	n.AddInt("m_Right", int64(o.f.right))
	n.AddInt("m_Top", int64(o.f.top))
	n.AddInt("m_Bottom", int64(o.f.bottom))
	return n
}

// FetchDependencies yields nothing; insets hold no references.
func (o *RectOffset) FetchDependencies(asset.Lookup) iter.Seq[asset.Dependency] {
	return asset.None()
}
