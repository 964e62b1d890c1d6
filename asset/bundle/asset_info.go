package bundle

import (
	"iter"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/version"
)

var hasPreload = version.AtLeast(2, 5)

type assetInfoFields struct {
	preloadIndex int32
	preloadSize  int32
	asset        asset.PPtr
}

var assetInfoSchema = asset.Schema[assetInfoFields]{
	Name: "AssetInfo",
	Steps: []asset.Step[assetInfoFields]{
		asset.Int32Field("preloadIndex", hasPreload, func(f *assetInfoFields) *int32 { return &f.preloadIndex }),
		asset.Int32Field("preloadSize", hasPreload, func(f *assetInfoFields) *int32 { return &f.preloadSize }),
		asset.PPtrField("asset", nil, func(f *assetInfoFields) *asset.PPtr { return &f.asset }),
	},
}

// AssetInfo is a bundle table entry: the named asset and the slice of the
// preload table it needs loaded first.
type AssetInfo struct {
	f assetInfoFields
}

// NewAssetInfo builds an entry.
func NewAssetInfo(preloadIndex, preloadSize int32, target asset.PPtr) *AssetInfo {
	return &AssetInfo{f: assetInfoFields{preloadIndex, preloadSize, target}}
}

// ReadAssetInfo decodes an entry in the layout of r.Version().
func ReadAssetInfo(r *binary.Reader) (*AssetInfo, error) {
	var f assetInfoFields
	if err := assetInfoSchema.Read(r, &f); err != nil {
		return nil, err
	}
	return &AssetInfo{f: f}, nil
}

// DecodeAssetInfo is the asset.Decoder for AssetInfo.
func DecodeAssetInfo(r *binary.Reader) (asset.Record, error) {
	return ReadAssetInfo(r)
}

func (a *AssetInfo) TypeName() string { return assetInfoSchema.Name }

func (a *AssetInfo) PreloadIndex() int32 { return a.f.preloadIndex }
func (a *AssetInfo) PreloadSize() int32  { return a.f.preloadSize }
func (a *AssetInfo) Asset() asset.PPtr   { return a.f.asset }

func (a *AssetInfo) Write(w *binary.Writer) error {
	return assetInfoSchema.Write(w, &a.f)
}

func (a *AssetInfo) ExportDocument(ctx *asset.ExportContext) *document.Node {
	n := document.NewMapping()
	n.AddInt("preloadIndex", int64(a.f.preloadIndex))
	n.AddInt("preloadSize", int64(a.f.preloadSize))
	n.Add("asset", ctx.Pointer(a.f.asset))
	return n
}

// FetchDependencies yields the referenced asset.
func (a *AssetInfo) FetchDependencies(l asset.Lookup) iter.Seq[asset.Dependency] {
	return asset.Pointers(l, assetInfoSchema.Name, "asset", a.f.asset)
}
