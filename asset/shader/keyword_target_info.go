package shader

import (
	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/document"
)

// KeywordTargetInfo pairs a shader keyword with the platform features it
// requires.
type KeywordTargetInfo struct {
	KeywordName  string
	Requirements uint32
}

var keywordTargetSchema = asset.Schema[KeywordTargetInfo]{
	Name: "KeywordTargetInfo",
	Steps: []asset.Step[KeywordTargetInfo]{
		asset.StringField("keywordName", nil, func(k *KeywordTargetInfo) *string { return &k.KeywordName }),
		asset.Uint32Field("requirements", nil, func(k *KeywordTargetInfo) *uint32 { return &k.Requirements }),
	},
}

// defaultKeywordTargets is what the engine assumes for snippets written
// before keyword requirements were serialized.
var defaultKeywordTargets = []KeywordTargetInfo{
	{"SHADOWS_SOFT", 227},
	{"DIRLIGHTMAP_COMBINED", 227},
	{"DIRLIGHTMAP_SEPARATE", 227},
	{"DYNAMICLIGHTMAP_ON", 227},
	{"SHADOWS_SCREEN", 227},
	{"INSTANCING_ON", 2048},
	{"PROCEDURAL_INSTANCING_ON", 16384},
	{"STEREO_MULTIVIEW_ON", 3819},
	{"STEREO_INSTANCING_ON", 3819},
}

// DefaultKeywordTargets returns a copy of the fallback keyword catalog.
func DefaultKeywordTargets() []KeywordTargetInfo {
	return append([]KeywordTargetInfo(nil), defaultKeywordTargets...)
}

func readKeywordTargetInfo(r *binary.Reader) (KeywordTargetInfo, error) {
	var k KeywordTargetInfo
	err := keywordTargetSchema.Read(r, &k)
	return k, err
}

func writeKeywordTargetInfo(w *binary.Writer, k KeywordTargetInfo) error {
	return keywordTargetSchema.Write(w, &k)
}

// DecodeKeywordTargetInfo is the asset.Decoder for KeywordTargetInfo.
func DecodeKeywordTargetInfo(r *binary.Reader) (asset.Record, error) {
	k, err := readKeywordTargetInfo(r)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (k KeywordTargetInfo) TypeName() string { return keywordTargetSchema.Name }

func (k KeywordTargetInfo) Write(w *binary.Writer) error {
	return writeKeywordTargetInfo(w, k)
}

func (k KeywordTargetInfo) ExportDocument(*asset.ExportContext) *document.Node {
	n := document.NewMapping()
	n.AddString("keywordName", k.KeywordName)
	n.AddUint("requirements", uint64(k.Requirements))
	return n
}

func exportKeywordTargets(ctx *asset.ExportContext, items []KeywordTargetInfo) *document.Node {
	seq := document.NewSequence()
	for _, k := range items {
		seq.Append(k.ExportDocument(ctx))
	}
	return seq
}
