// Package catalog wires every record type of this module into a registry.
package catalog

import (
	"sync"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/asset/bundle"
	"github.com/wippyai/assetripper/asset/serialize"
	"github.com/wippyai/assetripper/asset/shader"
)

// Entry is one registered record type.
type Entry struct {
	Name    string
	Decoder asset.Decoder
}

// Entries lists the record types known to this module.
func Entries() []Entry {
	return []Entry{
		{"ShaderSnippet", shader.DecodeShaderSnippet},
		{"KeywordTargetInfo", shader.DecodeKeywordTargetInfo},
		{"Hash128", serialize.DecodeHash128},
		{"RectOffset", serialize.DecodeRectOffset},
		{"AssetInfo", bundle.DecodeAssetInfo},
	}
}

// New returns a fresh registry holding every entry. Callers may register
// further types on it.
func New() *asset.Registry {
	reg := asset.NewRegistry()
	for _, e := range Entries() {
		reg.MustRegister(e.Name, e.Decoder)
	}
	return reg
}

// Default returns a registry shared by the whole process.
var Default = sync.OnceValue(New)
