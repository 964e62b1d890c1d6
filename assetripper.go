package assetripper

import (
	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/catalog"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// Decode reads one record of the named type from data written by engine
// version v. data must hold exactly the record.
func Decode(typeName string, data []byte, v version.Version) (asset.Record, error) {
	dec, ok := catalog.Default().Get(typeName)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDecode, "record type", typeName)
	}
	return asset.Decode(dec, data, v)
}

// Encode writes rec in the layout of version v.
func Encode(rec asset.Record, v version.Version) ([]byte, error) {
	w, ok := rec.(asset.Writable)
	if !ok {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Path(rec.TypeName()).
			Detail("record type does not support writing").
			Build()
	}
	return asset.Encode(w, v)
}

// Export converts a record decoded at v into a document targeting
// exportVersion. A zero exportVersion targets v.
func Export(rec asset.Record, v, exportVersion version.Version) (*document.Node, error) {
	ex, ok := rec.(asset.Exportable)
	if !ok {
		return nil, errors.New(errors.PhaseExport, errors.KindInvalidData).
			Path(rec.TypeName()).
			Detail("record type does not export").
			Build()
	}
	return ex.ExportDocument(&asset.ExportContext{Version: v, ExportVersion: exportVersion}), nil
}

// Dependencies collects the references of recs, resolved through l.
func Dependencies(l asset.Lookup, recs ...asset.Record) []asset.Dependency {
	return asset.Collect(asset.Walk(l, recs...))
}
