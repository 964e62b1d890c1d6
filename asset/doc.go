// Package asset defines the record protocol shared by every decoded asset
// type: how a record is read and written against a versioned byte stream,
// how it exports to a document, and how it reports references to other
// records.
//
// # Records
//
// A record is obtained only through a Decoder, which fills a private value
// and hands it out once the whole read succeeded. Records expose read-only
// accessors and are never mutated afterwards, so a decoded record may be
// exported and walked from many goroutines without locking.
//
// Capabilities are separate interfaces, implemented per record type:
//
//	Record      TypeName
//	Writable    Write(*binary.Writer) error
//	Exportable  ExportDocument(*ExportContext) *document.Node
//	Dependent   FetchDependencies(Lookup) iter.Seq[Dependency]
//
// # Schemas
//
// A record's binary layout is a Schema: an ordered list of steps, each
// optionally guarded by a version.Gate. The order of the list is the byte
// order of the stream; gates decide per version which steps run.
//
//	var layout = asset.Schema[fields]{
//	    Name: "AssetInfo",
//	    Steps: []asset.Step[fields]{
//	        asset.FieldIf("preloadIndex", version.AtLeast(2, 5), readPreloadIndex, writePreloadIndex),
//	        asset.Field("asset", readAsset, writeAsset),
//	    },
//	}
//
// A failed step aborts the read and reports the schema name, the field in
// progress and the version being decoded.
//
// # References
//
// PPtr is a weak (file index, path id) reference. Resolution goes through
// a Lookup, normally a Table built once per bundle. Dependency walks are
// lazy iter.Seq values; an unresolved pointer is reported on the yielded
// Dependency and logged, and the walk continues.
package asset
