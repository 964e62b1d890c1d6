// Package assetripper decodes versioned engine asset records and exports
// them as engine text documents.
//
// Every record layout depends on the engine release that wrote it. A field
// may appear, disappear or move between releases, and a single missed
// condition shifts every byte after it. Layouts are therefore declared
// once per record type as an ordered list of version-gated steps, and the
// same declaration drives reading, writing and layout inspection.
//
// # Architecture Overview
//
//	assetripper/         Root package with one-call Decode and Export
//	├── version/         Engine versions and presence gates
//	├── binary/          Little-endian reader and writer with alignment
//	├── asset/           Record protocol, schemas, pointers, dependency walks
//	│   ├── shader/      ShaderSnippet and KeywordTargetInfo
//	│   ├── serialize/   Hash128 and RectOffset
//	│   └── bundle/      AssetInfo
//	├── document/        Document tree and engine text encoder
//	├── catalog/         Registry of every record type
//	├── decode/          Concurrent batch decoding
//	├── config/          YAML configuration for the tools
//	├── errors/          Structured error types
//	└── cmd/assetdump/   Decode one record and print its document
//
// # Quick Start
//
//	v := version.MustParse("5.6.0")
//	rec, err := assetripper.Decode("ShaderSnippet", data, v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := assetripper.Export(rec, v, v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	enc := document.NewEncoder(os.Stdout)
//	enc.Encode(&document.Document{ClassID: 48, PathID: 1, Root: rec.TypeName(), Body: doc})
//	enc.Close()
//
// # Errors
//
// Decoding errors are *errors.Error values carrying the phase, the record
// and field path, and the version being decoded:
//
//	[decode] out_of_bounds at ShaderSnippet.m_BuiltinKeywords (version 5.6.0): need 4 bytes at offset 108 (length 111)
//
// A decode error aborts only the record being read. Unresolved references
// found while walking dependencies never abort the walk; they are reported
// on the yielded asset.Dependency and logged.
package assetripper
