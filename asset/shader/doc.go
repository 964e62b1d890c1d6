// Package shader decodes compiled shader snippet records.
//
// A ShaderSnippet changed layout many times between engine releases: hashes
// were added, the GLSL flag became a language enum, keyword combinations
// were split into user and builtin variants, and the target moved from the
// head of the record to after the variant arrays before being dropped.
// The layout is a single asset.Schema; Layout lists the fields present for
// a given version.
//
// Exported documents always carry the full key set. Fields missing from the
// source version are filled with the values the engine itself assumes for
// old data.
package shader
