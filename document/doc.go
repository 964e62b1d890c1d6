// Package document holds the ordered key/value tree that records export to,
// and the encoders that turn it into text.
//
// A Node is a scalar, a sequence or a mapping. Mappings keep insertion
// order, since the engine's project files list fields in declaration order
// and tools diff them textually:
//
//	m := document.NewMapping()
//	m.AddSerializedVersion(2)
//	m.AddString("m_Code", code)
//	m.AddBool("m_FromOther", fromOther) // written as 0 or 1
//	m.Add("m_VariantsUser0", document.StringArrayArray(variants))
//
// Encoder writes the engine's own dialect: a %YAML 1.1 header with the !u!
// tag directive, one "--- !u!<classID> &<pathID>" document per object,
// two-space indentation and indentless block sequences. The tree also
// converts to a gopkg.in/yaml.v3 node for plain YAML output.
package document
