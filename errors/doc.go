// Package errors provides structured error types for the asset codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path being processed, the format version, and
// the cause chain, so a failed decode points at the exact layout mismatch.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("ShaderSnippet", "m_KeywordTargetInfo").
//		Version(v).
//		Detail("negative array length").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseDecode, path, offset, 4, len(data))
//	err := errors.UnsupportedVersion(errors.PhaseDecode, path, v)
//
// Propagation policy: decode and encode errors abort the enclosing record only.
// Unresolved references are reported per dependency and never abort a walk.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
