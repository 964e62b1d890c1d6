package asset

import (
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/version"
)

// Typed field helpers. Each binds a step to a field of T through ref, so
// read and write can never drift apart. A nil gate means always present.

// StringField is a length-prefixed string.
func StringField[T any](name string, gate version.Gate, ref func(*T) *string) Step[T] {
	return FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = r.ReadString()
			return err
		},
		func(w *binary.Writer, v *T) error {
			return w.WriteString(*ref(v))
		})
}

// Int32Field is a little-endian int32.
func Int32Field[T any](name string, gate version.Gate, ref func(*T) *int32) Step[T] {
	return FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = r.ReadInt32()
			return err
		},
		func(w *binary.Writer, v *T) error {
			w.WriteInt32(*ref(v))
			return nil
		})
}

// Uint32Field is a little-endian uint32.
func Uint32Field[T any](name string, gate version.Gate, ref func(*T) *uint32) Step[T] {
	return FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = r.ReadUint32()
			return err
		},
		func(w *binary.Writer, v *T) error {
			w.WriteUint32(*ref(v))
			return nil
		})
}

// BoolField is a one-byte boolean. It does not align.
func BoolField[T any](name string, gate version.Gate, ref func(*T) *bool) Step[T] {
	return FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = r.ReadBool()
			return err
		},
		func(w *binary.Writer, v *T) error {
			w.WriteBool(*ref(v))
			return nil
		})
}

// StringArrayArrayField is an array of string arrays.
func StringArrayArrayField[T any](name string, gate version.Gate, ref func(*T) *[][]string) Step[T] {
	return FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = r.ReadStringArrayArray()
			return err
		},
		func(w *binary.Writer, v *T) error {
			return w.WriteStringArrayArray(*ref(v))
		})
}

// PPtrField is a reference handle.
func PPtrField[T any](name string, gate version.Gate, ref func(*T) *PPtr) Step[T] {
	return FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = ReadPPtr(r)
			return err
		},
		func(w *binary.Writer, v *T) error {
			ref(v).Write(w)
			return nil
		})
}
