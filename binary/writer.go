package binary

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// Writer provides buffered writing in the record wire format.
type Writer struct {
	buf     *bytes.Buffer
	version version.Version
}

// NewWriter creates a Writer producing bytes for format version v.
func NewWriter(v version.Version) *Writer {
	return &Writer{buf: &bytes.Buffer{}, version: v}
}

// Version returns the format version being encoded.
func (w *Writer) Version() version.Version {
	return w.version
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice without a length prefix.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteBool writes a one-byte boolean.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteInt32 writes a little-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteUint64 writes a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteInt64 writes a little-endian int64.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// writeCount writes a length or element count.
func (w *Writer) writeCount(n int) error {
	if n > math.MaxInt32 {
		return errors.Overflow(errors.PhaseEncode, nil, n, "int32")
	}
	w.WriteInt32(int32(n))
	return nil
}

// WriteString writes a 4-byte length followed by the string bytes.
func (w *Writer) WriteString(s string) error {
	if err := w.writeCount(len(s)); err != nil {
		return err
	}
	w.buf.WriteString(s)
	return nil
}

// WriteArray writes a count-prefixed array using elem for each element.
func WriteArray[T any](w *Writer, items []T, elem func(*Writer, T) error) error {
	if err := w.writeCount(len(items)); err != nil {
		return err
	}
	for _, item := range items {
		if err := elem(w, item); err != nil {
			return err
		}
	}
	return nil
}

// WriteStringArray writes a count-prefixed array of strings.
func (w *Writer) WriteStringArray(items []string) error {
	return WriteArray(w, items, (*Writer).WriteString)
}

// WriteStringArrayArray writes a count-prefixed array of string arrays.
func (w *Writer) WriteStringArrayArray(items [][]string) error {
	return WriteArray(w, items, (*Writer).WriteStringArray)
}

// WriteInt32Array writes a count-prefixed array of int32.
func (w *Writer) WriteInt32Array(items []int32) error {
	return WriteArray(w, items, func(w *Writer, v int32) error {
		w.WriteInt32(v)
		return nil
	})
}

// WriteUint32Array writes a count-prefixed array of uint32.
func (w *Writer) WriteUint32Array(items []uint32) error {
	return WriteArray(w, items, func(w *Writer, v uint32) error {
		w.WriteUint32(v)
		return nil
	})
}

// Align writes zero bytes up to the next multiple of n.
func (w *Writer) Align(n int) {
	for pad := AlignTo(w.Len(), n) - w.Len(); pad > 0; pad-- {
		w.buf.WriteByte(0)
	}
}

// Align4 is Align(4).
func (w *Writer) Align4() {
	w.Align(4)
}
