package binary

import (
	"encoding/binary"

	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// Reader is a bounds-checked cursor over an in-memory record.
type Reader struct {
	data    []byte
	pos     int
	origin  int
	version version.Version
}

// NewReader creates a Reader over data for format version v. The origin
// for alignment is the start of data.
func NewReader(data []byte, v version.Version) *Reader {
	return &Reader{data: data, version: v}
}

// NewReaderAt creates a Reader positioned at offset, using offset as the
// alignment origin. Use it for a record embedded in a larger stream.
func NewReaderAt(data []byte, offset int, v version.Version) (*Reader, error) {
	if offset < 0 || offset > len(data) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, offset, 0, len(data))
	}
	return &Reader{data: data, pos: offset, origin: offset, version: v}, nil
}

// Reset rebinds the reader to new data and version.
func (r *Reader) Reset(data []byte, v version.Version) {
	r.data = data
	r.pos = 0
	r.origin = 0
	r.version = v
}

// Version returns the format version being decoded.
func (r *Reader) Version() version.Version {
	return r.version
}

// Position returns the current offset relative to the origin.
func (r *Reader) Position() int {
	return r.pos - r.origin
}

// Len returns the number of bytes between the origin and the end of data.
func (r *Reader) Len() int {
	return len(r.data) - r.origin
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// take returns the next n bytes or an out-of-bounds error.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, r.Position(), n, r.Len())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBytes reads exactly n bytes into a new slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadBool reads a one-byte boolean. Any non-zero byte is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a little-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads a little-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadString reads a 4-byte length followed by that many bytes. The bytes
// are kept as-is so records round-trip exactly.
func (r *Reader) ReadString() (string, error) {
	n, err := r.readCount()
	if err != nil {
		return "", err
	}
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readCount reads a length or element count. A count can never exceed the
// bytes left, since every element occupies at least one byte.
func (r *Reader) readCount() (int, error) {
	start := r.Position()
	n, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(n).
			Detail("negative length %d at offset %d", n, start).
			Build()
	}
	if int(n) > r.Remaining() {
		return 0, errors.OutOfBounds(errors.PhaseDecode, nil, r.Position(), int(n), r.Len())
	}
	return int(n), nil
}

// ReadArray reads a count-prefixed array using elem for each element.
func ReadArray[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.readCount()
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		if out[i], err = elem(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReadStringArray reads a count-prefixed array of strings.
func (r *Reader) ReadStringArray() ([]string, error) {
	return ReadArray(r, (*Reader).ReadString)
}

// ReadStringArrayArray reads a count-prefixed array of string arrays.
func (r *Reader) ReadStringArrayArray() ([][]string, error) {
	return ReadArray(r, (*Reader).ReadStringArray)
}

// ReadInt32Array reads a count-prefixed array of int32.
func (r *Reader) ReadInt32Array() ([]int32, error) {
	return ReadArray(r, (*Reader).ReadInt32)
}

// ReadUint32Array reads a count-prefixed array of uint32.
func (r *Reader) ReadUint32Array() ([]uint32, error) {
	return ReadArray(r, (*Reader).ReadUint32)
}

// Align skips padding up to the next multiple of n relative to the origin.
func (r *Reader) Align(n int) error {
	pad := AlignTo(r.Position(), n) - r.Position()
	_, err := r.take(pad)
	return err
}

// Align4 is Align(4).
func (r *Reader) Align4() error {
	return r.Align(4)
}

// AlignTo rounds offset up to a multiple of align. align must be a power
// of two; zero leaves offset unchanged.
func AlignTo(offset, align int) int {
	if align <= 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
