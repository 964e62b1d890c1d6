package serialize

import (
	"encoding/hex"
	"strconv"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/version"
)

// Hash128Size is the encoded size of a Hash128.
const Hash128Size = 16

// hexHash selects the hex string export layout.
var hexHash = version.AtLeast(5)

// Hash128 is a 128-bit content hash stored as raw bytes.
type Hash128 [Hash128Size]byte

// ReadHash128 reads 16 bytes.
func ReadHash128(r *binary.Reader) (Hash128, error) {
	var h Hash128
	b, err := r.ReadBytes(Hash128Size)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// DecodeHash128 is the asset.Decoder for a standalone Hash128.
func DecodeHash128(r *binary.Reader) (asset.Record, error) {
	h, err := ReadHash128(r)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (h Hash128) TypeName() string { return "Hash128" }

// Write encodes the raw bytes.
func (h Hash128) Write(w *binary.Writer) error {
	w.WriteBytes(h[:])
	return nil
}

// IsZero reports whether every byte is zero.
func (h Hash128) IsZero() bool {
	return h == Hash128{}
}

// String returns the lowercase hex form.
func (h Hash128) String() string {
	return hex.EncodeToString(h[:])
}

// ExportDocument writes the hex form for 5.0 and later targets and the
// per-byte form before.
func (h Hash128) ExportDocument(ctx *asset.ExportContext) *document.Node {
	n := document.NewMapping()
	if hexHash(ctx.Target()) {
		n.AddSerializedVersion(2)
		n.AddString("Hash", h.String())
		return n
	}
	for i, b := range h {
		n.AddUint("bytes["+strconv.Itoa(i)+"]", uint64(b))
	}
	return n
}

// Hash128Field is a schema step for an embedded Hash128.
func Hash128Field[T any](name string, gate version.Gate, ref func(*T) *Hash128) asset.Step[T] {
	return asset.FieldIf(name, gate,
		func(r *binary.Reader, v *T) (err error) {
			*ref(v), err = ReadHash128(r)
			return err
		},
		func(w *binary.Writer, v *T) error {
			return ref(v).Write(w)
		})
}
