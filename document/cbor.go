package document

import (
	"errors"
	"io"
	"reflect"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// encMode writes Core Deterministic CBOR: sorted map keys and smallest
// integer encoding, so the same tree always produces the same bytes.
var encMode cbor.EncMode

// decMode reads maps into map[string]any.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("document: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("document: CBOR decoder initialization failed: " + err.Error())
	}
}

// cborDocument is the CBOR framing of one Document.
type cborDocument struct {
	ClassID  int    `cbor:"class_id"`
	PathID   int64  `cbor:"path_id"`
	Stripped bool   `cbor:"stripped,omitempty"`
	Root     string `cbor:"root"`
	Body     any    `cbor:"body"`
}

// Interface converts the tree to plain Go values: map[string]any,
// []any, int64, uint64, float64 and string. Mapping order is lost.
func (n *Node) Interface() any {
	switch n.kind {
	case ScalarNode:
		switch n.scalarType {
		case TypeInt:
			if v, err := strconv.ParseInt(n.value, 10, 64); err == nil {
				return v
			}
			if v, err := strconv.ParseUint(n.value, 10, 64); err == nil {
				return v
			}
		case TypeFloat:
			if v, err := strconv.ParseFloat(n.value, 64); err == nil {
				return v
			}
		}
		return n.value
	case SequenceNode:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Interface()
		}
		return out
	default:
		out := make(map[string]any, len(n.pairs))
		for _, p := range n.pairs {
			out[p.Key] = p.Value.Interface()
		}
		return out
	}
}

// EncodeCBOR writes docs as a sequence of deterministic CBOR items.
func EncodeCBOR(w io.Writer, docs ...*Document) error {
	enc := encMode.NewEncoder(w)
	for _, doc := range docs {
		body := doc.Body
		if body == nil {
			body = NewMapping()
		}
		if err := enc.Encode(cborDocument{
			ClassID:  doc.ClassID,
			PathID:   doc.PathID,
			Stripped: doc.Stripped,
			Root:     doc.Root,
			Body:     body.Interface(),
		}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeCBOR reads a stream written by EncodeCBOR. Bodies come back as
// plain Go values.
func DecodeCBOR(r io.Reader) ([]map[string]any, error) {
	dec := decMode.NewDecoder(r)
	var out []map[string]any
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, doc)
	}
}
