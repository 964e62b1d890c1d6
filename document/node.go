package document

import (
	"fmt"
	"strconv"
)

// Kind identifies the shape of a Node.
type Kind uint8

const (
	ScalarNode Kind = iota + 1
	SequenceNode
	MappingNode
)

func (k Kind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case SequenceNode:
		return "sequence"
	case MappingNode:
		return "mapping"
	}
	return "unknown"
}

// ScalarType records what a scalar's text represents.
type ScalarType uint8

const (
	TypeString ScalarType = iota
	TypeInt
	TypeFloat
)

// Pair is one mapping entry.
type Pair struct {
	Key   string
	Value *Node
}

// Node is a document tree node.
type Node struct {
	kind       Kind
	scalarType ScalarType
	value      string
	items      []*Node
	pairs      []Pair
	flow       bool
}

// NewMapping creates an empty block mapping.
func NewMapping() *Node {
	return &Node{kind: MappingNode}
}

// NewFlowMapping creates an empty mapping written inline as {k: v}.
func NewFlowMapping() *Node {
	return &Node{kind: MappingNode, flow: true}
}

// NewSequence creates a sequence holding items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: SequenceNode, items: items}
}

// String creates a string scalar.
func String(s string) *Node {
	return &Node{kind: ScalarNode, scalarType: TypeString, value: s}
}

// Int creates an integer scalar.
func Int(v int64) *Node {
	return &Node{kind: ScalarNode, scalarType: TypeInt, value: strconv.FormatInt(v, 10)}
}

// Uint creates an unsigned integer scalar.
func Uint(v uint64) *Node {
	return &Node{kind: ScalarNode, scalarType: TypeInt, value: strconv.FormatUint(v, 10)}
}

// Float creates a floating point scalar using the shortest exact form.
func Float(v float64) *Node {
	return &Node{kind: ScalarNode, scalarType: TypeFloat, value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Bool creates the engine's boolean scalar, 0 or 1.
func Bool(b bool) *Node {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Strings creates a sequence of string scalars.
func Strings(items []string) *Node {
	seq := &Node{kind: SequenceNode, items: make([]*Node, len(items))}
	for i, s := range items {
		seq.items[i] = String(s)
	}
	return seq
}

// StringArrayArray creates a sequence of string sequences.
func StringArrayArray(items [][]string) *Node {
	seq := &Node{kind: SequenceNode, items: make([]*Node, len(items))}
	for i, inner := range items {
		seq.items[i] = Strings(inner)
	}
	return seq
}

// Kind returns the node's shape.
func (n *Node) Kind() Kind {
	return n.kind
}

// ScalarType returns what a scalar's text represents.
func (n *Node) ScalarType() ScalarType {
	return n.scalarType
}

// Value returns a scalar's text.
func (n *Node) Value() string {
	return n.value
}

// IsFlow reports whether a mapping is written inline.
func (n *Node) IsFlow() bool {
	return n.flow
}

// Items returns a sequence's elements.
func (n *Node) Items() []*Node {
	return n.items
}

// Pairs returns a mapping's entries in insertion order.
func (n *Node) Pairs() []Pair {
	return n.pairs
}

// Len returns the number of items or pairs.
func (n *Node) Len() int {
	switch n.kind {
	case SequenceNode:
		return len(n.items)
	case MappingNode:
		return len(n.pairs)
	}
	return 0
}

// Keys returns a mapping's keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.pairs))
	for i, p := range n.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (*Node, bool) {
	for _, p := range n.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Add appends a mapping entry. Adding to a non-mapping or repeating a key
// is a programming error and panics.
func (n *Node) Add(key string, v *Node) {
	if n.kind != MappingNode {
		panic(fmt.Sprintf("document: Add on %s node", n.kind))
	}
	if _, dup := n.Get(key); dup {
		panic(fmt.Sprintf("document: duplicate key %q", key))
	}
	n.pairs = append(n.pairs, Pair{Key: key, Value: v})
}

// AddString appends a string entry.
func (n *Node) AddString(key, v string) {
	n.Add(key, String(v))
}

// AddInt appends an integer entry.
func (n *Node) AddInt(key string, v int64) {
	n.Add(key, Int(v))
}

// AddUint appends an unsigned integer entry.
func (n *Node) AddUint(key string, v uint64) {
	n.Add(key, Uint(v))
}

// AddBool appends a 0/1 entry.
func (n *Node) AddBool(key string, v bool) {
	n.Add(key, Bool(v))
}

// SerializedVersionKey is the key carrying a document's schema revision.
const SerializedVersionKey = "serializedVersion"

// AddSerializedVersion records the schema revision. The engine omits
// revision 1, so only revisions above it are written.
func (n *Node) AddSerializedVersion(revision int) {
	if revision > 1 {
		n.AddInt(SerializedVersionKey, int64(revision))
	}
}

// Append adds an element to a sequence.
func (n *Node) Append(item *Node) {
	if n.kind != SequenceNode {
		panic(fmt.Sprintf("document: Append on %s node", n.kind))
	}
	n.items = append(n.items, item)
}
