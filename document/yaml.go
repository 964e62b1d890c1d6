package document

import (
	"io"

	"gopkg.in/yaml.v3"
)

// ToYAML converts the tree to a yaml.v3 node.
func (n *Node) ToYAML() *yaml.Node {
	switch n.kind {
	case ScalarNode:
		out := &yaml.Node{Kind: yaml.ScalarNode, Value: n.value}
		switch n.scalarType {
		case TypeInt:
			out.Tag = "!!int"
		case TypeFloat:
			out.Tag = "!!float"
		default:
			out.Tag = "!!str"
		}
		return out
	case SequenceNode:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(n.items) == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, item := range n.items {
			out.Content = append(out.Content, item.ToYAML())
		}
		return out
	default:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if n.flow || len(n.pairs) == 0 {
			out.Style = yaml.FlowStyle
		}
		for _, p := range n.pairs {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
				p.Value.ToYAML(),
			)
		}
		return out
	}
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (any, error) {
	return n.ToYAML(), nil
}

// MarshalYAML implements yaml.Marshaler, producing {Root: Body}.
func (d *Document) MarshalYAML() (any, error) {
	body := d.Body
	if body == nil {
		body = NewMapping()
	}
	root := NewMapping()
	root.Add(d.Root, body)
	return root.ToYAML(), nil
}

// EncodePlain writes docs as a plain multi-document YAML stream through
// yaml.v3, without the engine's tag directives.
func EncodePlain(w io.Writer, docs ...*Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return enc.Close()
}
