package document

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Header lines written once at the start of every engine text file.
const (
	yamlDirective = "%YAML 1.1\n"
	tagDirective  = "%TAG !u! tag:unity3d.com,2011:\n"
)

// Document is one object in an engine text file.
type Document struct {
	ClassID  int
	PathID   int64
	Root     string
	Body     *Node
	Stripped bool
}

// Encoder writes documents in the engine's text dialect.
type Encoder struct {
	w       *bufio.Writer
	started bool
	err     error
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes doc, preceded by the file header on the first call.
func (e *Encoder) Encode(doc *Document) error {
	if e.err != nil {
		return e.err
	}
	if !e.started {
		e.str(yamlDirective)
		e.str(tagDirective)
		e.started = true
	}

	e.str("--- !u!")
	e.str(strconv.Itoa(doc.ClassID))
	e.str(" &")
	e.str(strconv.FormatInt(doc.PathID, 10))
	if doc.Stripped {
		e.str(" stripped")
	}
	e.str("\n")

	body := doc.Body
	if body == nil {
		body = NewMapping()
	}
	e.str(doc.Root)
	e.str(":")
	e.afterKey(body, 0)
	return e.err
}

// Close flushes buffered output.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

func (e *Encoder) str(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

func (e *Encoder) indent(n int) {
	for i := 0; i < n; i++ {
		e.str(" ")
	}
}

// afterKey writes the value following "key:". indent is the key's column.
func (e *Encoder) afterKey(v *Node, indent int) {
	switch {
	case v.kind == ScalarNode:
		e.str(" ")
		e.str(formatScalar(v))
		e.str("\n")
	case v.Len() == 0 || v.flow:
		e.str(" ")
		e.flow(v)
		e.str("\n")
	case v.kind == MappingNode:
		e.str("\n")
		e.mapping(v, indent+2, false)
	default:
		// Block sequences under a key are not indented.
		e.str("\n")
		e.sequence(v, indent, false)
	}
}

// mapping writes block mapping entries at column indent. When inline is set
// the first entry continues the current line after "- ".
func (e *Encoder) mapping(n *Node, indent int, inline bool) {
	for i, p := range n.pairs {
		if i > 0 || !inline {
			e.indent(indent)
		}
		e.str(formatKey(p.Key))
		e.str(":")
		e.afterKey(p.Value, indent)
	}
}

// sequence writes block sequence items at column indent.
func (e *Encoder) sequence(n *Node, indent int, inline bool) {
	for i, item := range n.items {
		if i > 0 || !inline {
			e.indent(indent)
		}
		e.str("-")
		e.item(item, indent)
	}
}

func (e *Encoder) item(v *Node, indent int) {
	switch {
	case v.kind == ScalarNode:
		e.str(" ")
		e.str(formatScalar(v))
		e.str("\n")
	case v.Len() == 0 || v.flow:
		e.str(" ")
		e.flow(v)
		e.str("\n")
	case v.kind == MappingNode:
		e.str(" ")
		e.mapping(v, indent+2, true)
	default:
		e.str(" ")
		e.sequence(v, indent+2, true)
	}
}

// flow writes v inline: {a: 1, b: 2}, [x, y], {} or [].
func (e *Encoder) flow(v *Node) {
	switch v.kind {
	case ScalarNode:
		e.str(formatScalar(v))
	case MappingNode:
		e.str("{")
		for i, p := range v.pairs {
			if i > 0 {
				e.str(", ")
			}
			e.str(formatKey(p.Key))
			e.str(": ")
			e.flow(p.Value)
		}
		e.str("}")
	case SequenceNode:
		e.str("[")
		for i, item := range v.items {
			if i > 0 {
				e.str(", ")
			}
			e.flow(item)
		}
		e.str("]")
	}
}

func formatKey(key string) string {
	return quote(key)
}

func formatScalar(n *Node) string {
	if n.scalarType != TypeString {
		return n.value
	}
	return quote(n.value)
}

// quote returns s as a plain scalar when that reads back unchanged,
// single-quoted when it starts with an indicator, and double-quoted with
// escapes when it holds control characters or invalid UTF-8.
func quote(s string) string {
	if s == "" {
		return ""
	}
	if needsDoubleQuotes(s) {
		return doubleQuote(s)
	}
	if needsSingleQuotes(s) {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
	return s
}

func needsDoubleQuotes(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func needsSingleQuotes(s string) bool {
	if strings.ContainsRune("-?:,[]{}#&*!|>'\"%@`", rune(s[0])) {
		return true
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' || s[len(s)-1] == ':' {
		return true
	}
	return strings.Contains(s, ": ") || strings.Contains(s, " #")
}

func doubleQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			writeHexEscape(&b, s[i])
			i++
			continue
		}
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				writeHexEscape(&b, byte(r))
			} else {
				b.WriteRune(r)
			}
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

func writeHexEscape(b *strings.Builder, c byte) {
	const hex = "0123456789ABCDEF"
	b.WriteString(`\x`)
	b.WriteByte(hex[c>>4])
	b.WriteByte(hex[c&0x0f])
}
