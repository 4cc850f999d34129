package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so struct
// tags decide the key names; keys keep their declaration order.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	node, err := readNode(dec)
	if err != nil {
		return err
	}

	p := ednPrinter{pretty: pretty}
	p.node(node, 0)
	p.buf.WriteByte('\n')
	_, err = w.Write(p.buf.Bytes())
	return err
}

// ednNode is a JSON value with object keys kept in source order.
type ednNode struct {
	scalar any // nil, bool, string, json.Number
	keys   []string
	vals   []ednNode
	kind   byte // 0 scalar, '{' map, '[' vector
}

func readNode(dec *json.Decoder) (ednNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return ednNode{}, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return ednNode{scalar: tok}, nil
	}
	n := ednNode{kind: byte(d)}
	for dec.More() {
		if n.kind == '{' {
			kt, err := dec.Token()
			if err != nil {
				return ednNode{}, err
			}
			k, ok := kt.(string)
			if !ok {
				return ednNode{}, errors.New("edn: non-string object key")
			}
			n.keys = append(n.keys, k)
		}
		child, err := readNode(dec)
		if err != nil {
			return ednNode{}, err
		}
		n.vals = append(n.vals, child)
	}
	if _, err := dec.Token(); err != nil {
		return ednNode{}, err
	}
	return n, nil
}

type ednPrinter struct {
	buf    bytes.Buffer
	pretty bool
}

func (p *ednPrinter) node(n ednNode, level int) {
	switch n.kind {
	case '{':
		p.coll('{', '}', n, level)
	case '[':
		p.coll('[', ']', n, level)
	default:
		p.scalar(n.scalar)
	}
}

func (p *ednPrinter) coll(open, closing byte, n ednNode, level int) {
	p.buf.WriteByte(open)
	if len(n.vals) == 0 {
		p.buf.WriteByte(closing)
		return
	}
	for i, child := range n.vals {
		switch {
		case p.pretty:
			p.buf.WriteByte('\n')
			p.buf.WriteString(strings.Repeat("  ", level+1))
		case i > 0:
			p.buf.WriteByte(' ')
		}
		if n.kind == '{' {
			p.buf.WriteString(keyword(n.keys[i]))
			p.buf.WriteByte(' ')
		}
		p.node(child, level+1)
	}
	if p.pretty {
		p.buf.WriteByte('\n')
		p.buf.WriteString(strings.Repeat("  ", level))
	}
	p.buf.WriteByte(closing)
}

func (p *ednPrinter) scalar(v any) {
	switch t := v.(type) {
	case nil:
		p.buf.WriteString("nil")
	case bool:
		p.buf.WriteString(strconv.FormatBool(t))
	case string:
		p.buf.WriteString(strconv.Quote(t))
	case json.Number:
		p.buf.WriteString(t.String())
	default:
		p.buf.WriteString(strconv.Quote(fmt.Sprint(t)))
	}
}

// keyword turns a JSON key into an EDN keyword; camelCase becomes kebab-case.
func keyword(s string) string {
	var b strings.Builder
	b.WriteByte(':')
	for i, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
