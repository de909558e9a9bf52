package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/bodydump/format"
	"github.com/signadot/bodydump/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	line, col int
	depth     int
	indent    string

	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent == "" || es.format.IsYAML() && strings.ContainsRune(es.indent, '\t') {
		es.indent = defaultIndent(es.format)
	}
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.YAMLFormat:
		err = encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	return writeString(w, "\n")
}

func defaultIndent(f format.Format) string {
	if f.IsYAML() {
		return "  "
	}
	return "\t"
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(es.indent, es.depth)
	if es.col == 0 && es.line == 0 {
		es.col = len(indentString)
		return writeString(w, indentString)
	}
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeText(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, v string) error {
	es.col += len(v)
	return writeString(w, applyColor(es, t, attr, v))
}

func writeField(w io.Writer, f string, es *EncState) error {
	if es.format.IsJSON() || !yamlPlain(f) {
		f = quoteJSON(f)
	}
	if err := writeText(w, es, ir.ObjectType, FieldColor, f); err != nil {
		return err
	}
	return writeText(w, es, ir.ObjectType, SepColor, ":")
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// JSON

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type == ir.ObjectType {
		return encodeJSONObject(node, w, es)
	}
	return encodeLeaf(node, w, es)
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeText(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeText(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if yField.Type != ir.StringType {
			return fmt.Errorf("%w: %s keys unsupported in %s at %s", ErrEncoding, yField.Type, es.format, node.Path())
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := writeText(w, es, ir.ObjectType, SepColor, " "); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeText(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeText(w, es, ir.ObjectType, SepColor, "}")
}

// YAML block style

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ObjectType {
		return encodeLeaf(node, w, es)
	}
	if len(node.Fields) == 0 {
		return writeText(w, es, ir.ObjectType, SepColor, "{}")
	}
	return encodeYAMLObject(node, w, es)
}

func encodeYAMLObject(node *ir.Node, w io.Writer, es *EncState) error {
	for i, yField := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if yField.Type != ir.StringType {
			return fmt.Errorf("%w: %s keys unsupported in %s at %s", ErrEncoding, yField.Type, es.format, node.Path())
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encodeYAMLValue(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeYAMLValue(node *ir.Node, w io.Writer, es *EncState) error {
	if !isBlock(node) {
		if err := writeString(w, " "); err != nil {
			return err
		}
		es.col++
		return encodeYAML(node, w, es)
	}
	es.depth++
	defer func() { es.depth-- }()
	return encodeYAML(node, w, es)
}

func isBlock(node *ir.Node) bool {
	return !node.Type.IsLeaf() && len(node.Values) != 0
}

// Leaves

func encodeLeaf(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.StringType:
		v := node.String
		if es.format.IsJSON() || !yamlPlain(v) {
			v = quoteJSON(v)
		}
		return writeText(w, es, ir.StringType, ValueColor, v)
	case ir.NumberType:
		v, err := numberText(node, es)
		if err != nil {
			return err
		}
		return writeText(w, es, ir.NumberType, ValueColor, v)
	default:
		return fmt.Errorf("%w: cannot encode %s at %s", ErrEncoding, node.Type, node.Path())
	}
}

func numberText(node *ir.Node, es *EncState) (string, error) {
	if node.Float64 == nil || format.Finite(*node.Float64) {
		return node.NumberText(), nil
	}
	f := *node.Float64
	if es.format.IsJSON() {
		return "", fmt.Errorf("%w: cannot encode %v in %s at %s", ErrEncoding, f, es.format, node.Path())
	}
	switch {
	case math.IsNaN(f):
		return ".nan", nil
	case f > 0:
		return ".inf", nil
	default:
		return "-.inf", nil
	}
}

// String quoting helpers

func quoteJSON(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
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
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// yamlPlain reports whether v can be written unquoted in yaml and read
// back as the same string.
func yamlPlain(v string) bool {
	if v == "" || v != strings.TrimSpace(v) {
		return false
	}
	switch strings.ToLower(v) {
	case "~", "null", "true", "false", "yes", "no", "on", "off", "y", "n":
		return false
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return false
	}
	for i, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-', r == '.', r == ' ':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
