package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/nodeedit/ir"
)

type EncState struct {
	indent int
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		es.wire = true
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(node, buf, es, 0); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Text renders node as plain text: strings without quotes, other scalars as
// in JSON and containers as compact JSON.
func Text(node *ir.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == ir.StringType {
		return node.String
	}
	return MustString(node)
}

func encode(node *ir.Node, buf *bytes.Buffer, es *EncState, level int) error {
	if node == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			buf.WriteString(es.color(ir.ObjectType, SepColor, "{}"))
			return nil
		}
		buf.WriteString(es.color(ir.ObjectType, SepColor, "{"))
		for i, field := range node.Fields {
			if i > 0 {
				buf.WriteString(es.color(ir.ObjectType, SepColor, ","))
			}
			es.newline(buf, level+1)
			buf.WriteString(es.color(ir.ObjectType, FieldColor, Quote(field.String)))
			buf.WriteString(es.color(ir.ObjectType, SepColor, ":"))
			if !es.wire {
				buf.WriteByte(' ')
			}
			if err := encode(node.Values[i], buf, es, level+1); err != nil {
				return err
			}
		}
		es.newline(buf, level)
		buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
		return nil

	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString(es.color(ir.ArrayType, SepColor, "[]"))
			return nil
		}
		buf.WriteString(es.color(ir.ArrayType, SepColor, "["))
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteString(es.color(ir.ArrayType, SepColor, ","))
			}
			es.newline(buf, level+1)
			if err := encode(v, buf, es, level+1); err != nil {
				return err
			}
		}
		es.newline(buf, level)
		buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
		return nil

	case ir.StringType:
		buf.WriteString(es.color(ir.StringType, ValueColor, Quote(node.String)))
	case ir.NumberType:
		s, err := formatNumber(node)
		if err != nil {
			return err
		}
		buf.WriteString(es.color(ir.NumberType, ValueColor, s))
	case ir.BoolType:
		buf.WriteString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("cannot encode node of type %s", node.Type)
	}
	return nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) newline(buf *bytes.Buffer, level int) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", level*es.indent))
}

func formatNumber(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 != nil {
		return FormatFloat(*node.Float64)
	}
	if node.Number == "" {
		return "", fmt.Errorf("number node without value")
	}
	return node.Number, nil
}

// FormatFloat formats f the way JavaScript's Number.prototype.toString does
// for finite values.
func FormatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("unsupported float value %v", f)
	}
	abs := math.Abs(f)
	verb := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		verb = 'e'
	}
	b := strconv.AppendFloat(nil, f, verb, -1, 64)
	if verb == 'e' {
		// e-07 => e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b), nil
}

const hex = "0123456789abcdef"

// Quote returns s as a JSON string literal. Only quotes, backslashes and
// control characters are escaped.
func Quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"', '\\':
				buf = append(buf, '\\', c)
			case '\b':
				buf = append(buf, '\\', 'b')
			case '\f':
				buf = append(buf, '\\', 'f')
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\r':
				buf = append(buf, '\\', 'r')
			case '\t':
				buf = append(buf, '\\', 't')
			default:
				if c < 0x20 {
					buf = append(buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
				} else {
					buf = append(buf, c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf = append(buf, "\ufffd"...)
			i++
			continue
		}
		buf = append(buf, s[i:i+size]...)
		i += size
	}
	buf = append(buf, '"')
	return string(buf)
}
