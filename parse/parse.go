package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/nodeedit/ir"
)

type parser struct {
	dec  *json.Decoder
	opts *parseOpts
}

// Parse decodes exactly one JSON value from d. Errors wrap ErrParse.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	p := &parser{dec: dec, opts: o}
	node, err := p.value(0)
	if err != nil {
		if errors.Is(err, ErrParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w at offset %d", ErrTrailing, dec.InputOffset())
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func (p *parser) value(depth int) (*ir.Node, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		if depth >= p.opts.maxDepth {
			return nil, fmt.Errorf("%w (max %d)", ErrDepth, p.opts.maxDepth)
		}
		switch x {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", x)
	case json.Number:
		return ir.FromNumber(string(x)), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (p *parser) object(depth int) (*ir.Node, error) {
	res := ir.FromKeyVals(nil)
	index := map[string]int{}
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v", errKey, tok)
		}
		val, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		if i, present := index[key]; present {
			res.Put(i, val)
			continue
		}
		index[key] = len(res.Fields)
		res.Append(key, val)
	}
	if _, err := p.dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) array(depth int) (*ir.Node, error) {
	var vals []*ir.Node
	for p.dec.More() {
		val, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if _, err := p.dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}
