package kpath

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a kinded path.
//
// Examples:
//   - "" or "$" → root
//   - "a.b" → [Key a, Key b]
//   - "a[0]" → [Key a, Index 0]
//   - `$["a"][0]` → [Key a, Index 0]
//   - `"x.y".z` → [Key x.y, Key z]
//
// Returns an error wrapping ErrBadPath if the syntax is invalid.
func Parse(s string) (Path, error) {
	p := &pathParser{src: s}
	if strings.HasPrefix(s, "$") {
		p.i = 1
	}
	res := Path{}
	first := true
	for p.i < len(p.src) {
		c := p.src[p.i]
		switch {
		case c == '[':
			seg, err := p.bracket()
			if err != nil {
				return nil, err
			}
			res = append(res, seg)
		case c == '.':
			p.i++
			key, err := p.key()
			if err != nil {
				return nil, err
			}
			res = append(res, Key(key))
		case first && p.i == 0:
			key, err := p.key()
			if err != nil {
				return nil, err
			}
			res = append(res, Key(key))
		default:
			return nil, p.errorf("unexpected %q", c)
		}
		first = false
	}
	return res, nil
}

// MustParse is Parse which panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

type pathParser struct {
	src string
	i   int
}

func (p *pathParser) errorf(msg string, args ...any) error {
	return fmt.Errorf("%w %q at %d: %s", ErrBadPath, p.src, p.i, fmt.Sprintf(msg, args...))
}

// bracket parses [N] or ["key"] starting at '['.
func (p *pathParser) bracket() (Segment, error) {
	p.i++
	if p.i >= len(p.src) {
		return Segment{}, p.errorf("unterminated [")
	}
	if p.src[p.i] == '"' {
		key, err := p.quoted()
		if err != nil {
			return Segment{}, err
		}
		if p.i >= len(p.src) || p.src[p.i] != ']' {
			return Segment{}, p.errorf("expected ]")
		}
		p.i++
		return Key(key), nil
	}
	end := strings.IndexByte(p.src[p.i:], ']')
	if end == -1 {
		return Segment{}, p.errorf("unterminated [")
	}
	lit := p.src[p.i : p.i+end]
	n, err := strconv.Atoi(lit)
	if err != nil || n < 0 || strings.HasPrefix(lit, "+") {
		return Segment{}, p.errorf("invalid index %q", lit)
	}
	p.i += end + 1
	return Index(n), nil
}

// key parses a bare or quoted key.
func (p *pathParser) key() (string, error) {
	if p.i < len(p.src) && p.src[p.i] == '"' {
		return p.quoted()
	}
	start := p.i
	for p.i < len(p.src) {
		c := p.src[p.i]
		if c == '.' || c == '[' || c == ']' || c == '"' {
			break
		}
		p.i++
	}
	if p.i == start {
		return "", p.errorf("empty key")
	}
	return p.src[start:p.i], nil
}

// quoted parses a JSON string literal starting at '"'.
func (p *pathParser) quoted() (string, error) {
	start := p.i
	p.i++
	for p.i < len(p.src) {
		switch p.src[p.i] {
		case '\\':
			p.i += 2
			continue
		case '"':
			p.i++
			var res string
			if err := json.Unmarshal([]byte(p.src[start:p.i]), &res); err != nil {
				return "", p.errorf("bad quoted key: %v", err)
			}
			return res, nil
		}
		p.i++
	}
	return "", p.errorf("unterminated quoted key")
}
