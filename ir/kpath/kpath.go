package kpath

import (
	"strings"
)

// Path locates a value relative to the root of a document. The empty path
// denotes the root.
type Path []Segment

// Format renders p in bracket notation, $ followed by its segments.
func Format(p Path) string {
	return p.String()
}

func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Equal reports whether p and o have the same segments, kind included.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Append returns a new path with segs added to a copy of p.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	for _, s := range p {
		res = append(res, s.clone())
	}
	for _, s := range segs {
		res = append(res, s.clone())
	}
	return res
}
