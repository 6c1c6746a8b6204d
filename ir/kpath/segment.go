package kpath

import (
	"strconv"

	"github.com/signadot/nodeedit/encode"
)

// Segment is one step of a Path: an array index when Index is set, an
// object key otherwise.
type Segment struct {
	Index *int
	Key   string
}

func Key(k string) Segment {
	return Segment{Key: k}
}

func Index(i int) Segment {
	return Segment{Index: &i}
}

func (s Segment) IsIndex() bool {
	return s.Index != nil
}

func (s Segment) Equal(o Segment) bool {
	if (s.Index == nil) != (o.Index == nil) {
		return false
	}
	if s.Index != nil {
		return *s.Index == *o.Index
	}
	return s.Key == o.Key
}

// String returns the bracket form of s: [3] or ["key"].
func (s Segment) String() string {
	if s.Index != nil {
		return "[" + strconv.Itoa(*s.Index) + "]"
	}
	return "[" + encode.Quote(s.Key) + "]"
}

func (s Segment) clone() Segment {
	if s.Index == nil {
		return s
	}
	return Index(*s.Index)
}
