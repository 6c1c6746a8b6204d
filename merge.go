package nodeedit

import (
	"github.com/signadot/nodeedit/ir"
)

// deepMerge merges src into dst and returns dst. For each field of src, the
// values are merged when both are objects, otherwise the src value wins.
// Fields only in dst keep their place; new fields are appended in src order.
//
// dst and src must not be shared with any caller: both are consumed.
func deepMerge(dst, src *ir.Node) *ir.Node {
	for i, field := range src.Fields {
		sv := src.Values[i]
		j := dst.FieldIndex(field.String)
		if j == -1 {
			dst.Append(field.String, sv)
			continue
		}
		if dv := dst.Values[j]; isPlainObject(dv) && isPlainObject(sv) {
			sv = deepMerge(dv, sv)
		}
		dst.Put(j, sv)
	}
	return dst
}
