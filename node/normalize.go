package node

import (
	"bytes"

	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/ir"
)

// Normalize returns the JSON text for a node's rows.
//
// No rows give {}. A single row without key gives its value as plain text.
// Otherwise the keyed, non-container rows form an object, in row order and
// with later duplicates overwriting earlier ones, encoded with 2-space
// indentation.
func Normalize(rows []Row) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && !rows[0].HasKey() {
		return encode.Text(rows[0].Value)
	}
	obj := ir.FromKeyVals(nil)
	for _, row := range rows {
		if row.IsContainer() || !row.HasKey() {
			continue
		}
		v := row.Value
		if v == nil {
			v = ir.Null()
		}
		v = v.Clone()
		if i := obj.FieldIndex(*row.Key); i != -1 {
			obj.Put(i, v)
			continue
		}
		obj.Append(*row.Key, v)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(obj, buf, encode.EncodeIndent(2)); err != nil {
		// only non-finite floats fail to encode, and parsed documents have none
		return "{}"
	}
	return buf.String()
}
