package node

import (
	"testing"

	"github.com/signadot/nodeedit/ir"
)

func key(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want string
	}{
		{
			name: "nil rows",
			rows: nil,
			want: "{}",
		},
		{
			name: "empty rows",
			rows: []Row{},
			want: "{}",
		},
		{
			name: "single keyless string",
			rows: []Row{{Value: ir.FromString("v"), Type: ir.StringType}},
			want: "v",
		},
		{
			name: "single keyless number",
			rows: []Row{ValueRow(ir.FromFloat(2.5))},
			want: "2.5",
		},
		{
			name: "single keyless null",
			rows: []Row{ValueRow(ir.Null())},
			want: "null",
		},
		{
			name: "single row with empty key is keyless",
			rows: []Row{{Key: key(""), Value: ir.FromInt(1), Type: ir.NumberType}},
			want: "1",
		},
		{
			name: "single keyed row",
			rows: []Row{KeyRow("age", ir.FromInt(30))},
			want: "{\n  \"age\": 30\n}",
		},
		{
			name: "skips container rows",
			rows: []Row{
				KeyRow("x", ir.FromString("a")),
				{Key: key("y"), Value: ir.FromInt(2), Type: ir.ArrayType},
				{Key: key("z"), Value: ir.FromInt(1), Type: ir.ObjectType},
			},
			want: "{\n  \"x\": \"a\"\n}",
		},
		{
			name: "skips keyless rows among several",
			rows: []Row{
				ValueRow(ir.FromString("lost")),
				KeyRow("k", ir.FromBool(true)),
			},
			want: "{\n  \"k\": true\n}",
		},
		{
			name: "row order and last write wins",
			rows: []Row{
				KeyRow("b", ir.FromInt(1)),
				KeyRow("a", ir.FromInt(2)),
				KeyRow("b", ir.FromInt(3)),
			},
			want: "{\n  \"b\": 3,\n  \"a\": 2\n}",
		},
		{
			name: "only container rows",
			rows: []Row{
				{Key: key("y"), Value: ir.FromInt(2), Type: ir.ArrayType},
				{Key: key("z"), Value: ir.FromInt(1), Type: ir.ObjectType},
			},
			want: "{}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.rows); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIsPure(t *testing.T) {
	rows := []Row{
		KeyRow("a", ir.FromKeyVals([]ir.KeyVal{{Key: "n", Val: ir.FromInt(1)}})),
		KeyRow("b", ir.FromString("s")),
	}
	rows[0].Type = ir.StringType
	first := Normalize(rows)
	second := Normalize(rows)
	if first != second {
		t.Errorf("normalize not deterministic: %q vs %q", first, second)
	}
	if rows[0].Value.Parent != nil {
		t.Error("normalize relinked a row value")
	}
}
