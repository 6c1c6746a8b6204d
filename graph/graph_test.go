package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/ir/kpath"
	"github.com/signadot/nodeedit/node"
	"github.com/signadot/nodeedit/parse"
)

type summary struct {
	ID   string
	Path string
	Text string
}

func summarize(nodes []*Node) []summary {
	res := make([]summary, len(nodes))
	for i, n := range nodes {
		res[i] = summary{ID: n.ID, Path: n.Path.String(), Text: node.Normalize(n.Rows)}
	}
	return res
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []summary
	}{
		{
			name: "scalar root",
			doc:  `"hi"`,
			want: []summary{{"1", "$", "hi"}},
		},
		{
			name: "empty object",
			doc:  `{}`,
			want: []summary{{"1", "$", "{}"}},
		},
		{
			name: "empty array",
			doc:  `[]`,
			want: []summary{},
		},
		{
			name: "nested",
			doc:  `{"user":{"name":"Al","age":30,"tags":["a",{"k":1}]},"n":null}`,
			want: []summary{
				{"1", "$", "{\n  \"n\": null\n}"},
				{"2", `$["user"]`, "{\n  \"name\": \"Al\",\n  \"age\": 30\n}"},
				{"3", `$["user"]["tags"][0]`, "a"},
				{"4", `$["user"]["tags"][1]`, "{\n  \"k\": 1\n}"},
			},
		},
		{
			name: "array root with nested arrays",
			doc:  `[1,[true,null]]`,
			want: []summary{
				{"1", "$[0]", "1"},
				{"2", "$[1][0]", "true"},
				{"3", "$[1][1]", "null"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parse.ParseString(tt.doc)
			if err != nil {
				t.Fatal(err)
			}
			got := summarize(Build(doc))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildContainerRows(t *testing.T) {
	doc, err := parse.ParseString(`{"a":[1,2,3],"o":{"x":1,"y":2},"s":"v"}`)
	if err != nil {
		t.Fatal(err)
	}
	nodes := Build(doc)
	if len(nodes) == 0 {
		t.Fatal("no nodes")
	}
	rows := nodes[0].Rows
	type row struct {
		Key   string
		Type  ir.Type
		Value string
	}
	got := make([]row, len(rows))
	for i, r := range rows {
		got[i] = row{Key: *r.Key, Type: r.Type, Value: encode.Text(r.Value)}
	}
	want := []row{
		{"a", ir.ArrayType, "3"},
		{"o", ir.ObjectType, "2"},
		{"s", ir.StringType, "v"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestStore(t *testing.T) {
	doc, err := parse.ParseString(`{"user":{"age":30},"list":[1,2]}`)
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(nil)
	if err := s.Rebuild(doc); err != nil {
		t.Fatal(err)
	}
	if n := len(s.Nodes()); n != 4 {
		t.Fatalf("got %d nodes, want 4", n)
	}
	n := s.Find(kpath.Path{kpath.Key("user")})
	if n == nil {
		t.Fatal("user node not found")
	}
	if s.FindID(n.ID) != n {
		t.Errorf("FindID(%s) did not return the user node", n.ID)
	}
	if s.Find(kpath.Path{kpath.Key("list")}) != nil {
		t.Error("arrays must not have nodes")
	}
	if s.Find(kpath.Path{kpath.Key("list"), kpath.Index(1)}) == nil {
		t.Error("array element node not found")
	}
	s.Select(n)
	if s.Selected() != n {
		t.Error("selection not kept")
	}
	if err := s.Rebuild(doc); err != nil {
		t.Fatal(err)
	}
	if s.Selected() != nil {
		t.Error("rebuild must clear the selection")
	}
}
