package nodeedit

import (
	"errors"
	"testing"

	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/ir/kpath"
	"github.com/signadot/nodeedit/parse"
)

type patchTest struct {
	Doc   string
	Path  string
	Value string
	Res   string
	Error error
}

func TestPatch(t *testing.T) {
	tests := []patchTest{
		{
			Doc:   `{"a":1}`,
			Path:  "$",
			Value: `[1,2]`,
			Res:   `[1,2]`,
		},
		{
			Doc:   `{"x":{"a":1,"b":2}}`,
			Path:  "x",
			Value: `{"b":3}`,
			Res:   `{"x":{"a":1,"b":3}}`,
		},
		{
			Doc:   `{"x":5}`,
			Path:  "x",
			Value: `7`,
			Res:   `{"x":7}`,
		},
		{
			Doc:   `{}`,
			Path:  "a[0]",
			Value: `"x"`,
			Res:   `{"a":["x"]}`,
		},
		{
			Doc:   `{}`,
			Path:  "a.b",
			Value: `1`,
			Res:   `{"a":{"b":1}}`,
		},
		// deep merge recurses into nested objects
		{
			Doc:   `{"x":{"n":{"p":1,"q":2},"m":0}}`,
			Path:  "x",
			Value: `{"n":{"q":3,"r":4}}`,
			Res:   `{"x":{"n":{"p":1,"q":3,"r":4},"m":0}}`,
		},
		// arrays inside a merged object are replaced, not concatenated
		{
			Doc:   `{"x":{"l":[1,2,3],"k":1}}`,
			Path:  "x",
			Value: `{"l":[9]}`,
			Res:   `{"x":{"l":[9],"k":1}}`,
		},
		// object over array and array over object replace outright
		{
			Doc:   `{"x":[1,2]}`,
			Path:  "x",
			Value: `{"a":1}`,
			Res:   `{"x":{"a":1}}`,
		},
		{
			Doc:   `{"x":{"a":1}}`,
			Path:  "x",
			Value: `[1]`,
			Res:   `{"x":[1]}`,
		},
		// scalar over object replaces
		{
			Doc:   `{"x":{"a":1}}`,
			Path:  "x",
			Value: `"s"`,
			Res:   `{"x":"s"}`,
		},
		// new key appended, order kept
		{
			Doc:   `{"b":1,"a":2}`,
			Path:  "c",
			Value: `3`,
			Res:   `{"b":1,"a":2,"c":3}`,
		},
		// index past the end pads with null
		{
			Doc:   `{"l":[0]}`,
			Path:  "l[2]",
			Value: `2`,
			Res:   `{"l":[0,null,2]}`,
		},
		// null intermediates are materialized
		{
			Doc:   `{"a":null}`,
			Path:  "a[1].b",
			Value: `true`,
			Res:   `{"a":[null,{"b":true}]}`,
		},
		{
			Doc:   `null`,
			Path:  "a",
			Value: `1`,
			Res:   `{"a":1}`,
		},
		{
			Doc:   `[{"id":1,"v":"a"},{"id":2,"v":"b"}]`,
			Path:  "[1]",
			Value: `{"v":"c"}`,
			Res:   `[{"id":1,"v":"a"},{"id":2,"v":"c"}]`,
		},
		{
			Doc:   `{"a":{"b":1}}`,
			Path:  "a[0]",
			Value: `1`,
			Error: ErrPathMismatch,
		},
		{
			Doc:   `{"a":[1]}`,
			Path:  "a.b",
			Value: `1`,
			Error: ErrPathMismatch,
		},
		{
			Doc:   `{"a":5}`,
			Path:  "a.b",
			Value: `1`,
			Error: ErrPathMismatch,
		},
	}
	for i, tt := range tests {
		doc := mustParse(t, tt.Doc)
		value := mustParse(t, tt.Value)
		res, err := Patch(doc, kpath.MustParse(tt.Path), value)
		if tt.Error != nil {
			if !errors.Is(err, tt.Error) {
				t.Errorf("test %d: got err %v, want %v", i, err, tt.Error)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got := encode.MustString(res); got != tt.Res {
			t.Errorf("test %d: patch %s at %s\ngot  %s\nwant %s", i, tt.Doc, tt.Path, got, tt.Res)
		}
	}
}

func TestPatchNegativeIndex(t *testing.T) {
	doc := mustParse(t, `{"a":[1]}`)
	_, err := Patch(doc, kpath.Path{kpath.Key("a"), kpath.Index(-1)}, ir.FromInt(1))
	if !errors.Is(err, ErrNegativeIndex) {
		t.Errorf("err = %v, want ErrNegativeIndex", err)
	}
}

func TestPatchEmptyPathReturnsValue(t *testing.T) {
	value := mustParse(t, `{"z":1}`)
	for _, root := range []*ir.Node{nil, ir.Null(), mustParse(t, `{"a":{"b":[1]}}`)} {
		res, err := Patch(root, nil, value)
		if err != nil {
			t.Fatal(err)
		}
		if res != value {
			t.Errorf("empty path did not return value for root %v", root)
		}
	}
}

func TestPatchDoesNotModifyInputs(t *testing.T) {
	const docText = `{"user":{"age":30,"name":"Al","tags":["a"]},"other":{"k":[1,{"z":0}]}}`
	doc := mustParse(t, docText)
	value := mustParse(t, `{"age":31,"tags":["b"],"extra":{"e":1}}`)
	res, err := Patch(doc, kpath.MustParse("user"), value)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(doc); got != docText {
		t.Errorf("root modified: %s", got)
	}
	if got := encode.MustString(value); got != `{"age":31,"tags":["b"],"extra":{"e":1}}` {
		t.Errorf("value modified: %s", got)
	}
	want := `{"user":{"age":31,"name":"Al","tags":["b"],"extra":{"e":1}},"other":{"k":[1,{"z":0}]}}`
	if got := encode.MustString(res); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// no node of the result is shared with either input
	seen := map[*ir.Node]bool{}
	mark := func(n *ir.Node, isPost bool) (bool, error) {
		seen[n] = true
		for _, f := range n.Fields {
			seen[f] = true
		}
		return true, nil
	}
	if err := doc.Visit(mark); err != nil {
		t.Fatal(err)
	}
	if err := value.Visit(mark); err != nil {
		t.Fatal(err)
	}
	err = res.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if seen[n] {
			t.Errorf("result shares node %s", encode.MustString(n))
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPatchLeavesSiblingsUntouched(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":[1,2,{"c":3}],"d":"e"},"f":[{"g":null}],"h":true}`)
	paths := []string{"a.b[2].c", "a.d", "f[0].g", "h", "a.b[5]", "a.new.deep[1]"}
	for _, p := range paths {
		path := kpath.MustParse(p)
		res, err := Patch(doc, path, ir.FromString("changed"))
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		assertSiblingsEqual(t, doc, res, path)
	}
}

// assertSiblingsEqual checks that every value of want not on path is equal
// in got.
func assertSiblingsEqual(t *testing.T, want, got *ir.Node, path kpath.Path) {
	t.Helper()
	if len(path) == 0 || want == nil || got == nil {
		return
	}
	seg := path[0]
	switch want.Type {
	case ir.ObjectType:
		for i, f := range want.Fields {
			g := ir.Get(got, f.String)
			if !seg.IsIndex() && seg.Key == f.String {
				assertSiblingsEqual(t, want.Values[i], g, path[1:])
				continue
			}
			if !ir.Equal(want.Values[i], g) {
				t.Errorf("sibling %q changed on patch of %s", f.String, path)
			}
		}
	case ir.ArrayType:
		for i, v := range want.Values {
			if i >= len(got.Values) {
				t.Errorf("array shrank on patch of %s", path)
				return
			}
			if seg.IsIndex() && *seg.Index == i {
				assertSiblingsEqual(t, v, got.Values[i], path[1:])
				continue
			}
			if !ir.Equal(v, got.Values[i]) {
				t.Errorf("sibling [%d] changed on patch of %s", i, path)
			}
		}
	}
}

func TestPatchIdempotent(t *testing.T) {
	doc := mustParse(t, `{"x":{"a":1,"n":{"p":1}},"y":[1]}`)
	cases := []struct {
		path  string
		value string
	}{
		{"x", `{"a":2,"n":{"q":2}}`},
		{"y[3]", `"s"`},
		{"z.w[0]", `{"k":[1]}`},
	}
	for _, c := range cases {
		path := kpath.MustParse(c.path)
		v := mustParse(t, c.value)
		once, err := Patch(doc, path, v)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Patch(once, path, v)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(once, twice) {
			t.Errorf("%s: patch not idempotent\nonce  %s\ntwice %s", c.path,
				encode.MustString(once), encode.MustString(twice))
		}
	}
}

func TestGet(t *testing.T) {
	doc := mustParse(t, `{"user":{"age":30,"tags":["a"]},"n":null}`)
	tests := []struct {
		path string
		want string
	}{
		{"$", `{"user":{"age":30,"tags":["a"]},"n":null}`},
		{"user.age", `30`},
		{"user.tags[0]", `"a"`},
		{"user.tags[4]", ``},
		{"missing.key", ``},
		{"n.below", ``},
	}
	for _, tt := range tests {
		got, err := Get(doc, kpath.MustParse(tt.path))
		if err != nil {
			t.Fatalf("Get(%s): %v", tt.path, err)
		}
		if got == nil {
			if tt.want != "" {
				t.Errorf("Get(%s) = nil, want %s", tt.path, tt.want)
			}
			continue
		}
		if s := encode.MustString(got); s != tt.want {
			t.Errorf("Get(%s) = %s, want %s", tt.path, s, tt.want)
		}
	}
	if _, err := Get(doc, kpath.MustParse("user[0]")); !errors.Is(err, ErrPathMismatch) {
		t.Errorf("Get(user[0]) err = %v, want ErrPathMismatch", err)
	}
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}
