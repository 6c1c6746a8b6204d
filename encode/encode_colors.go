package encode

import (
	"strings"

	"github.com/signadot/nodeedit/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the palette used on terminals.
func NewColors() *Colors {
	sep := color.RGB(255, 0, 196).SprintfFunc()
	palette := map[Colorable]func(string, ...any) string{
		{Type: ir.ObjectType, Attr: FieldColor}: color.RGB(128, 168, 196).SprintfFunc(),
		{Type: ir.ObjectType, Attr: SepColor}:   color.RGB(196, 128, 128).SprintfFunc(),
		{Type: ir.NumberType, Attr: ValueColor}: color.RGB(128, 216, 236).SprintfFunc(),
		{Type: ir.StringType, Attr: ValueColor}: color.RGB(8, 196, 16).SprintfFunc(),
		{Type: ir.NullType, Attr: ValueColor}:   color.RGB(168, 0, 196).SprintfFunc(),
		{Type: ir.BoolType, Attr: ValueColor}:   color.CyanString,
	}
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = escaped(sep)
	}
	for able, f := range palette {
		colors.Map[able] = escaped(f)
	}
	return colors
}

// escaped protects % in s from the Sprintf based colour funcs.
func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(s string, _ ...any) string {
		return f(strings.ReplaceAll(s, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
