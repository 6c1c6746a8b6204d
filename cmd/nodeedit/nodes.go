package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/graph"
	"github.com/signadot/nodeedit/ir"
)

func nodes(cfg *NodesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Nodes.Parse(cc, args)
	if err != nil {
		cfg.Nodes.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return usagef("nodes requires one file argument")
	}
	ws, err := openWorkspace(cfg.MainConfig, cc, args[0], false)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	for _, n := range ws.graph.Nodes() {
		path := n.Path.String()
		if colors != nil {
			path = colors.Color(ir.ObjectType, encode.FieldColor, path)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\t%s\t%s\n", n.ID, path, summary(n)); err != nil {
			return err
		}
	}
	return nil
}

// summary lists the keys of n, or its value if it has no key.
func summary(n *graph.Node) string {
	if len(n.Rows) == 1 && !n.Rows[0].HasKey() {
		return encode.MustString(n.Rows[0].Value)
	}
	keys := make([]string, 0, len(n.Rows))
	for _, r := range n.Rows {
		if !r.HasKey() {
			continue
		}
		k := *r.Key
		if r.IsContainer() {
			k += "(" + encode.Text(r.Value) + ")"
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, ",")
}
