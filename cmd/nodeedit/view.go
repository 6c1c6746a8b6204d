package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/graph"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return usagef("view requires a path and a file")
	}
	path, err := parsePathArg(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cfg.MainConfig, cc, args[1], false)
	if err != nil {
		return err
	}
	n := ws.graph.Find(path)
	if n == nil {
		return fmt.Errorf("no node at %s", path)
	}
	ws.sess.Select(n)
	return display(cfg.MainConfig, cc.Out, ws)
}

// display writes the formatted path and the text of the current node.
func display(cfg *MainConfig, w io.Writer, ws *workspace) error {
	text, path := ws.sess.View()
	colors := cfg.colors(w)
	if colors != nil {
		path = colors.Color(ir.ObjectType, encode.FieldColor, path)
	}
	if _, err := fmt.Fprintln(w, path); err != nil {
		return err
	}
	if colors == nil || isValueNode(ws.sess.Node()) {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	obj, err := parse.ParseString(text)
	if err != nil {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	if err := encode.Encode(obj, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func isValueNode(n *graph.Node) bool {
	return n != nil && len(n.Rows) == 1 && !n.Rows[0].HasKey()
}
