package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return usagef("edit requires a path and a file")
	}
	if args[1] == "-" {
		return usagef("edit cannot read the document from stdin")
	}
	path, err := parsePathArg(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cfg.MainConfig, cc, args[1], true)
	if err != nil {
		return err
	}
	ws.selectPath(path)
	if err := ws.sess.Edit(); err != nil {
		return err
	}
	orig := ws.sess.Buffer()
	text, err := editText(getEditor(cfg.File.Editor), orig)
	if err != nil {
		return err
	}
	if text == orig {
		cfg.Log.Info("no changes", "path", path.String())
		return ws.sess.Cancel()
	}
	if err := ws.sess.SetBuffer(text); err != nil {
		return err
	}
	if err := ws.sess.Save(context.Background()); err != nil {
		return err
	}
	if ws.sess.Node() == nil {
		_, err := fmt.Fprintf(cc.Out, "saved %s\n", path)
		return err
	}
	return display(cfg.MainConfig, cc.Out, ws)
}
