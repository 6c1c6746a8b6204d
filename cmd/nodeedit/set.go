package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nodeedit/encode"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return usagef("set requires a path, a value and a file")
	}
	path, err := parsePathArg(args[0])
	if err != nil {
		return err
	}
	value, file := args[1], args[2]
	if cfg.String {
		value = encode.Quote(value)
	}
	ws, err := openWorkspace(cfg.MainConfig, cc, file, cfg.Out == "")
	if err != nil {
		return err
	}
	ws.selectPath(path)
	if err := ws.sess.Edit(); err != nil {
		return err
	}
	if err := ws.sess.SetBuffer(value); err != nil {
		return err
	}
	ctx := context.Background()
	if err := ws.sess.Save(ctx); err != nil {
		return err
	}
	switch {
	case cfg.Out != "":
		return writeDocument(ctx, ws, cfg.Out, cc.Out)
	case file == "-":
		return writeDocument(ctx, ws, "-", cc.Out)
	}
	return nil
}

func writeDocument(ctx context.Context, ws *workspace, out string, stdout io.Writer) error {
	text, err := ws.docs.Document(ctx)
	if err != nil {
		return err
	}
	if out == "-" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", out, err)
	}
	return nil
}
