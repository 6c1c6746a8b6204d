package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nodeedit").
		WithSynopsis("nodeedit [opts] command [opts]").
		WithDescription("nodeedit views and edits single nodes of JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nodeeditMain(cfg, cc, args)
		}).
		WithSubs(
			NodesCommand(cfg),
			ViewCommand(cfg),
			SetCommand(cfg),
			EditCommand(cfg))
}

func NodesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NodesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Nodes, "nodes").
		WithAliases("n", "ls").
		WithSynopsis("nodes <file>").
		WithDescription("list the graph nodes of a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return nodes(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view <path> <file>").
		WithDescription("show the editable text of the node at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-s] [-o out] <path> <value> <file>").
		WithDescription("save value into the document at path, merging objects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Edit, "edit").
		WithAliases("e").
		WithSynopsis("edit <path> <file>").
		WithDescription("edit the node at path with $VISUAL or $EDITOR and save it").
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
}
