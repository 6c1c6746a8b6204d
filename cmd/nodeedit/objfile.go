package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nodeedit"
	"github.com/signadot/nodeedit/docstore"
	"github.com/signadot/nodeedit/graph"
	"github.com/signadot/nodeedit/ir/kpath"
	"github.com/signadot/nodeedit/node"
	"github.com/signadot/nodeedit/session"
)

// workspace connects a document, its graph and an editing session.
type workspace struct {
	docs  *docstore.Store
	graph *graph.Store
	sess  *session.Session
}

// openWorkspace loads the document in path, "-" for stdin. Saves write back
// to path unless inPlace is false or the document came from stdin.
func openWorkspace(cfg *MainConfig, cc *cli.Context, path string, inPlace bool) (*workspace, error) {
	opts := []docstore.Option{docstore.WithLogger(cfg.Log)}
	var (
		docs *docstore.Store
		err  error
	)
	switch {
	case path == "-":
		d, rerr := io.ReadAll(cc.In)
		if rerr != nil {
			return nil, fmt.Errorf("error reading stdin: %w", rerr)
		}
		docs, err = docstore.New(string(d), opts...)
	case inPlace:
		docs, err = docstore.Open(path, opts...)
	default:
		var text string
		text, err = readText(path)
		if err == nil {
			docs, err = docstore.New(text, opts...)
		}
	}
	if err != nil {
		return nil, err
	}
	g := graph.NewStore(cfg.Log)
	if err := g.Rebuild(docs.Root()); err != nil {
		return nil, err
	}
	docs.Subscribe(g.Rebuild)
	sess := session.New(g, docs,
		session.WithLogger(cfg.Log),
		session.WithIndent(cfg.File.Indent),
		session.WithTimeout(cfg.File.SaveTimeout))
	return &workspace{docs: docs, graph: g, sess: sess}, nil
}

// selectPath selects the node at path. Paths to values without a node of
// their own, such as fields of an object, get a detached node showing the
// value if it is a scalar.
func (ws *workspace) selectPath(path kpath.Path) *graph.Node {
	n := ws.graph.Find(path)
	if n == nil {
		n = &graph.Node{Path: path}
		if v, err := nodeedit.Get(ws.docs.Root(), path); err == nil && v != nil && v.Type.IsLeaf() {
			n.Rows = []node.Row{node.ValueRow(v)}
		}
	}
	ws.sess.Select(n)
	return n
}

func parsePathArg(arg string) (kpath.Path, error) {
	p, err := kpath.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}

func readText(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
