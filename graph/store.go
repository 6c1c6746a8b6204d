package graph

import (
	"log/slog"
	"sync"

	"github.com/signadot/nodeedit/debug"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/ir/kpath"
)

// Store holds the current nodes of a document and the selected one. It is
// safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	nodes    []*Node
	selected *Node
	log      *slog.Logger
}

func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{log: log.With("component", "graph")}
}

func (s *Store) Nodes() []*Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]*Node, len(s.nodes))
	copy(res, s.nodes)
	return res
}

func (s *Store) Selected() *Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Store) Select(n *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = n
}

// Rebuild replaces the nodes with those of doc and clears the selection.
func (s *Store) Rebuild(doc *ir.Node) error {
	nodes := Build(doc)
	s.mu.Lock()
	s.nodes = nodes
	s.selected = nil
	s.mu.Unlock()
	if debug.Graph() {
		debug.Logf("graph rebuilt from %s\n", debug.JSON{Node: doc})
	}
	s.log.Debug("rebuilt", "nodes", len(nodes))
	return nil
}

// Find returns the node at path, or nil.
func (s *Store) Find(path kpath.Path) *Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.nodes {
		if n.Path.Equal(path) {
			return n
		}
	}
	return nil
}

// FindID returns the node with the given id, or nil.
func (s *Store) FindID(id string) *Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
