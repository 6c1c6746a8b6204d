// Package session implements viewing, editing and saving a single node of a
// document shown as a graph.
//
// A Session reads the document from a Documents implementation on every save,
// patches the edited value in at the node's path, hands the result back and
// waits for the graph to be rebuilt before selecting the node again. A
// Session is meant to be driven from one goroutine.
package session

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/signadot/nodeedit"
	"github.com/signadot/nodeedit/debug"
	"github.com/signadot/nodeedit/encode"
	"github.com/signadot/nodeedit/graph"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/ir/kpath"
	"github.com/signadot/nodeedit/node"
	"github.com/signadot/nodeedit/parse"
)

// Selection gives access to the nodes of the graph and the selected one.
type Selection interface {
	Selected() *graph.Node
	Nodes() []*graph.Node
	Select(*graph.Node)
}

// Documents stores the document text. The channel returned by SetDocument
// receives one value once the new document has been applied, including
// rebuilding the nodes of the Selection.
type Documents interface {
	Document(ctx context.Context) (string, error)
	SetDocument(ctx context.Context, text string) <-chan error
}

type Session struct {
	sel     Selection
	docs    Documents
	state   State
	node    *graph.Node
	buffer  string
	indent  int
	timeout time.Duration
	log     *slog.Logger
}

type Option func(*Session)

func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIndent sets the indentation of saved documents, 2 by default.
func WithIndent(n int) Option {
	return func(s *Session) { s.indent = n }
}

// WithTimeout bounds the duration of each save.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// New creates a session viewing the node currently selected in sel.
func New(sel Selection, docs Documents, opts ...Option) *Session {
	s := &Session{
		sel:    sel,
		docs:   docs,
		indent: 2,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "session")
	s.node = sel.Selected()
	s.buffer = s.normalized()
	return s
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Node() *graph.Node {
	return s.node
}

// Buffer returns the text being shown or edited.
func (s *Session) Buffer() string {
	return s.buffer
}

// View returns the text to display for the current node and its formatted
// path.
func (s *Session) View() (text, path string) {
	return s.buffer, kpath.Format(s.path())
}

// Select makes n, which may be nil, the current node and returns to viewing,
// discarding any edit.
func (s *Session) Select(n *graph.Node) {
	s.sel.Select(n)
	s.node = n
	s.state = Viewing
	s.buffer = s.normalized()
	if debug.Session() {
		debug.Logf("session: select %s\n", kpath.Format(s.path()))
	}
}

// Edit starts editing the current node.
func (s *Session) Edit() error {
	switch s.state {
	case Saving:
		return ErrBusy
	case Editing:
		return nil
	}
	s.state = Editing
	s.buffer = s.normalized()
	return nil
}

func (s *Session) SetBuffer(text string) error {
	if s.state != Editing {
		return ErrNotEditing
	}
	s.buffer = text
	return nil
}

// Cancel discards the edit.
func (s *Session) Cancel() error {
	if s.state != Editing {
		return ErrNotEditing
	}
	s.state = Viewing
	s.buffer = s.normalized()
	return nil
}

// Save writes the edited value into the document at the path of the current
// node. A buffer which is not valid JSON is saved as a string.
//
// Once the new document has been applied, the node at the same path, if any,
// is selected and the session returns to viewing. On error the session stays
// in editing with the buffer unchanged.
func (s *Session) Save(ctx context.Context) error {
	switch s.state {
	case Saving:
		return ErrBusy
	case Viewing:
		return ErrNotEditing
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.state = Saving
	path := s.path()
	if err := s.save(ctx, path); err != nil {
		s.state = Editing
		s.log.Error("save failed", "path", kpath.Format(path), "error", err)
		return fmt.Errorf("could not save %s: %w", kpath.Format(path), err)
	}
	var found *graph.Node
	for _, n := range s.sel.Nodes() {
		if n.Path.Equal(path) {
			found = n
			break
		}
	}
	if found == nil {
		s.log.Debug("saved node not found", "path", kpath.Format(path))
	}
	s.Select(found)
	s.log.Info("saved", "path", kpath.Format(path))
	return nil
}

func (s *Session) save(ctx context.Context, path kpath.Path) error {
	value := EditValue(s.buffer)
	text, err := s.docs.Document(ctx)
	if err != nil {
		return fmt.Errorf("could not read document: %w", err)
	}
	root, err := parse.ParseString(text)
	if err != nil {
		return fmt.Errorf("could not parse document: %w", err)
	}
	res, err := nodeedit.Patch(root, path, value)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(res, buf, encode.EncodeIndent(s.indent)); err != nil {
		return err
	}
	if debug.Session() {
		debug.Logf("session: saving %s at %s\n", debug.JSON{Node: value}, kpath.Format(path))
	}
	select {
	case err := <-s.docs.SetDocument(ctx, buf.String()):
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EditValue returns the value of edited text: the JSON value it holds, or
// the text itself as a string.
func EditValue(text string) *ir.Node {
	v, err := parse.ParseString(text)
	if err != nil {
		return ir.FromString(text)
	}
	return v
}

func (s *Session) path() kpath.Path {
	if s.node == nil {
		return nil
	}
	return s.node.Path
}

func (s *Session) normalized() string {
	if s.node == nil {
		return node.Normalize(nil)
	}
	return node.Normalize(s.node.Rows)
}
