// Package docstore holds the JSON text of the document being edited and
// notifies subscribers when it changes.
package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/signadot/nodeedit/debug"
	"github.com/signadot/nodeedit/ir"
	"github.com/signadot/nodeedit/parse"
)

// Subscriber is called with the newly parsed document after each change.
type Subscriber func(doc *ir.Node) error

type Store struct {
	mu   sync.Mutex
	text string
	doc  *ir.Node
	file string
	subs []Subscriber
	log  *slog.Logger
}

type Option func(*Store)

func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithFile makes the store write each new document to path.
func WithFile(path string) Option {
	return func(s *Store) { s.file = path }
}

// New creates a store holding text, which must be a JSON document.
func New(text string, opts ...Option) (*Store, error) {
	s := &Store{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "docstore")
	doc, err := parse.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	s.text = text
	s.doc = doc
	return s, nil
}

// Open creates a store from the contents of the file at path, writing
// changes back to it.
func Open(path string, opts ...Option) (*Store, error) {
	text, err := readFile(path)
	if err != nil {
		return nil, err
	}
	s, err := New(text, append(opts, WithFile(path))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Subscribe adds f to the functions called on each change.
func (s *Store) Subscribe(f Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, f)
}

// Document returns the current document text.
func (s *Store) Document(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, nil
}

// Root returns the current document.
func (s *Store) Root() *ir.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// SetDocument replaces the document with text. The returned channel receives
// exactly one value once the document is stored and every subscriber has
// seen it: nil, or the first error encountered.
//
// Text identical to the current text is not stored again. Text holding the
// same value as the current document is stored, but subscribers are not
// called.
func (s *Store) SetDocument(ctx context.Context, text string) <-chan error {
	done := make(chan error, 1)
	if err := ctx.Err(); err != nil {
		done <- err
		return done
	}
	doc, err := parse.ParseString(text)
	if err != nil {
		done <- fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		return done
	}
	s.mu.Lock()
	if text == s.text {
		s.mu.Unlock()
		if debug.Store() {
			debug.Logf("store: document unchanged\n")
		}
		s.log.Debug("document unchanged")
		done <- nil
		return done
	}
	if s.file != "" {
		if err := writeFile(s.file, text); err != nil {
			s.mu.Unlock()
			done <- fmt.Errorf("could not write %s: %w", s.file, err)
			return done
		}
	}
	sameValue := ir.Equal(s.doc, doc)
	s.text = text
	s.doc = doc
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	if debug.Store() {
		debug.Logf("store: new document %s\n", debug.JSON{Node: doc})
	}
	s.log.Debug("document stored", "bytes", len(text), "file", s.file, "reformatted", sameValue)
	if sameValue {
		done <- nil
		return done
	}

	go func() {
		done <- s.notify(ctx, subs, doc)
	}()
	return done
}

func (s *Store) notify(ctx context.Context, subs []Subscriber, doc *ir.Node) error {
	for _, f := range subs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f(doc); err != nil {
			s.log.Error("subscriber failed", "error", err)
			return fmt.Errorf("could not apply document: %w", err)
		}
	}
	return nil
}
