package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nomad-lab/go-archive/archive"
	"github.com/nomad-lab/go-archive/browse"
	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

var (
	ErrUnknownAlias   = errors.New("unknown document alias")
	ErrDuplicateAlias = errors.New("duplicate document alias")
)

// DocStore holds the documents one session has opened, keyed by alias.
// Contexts are immutable once created; the store only guards the map.
type DocStore struct {
	mu   sync.RWMutex
	docs map[string]*openDoc
}

type openDoc struct {
	ctx         *browse.Context
	root        browse.Adaptor
	rootSection string
	opts        []browse.ContextOption
}

func NewDocStore() *DocStore {
	return &DocStore{docs: map[string]*openDoc{}}
}

// Open builds a browsing context over doc and registers it under alias.
// filterExpr, when non-empty, is compiled to the session's visibility
// predicate.
func (s *DocStore) Open(alias string, doc *ir.Node, reg *metainfo.Registry, rootSection, filterExpr string) (browse.Adaptor, error) {
	var opts []browse.ContextOption
	if filterExpr != "" {
		f, err := browse.ExprFilter(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		opts = append(opts, browse.WithFilter(f))
	}
	ctx := browse.NewContext(doc, reg, opts...)
	root, err := browse.NewRoot(ctx, rootSection)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[alias]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAlias, alias)
	}
	s.docs[alias] = &openDoc{
		ctx:         ctx,
		root:        root,
		rootSection: rootSection,
		opts:        opts,
	}
	return root, nil
}

// Merge reconciles a newly fetched partial document into an opened alias
// using merge-patch semantics. The merged tree replaces the stored
// document wholesale: a fresh context and root adaptor are built, while
// adaptors handed out before the merge keep reading the old tree.
func (s *DocStore) Merge(alias string, partial *ir.Node) (browse.Adaptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlias, alias)
	}
	merged, err := archive.Merge(d.ctx.Root(), partial)
	if err != nil {
		return nil, fmt.Errorf("merge into %q: %w", alias, err)
	}
	ctx := browse.NewContext(merged, d.ctx.Registry(), d.opts...)
	root, err := browse.NewRoot(ctx, d.rootSection)
	if err != nil {
		return nil, err
	}
	s.docs[alias] = &openDoc{
		ctx:         ctx,
		root:        root,
		rootSection: d.rootSection,
		opts:        d.opts,
	}
	return root, nil
}

// Root returns the root adaptor of an opened document.
func (s *DocStore) Root(alias string) (browse.Adaptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlias, alias)
	}
	return d.root, nil
}

// Close forgets an opened document.
func (s *DocStore) Close(alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[alias]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlias, alias)
	}
	delete(s.docs, alias)
	return nil
}

// Aliases lists the opened aliases in sorted order.
func (s *DocStore) Aliases() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]string, 0, len(s.docs))
	for alias := range s.docs {
		res = append(res, alias)
	}
	sort.Strings(res)
	return res
}
