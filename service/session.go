package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"go.lsp.dev/jsonrpc2"

	"github.com/nomad-lab/go-archive/archive"
	"github.com/nomad-lab/go-archive/browse"
	"github.com/nomad-lab/go-archive/debug"
	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

// Session serves one client connection. Documents opened here are
// private to the session and vanish with it.
type Session struct {
	ID    string
	conn  net.Conn
	log   *slog.Logger
	reg   *metainfo.Registry
	store *DocStore

	rpc       jsonrpc2.Conn
	closeOnce sync.Once
}

// SessionConfig contains configuration for creating a session.
type SessionConfig struct {
	Registry *metainfo.Registry
	Log      *slog.Logger
}

// NewSession creates a new session for the given connection.
func NewSession(id string, conn net.Conn, cfg *SessionConfig) *Session {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		ID:    id,
		conn:  conn,
		log:   log.With("session", id),
		reg:   cfg.Registry,
		store: NewDocStore(),
	}
}

// Run serves JSON-RPC on the connection and blocks until the client
// disconnects or Close is called.
func (s *Session) Run() error {
	stream := jsonrpc2.NewStream(s.conn)
	s.rpc = jsonrpc2.NewConn(stream)
	s.rpc.Go(context.Background(), s.handle)
	<-s.rpc.Done()
	if err := s.rpc.Err(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// Close signals the session to shut down.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.rpc != nil {
			s.rpc.Close()
		}
	})
	return s.conn.Close()
}

func (s *Session) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("session %s: %s %s\n", s.ID, req.Method(), string(req.Params()))
	}
	result, err := s.dispatch(req)
	if err != nil {
		s.log.Debug("request failed", "method", req.Method(), "error", err)
	}
	return reply(ctx, result, err)
}

func (s *Session) dispatch(req jsonrpc2.Request) (any, error) {
	switch req.Method() {
	case MethodOpen:
		var params OpenParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err)
		}
		return s.open(&params)
	case MethodMerge:
		var params MergeParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err)
		}
		return s.merge(&params)
	case MethodClose:
		var params CloseParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err)
		}
		return nil, s.store.Close(params.Alias)
	case MethodList:
		var params ListParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err)
		}
		return s.list(&params)
	case MethodRender:
		var params RenderParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err)
		}
		return s.render(&params)
	default:
		return nil, fmt.Errorf("%w: %q", jsonrpc2.ErrMethodNotFound, req.Method())
	}
}

func (s *Session) open(params *OpenParams) (*OpenResult, error) {
	doc, err := parseDocument(params.Format, params.Document)
	if err != nil {
		return nil, err
	}
	root, err := s.store.Open(params.Alias, doc, s.reg, params.Root, params.Filter)
	if err != nil {
		return nil, err
	}
	s.log.Info("document opened", "alias", params.Alias, "root", params.Root)
	return &OpenResult{
		Alias: params.Alias,
		Keys:  root.ListChildKeys(),
	}, nil
}

func (s *Session) merge(params *MergeParams) (*OpenResult, error) {
	partial, err := parseDocument(params.Format, params.Document)
	if err != nil {
		return nil, err
	}
	root, err := s.store.Merge(params.Alias, partial)
	if err != nil {
		return nil, err
	}
	s.log.Info("document merged", "alias", params.Alias)
	return &OpenResult{
		Alias: params.Alias,
		Keys:  root.ListChildKeys(),
	}, nil
}

func (s *Session) list(params *ListParams) (*ListResult, error) {
	a, err := s.navigate(params.Alias, params.Path)
	if err != nil {
		return nil, err
	}
	return &ListResult{Keys: a.ListChildKeys()}, nil
}

func (s *Session) render(params *RenderParams) (*browse.Render, error) {
	a, err := s.navigate(params.Alias, params.Path)
	if err != nil {
		return nil, err
	}
	var opts []browse.RenderOption
	if params.ShowAll {
		opts = append(opts, browse.WithShowAll())
	}
	return a.Render(opts...), nil
}

func (s *Session) navigate(alias string, path []string) (browse.Adaptor, error) {
	root, err := s.store.Root(alias)
	if err != nil {
		return nil, err
	}
	return browse.Navigate(root, path)
}

func parseDocument(formatName string, document json.RawMessage) (doc *ir.Node, err error) {
	format := archive.JSONFormat
	if formatName != "" {
		format, err = archive.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
	}
	data := []byte(document)
	if format == archive.YAMLFormat {
		// YAML rides inside the JSON params as a string
		var text string
		if err := json.Unmarshal(document, &text); err != nil {
			return nil, fmt.Errorf("yaml document must be a string: %w", err)
		}
		data = []byte(text)
	}
	return archive.Parse(data, format)
}
