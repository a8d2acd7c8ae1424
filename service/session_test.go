package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"go.lsp.dev/jsonrpc2"

	"github.com/nomad-lab/go-archive/browse"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	return &Session{
		ID:    "test",
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		reg:   testRegistry(t),
		store: NewDocStore(),
	}
}

func openTestDoc(t *testing.T, s *Session) {
	t.Helper()
	res, err := s.open(&OpenParams{
		Alias:    "calc",
		Root:     "Run",
		Document: json.RawMessage(testArchive),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Alias != "calc" || len(res.Keys) == 0 {
		t.Fatalf("unexpected open result: %+v", res)
	}
}

func TestSessionOpenList(t *testing.T) {
	s := testSession(t)
	openTestDoc(t, s)

	res, err := s.list(&ListParams{Alias: "calc", Path: []string{"system"}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0", "1"}
	if len(res.Keys) != len(want) {
		t.Fatalf("got keys %v, want %v", res.Keys, want)
	}
	for i, k := range want {
		if res.Keys[i] != k {
			t.Errorf("key %d: got %q, want %q", i, res.Keys[i], k)
		}
	}
}

func TestSessionRender(t *testing.T) {
	s := testSession(t)
	openTestDoc(t, s)

	r, err := s.render(&RenderParams{Alias: "calc", Path: []string{"system", "0", "atom_count"}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "atom_count" || r.Preview != "2" {
		t.Errorf("unexpected render: %+v", r)
	}
}

func TestSessionMerge(t *testing.T) {
	s := testSession(t)
	openTestDoc(t, s)

	partial := json.RawMessage(`{"program_name": "exciting"}`)
	res, err := s.merge(&MergeParams{Alias: "calc", Document: partial})
	if err != nil {
		t.Fatal(err)
	}
	if res.Alias != "calc" || len(res.Keys) == 0 {
		t.Fatalf("unexpected merge result: %+v", res)
	}

	r, err := s.render(&RenderParams{Alias: "calc", Path: []string{"program_name"}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Preview != "exciting" {
		t.Errorf("got %q, want merged value", r.Preview)
	}
	// Untouched fields survive the merge.
	r, err = s.render(&RenderParams{Alias: "calc", Path: []string{"system", "0", "atom_count"}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Preview != "2" {
		t.Errorf("got %q, want pre-merge value", r.Preview)
	}

	if _, err := s.merge(&MergeParams{Alias: "nope", Document: partial}); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("got %v, want ErrUnknownAlias", err)
	}
}

func TestSessionRenderErrors(t *testing.T) {
	s := testSession(t)
	openTestDoc(t, s)

	if _, err := s.render(&RenderParams{Alias: "nope"}); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("got %v, want ErrUnknownAlias", err)
	}
	if _, err := s.render(&RenderParams{Alias: "calc", Path: []string{"no_such"}}); !errors.Is(err, browse.ErrUnknownChildKey) {
		t.Errorf("got %v, want ErrUnknownChildKey", err)
	}
	if _, err := s.render(&RenderParams{Alias: "calc", Path: []string{"system", "9"}}); !errors.Is(err, browse.ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func TestSessionOpenYAML(t *testing.T) {
	s := testSession(t)
	yaml := "program_name: VASP\nsystem:\n  - atom_count: 2\n  - atom_count: 3\n"
	raw, err := json.Marshal(yaml)
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.open(&OpenParams{
		Alias:    "y",
		Root:     "Run",
		Format:   "yaml",
		Document: raw,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Keys) == 0 {
		t.Error("yaml document opened with no children")
	}
}

func TestServerRoundTrip(t *testing.T) {
	srv := New(&Spec{
		Registry: testRegistry(t),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err := srv.StartTCP("127.0.0.1:0"); err != nil {
		t.Fatal(err)
	}
	defer srv.StopTCP()

	conn, err := net.Dial("tcp", srv.TCPAddr())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()
	rpc := jsonrpc2.NewConn(jsonrpc2.NewStream(conn))
	rpc.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	defer rpc.Close()

	var opened OpenResult
	_, err = rpc.Call(ctx, MethodOpen, &OpenParams{
		Alias:    "calc",
		Root:     "Run",
		Document: json.RawMessage(testArchive),
	}, &opened)
	if err != nil {
		t.Fatal(err)
	}

	var r browse.Render
	_, err = rpc.Call(ctx, MethodRender, &RenderParams{
		Alias: "calc",
		Path:  []string{"system"},
	}, &r)
	if err != nil {
		t.Fatal(err)
	}
	if r.Preview != "2 System" {
		t.Errorf("got preview %q, want %q", r.Preview, "2 System")
	}

	if _, err := rpc.Call(ctx, "archive/bogus", struct{}{}, nil); err == nil {
		t.Error("unknown method must error")
	}
}
