package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/modes"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/dscope"
)

func testSession(t *testing.T) *Session {
	var session *Session
	dscope.New(
		new(interps.Module),
		new(logs.Module),
		modes.ForTest(t),
		dscope.Provide(streams.EOFZero),
	).Call(func(
		interpret interps.Interpret,
	) {
		session = NewSession(interpret, func(context.Context, string, map[string]any) {
			t.Fatal("should not tap")
		})
	})
	return session
}

func TestSessionKeepsTape(t *testing.T) {
	ctx := context.Background()
	session := testSession(t)
	out := new(bytes.Buffer)

	if err := session.Eval(ctx, "+++++", out); err != nil {
		t.Fatal(err)
	}
	if err := session.Eval(ctx, "<", out); err != nil {
		t.Fatal(err)
	}
	if err := session.Eval(ctx, ">.", out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{5}) {
		t.Fatalf("got %v", out.Bytes())
	}
	if str := session.Describe(); str != "cursor 0, cells 0..0: [5]" {
		t.Fatalf("got %q", str)
	}
}

func TestSessionInput(t *testing.T) {
	ctx := context.Background()
	session := testSession(t)
	out := new(bytes.Buffer)

	if _, err := session.Command(ctx, ":input hi", out); err != nil {
		t.Fatal(err)
	}
	if err := session.Eval(ctx, ",.,.,.", out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hi\n" {
		t.Fatalf("got %q", out.String())
	}
	// queue exhausted, zero policy
	if err := session.Eval(ctx, ",.", out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hi\n\x00" {
		t.Fatalf("got %q", out.String())
	}
}

func TestSessionCommands(t *testing.T) {
	ctx := context.Background()
	session := testSession(t)
	out := new(bytes.Buffer)

	if str := session.Describe(); str != "cursor 0, no cells visited" {
		t.Fatalf("got %q", str)
	}
	if err := session.Eval(ctx, "+>", out); err != nil {
		t.Fatal(err)
	}
	if _, err := session.Command(ctx, ":reset", out); err != nil {
		t.Fatal(err)
	}
	if session.Tape.Len() != 0 || session.Tape.Cursor() != 0 {
		t.Fatalf("got %v", session.Tape)
	}

	out.Reset()
	if _, err := session.Command(ctx, ":help", out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), ":input TEXT") {
		t.Fatalf("got %q", out.String())
	}

	out.Reset()
	if _, err := session.Command(ctx, ":foo", out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "unknown command :foo") {
		t.Fatalf("got %q", out.String())
	}

	exit, err := session.Command(ctx, ":quit", out)
	if err != nil {
		t.Fatal(err)
	}
	if !exit {
		t.Fatal("should exit")
	}
}

func TestSessionParseError(t *testing.T) {
	session := testSession(t)
	err := session.Eval(context.Background(), "]", new(bytes.Buffer))
	if !errors.Is(err, programs.ErrUnmatchedClose) {
		t.Fatalf("got %v", err)
	}
}
