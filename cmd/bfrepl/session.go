package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bfc/debugs"
	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/tapes"
)

// Session runs every entered chunk against the same tape.
type Session struct {
	Tape  *tapes.Tape
	Input bytes.Buffer

	interpret interps.Interpret
	tap       debugs.Tap
	runs      int
}

func NewSession(interpret interps.Interpret, tap debugs.Tap) *Session {
	return &Session{
		Tape:      tapes.New(),
		interpret: interpret,
		tap:       tap,
	}
}

const helpText = `code          run on the current tape, [ continues to the next line
:input TEXT   queue TEXT and a newline for , instructions
:tape         show visited cells
:tap          open a starlark session on the tape
:reset        start over with an empty tape
:quit         leave
`

func (s *Session) Eval(ctx context.Context, code string, out io.Writer) error {
	s.runs++
	program, err := programs.ParseString(fmt.Sprintf("<repl %d>", s.runs), code)
	if err != nil {
		return err
	}
	tape, err := s.interpret(ctx, program, s.Tape, &s.Input, out)
	s.Tape = tape
	return err
}

// Command handles a line starting with ':'.
func (s *Session) Command(ctx context.Context, line string, out io.Writer) (exit bool, err error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch name {

	case ":quit", ":exit", ":q":
		return true, nil

	case ":help", ":h":
		_, err = io.WriteString(out, helpText)

	case ":input":
		s.Input.WriteString(arg)
		s.Input.WriteByte('\n')

	case ":tape":
		_, err = fmt.Fprintln(out, s.Describe())

	case ":tap":
		s.tap(ctx, "repl", debugs.TapeGlobals(s.Tape))

	case ":reset":
		s.Tape = tapes.New()
		s.Input.Reset()

	default:
		_, err = fmt.Fprintf(out, "unknown command %s, try :help\n", name)
	}
	return false, err
}

// Describe renders visited cells with the cursor cell bracketed.
func (s *Session) Describe() string {
	cells, first := s.Tape.Cells()
	if len(cells) == 0 {
		return fmt.Sprintf("cursor %d, no cells visited", s.Tape.Cursor())
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "cursor %d, cells %d..%d:", s.Tape.Cursor(), first, first+len(cells)-1)
	for i, cell := range cells {
		if first+i == s.Tape.Cursor() {
			fmt.Fprintf(&sb, " [%d]", cell)
		} else {
			fmt.Fprintf(&sb, " %d", cell)
		}
	}
	return sb.String()
}
