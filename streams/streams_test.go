package streams

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/reusee/bfc/tapes"
)

func TestParseEOFPolicy(t *testing.T) {
	for _, str := range []string{"fail", "zero", "keep", "max"} {
		p, err := ParseEOFPolicy(str)
		if err != nil {
			t.Fatal(err)
		}
		if string(p) != str {
			t.Fatalf("got %s", p)
		}
	}
	p, err := ParseEOFPolicy("")
	if err != nil {
		t.Fatal(err)
	}
	if p != EOFFail {
		t.Fatalf("got %s", p)
	}
	if _, err := ParseEOFPolicy("foo"); !errors.Is(err, ErrBadEOFPolicy) {
		t.Fatalf("got %v", err)
	}
}

func TestSourceWithoutByteReader(t *testing.T) {
	source := NewSource(iotest.OneByteReader(strings.NewReader("ab")))
	for _, expected := range []byte("ab") {
		b, err := source.ReadByte()
		if err != nil {
			t.Fatal(err)
		}
		if b != expected {
			t.Fatalf("got %c", b)
		}
	}
	if _, err := source.ReadByte(); err != io.EOF {
		t.Fatalf("got %v", err)
	}
}

func TestSourceError(t *testing.T) {
	source := NewSource(iotest.ErrReader(io.ErrClosedPipe))
	if _, err := source.ReadByte(); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("got %v", err)
	}
}

func TestNilSourceAndSink(t *testing.T) {
	source := NewSource(nil)
	if _, err := source.ReadByte(); err != io.EOF {
		t.Fatalf("got %v", err)
	}
	sink := NewSink(nil)
	if err := sink.WriteByte('a'); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}
}

func TestInputPolicies(t *testing.T) {
	tests := []struct {
		policy   EOFPolicy
		expected byte
		err      error
	}{
		{EOFFail, 42, ErrInputExhausted},
		{EOFZero, 0, nil},
		{EOFKeep, 42, nil},
		{EOFMax, 255, nil},
	}
	for _, test := range tests {
		t.Run(string(test.policy), func(t *testing.T) {
			tape := tapes.New()
			tape.Write(42)
			err := Input(tape, NewSource(strings.NewReader("")), NewSink(nil), test.policy)
			if !errors.Is(err, test.err) {
				t.Fatalf("got %v", err)
			}
			if v := tape.Read(); v != test.expected {
				t.Fatalf("got %d", v)
			}
		})
	}
}

func TestInputFlushesOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	w := bufio.NewWriter(buf)
	sink := NewSink(w)
	tape := tapes.New()
	tape.Write('>')
	if err := Output(tape, sink); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatal("should be buffered")
	}
	if err := Input(tape, NewSource(strings.NewReader("x")), sink, EOFFail); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ">" {
		t.Fatalf("got %q", buf.String())
	}
	if v := tape.Read(); v != 'x' {
		t.Fatalf("got %c", v)
	}
}

func TestInputGrowsTapeOnKeep(t *testing.T) {
	tape := tapes.New()
	tape.Retreat()
	if err := Input(tape, NewSource(nil), NewSink(nil), EOFKeep); err != nil {
		t.Fatal(err)
	}
	if tape.Len() != 1 || tape.Origin() != 1 {
		t.Fatalf("got %v", tape)
	}
}
