package vms

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/modes"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/tapes"
	"github.com/reusee/dscope"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

var levels = []lowers.Level{
	lowers.LevelNone,
	lowers.LevelFold,
	lowers.LevelClear,
	lowers.LevelMax,
}

type result struct {
	tape   *tapes.Tape
	output []byte
	err    error
}

func interpret(program *programs.Program, input string, policy streams.EOFPolicy) result {
	out := new(bytes.Buffer)
	e := interps.New(tapes.New(), strings.NewReader(input), out, policy)
	err := e.Run(program)
	return result{
		tape:   e.Tape,
		output: out.Bytes(),
		err:    err,
	}
}

func execute(t *testing.T, program *programs.Program, level lowers.Level, input string, policy streams.EOFPolicy) result {
	t.Helper()
	fn, err := lowers.Lower(program, level)
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	vm := NewVM(fn, nil, strings.NewReader(input), out, policy)
	for _, err = range vm.Run {
		if err != nil {
			break
		}
	}
	return result{
		tape:   vm.Tape,
		output: out.Bytes(),
		err:    err,
	}
}

func assertEquivalent(t *testing.T, src string, input string, policy streams.EOFPolicy) {
	t.Helper()
	program, err := programs.ParseString("test", src)
	if err != nil {
		t.Fatal(err)
	}
	expected := interpret(program, input, policy)
	for _, level := range levels {
		got := execute(t, program, level, input, policy)
		if !bytes.Equal(got.output, expected.output) {
			t.Fatalf("level %d: output %q, expected %q\nsource: %s", level, got.output, expected.output, src)
		}
		if !errors.Is(got.err, expected.err) {
			t.Fatalf("level %d: error %v, expected %v", level, got.err, expected.err)
		}
		if !got.tape.Equal(expected.tape) {
			t.Fatalf("level %d: tape %v, expected %v\nsource: %s", level, got.tape, expected.tape, src)
		}
	}
}

func TestEquivalence(t *testing.T) {
	tests := []struct {
		src    string
		input  string
		policy streams.EOFPolicy
	}{
		{src: "+++."},
		{src: "-."},
		{src: "<+."},
		{src: "+++++[-]"},
		{src: "[-]"},
		{src: "+++.."},
		{src: "<>+-"},
		{src: "<<<<+>>>>>>>>+<<<<."},
		{src: helloWorld},
		{src: ",[.,]", input: "echo", policy: streams.EOFZero},
		{src: ",[.,]", input: "echo", policy: streams.EOFFail},
		{src: "<,[<,]>[.>]", input: "leftward", policy: streams.EOFZero},
		{src: ">,[>,]<[.<]", input: "rightward", policy: streams.EOFZero},
		{src: "+++,.", policy: streams.EOFKeep},
		{src: "<<,.", policy: streams.EOFMax},
		{src: "++++[->>>+<<<]>>>[-<<<<<<+>>>>>>]<<<<<<."},
		{src: "+++[>+<-]>.", policy: streams.EOFFail},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			assertEquivalent(t, test.src, test.input, test.policy)
		})
	}
}

// randomProgram builds terminating programs out of straight-line code, clear
// loops and transfer loops in both directions.
func randomProgram(rnd *rand.Rand) string {
	var sb strings.Builder
	for range rnd.IntN(30) + 1 {
		switch rnd.IntN(6) {
		case 0:
			for range rnd.IntN(8) {
				sb.WriteByte("+-"[rnd.IntN(2)])
			}
		case 1:
			for range rnd.IntN(8) {
				sb.WriteByte("<>"[rnd.IntN(2)])
			}
		case 2:
			sb.WriteByte('.')
		case 3:
			sb.WriteString([]string{"[-]", "[+]"}[rnd.IntN(2)])
		case 4:
			n := rnd.IntN(5) + 1
			there, back := strings.Repeat(">", n), strings.Repeat("<", n)
			if rnd.IntN(2) == 0 {
				there, back = back, there
			}
			fmt.Fprintf(&sb, "[-%s+%s]", there, back)
		case 5:
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

func TestRandomEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1024))
	for i := range 300 {
		src := randomProgram(rnd)
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assertEquivalent(t, src, "some input bytes", streams.EOFZero)
		})
	}
}

func TestSuspendAndResume(t *testing.T) {
	program, err := programs.ParseString("hello", helloWorld)
	if err != nil {
		t.Fatal(err)
	}
	fn, err := lowers.Lower(program, lowers.LevelNone)
	if err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	vm := NewVM(fn, nil, nil, out, streams.EOFFail)
	vm.SuspendEvery = 100
	suspends := 0
	for interrupt, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		if interrupt == InterruptSuspend {
			suspends++
			if suspends == 3 {
				break
			}
		}
	}
	if vm.Done() {
		t.Fatal("should be suspended")
	}

	snapshot := new(bytes.Buffer)
	if err := vm.Snapshot(snapshot); err != nil {
		t.Fatal(err)
	}

	resumed := NewVM(nil, nil, nil, nil, "")
	if err := resumed.Restore(snapshot); err != nil {
		t.Fatal(err)
	}
	if resumed.IP != vm.IP || resumed.Steps != vm.Steps {
		t.Fatalf("got %d %d", resumed.IP, resumed.Steps)
	}
	if !resumed.Tape.Equal(vm.Tape) {
		t.Fatalf("got %v", resumed.Tape)
	}
	resumed.Attach(nil, out)
	for _, err := range resumed.Run {
		if err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != "Hello World!\n" {
		t.Fatalf("got %q", out.String())
	}
	if resumed.Steps <= 300 {
		t.Fatalf("got %d", resumed.Steps)
	}
}

func TestRestoreRejects(t *testing.T) {
	fn := &lowers.Function{
		Name: "out",
		Code: []lowers.OpCode{lowers.OpOutput},
	}
	for name, s := range map[string]snapshot{
		"no function":    {IP: 0},
		"ip past end":    {Fun: fn, IP: 2},
		"negative ip":    {Fun: fn, IP: -1},
		"bad eof policy": {Fun: fn, EOFPolicy: "foo"},
	} {
		buf := new(bytes.Buffer)
		if err := gob.NewEncoder(buf).Encode(s); err != nil {
			t.Fatal(err)
		}
		vm := NewVM(nil, nil, nil, nil, "")
		if err := vm.Restore(buf); !errors.Is(err, ErrBadSnapshot) {
			t.Fatalf("%s: got %v", name, err)
		}
	}

	// ip at the end is a finished machine
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(snapshot{Fun: fn, IP: 1}); err != nil {
		t.Fatal(err)
	}
	vm := NewVM(nil, nil, nil, nil, "")
	if err := vm.Restore(buf); err != nil {
		t.Fatal(err)
	}
	if !vm.Done() {
		t.Fatal("should be done")
	}
}

func TestBadOp(t *testing.T) {
	vm := NewVM(&lowers.Function{
		Code: []lowers.OpCode{lowers.OpCode(0xfe)},
	}, nil, nil, nil, streams.EOFFail)
	var got error
	for _, err := range vm.Run {
		got = err
	}
	if got == nil {
		t.Fatal("should error")
	}
}

func TestExecute(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
		dscope.Provide(streams.EOFFail),
		dscope.Provide(lowers.LevelClear),
		dscope.Provide(SuspendEvery(50)),
	).Call(func(
		execute Execute,
	) {
		program, err := programs.ParseString("hello", helloWorld)
		if err != nil {
			t.Fatal(err)
		}

		out := new(bytes.Buffer)
		suspends := 0
		vm, err := execute(context.Background(), program, nil, nil, out, func(*VM) bool {
			suspends++
			return true
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.String() != "Hello World!\n" {
			t.Fatalf("got %q", out.String())
		}
		if suspends == 0 {
			t.Fatal("should suspend")
		}
		if !vm.Done() {
			t.Fatal("should be done")
		}

		// stop at the first suspend point
		out.Reset()
		vm, err = execute(context.Background(), program, nil, nil, out, func(*VM) bool {
			return false
		})
		if err != nil {
			t.Fatal(err)
		}
		if vm.Done() {
			t.Fatal("should be stopped")
		}

		program, err = programs.ParseString("read", ",")
		if err != nil {
			t.Fatal(err)
		}
		_, err = execute(context.Background(), program, nil, nil, out, nil)
		if !errors.Is(err, streams.ErrInputExhausted) {
			t.Fatalf("got %v", err)
		}
	})
}
