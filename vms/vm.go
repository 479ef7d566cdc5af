package vms

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/tapes"
)

// VM replays a lowered function against a tape using the same primitives as
// the tree interpreter.
type VM struct {
	Fun       *lowers.Function
	IP        int
	Tape      *tapes.Tape
	EOFPolicy streams.EOFPolicy

	// SuspendEvery yields InterruptSuspend after that many ops when positive.
	SuspendEvery int
	Steps        int64

	source *streams.Source
	sink   *streams.Sink
}

func NewVM(fn *lowers.Function, tape *tapes.Tape, in io.Reader, out io.Writer, policy streams.EOFPolicy) *VM {
	if tape == nil {
		tape = tapes.New()
	}
	return &VM{
		Fun:       fn,
		Tape:      tape,
		EOFPolicy: policy,
		source:    streams.NewSource(in),
		sink:      streams.NewSink(out),
	}
}

// Attach replaces the input and output, used after Restore.
func (v *VM) Attach(in io.Reader, out io.Writer) {
	v.source = streams.NewSource(in)
	v.sink = streams.NewSink(out)
}

func (v *VM) Done() bool {
	return v.IP < 0 || v.IP >= len(v.Fun.Code)
}

var ErrBadSnapshot = errors.New("bad snapshot")

type snapshot struct {
	Fun          *lowers.Function
	IP           int
	Tape         *tapes.Tape
	EOFPolicy    streams.EOFPolicy
	SuspendEvery int
	Steps        int64
}

// Snapshot encodes the machine state. Input and output are not part of it.
func (v *VM) Snapshot(w io.Writer) error {
	if err := v.sink.Flush(); err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(snapshot{
		Fun:          v.Fun,
		IP:           v.IP,
		Tape:         v.Tape,
		EOFPolicy:    v.EOFPolicy,
		SuspendEvery: v.SuspendEvery,
		Steps:        v.Steps,
	}); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func (v *VM) Restore(r io.Reader) error {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if s.Fun == nil {
		return fmt.Errorf("%w: no function", ErrBadSnapshot)
	}
	if s.IP < 0 || s.IP > len(s.Fun.Code) {
		return fmt.Errorf("%w: ip %d out of [0, %d]", ErrBadSnapshot, s.IP, len(s.Fun.Code))
	}
	if _, err := streams.ParseEOFPolicy(string(s.EOFPolicy)); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if s.Tape == nil {
		s.Tape = tapes.New()
	}
	v.Fun = s.Fun
	v.IP = s.IP
	v.Tape = s.Tape
	v.EOFPolicy = s.EOFPolicy
	v.SuspendEvery = s.SuspendEvery
	v.Steps = s.Steps
	return nil
}
