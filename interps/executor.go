package interps

import (
	"fmt"
	"io"

	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/tapes"
)

// Executor walks an instruction tree against a tape.
type Executor struct {
	Tape      *tapes.Tape
	Source    *streams.Source
	Sink      *streams.Sink
	EOFPolicy streams.EOFPolicy

	// CheckInvariants validates the tape after every accessing instruction.
	CheckInvariants bool

	Stats Stats
}

type Stats struct {
	Instructions int64
	Iterations   int64
}

func New(tape *tapes.Tape, in io.Reader, out io.Writer, policy streams.EOFPolicy) *Executor {
	return &Executor{
		Tape:      tape,
		Source:    streams.NewSource(in),
		Sink:      streams.NewSink(out),
		EOFPolicy: policy,
	}
}

// Run executes the whole program and flushes the output.
func (e *Executor) Run(program *programs.Program) error {
	err := e.Exec(program.Instructions)
	if flushErr := e.Sink.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}

func (e *Executor) Exec(instructions []programs.Instruction) error {
	for _, inst := range instructions {
		e.Stats.Instructions++

		switch inst.Kind {

		case programs.KindAdvance:
			e.Tape.Advance()
			continue

		case programs.KindRetreat:
			e.Tape.Retreat()
			continue

		case programs.KindIncrement:
			e.Tape.Increment()

		case programs.KindDecrement:
			e.Tape.Decrement()

		case programs.KindOutput:
			if err := streams.Output(e.Tape, e.Sink); err != nil {
				return err
			}

		case programs.KindInput:
			if err := streams.Input(e.Tape, e.Source, e.Sink, e.EOFPolicy); err != nil {
				return err
			}

		case programs.KindLoop:
			for e.Tape.Read() != 0 {
				if err := e.check(); err != nil {
					return err
				}
				e.Stats.Iterations++
				if err := e.Exec(inst.Body); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("bad instruction: %v", inst.Kind)
		}

		if err := e.check(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) check() error {
	if !e.CheckInvariants {
		return nil
	}
	return e.Tape.CheckCursor()
}
