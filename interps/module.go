package interps

import (
	"context"
	"io"

	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/modes"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/tapes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type NewExecutor func(tape *tapes.Tape, in io.Reader, out io.Writer) *Executor

func (Module) NewExecutor(
	policy streams.EOFPolicy,
	mode modes.Mode,
) NewExecutor {
	return func(tape *tapes.Tape, in io.Reader, out io.Writer) *Executor {
		e := New(tape, in, out, policy)
		e.CheckInvariants = mode == modes.ModeDevelopment
		return e
	}
}

// Interpret runs program on tape. A nil tape starts a fresh one.
type Interpret func(ctx context.Context, program *programs.Program, tape *tapes.Tape, in io.Reader, out io.Writer) (*tapes.Tape, error)

func (Module) Interpret(
	newExecutor NewExecutor,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Interpret {
	return func(ctx context.Context, program *programs.Program, tape *tapes.Tape, in io.Reader, out io.Writer) (*tapes.Tape, error) {
		ctx, _ = newSpan(ctx, "")
		if tape == nil {
			tape = tapes.New()
		}
		e := newExecutor(tape, in, out)
		logger.DebugContext(ctx, "interpret",
			"program", program.Name,
			"policy", e.EOFPolicy,
			"checked", e.CheckInvariants,
		)
		err := e.Run(program)
		logger.DebugContext(ctx, "interpret done",
			"instructions", e.Stats.Instructions,
			"iterations", e.Stats.Iterations,
			"cursor", tape.Cursor(),
			"cells", tape.Len(),
		)
		if err != nil {
			return tape, logs.WrapSpan(ctx, err)
		}
		return tape, nil
	}
}
