package vms

import (
	"context"
	"io"

	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/tapes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type SuspendEvery int

// Execute lowers program and runs it on tape. A nil tape starts a fresh one.
// onSuspend is called at every suspend point; returning false stops the run
// and returns the VM so the caller can snapshot it.
type Execute func(
	ctx context.Context,
	program *programs.Program,
	tape *tapes.Tape,
	in io.Reader,
	out io.Writer,
	onSuspend func(*VM) bool,
) (*VM, error)

func (Module) Execute(
	level lowers.Level,
	policy streams.EOFPolicy,
	suspendEvery SuspendEvery,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Execute {
	return func(
		ctx context.Context,
		program *programs.Program,
		tape *tapes.Tape,
		in io.Reader,
		out io.Writer,
		onSuspend func(*VM) bool,
	) (*VM, error) {
		ctx, _ = newSpan(ctx, "")

		fn, err := lowers.Lower(program, level)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "lowered",
			"program", program.Name,
			"level", level,
			"ops", len(fn.Code),
		)

		vm := NewVM(fn, tape, in, out, policy)
		vm.SuspendEvery = int(suspendEvery)
		for interrupt, err := range vm.Run {
			if err != nil {
				return vm, logs.WrapSpan(ctx, err)
			}
			if interrupt == InterruptSuspend {
				logger.DebugContext(ctx, "suspend",
					"ip", vm.IP,
					"steps", vm.Steps,
				)
				if onSuspend != nil && !onSuspend(vm) {
					break
				}
			}
		}

		logger.DebugContext(ctx, "execute done",
			"steps", vm.Steps,
			"cursor", vm.Tape.Cursor(),
			"cells", vm.Tape.Len(),
		)
		return vm, nil
	}
}
