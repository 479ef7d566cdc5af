package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/bfc/bfconfigs"
	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/debugs"
	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/modes"
	"github.com/reusee/bfc/sources"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/tapes"
	"github.com/reusee/bfc/vms"
	"github.com/reusee/bfc/vars"
	"github.com/reusee/dscope"
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		ctx context.Context,
		logger logs.Logger,
	) {
		err = run(ctx, scope)
		if err != nil {
			logger.Debug("exit", "error", err)
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// interruptible turns SIGINT into a cancelled context. Only paths that stop
// on cancellation install it; elsewhere SIGINT keeps killing the process.
func interruptible(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

func run(ctx context.Context, scope dscope.Scope) error {
	policy := dscope.Get[streams.EOFPolicy](scope)
	if _, err := streams.ParseEOFPolicy(string(policy)); err != nil {
		return err
	}
	level := dscope.Get[lowers.Level](scope)
	if err := level.Validate(); err != nil {
		return err
	}

	if *resumeFlag != "" {
		ctx, stop := interruptible(ctx)
		defer stop()
		return resume(ctx, scope, *resumeFlag)
	}

	refs := files
	if *fileFlag != "" {
		refs = append([]string{*fileFlag}, refs...)
	}
	if len(refs) == 0 {
		cmds.GlobalExecutor.PrintUsage()
		return errors.New("no input file")
	}
	if backend == BackendCompile && !*printFlag && !*disasmFlag {
		ctx, stop := interruptible(ctx)
		defer stop()
		return compileAll(ctx, scope, refs)
	}
	if len(refs) > 1 {
		return errors.New("only one program can be run at a time")
	}

	program, err := dscope.Get[sources.Load](scope)(ctx, refs[0])
	if err != nil {
		return err
	}

	switch {

	case *printFlag:
		_, err := fmt.Print(program.Indented())
		return err

	case *disasmFlag:
		fn, err := lowers.Lower(program, level)
		if err != nil {
			return err
		}
		_, err = fmt.Print(fn.Disassemble())
		return err

	}

	switch backend {

	case BackendInterpret:
		return withTerminal(func(stdout *bufio.Writer) error {
			tape, err := dscope.Get[interps.Interpret](scope)(ctx, program, nil, os.Stdin, stdout)
			return tapAfter(ctx, scope, tape, err)
		})

	case BackendVM:
		if *snapshotFlag != "" {
			var stop context.CancelFunc
			ctx, stop = interruptible(ctx)
			defer stop()
			if dscope.Get[vms.SuspendEvery](scope) == 0 {
				// interrupts are only noticed at suspend points
				scope = scope.Fork(dscope.Provide(DefaultSuspendEvery))
			}
		}
		return withTerminal(func(stdout *bufio.Writer) error {
			vm, err := dscope.Get[vms.Execute](scope)(ctx, program, nil, os.Stdin, stdout, func(*vms.VM) bool {
				return ctx.Err() == nil
			})
			if vm == nil {
				return err
			}
			if err != nil {
				return tapAfter(ctx, scope, vm.Tape, err)
			}
			if !vm.Done() {
				return suspend(vm, *snapshotFlag)
			}
			return tapAfter(ctx, scope, vm.Tape, nil)
		})

	}

	return nil
}

const DefaultSuspendEvery vms.SuspendEvery = 1 << 16

func tapAfter(ctx context.Context, scope dscope.Scope, tape *tapes.Tape, err error) error {
	if *tapFlag && tape != nil {
		dscope.Get[debugs.Tap](scope)(ctx, "tape", debugs.TapeGlobals(tape))
	}
	return err
}

func suspend(vm *vms.VM, path string) error {
	if path == "" {
		return errors.New("interrupted")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := vm.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return fmt.Errorf("interrupted, state saved to %s", path)
}

func resume(ctx context.Context, scope dscope.Scope, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	vm := vms.NewVM(nil, nil, nil, nil, "")
	if err := vm.Restore(f); err != nil {
		return err
	}
	overrideResumed(vm, dscope.Get[vms.SuspendEvery](scope), bfconfigs.EOFFlag())
	logger := dscope.Get[logs.Logger](scope)
	logger.InfoContext(ctx, "resume",
		"program", vm.Fun.Name,
		"ip", vm.IP,
		"eof", vm.EOFPolicy,
		"steps", vm.Steps,
	)

	return withTerminal(func(stdout *bufio.Writer) error {
		vm.Attach(os.Stdin, stdout)
		for interrupt, err := range vm.Run {
			if err != nil {
				return tapAfter(ctx, scope, vm.Tape, err)
			}
			if interrupt == vms.InterruptSuspend && ctx.Err() != nil {
				return suspend(vm, vars.FirstNonZero(*snapshotFlag, path))
			}
		}
		return tapAfter(ctx, scope, vm.Tape, nil)
	})
}

// overrideResumed applies command line settings to a restored machine. The
// saved EOF policy is kept unless -eof is given, config files do not apply.
func overrideResumed(vm *vms.VM, every vms.SuspendEvery, policy streams.EOFPolicy) {
	if every > 0 {
		vm.SuspendEvery = int(every)
	} else if vm.SuspendEvery == 0 {
		vm.SuspendEvery = int(DefaultSuspendEvery)
	}
	if policy != "" {
		vm.EOFPolicy = policy
	}
}
