package vms

import (
	"fmt"

	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/streams"
)

// Run executes until the function ends, an error occurs, or a yield returns
// false. Errors are fatal: Run returns after yielding one. Calling Run again
// after a suspend resumes where it stopped.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	sinceSuspend := 0
	for {
		if v.Done() {
			if err := v.sink.Flush(); err != nil {
				yield(nil, err)
			}
			return
		}

		if v.SuspendEvery > 0 && sinceSuspend >= v.SuspendEvery {
			sinceSuspend = 0
			if err := v.sink.Flush(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(InterruptSuspend, nil) {
				return
			}
		}

		inst := v.Fun.Code[v.IP]
		v.IP++
		v.Steps++
		sinceSuspend++

		switch inst.Op() {

		case lowers.OpAdvance:
			v.Tape.AdvanceBy(inst.Arg())

		case lowers.OpRetreat:
			v.Tape.RetreatBy(inst.Arg())

		case lowers.OpAdd:
			v.Tape.Add(byte(inst.Arg()))

		case lowers.OpClear:
			v.Tape.Write(0)

		case lowers.OpOutput:
			if err := streams.Output(v.Tape, v.sink); err != nil {
				yield(nil, err)
				return
			}

		case lowers.OpInput:
			if err := streams.Input(v.Tape, v.source, v.sink, v.EOFPolicy); err != nil {
				_ = v.sink.Flush()
				yield(nil, err)
				return
			}

		case lowers.OpJumpZero:
			if v.Tape.Read() == 0 {
				v.IP += inst.Arg()
			}

		case lowers.OpJumpNonZero:
			if v.Tape.Read() != 0 {
				v.IP += inst.Arg()
			}

		default:
			yield(nil, fmt.Errorf("bad op at %d: %v", v.IP-1, inst))
			return
		}
	}
}
