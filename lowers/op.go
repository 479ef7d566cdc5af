package lowers

import "fmt"

// OpCode packs an operation in the low byte and a signed argument above it.
type OpCode uint32

const (
	OpAdvance OpCode = iota + 1
	OpRetreat
	OpAdd
	OpOutput
	OpInput
	OpJumpZero
	OpJumpNonZero
	OpClear
)

// MaxArg bounds the magnitude of an argument.
const MaxArg = 1<<23 - 1

func (o OpCode) With(arg int) OpCode {
	return o | (OpCode(arg) << 8)
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(int32(o) >> 8)
}

func (o OpCode) String() string {
	switch o.Op() {
	case OpAdvance:
		return fmt.Sprintf("advance %d", o.Arg())
	case OpRetreat:
		return fmt.Sprintf("retreat %d", o.Arg())
	case OpAdd:
		return fmt.Sprintf("add %d", o.Arg())
	case OpOutput:
		return "output"
	case OpInput:
		return "input"
	case OpJumpZero:
		return fmt.Sprintf("jz %+d", o.Arg())
	case OpJumpNonZero:
		return fmt.Sprintf("jnz %+d", o.Arg())
	case OpClear:
		return "clear"
	}
	return fmt.Sprintf("op(%d)", uint32(o))
}
