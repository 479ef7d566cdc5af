package lowers

import (
	"errors"
	"fmt"

	"github.com/reusee/bfc/programs"
)

var ErrTooLarge = errors.New("loop too large to lower")

type compiler struct {
	level Level
	code  []OpCode
}

func Lower(program *programs.Program, level Level) (*Function, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	c := &compiler{
		level: level,
	}
	if err := c.compileSeq(program.Instructions); err != nil {
		return nil, err
	}
	return &Function{
		Name:  program.Name,
		Level: level,
		Code:  c.code,
	}, nil
}

func (c *compiler) emit(op OpCode) {
	c.code = append(c.code, op)
}

func (c *compiler) currentIP() int {
	return len(c.code)
}

// patchJump sets the jump at ip to land on target.
func (c *compiler) patchJump(ip int, target int) error {
	offset := target - ip - 1
	if offset > MaxArg || offset < -MaxArg {
		return fmt.Errorf("%w: offset %d", ErrTooLarge, offset)
	}
	op := c.code[ip].Op()
	c.code[ip] = op.With(offset)
	return nil
}

func (c *compiler) compileSeq(instructions []programs.Instruction) error {
	for i := 0; i < len(instructions); {
		inst := instructions[i]

		switch inst.Kind {

		case programs.KindAdvance, programs.KindRetreat:
			if c.level < LevelFold {
				if inst.Kind == programs.KindAdvance {
					c.emit(OpAdvance.With(1))
				} else {
					c.emit(OpRetreat.With(1))
				}
				i++
				continue
			}
			net := 0
			for ; i < len(instructions); i++ {
				if k := instructions[i].Kind; k == programs.KindAdvance {
					net++
				} else if k == programs.KindRetreat {
					net--
				} else {
					break
				}
			}
			c.emitMove(net)

		case programs.KindIncrement, programs.KindDecrement:
			if c.level < LevelFold {
				if inst.Kind == programs.KindIncrement {
					c.emit(OpAdd.With(1))
				} else {
					c.emit(OpAdd.With(0xff))
				}
				i++
				continue
			}
			var delta byte
			for ; i < len(instructions); i++ {
				if k := instructions[i].Kind; k == programs.KindIncrement {
					delta++
				} else if k == programs.KindDecrement {
					delta--
				} else {
					break
				}
			}
			// a zero delta still touches the cell and may grow the tape
			c.emit(OpAdd.With(int(delta)))

		case programs.KindOutput:
			c.emit(OpOutput)
			i++

		case programs.KindInput:
			c.emit(OpInput)
			i++

		case programs.KindLoop:
			if c.level >= LevelClear && isClearLoop(inst) {
				c.emit(OpClear)
				i++
				continue
			}
			start := c.currentIP()
			c.emit(OpJumpZero)
			if err := c.compileSeq(inst.Body); err != nil {
				return err
			}
			end := c.currentIP()
			c.emit(OpJumpNonZero)
			if err := c.patchJump(start, end+1); err != nil {
				return err
			}
			if err := c.patchJump(end, start+1); err != nil {
				return err
			}
			i++

		default:
			return fmt.Errorf("bad instruction: %v", inst.Kind)
		}
	}
	return nil
}

func (c *compiler) emitMove(net int) {
	for net > 0 {
		n := min(net, MaxArg)
		c.emit(OpAdvance.With(n))
		net -= n
	}
	for net < 0 {
		n := min(-net, MaxArg)
		c.emit(OpRetreat.With(n))
		net += n
	}
}

func isClearLoop(inst programs.Instruction) bool {
	if len(inst.Body) != 1 {
		return false
	}
	k := inst.Body[0].Kind
	return k == programs.KindIncrement || k == programs.KindDecrement
}
