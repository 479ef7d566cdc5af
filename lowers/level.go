package lowers

import (
	"errors"
	"fmt"
)

// Level selects the transformations applied while lowering. Every level keeps
// the observable behavior, including the final tape, of the tree interpreter.
type Level int

const (
	// LevelNone emits one op per instruction.
	LevelNone Level = 0
	// LevelFold merges runs of moves and runs of arithmetic.
	LevelFold Level = 1
	// LevelClear also turns single-step clear loops into OpClear.
	LevelClear Level = 2
	// LevelMax is accepted for command line compatibility and equals LevelClear.
	LevelMax Level = 3
)

var ErrBadLevel = errors.New("bad optimization level")

func (l Level) Validate() error {
	if l < LevelNone || l > LevelMax {
		return fmt.Errorf("%w: %d", ErrBadLevel, l)
	}
	return nil
}
