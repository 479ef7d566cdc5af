package streams

import (
	"errors"
	"fmt"
)

// EOFPolicy decides what an Input instruction does when the source is exhausted.
type EOFPolicy string

const (
	// EOFFail ends the run with ErrInputExhausted.
	EOFFail EOFPolicy = "fail"
	// EOFZero writes 0 to the current cell.
	EOFZero EOFPolicy = "zero"
	// EOFKeep leaves the current cell unchanged.
	EOFKeep EOFPolicy = "keep"
	// EOFMax writes 255, the C EOF value truncated to a byte.
	EOFMax EOFPolicy = "max"
)

var ErrInputExhausted = errors.New("input exhausted")

var ErrBadEOFPolicy = errors.New("bad eof policy")

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch p := EOFPolicy(str); p {
	case EOFFail, EOFZero, EOFKeep, EOFMax:
		return p, nil
	case "":
		return EOFFail, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadEOFPolicy, str)
}
