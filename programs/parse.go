package programs

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Parse scans source in a single pass. The eight command bytes are
// significant; every other byte is ignored.
func Parse(name string, source io.Reader) (*Program, error) {
	content, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseBytes(name, content)
}

func ParseString(name string, source string) (*Program, error) {
	return ParseBytes(name, []byte(source))
}

type openLoop struct {
	pos  Pos
	body []Instruction
}

func ParseBytes(name string, content []byte) (*Program, error) {
	src := NewSource(name, content)
	pos := Pos{
		Source: src,
		Line:   1,
		Column: 1,
	}

	// explicit stack so nesting depth is not bounded by the goroutine stack
	var current []Instruction
	var stack []openLoop

	for _, b := range content {
		switch b {

		case '[':
			stack = append(stack, openLoop{
				pos:  pos,
				body: current,
			})
			current = nil

		case ']':
			if len(stack) == 0 {
				return nil, WithPos(ErrUnmatchedClose, pos)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			current = append(top.body, Loop(current...))

		default:
			if kind := kindOf(b); kind != KindInvalid {
				current = append(current, Instruction{Kind: kind})
			}
		}

		switch {
		case b == '\n':
			pos.Line++
			pos.Column = 1
		case utf8.RuneStart(b):
			pos.Column++
		}
	}

	if len(stack) > 0 {
		return nil, WithPos(ErrUnclosedLoop, stack[len(stack)-1].pos)
	}

	return New(name, current...), nil
}
