package programs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedClose = errors.New("unmatched ]")
	ErrUnclosedLoop   = errors.New("unclosed [")
)

// IsIncomplete reports whether err means more source could complete the program.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnclosedLoop)
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}

type Source struct {
	Name  string
	Lines []string
}

func NewSource(name string, content []byte) *Source {
	return &Source{
		Name:  name,
		Lines: strings.Split(string(content), "\n"),
	}
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column))

	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
