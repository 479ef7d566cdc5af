package lowers

import (
	"fmt"
	"strings"
)

type Function struct {
	Name  string
	Level Level
	Code  []OpCode
}

// Disassemble renders one instruction per line, prefixed by its index.
func (f *Function) Disassemble() string {
	var sb strings.Builder
	for i, op := range f.Code {
		fmt.Fprintf(&sb, "%04d %s\n", i, op)
	}
	return sb.String()
}
