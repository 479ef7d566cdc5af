package programs

import "strings"

type Program struct {
	Name         string
	Instructions []Instruction
}

func New(name string, instructions ...Instruction) *Program {
	return &Program{
		Name:         name,
		Instructions: instructions,
	}
}

// String renders the canonical source, one character per instruction.
func (p *Program) String() string {
	var sb strings.Builder
	writeCompact(&sb, p.Instructions)
	return sb.String()
}

func writeCompact(sb *strings.Builder, instructions []Instruction) {
	for _, inst := range instructions {
		if inst.Kind == KindLoop {
			sb.WriteByte('[')
			writeCompact(sb, inst.Body)
			sb.WriteByte(']')
			continue
		}
		sb.WriteByte(kindChars[inst.Kind])
	}
}

// Indented renders loops on their own lines with bodies indented by two spaces.
func (p *Program) Indented() string {
	var sb strings.Builder
	writeIndented(&sb, p.Instructions, 0)
	return sb.String()
}

func writeIndented(sb *strings.Builder, instructions []Instruction, indent int) {
	pad := strings.Repeat(" ", indent)
	inLine := false
	for _, inst := range instructions {
		if inst.Kind == KindLoop {
			if inLine {
				sb.WriteByte('\n')
				inLine = false
			}
			sb.WriteString(pad)
			sb.WriteString("[\n")
			writeIndented(sb, inst.Body, indent+2)
			sb.WriteString(pad)
			sb.WriteString("]\n")
			continue
		}
		if !inLine {
			sb.WriteString(pad)
			inLine = true
		}
		sb.WriteByte(kindChars[inst.Kind])
	}
	if inLine {
		sb.WriteByte('\n')
	}
}

type Stats struct {
	Instructions int
	Loops        int
	MaxDepth     int
}

func (p *Program) Stats() (ret Stats) {
	var walk func([]Instruction, int)
	walk = func(instructions []Instruction, depth int) {
		ret.MaxDepth = max(ret.MaxDepth, depth)
		for _, inst := range instructions {
			ret.Instructions++
			if inst.Kind == KindLoop {
				ret.Loops++
				walk(inst.Body, depth+1)
			}
		}
	}
	walk(p.Instructions, 0)
	return
}
