package programs

type Kind uint8

const (
	KindInvalid Kind = iota
	KindAdvance
	KindRetreat
	KindIncrement
	KindDecrement
	KindOutput
	KindInput
	KindLoop
)

var kindChars = [...]byte{
	KindAdvance:   '>',
	KindRetreat:   '<',
	KindIncrement: '+',
	KindDecrement: '-',
	KindOutput:    '.',
	KindInput:     ',',
}

func (k Kind) String() string {
	switch k {
	case KindAdvance:
		return "advance"
	case KindRetreat:
		return "retreat"
	case KindIncrement:
		return "increment"
	case KindDecrement:
		return "decrement"
	case KindOutput:
		return "output"
	case KindInput:
		return "input"
	case KindLoop:
		return "loop"
	}
	return "invalid"
}

// Instruction is one node of the instruction tree. Body is set only for loops.
type Instruction struct {
	Kind Kind
	Body []Instruction
}

var (
	Advance   = Instruction{Kind: KindAdvance}
	Retreat   = Instruction{Kind: KindRetreat}
	Increment = Instruction{Kind: KindIncrement}
	Decrement = Instruction{Kind: KindDecrement}
	Output    = Instruction{Kind: KindOutput}
	Input     = Instruction{Kind: KindInput}
)

func Loop(body ...Instruction) Instruction {
	return Instruction{
		Kind: KindLoop,
		Body: body,
	}
}

func kindOf(b byte) Kind {
	switch b {
	case '>':
		return KindAdvance
	case '<':
		return KindRetreat
	case '+':
		return KindIncrement
	case '-':
		return KindDecrement
	case '.':
		return KindOutput
	case ',':
		return KindInput
	}
	return KindInvalid
}
