package emits

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/streams"
)

var ErrUnbalanced = errors.New("unbalanced jumps")

type Options struct {
	EOFPolicy streams.EOFPolicy
}

// runtime mirrors tapes.Tape: same growth policy, same shift on leftward growth.
var cTemplate = template.Must(template.New("c").Parse(`/* generated by bfc from {{.Name}}, level {{.Level}} */
#include <stdio.h>
#include <stdlib.h>
#include <string.h>

static unsigned char *storage = NULL;
static size_t length = 0;
static size_t origin = 0;
static long long cursor = 0;

static void ensure(void) {
	long long index = cursor + (long long)origin;
	if (index < 0) {
		size_t deficit = (size_t)(-index);
		unsigned char *grown = realloc(storage, length + deficit);
		if (grown == NULL) {
			abort();
		}
		memmove(grown + deficit, grown, length);
		memset(grown, 0, deficit);
		storage = grown;
		length += deficit;
		origin += deficit;
	} else if ((size_t)index >= length) {
		size_t want = (size_t)index + 1;
		unsigned char *grown = realloc(storage, want);
		if (grown == NULL) {
			abort();
		}
		memset(grown + length, 0, want - length);
		storage = grown;
		length = want;
	}
}

static unsigned char read_cell(void) {
	ensure();
	return storage[cursor + (long long)origin];
}

static void write_cell(unsigned char value) {
	ensure();
	storage[cursor + (long long)origin] = value;
}

static void input_cell(void) {
	int c;
	fflush(stdout);
	c = getchar();
	if (c == EOF) {
{{.OnEOF}}
		return;
	}
	write_cell((unsigned char)c);
}

int main(void) {
{{.Body}}	fflush(stdout);
	free(storage);
	return 0;
}
`))

func onEOF(policy streams.EOFPolicy) (string, error) {
	switch policy {
	case streams.EOFFail, "":
		return "\t\tfprintf(stderr, \"input exhausted\\n\");\n\t\texit(1);", nil
	case streams.EOFZero:
		return "\t\twrite_cell(0);", nil
	case streams.EOFKeep:
		return "\t\tensure();", nil
	case streams.EOFMax:
		return "\t\twrite_cell(255);", nil
	}
	return "", fmt.Errorf("%w: %q", streams.ErrBadEOFPolicy, policy)
}

// EmitC writes a self-contained C program equivalent to fn.
func EmitC(w io.Writer, fn *lowers.Function, options Options) error {
	eof, err := onEOF(options.EOFPolicy)
	if err != nil {
		return err
	}
	body, err := cBody(fn)
	if err != nil {
		return err
	}
	return cTemplate.Execute(w, map[string]any{
		"Name":  fn.Name,
		"Level": fn.Level,
		"OnEOF": eof,
		"Body":  body,
	})
}

func cBody(fn *lowers.Function) (string, error) {
	var sb strings.Builder
	depth := 1
	var opens []int
	for ip, inst := range fn.Code {
		if inst.Op() == lowers.OpJumpNonZero {
			if len(opens) == 0 {
				return "", fmt.Errorf("%w: jnz at %d", ErrUnbalanced, ip)
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			if open+1+fn.Code[open].Arg() != ip+1 || ip+1+inst.Arg() != open+1 {
				return "", fmt.Errorf("%w: jz at %d, jnz at %d", ErrUnbalanced, open, ip)
			}
			depth--
		}

		sb.WriteString(strings.Repeat("\t", depth))

		switch inst.Op() {
		case lowers.OpAdvance:
			fmt.Fprintf(&sb, "cursor += %d;\n", inst.Arg())
		case lowers.OpRetreat:
			fmt.Fprintf(&sb, "cursor -= %d;\n", inst.Arg())
		case lowers.OpAdd:
			fmt.Fprintf(&sb, "write_cell((unsigned char)(read_cell() + %d));\n", inst.Arg())
		case lowers.OpClear:
			sb.WriteString("write_cell(0);\n")
		case lowers.OpOutput:
			sb.WriteString("putchar(read_cell());\n")
		case lowers.OpInput:
			sb.WriteString("input_cell();\n")
		case lowers.OpJumpZero:
			sb.WriteString("while (read_cell() != 0) {\n")
			opens = append(opens, ip)
			depth++
		case lowers.OpJumpNonZero:
			sb.WriteString("}\n")
		default:
			return "", fmt.Errorf("bad op at %d: %v", ip, inst)
		}
	}
	if len(opens) > 0 {
		return "", fmt.Errorf("%w: jz at %d", ErrUnbalanced, opens[len(opens)-1])
	}
	return sb.String(), nil
}
