package emits

import (
	"context"

	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/lowers"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Compile lowers program and builds target at output. An empty output
// selects the target's default.
type Compile func(ctx context.Context, program *programs.Program, target Target, output string) (string, error)

func (Module) Compile(
	level lowers.Level,
	policy streams.EOFPolicy,
	compiler CCompiler,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, program *programs.Program, target Target, output string) (string, error) {
		ctx, _ = newSpan(ctx, "")
		fn, err := lowers.Lower(program, level)
		if err != nil {
			return "", logs.WrapSpan(ctx, err)
		}
		path, err := Build(ctx, fn, BuildOptions{
			Options: Options{
				EOFPolicy: policy,
			},
			Target:   target,
			Output:   output,
			Compiler: compiler,
			Optimize: level,
		})
		if err != nil {
			return "", logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "built",
			"program", program.Name,
			"output", path,
			"level", level,
			"compiler", compiler,
		)
		return path, nil
	}
}
