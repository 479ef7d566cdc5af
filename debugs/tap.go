package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/bfc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark session on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		dict, err := toStringDict(globals)
		if err != nil {
			logger.ErrorContext(ctx, "tap: "+what, "error", err)
			return
		}
		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, dict)
	}
}

// Eval evaluates one starlark expression against globals.
func Eval(expr string, globals map[string]any) (starlark.Value, error) {
	dict, err := toStringDict(globals)
	if err != nil {
		return nil, err
	}
	thread := &starlark.Thread{
		Name: "eval",
	}
	value, err := starlark.EvalOptions(fileOptions, thread, "tap", expr, dict)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", expr, err)
	}
	return value, nil
}
