package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/reusee/bfc/emits"
	"github.com/reusee/bfc/sources"
	"github.com/reusee/bfc/syncs"
	"github.com/reusee/dscope"
)

// outputName derives a per-file output when several files are built at once.
func outputName(ref string, target emits.Target) string {
	base := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	switch target {
	case emits.TargetExecutable:
		return base
	case emits.TargetObject:
		return base + ".o"
	case emits.TargetAssembly:
		return base + ".s"
	}
	return base + ".c"
}

func compileAll(ctx context.Context, scope dscope.Scope, refs []string) error {
	if len(refs) > 1 && *outputFlag != "" {
		return errors.New("-o needs a single input file")
	}

	load := dscope.Get[sources.Load](scope)
	compile := dscope.Get[emits.Compile](scope)

	sem := syncs.NewSemaphore(runtime.NumCPU())
	errs := make([]error, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Go(func() {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				return
			}
			defer sem.Release()

			program, err := load(ctx, ref)
			if err != nil {
				errs[i] = err
				return
			}
			output := *outputFlag
			if len(refs) > 1 {
				output = outputName(ref, target)
			}
			if _, err := compile(ctx, program, target, output); err != nil {
				errs[i] = fmt.Errorf("%s: %w", ref, err)
			}
		})
	}
	wg.Wait()
	return errors.Join(errs...)
}
