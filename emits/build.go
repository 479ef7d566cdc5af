package emits

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/reusee/bfc/lowers"
)

// Target is what Build leaves on disk.
type Target int

const (
	TargetExecutable Target = iota
	TargetObject
	TargetAssembly
	TargetSource
)

func (t Target) DefaultOutput() string {
	switch t {
	case TargetObject:
		return "out.o"
	case TargetAssembly:
		return "out.s"
	case TargetSource:
		return "out.c"
	}
	return "a.out"
}

// CCompiler is the C compiler command used for object files and linking.
type CCompiler string

const DefaultCCompiler CCompiler = "cc"

type BuildOptions struct {
	Options
	Target   Target
	Output   string
	Compiler CCompiler
	// Optimize is passed to the C compiler as -O<n>.
	Optimize lowers.Level
}

// Build emits C for fn and, depending on the target, compiles or links it.
func Build(ctx context.Context, fn *lowers.Function, options BuildOptions) (string, error) {
	output := options.Output
	if output == "" {
		output = options.Target.DefaultOutput()
	}

	src := new(bytes.Buffer)
	if err := EmitC(src, fn, options.Options); err != nil {
		return "", err
	}

	if options.Target == TargetSource {
		if err := os.WriteFile(output, src.Bytes(), 0644); err != nil {
			return "", fmt.Errorf("write %s: %w", output, err)
		}
		return output, nil
	}

	dir, err := os.MkdirTemp("", "bfc-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)
	srcPath := filepath.Join(dir, "main.c")
	if err := os.WriteFile(srcPath, src.Bytes(), 0644); err != nil {
		return "", err
	}

	compiler := options.Compiler
	if compiler == "" {
		compiler = DefaultCCompiler
	}
	args := []string{
		fmt.Sprintf("-O%d", options.Optimize),
		"-o", output,
	}
	switch options.Target {
	case TargetObject:
		args = append(args, "-c")
	case TargetAssembly:
		args = append(args, "-S")
	}
	args = append(args, srcPath)

	cmd := exec.CommandContext(ctx, string(compiler), args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w: %s", compiler, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return output, nil
}
