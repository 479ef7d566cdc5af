package main

import (
	"errors"
	"fmt"

	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/emits"
)

type Backend uint8

const (
	BackendCompile Backend = iota
	BackendInterpret
	BackendVM
)

var (
	backend = BackendCompile
	target  = emits.TargetExecutable
	// mode is the first of -run, -vm, -a, -c and -emit given
	mode string

	fileFlag     = cmds.Var[string]("-file")
	outputFlag   = cmds.Var[string]("-o")
	rawFlag      = cmds.Switch("-raw")
	tapFlag      = cmds.Switch("-tap")
	printFlag    = cmds.Switch("-print")
	disasmFlag   = cmds.Switch("-disasm")
	snapshotFlag = cmds.Var[string]("-snapshot")
	resumeFlag   = cmds.Var[string]("-resume")

	files []string
)

var ErrConflictingFlags = errors.New("conflicting flags")

func exclusive(name string) error {
	if mode != "" {
		return fmt.Errorf("%w: %s and %s", ErrConflictingFlags, mode, name)
	}
	mode = name
	return nil
}

func init() {
	cmds.Describe("-file", "program to load, a path, - for stdin, or an http(s) URL")
	cmds.Describe("-o", "name of the file to be generated")
	cmds.Describe("-raw", "put a terminal stdin in raw mode for byte at a time input")
	cmds.Describe("-tap", "open a starlark session on the final tape")
	cmds.Describe("-print", "print the parsed program and exit")
	cmds.Describe("-disasm", "print the lowered opcodes and exit")
	cmds.Describe("-snapshot", "with -vm, save the machine state here on interrupt")
	cmds.Describe("-resume", "continue a saved machine state, -eof and -suspend-every override the saved ones")

	cmds.Define("-run", cmds.Func(func() error {
		backend = BackendInterpret
		return exclusive("-run")
	}).Desc("interpret instead of compile").Alias("-r"))

	cmds.Define("-vm", cmds.Func(func() error {
		backend = BackendVM
		return exclusive("-vm")
	}).Desc("lower and run on the opcode machine"))

	cmds.Define("-a", cmds.Func(func() error {
		target = emits.TargetAssembly
		return exclusive("-a")
	}).Desc("emit assembly only"))

	cmds.Define("-c", cmds.Func(func() error {
		target = emits.TargetObject
		return exclusive("-c")
	}).Desc("compile and assemble only"))

	cmds.Define("-emit", cmds.Func(func(what string) error {
		switch what {
		case "c":
			target = emits.TargetSource
		case "asm":
			target = emits.TargetAssembly
		case "obj":
			target = emits.TargetObject
		case "exe":
			target = emits.TargetExecutable
		default:
			return fmt.Errorf("unknown emit target: %s", what)
		}
		return exclusive("-emit")
	}).Desc("emit c, asm, obj or exe"))

	cmds.Positional(func(arg string) error {
		files = append(files, arg)
		return nil
	})
}
