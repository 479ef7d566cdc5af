package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Positional sets the handler for arguments that name no command.
func Positional(fn func(arg string) error) {
	GlobalExecutor.Positional = fn
}

// Describe sets the usage text of a defined command.
func Describe(name string, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command %s", name))
	}
	command.Description = desc
}

func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
