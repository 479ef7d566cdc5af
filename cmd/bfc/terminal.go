package main

import (
	"bufio"
	"os"

	"golang.org/x/term"
)

// withTerminal buffers stdout and, with -raw, reads stdin byte by byte
// instead of line by line.
func withTerminal(fn func(stdout *bufio.Writer) error) (err error) {
	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		if e := stdout.Flush(); e != nil && err == nil {
			err = e
		}
	}()

	fd := int(os.Stdin.Fd())
	if *rawFlag && term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, state)
	}

	return fn(stdout)
}
