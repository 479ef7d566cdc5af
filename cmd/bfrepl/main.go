package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/debugs"
	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/modes"
	"github.com/reusee/bfc/programs"
	"github.com/reusee/dscope"
)

const (
	promptMain = "bf> "
	promptCont = "... "
)

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		ctx context.Context,
		interpret interps.Interpret,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		session := NewSession(interpret, tap)
		stdout := bufio.NewWriter(os.Stdout)

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		historyPath := getHistoryPath()
		if historyPath != "" {
			if f, err := os.Open(historyPath); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}

		for {
			code, ok := readByParseProbe(line)
			if !ok {
				fmt.Println()
				break
			}
			if strings.TrimSpace(code) == "" {
				continue
			}
			line.AppendHistory(strings.ReplaceAll(code, "\n", " "))

			if strings.HasPrefix(strings.TrimSpace(code), ":") {
				exit, err := session.Command(ctx, code, stdout)
				if err == nil {
					err = stdout.Flush()
				}
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				if exit {
					break
				}
				continue
			}

			err := session.Eval(ctx, code, stdout)
			if ferr := stdout.Flush(); err == nil {
				err = ferr
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
		}

		if historyPath != "" {
			if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
				logger.Warn("create history dir error", "err", err)
			} else if f, err := os.Create(historyPath); err != nil {
				logger.Warn("create history file error", "err", err)
			} else {
				line.WriteHistory(f)
				f.Close()
			}
		}
	})
}

func getHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bfc", "repl-history")
}

// readByParseProbe keeps reading lines while the buffer holds an unclosed loop.
func readByParseProbe(line *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		text, err := line.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// ctrl-c drops the pending lines
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := programs.ParseString("", src); programs.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
