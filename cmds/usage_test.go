package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()
}

func TestWriteUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-run", Func(func() {}).Desc("interpret the program").Alias("-r"))
	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "-r, -run\tinterpret the program") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "--help, -h, -help, help\tprint this usage") {
		t.Fatalf("got %s", out)
	}
}
