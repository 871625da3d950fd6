package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	prog, err := parseFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}
	fmt.Fprintln(stdio.Stdout, ast.Dump(prog))
	return nil
}

func parseFile(path string) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.Parse(string(src))
}
