package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zkcalc/lang/checker"
)

func (c *Cmd) Typecheck(ctx context.Context, stdio mainer.Stdio, args []string) error {
	prog, err := parseFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}
	ty, err := checker.CheckTypes(prog)
	if err != nil {
		return printError(stdio, err)
	}
	fmt.Fprintf(stdio.Stdout, "%s: %s\n", args[0], ty)
	return nil
}
