package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/checker"
	"github.com/mna/zkcalc/lang/compiler"
)

func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cp, err := compileFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}

	if c.Dump {
		data, err := cp.MarshalJSON()
		if err != nil {
			return printError(stdio, err)
		}
		fmt.Fprintln(stdio.Stdout, string(data))
		return nil
	}

	fmt.Fprintln(stdio.Stdout, ast.DumpCompiled(cp))
	return nil
}

func compileFile(path string) (*ast.CompiledProgram, error) {
	prog, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := checker.CheckTypes(prog); err != nil {
		return nil, err
	}
	return compiler.Compile(prog)
}
