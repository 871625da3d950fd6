package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zkcalc/lang/circuit"
	"github.com/mna/zkcalc/lang/circuit/fieldsim"
	"github.com/mna/zkcalc/lang/prove"
)

func (c *Cmd) Prove(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cp, err := compileFile(args[0])
	if err != nil {
		return printError(stdio, err)
	}
	witness, err := readWitness(args[1])
	if err != nil {
		return printError(stdio, err)
	}

	backend := fieldsim.New()
	newWitness := func() circuit.Witness { return fieldsim.NewWitness() }
	bundle, err := prove.Prove(backend, newWitness, cp, witness)
	if err != nil {
		return printError(stdio, err)
	}

	fmt.Fprintf(stdio.Stdout, "circuit built; %d witness value(s) bound: %v\n", len(bundle.InputOrder), bundle.InputOrder)
	return nil
}
