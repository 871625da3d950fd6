// Package prove implements the prover glue: it builds a circuit from a
// CompiledProgram (lang/circuit) and binds a caller-supplied witness map
// to the circuit's public inputs, producing a ProofBundle ready to hand
// to an external proving backend. A witness entry not found among the
// circuit's public inputs is a fatal programmer error, so this
// implementation panics rather than returning an error.
package prove

import (
	"fmt"

	"github.com/mna/zkcalc/lang/ast"
	"github.com/mna/zkcalc/lang/circuit"
)

// ProofBundle is everything the external proving backend needs: the built
// circuit, a partial witness bound to its public inputs, and the order in
// which witness entries were consumed.
type ProofBundle struct {
	CircuitData circuit.CircuitData
	Witness     circuit.Witness
	InputOrder  []ast.Ident
}

// Prove builds the circuit for cp, then for every (ident, value) pair
// in witness binds value to the circuit's target for that public
// variable. newWitness constructs the backend's empty Witness (e.g.
// fieldsim.NewWitness). A witness entry naming an identifier that is
// not one of cp's public variables is a fatal programmer error and
// panics. A public input with no corresponding witness entry is not an
// error here; an incomplete witness is left for the downstream proving
// backend to reject.
//
// InputOrder is built by walking cp.PublicVars, the same deterministic
// order the circuit builder registered public inputs in, rather than
// ranging over witness directly: Go's map iteration order is randomized,
// and §4.8 makes input_order part of the bundle contract the downstream
// backend consumes.
func Prove(b circuit.Backend, newWitness func() circuit.Witness, cp *ast.CompiledProgram, witness map[ast.Ident]ast.Literal) (*ProofBundle, error) {
	targets, err := circuit.BuildWithTargets(b, cp)
	if err != nil {
		return nil, err
	}

	public := make(map[ast.Ident]bool, len(cp.PublicVars))
	for _, id := range cp.PublicVars {
		public[id] = true
	}
	for ident := range witness {
		if !public[ident] {
			panic(fmt.Sprintf("prove: witness entry %q is not a public input of this circuit", ident))
		}
	}

	pw := newWitness()
	order := make([]ast.Ident, 0, len(witness))
	for _, ident := range cp.PublicVars {
		lit, ok := witness[ident]
		if !ok {
			continue
		}
		t, _ := targets.PublicVarTarget(ident)
		pw.SetTarget(t, literalFieldElement(b, lit))
		order = append(order, ident)
	}

	return &ProofBundle{CircuitData: targets.Data, Witness: pw, InputOrder: order}, nil
}

func literalFieldElement(b circuit.Backend, lit ast.Literal) circuit.FieldElement {
	switch lit.Type {
	case ast.Field:
		return b.FieldFromI32(lit.FieldVal)
	case ast.Boolean:
		if lit.BoolVal {
			return b.FieldOne()
		}
		return b.FieldZero()
	default:
		panic("prove: unknown Literal type")
	}
}
