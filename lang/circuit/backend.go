// Package circuit implements the circuit builder: it walks a
// CompiledProgram's expression tree and drives an external circuit
// backend to produce a single output target, registering public inputs
// along the way. The Backend interface mirrors the shape of a plonky2
// CircuitBuilder (add_virtual_target, register_public_input, and so on).
// No production Go zero-knowledge proving library is wired in, so
// Backend stays a plain interface with lang/circuit/fieldsim as an
// in-repo reference implementation, rather than a stand-in for a
// missing third-party module.
package circuit

import "fmt"

// FieldElement is an opaque field-element value a Backend knows how to
// construct from a non-negative u32 and negate/add/multiply internally.
// Concrete backends define their own underlying representation; the
// builder never inspects one directly; it only constructs them via
// FieldFromI32, FieldZero, FieldOne and FieldNegOne.
type FieldElement interface {
	fmt.Stringer
}

// Target is an opaque handle into a Backend's circuit: a wire that may be
// constant, a virtual (unassigned) input, or the result of a gate.
type Target interface{}

// BoolTarget is a Target known (by the caller's contract, not by
// construction) to carry only 0/1 values.
type BoolTarget interface{}

// CircuitData is the artifact a Backend's Build produces: whatever the
// concrete backend needs downstream to generate and verify proofs against
// this circuit.
type CircuitData interface{}

// Witness is a Backend's partial-witness assignment, populated via
// SetTarget ahead of proving.
type Witness interface {
	SetTarget(t Target, v FieldElement)
}

// Backend is the external circuit API contract. A concrete
// implementation owns a native field-element type wherever FieldElement
// and Target are used as opaque handles into it.
type Backend interface {
	// Constant returns a Target fixed to the given field element.
	Constant(fe FieldElement) Target
	// Add returns a Target for a+b.
	Add(a, b Target) Target
	// Sub returns a Target for a-b.
	Sub(a, b Target) Target
	// Mul returns a Target for a*b.
	Mul(a, b Target) Target
	// MulConst returns a Target for fe*t.
	MulConst(fe FieldElement, t Target) Target
	// Exp returns a Target for base^exp, constrained using a bit-width hint
	// on the exponent.
	Exp(base, exp Target, numBits int) Target
	// And returns a BoolTarget for a&&b, without re-constraining either
	// operand to be boolean.
	And(a, b BoolTarget) BoolTarget
	// Or returns a BoolTarget for a||b, without re-constraining either
	// operand to be boolean.
	Or(a, b BoolTarget) BoolTarget
	// IsEqual returns a BoolTarget that is 1 iff a==b.
	IsEqual(a, b Target) BoolTarget
	// Select returns a Target equal to a if cond is 1, else b.
	Select(cond BoolTarget, a, b Target) Target
	// AddVirtualTarget allocates a new, unassigned circuit wire.
	AddVirtualTarget() Target
	// RegisterPublicInput marks t as a public input of the circuit, in the
	// order it is called.
	RegisterPublicInput(t Target)
	// Build finalises the circuit and returns its CircuitData.
	Build() CircuitData

	// Bool adapts a Target as a BoolTarget without re-constraining it: the
	// circuit's soundness depends on callers only ever supplying 0/1
	// witness values for a target used this way.
	Bool(t Target) BoolTarget

	// FieldFromU32 constructs a field element from a non-negative u32.
	FieldFromU32(u uint32) FieldElement
	// FieldZero, FieldOne and FieldNegOne return the backend's additive
	// identity, multiplicative identity and additive inverse of one.
	FieldZero() FieldElement
	FieldOne() FieldElement
	FieldNegOne() FieldElement
	// FieldFromI32 constructs a field element for n: sign(n)*|n| in the
	// native field, negative integers mapping to the additive inverse.
	// Every concrete field has an internal notion of negation even though
	// FieldElement stays opaque to callers, so backends implement this
	// directly rather than the builder reconstructing it awkwardly out of
	// MulConst/Constant Targets.
	FieldFromI32(n int32) FieldElement
}
