// Package fieldsim is a reference implementation of lang/circuit.Backend
// over the Goldilocks prime field (2^64 - 2^32 + 1), the same field
// plonky2's PoseidonGoldilocksConfig uses. No production Go
// zero-knowledge proving library is wired in, so this package exists to
// give lang/circuit.Backend a concrete, exercised implementation: it
// builds and evaluates a plain arithmetic-circuit IR rather than
// wrapping an external prover.
package fieldsim

import (
	"fmt"
	"math/bits"

	"github.com/mna/zkcalc/lang/circuit"
)

// Modulus is the Goldilocks prime 2^64 - 2^32 + 1.
const Modulus uint64 = 18446744069414584321

// Elem is a field element modulo Modulus.
type Elem uint64

func (e Elem) String() string { return fmt.Sprintf("%d", uint64(e)) }

func newElem(v uint64) Elem { return Elem(v % Modulus) }

func (e Elem) add(o Elem) Elem {
	s, carry := bits.Add64(uint64(e), uint64(o), 0)
	if carry != 0 || s >= Modulus {
		s -= Modulus
	}
	return Elem(s)
}

func (e Elem) sub(o Elem) Elem {
	d, borrow := bits.Sub64(uint64(e), uint64(o), 0)
	if borrow != 0 {
		d += Modulus
	}
	return Elem(d)
}

func (e Elem) mul(o Elem) Elem {
	hi, lo := bits.Mul64(uint64(e), uint64(o))
	_, rem := bits.Div64(hi%Modulus, lo, Modulus)
	return Elem(rem)
}

func (e Elem) neg() Elem {
	if e == 0 {
		return 0
	}
	return Elem(Modulus - uint64(e))
}

func (e Elem) pow(exp Elem) Elem {
	result := Elem(1)
	base := e
	n := uint64(exp)
	for n > 0 {
		if n&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
		n >>= 1
	}
	return result
}

// kind enumerates the node types of the IR a Backend builds.
type kind int

const (
	kConst kind = iota
	kAdd
	kSub
	kMul
	kExp
	kAnd
	kOr
	kIsEqual
	kSelect
	kVirtual
)

type node struct {
	kind       kind
	a, b, c    int // operand node indices, meaning depends on kind
	constValue Elem
	numBits    int
}

// Backend is a lang/circuit.Backend building a flat arithmetic-circuit IR.
type Backend struct {
	nodes        []node
	publicInputs []int
}

var _ circuit.Backend = (*Backend)(nil)

// New returns an empty Backend ready to be driven by lang/circuit.Build.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) push(n node) int {
	b.nodes = append(b.nodes, n)
	return len(b.nodes) - 1
}

func asElem(fe circuit.FieldElement) Elem {
	e, ok := fe.(Elem)
	if !ok {
		panic(fmt.Sprintf("fieldsim: foreign FieldElement %T", fe))
	}
	return e
}

func asIndex(t circuit.Target) int {
	i, ok := t.(int)
	if !ok {
		panic(fmt.Sprintf("fieldsim: foreign Target %T", t))
	}
	return i
}

func (b *Backend) Constant(fe circuit.FieldElement) circuit.Target {
	return b.push(node{kind: kConst, constValue: asElem(fe)})
}

func (b *Backend) Add(a, c circuit.Target) circuit.Target {
	return b.push(node{kind: kAdd, a: asIndex(a), b: asIndex(c)})
}

func (b *Backend) Sub(a, c circuit.Target) circuit.Target {
	return b.push(node{kind: kSub, a: asIndex(a), b: asIndex(c)})
}

func (b *Backend) Mul(a, c circuit.Target) circuit.Target {
	return b.push(node{kind: kMul, a: asIndex(a), b: asIndex(c)})
}

func (b *Backend) MulConst(fe circuit.FieldElement, t circuit.Target) circuit.Target {
	constIdx := b.push(node{kind: kConst, constValue: asElem(fe)})
	return b.push(node{kind: kMul, a: constIdx, b: asIndex(t)})
}

func (b *Backend) Exp(base, exp circuit.Target, numBits int) circuit.Target {
	return b.push(node{kind: kExp, a: asIndex(base), b: asIndex(exp), numBits: numBits})
}

func (b *Backend) And(a, c circuit.BoolTarget) circuit.BoolTarget {
	return b.push(node{kind: kAnd, a: asIndex(a.(circuit.Target)), b: asIndex(c.(circuit.Target))})
}

func (b *Backend) Or(a, c circuit.BoolTarget) circuit.BoolTarget {
	return b.push(node{kind: kOr, a: asIndex(a.(circuit.Target)), b: asIndex(c.(circuit.Target))})
}

func (b *Backend) IsEqual(a, c circuit.Target) circuit.BoolTarget {
	return b.push(node{kind: kIsEqual, a: asIndex(a), b: asIndex(c)})
}

func (b *Backend) Select(cond circuit.BoolTarget, a, c circuit.Target) circuit.Target {
	return b.push(node{kind: kSelect, a: asIndex(cond.(circuit.Target)), b: asIndex(a), c: asIndex(c)})
}

func (b *Backend) AddVirtualTarget() circuit.Target {
	return b.push(node{kind: kVirtual})
}

func (b *Backend) RegisterPublicInput(t circuit.Target) {
	b.publicInputs = append(b.publicInputs, asIndex(t))
}

func (b *Backend) Build() circuit.CircuitData {
	nodes := make([]node, len(b.nodes))
	copy(nodes, b.nodes)
	pub := make([]int, len(b.publicInputs))
	copy(pub, b.publicInputs)
	return &CircuitData{nodes: nodes, publicInputs: pub}
}

func (b *Backend) Bool(t circuit.Target) circuit.BoolTarget {
	return t
}

func (b *Backend) FieldFromU32(u uint32) circuit.FieldElement { return newElem(uint64(u)) }
func (b *Backend) FieldZero() circuit.FieldElement            { return Elem(0) }
func (b *Backend) FieldOne() circuit.FieldElement             { return Elem(1) }
func (b *Backend) FieldNegOne() circuit.FieldElement          { return Elem(1).neg() }

func (b *Backend) FieldFromI32(n int32) circuit.FieldElement {
	if n >= 0 {
		return newElem(uint64(n))
	}
	return newElem(uint64(-int64(n))).neg()
}

// CircuitData is the artifact fieldsim.Backend.Build returns: an immutable
// snapshot of the IR plus its public-input node indices, together with
// enough structure for Evaluate to compute the circuit's output from a
// witness without needing a real proving system.
type CircuitData struct {
	nodes        []node
	publicInputs []int
}

// PublicInputCount returns the number of registered public inputs,
// including the trailing output target lang/circuit.Build always
// registers last.
func (cd *CircuitData) PublicInputCount() int { return len(cd.publicInputs) }
