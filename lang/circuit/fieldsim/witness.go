package fieldsim

import (
	"fmt"

	"github.com/mna/zkcalc/lang/circuit"
)

// Witness is a partial assignment of field elements to virtual targets,
// satisfying lang/circuit.Witness.
type Witness struct {
	values map[int]Elem
}

var _ circuit.Witness = (*Witness)(nil)

// NewWitness returns an empty Witness.
func NewWitness() *Witness {
	return &Witness{values: make(map[int]Elem)}
}

// SetTarget assigns v to the virtual target t.
func (w *Witness) SetTarget(t circuit.Target, v circuit.FieldElement) {
	w.values[asIndex(t)] = asElem(v)
}

// Evaluate walks cd's IR, resolving kVirtual nodes from w, and returns the
// value of the circuit's final registered public input (the output target
// lang/circuit.Build always registers last). It exists so this backend is
// independently checkable in tests without a real proving system behind
// it.
func Evaluate(cd *CircuitData, w *Witness) (Elem, error) {
	if len(cd.publicInputs) == 0 {
		return 0, fmt.Errorf("fieldsim: circuit has no registered public inputs")
	}
	memo := make(map[int]Elem, len(cd.nodes))
	var eval func(i int) (Elem, error)
	eval = func(i int) (Elem, error) {
		if v, ok := memo[i]; ok {
			return v, nil
		}
		n := cd.nodes[i]
		var v Elem
		switch n.kind {
		case kConst:
			v = n.constValue
		case kVirtual:
			val, ok := w.values[i]
			if !ok {
				return 0, fmt.Errorf("fieldsim: virtual target %d has no witness value", i)
			}
			v = val
		case kAdd, kSub, kMul, kAnd, kOr:
			a, err := eval(n.a)
			if err != nil {
				return 0, err
			}
			b, err := eval(n.b)
			if err != nil {
				return 0, err
			}
			switch n.kind {
			case kAdd:
				v = a.add(b)
			case kSub:
				v = a.sub(b)
			case kMul, kAnd:
				v = a.mul(b)
			case kOr:
				v = a.add(b).sub(a.mul(b))
			}
		case kExp:
			a, err := eval(n.a)
			if err != nil {
				return 0, err
			}
			b, err := eval(n.b)
			if err != nil {
				return 0, err
			}
			v = a.pow(b)
		case kIsEqual:
			a, err := eval(n.a)
			if err != nil {
				return 0, err
			}
			b, err := eval(n.b)
			if err != nil {
				return 0, err
			}
			if a == b {
				v = Elem(1)
			} else {
				v = Elem(0)
			}
		case kSelect:
			cond, err := eval(n.a)
			if err != nil {
				return 0, err
			}
			thenV, err := eval(n.b)
			if err != nil {
				return 0, err
			}
			elseV, err := eval(n.c)
			if err != nil {
				return 0, err
			}
			if cond == 1 {
				v = thenV
			} else {
				v = elseV
			}
		default:
			return 0, fmt.Errorf("fieldsim: unknown node kind %d", n.kind)
		}
		memo[i] = v
		return v, nil
	}

	out := cd.publicInputs[len(cd.publicInputs)-1]
	return eval(out)
}
