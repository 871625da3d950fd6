package ast

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FreeVars returns the set of identifiers referenced by e, each listed once,
// in the order they are first encountered during a pre-order walk.
func FreeVars(e Expr) []Ident {
	var order []Ident
	seen := make(map[Ident]bool)
	Walk(freeVarVisitor{seen: seen, order: &order}, e)
	return order
}

type freeVarVisitor struct {
	seen  map[Ident]bool
	order *[]Ident
}

func (f freeVarVisitor) Visit(e Expr) Visitor {
	if v, ok := e.(*VariableExpr); ok {
		if !f.seen[v.Ident] {
			f.seen[v.Ident] = true
			*f.order = append(*f.order, v.Ident)
		}
	}
	return f
}

// SortedIdents returns a deduplicated, sorted copy of idents, used when a
// diagnostic needs to report a *set* of identifiers deterministically.
func SortedIdents(idents []Ident) []Ident {
	set := make(map[Ident]struct{}, len(idents))
	for _, id := range idents {
		set[id] = struct{}{}
	}
	out := maps.Keys(set)
	slices.Sort(out)
	return out
}
