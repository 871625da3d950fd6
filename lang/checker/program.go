// Package checker implements the Program smart constructor (dedup, cycle
// and unbound-identifier detection plus topological sort) and the
// two-type type checker.
//
// The smart constructor runs a plain Kahn's-algorithm FIFO queue so that
// the tie-break rule (zero-dependency declarations keep their original
// relative order; dependents follow in topological order) falls out of
// the queue discipline directly instead of needing a corrective
// re-sort. Bookkeeping (declared/bound identifier sets) uses
// github.com/dolthub/swiss maps for block-scope-style lookups.
package checker

import (
	"github.com/dolthub/swiss"
	"github.com/mna/zkcalc/lang/ast"
)

// NewProgram is the §4.2 Program smart constructor: it validates decls and
// expr and returns a Program whose declarations are deduplicated,
// topologically sorted and fully resolved, or one of
// *ast.DuplicateIdentifierError, *ast.CyclicDependencyError,
// *ast.UnboundIdentifierError.
func NewProgram(decls []ast.Decl, expr ast.Expr) (*ast.Program, error) {
	if err := rejectDuplicates(decls); err != nil {
		return nil, err
	}

	sorted, err := sortDecls(decls)
	if err != nil {
		return nil, err
	}

	if err := checkBound(sorted, expr); err != nil {
		return nil, err
	}

	return &ast.Program{Decls: sorted, Expr: expr}, nil
}

// rejectDuplicates implements §4.2 step 1.
func rejectDuplicates(decls []ast.Decl) error {
	seen := swiss.NewMap[ast.Ident, struct{}](uint32(len(decls)))
	for _, d := range decls {
		id := d.Identifier()
		if _, ok := seen.Get(id); ok {
			return &ast.DuplicateIdentifierError{Ident: id, Span: d.Span()}
		}
		seen.Put(id, struct{}{})
	}
	return nil
}

// sortDecls implements §4.2 steps 2-4: build the y->x dependency graph (y
// appears free in x's body), then a Kahn's-algorithm toposort whose FIFO
// queue is seeded, in original order, with every zero-dependency
// declaration. Because newly-unblocked declarations are always appended to
// the back of the queue, the originally-zero-dependency declarations always
// dequeue first and in their original relative order, with dependents
// following in a valid topological order.
func sortDecls(decls []ast.Decl) ([]ast.Decl, error) {
	byIdent := swiss.NewMap[ast.Ident, ast.Decl](uint32(len(decls)))
	indegree := swiss.NewMap[ast.Ident, int](uint32(len(decls)))
	dependents := swiss.NewMap[ast.Ident, []ast.Ident](uint32(len(decls)))

	for _, d := range decls {
		id := d.Identifier()
		byIdent.Put(id, d)
		if _, ok := indegree.Get(id); !ok {
			indegree.Put(id, 0)
		}
	}
	for _, d := range decls {
		id := d.Identifier()
		deps := d.Dependencies()
		n, _ := indegree.Get(id)
		n += len(deps)
		indegree.Put(id, n)
		for _, dep := range deps {
			ds, _ := dependents.Get(dep)
			ds = append(ds, id)
			dependents.Put(dep, ds)
		}
	}

	var queue []ast.Ident
	for _, d := range decls {
		id := d.Identifier()
		n, _ := indegree.Get(id)
		if n == 0 {
			queue = append(queue, id)
		}
	}

	var sorted []ast.Decl
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		d, _ := byIdent.Get(id)
		sorted = append(sorted, d)

		for _, dep := range mustGet(dependents, id) {
			n, _ := indegree.Get(dep)
			n--
			indegree.Put(dep, n)
			if n == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(sorted) != len(decls) {
		// Some declaration's indegree never reached zero. That's either a
		// genuine cycle among declared identifiers, or a dependency on an
		// identifier nothing declares at all (which never entered the queue
		// and so never unblocks anything depending on it). Distinguish the
		// two: an unresolved decl naming an undeclared dependency is
		// UnboundIdentifier, not CyclicDependency.
		for _, d := range decls {
			id := d.Identifier()
			if n, _ := indegree.Get(id); n == 0 {
				continue
			}
			for _, dep := range d.Dependencies() {
				if _, ok := byIdent.Get(dep); !ok {
					return nil, &ast.UnboundIdentifierError{Ident: dep, Span: d.Span()}
				}
			}
			return nil, &ast.CyclicDependencyError{Ident: id, Span: d.Span()}
		}
	}
	return sorted, nil
}

func mustGet(m *swiss.Map[ast.Ident, []ast.Ident], k ast.Ident) []ast.Ident {
	v, _ := m.Get(k)
	return v
}

// checkBound implements §4.2 step 5: walk the sorted declarations
// left-to-right, tracking bound identifiers, and reject any declaration (or
// the final expression) whose free variables escape that set. sortDecls
// already guarantees every declaration's own dependencies resolve, so in
// practice this is the check that catches the final expression referencing
// an identifier nothing ever declares.
func checkBound(decls []ast.Decl, expr ast.Expr) error {
	bound := swiss.NewMap[ast.Ident, struct{}](uint32(len(decls)))
	for _, d := range decls {
		for _, dep := range d.Dependencies() {
			if _, ok := bound.Get(dep); !ok {
				return &ast.UnboundIdentifierError{Ident: dep, Span: d.Span()}
			}
		}
		bound.Put(d.Identifier(), struct{}{})
	}
	for _, v := range ast.FreeVars(expr) {
		if _, ok := bound.Get(v); !ok {
			return &ast.UnboundIdentifierError{Ident: v, Span: expr.Span()}
		}
	}
	return nil
}
