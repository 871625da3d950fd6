package ast

// Program is an ordered sequence of declarations followed by a final
// expression. A Program value built by lang/checker.NewProgram is
// guaranteed to satisfy four invariants: unique binder identifiers,
// topologically sorted decls, an acyclic let-binding dependency graph,
// and no free identifier left undeclared. Program itself is a plain
// data holder — it does not re-validate those invariants.
type Program struct {
	Decls []Decl
	Expr  Expr
}

// PublicVarDecls returns, in declaration order, the PublicVar declarations in
// p. Grounded on the original source's Program::public_variable_decls.
func (p *Program) PublicVarDecls() []*PublicVar {
	var out []*PublicVar
	for _, d := range p.Decls {
		if pv, ok := d.(*PublicVar); ok {
			out = append(out, pv)
		}
	}
	return out
}

// Lookup returns the declaration binding name, if any. Grounded on the
// original source's find_declaration.
func (p *Program) Lookup(name Ident) (Decl, bool) {
	for _, d := range p.Decls {
		if d.Identifier() == name {
			return d, true
		}
	}
	return nil, false
}

// Clone deep-copies p.
func (p *Program) Clone() *Program {
	decls := make([]Decl, len(p.Decls))
	for i, d := range p.Decls {
		decls[i] = CloneDecl(d)
	}
	return &Program{Decls: decls, Expr: Clone(p.Expr)}
}

// CompiledProgram is the output of the compiler gate (lang/compiler): a
// normal-form expression (every let-binding inlined, constants folded)
// together with the ordered list of public variables it may legally
// reference. Every free variable of Expr is guaranteed to be in PublicVars.
type CompiledProgram struct {
	PublicVars []Ident
	Expr       Expr
}
