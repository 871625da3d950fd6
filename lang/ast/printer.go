package ast

import "github.com/kylelemons/godebug/pretty"

// printConfig controls how Dump renders a tree: multi-line (not compact),
// exported fields only.
var printConfig = &pretty.Config{
	Compact:           false,
	IncludeUnexported: false,
}

// Dump renders a Program as a human-readable tree, used by the CLI's parse
// command.
func Dump(p *Program) string {
	return printConfig.Sprint(p)
}

// DumpExpr renders a single Expr as a human-readable tree.
func DumpExpr(e Expr) string {
	return printConfig.Sprint(e)
}

// DumpCompiled renders a CompiledProgram as a human-readable tree.
func DumpCompiled(cp *CompiledProgram) string {
	return printConfig.Sprint(cp)
}
