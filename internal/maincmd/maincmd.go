// Package maincmd is the thin CLI driver: a program file path, a
// witness file for the interp and prove commands, and a --dump flag that
// makes the compile command emit the compiled program as JSON instead of
// its pretty-printed form. A Cmd struct carries `flag:"..."` tags
// dispatched through mainer.Parser, with one exported method per
// subcommand found by reflection in buildCmds.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "zkcalc"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> <path> [<witness-path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> <path> [<witness-path>]
       %[1]s -h|--help
       %[1]s -v|--version

Compiler, oracle and proving-glue driver for the %[1]s arithmetic-circuit
language.

The <command> can be one of:
       parse                     Parse <path> and print the resulting
                                 program (after the smart constructor's
                                 dedup/cycle/unbound checks and topological
                                 sort).
       typecheck                 Parse and type-check <path>.
       compile                   Parse, type-check and run the compiler
                                 gate, printing the pretty-printed
                                 CompiledProgram (JSON with --dump).
       interp                    Parse, compile and interpret <path>
                                 against the witness values in
                                 <witness-path>, printing the result.
       prove                     Parse, compile and build a circuit and
                                 proof bundle for <path>, bound to the
                                 witness values in <witness-path>.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --dump                    For the <compile> command, emit the
                                 serialised CompiledProgram JSON instead of
                                 its pretty-printed form.

More information on the %[1]s repository:
       https://github.com/mna/zkcalc
`, binName)
)

// Cmd is the CLI entry point, its flags, and its subcommand dispatch
// table.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	Dump    bool `flag:"dump"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: a program path is required", cmdName)
	}

	if (cmdName == "interp" || cmdName == "prove") && len(c.args) < 3 {
		return fmt.Errorf("%s: a witness path is required", cmdName)
	}

	if c.flags["dump"] && cmdName != "compile" {
		return fmt.Errorf("%s: invalid flag 'dump'", cmdName)
	}

	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// valid commands are those that take a mainer.Stdio and a slice of
// strings as input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
