package maincmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mna/zkcalc/lang/ast"
)

// readWitness parses a witness file into a mapping from identifier to
// literal value. The format is line-oriented, `ident = value`, where
// value is a decimal i32 or true/false; blank lines and lines starting
// with '#' are ignored.
func readWitness(path string) (map[ast.Ident]ast.Literal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	witness := make(map[ast.Ident]ast.Literal)
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 'ident = value'", path, lineNo)
		}
		ident := ast.Ident(strings.TrimSpace(parts[0]))
		val := strings.TrimSpace(parts[1])

		switch val {
		case "true":
			witness[ident] = ast.BoolLiteral(true)
		case "false":
			witness[ident] = ast.BoolLiteral(false)
		default:
			n, err := strconv.ParseInt(val, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid literal %q", path, lineNo, val)
			}
			witness[ident] = ast.FieldLiteral(int32(n))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return witness, nil
}
