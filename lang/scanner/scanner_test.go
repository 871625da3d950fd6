package scanner_test

import (
	"testing"

	"github.com/mna/zkcalc/lang/scanner"
	"github.com/mna/zkcalc/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]scanner.TokenAndValue, scanner.ErrorList) {
	t.Helper()
	var el scanner.ErrorList
	var s scanner.Scanner
	s.Init([]byte(src), el.Add)

	var toks []scanner.TokenAndValue
	for {
		tv := s.Scan()
		toks = append(toks, tv)
		if tv.Kind == token.EOF {
			break
		}
	}
	return toks, el
}

func TestScanBasic(t *testing.T) {
	toks, el := scanAll(t, "pub x: F;\nlet a = 22 * (x - b); // trailing comment\na == true")
	require.Empty(t, el)

	var kinds []token.Kind
	for _, tv := range toks {
		kinds = append(kinds, tv.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.PUB, token.IDENT, token.COLON, token.F, token.SEMI,
		token.LET, token.IDENT, token.EQ, token.INT, token.STAR, token.LPAREN,
		token.IDENT, token.MINUS, token.IDENT, token.RPAREN, token.SEMI,
		token.IDENT, token.EQEQ, token.TRUE,
		token.EOF,
	}, kinds)
}

func TestScanIdentValue(t *testing.T) {
	toks, el := scanAll(t, "foo_bar1")
	require.Empty(t, el)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "foo_bar1", toks[0].Ident)
}

func TestScanIntValue(t *testing.T) {
	toks, el := scanAll(t, "12345")
	require.Empty(t, el)
	require.Len(t, toks, 2)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, int32(12345), toks[0].Int)
}

func TestScanSpans(t *testing.T) {
	toks, el := scanAll(t, "ab")
	require.Empty(t, el)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Span{
		Start: token.Position{Line: 1, Col: 1},
		End:   token.Position{Line: 1, Col: 3},
	}, toks[0].Span)
}

func TestScanIllegalChar(t *testing.T) {
	_, el := scanAll(t, "1 @ 2")
	require.NotEmpty(t, el)
	assert.Contains(t, el.Error(), "unexpected character")
}

func TestScanKeywordsNotIdents(t *testing.T) {
	toks, el := scanAll(t, "if then else pub let true false F Bool")
	require.Empty(t, el)
	kinds := make([]token.Kind, 0, len(toks))
	for _, tv := range toks {
		kinds = append(kinds, tv.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.IF, token.THEN, token.ELSE, token.PUB, token.LET,
		token.TRUE, token.FALSE, token.F, token.BOOL, token.EOF,
	}, kinds)
}
