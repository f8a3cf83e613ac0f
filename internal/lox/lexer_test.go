package lox

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src string
		tok *Token
	}{
		// single character token
		{"(", tok(TokenLeftParen, 0, "(", nil)},
		{")", tok(TokenRightParen, 0, ")", nil)},
		{"{", tok(TokenLeftBrace, 0, "{", nil)},
		{"}", tok(TokenRightBrace, 0, "}", nil)},
		{",", tok(TokenComma, 0, ",", nil)},
		{".", tok(TokenDot, 0, ".", nil)},
		{"-", tok(TokenMinus, 0, "-", nil)},
		{"+", tok(TokenPlus, 0, "+", nil)},
		{";", tok(TokenSemicolon, 0, ";", nil)},
		{"/", tok(TokenSlash, 0, "/", nil)},
		{"*", tok(TokenStar, 0, "*", nil)},
		// single-/double-character token
		{"!", tok(TokenBang, 0, "!", nil)},
		{"!=", tok(TokenBangEqual, 0, "!=", nil)},
		{"=", tok(TokenEqual, 0, "=", nil)},
		{"==", tok(TokenEqualEqual, 0, "==", nil)},
		{">", tok(TokenGreater, 0, ">", nil)},
		{">=", tok(TokenGreaterEqual, 0, ">=", nil)},
		{"<", tok(TokenLess, 0, "<", nil)},
		{"<=", tok(TokenLessEqual, 0, "<=", nil)},
		// literals
		{"a", tok(TokenIdentifier, 0, "a", "a")},
		{"abc123", tok(TokenIdentifier, 0, "abc123", "abc123")},
		{"_abc123", tok(TokenIdentifier, 0, "_abc123", "_abc123")},
		{"_123abc", tok(TokenIdentifier, 0, "_123abc", "_123abc")},
		{"printer", tok(TokenIdentifier, 0, "printer", "printer")},
		{"Print", tok(TokenIdentifier, 0, "Print", "Print")},
		{"\"\"", tok(TokenString, 0, "\"\"", "")},
		{"\"123\"", tok(TokenString, 0, "\"123\"", "123")},
		{"\"a // b\"", tok(TokenString, 0, "\"a // b\"", "a // b")},
		{"10", tok(TokenNumber, 0, "10", 10.0)},
		{"001", tok(TokenNumber, 0, "001", 1.0)},
		{"0.1", tok(TokenNumber, 0, "0.1", 0.1)},
		{"123.456", tok(TokenNumber, 0, "123.456", 123.456)},
		{".5", tok(TokenNumber, 0, ".5", 0.5)},
		{"7.", tok(TokenNumber, 0, "7.", 7.0)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewLexer(tc.src, testLogger(t)).Scan()

		assert.NoError(err, tc.src)
		assert.Equal([]*Token{tc.tok, tokEOF(len(tc.src))}, toks, tc.src)
	}
}

func TestScanKeywords(t *testing.T) {
	assert := assert.New(t)
	for lexeme, typ := range keywords {
		toks, err := NewLexer(lexeme, nil).Scan()

		assert.NoError(err)
		assert.Equal([]*Token{tok(typ, 0, lexeme, nil), tokEOF(len(lexeme))}, toks)
		assert.NotEqual(TokenIdentifier, toks[0].Typ)
	}
}

func TestScanWhiteSpaces(t *testing.T) {
	testCases := []struct {
		src string
		eof Loc
	}{
		{"", Loc{0, 1, 1}},
		{"        ", Loc{8, 1, 9}},
		{"\r\r\r\r", Loc{4, 1, 5}},
		{"\t\t\t\t", Loc{4, 1, 5}},
		{"\n\n\n\n", Loc{4, 5, 1}},
		{"  \r\t\n", Loc{5, 2, 1}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewLexer(tc.src, nil).Scan()

		assert.NoError(err)
		assert.Equal([]*Token{NewToken(TokenEOF, Span{tc.eof, tc.eof}, "", nil)}, toks)
	}
}

func TestScanComments(t *testing.T) {
	testCases := []struct {
		src string
		tok *Token
	}{
		{"// a single-line comment", nil},
		{"/*\na\nmulti-line\ncomment\n*/", nil},
		{"/* outer /* inner */ still outer */", nil},
		{"/* /* /* deep */ */ */", nil},
		{"/**/", nil},
		{"// comment\nprint", NewToken(TokenPrint, Span{Loc{11, 2, 1}, Loc{16, 2, 6}}, "print", nil)},
		{"/* a */ print", tok(TokenPrint, 8, "print", nil)},
		{"/* a /* b */ c */ print", tok(TokenPrint, 18, "print", nil)},
		{"1 / 2", tok(TokenNumber, 0, "1", 1.0)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewLexer(tc.src, nil).Scan()

		assert.NoError(err, tc.src)
		if tc.tok == nil {
			assert.Len(toks, 1, tc.src)
			assert.Equal(TokenEOF, toks[0].Typ, tc.src)
		} else {
			assert.Equal(tc.tok, toks[0], tc.src)
		}
	}
}

func TestScanValidTokensSequence(t *testing.T) {
	lexemes := []string{
		"(", ")", "{", "}", ",", ".", "-", "+", ";", "/", "*",
		"!", "!=", "=", "==", ">", ">=", "<", "<=",
		"v1", "_2v", "\"string\"", "10", "3.14",
		"and", "class", "else", "false", "fun", "for", "if", "nil", "or",
		"print", "return", "super", "this", "true", "var", "while",
	}
	src := strings.Join(lexemes, " ")

	toks, err := NewLexer(src, nil).Scan()
	require.NoError(t, err)
	require.Len(t, toks, len(lexemes)+1)

	assert := assert.New(t)
	idx := 0
	for i, lexeme := range lexemes {
		assert.Equal(lexeme, toks[i].Lexeme)
		assert.Equal(sp(idx, idx+len(lexeme)), toks[i].Span)
		idx += len(lexeme) + 1
	}
	assert.Equal(TokenEOF, toks[len(lexemes)].Typ)
}

func TestScanMultilineSpans(t *testing.T) {
	src := "var x\n  = \"a\nb\";"

	toks, err := NewLexer(src, nil).Scan()
	require.NoError(t, err)

	assert.Equal(t, []*Token{
		NewToken(TokenVar, Span{Loc{0, 1, 1}, Loc{3, 1, 4}}, "var", nil),
		NewToken(TokenIdentifier, Span{Loc{4, 1, 5}, Loc{5, 1, 6}}, "x", "x"),
		NewToken(TokenEqual, Span{Loc{8, 2, 3}, Loc{9, 2, 4}}, "=", nil),
		NewToken(TokenString, Span{Loc{10, 2, 5}, Loc{15, 3, 3}}, "\"a\nb\"", "a\nb"),
		NewToken(TokenSemicolon, Span{Loc{15, 3, 3}, Loc{16, 3, 4}}, ";", nil),
		NewToken(TokenEOF, Span{Loc{16, 3, 4}, Loc{16, 3, 4}}, "", nil),
	}, toks)
}

func TestScanUnicodeColumns(t *testing.T) {
	src := "\"héllo\" x"

	toks, err := NewLexer(src, nil).Scan()
	require.NoError(t, err)

	assert.Equal(t, []*Token{
		NewToken(TokenString, Span{Loc{0, 1, 1}, Loc{8, 1, 8}}, "\"héllo\"", "héllo"),
		NewToken(TokenIdentifier, Span{Loc{9, 1, 9}, Loc{10, 1, 10}}, "x", "x"),
		NewToken(TokenEOF, Span{Loc{10, 1, 10}, Loc{10, 1, 10}}, "", nil),
	}, toks)
}

func TestScanNumbers(t *testing.T) {
	texts := []string{"0", "1", "42", "007", "3.14", "0.5", ".5", "1.", "123456789.987654321"}

	assert := assert.New(t)
	for _, text := range texts {
		toks, err := NewLexer(text, nil).Scan()
		want, parseErr := strconv.ParseFloat(text, 64)

		require.NoError(t, parseErr)
		assert.NoError(err)
		assert.Equal(TokenNumber, toks[0].Typ, text)
		assert.Equal(want, toks[0].Literal, text)
	}
}

func TestScanNumberWithTwoDots(t *testing.T) {
	toks, err := NewLexer("1.2.3", nil).Scan()

	require.NoError(t, err)
	assert.Equal(t, []*Token{
		tok(TokenNumber, 0, "1.2", 1.2),
		tok(TokenNumber, 3, ".3", 0.3),
		tokEOF(5),
	}, toks)
}

func TestScanDotNotFollowedByDigit(t *testing.T) {
	toks, err := NewLexer("a.b", nil).Scan()

	require.NoError(t, err)
	assert.Equal(t, []*Token{
		tok(TokenIdentifier, 0, "a", "a"),
		tok(TokenDot, 1, ".", nil),
		tok(TokenIdentifier, 2, "b", "b"),
		tokEOF(3),
	}, toks)
}

func TestScanWithErrors(t *testing.T) {
	hugeNumber := "1" + strings.Repeat("0", 400)
	testCases := []struct {
		src string
		err *LexError
	}{
		{"print \"abc;",
			&LexError{Kind: UnterminatedString, Span: sp(6, 11)}},
		{"\"yo\nwhere's",
			&LexError{Kind: UnterminatedString, Span: Span{Loc{0, 1, 1}, Loc{11, 2, 8}}}},
		{"/*yo where's the closing STAR-SLASH",
			&LexError{Kind: UnterminatedComment, Span: sp(0, 35)}},
		{"/* /* */",
			&LexError{Kind: UnterminatedComment, Span: sp(0, 8)}},
		{"1 @ 2",
			&LexError{Kind: UnexpectedChar, Span: sp(2, 3), Char: '@'}},
		{"#",
			&LexError{Kind: UnexpectedChar, Span: sp(0, 1), Char: '#'}},
		{"é",
			&LexError{Kind: UnexpectedChar, Span: Span{Loc{0, 1, 1}, Loc{2, 1, 2}}, Char: 'é'}},
		{hugeNumber,
			&LexError{Kind: MalformedNumber, Span: sp(0, len(hugeNumber)), Text: hugeNumber}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewLexer(tc.src, nil).Scan()

		assert.Nil(toks)
		var lexErr *LexError
		if assert.True(errors.As(err, &lexErr), tc.src) {
			assert.Equal(tc.err, lexErr)
		}
	}
}

func TestScanUnterminatedStringEndsAtEOF(t *testing.T) {
	src := "print \"abc;"

	_, err := NewLexer(src, nil).Scan()

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, UnterminatedString, lexErr.Kind)
	assert.Equal(t, len(src), lexErr.Span.Hi.Idx)
	assert.Equal(t, "[1:7] Error: Unterminated string.", lexErr.Error())
}

func TestLexerIsLazy(t *testing.T) {
	lexer := NewLexer("print 1; @", nil)

	want := []*Token{
		tok(TokenPrint, 0, "print", nil),
		tok(TokenNumber, 6, "1", 1.0),
		tok(TokenSemicolon, 7, ";", nil),
	}
	for _, w := range want {
		got, err := lexer.Next()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	_, err := lexer.Next()
	require.Error(t, err)
	_, again := lexer.Next()
	assert.Same(t, err, again)
}

func TestLexerRepeatsEOF(t *testing.T) {
	lexer := NewLexer("x", nil)
	_, err := lexer.Next()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := lexer.Next()
		require.NoError(t, err)
		assert.Equal(t, tokEOF(1), got)
	}
}

// Concatenating the gaps between tokens and the tokens' span texts gives the
// source back, and the gaps only hold whitespaces and comments.
func TestScanSpansTileSource(t *testing.T) {
	sources := []string{
		"print 1 + 2 * 3;",
		"{ var x = 1; { var x = 2; print x; }; print x; };",
		"// header\nvar s = \"multi\nline\"; /* a /* nested */ comment */ print s;\n",
		"print -(1.5 - .25) >= 3 != !true;\r\n\tprint nil == nil;",
		"print \"héllo\"; /* ünïcode */ print 1.2.3;",
	}

	for _, src := range sources {
		toks, err := NewLexer(src, nil).Scan()
		require.NoError(t, err)

		var rebuilt strings.Builder
		prev := 0
		for _, tk := range toks {
			require.LessOrEqual(t, prev, tk.Span.Lo.Idx)
			require.LessOrEqual(t, tk.Span.Lo.Idx, tk.Span.Hi.Idx)

			gap := src[prev:tk.Span.Lo.Idx]
			gapToks, err := NewLexer(gap, nil).Scan()
			require.NoError(t, err)
			assert.Len(t, gapToks, 1, "gap %q holds a token", gap)

			assert.Equal(t, tk.Lexeme, tk.Span.Text(src))
			rebuilt.WriteString(gap)
			rebuilt.WriteString(tk.Span.Text(src))
			prev = tk.Span.Hi.Idx
		}
		assert.Equal(t, src, rebuilt.String())

		relexed, err := NewLexer(rebuilt.String(), nil).Scan()
		require.NoError(t, err)
		assert.Equal(t, toks, relexed)
	}
}
