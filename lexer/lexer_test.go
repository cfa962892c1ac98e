package lexer

import (
	"reflect"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/classjs/errors"
	"github.com/pontaoski/classjs/types"
	"github.com/ztrue/tracerr"
)

type testToken struct {
	k types.TokenKind
	s string
}

func lexToEOF(t *testing.T, src string) (ret []testToken) {
	t.Helper()

	tokens, err := Tokenize(src, "test")
	if err != nil {
		t.Fatalf("tokenizing %q: %s", src, err)
	}
	for _, tok := range tokens {
		ret = append(ret, testToken{tok.Kind, tok.Lexeme})
	}
	return
}

func TestLexer(t *testing.T) {
	cases := []struct {
		src  string
		want []testToken
	}{
		{"var", []testToken{{types.VAR, "var"}, {types.EOF, ""}}},
		{"12345", []testToken{{types.INT, "12345"}, {types.EOF, ""}}},
		{"int bool void", []testToken{
			{types.INTTYPE, "int"}, {types.BOOLTYPE, "bool"}, {types.VOIDTYPE, "void"}, {types.EOF, ""},
		}},
		{"Void", []testToken{{types.VOIDTYPE, "Void"}, {types.EOF, ""}}},
		{"int1 _x this_ y2k", []testToken{
			{types.IDENT, "int1"}, {types.IDENT, "_x"}, {types.IDENT, "this_"}, {types.IDENT, "y2k"}, {types.EOF, ""},
		}},
		{"this super init method else if return break new println false true while class extends", []testToken{
			{types.THIS, "this"}, {types.SUPER, "super"}, {types.INIT, "init"}, {types.METHOD, "method"},
			{types.ELSE, "else"}, {types.IF, "if"}, {types.RETURN, "return"}, {types.BREAK, "break"},
			{types.NEW, "new"}, {types.PRINTLN, "println"}, {types.FALSE, "false"}, {types.TRUE, "true"},
			{types.WHILE, "while"}, {types.CLASS, "class"}, {types.EXTENDS, "extends"}, {types.EOF, ""},
		}},
		{"+-*/={}(),;.", []testToken{
			{types.PLUS, "+"}, {types.MINUS, "-"}, {types.STAR, "*"}, {types.SLASH, "/"},
			{types.EQUALS, "="}, {types.LBRACKET, "{"}, {types.RBRACKET, "}"}, {types.LPAREN, "("},
			{types.RPAREN, ")"}, {types.COMMA, ","}, {types.EOS, ";"}, {types.PERIOD, "."}, {types.EOF, ""},
		}},
		{"a==b!=c&&d||e", []testToken{
			{types.IDENT, "a"}, {types.EQEQ, "=="}, {types.IDENT, "b"}, {types.NOTEQ, "!="},
			{types.IDENT, "c"}, {types.ANDAND, "&&"}, {types.IDENT, "d"}, {types.OROR, "||"},
			{types.IDENT, "e"}, {types.EOF, ""},
		}},
		{"x = = =", []testToken{
			{types.IDENT, "x"}, {types.EQUALS, "="}, {types.EQUALS, "="}, {types.EQUALS, "="}, {types.EOF, ""},
		}},
		{"cat.speak();", []testToken{
			{types.IDENT, "cat"}, {types.PERIOD, "."}, {types.IDENT, "speak"},
			{types.LPAREN, "("}, {types.RPAREN, ")"}, {types.EOS, ";"}, {types.EOF, ""},
		}},
		{"12ab", []testToken{{types.INT, "12"}, {types.IDENT, "ab"}, {types.EOF, ""}}},
		{"", []testToken{{types.EOF, ""}}},
		{" \t\r\n ", []testToken{{types.EOF, ""}}},
	}

	for _, c := range cases {
		got := lexToEOF(t, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q:\ngot  %s\nwant %s", c.src, repr.String(got), repr.String(c.want))
		}
	}
}

func TestWhitespaceInsensitive(t *testing.T) {
	a := lexToEOF(t, "x=1;")
	b := lexToEOF(t, "x = 1 ;")
	c := lexToEOF(t, "\n\tx\n=\n1\n;\n")

	if !reflect.DeepEqual(a, b) {
		t.Errorf("got %s and %s", repr.String(a), repr.String(b))
	}
	if !reflect.DeepEqual(a, c) {
		t.Errorf("got %s and %s", repr.String(a), repr.String(c))
	}
}

func TestLines(t *testing.T) {
	tokens, err := Tokenize("int x;\n  x = 10;\n\nx;", "lines")
	if err != nil {
		t.Fatal(err)
	}

	want := []int{1, 1, 1, 2, 2, 2, 2, 4, 4, 4}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Line() != want[i] {
			t.Errorf("token %d (%s) on line %d, want %d", i, tok.Kind, tok.Line(), want[i])
		}
	}

	ten := tokens[5]
	if ten.Location.From.Column != 7 || ten.Location.To.Column != 8 {
		t.Errorf("token 10 spans %s", ten.Location)
	}
	if ten.Location.From.Filename != "lines" {
		t.Errorf("got filename %q", ten.Location.From.Filename)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	cases := []struct {
		src    string
		char   rune
		line   int
		column int
	}{
		{"x = #;", '#', 1, 5},
		{"a\n  !b", '!', 2, 3},
		{"a & b", '&', 1, 3},
		{"a | b", '|', 1, 3},
		{"\"str\"", '"', 1, 1},
		{"x = ١;", '١', 1, 5},
		{"a٣ = 1;", '٣', 1, 2},
	}

	for _, c := range cases {
		tokens, err := Tokenize(c.src, "test")
		if err == nil {
			t.Errorf("%q: expected an error, got %s", c.src, repr.String(tokens))
			continue
		}
		if tokens != nil {
			t.Errorf("%q: expected no tokens with the error", c.src)
		}

		uc, ok := tracerr.Unwrap(err).(errors.UnexpectedCharacter)
		if !ok {
			t.Errorf("%q: got %T, want UnexpectedCharacter", c.src, tracerr.Unwrap(err))
			continue
		}
		if uc.Char != c.char || uc.Location.From.Line != c.line || uc.Location.From.Column != c.column {
			t.Errorf("%q: got %q at %s", c.src, uc.Char, uc.Location)
		}
	}
}

func TestLexKeepsReturningEOF(t *testing.T) {
	l := NewLexer("x", "test")
	for i, want := range []types.TokenKind{types.IDENT, types.EOF, types.EOF} {
		tok, err := l.Lex()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != want {
			t.Errorf("token %d: got %s, want %s", i, tok.Kind, want)
		}
	}
}
