package lexer

import (
	"strings"
	"unicode"

	"github.com/pontaoski/classjs/errors"
	"github.com/pontaoski/classjs/types"
	"github.com/ztrue/tracerr"
)

// Lexer scans a source string left to right. at is the only cursor; every
// recognizer reads from it without moving it and Lex commits the match.
type Lexer struct {
	src []rune
	at  int
	pos types.Position
}

func NewLexer(source string, filename string) *Lexer {
	return &Lexer{
		src: []rune(source),
		pos: types.Position{Line: 1, Column: 1, Filename: filename},
	}
}

var keywords = map[string]types.TokenKind{
	"var":     types.VAR,
	"int":     types.INTTYPE,
	"bool":    types.BOOLTYPE,
	"void":    types.VOIDTYPE,
	"this":    types.THIS,
	"super":   types.SUPER,
	"init":    types.INIT,
	"method":  types.METHOD,
	"else":    types.ELSE,
	"if":      types.IF,
	"return":  types.RETURN,
	"break":   types.BREAK,
	"new":     types.NEW,
	"println": types.PRINTLN,
	"false":   types.FALSE,
	"true":    types.TRUE,
	"while":   types.WHILE,
	"class":   types.CLASS,
	"extends": types.EXTENDS,
}

var operators = map[rune]types.TokenKind{
	'+': types.PLUS,
	'-': types.MINUS,
	'*': types.STAR,
	'/': types.SLASH,
	'{': types.LBRACKET,
	'}': types.RBRACKET,
	'(': types.LPAREN,
	')': types.RPAREN,
	',': types.COMMA,
	';': types.EOS,
	'.': types.PERIOD,
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// digit only accepts ASCII digits. Other Unicode digits are not part of
// any token.
func digit(r rune) bool {
	return '0' <= r && r <= '9'
}

func otherChar(r rune) bool {
	return firstChar(r) || digit(r)
}

func (l *Lexer) peekAt(i int) rune {
	if i < len(l.src) {
		return l.src[i]
	}
	return 0
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.at < len(l.src); i++ {
		if l.src[l.at] == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
		l.at++
	}
}

func (l *Lexer) kinded(t types.TokenKind, lexeme string) types.Token {
	return types.Token{
		Kind:     t,
		Lexeme:   lexeme,
		Location: types.SingleCharSpan(l.pos),
	}
}

// emit turns the next n runes into a token and moves past them.
func (l *Lexer) emit(t types.TokenKind, n int) types.Token {
	from := l.pos
	to := from
	to.Column += n - 1

	tok := types.Token{
		Kind:     t,
		Lexeme:   string(l.src[l.at : l.at+n]),
		Location: types.Span{From: from, To: to},
	}
	l.advance(n)

	return tok
}

func (l *Lexer) lexOperator() (types.TokenKind, int, bool) {
	r := l.peekAt(l.at)
	next := l.peekAt(l.at + 1)

	switch r {
	case '=':
		if next == '=' {
			return types.EQEQ, 2, true
		}
		return types.EQUALS, 1, true
	case '!':
		if next == '=' {
			return types.NOTEQ, 2, true
		}
		return types.ILLEGAL, 0, false
	case '&':
		if next == '&' {
			return types.ANDAND, 2, true
		}
		return types.ILLEGAL, 0, false
	case '|':
		if next == '|' {
			return types.OROR, 2, true
		}
		return types.ILLEGAL, 0, false
	}

	if kind, ok := operators[r]; ok {
		return kind, 1, true
	}

	return types.ILLEGAL, 0, false
}

// run is the length of the identifier-shaped run at the cursor. A newline
// never satisfies otherChar, so runs stay on one line.
func (l *Lexer) run() int {
	i := l.at
	for i < len(l.src) && otherChar(l.src[i]) {
		i++
	}
	return i - l.at
}

func (l *Lexer) lexKeyword() (types.TokenKind, int, bool) {
	if !unicode.IsLetter(l.peekAt(l.at)) {
		return types.ILLEGAL, 0, false
	}

	n := l.run()
	kind, ok := keywords[strings.ToLower(string(l.src[l.at:l.at+n]))]
	if !ok {
		return types.ILLEGAL, 0, false
	}

	return kind, n, true
}

func (l *Lexer) lexIdent() int {
	if !firstChar(l.peekAt(l.at)) {
		return 0
	}
	return l.run()
}

func (l *Lexer) lexInteger() int {
	i := l.at
	for i < len(l.src) && digit(l.src[i]) {
		i++
	}
	return i - l.at
}

// Lex returns the next token. Whitespace is skipped, never returned. At the
// end of input it keeps returning EOF.
func (l *Lexer) Lex() (types.Token, error) {
	for {
		if l.at >= len(l.src) {
			return l.kinded(types.EOF, ""), nil
		}

		r := l.src[l.at]
		if unicode.IsSpace(r) {
			l.advance(1)
			continue
		}

		if kind, n, ok := l.lexOperator(); ok {
			return l.emit(kind, n), nil
		}
		if kind, n, ok := l.lexKeyword(); ok {
			return l.emit(kind, n), nil
		}
		if n := l.lexIdent(); n > 0 {
			return l.emit(types.IDENT, n), nil
		}
		if n := l.lexInteger(); n > 0 {
			return l.emit(types.INT, n), nil
		}

		return types.Token{}, errors.UnexpectedCharacter{
			Char:     r,
			Location: types.SingleCharSpan(l.pos),
		}
	}
}

// LexAll scans the rest of the input. The last token is always EOF.
func (l *Lexer) LexAll() ([]types.Token, error) {
	var ret []types.Token
	for {
		t, err := l.Lex()
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
		if t.Kind == types.EOF {
			return ret, nil
		}
	}
}

// Tokenize scans source completely. It fails on the first character no
// token rule accepts.
func Tokenize(source string, filename string) ([]types.Token, error) {
	tokens, err := NewLexer(source, filename).LexAll()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return tokens, nil
}
