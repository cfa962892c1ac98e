package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	PLUS
	MINUS
	STAR
	SLASH
	EQUALS
	EQEQ
	NOTEQ
	ANDAND
	OROR
	LBRACKET
	RBRACKET
	LPAREN
	RPAREN
	COMMA
	EOS
	PERIOD

	INT
	IDENT

	VAR
	INTTYPE
	BOOLTYPE
	VOIDTYPE
	THIS
	TRUE
	FALSE
	PRINTLN
	NEW
	WHILE
	BREAK
	RETURN
	IF
	ELSE
	METHOD
	INIT
	SUPER
	CLASS
	EXTENDS
)

var kindNames = map[TokenKind]string{
	EOF:      "EOF",
	ILLEGAL:  "ILLEGAL",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	SLASH:    "SLASH",
	EQUALS:   "EQUALS",
	EQEQ:     "EQEQ",
	NOTEQ:    "NOTEQ",
	ANDAND:   "ANDAND",
	OROR:     "OROR",
	LBRACKET: "LBRACKET",
	RBRACKET: "RBRACKET",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	COMMA:    "COMMA",
	EOS:      "EOS",
	PERIOD:   "PERIOD",
	INT:      "INT",
	IDENT:    "IDENT",
	VAR:      "VAR",
	INTTYPE:  "INTTYPE",
	BOOLTYPE: "BOOLTYPE",
	VOIDTYPE: "VOIDTYPE",
	THIS:     "THIS",
	TRUE:     "TRUE",
	FALSE:    "FALSE",
	PRINTLN:  "PRINTLN",
	NEW:      "NEW",
	WHILE:    "WHILE",
	BREAK:    "BREAK",
	RETURN:   "RETURN",
	IF:       "IF",
	ELSE:     "ELSE",
	METHOD:   "METHOD",
	INIT:     "INIT",
	SUPER:    "SUPER",
	CLASS:    "CLASS",
	EXTENDS:  "EXTENDS",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// IsType reports whether the kind names one of the builtin types.
func (t TokenKind) IsType() bool {
	return t == INTTYPE || t == BOOLTYPE || t == VOIDTYPE
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     TokenKind
	Lexeme   string
	Location Span
}

// Line is the line the token starts on.
func (t Token) Line() int {
	return t.Location.From.Line
}
