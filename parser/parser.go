// Package parser builds an ast.Program from a token slice by recursive
// descent.
//
// Every parse function takes the index of its first token and returns the
// node together with the index of the first token it did not consume. The
// Parser itself only holds the read-only token slice, so any function can be
// called on its own at any position.
package parser

import (
	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/errors"
	"github.com/pontaoski/classjs/types"
	"github.com/ztrue/tracerr"
)

type Parser struct {
	tokens []types.Token
}

func NewParser(tokens []types.Token) *Parser {
	return &Parser{tokens}
}

// Parse parses a whole program.
func Parse(tokens []types.Token) (ast.Program, error) {
	prog, _, err := NewParser(tokens).ParseProgram(0)
	return prog, err
}

// at returns the token at pos. Past the end it returns an EOF token located
// at the last real token, so callers never index out of range.
func (p *Parser) at(pos int) types.Token {
	if pos < len(p.tokens) {
		return p.tokens[pos]
	}

	eof := types.Token{Kind: types.EOF}
	if len(p.tokens) > 0 {
		eof.Location = types.SingleCharSpan(p.tokens[len(p.tokens)-1].Location.To)
	}
	return eof
}

func (p *Parser) peekIs(pos int, k ...types.TokenKind) bool {
	token := p.at(pos)
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

// expect consumes one token of one of the given kinds.
func (p *Parser) expect(pos int, context string, k ...types.TokenKind) (types.Token, int, error) {
	token := p.at(pos)
	for _, kind := range k {
		if token.Kind == kind {
			return token, pos + 1, nil
		}
	}

	return types.Token{}, pos, errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      token.Kind,
		Context:  context,
		Location: token.Location,
	}
}

func (p *Parser) ParseProgram(pos int) (ast.Program, int, error) {
	prog, next, err := p.parseProgram(pos)
	if err != nil {
		return ast.Program{}, pos, tracerr.Wrap(err)
	}
	return prog, next, nil
}

func (p *Parser) ParseClassDef(pos int) (ast.ClassDef, int, error) {
	class, next, err := p.parseClassDef(pos)
	if err != nil {
		return ast.ClassDef{}, pos, tracerr.Wrap(err)
	}
	return class, next, nil
}

func (p *Parser) ParseStmt(pos int) (ast.Stmt, int, error) {
	stmt, next, err := p.parseStmt(pos)
	if err != nil {
		return nil, pos, tracerr.Wrap(err)
	}
	return stmt, next, nil
}

func (p *Parser) ParseExp(pos int) (ast.Exp, int, error) {
	exp, next, err := p.parseExp(pos)
	if err != nil {
		return nil, pos, tracerr.Wrap(err)
	}
	return exp, next, nil
}

// parseProgram reads the class definitions and then statements up to EOF.
// At least one statement is required.
func (p *Parser) parseProgram(pos int) (ast.Program, int, error) {
	var prog ast.Program

	for p.peekIs(pos, types.CLASS) {
		class, next, err := p.parseClassDef(pos)
		if err != nil {
			return ast.Program{}, next, err
		}

		prog.Classes = append(prog.Classes, class)
		pos = next
	}

	if p.peekIs(pos, types.EOF) {
		return ast.Program{}, pos, errors.MissingStatement{Location: p.at(pos).Location}
	}

	for !p.peekIs(pos, types.EOF) {
		stmt, next, err := p.parseStmt(pos)
		if err != nil {
			return ast.Program{}, next, err
		}

		prog.Stmts = append(prog.Stmts, stmt)
		pos = next
	}

	return prog, pos, nil
}
