package parser

import (
	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/types"
)

func (p *Parser) parseType(pos int) (ast.Type, int, error) {
	tok, next, err := p.expect(pos, "type", types.INTTYPE, types.BOOLTYPE, types.VOIDTYPE, types.IDENT)
	if err != nil {
		return nil, next, err
	}

	switch tok.Kind {
	case types.INTTYPE:
		return ast.Int{}, next, nil
	case types.BOOLTYPE:
		return ast.Bool{}, next, nil
	case types.VOIDTYPE:
		return ast.Void{}, next, nil
	case types.IDENT:
		return ast.ClassName(tok.Lexeme), next, nil
	}

	panic("unhandled")
}

// startsVarDec reports whether pos begins "type name". A class type is an
// identifier directly followed by another identifier.
func (p *Parser) startsVarDec(pos int) bool {
	if p.at(pos).Kind.IsType() {
		return true
	}
	return p.peekIs(pos, types.IDENT) && p.peekIs(pos+1, types.IDENT)
}

// parseTypedName parses "type name" without a terminator.
func (p *Parser) parseTypedName(pos int, context string) (ast.VarDec, int, error) {
	kind, next, err := p.parseType(pos)
	if err != nil {
		return ast.VarDec{}, next, err
	}

	name, next, err := p.expect(next, context, types.IDENT)
	if err != nil {
		return ast.VarDec{}, next, err
	}

	return ast.VarDec{Type: kind, Name: name.Lexeme}, next, nil
}

func (p *Parser) parseVarDec(pos int, context string) (ast.VarDec, int, error) {
	dec, next, err := p.parseTypedName(pos, context)
	if err != nil {
		return ast.VarDec{}, next, err
	}

	if _, next, err = p.expect(next, context, types.EOS); err != nil {
		return ast.VarDec{}, next, err
	}

	return dec, next, nil
}

// assignable reports whether e can stand left of "=": a name or a member
// chain ending in a name.
func assignable(e ast.Exp) bool {
	switch v := e.(type) {
	case ast.Identifier:
		return true
	case ast.Binop:
		if _, ok := v.Op.(ast.Period); ok {
			_, ok = v.Right.(ast.Identifier)
			return ok
		}
	}
	return false
}

func (p *Parser) parseStmt(pos int) (ast.Stmt, int, error) {
	tok := p.at(pos)

	switch tok.Kind {
	case types.INTTYPE, types.BOOLTYPE, types.VOIDTYPE:
		return p.parseVarDec(pos, "variable declaration")
	case types.IDENT:
		if p.startsVarDec(pos) {
			return p.parseVarDec(pos, "variable declaration")
		}
	case types.BREAK:
		_, next, err := p.expect(pos+1, "break statement", types.EOS)
		if err != nil {
			return nil, next, err
		}
		return ast.Break{}, next, nil
	case types.RETURN:
		return p.parseReturn(pos)
	case types.LBRACKET:
		return p.parseBlock(pos)
	case types.WHILE:
		return p.parseWhile(pos)
	case types.IF:
		return p.parseIf(pos)
	}

	return p.parseExpStmt(pos)
}

func (p *Parser) parseReturn(pos int) (ast.Stmt, int, error) {
	if p.peekIs(pos+1, types.EOS) {
		return ast.Return{}, pos + 2, nil
	}

	value, next, err := p.parseExp(pos + 1)
	if err != nil {
		return nil, next, err
	}
	if _, next, err = p.expect(next, "return statement", types.EOS); err != nil {
		return nil, next, err
	}

	return ast.Return{Value: value}, next, nil
}

// parseStmts parses statements up to and including the closing bracket.
func (p *Parser) parseStmts(pos int, context string) ([]ast.Stmt, int, error) {
	var stmts []ast.Stmt

	for !p.peekIs(pos, types.RBRACKET) {
		if p.peekIs(pos, types.EOF) {
			_, next, err := p.expect(pos, context, types.RBRACKET)
			return nil, next, err
		}

		stmt, next, err := p.parseStmt(pos)
		if err != nil {
			return nil, next, err
		}

		stmts = append(stmts, stmt)
		pos = next
	}

	return stmts, pos + 1, nil
}

func (p *Parser) parseBlock(pos int) (ast.Block, int, error) {
	_, next, err := p.expect(pos, "block", types.LBRACKET)
	if err != nil {
		return nil, next, err
	}

	stmts, next, err := p.parseStmts(next, "block")
	if err != nil {
		return nil, next, err
	}

	return ast.Block(stmts), next, nil
}

// parseCondition parses "( exp )" after while or if.
func (p *Parser) parseCondition(pos int, context string) (ast.Exp, int, error) {
	_, next, err := p.expect(pos, context, types.LPAREN)
	if err != nil {
		return nil, next, err
	}

	cond, next, err := p.parseExp(next)
	if err != nil {
		return nil, next, err
	}

	if _, next, err = p.expect(next, context, types.RPAREN); err != nil {
		return nil, next, err
	}

	return cond, next, nil
}

func (p *Parser) parseWhile(pos int) (ast.Stmt, int, error) {
	cond, next, err := p.parseCondition(pos+1, "while statement")
	if err != nil {
		return nil, next, err
	}

	body, next, err := p.parseStmt(next)
	if err != nil {
		return nil, next, err
	}

	return ast.While{Cond: cond, Body: body}, next, nil
}

// parseIf binds a trailing else to the nearest if: the then branch is parsed
// first and takes any else that follows it.
func (p *Parser) parseIf(pos int) (ast.Stmt, int, error) {
	cond, next, err := p.parseCondition(pos+1, "if statement")
	if err != nil {
		return nil, next, err
	}

	then, next, err := p.parseStmt(next)
	if err != nil {
		return nil, next, err
	}

	if !p.peekIs(next, types.ELSE) {
		return ast.If{Cond: cond, Then: then}, next, nil
	}

	els, next, err := p.parseStmt(next + 1)
	if err != nil {
		return nil, next, err
	}

	return ast.If{Cond: cond, Then: then, Else: els}, next, nil
}

// parseExpStmt parses "exp;" or "target = exp;".
func (p *Parser) parseExpStmt(pos int) (ast.Stmt, int, error) {
	exp, next, err := p.parseExp(pos)
	if err != nil {
		return nil, next, err
	}

	if p.peekIs(next, types.EQUALS) && assignable(exp) {
		value, n, err := p.parseExp(next + 1)
		if err != nil {
			return nil, n, err
		}
		if _, n, err = p.expect(n, "assignment", types.EOS); err != nil {
			return nil, n, err
		}
		return ast.Assignment{Target: exp, Value: value}, n, nil
	}

	if _, next, err = p.expect(next, "expression statement", types.EOS); err != nil {
		return nil, next, err
	}

	return ast.ExpStmt{Exp: exp}, next, nil
}
