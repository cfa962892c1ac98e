package parser

import (
	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/errors"
	"github.com/pontaoski/classjs/types"
)

// parseParams parses "( type name, ... )".
func (p *Parser) parseParams(pos int, context string) ([]ast.VarDec, int, error) {
	_, pos, err := p.expect(pos, context, types.LPAREN)
	if err != nil {
		return nil, pos, err
	}

	var params []ast.VarDec
	if p.peekIs(pos, types.RPAREN) {
		return params, pos + 1, nil
	}

	for {
		param, next, err := p.parseTypedName(pos, context)
		if err != nil {
			return nil, next, err
		}
		params = append(params, param)

		tok, next, err := p.expect(next, context, types.COMMA, types.RPAREN)
		if err != nil {
			return nil, next, err
		}
		pos = next

		if tok.Kind == types.RPAREN {
			return params, pos, nil
		}
	}
}

// parseConstructor parses "init(params) { [super(args);] stmts }". The super
// call is only recognized as the first thing in the body and is kept out of
// Body.
func (p *Parser) parseConstructor(pos int, class ast.ClassDef) (ast.Constructor, int, error) {
	var ctor ast.Constructor

	_, next, err := p.expect(pos, "constructor", types.INIT)
	if err != nil {
		return ast.Constructor{}, next, err
	}

	ctor.Params, next, err = p.parseParams(next, "constructor parameters")
	if err != nil {
		return ast.Constructor{}, next, err
	}

	if _, next, err = p.expect(next, "constructor body", types.LBRACKET); err != nil {
		return ast.Constructor{}, next, err
	}

	if p.peekIs(next, types.SUPER) {
		super := p.at(next)
		if class.Extends == "" {
			return ast.Constructor{}, next, errors.SuperWithoutBase{
				Class:    class.Name,
				Location: super.Location,
			}
		}

		ctor.CallsSuper = true
		ctor.SuperArgs, next, err = p.parseArgs(next+1, "super call")
		if err != nil {
			return ast.Constructor{}, next, err
		}

		if _, next, err = p.expect(next, "super call", types.EOS); err != nil {
			return ast.Constructor{}, next, err
		}
	}

	stmts, next, err := p.parseStmts(next, "constructor body")
	if err != nil {
		return ast.Constructor{}, next, err
	}
	ctor.Body = ast.Block(stmts)

	return ctor, next, nil
}

// parseMethodDef parses "method name(params) type { stmts }".
func (p *Parser) parseMethodDef(pos int) (ast.MethodDef, int, error) {
	var m ast.MethodDef

	_, next, err := p.expect(pos, "method definition", types.METHOD)
	if err != nil {
		return ast.MethodDef{}, next, err
	}

	name, next, err := p.expect(next, "method definition", types.IDENT)
	if err != nil {
		return ast.MethodDef{}, next, err
	}
	m.Name = name.Lexeme

	m.Params, next, err = p.parseParams(next, "method parameters")
	if err != nil {
		return ast.MethodDef{}, next, err
	}

	m.ReturnType, next, err = p.parseType(next)
	if err != nil {
		return ast.MethodDef{}, next, err
	}

	m.Body, next, err = p.parseBlock(next)
	if err != nil {
		return ast.MethodDef{}, next, err
	}

	return m, next, nil
}

// parseClassDef parses "class Name [extends Base] { fields init methods }".
func (p *Parser) parseClassDef(pos int) (ast.ClassDef, int, error) {
	var class ast.ClassDef

	_, next, err := p.expect(pos, "class definition", types.CLASS)
	if err != nil {
		return ast.ClassDef{}, next, err
	}

	name, next, err := p.expect(next, "class definition", types.IDENT)
	if err != nil {
		return ast.ClassDef{}, next, err
	}
	class.Name = name.Lexeme

	if p.peekIs(next, types.EXTENDS) {
		base, n, err := p.expect(next+1, "extends clause", types.IDENT)
		if err != nil {
			return ast.ClassDef{}, n, err
		}
		class.Extends = base.Lexeme
		next = n
	}

	if _, next, err = p.expect(next, "class body", types.LBRACKET); err != nil {
		return ast.ClassDef{}, next, err
	}

	for p.startsVarDec(next) {
		field, n, err := p.parseVarDec(next, "field declaration")
		if err != nil {
			return ast.ClassDef{}, n, err
		}
		class.Fields = append(class.Fields, field)
		next = n
	}

	class.Constructor, next, err = p.parseConstructor(next, class)
	if err != nil {
		return ast.ClassDef{}, next, err
	}

	for p.peekIs(next, types.METHOD) {
		m, n, err := p.parseMethodDef(next)
		if err != nil {
			return ast.ClassDef{}, n, err
		}
		class.Methods = append(class.Methods, m)
		next = n
	}

	if _, next, err = p.expect(next, "class body", types.RBRACKET); err != nil {
		return ast.ClassDef{}, next, err
	}

	return class, next, nil
}
