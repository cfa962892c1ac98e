package parser

import (
	"strconv"

	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/errors"
	"github.com/pontaoski/classjs/types"
)

type level func(pos int) (ast.Exp, int, error)

var (
	additive = map[types.TokenKind]ast.Op{
		types.PLUS:  ast.Plus{},
		types.MINUS: ast.Minus{},
	}
	multiplicative = map[types.TokenKind]ast.Op{
		types.STAR:  ast.Mult{},
		types.SLASH: ast.Div{},
	}
)

// fold combines operands left to right: ((l op0 r0) op1 r1) ...
func fold(left ast.Exp, ops []ast.Op, rights []ast.Exp) ast.Exp {
	for i := range ops {
		left = ast.Binop{Left: left, Op: ops[i], Right: rights[i]}
	}
	return left
}

// binary parses one precedence level: operands come from next, operators
// from ops.
func (p *Parser) binary(pos int, next level, ops map[types.TokenKind]ast.Op) (ast.Exp, int, error) {
	left, pos, err := next(pos)
	if err != nil {
		return nil, pos, err
	}

	var (
		opList []ast.Op
		rights []ast.Exp
	)
	for {
		op, ok := ops[p.at(pos).Kind]
		if !ok {
			break
		}

		right, n, err := next(pos + 1)
		if err != nil {
			return nil, n, err
		}

		opList = append(opList, op)
		rights = append(rights, right)
		pos = n
	}

	return fold(left, opList, rights), pos, nil
}

func (p *Parser) parseExp(pos int) (ast.Exp, int, error) {
	return p.binary(pos, p.parseMultExp, additive)
}

func (p *Parser) parseMultExp(pos int) (ast.Exp, int, error) {
	return p.binary(pos, p.parseCallExp, multiplicative)
}

// parseCallExp parses a primary followed by any number of .name and
// .name(args) steps.
func (p *Parser) parseCallExp(pos int) (ast.Exp, int, error) {
	left, pos, err := p.parsePrimaryExp(pos)
	if err != nil {
		return nil, pos, err
	}

	var (
		ops   []ast.Op
		steps []ast.Exp
	)
	for p.peekIs(pos, types.PERIOD) {
		name, next, err := p.expect(pos+1, "member access", types.IDENT)
		if err != nil {
			return nil, next, err
		}
		pos = next

		var step ast.Exp = ast.Identifier(name.Lexeme)
		if p.peekIs(pos, types.LPAREN) {
			args, next, err := p.parseArgs(pos, "method call")
			if err != nil {
				return nil, next, err
			}

			step = ast.MethodCall{Callee: step, Args: args}
			pos = next
		}

		ops = append(ops, ast.Period{})
		steps = append(steps, step)
	}

	return fold(left, ops, steps), pos, nil
}

// parseArgs parses a parenthesized, comma-separated expression list starting
// at the opening parenthesis.
func (p *Parser) parseArgs(pos int, context string) ([]ast.Exp, int, error) {
	_, pos, err := p.expect(pos, context, types.LPAREN)
	if err != nil {
		return nil, pos, err
	}

	var args []ast.Exp
	if p.peekIs(pos, types.RPAREN) {
		return args, pos + 1, nil
	}

	for {
		arg, next, err := p.parseExp(pos)
		if err != nil {
			return nil, next, err
		}
		args = append(args, arg)

		tok, next, err := p.expect(next, context, types.COMMA, types.RPAREN)
		if err != nil {
			return nil, next, err
		}
		pos = next

		if tok.Kind == types.RPAREN {
			return args, pos, nil
		}
	}
}

func (p *Parser) parsePrimaryExp(pos int) (ast.Exp, int, error) {
	tok, _, err := p.expect(pos, "expression",
		types.INT, types.TRUE, types.FALSE, types.THIS, types.IDENT, types.NEW, types.LPAREN, types.PRINTLN)
	if err != nil {
		return nil, pos, err
	}

	switch tok.Kind {
	case types.INT:
		parsed, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, pos, errors.InvalidInteger{Lexeme: tok.Lexeme, Location: tok.Location}
		}
		return ast.IntegerLiteral(parsed), pos + 1, nil
	case types.TRUE:
		return ast.True{}, pos + 1, nil
	case types.FALSE:
		return ast.False{}, pos + 1, nil
	case types.THIS:
		return ast.This{}, pos + 1, nil
	case types.IDENT:
		return ast.Identifier(tok.Lexeme), pos + 1, nil
	case types.NEW:
		name, next, err := p.expect(pos+1, "new expression", types.IDENT)
		if err != nil {
			return nil, next, err
		}
		if _, next, err = p.expect(next, "new expression", types.LPAREN); err != nil {
			return nil, next, err
		}
		if _, next, err = p.expect(next, "new expression", types.RPAREN); err != nil {
			return nil, next, err
		}
		return ast.New{ClassName: name.Lexeme}, next, nil
	case types.LPAREN:
		inner, next, err := p.parseExp(pos + 1)
		if err != nil {
			return nil, next, err
		}
		if _, next, err = p.expect(next, "parenthesized expression", types.RPAREN); err != nil {
			return nil, next, err
		}
		return inner, next, nil
	case types.PRINTLN:
		_, next, err := p.expect(pos+1, "println", types.LPAREN)
		if err != nil {
			return nil, next, err
		}
		inner, next, err := p.parseExp(next)
		if err != nil {
			return nil, next, err
		}
		if _, next, err = p.expect(next, "println", types.RPAREN); err != nil {
			return nil, next, err
		}
		return ast.Println{Inner: inner}, next, nil
	}

	panic("unhandled")
}
