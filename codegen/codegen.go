// Package codegen renders an ast.Program as JavaScript.
//
// Every node maps to one template with its children substituted in source
// order. Classes become constructor functions, methods are assigned to the
// prototype, and a base class is linked with Object.setPrototypeOf.
// GenerateClasses emits class declarations instead and shares everything
// below the class level.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/errors"
	"github.com/ztrue/tracerr"
)

// Generate renders prog with classes as constructor functions linked through
// their prototypes. The only error it returns is errors.UnhandledNode, which
// means the tree holds a node this package does not know about.
func Generate(prog ast.Program) (string, error) {
	return generate(prog, codegenClass)
}

// GenerateClasses renders prog like Generate, but with every class as an
// ES2015 class declaration.
func GenerateClasses(prog ast.Program) (string, error) {
	return generate(prog, codegenESClass)
}

func generate(prog ast.Program, class func(ast.ClassDef) string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(errors.UnhandledNode)
			if ok {
				out = ""
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	var sb strings.Builder
	for _, c := range prog.Classes {
		sb.WriteString(class(c))
		sb.WriteString("\n")
	}
	for _, stmt := range prog.Stmts {
		sb.WriteString(codegenStmt(stmt, 0))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func unhandled(node interface{}) {
	panic(errors.UnhandledNode{Node: node})
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

func commaExps(exps []ast.Exp) string {
	var parts []string
	for _, e := range exps {
		parts = append(parts, codegenExpression(e))
	}
	return strings.Join(parts, ", ")
}

func commaParams(params []ast.VarDec) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}

func codegenClass(class ast.ClassDef) string {
	var sb strings.Builder

	ctor := class.Constructor
	fmt.Fprintf(&sb, "function %s(%s) {\n", class.Name, commaParams(ctor.Params))
	if ctor.CallsSuper {
		args := "this"
		if len(ctor.SuperArgs) > 0 {
			args += ", " + commaExps(ctor.SuperArgs)
		}
		fmt.Fprintf(&sb, "%s%s.call(%s);\n", indent(1), class.Extends, args)
	}
	for _, field := range class.Fields {
		sb.WriteString(indent(1) + codegenStmt(field, 1) + "\n")
	}
	for _, stmt := range ctor.Body {
		sb.WriteString(indent(1) + codegenStmt(stmt, 1) + "\n")
	}
	sb.WriteString("}\n")

	if class.Extends != "" {
		fmt.Fprintf(&sb, "Object.setPrototypeOf(%s.prototype, %s.prototype);\n", class.Name, class.Extends)
	}

	for _, m := range class.Methods {
		sb.WriteString(codegenMethod(class.Name, m))
	}

	return sb.String()
}

func codegenMethod(class string, m ast.MethodDef) string {
	return fmt.Sprintf("%s.prototype.%s = function(%s) %s;\n", class, m.Name, commaParams(m.Params), codegenStmt(m.Body, 0))
}

// codegenStmt renders s as if it started at the given nesting depth. The
// caller writes the leading indentation.
func codegenStmt(s ast.Stmt, depth int) string {
	switch stmt := s.(type) {
	case ast.VarDec:
		return fmt.Sprintf("let %s;", stmt.Name)
	case ast.Assignment:
		return fmt.Sprintf("%s = %s;", codegenExpression(stmt.Target), codegenExpression(stmt.Value))
	case ast.ExpStmt:
		return codegenExpression(stmt.Exp) + ";"
	case ast.While:
		return fmt.Sprintf("while (%s) %s", codegenExpression(stmt.Cond), codegenBody(stmt.Body, depth))
	case ast.Break:
		return "break;"
	case ast.Return:
		if stmt.Value == nil {
			return "return;"
		}
		return fmt.Sprintf("return %s;", codegenExpression(stmt.Value))
	case ast.If:
		code := fmt.Sprintf("if (%s) %s", codegenExpression(stmt.Cond), codegenBody(stmt.Then, depth))
		if stmt.Else != nil {
			code += " else " + codegenBody(stmt.Else, depth)
		}
		return code
	case ast.Block:
		if len(stmt) == 0 {
			return "{}"
		}

		var sb strings.Builder
		sb.WriteString("{\n")
		for _, inner := range stmt {
			sb.WriteString(indent(depth+1) + codegenStmt(inner, depth+1) + "\n")
		}
		sb.WriteString(indent(depth) + "}")
		return sb.String()
	}

	unhandled(s)
	return ""
}

// codegenBody renders the body of a while, if or else. A declaration is not
// a valid single-statement body in JavaScript, so it gets its own block.
func codegenBody(s ast.Stmt, depth int) string {
	if dec, ok := s.(ast.VarDec); ok {
		return codegenStmt(ast.Block{dec}, depth)
	}
	return codegenStmt(s, depth)
}

func codegenOp(o ast.Op) string {
	switch o.(type) {
	case ast.Plus:
		return "+"
	case ast.Minus:
		return "-"
	case ast.Mult:
		return "*"
	case ast.Div:
		return "/"
	case ast.Period:
		return "."
	}

	unhandled(o)
	return ""
}

func codegenExpression(e ast.Exp) string {
	switch expr := e.(type) {
	case ast.IntegerLiteral:
		return strconv.FormatInt(int64(expr), 10)
	case ast.True:
		return "true"
	case ast.False:
		return "false"
	case ast.This:
		return "this"
	case ast.Identifier:
		return string(expr)
	case ast.Println:
		return fmt.Sprintf("console.log(%s)", codegenExpression(expr.Inner))
	case ast.New:
		return fmt.Sprintf("new %s()", expr.ClassName)
	case ast.MethodCall:
		return fmt.Sprintf("%s(%s)", codegenExpression(expr.Callee), commaExps(expr.Args))
	case ast.Binop:
		op := codegenOp(expr.Op)
		if _, ok := expr.Op.(ast.Period); ok {
			left := codegenExpression(expr.Left)
			if !chains(expr.Left) {
				left = "(" + left + ")"
			}
			return left + op + codegenExpression(expr.Right)
		}
		return fmt.Sprintf("(%s) %s (%s)", codegenExpression(expr.Left), op, codegenExpression(expr.Right))
	}

	unhandled(e)
	return ""
}

// chains reports whether e can be followed by a member access without
// parentheses. Only arithmetic needs them.
func chains(e ast.Exp) bool {
	b, ok := e.(ast.Binop)
	if !ok {
		return true
	}
	_, ok = b.Op.(ast.Period)
	return ok
}
