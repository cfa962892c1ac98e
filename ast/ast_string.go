package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// The String methods print canonical source: parsing the output yields the
// same tree. Arithmetic is always parenthesized.

func (v Int) String() string       { return "int" }
func (v Bool) String() string      { return "bool" }
func (v Void) String() string      { return "void" }
func (v ClassName) String() string { return string(v) }

func (v Plus) String() string   { return "+" }
func (v Minus) String() string  { return "-" }
func (v Mult) String() string   { return "*" }
func (v Div) String() string    { return "/" }
func (v Period) String() string { return "." }

func typeToString(t Type) string {
	if t == nil {
		return ""
	}

	switch v := t.(type) {
	case Int, Bool, Void, ClassName:
		return v.(fmt.Stringer).String()
	}

	panic("unhandled")
}

// str prints a node, or nothing for a missing one.
func str(v interface{}) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

func params(vs []VarDec) string {
	var args []string
	for _, arg := range vs {
		args = append(args, typeToString(arg.Type)+" "+arg.Name)
	}
	return strings.Join(args, ", ")
}

func args(es []Exp) string {
	var ret []string
	for _, e := range es {
		ret = append(ret, str(e))
	}
	return strings.Join(ret, ", ")
}

func (v IntegerLiteral) String() string { return strconv.FormatInt(int64(v), 10) }
func (v True) String() string           { return "true" }
func (v False) String() string          { return "false" }
func (v This) String() string           { return "this" }
func (v Identifier) String() string     { return string(v) }

func (v Println) String() string {
	return "println(" + str(v.Inner) + ")"
}

func (v New) String() string {
	return "new " + v.ClassName + "()"
}

func (v MethodCall) String() string {
	return str(v.Callee) + "(" + args(v.Args) + ")"
}

func (v Binop) String() string {
	if _, ok := v.Op.(Period); ok {
		return str(v.Left) + "." + str(v.Right)
	}
	return fmt.Sprintf("(%s %s %s)", str(v.Left), str(v.Op), str(v.Right))
}

func (v VarDec) String() string {
	return fmt.Sprintf("%s %s;", typeToString(v.Type), v.Name)
}

func (v Assignment) String() string {
	return fmt.Sprintf("%s = %s;", str(v.Target), str(v.Value))
}

func (v ExpStmt) String() string {
	return str(v.Exp) + ";"
}

func (v While) String() string {
	return fmt.Sprintf("while (%s) %s", str(v.Cond), str(v.Body))
}

func (v Break) String() string {
	return "break;"
}

func (v Return) String() string {
	if v.Value == nil {
		return "return;"
	}
	return "return " + str(v.Value) + ";"
}

func (v If) String() string {
	s := fmt.Sprintf("if (%s) %s", str(v.Cond), str(v.Then))
	if v.Else != nil {
		s += " else " + str(v.Else)
	}
	return s
}

func (v Block) String() string {
	if len(v) == 0 {
		return "{}"
	}

	parts := []string{"{"}
	for _, s := range v {
		parts = append(parts, str(s))
	}
	return strings.Join(append(parts, "}"), " ")
}

func (c Constructor) String() string {
	parts := []string{fmt.Sprintf("init(%s) {", params(c.Params))}
	if c.CallsSuper {
		parts = append(parts, "super("+args(c.SuperArgs)+");")
	}
	for _, s := range c.Body {
		parts = append(parts, str(s))
	}
	return strings.Join(append(parts, "}"), " ")
}

func (m MethodDef) String() string {
	return fmt.Sprintf("method %s(%s) %s %s", m.Name, params(m.Params), typeToString(m.ReturnType), m.Body)
}

func (c ClassDef) String() string {
	head := "class " + c.Name
	if c.Extends != "" {
		head += " extends " + c.Extends
	}

	parts := []string{head, "{"}
	for _, f := range c.Fields {
		parts = append(parts, f.String())
	}
	parts = append(parts, c.Constructor.String())
	for _, m := range c.Methods {
		parts = append(parts, m.String())
	}
	return strings.Join(append(parts, "}"), " ")
}

// String prints one class or top-level statement per line.
func (p Program) String() string {
	var lines []string
	for _, c := range p.Classes {
		lines = append(lines, c.String())
	}
	for _, s := range p.Stmts {
		lines = append(lines, str(s))
	}
	return strings.Join(lines, "\n")
}

// Signature is the method header without its body.
func (m MethodDef) Signature() string {
	return fmt.Sprintf("method %s(%s) %s;", m.Name, params(m.Params), typeToString(m.ReturnType))
}

// Signature is the constructor header with the number of super arguments.
func (c Constructor) Signature() string {
	if c.CallsSuper {
		return fmt.Sprintf("init(%s) super(%d);", params(c.Params), len(c.SuperArgs))
	}
	return fmt.Sprintf("init(%s);", params(c.Params))
}

// Outline lists the class header and member signatures, one per line.
func (c ClassDef) Outline() string {
	var sb strings.Builder

	sb.WriteString("class " + c.Name)
	if c.Extends != "" {
		sb.WriteString(" extends " + c.Extends)
	}
	sb.WriteString("\n")

	for _, f := range c.Fields {
		sb.WriteString("\t" + f.String() + "\n")
	}
	sb.WriteString("\t" + c.Constructor.Signature() + "\n")
	for _, m := range c.Methods {
		sb.WriteString("\t" + m.Signature() + "\n")
	}

	return sb.String()
}
