package codegen

import (
	"fmt"
	"strings"

	"github.com/pontaoski/classjs/ast"
)

// codegenESClass renders class as a class declaration. Fields become
// declarations at the top of the constructor, after the super call.
func codegenESClass(class ast.ClassDef) string {
	var sb strings.Builder

	sb.WriteString("class " + class.Name)
	if class.Extends != "" {
		sb.WriteString(" extends " + class.Extends)
	}
	sb.WriteString(" {\n")

	ctor := class.Constructor
	fmt.Fprintf(&sb, "%sconstructor(%s) {\n", indent(1), commaParams(ctor.Params))
	if ctor.CallsSuper {
		fmt.Fprintf(&sb, "%ssuper(%s);\n", indent(2), commaExps(ctor.SuperArgs))
	}
	for _, field := range class.Fields {
		sb.WriteString(indent(2) + codegenStmt(field, 2) + "\n")
	}
	for _, stmt := range ctor.Body {
		sb.WriteString(indent(2) + codegenStmt(stmt, 2) + "\n")
	}
	sb.WriteString(indent(1) + "}\n")

	for _, m := range class.Methods {
		fmt.Fprintf(&sb, "%s%s(%s) %s\n", indent(1), m.Name, commaParams(m.Params), codegenStmt(m.Body, 1))
	}
	sb.WriteString("}\n")

	return sb.String()
}
