// Command adtgen turns a small algebraic data type description into Go sum
// types. Usage: adtgen <input.adt> <output.go> <package>
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type TypeRef struct {
	Slice   string `@( "[" "]" )?`
	Pointer string `@"*"?`
	Name    string `@Ident`
}

type Member struct {
	Name string   `@Ident`
	Kind *TypeRef `@@ ";"?`
}

type TCase struct {
	Name   string    `"|" @Ident`
	Plain  *TypeRef  `( "of" ( @@`
	Fields []*Member `       | "{" @@* "}" ) )?`
}

// Declaration is a plain alias, a sum of cases, or a record.
type Declaration struct {
	Name   string    `"type" @Ident "="`
	Plain  *TypeRef  `(   @@`
	Many   []*TCase  `  | @@+`
	Record []*Member `  | "{" @@* "}" ) ";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

func (r *TypeRef) code() *Statement {
	s := Null()
	if r.Slice != "" {
		s = s.Index()
	}
	if r.Pointer != "" {
		s = s.Op("*")
	}
	return s.Id(r.Name)
}

func fields(fs []*Member) []Code {
	var ret []Code
	for _, f := range fs {
		ret = append(ret, Id(f.Name).Add(f.Kind.code()))
	}
	return ret
}

func GenerateDecls(pkgname string, t *TypeDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by adtgen. DO NOT EDIT.")

	for _, decl := range t.Declarations {
		switch {
		case decl.Plain != nil:
			f.Type().Id(decl.Name).Add(decl.Plain.code())
		case decl.Many != nil:
			f.Type().Id(decl.Name).Interface(
				Id("is_" + decl.Name).Params(),
			)

			for _, it := range decl.Many {
				switch {
				case it.Plain != nil && it.Plain.Slice == "" && it.Plain.Pointer == "" && t.IsSumType(it.Plain.Name):
					f.Type().Id(it.Name).Struct(Id(it.Plain.Name))
				case it.Plain != nil:
					f.Type().Id(it.Name).Add(it.Plain.code())
				default:
					f.Type().Id(it.Name).Struct(fields(it.Fields)...)
				}

				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			}
		default:
			f.Type().Id(decl.Name).Struct(fields(decl.Record)...)
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtgen <input.adt> <output.go> <package>")
		os.Exit(2)
	}

	parser := participle.MustBuild(&TypeDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := TypeDecls{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, &ast)), 0644)
	if err != nil {
		panic(err)
	}
}
