// Package ast holds the syntax tree of a classjs program.
//
// Every node family is a closed sum type: an interface with an unexported
// is_X marker and one Go type per variant. The types are generated from
// ast.adt; consumers type switch over them.
package ast

//go:generate go run ../tool ast.adt ast_gen.go ast
