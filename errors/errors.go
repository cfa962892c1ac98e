package errors

import (
	"fmt"

	"github.com/pontaoski/classjs/types"
)

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	// Context names the construct being parsed, e.g. "variable declaration".
	Context  string
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Location)
	}
	return fmt.Sprintf("got a %s, expected one of %s in %s. %s", e.Got, e.Expected, e.Context, e.Location)
}

// UnexpectedCharacter is a lexical error: no token rule accepts Char.
type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q. %s", e.Char, e.Location)
}

// MissingStatement is returned when a program has no top-level statement.
type MissingStatement struct {
	Location types.Span
}

func (e MissingStatement) Error() string {
	return fmt.Sprintf("a program must end with at least one statement. %s", e.Location)
}

type SuperWithoutBase struct {
	Class    string
	Location types.Span
}

func (e SuperWithoutBase) Error() string {
	return fmt.Sprintf("class %s calls super but does not extend a class. %s", e.Class, e.Location)
}

// UnhandledNode means a consumer of the AST met a node it does not know.
// It is never caused by user input.
type UnhandledNode struct {
	Node interface{}
}

func (e UnhandledNode) Error() string {
	return fmt.Sprintf("unhandled AST node %T", e.Node)
}

// InvalidInteger is an integer literal that does not fit in 64 bits.
type InvalidInteger struct {
	Lexeme   string
	Location types.Span
}

func (e InvalidInteger) Error() string {
	return fmt.Sprintf("integer literal %s is out of range. %s", e.Lexeme, e.Location)
}

type WrongExtension struct {
	Path string
	Want string
}

func (e WrongExtension) Error() string {
	return fmt.Sprintf("%s is not a %s source file", e.Path, e.Want)
}
