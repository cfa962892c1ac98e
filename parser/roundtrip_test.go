package parser

import (
	"fmt"
	"testing"

	"github.com/pontaoski/classjs/lexer"
)

func TestStatementsRoundTrip(t *testing.T) {
	extra := []string{
		"(a + b).c();",
		"x = (1 - 2).f;",
		"while (x) int y;",
		"if (x) Cat c; else { y = new Cat(); break; }",
		"return this.f(1, (2 * 3), new C()).h;",
	}

	var srcs []string
	for _, c := range statements {
		srcs = append(srcs, c.src)
	}

	for _, src := range append(srcs, extra...) {
		stmt := stmtFrom(t, src)
		printed := fmt.Sprint(stmt)
		assertNode(t, printed, stmtFrom(t, printed), stmt)
	}
}

func TestProgramRoundTrip(t *testing.T) {
	srcs := []string{
		"class Animal { init() {} method speak() Void { return println(0); } } Animal a; a.speak();",
		`class Animal {
  int legs;
  init(int n) { legs = n; }
  method speak() Void { return println(0); }
}
class Cat extends Animal {
  bool indoor;
  Animal friend;
  init(bool i, Animal f) { super(4, f.legs + 1); indoor = i; this.friend = f; }
  method speak() Void { return println(1); }
  method move(int a, int b) int { while (a) { a = a - 1; } return a + b; }
}
class Dog extends Animal {
  init() { super(); }
  method speak() Void { if (true) return; else { } }
}

Animal cat;
cat = new Cat();
cat.speak();`,
	}

	for _, src := range srcs {
		prog, err := Parse(parserFrom(t, src).tokens)
		if err != nil {
			t.Fatalf("%q: %s", src, err)
		}

		printed := prog.String()
		tokens, err := lexer.Tokenize(printed, "printed")
		if err != nil {
			t.Fatalf("%q: %s", printed, err)
		}
		again, err := Parse(tokens)
		if err != nil {
			t.Fatalf("%q: %s", printed, err)
		}

		assertNode(t, printed, again, prog)
	}
}
