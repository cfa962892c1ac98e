package codegen

import (
	"testing"

	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/errors"
	"github.com/pontaoski/classjs/lexer"
	"github.com/pontaoski/classjs/parser"
	"github.com/ztrue/tracerr"
)

func compile(t *testing.T, src string) string {
	t.Helper()

	tokens, err := lexer.Tokenize(src, "test")
	if err != nil {
		t.Fatalf("tokenizing %q: %s", src, err)
	}
	prog, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parsing %q: %s", src, err)
	}
	out, err := Generate(prog)
	if err != nil {
		t.Fatalf("generating %q: %s", src, err)
	}
	return out
}

func TestStatements(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"int x;", "let x;\n"},
		{"Animal cat;", "let cat;\n"},
		{"x = 1;", "x = 1;\n"},
		{"this.x = y;", "this.x = y;\n"},
		{"x;", "x;\n"},
		{"break;", "break;\n"},
		{"return;", "return;\n"},
		{"return x;", "return x;\n"},
		{"{}", "{}\n"},
		{"{ x = 1; break; }", "{\n\tx = 1;\n\tbreak;\n}\n"},
		{"while (true) break;", "while (true) break;\n"},
		{"while (x) { while (y) { break; } }", "while (x) {\n\twhile (y) {\n\t\tbreak;\n\t}\n}\n"},
		{"if (x) y; else z;", "if (x) y; else z;\n"},
		{"if (x) { y; }", "if (x) {\n\ty;\n}\n"},
		{"if (a) if (b) x; else y;", "if (a) if (b) x; else y;\n"},
		{"a; b;", "a;\nb;\n"},
		{"while (x) int y;", "while (x) {\n\tlet y;\n}\n"},
		{"if (x) Cat c; else bool b;", "if (x) {\n\tlet c;\n} else {\n\tlet b;\n}\n"},
		{"while (x) { while (y) int z; }", "while (x) {\n\twhile (y) {\n\t\tlet z;\n\t}\n}\n"},
	}

	for _, c := range cases {
		if got := compile(t, c.src); got != c.want {
			t.Errorf("%q:\ngot  %q\nwant %q", c.src, got, c.want)
		}
	}
}

func TestExpressions(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42;", "42;\n"},
		{"true;", "true;\n"},
		{"false;", "false;\n"},
		{"this;", "this;\n"},
		{"println(1);", "console.log(1);\n"},
		{"new Cat();", "new Cat();\n"},
		{"1 + 2;", "(1) + (2);\n"},
		{"1 * 2 + 3 / 4;", "((1) * (2)) + ((3) / (4));\n"},
		{"1 - (2 - 3);", "(1) - ((2) - (3));\n"},
		{"a.b;", "a.b;\n"},
		{"a.b(x).c;", "a.b(x).c;\n"},
		{"cat.speak();", "cat.speak();\n"},
		{"o.f(1, x + 1, new A());", "o.f(1, (x) + (1), new A());\n"},
		{"this.f().g + 1;", "(this.f().g) + (1);\n"},
		{"(a + b).c();", "((a) + (b)).c();\n"},
		{"x = (1 - 2).f;", "x = ((1) - (2)).f;\n"},
		{"(a * b).c.d(1);", "((a) * (b)).c.d(1);\n"},
		{"(a.b).c;", "a.b.c;\n"},
	}

	for _, c := range cases {
		if got := compile(t, c.src); got != c.want {
			t.Errorf("%q:\ngot  %q\nwant %q", c.src, got, c.want)
		}
	}
}

const inheritance = `class Animal {
  int legs;
  init(int n) { legs = n; }
  method speak() Void { return println(0); }
}
class Cat extends Animal {
  bool indoor;
  init(bool i) { super(4); indoor = i; }
  method speak() Void { return println(1); }
  method move(int a, int b) int { while (a) { a = a - 1; } return a + b; }
}
class Dog extends Animal {
  init() { }
  method speak() Void { return println(2); }
}

Animal cat;
cat = new Cat();
cat.speak();`

func TestClass(t *testing.T) {
	src := "class Animal { init() {} method speak() Void { return println(0); } } Animal a; a.speak();"
	want := `function Animal() {
}
Animal.prototype.speak = function() {
	return console.log(0);
};

let a;
a.speak();
`

	if got := compile(t, src); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInheritance(t *testing.T) {
	src := inheritance

	want := `function Animal(n) {
	let legs;
	legs = n;
}
Animal.prototype.speak = function() {
	return console.log(0);
};

function Cat(i) {
	Animal.call(this, 4);
	let indoor;
	indoor = i;
}
Object.setPrototypeOf(Cat.prototype, Animal.prototype);
Cat.prototype.speak = function() {
	return console.log(1);
};
Cat.prototype.move = function(a, b) {
	while (a) {
		a = (a) - (1);
	}
	return (a) + (b);
};

function Dog() {
}
Object.setPrototypeOf(Dog.prototype, Animal.prototype);
Dog.prototype.speak = function() {
	return console.log(2);
};

let cat;
cat = new Cat();
cat.speak();
`

	if got := compile(t, src); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuperWithoutArguments(t *testing.T) {
	src := "class Cat extends Animal { init() { super(); } } x;"
	want := "function Cat() {\n\tAnimal.call(this);\n}\nObject.setPrototypeOf(Cat.prototype, Animal.prototype);\n\nx;\n"

	if got := compile(t, src); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestEmptyMethod(t *testing.T) {
	src := "class A { init() {} method f(int x) void {} } x;"
	want := "function A() {\n}\nA.prototype.f = function(x) {};\n\nx;\n"

	if got := compile(t, src); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestIdempotent(t *testing.T) {
	src := "class A { init() {} method f() int { return 1 + 2 * 3; } } A a; a = new A(); println(a.f());"
	first := compile(t, src)
	for i := 0; i < 3; i++ {
		if again := compile(t, src); again != first {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestUnhandledNode(t *testing.T) {
	progs := []ast.Program{
		{Stmts: []ast.Stmt{nil}},
		{Stmts: []ast.Stmt{ast.ExpStmt{}}},
		{Stmts: []ast.Stmt{ast.ExpStmt{Exp: ast.Binop{Left: ast.IntegerLiteral(1), Right: ast.IntegerLiteral(2)}}}},
		{Stmts: []ast.Stmt{ast.While{Cond: ast.True{}}}},
	}

	for i, prog := range progs {
		out, err := Generate(prog)
		if err == nil {
			t.Errorf("program %d: expected an error, got %q", i, out)
			continue
		}
		if out != "" {
			t.Errorf("program %d: got partial output %q", i, out)
		}
		if _, ok := tracerr.Unwrap(err).(errors.UnhandledNode); !ok {
			t.Errorf("program %d: got %T", i, tracerr.Unwrap(err))
		}
	}
}
