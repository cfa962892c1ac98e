package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pontaoski/classjs/ast"
	"github.com/pontaoski/classjs/codegen"
	"github.com/pontaoski/classjs/lexer"
	"github.com/pontaoski/classjs/parser"
	"github.com/pontaoski/classjs/reader"
	"github.com/ztrue/tracerr"
	"golang.org/x/sync/errgroup"
)

// generator renders a parsed program as JavaScript.
type generator func(ast.Program) (string, error)

const defaultTarget = "es5"

var targets = map[string]generator{
	"es5": codegen.Generate,
	"es6": codegen.GenerateClasses,
}

func targetGenerator(name string) (generator, error) {
	gen, ok := targets[name]
	if !ok {
		return nil, tracerr.Errorf("unknown target %q, want es5 or es6", name)
	}
	return gen, nil
}

type unit struct {
	name string
	prog ast.Program
	js   string
}

func parseSource(name, src string) (ast.Program, error) {
	tokens, err := lexer.Tokenize(src, name)
	if err != nil {
		return ast.Program{}, err
	}
	return parser.Parse(tokens)
}

func compileSource(name, src string, gen generator) (unit, error) {
	prog, err := parseSource(name, src)
	if err != nil {
		return unit{}, err
	}

	js, err := gen(prog)
	if err != nil {
		return unit{}, err
	}

	return unit{name: name, prog: prog, js: js}, nil
}

// compileFiles compiles every path concurrently. The units come back in
// the order of paths, and the first failure cancels the rest.
func compileFiles(ctx context.Context, paths []string, ext string, gen generator) ([]unit, error) {
	units := make([]unit, len(paths))
	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := reader.ReadSource(path, ext)
			if err != nil {
				return err
			}

			u, err := compileSource(filepath.Base(path), src, gen)
			if err != nil {
				return err
			}

			units[i] = u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

func compileDir(ctx context.Context, dir string, m moduleInfo, gen generator) (string, []unit, error) {
	paths, err := reader.Sources(dir, m.extension())
	if err != nil {
		return "", nil, err
	}
	if len(paths) == 0 {
		return "", nil, tracerr.Errorf("no %s files in %s", m.extension(), dir)
	}

	units, err := compileFiles(ctx, paths, m.extension(), gen)
	if err != nil {
		return "", nil, err
	}

	return link(m, units), units, nil
}

// link joins compiled units behind the module header.
func link(m moduleInfo, units []unit) string {
	var sb strings.Builder

	sb.WriteString(m.header())
	for _, u := range units {
		sb.WriteString("\n// " + u.name + "\n")
		sb.WriteString(u.js)
	}

	return sb.String()
}

func outputPath(dir, flag string, m moduleInfo) string {
	out := flag
	if out == "" {
		out = m.Package
	}
	if filepath.Ext(out) != ".js" {
		out += ".js"
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return out
}
