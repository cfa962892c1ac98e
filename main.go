package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/classjs/lexer"
	"github.com/pontaoski/classjs/reader"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func build(ctx context.Context, dir, output string, m moduleInfo, gen generator) (string, error) {
	js, _, err := compileDir(ctx, dir, m, gen)
	if err != nil {
		return "", err
	}

	out := outputPath(dir, output, m)
	if err := ioutil.WriteFile(out, []byte(js), 0644); err != nil {
		return "", tracerr.Wrap(err)
	}

	return out, nil
}

// singleFile reads the file named by the first argument along with the
// module it belongs to.
func singleFile(c *cli.Context) (string, string, error) {
	path := c.Args().First()
	if path == "" {
		return "", "", fmt.Errorf("no file provided")
	}

	m, err := moduleOrDefault(".")
	if err != nil {
		return "", "", err
	}

	src, err := reader.ReadSource(path, m.extension())
	if err != nil {
		return "", "", err
	}

	return path, src, nil
}

func main() {
	app := &cli.App{
		Name:  "classjs",
		Usage: "compile a small class language to JavaScript",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			if _, ok := err.(tracerr.Error); ok {
				tracerr.PrintSourceColor(err)
				os.Exit(1)
			}
			log.Fatalf("error with classjs: %s", err)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "init a directory",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "version",
						Value: defaultVersion,
					},
					&cli.StringFlag{
						Name:  "extension",
						Value: defaultExtension,
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return fmt.Errorf("no module name provided")
					}

					return writeModule(".", moduleInfo{
						Package:   name,
						Version:   c.String("version"),
						Extension: c.String("extension"),
					})
				},
			},
			{
				Name:  "build",
				Usage: "build the module in the current directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
					&cli.StringFlag{
						Name:  "target",
						Usage: "es5 for constructor functions, es6 for class declarations",
						Value: defaultTarget,
					},
				},
				Action: func(c *cli.Context) error {
					m, err := readModule(".")
					if err != nil {
						return err
					}
					gen, err := targetGenerator(c.String("target"))
					if err != nil {
						return err
					}

					if c.Bool("dump") {
						_, units, err := compileDir(c.Context, ".", m, gen)
						if err != nil {
							return err
						}
						for _, u := range units {
							fmt.Println("// " + u.name)
							repr.Println(u.prog, repr.Indent("\t"), repr.OmitEmpty(true))
						}
						return nil
					}

					out, err := build(c.Context, ".", c.String("output"), m, gen)
					if err != nil {
						return err
					}
					log.Printf("wrote %s", out)
					return nil
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					path, src, err := singleFile(c)
					if err != nil {
						return err
					}

					tokens, err := lexer.Tokenize(src, path)
					if err != nil {
						return err
					}
					for _, tok := range tokens {
						fmt.Printf("%s\t%s\t%q\n", tok.Location.From, tok.Kind, tok.Lexeme)
					}
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					path, src, err := singleFile(c)
					if err != nil {
						return err
					}

					prog, err := parseSource(path, src)
					if err != nil {
						return err
					}
					repr.Println(prog, repr.Indent("\t"), repr.OmitEmpty(true))
					return nil
				},
			},
			{
				Name:      "outline",
				Usage:     "print the classes and method signatures of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					path, src, err := singleFile(c)
					if err != nil {
						return err
					}

					prog, err := parseSource(path, src)
					if err != nil {
						return err
					}
					for _, class := range prog.Classes {
						fmt.Print(class.Outline())
					}
					return nil
				},
			},
			{
				Name:  "watch",
				Usage: "rebuild the module whenever a source file changes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.StringFlag{
						Name:  "target",
						Usage: "es5 for constructor functions, es6 for class declarations",
						Value: defaultTarget,
					},
				},
				Action: func(c *cli.Context) error {
					m, err := readModule(".")
					if err != nil {
						return err
					}
					gen, err := targetGenerator(c.String("target"))
					if err != nil {
						return err
					}

					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
					defer stop()

					rebuild := func() {
						out, err := build(ctx, ".", c.String("output"), m, gen)
						if err != nil {
							tracerr.PrintSourceColor(err)
							return
						}
						log.Printf("wrote %s", out)
					}

					rebuild()
					return reader.Watch(ctx, ".", m.extension(), func(path string) {
						log.Printf("%s changed", path)
						rebuild()
					})
				},
			},
		},
	}
	app.Run(os.Args)
}
