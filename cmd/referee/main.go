// Command referee is the thin CLI wrapper spec.md §6 describes: it reads
// a Referee specification file, drives the core (parse, type-check,
// rewrite, canonicalize), and prints the canonical form of every
// declared specification pattern to standard output.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rafiw/referee-sub000/internal/cache"
	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/parser"
	"github.com/rafiw/referee-sub000/pkg/printer"
	"github.com/rafiw/referee-sub000/pkg/rewrite"
	"github.com/rafiw/referee-sub000/pkg/typecheck"
)

func main() {
	app := &cli.App{
		Name:  "referee",
		Usage: "compile Referee temporal specifications to canonical form",
		Commands: []*cli.Command{
			compileCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func compileCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "compile a .rfr specification file and print its canonical form",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cache",
				Usage: "path to the incremental compile cache",
				Value: filepath.Join(os.TempDir(), "referee-cache.json"),
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "always recompile, ignoring any cached result",
			},
		},
		Action: runCompile,
	}
}

func runCompile(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("compile: expected exactly one <file> argument", 1)
	}
	path := c.Args().Get(0)

	source, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("compile: %v", err), 1)
	}
	hash := cache.HashSource(source)

	var ch *cache.Cache
	if !c.Bool("no-cache") {
		ch, err = cache.Load(c.String("cache"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("compile: %v", err), 1)
		}
		if out, ok := ch.Lookup(path, hash); ok {
			fmt.Println(out)
			return nil
		}
	}

	out, err := compile(path, source)
	if err != nil {
		return cli.Exit(fmt.Sprintf("compile: %v", err), 1)
	}

	if ch != nil {
		ch.Store(path, hash, out)
		if err := ch.Save(); err != nil {
			return cli.Exit(fmt.Sprintf("compile: %v", err), 1)
		}
	}

	fmt.Println(out)
	return nil
}

// compile runs the full pipeline spec.md §2 describes: parse, type-check
// every declared pattern, rewrite patterns and timed operators to a
// fixed point, and print one canonical line per pattern.
func compile(path string, source []byte) (string, error) {
	strs := intern.NewTable()
	p, err := parser.New(strs)
	if err != nil {
		return "", err
	}

	res, err := p.ParseBytes(path, source)
	if err != nil {
		return "", err
	}

	calc := typecheck.New(res.Module, strs)
	for _, sp := range res.Specs {
		if err := calc.CheckSpec(sp); err != nil {
			return "", err
		}
	}

	rw := rewrite.New(res.Store, strs)
	pr := printer.New(strs)

	var lines []string
	for _, sp := range res.Specs {
		canonical := rw.Spec(sp)
		lines = append(lines, pr.Print(canonical))
	}
	return strings.Join(lines, "\n"), nil
}
