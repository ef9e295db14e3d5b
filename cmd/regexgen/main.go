// Command regexgen emits a small standalone Go source file exposing a
// Test(string) bool function bound to one fixed pattern. The generated file
// imports the engine and compiles the pattern with MustCompile when its
// package is initialized; the pattern is validated once at generation time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"

	regexpotata "github.com/luckasRanarison/regex-potata"
)

func main() {
	pkg := flag.String("pkg", "main", "package name for the generated file")
	fn := flag.String("func", "Test", "generated function name")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: regexgen -pkg=mypkg -func=MatchesIP <pattern>")
		os.Exit(2)
	}
	pattern := flag.Arg(0)

	if err := generate(pattern, *pkg, *fn, *out); err != nil {
		fmt.Fprintf(os.Stderr, "regexgen: %v\n", err)
		os.Exit(1)
	}
}

func generate(pattern, pkgName, funcName, outPath string) error {
	// Compile once up front purely to reject a bad pattern before we
	// generate source that would fail the same way at init time.
	if _, err := regexpotata.Compile(pattern); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by regexgen. DO NOT EDIT.")

	f.ImportAlias("github.com/luckasRanarison/regex-potata", "regexpotata")

	f.Var().Id("compiled").Op("=").Qual(
		"github.com/luckasRanarison/regex-potata", "MustCompile",
	).Call(jen.Lit(pattern))

	f.Commentf("%s reports whether input matches `%s`.", funcName, pattern)
	f.Func().Id(funcName).Params(jen.Id("input").String()).Bool().Block(
		jen.Return(jen.Id("compiled").Dot("Test").Call(jen.Id("input"))),
	)

	if outPath == "" {
		return f.Render(os.Stdout)
	}
	return f.Save(outPath)
}
