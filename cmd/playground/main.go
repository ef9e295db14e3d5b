// Command playground is an interactive REPL for experimenting with
// patterns: load one, then feed it sample strings to see matches,
// captures, and the underlying NFA graph.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	regexpotata "github.com/luckasRanarison/regex-potata"
)

// repl holds the session's loaded pattern and I/O streams.
type repl struct {
	re     *regexpotata.Regex
	input  io.Reader
	output io.Writer
	prompt string
}

func newREPL() *repl {
	return &repl{input: os.Stdin, output: os.Stdout, prompt: "pattern> "}
}

// isInteractive reports whether the REPL should drive a line-editing
// prompt. Only stdin is checked: when it is not a terminal (for example a
// script piped in), the REPL falls back to a plain scanning loop with no
// banner or prompt.
func (r *repl) isInteractive() bool {
	if r.input != os.Stdin {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func main() {
	r := newREPL()
	if err := r.run(); err != nil {
		fmt.Fprintf(os.Stderr, "playground: %v\n", err)
		os.Exit(1)
	}
}

func (r *repl) run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runScanner()
}

func (r *repl) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt(r.prompt)

	fmt.Fprintln(r.output, "regex-potata playground — type :help for commands")

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil // EOF / Ctrl-D ends the session cleanly
		}
		r.processLine(line, rl)
	}
}

// runScanner drives the same command set as runInteractive but over a
// plain bufio.Scanner, for piped or non-terminal input — no banner, no
// prompt, no line editing.
func (r *repl) runScanner() error {
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		r.processLine(scanner.Text(), nil)
	}
	return scanner.Err()
}

// processLine handles one line of input identically in both modes. rl is
// nil under runScanner, where prompt updates are a no-op.
func (r *repl) processLine(line string, rl *readline.Instance) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if r.handleCommand(line, rl) {
		return
	}
	r.compile(line, rl)
}

func (r *repl) compile(pattern string, rl *readline.Instance) {
	re, err := regexpotata.Compile(pattern)
	if err != nil {
		fmt.Fprintf(r.output, "error: %v\n", err)
		return
	}
	r.re = re
	r.prompt = fmt.Sprintf("%s> ", pattern)
	if rl != nil {
		rl.SetPrompt(r.prompt)
	}
	fmt.Fprintf(r.output, "compiled (%d states)\n", re.NumStates())
}

// handleCommand processes a command (a leading-colon command, or quit/exit)
// and reports whether the line was one (versus a pattern to compile).
func (r *repl) handleCommand(line string, rl *readline.Instance) bool {
	switch {
	case line == ":help":
		r.printHelp()
	case line == "quit", line == "exit", line == ":quit":
		os.Exit(0)
	case line == ":graph":
		r.printGraph()
	case strings.HasPrefix(line, ":test "):
		r.test(strings.TrimPrefix(line, ":test "))
	case strings.HasPrefix(line, ":find "):
		r.find(strings.TrimPrefix(line, ":find "))
	case strings.HasPrefix(line, ":all "):
		r.findAll(strings.TrimPrefix(line, ":all "))
	case strings.HasPrefix(line, ":caps "):
		r.captures(strings.TrimPrefix(line, ":caps "))
	case strings.HasPrefix(line, ":pattern "):
		r.compile(strings.TrimPrefix(line, ":pattern "), rl)
	default:
		return false
	}
	return true
}

func (r *repl) requirePattern() bool {
	if r.re == nil {
		fmt.Fprintln(r.output, "no pattern loaded — type one at the prompt, e.g. \\d+")
		return false
	}
	return true
}

func (r *repl) test(input string) {
	if !r.requirePattern() {
		return
	}
	fmt.Fprintln(r.output, r.re.Test(input))
}

func (r *repl) find(input string) {
	if !r.requirePattern() {
		return
	}
	m, ok := r.re.Find(input)
	if !ok {
		fmt.Fprintln(r.output, "no match")
		return
	}
	runes := []rune(input)
	fmt.Fprintf(r.output, "[%d:%d) %q\n", m.Start, m.End, string(runes[m.Start:m.End]))
}

func (r *repl) findAll(input string) {
	if !r.requirePattern() {
		return
	}
	runes := []rune(input)
	matches := r.re.FindAll(input)
	if len(matches) == 0 {
		fmt.Fprintln(r.output, "no match")
		return
	}
	for _, m := range matches {
		fmt.Fprintf(r.output, "[%d:%d) %q\n", m.Start, m.End, string(runes[m.Start:m.End]))
	}
}

func (r *repl) captures(input string) {
	if !r.requirePattern() {
		return
	}
	caps, ok := r.re.Captures(input)
	if !ok {
		fmt.Fprintln(r.output, "no match")
		return
	}
	runes := []rune(input)
	for _, c := range caps {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("%d", c.Group)
		}
		fmt.Fprintf(r.output, "  %s: [%d:%d) %q\n", name, c.Start, c.End, string(runes[c.Start:c.End]))
	}
}

// printGraph renders the loaded NFA as Graphviz DOT, for piping into dot.
func (r *repl) printGraph() {
	if !r.requirePattern() {
		return
	}
	fmt.Fprintln(r.output, "digraph nfa {")
	fmt.Fprintln(r.output, "  rankdir=LR;")
	for _, s := range r.re.States() {
		shape := "circle"
		if s == r.re.States()[len(r.re.States())-1] {
			shape = "doublecircle"
		}
		fmt.Fprintf(r.output, "  %d [shape=%s];\n", s, shape)
		for _, t := range r.re.Transitions(s) {
			fmt.Fprintf(r.output, "  %d -> %d [label=%q];\n", s, t.Target, t.Label)
		}
	}
	fmt.Fprintln(r.output, "}")
}

func (r *repl) printHelp() {
	fmt.Fprint(r.output, `
commands:
  <pattern>        compile and load a pattern
  :pattern <pat>   same, explicit form
  :test <string>   report whether <string> matches
  :find <string>   show the leftmost match
  :all <string>    show every non-overlapping match
  :caps <string>   show capture groups of the leftmost match
  :graph           print the loaded NFA as Graphviz DOT
  :help            show this message
  quit, exit       leave the playground
`)
}
