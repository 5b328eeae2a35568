// Command advcalc is an interactive calculator over the eval package.
//
// With arguments, each argument is evaluated as one expression and the
// results are printed. Without arguments, advcalc runs a prompt loop that
// reads one expression per line; the commands help, exit, quit, and clear
// are handled by the loop and never reach the evaluator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/advcalc/eval"
)

const banner = `========================================
  Advanced Calculator
========================================`

const helpText = `Available Commands:
  help       - Show this help message
  exit/quit  - Exit the calculator
  clear      - Clear the screen

Examples:
  2 + 2 * 3
  sin(pi/2)
  sqrt(144)
  ln(e^2)`

func main() {
	log.SetFlags(0)
	var (
		verb  string
		defs  string
		given [][2]string
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&defs, "consts", "", "YAML file of extra constant definitions")
	flag.Func("given", "name=value constant definition (any number of times)", addgiven)
	flag.Parse()

	ev := eval.New()
	if defs != "" {
		if err := loadConsts(ev, defs); err != nil {
			log.Fatal(err)
		}
	}
	for _, d := range given {
		// The value is itself an expression, so -given tau=2*pi works.
		v, err := ev.Evaluate(d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		ev.RegisterConst(d[0], v)
	}

	verb += "\n"
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			v, err := ev.Evaluate(arg)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(verb, v)
		}
		return
	}
	repl(ev, verb)
}

// repl reads one line at a time, filters the command vocabulary, and hands
// everything else to the evaluator. A failed expression reports its error
// and the loop continues; registrations persist across failures.
func repl(ev *eval.Evaluator, verb string) {
	fmt.Println(banner)
	fmt.Println()
	fmt.Println(helpText)
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "help":
			fmt.Println(helpText)
			continue
		case "clear":
			fmt.Print("\x1b[2J\x1b[H")
			fmt.Println(banner)
			continue
		}
		v, err := ev.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Printf("Result: "+verb, v)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// loadConsts registers constants from a YAML mapping of names to values.
func loadConsts(ev *eval.Evaluator, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var m map[string]float64
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for name, v := range m {
		ev.RegisterConst(name, v)
	}
	return nil
}
