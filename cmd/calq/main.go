package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/calq/calq"
)

func main() {
	log.SetFlags(0)
	var (
		verb string
		with [][2]string
		echo bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	env := calq.NewEnv()
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := calq.EvalString(vl, env)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		if err := env.Set(nm, r); err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
	}

	verb += "\n"
	if flag.NArg() > 0 {
		// Evaluate the arguments instead of entering the loop.
		code := 0
		for _, arg := range flag.Args() {
			if !line(arg, env, verb, echo) {
				code = 1
			}
		}
		os.Exit(code)
	}

	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = "> "
	}
	scan := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scan.Scan() {
			break
		}
		in := strings.TrimSpace(scan.Text())
		if in == "" {
			// A blank line ends the session.
			return
		}
		line(in, env, verb, echo)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

var diag = color.New(color.FgRed)

// line parses and evaluates one input line, reporting the result or the
// error. It reports whether the line succeeded.
func line(in string, env *calq.Env, verb string, echo bool) bool {
	e, err := calq.Parse(strings.NewReader(in))
	if err != nil {
		diag.Fprintln(os.Stderr, err)
		return false
	}
	if echo {
		fmt.Printf("%v : ", e)
	}
	r, err := e.Eval(env)
	if err != nil {
		diag.Fprintln(os.Stderr, err)
		return false
	}
	fmt.Printf(verb, r)
	return true
}
