package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb    string
		nl, echo, basic bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default shortest decimal)")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&basic, "basic", false, "only allow numbers, parentheses, and + - * /")
	flag.Parse()

	var opts []calc.ParseOption
	if basic {
		opts = append(opts, calc.Basic())
	}
	sh := shell{out: os.Stdout, verb: verb, echo: echo, opts: opts}

	if inname == "" && flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		sh.repl(os.Stdin)
		return
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	failed := 0
	for _, in := range ins {
		if nl {
			n, err := sh.lines(in)
			if err != nil {
				log.Fatal(err)
			}
			failed += n
			continue
		}
		if !sh.run(bufio.NewReader(in)) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// shell evaluates expressions and writes their results, in the role of a
// calculator's display.
type shell struct {
	out  io.Writer
	verb string
	echo bool
	opts []calc.ParseOption
}

// run evaluates a single expression from src. Errors are logged. The result
// reports whether evaluation succeeded.
func (sh *shell) run(src io.RuneScanner) bool {
	a, err := calc.Parse(src, sh.opts...)
	if err != nil {
		log.Print(err)
		return false
	}
	if sh.echo {
		fmt.Fprintf(sh.out, "%v : ", a)
	}
	r, err := a.Eval()
	if err != nil {
		if sh.echo {
			fmt.Fprintln(sh.out)
		}
		log.Print(err)
		return false
	}
	sh.print(r)
	return true
}

func (sh *shell) print(r float64) {
	if sh.verb == "" {
		fmt.Fprintln(sh.out, calc.Format(r))
		return
	}
	fmt.Fprintf(sh.out, sh.verb+"\n", r)
}

// lines evaluates each non-blank line of in as an expression. The result is
// the number of lines that failed.
func (sh *shell) lines(in io.Reader) (int, error) {
	failed := 0
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !sh.run(strings.NewReader(line)) {
			failed++
		}
	}
	return failed, scan.Err()
}

// repl reads expressions from an interactive terminal until EOF. Errors never
// end the session.
func (sh *shell) repl(in io.Reader) {
	scan := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		sh.run(strings.NewReader(line))
	}
	fmt.Fprintln(sh.out)
	if err := scan.Err(); err != nil {
		log.Print(err)
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
