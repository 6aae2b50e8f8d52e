package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/keycalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname                string
		nl, echo, resume, tui bool
	)
	flag.StringVar(&inname, "in", "", "input file of key presses (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate calculations")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&resume, "resume", false, "return to the input when a key follows a result")
	flag.BoolVar(&tui, "tui", false, "run an interactive keypad")
	flag.Parse()

	var opts []keycalc.Option
	if resume {
		opts = append(opts, keycalc.ResumeOnAppend())
	}
	if tui {
		if err := runTUI(keycalc.New(opts...)); err != nil {
			log.Fatal(err)
		}
		return
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	s := session{calc: keycalc.New(opts...), out: w, lines: nl, echo: echo}
	for _, in := range ins {
		if err := s.run(in); err != nil {
			w.Flush()
			log.Fatal(err)
		}
	}
}

// session feeds key presses from text input to a calculator and prints the
// display after every evaluation and at the end of each input.
type session struct {
	calc  *keycalc.Calculator
	out   io.Writer
	lines bool
	echo  bool
	// pending is whether keys have been pressed since the display was last
	// printed.
	pending bool
}

func (s *session) run(in io.RuneScanner) error {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if s.lines && r == '\n' {
			if err := s.flush(); err != nil {
				return err
			}
			s.calc.Clear()
			continue
		}
		if s.echo && keyAction(r) == actionEquals {
			if a, err := keycalc.ParseString(s.calc.Input()); err == nil {
				if _, err := fmt.Fprintf(s.out, "%v : ", a); err != nil {
					return err
				}
			}
		}
		switch press(s.calc, r) {
		case actionNone:
			// Ignored keys leave the display as it was.
		case actionEquals:
			s.pending = true
			if err := s.flush(); err != nil {
				return err
			}
		default:
			s.pending = true
		}
	}
	return s.flush()
}

// flush prints the display if any keys are pending.
func (s *session) flush() error {
	if !s.pending {
		return nil
	}
	s.pending = false
	_, err := fmt.Fprintln(s.out, s.calc.Display())
	return err
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
