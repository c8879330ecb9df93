package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/plsearch/plsearch"
	"github.com/plsearch/plsearch/engine"
	"github.com/plsearch/plsearch/internal/puzzle"
)

// Version is a version of this build.
var Version = "plsearch/0.1"

func main() {
	var verbose bool
	var count bool
	var max int
	pflag.BoolVarP(&verbose, "verbose", "v", false, `trace the engine's call ports`)
	pflag.BoolVarP(&count, "count", "c", false, `print the number of solutions instead of the solutions`)
	pflag.IntVarP(&max, "max", "n", 1, `maximum number of solutions to print, 0 for all`)
	pflag.Parse()

	e := engine.New()
	if verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		logger.SetOutput(os.Stderr)
		e.SetLogger(logger)
	}

	if pflag.NArg() > 0 {
		for _, name := range pflag.Args() {
			if err := run(os.Stdout, e, name, max, count); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	repl(e, max, count)
}

// repl reads puzzle names interactively when stdin is a terminal,
// otherwise line by line from the pipe.
func repl(e *engine.Engine, max int, count bool) {
	if !terminal.IsTerminal(0) {
		if err := runLines(os.Stdin, os.Stdout, e, max, count); err != nil {
			log.Fatal(err)
		}
		return
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	defer func() {
		_ = terminal.Restore(0, oldState)
	}()

	t := terminal.NewTerminal(os.Stdin, "?- ")
	defer fmt.Printf("\r\n")
	log.SetOutput(t)

	for {
		line, err := t.ReadLine()
		if err != nil {
			return
		}
		name := strings.TrimSpace(line)
		switch name {
		case "":
			continue
		case "halt", "quit", "exit":
			return
		}
		if err := run(t, e, name, max, count); err != nil {
			fmt.Fprintf(t, "%v\n", err)
		}
	}
}

func runLines(r io.Reader, w io.Writer, e *engine.Engine, max int, count bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if err := run(w, e, name, max, count); err != nil {
			return err
		}
	}
	return nil
}

// run solves the named puzzle and writes solutions, or a solution
// count, to w.
func run(w io.Writer, e *engine.Engine, name string, max int, count bool) error {
	switch name {
	case "sendmore":
		p := puzzle.NewSendMore()
		if count {
			fmt.Fprintln(w, plsearch.Count(e, p.Goal()))
			return nil
		}
		rows := plsearch.Collect(e, p.Goal(), max, p.Vars()...)
		if len(rows) == 0 {
			fmt.Fprintln(w, "no.")
			return nil
		}
		for _, row := range rows {
			fmt.Fprint(w, p.Render(row))
		}
	case "magic":
		p := puzzle.NewMagicSquare()
		if count {
			fmt.Fprintln(w, plsearch.Count(e, p.Goal()))
			return nil
		}
		rows := plsearch.Collect(e, p.Goal(), max, p.Vars()...)
		if len(rows) == 0 {
			fmt.Fprintln(w, "no.")
			return nil
		}
		for _, row := range rows {
			sq := p.Square(row)
			for _, line := range sq {
				fmt.Fprintf(w, "%d %d %d\n", line[0], line[1], line[2])
			}
			fmt.Fprintln(w)
		}
	case "color":
		p, err := puzzle.Australia()
		if err != nil {
			return err
		}
		if count {
			fmt.Fprintln(w, plsearch.Count(e, p.Goal()))
			return nil
		}
		rows := plsearch.Collect(e, p.Goal(), max, p.Vars()...)
		if len(rows) == 0 {
			fmt.Fprintln(w, "no.")
			return nil
		}
		for _, row := range rows {
			a := p.Assignment(row)
			for _, r := range p.Regions {
				fmt.Fprintf(w, "%s=%s ", r, a[r])
			}
			fmt.Fprintln(w)
		}
	default:
		return fmt.Errorf("unknown puzzle %q (try sendmore, magic or color)", name)
	}
	return nil
}
