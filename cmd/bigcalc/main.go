package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/hiroq/bigcalc"
)

// Version is a version of this build.
var Version = "bigcalc/0.1"

func main() {
	var (
		precision int
		width     int
		verbose   bool
	)
	pflag.IntVarP(&precision, "precision", "p", bigcalc.DefaultPrecision, `division precision in decimal digits`)
	pflag.IntVarP(&width, "width", "w", bigcalc.DefaultMaxWidth, `widest plain result before scientific notation`)
	pflag.BoolVarP(&verbose, "verbose", "v", false, `verbose`)
	pflag.Parse()

	c := &bigcalc.Calculator{Precision: precision, MaxWidth: width}

	// Non-interactive: evaluate each argument and exit.
	if args := pflag.Args(); len(args) > 0 {
		for _, a := range args {
			result, err := c.Evaluate(a)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
			fmt.Println(result)
		}
		return
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "> ")
	defer fmt.Printf("\r\n")

	log.SetOutput(t)

	for {
		if err := handleLine(c, t, verbose); err != nil {
			if err == io.EOF {
				return
			}
			log.Panic(err)
		}
	}
}

func handleLine(c *bigcalc.Calculator, t *terminal.Terminal, verbose bool) error {
	line, err := t.ReadLine()
	if err != nil {
		if err == io.EOF {
			return err
		}
		log.Printf("failed to read line: %v", err)
		return nil
	}

	switch strings.TrimSpace(line) {
	case "":
		return nil
	case "quit", "exit":
		return io.EOF
	case "version":
		_, err := fmt.Fprintf(t, "%s\n", Version)
		return err
	}

	if verbose {
		log.Printf("evaluating %d token(s)", len(strings.Fields(line)))
	}

	result, err := c.Evaluate(line)
	if err != nil {
		_, werr := fmt.Fprintf(t, "Error: %s\n", err)
		return werr
	}
	_, err = fmt.Fprintf(t, "= %s\n", result)
	return err
}
