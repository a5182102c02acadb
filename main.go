// Command simplex runs the Simplex interpreter, either as a REPL, over
// stdin, or over a file named on the command line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-simplex/simplex/internal/value"
	"github.com/go-simplex/simplex/pkg/eval"
)

// dashes frames reported errors above and below, matching
// original_source/main.cpp's rule-line error presentation.
const dashes = "--------------------------------------------------------------------"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "simplex [file]",
		Short:         "Run the Simplex interpreter",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

// run dispatches between the three modes described in the specification:
// a named file, a non-interactive stdin, or an interactive REPL.
func run(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		return runREPL(os.Stdin, os.Stdout)
	}

	return runStdin(os.Stdin, os.Stdout)
}

// runFile reads path and evaluates it as a single program. os.Stdin
// remains available as the evaluator's input stream, since reading the
// program's source did not consume it.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ev, err := eval.New(os.Stdin, os.Stdout)
	if err != nil {
		printError(err)

		return err
	}

	if _, err := ev.EvalSource(src, path); err != nil {
		printError(err)

		return err
	}

	return nil
}

// runStdin evaluates the entirety of stdin as one program. Because stdin
// is consumed in full to obtain the program's source text, the evaluator
// is given an empty input stream: a program that also calls (read) in this
// mode observes immediate EOF.
func runStdin(in io.Reader, out io.Writer) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	ev, err := eval.New(strings.NewReader(""), out)
	if err != nil {
		printError(err)

		return err
	}

	if _, err := ev.EvalSource(src, "<stdin>"); err != nil {
		printError(err)

		return err
	}

	return nil
}

// runREPL reads one line at a time from in, evaluating it as a complete
// program and printing its result, until EOF or a ":quit"/":q" command.
// Errors are caught and reported per iteration without halting the loop,
// per the specification's REPL recovery policy. The same *bufio.Reader
// backs both this loop's line reads and the evaluator's "read" builtin,
// so the two never race over buffered-ahead bytes.
func runREPL(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	ev, err := eval.New(reader, out)
	if err != nil {
		printError(err)

		return err
	}

	fmt.Fprint(out, "> ")
	for {
		line, readErr := reader.ReadString('\n')

		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case ":quit", ":q":
			return nil
		case "":
			// blank line, nothing to evaluate
		default:
			result, evalErr := ev.EvalSource([]byte(line), "<repl>")
			if evalErr != nil {
				printError(evalErr)
			} else {
				fmt.Fprintln(out, value.ToDisplayString(result))
			}
		}

		if readErr != nil {
			return nil
		}

		fmt.Fprint(out, "> ")
	}
}

// printError writes err to stderr framed by rule lines, per the
// specification's diagnostics contract.
func printError(err error) {
	fmt.Fprintln(os.Stderr, dashes)
	fmt.Fprintln(os.Stderr, err.Error())
	fmt.Fprintln(os.Stderr, dashes)
}
