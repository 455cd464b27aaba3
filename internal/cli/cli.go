// Package cli implements swname's command-line subcommands.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zarlcorp/swname/internal/starname"
	"golang.org/x/term"
)

var (
	// ErrUsage is returned when the arguments cannot be parsed.
	ErrUsage = errors.New("usage: swname <generate|check> [--json] <first> <last> <city> <maiden>")

	// ErrInvalid is returned by CmdCheck when any field fails validation.
	ErrInvalid = errors.New("one or more fields are invalid")

	// ErrForm is returned by CmdGenerate when the input cannot produce a name.
	ErrForm = errors.New(FormError)
)

// FormError is the message shown when generation fails.
const FormError = "please fix the errors in the form"

// formError reports only FormError. The generator's error stays reachable
// through errors.Is but is never part of the message.
type formError struct {
	cause error
}

func (e formError) Error() string { return FormError }

func (e formError) Unwrap() []error { return []error{ErrForm, e.cause} }

type generateOutput struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Name  string `json:"name"`
}

type checkOutput struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// CmdGenerate prints the name derived from the four values in args, or read
// one per line from stdin when args has none and stdin is not a terminal.
func CmdGenerate(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	in, err := readInput(args, stdin)
	if err != nil {
		return err
	}

	name, err := starname.Generate(in)
	if err != nil {
		slog.Debug("generate", "result", "err", "err", err)
		printVerdicts(stderr, in, false)
		return formError{cause: err}
	}

	if hasFlag(args, "--json") {
		return printJSON(stdout, generateOutput{
			First: name.First,
			Last:  name.Last,
			Name:  name.String(),
		})
	}

	fmt.Fprintln(stdout, name)
	return nil
}

// CmdCheck prints the inline verdict for each field. It returns ErrInvalid
// when any field fails.
func CmdCheck(args []string, stdin io.Reader, stdout io.Writer) error {
	in, err := readInput(args, stdin)
	if err != nil {
		return err
	}

	if hasFlag(args, "--json") {
		verdicts := in.Verdicts()
		var out []checkOutput
		for i, f := range starname.Fields() {
			v := verdicts[i]
			out = append(out, checkOutput{
				Field:   f.Label(),
				Value:   in.Value(f),
				OK:      v.OK(),
				Message: v.Message(),
			})
		}
		if err := printJSON(stdout, out); err != nil {
			return err
		}
	} else {
		printVerdicts(stdout, in, true)
	}

	if !in.Valid() {
		return ErrInvalid
	}
	return nil
}

// printVerdicts writes one line per field. Passing fields are only listed
// when all is true.
func printVerdicts(w io.Writer, in starname.Input, all bool) {
	verdicts := in.Verdicts()
	for i, f := range starname.Fields() {
		v := verdicts[i]
		switch {
		case !v.OK():
			fmt.Fprintf(w, "  %-22s %s\n", f.Label()+":", v.Message())
		case all:
			fmt.Fprintf(w, "  %-22s ok\n", f.Label()+":")
		}
	}
}

// readInput takes the four values from positional args, falling back to
// piped stdin.
func readInput(args []string, stdin io.Reader) (starname.Input, error) {
	vals := positional(args)
	if len(vals) == 0 && stdin != nil && !isTerminal(stdin) {
		var err error
		vals, err = readLines(stdin, 4)
		if err != nil {
			return starname.Input{}, err
		}
	}

	if len(vals) != 4 {
		return starname.Input{}, fmt.Errorf("%w: expected 4 values, got %d", ErrUsage, len(vals))
	}

	return starname.Input{
		First:      vals[0],
		Last:       vals[1],
		CityBorn:   vals[2],
		MaidenName: vals[3],
	}, nil
}

func readLines(r io.Reader, n int) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for len(lines) < n && sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func positional(args []string) []string {
	var out []string
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}
