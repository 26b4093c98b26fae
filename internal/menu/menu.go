// Package menu prompts for numeric field selections on a line-oriented
// terminal.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
)

// ErrAborted is returned when input ends before a valid selection is made.
var ErrAborted = errors.New("selection aborted")

// Prompter reads field choices from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Menu renders the numbered list of fields.
func Menu() string {
	var b strings.Builder
	for i, f := range dataset.Fields() {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, f.Column())
	}
	return b.String()
}

// Field asks for one field until the answer parses. Invalid answers are
// reported and the question is repeated.
func (p *Prompter) Field(question string) (dataset.Field, error) {
	fmt.Fprint(p.out, Menu())
	for {
		fmt.Fprintf(p.out, "%s [1-%d]: ", question, dataset.NumFields)
		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read selection: %w", err)
			}
			return 0, ErrAborted
		}
		f, err := dataset.ParseField(p.in.Text())
		if err != nil {
			fmt.Fprintf(p.out, "⚠ %v\n", err)
			continue
		}
		return f, nil
	}
}

// Pair asks for an x field and then a distinct y field.
func (p *Prompter) Pair() (x, y dataset.Field, err error) {
	x, err = p.Field("Select the x-axis variable")
	if err != nil {
		return 0, 0, err
	}
	for {
		y, err = p.Field("Select the y-axis variable")
		if err != nil {
			return 0, 0, err
		}
		if y != x {
			return x, y, nil
		}
		fmt.Fprintf(p.out, "⚠ y must differ from x (%s)\n", x.Column())
	}
}
