// SPDX-License-Identifier: MIT

package oracle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// Console asks a human on a line-oriented terminal. Each answer is one line
// holding 1, 2 or 3; anything else prints the prompt again.
//
// Reading blocks until a full line arrives, so cancelling ctx takes effect
// between lines, not during a read.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading from r and prompting on w.
// A *bufio.Reader is used as is, so callers can share it with other readers
// of the same stream without losing buffered input.
func NewConsole(r io.Reader, w io.Writer) *Console {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Console{in: br, out: w}
}

// Judge prompts until a valid answer is read. It returns ErrNeedInput
// (joined with io.EOF) when the input ends first.
func (c *Console) Judge(ctx context.Context, q Query) (prefmatrix.Relation, error) {
	for {
		if err := ctx.Err(); err != nil {
			return prefmatrix.Unknown, err
		}
		fmt.Fprintf(c.out,
			"Comparing %s and %s. Enter 1 if %s is better, 2 if they are equal, 3 if %s is better: ",
			q.A, q.B, q.A, q.B)

		line, readErr := c.in.ReadString('\n')
		if rel, err := prefmatrix.ParseRelation(line); err == nil {
			return rel, nil
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				fmt.Fprintln(c.out)
			}
			return prefmatrix.Unknown, fmt.Errorf("%w: %w", ErrNeedInput, readErr)
		}
	}
}
