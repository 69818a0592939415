package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Prompt texts shown in interactive mode.
const (
	levelPrompt = "Please enter the level count of pyramid: "
	cellPrompt  = "Level %d, Number %d: "
)

// Prompter reads a pyramid interactively: first the level count, then
// every value row by row. Prompts go to Out, answers come from In as
// whitespace-separated tokens, so a whole pyramid may also be piped in.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Prompt runs the interactive session and returns the rows.
// Errors wrap ErrBadLevelCount, ErrBadNumber or ErrUnexpectedEOF.
func (p Prompter) Prompt() ([][]int64, error) {
	sc := bufio.NewScanner(p.In)
	sc.Split(bufio.ScanWords)

	fmt.Fprint(p.Out, levelPrompt)
	tok, err := nextToken(sc)
	if err != nil {
		return nil, fmt.Errorf("level count: %w", err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: level count %q", ErrBadNumber, tok)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLevelCount, n)
	}

	// Rows grow with the values actually read; n alone never sizes an allocation.
	var rows [][]int64
	for i := 1; i <= n; i++ {
		var row []int64
		for j := 0; j < i; j++ {
			fmt.Fprintf(p.Out, cellPrompt, i, j+1)
			tok, err = nextToken(sc)
			if err != nil {
				return nil, fmt.Errorf("level %d number %d: %w", i, j+1, err)
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: level %d number %d %q", ErrBadNumber, i, j+1, tok)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// nextToken returns the next whitespace-delimited token, or
// ErrUnexpectedEOF when the stream is exhausted.
func nextToken(sc *bufio.Scanner) (string, error) {
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return "", ErrUnexpectedEOF
}
