// Package input turns text into the well-formed triangular rows that
// pyramid.New accepts. It is the only place that validates row lengths
// against user data and reports line numbers.
//
// Two sources are supported:
//
//   - Files (ReadFile / ReadRows): one row per non-blank line, values
//     separated by any whitespace. Row i must hold exactly i values.
//   - Interactive sessions (Prompter): a level count followed by one
//     prompted value per cell.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single row; a 100k-row pyramid line of 7-digit
// values stays well below it.
const maxLineBytes = 16 << 20

// ReadFile opens path and parses it with ReadRows.
// An open failure wraps ErrOpenFile.
func ReadFile(path string) ([][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer f.Close()

	return ReadRows(f)
}

// ReadRows parses a pyramid, one row per non-blank line.
// Errors wrap ErrBadNumber, ErrRowLength or ErrNoRows and name the
// 1-based line they refer to.
// Complexity: O(total input size).
func ReadRows(r io.Reader) ([][]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]int64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		// Blank lines (typically a trailing newline) carry no row.
		if len(fields) == 0 {
			continue
		}
		want := len(rows) + 1
		if len(fields) != want {
			return nil, fmt.Errorf("%w: line %d holds %d values, row %d needs %d",
				ErrRowLength, line, len(fields), want, want)
		}
		row := make([]int64, want)
		for j, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d value %d %q", ErrBadNumber, line, j+1, tok)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read line %d: %w", line+1, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}
