package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Reader prompts on out and reads line-oriented answers from in. Invalid
// input re-prompts; an error from Reader means the stream itself ended.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates an interactive reader over the given streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Count prompts until a positive integer parses.
func (r *Reader) Count() (int, error) {
	for {
		fmt.Fprint(r.out, "Number of measurements: ")
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 {
			fmt.Fprintln(r.out, "Please enter a positive integer.")
			continue
		}
		return n, nil
	}
}

// Measurement prompts until a finite real number parses.
func (r *Reader) Measurement(index int) (float64, error) {
	for {
		fmt.Fprintf(r.out, "Measurement %d (lux): ", index)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(r.out, "Please enter a finite number.")
			continue
		}
		return v, nil
	}
}

func (r *Reader) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
