// SPDX-License-Identifier: MIT

package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompts used by the interactive front end.
const (
	PromptSize    = "Enter size of triangular matrix: "
	PromptThreads = "Enter number of threads: "
)

// Prompter asks for positive integers on a line-oriented text stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Int writes prompt, reads one line and parses it as a positive integer.
// Errors:
//   - ErrInvalidInput for empty, non-numeric or non-positive answers, and
//     when the stream ends before an answer.
//   - Write errors on out and read errors other than io.EOF, wrapped.
func (p *Prompter) Int(prompt string) (int, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return 0, fmt.Errorf("prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("empty answer: %w", ErrInvalidInput)
	}
	v, perr := strconv.Atoi(line)
	if perr != nil || v <= 0 {
		return 0, fmt.Errorf("%q: %w", line, ErrInvalidInput)
	}

	return v, nil
}
