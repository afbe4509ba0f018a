package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Line reads whole input lines from a terminal. It implements the
// resolver's Prompter contract: both calls block, output is written
// eagerly so the prompt is visible before the read.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter over the given streams.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Terminal returns a line prompter on the process's stdin/stdout.
func Terminal() *Line {
	return NewLine(os.Stdin, os.Stdout)
}

// Println prints text followed by a newline.
func (l *Line) Println(text string) {
	fmt.Fprintln(l.out, text)
}

// ReadLine prints prompt and reads one line of input, trimming the
// trailing newline. A read that ends the stream without yielding any
// input is an error.
func (l *Line) ReadLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)

	line, err := l.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
