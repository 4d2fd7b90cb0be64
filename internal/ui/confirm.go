package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks the operator yes/no questions on a terminal. It blocks until
// a valid answer is read: exactly "y" confirms and exactly "n" declines; any
// other input re-prompts. There is no default answer and no timeout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a prompter reading from stdin and writing to stdout.
func NewPrompter() *Prompter {
	return NewPrompterWithStreams(os.Stdin, os.Stdout)
}

// NewPrompterWithStreams returns a prompter over explicit streams. Used by
// tests.
func NewPrompterWithStreams(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm displays question and returns the operator's decision. A read
// error (including EOF with no pending answer) is returned to the caller,
// which should treat it as a decline.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "\n%s ", PromptStyle.Render(question+" (y/n):"))

		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)

		// Accept an unterminated final line before reporting the error.
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if err != nil {
			fmt.Fprintln(p.out)
			return false, err
		}
	}
}
