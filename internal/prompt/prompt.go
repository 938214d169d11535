// Package prompt asks the operator questions on the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers from in and writes questions to out. When in is
// a terminal, yes/no questions take a single key press.
type Prompter struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
	fd      int
	tty     bool
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: in, out: out, scanner: bufio.NewScanner(in), fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

// YN asks a yes/no question and reports whether the answer was y or yes.
// Anything else, including end of input, is no.
func (p *Prompter) YN(question string) bool {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	if p.tty {
		if b, ok := p.readKey(); ok {
			if b >= ' ' && b < 0x7f {
				fmt.Fprintf(p.out, "%c", b)
			}
			fmt.Fprintln(p.out)
			return b == 'y' || b == 'Y'
		}
	}
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(p.scanner.Text()))
	return answer == "y" || answer == "yes"
}

// readKey reads one byte in raw mode. ok is false if raw mode is
// unavailable, in which case the caller falls back to line input.
func (p *Prompter) readKey() (byte, bool) {
	old, err := term.MakeRaw(p.fd)
	if err != nil {
		return 0, false
	}
	defer term.Restore(p.fd, old)

	buf := make([]byte, 1)
	if n, err := p.in.Read(buf); n == 0 || err != nil {
		return 0, true
	}
	return buf[0], true
}

// Line asks a question and returns the trimmed answer.
func (p *Prompter) Line(question string) string {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

// LineDefault asks a question and returns def when the answer is blank.
func (p *Prompter) LineDefault(question, def string) string {
	answer := p.Line(question)
	if answer == "" {
		return def
	}
	return answer
}
