// Package prompt implements the interactive configuration loop: synchronous
// line-based prompts with validation and re-prompting. Input and output are
// injectable so tests run without a real console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/pdfbatch/internal/config"
)

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter over the given streams (os.Stdin/os.Stdout in the
// tools, buffers in tests).
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// readLine returns the next input line. ok is false once the input stream is
// exhausted, which breaks the re-prompt loops instead of spinning forever.
func (p *Prompter) readLine() (line string, ok bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// Directory prompts for a directory path, trimming surrounding quotes and
// whitespace, and re-prompts on empty input. Returns "" only when input is
// exhausted; the caller rejects that as a missing directory.
func (p *Prompter) Directory(label string) string {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, ok := p.readLine()
		if !ok {
			return ""
		}
		dir := config.NormalizeDirArg(line)
		if dir != "" {
			return dir
		}
		fmt.Fprintln(p.out, "Please enter a directory path.")
	}
}

// FontSize prompts for a font size in points. Empty input accepts def.
// Non-numeric and non-positive answers re-prompt; answers above confirmAbove
// need explicit confirmation and re-prompt when declined. Returns def when
// input is exhausted.
func (p *Prompter) FontSize(def, confirmAbove int) int {
	for {
		fmt.Fprintf(p.out, "Font size in points [%d]: ", def)
		line, ok := p.readLine()
		if !ok {
			return def
		}
		s := strings.TrimSpace(line)
		if s == "" {
			return def
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "Font size must be positive.")
			continue
		}
		if n > confirmAbove {
			if !p.Confirm(fmt.Sprintf("%d pt is unusually large. Use it anyway?", n)) {
				continue
			}
		}
		return n
	}
}

// Confirm asks a yes/no question. Empty input and "n" decline; anything else
// re-prompts. Returns false when input is exhausted.
func (p *Prompter) Confirm(question string) bool {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", question)
		line, ok := p.readLine()
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "", "n", "no":
			return false
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
