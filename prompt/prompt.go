// Package prompt abstracts the line-oriented terminal interaction so the
// interactive flow can be driven by scripted input in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Prompter interface {
	// Line prints the label and returns the next input line.
	Line(label string) (string, error)

	// Confirm prints the label and reads one line. Only the literal token
	// "y" (any case) counts as yes; everything else is no.
	Confirm(label string) bool

	// Secret reads a value that should not be echoed back.
	Secret(label string) (string, error)

	// Clear wipes the screen where the medium supports it.
	Clear()
}

type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *Terminal) Line(label string) (string, error) {
	fmt.Fprint(t.out, label)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Confirm(label string) bool {
	line, err := t.Line(label)
	if err != nil {
		return false
	}

	return IsAffirmative(line)
}

func (t *Terminal) Secret(label string) (string, error) {
	if f, ok := t.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(t.out, label)

		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(t.out)

		if err != nil {
			return "", err
		}

		return string(b), nil
	}

	return t.Line(label)
}

func (t *Terminal) Clear() {
	if f, ok := t.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(t.out, "\x1b[2J\x1b[H")
	}
}

// IsAffirmative reports whether the input is the literal yes token.
func IsAffirmative(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// Script replays a fixed sequence of responses and records every label it
// was shown. Reading past the end returns io.EOF, which callers treat the
// same as a declined prompt.
type Script struct {
	Responses []string
	Labels    []string
	Cleared   int

	pos int
}

func NewScript(responses ...string) *Script {
	return &Script{Responses: responses}
}

func (s *Script) next(label string) (string, error) {
	s.Labels = append(s.Labels, label)

	if s.pos >= len(s.Responses) {
		return "", io.EOF
	}

	line := s.Responses[s.pos]
	s.pos++

	return line, nil
}

func (s *Script) Line(label string) (string, error) {
	return s.next(label)
}

func (s *Script) Confirm(label string) bool {
	line, err := s.next(label)
	if err != nil {
		return false
	}

	return IsAffirmative(line)
}

func (s *Script) Secret(label string) (string, error) {
	return s.next(label)
}

func (s *Script) Clear() {
	s.Cleared++
}
