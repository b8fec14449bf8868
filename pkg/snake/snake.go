// Package snake prompts for command input when flags and arguments are left
// out, using promptui selects and line prompts.
package snake

import (
	"io"
	"strings"
)

// Prompter reads answers from Stdin and draws prompts on Stdout. Nil fields
// fall back to the terminal.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NopCloser wraps w so promptui can not close the command's writer.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// fuzzy reports whether input, ignoring case and spaces, occurs in text.
func fuzzy(text, input string) bool {
	text = strings.Replace(strings.ToLower(text), " ", "", -1)
	input = strings.Replace(strings.ToLower(input), " ", "", -1)
	return strings.Contains(text, input)
}
