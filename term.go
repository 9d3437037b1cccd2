package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// isTerminal reports whether f is connected to an interactive terminal.
func isTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// WithTerminal reads lines through an interactive line editor, which draws
// the prompt itself. History lasts only as long as the process.
func WithTerminal() (Option, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("unable to start line editor: %w", err)
	}
	return withLineSource(&termSource{rl: rl}), nil
}

type termSource struct {
	rl   *readline.Instance
	line int
}

func (ts *termSource) readLine(prompt string) (string, error) {
	ts.rl.SetPrompt(prompt)
	for {
		line, err := ts.rl.Readline()
		if err == readline.ErrInterrupt {
			// abandon the partial line, and prompt again
			continue
		}
		if err != nil {
			return "", err
		}
		ts.line++
		return line, nil
	}
}

func (ts *termSource) location() string { return fmt.Sprintf("tty:%v", ts.line) }

func (ts *termSource) Close() error { return ts.rl.Close() }
