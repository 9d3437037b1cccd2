package main

import (
	"context"
	"os"

	"github.com/jcorbin/gostack/internal/logio"
)

// traceEnv names the environment variable that enables trace logging to
// stderr when set to any non-empty value.
const traceEnv = "GOSTACK_TRACE"

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)

	var opts = []Option{
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
	}
	if os.Getenv(traceEnv) != "" {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		if opt, err := WithTerminal(); err != nil {
			log.Printf("WARN", "%v; falling back to plain input", err)
		} else {
			opts = append(opts, opt)
		}
	}

	in := New(opts...)
	log.ErrorIf(in.Run(context.Background()))
	log.ErrorIf(in.Close())
	os.Exit(log.ExitCode())
}
