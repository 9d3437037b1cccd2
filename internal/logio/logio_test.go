package logio_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gostack/internal/logio"
)

func TestWriter(t *testing.T) {
	var logged []string
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		logged = append(logged, fmt.Sprintf(mess, args...))
	}}
	io.WriteString(lw, "one\ntw")
	assert.Equal(t, []string{"one"}, logged)
	io.WriteString(lw, "o\nthree")
	assert.Equal(t, []string{"one", "two"}, logged)
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "three"}, logged)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	var log logio.Logger
	log.SetOutput(&out)

	log.Leveledf("TRACE")("> %v %q", "stdin:1", "1 2 +")
	log.Printf("", "bare")
	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "expected no error yet")

	log.ErrorIf(errors.New("bang"))
	assert.Equal(t, 1, log.ExitCode(), "expected error exit code")
	assert.Equal(t, "TRACE: > stdin:1 \"1 2 +\"\nbare\nERROR: bang\n", out.String())

	log.SetOutput(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected output failure exit code")
}
