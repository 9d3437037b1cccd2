// Package fileinput reads lines through a queue of input streams, keeping
// track of where each line came from.
package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for its content.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
//
// When one stream ends and another is queued, a 0 rune is returned with a nil
// error; io.EOF is only returned once the whole queue is exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if r != 0 {
		in.Scan.WriteRune(r)
	}

	if r != 0 {
		return r, n, nil
	}
	if err == io.EOF && in.nextIn() {
		err = nil
	}
	return 0, n, err
}

// ReadLine reads up to the next line feed, returning the line without its
// terminator (nor any carriage return before it). The end of each stream
// ends any final unterminated line; io.EOF is returned only when no content
// remains in any stream.
func (in *Input) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.ReadRune()
		switch {
		case err != nil:
			if sb.Len() > 0 && err == io.EOF {
				return sb.String(), nil
			}
			return "", err
		case r == '\n':
			return strings.TrimSuffix(sb.String(), "\r"), nil
		case r == 0:
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteRune(r)
		}
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = newRuneReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

// newRuneReader returns r if it already reads runes, otherwise wrapping it in
// a bufio.Reader; any Close method carries through either way.
func newRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	br := bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		return closingRuneReader{br, cl}
	}
	return br
}

type closingRuneReader struct {
	*bufio.Reader
	io.Closer
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
