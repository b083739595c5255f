package values

import "io"

// Direction constrains a Stream to the read or write side of an I/O
// channel (§4.5/§5: "attempting the wrong direction is an error").
type Direction int

const (
	DirIn Direction = iota
	DirOut
)

// Stream generalizes file-in, file-out, stdin, and stdout onto a
// single io.Reader/io.Writer-backed type, per the SPEC_FULL.md
// supplement grounded on the original Rust implementation's unified
// byte-stream handling.
type Stream struct {
	Name string
	Dir  Direction
	R    io.Reader
	W    io.Writer
	C    io.Closer
}

func NewInStream(name string, r io.Reader) *Stream {
	c, _ := r.(io.Closer)
	return &Stream{Name: name, Dir: DirIn, R: r, C: c}
}

func NewOutStream(name string, w io.Writer) *Stream {
	c, _ := w.(io.Closer)
	return &Stream{Name: name, Dir: DirOut, W: w, C: c}
}

func (s *Stream) Close() error {
	if s.C != nil {
		return s.C.Close()
	}
	return nil
}
