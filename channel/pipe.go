package channel

import (
	"encoding/binary"
	"io"
)

// Pipe is a Chan backed by raw OS pipes (or any io.Reader/io.Writer),
// matching the fixed-width binary protocol an external evaluator
// process speaks: every message is a 4-byte big-endian integer, with
// no framing or length prefix beyond that.
type Pipe struct {
	r io.Reader
	w io.Writer
	c io.Closer
}

// NewPipe wraps r and w as a Chan. c, if non-nil, is closed by Close.
func NewPipe(r io.Reader, w io.Writer, c io.Closer) *Pipe {
	return &Pipe{r: r, w: w, c: c}
}

// Read implements Reader.
func (p *Pipe) Read() (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(p.r, buf[:]); err != nil {
		return 0, err
	}
	return int(int32(binary.BigEndian.Uint32(buf[:]))), nil
}

// Write implements Writer.
func (p *Pipe) Write(msg int) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(int32(msg)))
	_, err := p.w.Write(buf[:])
	return err
}

// Close closes the underlying Closer, if any.
func (p *Pipe) Close() error {
	if p.c == nil {
		return nil
	}
	return p.c.Close()
}
