package abi

import (
	"bufio"
	"fmt"
	"io"
)

// IO holds the streams write_int, write_char and read_int operate
// against, so tests can substitute buffers for stdin/stdout.
type IO struct {
	out *bufio.Writer
	in  *bufio.Reader
}

// NewIO wraps w and r for buffered line-oriented access.
func NewIO(w io.Writer, r io.Reader) *IO {
	return &IO{out: bufio.NewWriter(w), in: bufio.NewReader(r)}
}

// WriteInt writes v followed by a newline and flushes, matching
// write_int's immediate-output contract.
func (io_ *IO) WriteInt(v int64) {
	fmt.Fprintf(io_.out, "%d\n", v)
	io_.out.Flush()
}

// WriteChar writes a single byte and flushes.
func (io_ *IO) WriteChar(c byte) {
	io_.out.WriteByte(c)
	io_.out.Flush()
}

// ReadInt reads one whitespace-delimited signed integer.
func (io_ *IO) ReadInt() int64 {
	var v int64
	for {
		b, err := io_.in.ReadByte()
		if err != nil {
			Cassert(false, "abi: read_int: unexpected end of input")
		}
		if b == ' ' || b == '\n' || b == '\t' || b == '\r' {
			continue
		}
		io_.in.UnreadByte()
		break
	}
	if _, err := fmt.Fscan(io_.in, &v); err != nil {
		Cassert(false, "abi: read_int: malformed integer")
	}
	return v
}
