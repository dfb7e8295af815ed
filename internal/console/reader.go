package console

import (
	"bufio"
	"io"
	"math"
)

const initialTokenBuffer = 64 * 1024

// Reader splits its source into whitespace-delimited tokens.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialTokenBuffer), math.MaxInt)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// Next returns the next token, or io.EOF once the source is exhausted.
func (r *Reader) Next() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
