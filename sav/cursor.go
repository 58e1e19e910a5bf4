package sav

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// cursor reads fixed-width fields from an in-memory buffer. The position only
// advances on successful reads.
type cursor struct {
	data  []byte
	index int
	order binary.ByteOrder
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, order: binary.BigEndian}
}

func (c *cursor) remaining() []byte {
	return c.data[c.index:]
}

func (c *cursor) read(n int) ([]byte, error) {
	if n < 0 || n > len(c.data)-c.index {
		return nil, truncated(c.index, n, len(c.data)-c.index)
	}
	b := c.data[c.index : c.index+n]
	c.index += n
	return b, nil
}

func (c *cursor) skip(n int) error {
	_, err := c.read(n)
	return err
}

func (c *cursor) readB() (uint8, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readW() (uint16, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, err
	}
	return c.order.Uint16(b), nil
}

func (c *cursor) readL() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return c.order.Uint32(b), nil
}

func (c *cursor) readI() (int32, error) {
	v, err := c.readL()
	return int32(v), err
}

// readString reads an n byte NUL-padded field. Bytes are ISO-8859-1.
func (c *cursor) readString(n int) (string, error) {
	b, err := c.read(n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// readInts reads count signed 32-bit integers. The length is checked before
// allocating, since count comes straight from the file.
func (c *cursor) readInts(count int32) ([]int32, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	n := int(count)
	if n > (len(c.data)-c.index)/4 {
		return nil, truncated(c.index, n*4, len(c.data)-c.index)
	}
	b, err := c.read(4 * n)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(c.order.Uint32(b[4*i:]))
	}
	return out, nil
}
