package sav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipOffset returns the offset of the first plausible gzip member header in
// buf, or -1.
func gzipOffset(buf []byte) int {
	for off := 0; off+len(gzipSignature) < len(buf); {
		i := bytes.Index(buf[off:], gzipSignature)
		if i < 0 {
			return -1
		}
		off += i
		if off+len(gzipSignature) >= len(buf) {
			return -1
		}
		if buf[off+len(gzipSignature)]&gzipReservedFlags == 0 {
			return off
		}
		off++
	}
	return -1
}

// TryGunzipBuffer inflates the gzip member embedded in buf. Bytes before the
// member are kept in front of the inflated payload. A buffer without a gzip
// member is returned unchanged.
//
// Only the first candidate header is tried. A member at offset 0 that fails to
// inflate is an error; a candidate further in that fails is taken to be part of
// uncompressed data, and buf is returned unchanged.
func TryGunzipBuffer(buf []byte) ([]byte, error) {
	off := gzipOffset(buf)
	if off < 0 {
		return buf, nil
	}
	out, err := gunzipAt(buf, off)
	if err != nil {
		if off > 0 {
			return buf, nil
		}
		return nil, err
	}
	return out, nil
}

func gunzipAt(buf []byte, off int) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(buf[off:]))
	if err != nil {
		return nil, fmt.Errorf("%w: member at offset %d: %w", ErrDecompression, off, err)
	}
	defer zr.Close()
	zr.Multistream(false)

	out := bytes.NewBuffer(make([]byte, 0, off+4*(len(buf)-off)))
	out.Write(buf[:off])
	n, err := io.Copy(out, io.LimitReader(zr, MaxInflatedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: member at offset %d: %w", ErrDecompression, off, err)
	}
	if n > MaxInflatedSize {
		return nil, fmt.Errorf("%w: member at offset %d inflates past %d bytes", ErrDecompression, off, MaxInflatedSize)
	}
	return out.Bytes(), nil
}
