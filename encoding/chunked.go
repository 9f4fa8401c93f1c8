package encoding

import (
	"fmt"

	"github.com/arloliu/revord/internal/options"
)

// Chunked group size limits. The ending byte stores padding+1, and padding
// can reach the full group size, so the group size must stay below 0xFF.
const (
	MinGroupSize     = 1
	MaxGroupSize     = 254
	DefaultGroupSize = 8
)

// Chunked is an order-inverting codec that lays complemented input bytes
// out in fixed-size groups.
//
// Each group of groupSize complemented data bytes is followed by a 0x00
// delimiter; the final group is padded with 0xFF (the complement of 0x00)
// up to the group size and followed by an ending byte holding padding+1
// instead of a delimiter. The encoded length is therefore a function of the
// input length alone:
//
//	ceil(max(len, 1) / groupSize) * (groupSize + 1)
//
// Compared to the escape codec, output size never depends on byte content
// and zero-heavy keys carry no per-byte penalty, but the encoding is not
// self-delimiting: Decode must receive exactly one complete encoding.
//
// Chunked satisfies the same ordering and round-trip guarantees as the
// escape codec, provided both sides use the same group size. A Chunked
// value is immutable after construction and safe for concurrent use.
type Chunked struct {
	groupSize int
}

// ChunkedOption configures a Chunked codec during construction.
type ChunkedOption = options.Option[*Chunked]

// WithGroupSize sets the number of data bytes per encoded group.
// Valid sizes are MinGroupSize..MaxGroupSize; the constructor fails on
// anything else.
func WithGroupSize(n int) ChunkedOption {
	return options.New(func(c *Chunked) error {
		if n < MinGroupSize || n > MaxGroupSize {
			return fmt.Errorf("group size %d out of range [%d, %d]", n, MinGroupSize, MaxGroupSize)
		}
		c.groupSize = n

		return nil
	})
}

// NewChunked creates a chunked codec with DefaultGroupSize unless
// overridden by options.
func NewChunked(opts ...ChunkedOption) (*Chunked, error) {
	c := &Chunked{groupSize: DefaultGroupSize}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// GroupSize returns the configured number of data bytes per group.
func (c *Chunked) GroupSize() int {
	return c.groupSize
}

// EncodedSize returns the encoded length for an input of n bytes.
// The empty input still occupies one full group.
func (c *Chunked) EncodedSize(n int) int {
	if n < 1 {
		n = 1
	}

	return (n + c.groupSize - 1) / c.groupSize * (c.groupSize + 1)
}

// Encode returns the order-inverted chunked encoding of src.
// It is total over all byte sequences, including the empty one, and never
// fails.
func (c *Chunked) Encode(src []byte) []byte {
	return c.Append(make([]byte, 0, c.EncodedSize(len(src))), src)
}

// Append appends the chunked encoding of src to dst and returns the
// extended buffer.
func (c *Chunked) Append(dst, src []byte) []byte {
	total := c.EncodedSize(len(src))

	written := 0
	for i, b := range src {
		if i != 0 && i%c.groupSize == 0 {
			dst = append(dst, 0x00)
			written++
		}
		dst = append(dst, ^b)
		written++
	}

	// Pad the final group with the complement of 0x00 so that a padded key
	// still sorts after any longer key sharing it as a prefix, then record
	// the padding count in the ending byte.
	pad := total - 1 - written
	for i := 0; i < pad; i++ {
		dst = append(dst, 0xFF)
	}

	return append(dst, byte(pad+1))
}

// Decode reverses Encode.
//
// src must be exactly one complete encoding produced with the same group
// size. Decode fails with an error wrapping ErrMalformedEncoding when src
// is empty, its length is not a multiple of groupSize+1, a delimiter byte
// is non-zero, a padding byte is not 0xFF, or the ending byte is out of
// range.
func (c *Chunked) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedEncoding)
	}

	stride := c.groupSize + 1
	chunks := len(src) / stride
	if chunks*stride != len(src) {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformedEncoding, len(src), stride)
	}

	last := int(src[len(src)-1])
	if last == 0 || last > stride {
		return nil, fmt.Errorf("%w: invalid ending byte 0x%02x", ErrMalformedEncoding, last)
	}
	padding := last - 1

	outLen := chunks*c.groupSize - padding
	out := make([]byte, 0, outLen)
	for i, b := range src {
		switch {
		case (i+1)%stride == 0:
			// Delimiter position; the final one holds the ending byte
			// validated above.
			if i+1 != len(src) && b != 0 {
				return nil, fmt.Errorf("%w: delimiter at offset %d is 0x%02x, want 0x00", ErrMalformedEncoding, i, b)
			}
		case len(out) == outLen:
			if b != 0xFF {
				return nil, fmt.Errorf("%w: padding at offset %d is 0x%02x, want 0xff", ErrMalformedEncoding, i, b)
			}
		default:
			out = append(out, ^b)
		}
	}

	return out, nil
}
