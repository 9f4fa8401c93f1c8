package encoding

import (
	"errors"
	"fmt"
)

// Wire bytes of the escape codec.
//
// Every data byte b is emitted as its one's complement ^b, which lies in
// 0x00..0xFE for b in 0x01..0xFF. The complement of 0x00 is 0xFF, the same
// byte that leads the terminator, so original 0x00 is emitted as the escape
// pair [0xFF, 0x00] instead. The terminator [0xFF, 0xFF] then compares
// strictly greater than any escaped or unescaped continuation, which is
// what flips the prefix relation: a strict prefix of an input sorts before
// the longer input, and after encoding its terminator makes it sort after.
const (
	escapeLead      = 0xFF // leads both the escape pair and the terminator
	escapedZero     = 0x00 // second byte of the escape pair for input 0x00
	terminatorFinal = 0xFF // second byte of the terminator
)

// ErrMalformedEncoding is returned by the decode operations of both codecs
// when the input does not match the codec grammar. All decode failures wrap
// this sentinel, so callers can branch on a single kind with errors.Is
// while logs retain the specific grammar violation and offset.
var ErrMalformedEncoding = errors.New("malformed order-inverted encoding")

// Encode returns the order-inverted encoding of src.
//
// The encoding satisfies, for all byte sequences a and b:
//   - ordering: a <= b (lexicographic) iff Encode(a) >= Encode(b)
//   - round-trip: Decode(Encode(a)) == a
//   - self-delimiting: Encode(a) is never a proper prefix of Encode(b)
//
// Encode is total: it accepts any byte sequence, including the empty one
// (which encodes to the bare terminator [0xFF, 0xFF], the maximum possible
// encoding). The result is at most 2*len(src)+2 bytes; see EncodedSize for
// the exact length.
func Encode(src []byte) []byte {
	return Append(make([]byte, 0, EncodedSize(src)), src)
}

// Append appends the order-inverted encoding of src to dst and returns the
// extended buffer. It is the allocation-free form of Encode for callers
// assembling keys into an existing buffer.
func Append(dst, src []byte) []byte {
	for _, b := range src {
		if b == 0 {
			dst = append(dst, escapeLead, escapedZero)
		} else {
			dst = append(dst, ^b)
		}
	}

	return append(dst, escapeLead, terminatorFinal)
}

// EncodedSize returns the exact number of bytes Encode produces for src:
// one byte per input byte, one extra byte per 0x00 input byte, plus the
// two-byte terminator.
func EncodedSize(src []byte) int {
	n := len(src) + 2
	for _, b := range src {
		if b == 0 {
			n++
		}
	}

	return n
}

// MaxEncodedSize returns the worst-case encoded size for an input of n
// bytes, reached when every input byte requires escaping.
func MaxEncodedSize(n int) int {
	return 2*n + 2
}

// Decode reverses Encode, consuming src exactly.
//
// src must be a complete encoding and nothing else: Decode fails with an
// error wrapping ErrMalformedEncoding if src ends before the terminator,
// contains an invalid escape pair, or carries trailing bytes after the
// terminator. Use DecodeNext to decode one value out of a larger buffer.
func Decode(src []byte) ([]byte, error) {
	key, rest, err := DecodeNext(src)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after terminator", ErrMalformedEncoding, len(rest))
	}

	return key, nil
}

// DecodeNext decodes the first complete encoding in src and returns the
// decoded key together with the unconsumed remainder of src.
//
// The encoding is self-delimiting, so DecodeNext locates its end by
// scanning alone; callers can split a buffer of concatenated encodings by
// calling DecodeNext repeatedly (or use KeyScanner, which does exactly
// that). It fails with an error wrapping ErrMalformedEncoding on a dangling
// 0xFF, an invalid escape pair, or when src runs out before a terminator.
func DecodeNext(src []byte) (key, rest []byte, err error) {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		b := src[i]
		if b != escapeLead {
			out = append(out, ^b)
			i++

			continue
		}

		if i+1 >= len(src) {
			return nil, nil, fmt.Errorf("%w: dangling 0xff at offset %d", ErrMalformedEncoding, i)
		}

		switch src[i+1] {
		case escapedZero:
			out = append(out, 0)
			i += 2
		case terminatorFinal:
			return out, src[i+2:], nil
		default:
			return nil, nil, fmt.Errorf("%w: invalid escape byte 0x%02x at offset %d", ErrMalformedEncoding, src[i+1], i+1)
		}
	}

	return nil, nil, fmt.Errorf("%w: missing terminator", ErrMalformedEncoding)
}
