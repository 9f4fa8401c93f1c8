// Package revord provides a reversible, order-inverting transform over
// byte sequences, for deriving descending sort keys from ascending ones.
//
// For any two byte sequences a and b, a <= b under standard lexicographic
// comparison exactly when Encode(a) >= Encode(b). The transform is a
// bijection with an explicit terminator, so every encoding decodes back to
// exactly its input and the end of an encoded value can be found by
// scanning alone, with no external length field.
//
// # Why
//
// Ordered key/value stores (Pebble, LevelDB, BoltDB, Bigtable, ...) often
// support only ascending scans, or support reverse iteration at a
// performance penalty. Storing Encode(key) alongside (or instead of) key
// makes an ascending scan over the encoded column visit entries in
// descending key order:
//
//	// Store both directions of a key.
//	asc := []byte("user/2024-01-15/event")
//	desc := revord.Encode(asc)
//
//	// An ascending scan over desc-keys yields newest-first.
//	original, err := revord.Decode(desc)
//
// # Encoding scheme
//
// Each input byte is emitted as its one's complement. The complement of
// 0x00 collides with the lead byte of the terminator, so input 0x00 is
// emitted as the escape pair [0xFF, 0x00]. The terminator [0xFF, 0xFF]
// closes every encoding; it compares greater than any possible
// continuation, which is what inverts the prefix rule ("" encodes to
// [0xFF, 0xFF], the greatest possible encoding, mirroring the empty
// sequence being the least possible input). Worst-case output size is
// 2*len(input)+2 bytes, reached only by all-zero input.
//
// # Package structure
//
// This package provides convenient top-level wrappers around the encoding
// package, which also offers the batched KeyEncoder/KeyScanner pair, an
// append-style API, and an alternate chunked codec with content-independent
// output sizes. Both operations here are pure functions, safe for
// unsynchronized concurrent use.
package revord

import (
	"github.com/arloliu/revord/encoding"
)

// ErrMalformedEncoding reports a Decode input that does not match the codec
// grammar. It aliases encoding.ErrMalformedEncoding; every decode failure
// in this module wraps it.
var ErrMalformedEncoding = encoding.ErrMalformedEncoding

// Encode returns the order-inverted, self-delimiting encoding of src.
// It accepts any byte sequence, including the empty one, and never fails.
func Encode(src []byte) []byte {
	return encoding.Encode(src)
}

// AppendEncode appends the encoding of src to dst and returns the extended
// buffer, avoiding the allocation Encode performs.
func AppendEncode(dst, src []byte) []byte {
	return encoding.Append(dst, src)
}

// Decode reverses Encode, consuming src exactly. It fails with an error
// wrapping ErrMalformedEncoding on any input that is not one complete
// encoding.
func Decode(src []byte) ([]byte, error) {
	return encoding.Decode(src)
}

// DecodeNext decodes the first complete encoding in src and returns the
// decoded key together with the unconsumed remainder, for callers walking a
// buffer of concatenated encodings.
func DecodeNext(src []byte) (key, rest []byte, err error) {
	return encoding.DecodeNext(src)
}
