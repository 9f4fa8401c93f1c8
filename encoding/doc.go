// Package encoding implements order-inverting byte-sequence codecs for
// descending sort keys.
//
// Both codecs in this package transform a byte sequence a into a byte
// sequence E(a) such that for any inputs a < b (standard prefix-sensitive
// lexicographic comparison), E(a) > E(b). Storing E(a) as the key in an
// ordered key/value store (Pebble, LevelDB, BoltDB, Bigtable, ...) makes an
// ascending scan visit values in descending order of a, which is how
// reverse iteration is emulated on stores that only scan forward.
//
// # Escape codec
//
// Encode, Decode and DecodeNext implement the primary codec: every input
// byte is emitted as its one's complement, the one complement value that
// would collide with the terminator is escaped, and an explicit two-byte
// terminator ends the encoding. The output is self-delimiting, so encoded
// keys can be concatenated and split back apart by scanning alone. Use
// KeyEncoder and KeyScanner for that batched form.
//
// # Chunked codec
//
// Chunked implements an alternate construction with the same ordering and
// round-trip guarantees: complemented bytes are laid out in fixed-size
// groups separated by delimiter bytes, with the final group padded and a
// trailing byte recording the padding count. Its output length depends only
// on the input length (never on byte content), at the cost of a constant
// per-key overhead and of not being self-delimiting.
//
// All encode operations are total and never fail. All decode operations
// reject inputs that do not match the codec grammar with an error wrapping
// ErrMalformedEncoding; malformed input is never silently coerced.
package encoding
