package encoding

import (
	"github.com/arloliu/revord/internal/pool"
)

// KeyEncoder batches many order-inverted keys into a single pooled buffer.
//
// Each written key is appended in escape-codec form, and since that form is
// self-delimiting, the concatenated buffer can be split back into the
// original keys with KeyScanner. This is the intended shape for preparing a
// batch of descending sort keys before handing them to a storage layer.
//
// The encoder uses a pooled byte buffer with amortized growth; call Reset
// when done to return the buffer to the pool. A KeyEncoder is not safe for
// concurrent use.
type KeyEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewKeyEncoder creates a key encoder backed by a buffer from the key pool.
func NewKeyEncoder() *KeyEncoder {
	return &KeyEncoder{
		buf: pool.GetKeyBuffer(),
	}
}

// Write appends the encoding of a single key to the buffer.
//
// Write never fails: the codec is total over all byte sequences, including
// the empty one.
func (e *KeyEncoder) Write(key []byte) {
	e.count++
	e.buf.Grow(EncodedSize(key))
	e.buf.B = Append(e.buf.B, key)
}

// WriteString appends the encoding of a single string key to the buffer.
func (e *KeyEncoder) WriteString(key string) {
	e.Write([]byte(key))
}

// WriteSlice appends the encodings of all keys in order, pre-growing the
// buffer once for the whole batch.
func (e *KeyEncoder) WriteSlice(keys [][]byte) {
	totalSize := 0
	for _, key := range keys {
		totalSize += EncodedSize(key)
	}
	e.buf.Grow(totalSize)

	for _, key := range keys {
		e.buf.B = Append(e.buf.B, key)
		e.count++
	}
}

// Bytes returns the concatenated encoded keys.
//
// The returned slice shares the underlying buffer with the encoder.
// Do not modify the returned slice, and do not use it after Reset.
func (e *KeyEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of keys written since construction.
func (e *KeyEncoder) Len() int {
	return e.count
}

// Size returns the total encoded size in bytes.
func (e *KeyEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool.
//
// After calling Reset, the encoder should not be used again.
func (e *KeyEncoder) Reset() {
	if e.buf != nil {
		pool.PutKeyBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// KeyScanner iterates over the keys in a buffer of concatenated encodings,
// such as one produced by KeyEncoder.
//
// Usage follows the bufio.Scanner pattern:
//
//	scanner := encoding.NewKeyScanner(data)
//	for scanner.Next() {
//	    handle(scanner.Key())
//	}
//	if err := scanner.Err(); err != nil {
//	    // data had a malformed tail
//	}
type KeyScanner struct {
	rest []byte
	key  []byte
	err  error
}

// NewKeyScanner creates a scanner over data, which must be zero or more
// concatenated escape-codec encodings.
func NewKeyScanner(data []byte) *KeyScanner {
	return &KeyScanner{rest: data}
}

// Next decodes the next key, reporting whether one was available.
// It returns false at the end of the buffer or on the first malformed
// encoding; Err distinguishes the two.
func (s *KeyScanner) Next() bool {
	if s.err != nil || len(s.rest) == 0 {
		return false
	}

	key, rest, err := DecodeNext(s.rest)
	if err != nil {
		s.err = err
		return false
	}
	s.key, s.rest = key, rest

	return true
}

// Key returns the key decoded by the last successful Next.
func (s *KeyScanner) Key() []byte {
	return s.key
}

// Err returns the first decode error encountered, or nil if the scanner
// stopped at a clean end of buffer.
func (s *KeyScanner) Err() error {
	return s.err
}
