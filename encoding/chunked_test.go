package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChunked_GroupSize(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)
	require.Equal(t, DefaultGroupSize, c.GroupSize())

	c, err = NewChunked(WithGroupSize(1))
	require.NoError(t, err)
	require.Equal(t, 1, c.GroupSize())

	c, err = NewChunked(WithGroupSize(MaxGroupSize))
	require.NoError(t, err)
	require.Equal(t, MaxGroupSize, c.GroupSize())

	for _, n := range []int{0, -1, 255, 1000} {
		_, err = NewChunked(WithGroupSize(n))
		require.Error(t, err, "group size %d must be rejected", n)
	}
}

func TestChunked_KnownVectors(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)

	// The empty input occupies one full group of padding: eight 0xFF bytes
	// and an ending byte of 8+1.
	require.Equal(t, append(bytes.Repeat([]byte{0xFF}, 8), 9), c.Encode(nil))

	// "a" complements to 158, then seven padding bytes and ending byte 8.
	require.Equal(t, append([]byte{158}, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 8), c.Encode([]byte("a")))

	// A full group carries zero padding and ending byte 1.
	full := c.Encode(bytes.Repeat([]byte{0x61}, 8))
	require.Len(t, full, 9)
	require.Equal(t, byte(1), full[8])

	// Nine bytes spill into a second group behind a 0x00 delimiter.
	spill := c.Encode(bytes.Repeat([]byte{0x61}, 9))
	require.Len(t, spill, 18)
	require.Equal(t, byte(0x00), spill[8])
	require.Equal(t, byte(8), spill[17])
}

func TestChunked_EncodedSize(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)

	for n := 0; n <= 64; n++ {
		input := bytes.Repeat([]byte{0x61}, n)
		require.Equal(t, c.EncodedSize(n), len(c.Encode(input)), "n=%d", n)
	}
}

func TestChunked_InvertsOrder(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)

	require.Positive(t, bytes.Compare(c.Encode(nil), c.Encode([]byte(" "))))
	require.Positive(t, bytes.Compare(c.Encode([]byte("a")), c.Encode([]byte("b"))))
	require.Positive(t, bytes.Compare(c.Encode([]byte("a")), c.Encode([]byte("aa"))))
	require.Positive(t, bytes.Compare(c.Encode([]byte("aa")), c.Encode([]byte("abb"))))

	for n := 0; n < 40; n++ {
		for v := 0; v < 0xFF; v++ {
			same := bytes.Repeat([]byte{byte(v)}, n)
			longer := bytes.Repeat([]byte{byte(v)}, n+1)
			bigger := bytes.Repeat([]byte{byte(v) + 1}, n+1)

			require.Positive(t, bytes.Compare(c.Encode(same), c.Encode(longer)), "n=%d v=%d", n, v)
			require.Positive(t, bytes.Compare(c.Encode(longer), c.Encode(bigger)), "n=%d v=%d", n, v)
			require.Positive(t, bytes.Compare(c.Encode(longer), c.Encode(bytes.Repeat([]byte{byte(v) + 1}, n+2))), "n=%d v=%d", n, v)
			require.Positive(t, bytes.Compare(c.Encode(bytes.Repeat([]byte{byte(v)}, n+2)), c.Encode(bigger)), "n=%d v=%d", n, v)
		}
	}
}

func TestChunked_RoundTrip(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)

	inputs := [][]byte{
		nil,
		[]byte("A"),
		[]byte("hello"),
		[]byte("hello world!"),
		[]byte("7268"),
		{0x00, 0xFF, 0x00},
	}

	for _, input := range inputs {
		decoded, err := c.Decode(c.Encode(input))
		require.NoError(t, err)
		require.True(t, bytes.Equal(input, decoded), "input=%x decoded=%x", input, decoded)
	}

	for n := 0; n < 40; n++ {
		for v := 0; v <= 0xFF; v++ {
			input := bytes.Repeat([]byte{byte(v)}, n)
			decoded, err := c.Decode(c.Encode(input))
			require.NoError(t, err)
			require.True(t, bytes.Equal(input, decoded), "n=%d v=%d", n, v)
		}
	}
}

func TestChunked_RoundTrip_GroupSizes(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")

	for _, n := range []int{1, 2, 3, 7, 8, 16, MaxGroupSize} {
		c, err := NewChunked(WithGroupSize(n))
		require.NoError(t, err)

		decoded, err := c.Decode(c.Encode(input))
		require.NoError(t, err)
		require.True(t, bytes.Equal(input, decoded), "group size %d", n)
	}
}

func TestChunked_Decode_Malformed(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty input", nil},
		{"length not multiple of stride", []byte("xxxxxxxx")},
		{"bad delimiter", bytes.Repeat([]byte{1}, 18)},
		{"bad padding", bytes.Repeat([]byte{2}, 9)},
		{"bad ending byte", bytes.Repeat([]byte{10}, 9)},
		{"zero ending byte", bytes.Repeat([]byte{0}, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.input)
			require.ErrorIs(t, err, ErrMalformedEncoding)
		})
	}
}

func TestChunked_Append(t *testing.T) {
	c, err := NewChunked()
	require.NoError(t, err)

	buf := c.Append(nil, []byte("a"))
	buf = c.Append(buf, []byte("b"))
	require.Len(t, buf, 18)
	require.Equal(t, c.Encode([]byte("a")), buf[:9])
	require.Equal(t, c.Encode([]byte("b")), buf[9:])
}
