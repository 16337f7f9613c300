package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/byteutils/codec"
)

func TestHex_encode_decode(t *testing.T) {
	t.Parallel()

	var c codec.Codec[[]byte] = codec.Hex{}

	wire, err := c.Encode([]byte{0xCA, 0xFE})
	require.NoError(t, err)
	assert.Equal(t, "cafe", string(wire))

	got, err := c.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE}, got)
}

func TestHex_decode_rejects_bad_payload(t *testing.T) {
	t.Parallel()

	_, err := codec.Hex{}.Decode([]byte("caf"))
	assert.ErrorIs(t, err, codec.ErrInvalidLength)
}

func TestUTF8_encode_decode(t *testing.T) {
	t.Parallel()

	var c codec.Codec[string] = codec.UTF8{}

	wire, err := c.Encode("grüß")
	require.NoError(t, err)

	got, err := c.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, "grüß", got)
}

func TestUTF8_decode_rejects_invalid(t *testing.T) {
	t.Parallel()

	_, err := codec.UTF8{}.Decode([]byte{0xC0, 0x80})
	assert.ErrorIs(t, err, codec.ErrInvalidUTF8)
}
