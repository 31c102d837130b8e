package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStr_RoundTrip(t *testing.T) {
	c := Str{}

	encoded := c.Encode("str")
	assert.Equal(t, []byte{'s', 't', 'r'}, encoded)

	decoded, err := c.Decode(encoded)
	assert.NoError(t, err)
	assert.Equal(t, "str", decoded)
}

func TestStr_Encode_TrimsTrailingWhitespaceOnly(t *testing.T) {
	c := Str{}
	assert.Equal(t, []byte("str"), c.Encode("str   "))
	assert.Equal(t, []byte("  str"), c.Encode("  str"))
}

func TestStr_Encode_DoesNotPad(t *testing.T) {
	c := Str{}
	assert.Equal(t, []byte("ab"), c.Encode("ab"))
}

func TestStr_Decode_InvalidUTF8(t *testing.T) {
	c := Str{}
	assert.Panics(t, func() {
		_, _ = c.Decode([]byte{0xff, 0xfe})
	})
}
