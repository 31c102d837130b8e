package codec

import (
	"encoding/binary"
	"fmt"
)

// Int is the fixed-width big-endian two's-complement codec for
// SmallInt (2 bytes), Integer (4 bytes), and BigInt (8 bytes).
type Int struct {
	// Bytes is the declared width in bytes: 2, 4, or 8.
	Bytes int
}

func (c Int) Encode(text string) []byte {
	value := mustParseInt(text)
	buf := make([]byte, c.Bytes)
	switch c.Bytes {
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(int16(value)))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(int32(value)))
	case 8:
		binary.BigEndian.PutUint64(buf, uint64(value))
	default:
		panic(fmt.Sprintf("codec: Int: unsupported width %d", c.Bytes))
	}
	return buf
}

func (c Int) Decode(b []byte) (string, error) {
	if len(b) < c.Bytes {
		return "", fmt.Errorf("codec: Int.Decode: need %d leading bytes, got %d", c.Bytes, len(b))
	}
	var value int64
	switch c.Bytes {
	case 2:
		value = int64(int16(binary.BigEndian.Uint16(b[:2])))
	case 4:
		value = int64(int32(binary.BigEndian.Uint32(b[:4])))
	case 8:
		value = int64(binary.BigEndian.Uint64(b[:8]))
	default:
		panic(fmt.Sprintf("codec: Int: unsupported width %d", c.Bytes))
	}
	return formatInt(value), nil
}

// minInt64Magnitude is |math.MinInt64|, the largest magnitude any valid
// Int literal can carry (the lone negative case where the magnitude
// exceeds math.MaxInt64).
const minInt64Magnitude = uint64(1) << 63

// mustParseInt parses the signed decimal text produced by a caller
// that has already run it through the matching constraint.Int.Validate.
// It deliberately does not accept a leading '+', matching the
// constraint's own grammar: any byte other than a leading '-' and the
// digits panics, as unvalidated input. The accumulation guards against uint64
// wraparound on the multiply-add itself — relying solely on the
// caller's prior Validate call to rule out ≥20-digit input would make
// this function silently corrupt on misuse; it panics instead, since a
// pre-validated caller should never reach that branch.
func mustParseInt(text string) int64 {
	s := text
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var magnitude uint64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			panic(fmt.Sprintf("codec: Int.Encode: non-digit in %q (caller did not validate first)", text))
		}
		digit := uint64(s[i] - '0')
		if magnitude > (minInt64Magnitude-digit)/10 {
			panic(fmt.Sprintf("codec: Int.Encode: magnitude overflow in %q (caller did not validate first)", text))
		}
		magnitude = magnitude*10 + digit
	}
	if neg {
		return -int64(magnitude)
	}
	return int64(magnitude)
}

// formatInt renders a decimal string with no leading zeros and a sign
// only when negative.
func formatInt(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	var buf [20]byte
	i := len(buf)
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
