package constraint

import "math"

// Width identifies the signed integer width a constraint enforces.
type Width int

const (
	WidthSmallInt Width = 16
	WidthInteger  Width = 32
	WidthBigInt   Width = 64
)

// bounds returns the inclusive min/max for a width.
func (w Width) bounds() (min, max int64) {
	switch w {
	case WidthSmallInt:
		return math.MinInt16, math.MaxInt16
	case WidthInteger:
		return math.MinInt32, math.MaxInt32
	case WidthBigInt:
		return math.MinInt64, math.MaxInt64
	default:
		panic("constraint: unknown integer width")
	}
}

// Int validates a textual literal as a signed decimal integer of the
// declared width. It rejects a leading '+', decimal points, scientific
// notation, whitespace, and empty input as NotAnInt, and classifies an
// otherwise well-formed value whose magnitude exceeds the width as
// OutOfRange.
type Int struct {
	Width Width
}

func (c Int) Validate(text string) error {
	_, err := c.parse(text)
	return err
}

// parse is the grammar Validate enforces. codec.Int does not call it:
// its mustParseInt carries the same overflow guard, and encode is only
// ever called on input validate has already accepted.
func (c Int) parse(text string) (int64, error) {
	if text == "" {
		return 0, ErrNotAnInt
	}

	s := text
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, ErrNotAnInt
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrNotAnInt
		}
	}

	const minInt64Magnitude = uint64(math.MaxInt64) + 1

	var magnitude uint64
	for i := 0; i < len(s); i++ {
		digit := uint64(s[i] - '0')
		// Guard the multiply itself: once magnitude already exceeds the
		// largest value we could ever accept (minInt64Magnitude, for the
		// lone negative case where |MinInt64| > MaxInt64), one more
		// digit would overflow uint64 and wrap silently. Reject before
		// that happens rather than after.
		if magnitude > (minInt64Magnitude-digit)/10 {
			return 0, ErrOutOfRange
		}
		magnitude = magnitude*10 + digit
	}

	var value int64
	if neg {
		if magnitude > minInt64Magnitude {
			return 0, ErrOutOfRange
		}
		if magnitude == minInt64Magnitude {
			value = math.MinInt64
		} else {
			value = -int64(magnitude)
		}
	} else {
		if magnitude > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		value = int64(magnitude)
	}

	min, max := c.Width.bounds()
	if value < min || value > max {
		return 0, ErrOutOfRange
	}
	return value, nil
}
