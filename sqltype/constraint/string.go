package constraint

// Str validates a textual literal against a declared Char/VarChar
// length. Trailing ASCII whitespace is trimmed first; the remaining
// BYTE length (not rune count) is compared against N. This mirrors the
// source engine's behavior and is source-faithful even though it
// rejects multi-byte UTF-8 input earlier than a character-count
// implementation would.
type Str struct {
	N int
}

func (c Str) Validate(text string) error {
	trimmed := trimTrailingASCIISpace(text)
	if len(trimmed) > c.N {
		return ErrValueTooLong
	}
	return nil
}
