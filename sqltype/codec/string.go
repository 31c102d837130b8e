package codec

import (
	"fmt"
	"unicode/utf8"
)

// Str is the Char/VarChar codec. Encode right-trims trailing ASCII
// whitespace and emits the raw bytes — it does not pad to the declared
// length even for Char, unlike standard SQL CHAR(n) semantics; this
// matches the source engine's current behavior.
type Str struct{}

func (Str) Encode(text string) []byte {
	return []byte(trimTrailingASCIISpace(text))
}

// Decode never returns a non-nil error: the storage layer is never
// expected to hand back bytes that didn't come from Encode, so invalid
// UTF-8 here means storage corruption, not a normal decode failure.
// It panics rather than returning one, matching Int.Encode's
// mustParseInt on the same "caller broke the contract" reasoning; a
// command skin's recoverSystemError turns the panic into the outer
// SystemResult.SystemErr, the operator-only plane this belongs to.
func (Str) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		panic(fmt.Sprintf("codec: Str.Decode: invalid UTF-8 in %d stored bytes", len(b)))
	}
	return string(b), nil
}

func trimTrailingASCIISpace(s string) string {
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' {
			end--
			continue
		}
		break
	}
	return s[:end]
}
