// Package callsign implements the base-37 call-sign codec: digits,
// letters, and space map to a single accumulator in [0, 37^9), the
// same encoding original_source/encode.cc's base37_encoder produces.
package callsign

import "fmt"

// MaxLength is the number of base-37 digits a call sign packs into,
// bounding valid values to (0, Limit).
const MaxLength = 9

// Limit is 37^MaxLength, the exclusive upper bound original_source's
// main() checks call_sign against.
var Limit = pow37(MaxLength)

func pow37(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 37
	}
	return v
}

// Encode converts an ASCII call sign to its base-37 value: '0'-'9' ->
// 1..10, 'A'-'Z'/'a'-'z' -> 11..36, ' ' -> 0, any other byte is an
// error. There is no length check, as in the reference
// implementation's int64 accumulator: Valid rejects results outside
// (0, Limit), but leading spaces add nothing to the value, and from
// 13 characters on the int64 accumulator can wrap around.
func Encode(s string) (int64, error) {
	var acc int64
	for i := 0; i < len(s); i++ {
		acc *= 37
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			acc += int64(c-'0') + 1
		case c >= 'A' && c <= 'Z':
			acc += int64(c-'A') + 11
		case c >= 'a' && c <= 'z':
			acc += int64(c-'a') + 11
		case c == ' ':
			// contributes 0, but still folds into the multiply above.
		default:
			return 0, fmt.Errorf("callsign: invalid character %q at position %d", c, i)
		}
	}
	return acc, nil
}

// Valid reports whether v is in the open range (0, Limit) that
// original_source/encode.cc's main() requires a call sign to satisfy.
func Valid(v int64) bool {
	return v > 0 && v < Limit
}
