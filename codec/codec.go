package codec

import (
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	opHex  = "hex"
	opUTF8 = "utf8"
)

// BytesToHex returns the lowercase hexadecimal form of b, two characters
// per byte in input order.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes hex text into bytes. Both lowercase and uppercase
// digits are accepted. Odd-length input fails with ErrInvalidLength before
// any digit is inspected; otherwise the first non-hex character fails with
// ErrInvalidDigit.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, newDecodeError(ErrInvalidLength, opHex, len(s))
	}

	out, err := hex.DecodeString(s)
	if err != nil {
		var ibe hex.InvalidByteError
		if errors.As(err, &ibe) {
			return nil, newDecodeError(
				ErrInvalidDigit, opHex,
				strings.IndexByte(s, byte(ibe)),
			)
		}

		return nil, newDecodeError(ErrInvalidDigit, opHex, 0)
	}

	return out, nil
}

// MustHexToBytes is like HexToBytes but panics on error.
// Handy for fixtures and package-level variables.
func MustHexToBytes(s string) []byte {
	b, err := HexToBytes(s)
	if err != nil {
		panic(err)
	}

	return b
}

// BytesToString returns b as a string after checking it is valid UTF-8.
// Invalid input is reported, never replaced with U+FFFD.
func BytesToString(b []byte) (string, error) {
	if off := invalidUTF8Offset(b); off >= 0 {
		return "", newDecodeError(ErrInvalidUTF8, opUTF8, off)
	}

	return string(b), nil
}

// StringToBytes returns the UTF-8 encoding of s in a new slice.
func StringToBytes(s string) []byte {
	return []byte(s)
}

// StringToHex returns the lowercase hex form of the UTF-8 bytes of s.
func StringToHex(s string) string {
	return BytesToHex(StringToBytes(s))
}

// HexToString decodes hex text and validates the result as UTF-8. Hex
// errors take precedence over UTF-8 errors.
func HexToString(s string) (string, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return "", err
	}

	return BytesToString(b)
}

// invalidUTF8Offset returns the offset of the first byte that does not
// start a valid UTF-8 sequence, or -1 if b is valid.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}

		i += size
	}

	return -1
}
