// Package codec converts between raw byte slices, hexadecimal text and
// UTF-8 strings. Encoding never fails and always emits lowercase hex.
// Decoding validates its input and reports failures as *DecodeError values
// wrapping one of ErrInvalidLength, ErrInvalidDigit or ErrInvalidUTF8, so
// callers can tell malformed hex apart from well-formed hex that carries
// invalid UTF-8.
//
// Every function is pure and safe for concurrent use.
package codec
