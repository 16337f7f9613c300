package codec

// Codec encodes values V to []byte and back.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var (
	_ Codec[[]byte] = Hex{}
	_ Codec[string] = UTF8{}
)

// Hex is a Codec whose wire form is lowercase hex text. Encode never
// fails; Decode rejects odd-length or non-hex payloads.
type Hex struct{}

// Encode returns the lowercase hex text of b.
func (Hex) Encode(b []byte) ([]byte, error) { return []byte(BytesToHex(b)), nil }

// Decode parses hex text back into bytes.
func (Hex) Decode(b []byte) ([]byte, error) { return HexToBytes(string(b)) }

// UTF8 is a Codec for string values. Unlike a plain conversion, Decode
// validates the payload and fails with ErrInvalidUTF8.
type UTF8 struct{}

// Encode returns the UTF-8 bytes of s.
func (UTF8) Encode(s string) ([]byte, error) { return StringToBytes(s), nil }

// Decode validates b as UTF-8 and returns it as a string.
func (UTF8) Decode(b []byte) (string, error) { return BytesToString(b) }
