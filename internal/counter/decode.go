package counter

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is wrapped by DecodingError when the encoding name is
// not recognized.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// DecodingError reports a binary-to-text decoding that is unknown or that
// failed on the given input.
type DecodingError struct {
	Encoding string
	Err      error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Encoding, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

type decoder func(b []byte) (string, error)

// decoders is keyed by normalized name, see normalizeEncoding.
var decoders = map[string]decoder{
	"":         decodeUTF8,
	"utf8":     decodeUTF8,
	"base64":   decodeBase64,
	"hex":      decodeHex,
	"ascii":    decodeASCII,
	"latin1":   decodeLatin1,
	"binary":   decodeLatin1,
	"iso88591": decodeLatin1,
	"utf16le":  decodeUTF16LE,
	"ucs2":     decodeUTF16LE,
}

// Encodings returns the accepted encoding names.
func Encodings() []string {
	return []string{"utf8", "base64", "hex", "ascii", "latin1", "binary", "utf16le", "ucs2"}
}

// Decode turns b into text. An empty encoding, "utf8" or "utf-8" takes b as
// UTF-8 as is; "base64", "hex", "ascii", "latin1" (or "binary") and "utf16le"
// (or "ucs2") decode it first. Names are case-insensitive and ignore "-" and
// "_". Unknown names and malformed input return a *DecodingError.
func Decode(b []byte, encoding string) (string, error) {
	decode, ok := decoders[normalizeEncoding(encoding)]
	if !ok {
		return "", &DecodingError{Encoding: encoding, Err: ErrUnsupportedEncoding}
	}

	text, err := decode(b)
	if err != nil {
		return "", &DecodingError{Encoding: encoding, Err: err}
	}
	return text, nil
}

func normalizeEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}

func decodeUTF8(b []byte) (string, error) {
	return string(b), nil
}

// decodeBase64 accepts padded and unpadded input in both the standard and the
// URL alphabet, ignoring whitespace.
func decodeBase64(b []byte) (string, error) {
	s := strings.Join(strings.Fields(string(b)), "")

	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		out, err := enc.DecodeString(s)
		if err == nil {
			return string(out), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}

func decodeHex(b []byte) (string, error) {
	out, err := hex.DecodeString(strings.TrimSpace(string(b)))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeASCII(b []byte) (string, error) {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = c & 0x7f
	}
	return string(out), nil
}

func decodeLatin1(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeUTF16LE(b []byte) (string, error) {
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
