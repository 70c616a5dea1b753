// Package encoding converts legacy-encoded OBJ text to UTF-8 before parsing.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names that are not supported.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Names lists the canonical encoding names accepted by Lookup.
var Names = []string{"utf-8", "euc-kr", "latin1", "windows-1252"}

// Lookup returns the encoding for name. Matching ignores case; an empty name means UTF-8.
// The UTF-8 decoder strips a leading byte order mark.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "euc-kr", "euckr", "cp949":
		return korean.EUCKR, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownEncoding, name, strings.Join(Names, ", "))
	}
}

// Decode converts data from the named encoding to UTF-8.
func Decode(data []byte, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return out, nil
}
