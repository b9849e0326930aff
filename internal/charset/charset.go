// Package charset resolves named text encodings and decodes input streams
// to UTF-8.
//
// Names are looked up first in the IANA registry (windows-1252, iso-8859-1,
// utf-8, IBM437, ...) and then among the WHATWG labels, which add aliases
// such as cp1252 and utf8. A byte order mark at the start of the stream
// always wins over the named encoding.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Default is the legacy 8-bit encoding assumed for input files.
const Default = "windows-1252"

var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding pairs a resolved encoding with its canonical name.
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// Lookup resolves name to an Encoding. An empty name resolves to Default.
//
// IANA names win over WHATWG labels, so latin1 and iso-8859-1 decode as
// ISO 8859-1 rather than the windows-1252 superset browsers substitute
// for them. Labels that WHATWG maps to its replacement
// encoding (iso-2022-kr, hz-gb-2312, ...) are rejected: decoding with it
// yields a single U+FFFD for the whole input.
func Lookup(name string) (*Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" {
		label = Default
	}

	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return &Encoding{Name: ianaName(enc, label), enc: enc}, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil || enc == encoding.Replacement {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = label
	}
	return &Encoding{Name: canonical, enc: enc}, nil
}

// MustLookup is Lookup for names known to be valid.
func MustLookup(name string) *Encoding {
	e, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return e
}

func ianaName(enc encoding.Encoding, fallback string) string {
	if name, err := ianaindex.IANA.Name(enc); err == nil {
		return strings.ToLower(name)
	}
	return fallback
}

// NewReader decodes r to UTF-8. A UTF-8 or UTF-16 byte order mark
// overrides the encoding and is stripped.
func (e *Encoding) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(e.enc.NewDecoder()))
}

// Encode converts a UTF-8 string to the encoding. Characters without a
// representation are an error.
func (e *Encoding) Encode(s string) ([]byte, error) {
	out, _, err := transform.Bytes(e.enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Name, err)
	}
	return out, nil
}

func (e *Encoding) String() string { return e.Name }
