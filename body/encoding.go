// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package body

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// An Encoding identifies one member of the closed set of named text
// encodings a body may be given in.
type Encoding int

const (
	// UTF8 is the default body encoding.
	UTF8 Encoding = iota
	UTF16LE
	UCS2
	Latin1
	ASCII
	Base64
	Base64URL
	Hex
)

var encodingNames = map[string]Encoding{
	"utf8":      UTF8,
	"utf-8":     UTF8,
	"utf16le":   UTF16LE,
	"utf-16le":  UTF16LE,
	"ucs2":      UCS2,
	"ucs-2":     UCS2,
	"latin1":    Latin1,
	"ascii":     ASCII,
	"base64":    Base64,
	"base64url": Base64URL,
	"hex":       Hex,
}

// ParseEncoding looks up name (case-insensitively) in the closed set
// of recognized text encodings. ok is false if name names none of
// them, the caller's cue to raise BodyEncodingInvalid.
func ParseEncoding(name string) (enc Encoding, ok bool) {
	enc, ok = encodingNames[strings.ToLower(name)]
	return
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16LE:
		return "utf16le"
	case UCS2:
		return "ucs2"
	case Latin1:
		return "latin1"
	case ASCII:
		return "ascii"
	case Base64:
		return "base64"
	case Base64URL:
		return "base64url"
	case Hex:
		return "hex"
	default:
		return "unknown"
	}
}

// textEncoding returns the golang.org/x/text/encoding.Encoding
// backing e, or nil for UTF8, ASCII, Base64, Base64URL and Hex, which
// aren't x/text transcodings and are instead handled directly by
// Encode and Decode.
//
// UCS-2 has no dedicated x/text type; since it is UTF-16 restricted
// to the Basic Multilingual Plane, the UTF-16LE unicode.UTF16 codec
// (without a BOM) is byte-for-byte identical for every code point it
// can represent, the same substitution golang.org/x/text itself
// documents for legacy "UCS-2" callers.
func (e Encoding) textEncoding() encoding.Encoding {
	switch e {
	case UTF16LE, UCS2:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case Latin1:
		return charmap.ISO8859_1
	default:
		return nil
	}
}
