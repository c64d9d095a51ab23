// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package body

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/onereq/onereq/onereqerr"
)

// A Kind identifies which variant of the tagged Config union is
// populated.
type Kind int

const (
	// None means the request carries no body at all.
	None Kind = iota
	// Bytes means Config.Bytes is the literal wire payload.
	Bytes
	// Text means Config.Text is decoded under Config.Encoding.
	Text
	// Structured means Config.Value is serialized as JSON.
	Structured
)

// A Config is the validated, immutable description of a request
// body: a byte buffer, text plus a named encoding, or a structured
// value bound for JSON.
type Config struct {
	Kind     Kind
	Bytes    []byte
	Text     string
	Encoding Encoding
	Value    interface{}
}

// Encode turns a Config into the wire bytes it represents and their
// length.
//
// A Kind of None is a valid, meaningful input: it reports zero bytes
// and leaves the caller to skip writing a body and adding
// Content-Length, per "No body → no write; no Content-Length header
// added by the encoder."
func Encode(cfg Config) (data []byte, contentLength int, err error) {
	switch cfg.Kind {
	case None:
		return nil, 0, nil
	case Bytes:
		return cfg.Bytes, len(cfg.Bytes), nil
	case Text:
		data, err = encodeText(cfg.Text, cfg.Encoding)
		if err != nil {
			return nil, 0, err
		}
		return data, len(data), nil
	case Structured:
		data, err = json.Marshal(cfg.Value)
		if err != nil {
			return nil, 0, onereqerr.Wrap(onereqerr.HttpRequestBodyObjectNotSerializable, "", err)
		}
		return data, len(data), nil
	default:
		panic(fmt.Sprintf("onereq/body: unknown body kind %d", cfg.Kind))
	}
}

func encodeText(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case ASCII:
		for i := 0; i < len(text); i++ {
			if text[i] > 0x7f {
				return nil, onereqerr.Newf(onereqerr.BodyEncodingInvalid,
					"text contains non-ASCII byte at offset %d", i)
			}
		}
		return []byte(text), nil
	case Base64:
		return decodeBase64(text, base64.StdEncoding)
	case Base64URL:
		return decodeBase64(text, base64.URLEncoding)
	case Hex:
		decoded, err := hex.DecodeString(text)
		if err != nil {
			return nil, onereqerr.Wrap(onereqerr.BodyEncodingInvalid, "", err)
		}
		return decoded, nil
	default:
		if codec := enc.textEncoding(); codec != nil {
			encoded, err := codec.NewEncoder().Bytes([]byte(text))
			if err != nil {
				return nil, onereqerr.Wrap(onereqerr.BodyEncodingInvalid, "", err)
			}
			return encoded, nil
		}
		// UTF8 passes through unchanged; it is Go's native string
		// encoding, so there is nothing to transcode.
		return []byte(text), nil
	}
}

// Decode converts data, understood to be on the wire under the named
// encoding, into its UTF-8 representation so a response body can be
// handed to the JSON parser. For the text encodings this reverses
// Encode's Text case; for Base64, Base64URL and Hex, data is read as
// text in that encoding and decoded to the bytes it spells, the same
// direction Encode takes.
func Decode(data []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF8:
		return data, nil
	case ASCII:
		for i, b := range data {
			if b > 0x7f {
				return nil, onereqerr.Newf(onereqerr.BodyEncodingInvalid,
					"response body contains non-ASCII byte at offset %d", i)
			}
		}
		return data, nil
	case Base64:
		return decodeBase64Bytes(data, base64.StdEncoding)
	case Base64URL:
		return decodeBase64Bytes(data, base64.URLEncoding)
	case Hex:
		decoded := make([]byte, hex.DecodedLen(len(data)))
		n, err := hex.Decode(decoded, data)
		if err != nil {
			return nil, onereqerr.Wrap(onereqerr.BodyEncodingInvalid, "", err)
		}
		return decoded[:n], nil
	default:
		if codec := enc.textEncoding(); codec != nil {
			decoded, err := codec.NewDecoder().Bytes(data)
			if err != nil {
				return nil, onereqerr.Wrap(onereqerr.BodyEncodingInvalid, "", err)
			}
			return decoded, nil
		}
		return data, nil
	}
}

func decodeBase64Bytes(data []byte, codec *base64.Encoding) ([]byte, error) {
	decoded := make([]byte, codec.DecodedLen(len(data)))
	n, err := codec.Decode(decoded, data)
	if err != nil {
		return nil, onereqerr.Wrap(onereqerr.BodyEncodingInvalid, "", err)
	}
	return decoded[:n], nil
}

func decodeBase64(text string, codec *base64.Encoding) ([]byte, error) {
	decoded, err := codec.DecodeString(text)
	if err != nil {
		return nil, onereqerr.Wrap(onereqerr.BodyEncodingInvalid, "", err)
	}
	return decoded, nil
}
