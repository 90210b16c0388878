package jdate

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

//The charset decoding for Reader is all done in this file so you could plug in a different decoder

//Decoder turns a raw input line into UTF-8
type Decoder interface {
	Decode(in []byte) ([]byte, error)
}

//CharmapDecoder translates a single byte character set to UTF-8.
//Lines that already are valid UTF-8 are passed through.
type CharmapDecoder struct {
	Charmap *charmap.Charmap
}

func (d *CharmapDecoder) Decode(in []byte) ([]byte, error) {
	if utf8.Valid(in) {
		return in, nil
	}
	r := transform.NewReader(bytes.NewReader(in), d.Charmap.NewDecoder())
	return io.ReadAll(r)
}

//This decoder assumes the input is UTF-8 so it does nothing
type UTF8Decoder struct{}

func (d *UTF8Decoder) Decode(in []byte) ([]byte, error) {
	return in, nil
}

//DecoderFor returns the decoder for utf8, win1250, win1252 or latin1.
func DecoderFor(charset string) (Decoder, error) {
	switch strings.ToLower(charset) {
	case "", "utf8", "utf-8":
		return new(UTF8Decoder), nil
	case "win1250", "windows-1250":
		return &CharmapDecoder{Charmap: charmap.Windows1250}, nil
	case "win1252", "windows-1252":
		return &CharmapDecoder{Charmap: charmap.Windows1252}, nil
	case "latin1", "iso-8859-1":
		return &CharmapDecoder{Charmap: charmap.ISO8859_1}, nil
	}
	return nil, fmt.Errorf("unknown charset %q", charset)
}
