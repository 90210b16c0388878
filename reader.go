package jdate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

//Record is one parsed input line.
type Record struct {
	Line int    //1-based line number
	Text string //decoded and trimmed line
	Date Date
	Err  error //parse error, the Reader itself carries on
}

//Reader parses a stream with one date per line.
//Blank lines and lines starting with # are skipped.
type Reader struct {
	sc    *bufio.Scanner
	dec   Decoder
	parse func(string) (Date, error)
	line  int
}

//NewReader reads from r, decoding each line with dec (UTF-8 when nil) and
//parsing it with parse, for example a Parser's Parse or ParseDateTime method.
func NewReader(r io.Reader, dec Decoder, parse func(string) (Date, error)) *Reader {
	if dec == nil {
		dec = new(UTF8Decoder)
	}
	return &Reader{sc: bufio.NewScanner(r), dec: dec, parse: parse}
}

//Next returns the next record, or io.EOF after the last line.
//Parse failures are reported in Record.Err, read and decode failures as the error.
func (r *Reader) Next() (*Record, error) {
	for r.sc.Scan() {
		r.line++
		raw, err := r.dec.Decode(r.sc.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		text := strings.TrimSpace(string(raw))
		if text == "" || text[0] == '#' {
			continue
		}
		rec := &Record{Line: r.line, Text: text}
		rec.Date, rec.Err = r.parse(text)
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

//Line returns the number of lines read so far, skipped lines included.
func (r *Reader) Line() int {
	return r.line
}

//ReadAll returns the remaining records.
func (r *Reader) ReadAll() ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}
