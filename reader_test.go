package jdate

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func testParser() *Parser {
	ref := Must(Civil(2001, 2, 3, Italy))
	return NewParser(WithToday(func() Date { return ref }))
}

func TestReader_Next(t *testing.T) {
	in := "# dates\n2001-02-03\n\n  Sat Aug 28 02:55:50 1999  \nno date here\n"
	r := NewReader(strings.NewReader(in), nil, testParser().Parse)

	rec, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Line != 2 || rec.Text != "2001-02-03" || rec.Err != nil {
		t.Errorf("Want line 2 without error, have %d %q %v", rec.Line, rec.Text, rec.Err)
	}
	if rec.Date.ISO8601() != "2001-02-03" {
		t.Errorf("Want %s, have %s", "2001-02-03", rec.Date)
	}

	rec, err = r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Line != 4 || rec.Text != "Sat Aug 28 02:55:50 1999" {
		t.Errorf("Want line 4 trimmed, have %d %q", rec.Line, rec.Text)
	}
	if rec.Date.ISO8601() != "1999-08-28" {
		t.Errorf("Want %s, have %s", "1999-08-28", rec.Date)
	}

	rec, err = r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(rec.Err, ErrUnresolvable) {
		t.Errorf("Want %v, have %v", ErrUnresolvable, rec.Err)
	}

	if _, err = r.Next(); err != io.EOF {
		t.Errorf("Want io.EOF, have %v", err)
	}
	if r.Line() != 5 {
		t.Errorf("Want 5 lines read, have %d", r.Line())
	}
}

func TestReader_ReadAll(t *testing.T) {
	in := []byte("3 Feb 2001\n3. M\xE4rz 2001\n")
	dec, err := DecoderFor("win1252")
	if err != nil {
		t.Fatal(err)
	}
	recs, err := NewReader(bytes.NewReader(in), dec, testParser().Parse).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("Want 2 records, have %d", len(recs))
	}
	if recs[1].Text != "3. März 2001" {
		t.Errorf("Want %q, have %q", "3. März 2001", recs[1].Text)
	}
	if recs[0].Date.ISO8601() != "2001-02-03" {
		t.Errorf("Want %s, have %s", "2001-02-03", recs[0].Date)
	}
}

func TestReader_Empty(t *testing.T) {
	recs, err := NewReader(strings.NewReader(""), nil, Parse).ReadAll()
	if err != nil || len(recs) != 0 {
		t.Errorf("Want no records, have %d %v", len(recs), err)
	}
}
