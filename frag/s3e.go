package frag

import (
	"errors"
	"strconv"
)

//numeric splits a token into its leading noise, an optional sign with digits, and whatever trails them.
//ok is false when the token holds no sign or digit at all.
func numeric(tok string) (body, tail string, ok bool) {
	i := 0
	for i < len(tok) && !isSign(tok[i]) && !isDigit(tok[i]) {
		i++
	}
	if i == len(tok) {
		return "", "", false
	}
	start := i
	if isSign(tok[i]) {
		i++
	}
	end := i + digitSpan(tok, i)
	return tok[start:end], tok[end:], true
}

func (s *scanner) digits(tok string) (int, bool) {
	i := 0
	for i < len(tok) && !isDigit(tok[i]) {
		i++
	}
	if i == len(tok) {
		return 0, false
	}
	return s.atoi(tok[i : i+digitSpan(tok, i)]), true
}

//s3e decides which of three loosely ordered tokens is the year, the month and the day.
//The checks run in a fixed order and each may reorder the tokens:
//  a. two tokens given as (year, month) are really (month, day)
//  b. without a year, a long or apostrophe prefixed day is the year
//  c. a year with trailing text is the day from its first sign or digit on, the day slot moves to the year
//  d. a long or apostrophe prefixed month means the order was year, month, day
//  e. a long or apostrophe prefixed day swaps with the year
//  f. the year keeps its sign, a sign or more than two digits rules out century completion
func (s *scanner) s3e(y, m, d string, bc bool) {
	if y != "" && m != "" && d == "" {
		y, m, d = d, y, m
	}

	if y == "" {
		if len(d) > 2 {
			y, d = d, ""
		}
		if d != "" && d[0] == '\'' {
			y, d = d, ""
		}
	}

	if y != "" {
		if body, tail, ok := numeric(y); ok && tail != "" {
			y, d = d, body+tail
		}
	}

	if m != "" && (m[0] == '\'' || len(m) > 2) {
		y, m, d = m, d, y
	}

	if d != "" && (d[0] == '\'' || len(d) > 2) {
		y, d = d, y
	}

	if y != "" {
		if body, _, ok := numeric(y); ok {
			n := len(body)
			if isSign(body[0]) {
				s.f.NeedsCenturyCompletion.Set(false)
				n--
			}
			if n > 2 {
				s.f.NeedsCenturyCompletion.Set(false)
			}
			v, err := strconv.Atoi(body)
			switch {
			case err == nil:
				s.f.Year.Set(v)
			case errors.Is(err, strconv.ErrRange) && !s.f.Overflow.OK:
				s.f.Overflow.Set(body)
			}
		}
	}
	if bc {
		s.f.IsBCEra = true
	}
	if v, ok := s.digits(m); ok {
		s.f.Mon.Set(v)
	}
	if v, ok := s.digits(d); ok {
		s.f.MDay.Set(v)
	}
}
