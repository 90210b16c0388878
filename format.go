package jdate

import (
	"fmt"
	"math/big"
)

var (
	dayAbbr   = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthAbbr = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

//Japanese eras by their first day number, the base year is the year before year 1 of the era.
var eras = []struct {
	until int
	c     byte
	base  int
}{
	{2419614, 'M', 1867},
	{2424875, 'T', 1911},
	{2447535, 'S', 1925},
	{2458605, 'H', 1988},
	{int(^uint(0) >> 1), 'R', 2018},
}

const meijiCalendar = 2405160 //1873-01-01, first day written with an era

func yearString(y int) string {
	if y < 0 {
		return fmt.Sprintf("%05d", y)
	}
	return fmt.Sprintf("%04d", y)
}

func zoneString(of int, colon bool) string {
	sign := '+'
	if of < 0 {
		sign, of = '-', -of
	}
	if colon {
		return fmt.Sprintf("%c%02d:%02d", sign, of/3600, of%3600/60)
	}
	return fmt.Sprintf("%c%02d%02d", sign, of/3600, of%3600/60)
}

//fracDigits truncates a fraction of a second to n decimals.
func fracDigits(sf *big.Rat, n int) string {
	v := new(big.Int)
	if sf != nil {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
		v.Mul(sf.Num(), scale)
		v.Quo(v, sf.Denom())
	}
	return fmt.Sprintf("%0*d", n, v)
}

func (d Date) datePart() string {
	return fmt.Sprintf("%s-%02d-%02d", yearString(d.year), d.mon, d.mday)
}

func (d Date) clockPart(digits int) string {
	s := fmt.Sprintf("%02d:%02d:%02d", d.Hour(), d.Minute(), d.Second())
	if digits > 0 {
		s += "." + fracDigits(d.sf, digits)
	}
	return s
}

//ISO8601 formats as 2001-02-03, or 2001-02-03T04:05:06+07:00 when the date has a time of day.
func (d Date) ISO8601() string {
	if d.prec == DateOnly {
		return d.datePart()
	}
	return d.ISO8601Frac(0)
}

//ISO8601Frac formats date and time with digits decimals of the second.
func (d Date) ISO8601Frac(digits int) string {
	return d.datePart() + "T" + d.clockPart(digits) + zoneString(d.of, true)
}

//RFC3339 always includes the time of day.
func (d Date) RFC3339() string {
	return d.ISO8601Frac(0)
}

func (d Date) XMLSchema() string {
	return d.ISO8601()
}

//RFC2822 formats as Sat, 3 Feb 2001 04:05:06 +0700.
func (d Date) RFC2822() string {
	return fmt.Sprintf("%s, %d %s %s %s %s", dayAbbr[d.WDay()], d.mday, monthAbbr[d.mon-1],
		yearString(d.year), d.clockPart(0), zoneString(d.of, false))
}

//HTTPDate formats the instant in GMT, as Sat, 03 Feb 2001 04:05:06 GMT.
func (d Date) HTTPDate() string {
	u := d.NewOffset(0)
	return fmt.Sprintf("%s, %02d %s %s %s GMT", dayAbbr[u.WDay()], u.mday, monthAbbr[u.mon-1],
		yearString(u.year), u.clockPart(0))
}

//JISX0301 formats with a Japanese era, as H13.02.03. Days before 1873 are written as ISO 8601.
func (d Date) JISX0301() string {
	if d.prec == DateOnly {
		return d.jisDate()
	}
	return d.JISX0301Frac(0)
}

func (d Date) JISX0301Frac(digits int) string {
	return d.jisDate() + "T" + d.clockPart(digits) + zoneString(d.of, true)
}

func (d Date) jisDate() string {
	jdn := d.JD()
	if jdn < meijiCalendar {
		return d.datePart()
	}
	for _, e := range eras {
		if jdn < e.until {
			return fmt.Sprintf("%c%02d.%02d.%02d", e.c, d.year-e.base, d.mon, d.mday)
		}
	}
	return d.datePart()
}

func (d Date) String() string {
	return d.ISO8601()
}

//MarshalText writes the ISO 8601 form, with nine decimals when the date has a time of day.
func (d Date) MarshalText() ([]byte, error) {
	if d.prec == DateOnly {
		return []byte(d.datePart()), nil
	}
	return []byte(d.ISO8601Frac(9)), nil
}

//UnmarshalText reads the ISO 8601 form under the default reform.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseISO8601(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
