package frag

import (
	"math/big"
	"strings"
	"testing"

	"github.com/SebastiaanKlippert/go-jdate/jd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanSettled(t *testing.T, text string, complete bool) *Fragments {
	t.Helper()
	f, err := Parse(text, complete, DefaultLimit)
	require.NoError(t, err, text)
	return f
}

func TestParseCTime(t *testing.T) {
	f := scanSettled(t, "Sat Aug 28 02:29:34 JST 1999", true)
	assert.Equal(t, Some(1999), f.Year)
	assert.Equal(t, Some(8), f.Mon)
	assert.Equal(t, Some(28), f.MDay)
	assert.Equal(t, Some(6), f.WDay)
	assert.Equal(t, Some(2), f.Hour)
	assert.Equal(t, Some(29), f.Min)
	assert.Equal(t, Some(34), f.Sec)
	assert.Equal(t, Some("JST"), f.Zone)
	assert.Equal(t, Some(9*3600), f.Offset)
}

func TestParseCenturyCompletion(t *testing.T) {
	f := scanSettled(t, "02-04-12", false)
	assert.Equal(t, Some(2), f.Year)
	assert.Equal(t, Some(4), f.Mon)
	assert.Equal(t, Some(12), f.MDay)

	f = scanSettled(t, "02-04-12", true)
	assert.Equal(t, Some(2002), f.Year)

	f = scanSettled(t, "99-04-12", true)
	assert.Equal(t, Some(1999), f.Year)

	//a sign or more than two digits keeps the year as written
	f = scanSettled(t, "0099-04-12", true)
	assert.Equal(t, Some(99), f.Year)
}

func TestParseJIS(t *testing.T) {
	f := scanSettled(t, "H31.04.30", true)
	assert.Equal(t, Some(2019), f.Year)
	assert.Equal(t, Some(4), f.Mon)
	assert.Equal(t, Some(30), f.MDay)

	f = scanSettled(t, "r1.5.1", true)
	assert.Equal(t, Some(2019), f.Year)
	assert.Equal(t, Some(5), f.Mon)
}

func TestParseISOVariants(t *testing.T) {
	f := scanSettled(t, "2006-w15-5", true)
	assert.Equal(t, Some(2006), f.CWYear)
	assert.Equal(t, Some(15), f.CWeek)
	assert.Equal(t, Some(5), f.CWDay)

	f = scanSettled(t, "-w-5", true)
	assert.Equal(t, Some(5), f.CWDay)
	assert.False(t, f.CWeek.OK)

	f = scanSettled(t, "2006-333", true)
	assert.Equal(t, Some(2006), f.Year)
	assert.Equal(t, Some(333), f.YDay)

	f = scanSettled(t, "--11-29", true)
	assert.Equal(t, Some(11), f.Mon)
	assert.Equal(t, Some(29), f.MDay)
	assert.False(t, f.Year.OK)
}

func TestParseTimeAndZone(t *testing.T) {
	f := scanSettled(t, "jan 2 3 am +4 5", false)
	assert.Equal(t, Some(1), f.Mon)
	assert.Equal(t, Some(2), f.MDay)
	assert.Equal(t, Some(3), f.Hour)
	assert.Equal(t, Some("+4"), f.Zone)
	assert.Equal(t, Some(4*3600), f.Offset)
	assert.Equal(t, Some(5), f.Year)

	f = scanSettled(t, "2000-01-31 13:20:00 H", true)
	assert.Equal(t, Some(2000), f.Year)
	assert.Equal(t, Some(13), f.Hour)
	assert.Equal(t, Some("H"), f.Zone)
	assert.Equal(t, Some(8*3600), f.Offset)

	f = scanSettled(t, "22:45:59.0123", true)
	assert.Equal(t, Some(22), f.Hour)
	assert.Equal(t, Some(45), f.Min)
	assert.Equal(t, Some(59), f.Sec)
	require.NotNil(t, f.SecFraction)
	assert.Equal(t, 0, f.SecFraction.Cmp(big.NewRat(123, 10000)))

	f = scanSettled(t, "10:00 Pacific Daylight Time", true)
	assert.Equal(t, Some("Pacific Daylight Time"), f.Zone)
	assert.Equal(t, Some(-7*3600), f.Offset)
}

func TestParseBCE(t *testing.T) {
	f := scanSettled(t, "fri1feb3bc4pm+5", true)
	assert.Equal(t, Some(-2), f.Year)
	assert.Equal(t, Some(2), f.Mon)
	assert.Equal(t, Some(1), f.MDay)
	assert.Equal(t, Some(16), f.Hour)
	assert.Equal(t, Some(5), f.WDay)
	assert.Equal(t, Some(5*3600), f.Offset)
	assert.False(t, f.IsBCEra, "flags are cleared once settled")
}

func TestParseDigitBlob(t *testing.T) {
	f := scanSettled(t, "19990523235521.123[+9:JST]", true)
	assert.Equal(t, Some(1999), f.Year)
	assert.Equal(t, Some(5), f.Mon)
	assert.Equal(t, Some(23), f.MDay)
	assert.Equal(t, Some(23), f.Hour)
	assert.Equal(t, Some(55), f.Min)
	assert.Equal(t, Some(21), f.Sec)
	require.NotNil(t, f.SecFraction)
	assert.Equal(t, 0, f.SecFraction.Cmp(big.NewRat(123, 1000)))
	assert.Equal(t, Some("JST"), f.Zone)
	assert.Equal(t, Some(9*3600), f.Offset)

	f = scanSettled(t, "20010203", true)
	assert.Equal(t, Some(2001), f.Year)
	assert.Equal(t, Some(2), f.Mon)
	assert.Equal(t, Some(3), f.MDay)
}

func TestParseOrdinalSuffix(t *testing.T) {
	f := scanSettled(t, "3rd feb 2001", true)
	assert.Equal(t, Some(2001), f.Year)
	assert.Equal(t, Some(2), f.Mon)
	assert.Equal(t, Some(3), f.MDay)
}

func TestParseThreeTokens(t *testing.T) {
	tests := []struct {
		text           string
		year, mon, day int
	}{
		{"1999/12/25", 1999, 12, 25},
		{"28/8/1999", 1999, 8, 28},
		{"12/25/1999", 1999, 25, 12},
		{"12/1999/25", 1999, 25, 12},
		{"25.12.1999", 1999, 12, 25},
		{"28-Aug-1999", 1999, 8, 28},
		{"Aug-28-1999", 1999, 8, 28},
		{"Feb 3rd, 2001", 2001, 2, 3},
		{"3 feb 14th", 2014, 2, 3},
		{"3 feb 2014th", 2014, 2, 3},
	}
	for _, test := range tests {
		f := scanSettled(t, test.text, true)
		assert.Equal(t, Some(test.year), f.Year, test.text)
		assert.Equal(t, Some(test.mon), f.Mon, test.text)
		assert.Equal(t, Some(test.day), f.MDay, test.text)
	}
}

func TestParseLoneNumbers(t *testing.T) {
	f := scanSettled(t, "Sat 10", true)
	assert.Equal(t, Some(6), f.WDay)
	assert.Equal(t, Some(10), f.MDay)
	assert.False(t, f.Year.OK)

	f = scanSettled(t, "10:00 5", true)
	assert.Equal(t, Some(10), f.Hour)
	assert.Equal(t, Some(0), f.Min)
	assert.Equal(t, Some(5), f.MDay)
}

func TestParseOverflow(t *testing.T) {
	for _, text := range []string{
		"Aug 99999999999999999999",
		"99999999999999999999-01-01",
		"2001-02-03 99999999999999999999:00",
	} {
		f := scanSettled(t, text, true)
		assert.True(t, f.Overflow.OK, text)
		assert.Equal(t, "99999999999999999999", f.Overflow.V, text)

		Complete(f, func() int { return refDay }, jd.Italy, false)
		_, err := Resolve(f, jd.Italy)
		assert.ErrorIs(t, err, ErrUnresolvable, text)
	}
}

func TestParseNothing(t *testing.T) {
	f := scanSettled(t, "no date here", true)
	assert.True(t, f.Empty())
}

func TestParseTooLong(t *testing.T) {
	long := strings.Repeat("1", DefaultLimit+1)
	_, err := Scan(long, DefaultLimit)
	assert.ErrorIs(t, err, ErrInputTooLong)

	_, err = Scan(long, 0)
	assert.NoError(t, err)

	_, err = Scan(strings.Repeat(" ", DefaultLimit), DefaultLimit)
	assert.NoError(t, err)
}

func TestFragmentsMap(t *testing.T) {
	f := scanSettled(t, "Sat Aug 28 02:29:34 JST 1999", true)
	m := f.Map()
	assert.Equal(t, 1999, m["year"])
	assert.Equal(t, "JST", m["zone"])
	assert.NotContains(t, m, "yday")
	assert.NotContains(t, m, "needs_century_completion")
}
