package frag

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanISO8601(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]interface{}
	}{
		{"2001-02-03", map[string]interface{}{"year": 2001, "mon": 2, "mday": 3}},
		{"2001-02-03T04:05:06+07:00", map[string]interface{}{
			"year": 2001, "mon": 2, "mday": 3, "hour": 4, "min": 5, "sec": 6, "zone": "+07:00", "offset": 25200}},
		{"20010203T040506Z", map[string]interface{}{
			"year": 2001, "mon": 2, "mday": 3, "hour": 4, "min": 5, "sec": 6, "zone": "Z", "offset": 0}},
		{"01-02-03", map[string]interface{}{"year": 2001, "mon": 2, "mday": 3}},
		{"--02-03", map[string]interface{}{"mon": 2, "mday": 3}},
		{"2001-034", map[string]interface{}{"year": 2001, "yday": 34}},
		{"-034", map[string]interface{}{"yday": 34}},
		{"2001-W05-6", map[string]interface{}{"cwyear": 2001, "cweek": 5, "cwday": 6}},
		{"2001W056", map[string]interface{}{"cwyear": 2001, "cweek": 5, "cwday": 6}},
		{"-w-6", map[string]interface{}{"cwday": 6}},
		{"04:05", map[string]interface{}{"hour": 4, "min": 5}},
		{" 04:05:06-0330 ", map[string]interface{}{"hour": 4, "min": 5, "sec": 6, "zone": "-0330", "offset": -12600}},
	}
	for _, test := range tests {
		f, err := ScanISO8601(test.in, DefaultLimit)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, f.Map(), test.in)
	}

	f, err := ScanISO8601("2001-02-03T04:05:06,25", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, 0, f.SecFraction.Cmp(big.NewRat(1, 4)))

	f, err = ScanISO8601("04:05:06.50000000000000000000000", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, 0, f.SecFraction.Cmp(big.NewRat(1, 2)))
}

func TestScanRFC3339(t *testing.T) {
	f, err := ScanRFC3339("2001-02-03t04:05:06.123-05:00", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Some(2001), f.Year)
	assert.Equal(t, Some(4), f.Hour)
	assert.Equal(t, Some(-5*3600), f.Offset)
	assert.Equal(t, 0, f.SecFraction.Cmp(big.NewRat(123, 1000)))

	_, err = ScanRFC3339("2001-02-03 04:05", DefaultLimit)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "RFC 3339", fe.Format)
	assert.Equal(t, 16, fe.Pos)
	assert.ErrorIs(t, err, ErrMalformedFixedFormat)
}

func TestScanTrailingText(t *testing.T) {
	_, err := ScanISO8601("2001-02-03x", DefaultLimit)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "x", fe.Leftover)
	assert.Contains(t, err.Error(), `"x" left over`)

	_, err = ScanISO8601(" 2001-02-03T04:05 extra ", DefaultLimit)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, " extra", fe.Leftover)

	_, err = ScanRFC3339("2001-02-03 04:05", DefaultLimit)
	require.True(t, errors.As(err, &fe))
	assert.Empty(t, fe.Leftover)
}

func TestScanXMLSchema(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]interface{}
	}{
		{"2001", map[string]interface{}{"year": 2001}},
		{"2001-02", map[string]interface{}{"year": 2001, "mon": 2}},
		{"-0044-03-15", map[string]interface{}{"year": -44, "mon": 3, "mday": 15}},
		{"2001-02-03T04:05:06Z", map[string]interface{}{
			"year": 2001, "mon": 2, "mday": 3, "hour": 4, "min": 5, "sec": 6, "zone": "Z", "offset": 0}},
		{"04:05:06+09:00", map[string]interface{}{"hour": 4, "min": 5, "sec": 6, "zone": "+09:00", "offset": 32400}},
		{"--11-29", map[string]interface{}{"mon": 11, "mday": 29}},
		{"--11", map[string]interface{}{"mon": 11}},
		{"---29Z", map[string]interface{}{"mday": 29, "zone": "Z", "offset": 0}},
	}
	for _, test := range tests {
		f, err := ScanXMLSchema(test.in, DefaultLimit)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, f.Map(), test.in)
	}
}

func TestScanRFC2822(t *testing.T) {
	f, err := ScanRFC2822("Sat, 3 Feb 2001 04:05:06 +0700", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"wday": 6, "year": 2001, "mon": 2, "mday": 3, "hour": 4, "min": 5, "sec": 6,
		"zone": "+0700", "offset": 25200}, f.Map())

	f, err = ScanRFC2822("3 feb 01 04:05 EST", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Some(2001), f.Year)
	assert.Equal(t, Some(-5*3600), f.Offset)
	assert.False(t, f.Sec.OK)

	f, err = ScanRFC2822("3 Feb 99 04:05 GMT", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Some(1999), f.Year)

	_, err = ScanRFC2822("Sat, 3 Feb 2001 04:05:06 Nowhere", DefaultLimit)
	assert.ErrorIs(t, err, ErrMalformedFixedFormat)
}

func TestScanHTTPDate(t *testing.T) {
	for _, in := range []string{
		"Sat, 03 Feb 2001 04:05:06 GMT",
		"Saturday, 03-Feb-01 04:05:06 GMT",
	} {
		f, err := ScanHTTPDate(in, DefaultLimit)
		require.NoError(t, err, in)
		assert.Equal(t, map[string]interface{}{
			"wday": 6, "year": 2001, "mon": 2, "mday": 3, "hour": 4, "min": 5, "sec": 6,
			"zone": "GMT", "offset": 0}, f.Map(), in)
	}

	f, err := ScanHTTPDate("Sat Feb  3 04:05:06 2001", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"wday": 6, "year": 2001, "mon": 2, "mday": 3, "hour": 4, "min": 5, "sec": 6}, f.Map())

	_, err = ScanHTTPDate("Sat, 03 Feb 2001 04:05:06 JST", DefaultLimit)
	assert.ErrorIs(t, err, ErrMalformedFixedFormat)
}

func TestScanJISX0301(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]interface{}
	}{
		{"H31.04.30", map[string]interface{}{"year": 2019, "mon": 4, "mday": 30}},
		{"31.04.30", map[string]interface{}{"year": 2019, "mon": 4, "mday": 30}},
		{"R01.05.01", map[string]interface{}{"year": 2019, "mon": 5, "mday": 1}},
		{"S64.01.07T12:00+09:00", map[string]interface{}{
			"year": 1989, "mon": 1, "mday": 7, "hour": 12, "min": 0, "zone": "+09:00", "offset": 32400}},
		{"2001-02-03", map[string]interface{}{"year": 2001, "mon": 2, "mday": 3}},
	}
	for _, test := range tests {
		f, err := ScanJISX0301(test.in, DefaultLimit)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, f.Map(), test.in)
	}

	_, err := ScanJISX0301("X31.04.30", DefaultLimit)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "JIS X 0301", fe.Format)
}

func TestScanFixedTooLong(t *testing.T) {
	_, err := ScanISO8601("2001-02-03"+string(make([]byte, DefaultLimit)), DefaultLimit)
	assert.ErrorIs(t, err, ErrInputTooLong)
}

func TestLayoutCompile(t *testing.T) {
	assert.Panics(t, func() { mustLayout("%Y[-%m") })
	assert.Panics(t, func() { mustLayout("%Y]") })
	assert.Panics(t, func() { mustLayout("%") })
	l := mustLayout("%4Y[-%2m]")
	require.Len(t, l, 2)
	assert.Equal(t, 4, l[0].width)
	assert.Equal(t, groupElem, l[1].kind)
}
