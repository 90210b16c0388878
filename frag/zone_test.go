package frag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneToOffset(t *testing.T) {
	tests := []struct {
		zone string
		of   int
		ok   bool
	}{
		{"JST", 9 * 3600, true},
		{"jst", 9 * 3600, true},
		{"MET DST", 2 * 3600, true},
		{"Mountain Daylight Time", -6 * 3600, true},
		{"E. Australia Standard Time", 10 * 3600, true},
		{"Z", 0, true},
		{"+9", 9 * 3600, true},
		{"-0530", -(5*3600 + 30*60), true},
		{"+09:30", 9*3600 + 30*60, true},
		{"GMT+09:00", 9 * 3600, true},
		{"utc-5", -5 * 3600, true},
		{"+5.5", 5*3600 + 1800, true},
		{"+123456", 12*3600 + 34*60 + 56, true},
		{"+930", 9*3600 + 30*60, true},
		{"+25:00", 0, false},
		{"+1234567", 0, false},
		{"+09:99999999999999999999", 0, false},
		{"J", 0, false},
		{"Nowhere", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		of, ok := ZoneToOffset(test.zone)
		assert.Equal(t, test.ok, ok, test.zone)
		if test.ok {
			assert.Equal(t, test.of, of, test.zone)
		}
	}
}

func TestCompleteYear(t *testing.T) {
	assert.Equal(t, 1969, CompleteYear(69))
	assert.Equal(t, 2068, CompleteYear(68))
	assert.Equal(t, 2000, CompleteYear(0))
	assert.Equal(t, 100, CompleteYear(100))
	assert.Equal(t, -1, CompleteYear(-1))
}
