package jdate

import (
	"github.com/SebastiaanKlippert/go-jdate/frag"
	"github.com/SebastiaanKlippert/go-jdate/jd"
)

var (
	ErrInvalidCoordinate    = jd.ErrInvalidCoordinate      //A date or time of day that does not exist
	ErrInvalidReform        = jd.ErrInvalidReform          //Logged, the default reform is used instead
	ErrInputTooLong         = frag.ErrInputTooLong         //Text longer than the parser limit
	ErrUnresolvable         = frag.ErrUnresolvable         //Text without enough fields to name a day
	ErrMalformedFixedFormat = frag.ErrMalformedFixedFormat //Text not in the requested fixed format
)

type (
	CoordinateError = jd.CoordinateError
	FormatError     = frag.FormatError
)
