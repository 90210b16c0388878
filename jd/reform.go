package jd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidReform = errors.New("invalid calendar reform") //Returned by CheckReform, callers substitute DefaultReform
)

//Reform is the day number on which the Gregorian calendar replaces the Julian one.
//Julian and Gregorian are sentinels that never and always switch.
type Reform int

const (
	Italy     Reform = 2299161 //1582-10-15
	England   Reform = 2361222 //1752-09-14
	Julian    Reform = math.MaxInt
	Gregorian Reform = math.MinInt

	DefaultReform = Italy
)

//Finite cutovers must lie within this window of day numbers.
const (
	ReformBegin = 2298874
	ReformEnd   = 2426355
)

func (sg Reform) Valid() bool {
	return sg == Julian || sg == Gregorian || (sg >= ReformBegin && sg <= ReformEnd)
}

//IsGregorian reports whether day jdn is reckoned in the Gregorian calendar.
func (sg Reform) IsGregorian(jdn int) bool {
	return jdn >= int(sg)
}

//CheckReform returns sg when it is valid.
//Otherwise it returns DefaultReform together with an error wrapping ErrInvalidReform,
//which callers are expected to report as a warning and carry on.
func CheckReform(sg Reform) (Reform, error) {
	if sg.Valid() {
		return sg, nil
	}
	return DefaultReform, fmt.Errorf("%w: %d is outside [%d, %d], using %s", ErrInvalidReform, int(sg), ReformBegin, ReformEnd, DefaultReform)
}

func (sg Reform) String() string {
	switch sg {
	case Julian:
		return "julian"
	case Gregorian:
		return "gregorian"
	case Italy:
		return "italy"
	case England:
		return "england"
	}
	return strconv.Itoa(int(sg))
}

//ParseReform accepts italy, england, julian, gregorian or a day number.
func ParseReform(s string) (Reform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "italy", "":
		return Italy, nil
	case "england":
		return England, nil
	case "julian":
		return Julian, nil
	case "gregorian", "proleptic":
		return Gregorian, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultReform, fmt.Errorf("%w: %q", ErrInvalidReform, s)
	}
	return CheckReform(Reform(n))
}

func (sg Reform) MarshalText() ([]byte, error) {
	return []byte(sg.String()), nil
}

func (sg *Reform) UnmarshalText(text []byte) error {
	r, err := ParseReform(string(text))
	if err != nil {
		return err
	}
	*sg = r
	return nil
}
