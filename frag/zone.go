package frag

import (
	"strings"
)

const (
	hour         = 3600
	maxZoneWord  = 17 //longest dictionary entry
	maxFracDigit = 9
)

//zones maps lower case zone names to their offset in seconds.
//Windows style names are stored without their "standard time" suffix.
var zones = map[string]int{
	"ut": 0, "gmt": 0, "utc": 0, "wet": 0, "bst": 1 * hour, "west": 1 * hour,
	"est": -5 * hour, "edt": -4 * hour, "cst": -6 * hour, "cdt": -5 * hour,
	"mst": -7 * hour, "mdt": -6 * hour, "pst": -8 * hour, "pdt": -7 * hour,
	"akst": -9 * hour, "akdt": -8 * hour, "hst": -10 * hour, "hast": -10 * hour, "hadt": -9 * hour,
	"ast": -4 * hour, "adt": -3 * hour, "nst": -(3*hour + 1800), "ndt": -(2*hour + 1800),
	"yst": -9 * hour, "ydt": -8 * hour, "ahst": -10 * hour, "ahdt": -9 * hour,
	"cat": -10 * hour, "nt": -11 * hour, "idlw": -12 * hour,
	"cet": 1 * hour, "cest": 2 * hour, "met": 1 * hour, "mest": 2 * hour, "mewt": 1 * hour,
	"mesz": 2 * hour, "swt": 1 * hour, "sst": 2 * hour, "fwt": 1 * hour, "fst": 2 * hour,
	"eet": 2 * hour, "eest": 3 * hour, "bt": 3 * hour, "msk": 3 * hour, "msd": 4 * hour,
	"zp4": 4 * hour, "zp5": 5 * hour, "ist": 5*hour + 1800, "zp6": 6 * hour,
	"wast": 7 * hour, "wadt": 8 * hour, "cct": 8 * hour, "hkt": 8 * hour, "sgt": 8 * hour,
	"awst": 8 * hour, "jst": 9 * hour, "kst": 9 * hour, "acst": 9*hour + 1800, "acdt": 10*hour + 1800,
	"east": 10 * hour, "eadt": 11 * hour, "aest": 10 * hour, "aedt": 11 * hour, "gst": 10 * hour,
	"nzt": 12 * hour, "nzst": 12 * hour, "nzdt": 13 * hour, "idle": 12 * hour,

	//military
	"a": 1 * hour, "b": 2 * hour, "c": 3 * hour, "d": 4 * hour, "e": 5 * hour, "f": 6 * hour,
	"g": 7 * hour, "h": 8 * hour, "i": 9 * hour, "k": 10 * hour, "l": 11 * hour, "m": 12 * hour,
	"n": -1 * hour, "o": -2 * hour, "p": -3 * hour, "q": -4 * hour, "r": -5 * hour, "s": -6 * hour,
	"t": -7 * hour, "u": -8 * hour, "v": -9 * hour, "w": -10 * hour, "x": -11 * hour, "y": -12 * hour,
	"z": 0,

	//windows
	"afghanistan": 4*hour + 1800, "alaskan": -9 * hour, "arab": 3 * hour, "arabian": 4 * hour,
	"arabic": 3 * hour, "atlantic": -4 * hour, "aus central": 9*hour + 1800, "aus eastern": 10 * hour,
	"azores": -1 * hour, "canada central": -6 * hour, "cape verde": -1 * hour, "caucasus": 4 * hour,
	"cen. australia": 9*hour + 1800, "central america": -6 * hour, "central asia": 6 * hour,
	"central europe": 1 * hour, "central european": 1 * hour, "central pacific": 11 * hour,
	"central": -6 * hour, "china": 8 * hour, "dateline": -12 * hour, "e. africa": 3 * hour,
	"e. australia": 10 * hour, "e. europe": 2 * hour, "e. south america": -3 * hour,
	"eastern": -5 * hour, "egypt": 2 * hour, "ekaterinburg": 5 * hour, "fiji": 12 * hour,
	"fle": 2 * hour, "greenland": -3 * hour, "greenwich": 0, "gtb": 2 * hour,
	"hawaiian": -10 * hour, "india": 5*hour + 1800, "iran": 3*hour + 1800, "jerusalem": 2 * hour,
	"korea": 9 * hour, "mexico": -6 * hour, "mid-atlantic": -2 * hour, "mountain": -7 * hour,
	"myanmar": 6*hour + 1800, "n. central asia": 6 * hour, "nepal": 5*hour + 2700,
	"new zealand": 12 * hour, "newfoundland": -(3*hour + 1800), "north asia east": 8 * hour,
	"north asia": 7 * hour, "pacific sa": -4 * hour, "pacific": -8 * hour, "romance": 1 * hour,
	"russian": 3 * hour, "sa eastern": -3 * hour, "sa pacific": -5 * hour, "sa western": -4 * hour,
	"samoa": -11 * hour, "se asia": 7 * hour, "malay peninsula": 8 * hour, "south africa": 2 * hour,
	"sri lanka": 6 * hour, "taipei": 8 * hour, "tasmania": 10 * hour, "tokyo": 9 * hour,
	"tonga": 13 * hour, "us eastern": -5 * hour, "us mountain": -7 * hour, "vladivostok": 10 * hour,
	"w. australia": 8 * hour, "w. central africa": 1 * hour, "w. europe": 1 * hour,
	"west asia": 5 * hour, "west pacific": 10 * hour, "yakutsk": 9 * hour,
}

//trimWord removes a trailing space separated word (case-insensitive) from s.
func trimWord(s, word string) (string, bool) {
	n := len(s) - len(word)
	if n < 1 || !isSpace(s[n-1]) || !strings.EqualFold(s[n:], word) {
		return s, false
	}
	return strings.TrimRight(s[:n], " \t\n\v\f\r"), true
}

//ZoneToOffset converts a zone designation to seconds east of UTC.
//It understands the names in the zone dictionary, optionally followed by
//"standard time", "daylight time" or "dst" (daylight adds an hour), and numeric
//forms with an optional GMT/UTC prefix: ±HH, ±HHMM, ±HHMMSS, ±HH:MM[:SS] and
//±HH.fraction, where the fraction of an hour is rounded to whole seconds.
func ZoneToOffset(zone string) (int, bool) {
	s := strings.TrimSpace(zone)
	dst := false
	if rest, ok := trimWord(s, "time"); ok {
		if r, ok := trimWord(rest, "standard"); ok {
			s = r
		} else if r, ok := trimWord(rest, "daylight"); ok {
			s, dst = r, true
		}
	} else if rest, ok := trimWord(s, "dst"); ok {
		s, dst = rest, true
	}

	if name := strings.ToLower(strings.Join(strings.Fields(s), " ")); len(name) <= maxZoneWord {
		if of, ok := zones[name]; ok {
			if dst {
				of += hour
			}
			return of, true
		}
	}
	return numericOffset(s)
}

func numericOffset(s string) (int, bool) {
	if len(s) > 3 {
		if p := strings.ToLower(s[:3]); p == "gmt" || p == "utc" {
			s = s[3:]
		}
	}
	if s == "" || !isSign(s[0]) {
		return 0, false
	}
	neg := s[0] == '-'
	s = s[1:]
	n := digitSpan(s, 0)
	if n == 0 || n > 6 {
		return 0, false
	}
	digits, rest := s[:n], s[n:]

	var h, m, sec int
	switch {
	case rest != "" && rest[0] == ':':
		h = atoi(digits)
		parts := strings.SplitN(rest[1:], ":", 2)
		ml := digitSpan(parts[0], 0)
		if ml == 0 || ml > 2 {
			return 0, false
		}
		m = atoi(parts[0][:ml])
		if len(parts) == 2 {
			if sl := digitSpan(parts[1], 0); sl > 0 && sl <= 2 {
				sec = atoi(parts[1][:sl])
			}
		}
		if h > 23 || m > 59 || sec > 59 {
			return 0, false
		}
	case rest != "" && (rest[0] == '.' || rest[0] == ','):
		h = atoi(digits)
		if h > 23 {
			return 0, false
		}
		frac := rest[1:]
		frac = frac[:digitSpan(frac, 0)]
		of := h*hour + fracHour(frac)
		if neg {
			of = -of
		}
		return of, true
	case n > 2:
		//HMM, HHMM, HMMSS, HHMMSS: odd lengths have a one digit hour
		hl := 2 - n%2
		h = atoi(digits[:hl])
		if n >= hl+2 {
			m = atoi(digits[hl : hl+2])
		}
		if n >= hl+4 {
			sec = atoi(digits[hl+2 : hl+4])
		}
	default:
		h = atoi(digits)
	}
	of := h*hour + m*60 + sec
	if neg {
		of = -of
	}
	return of, true
}

//fracHour converts the decimal digits of a fraction of an hour to seconds,
//rounding half to even.
func fracHour(digits string) int {
	if len(digits) > maxFracDigit {
		digits = digits[:maxFracDigit]
	}
	if digits == "" {
		return 0
	}
	num := atoi(digits) * hour
	den := 1
	for range digits {
		den *= 10
	}
	q, r := num/den, num%den
	if 2*r > den || (2*r == den && q%2 == 1) {
		q++
	}
	return q
}
