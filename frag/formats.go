package frag

var (
	iso8601 = newFixedFormat("ISO 8601", 0,
		"%2y-%2m-%2d"+isoExtTime,
		"%Y-%2m[-%2d]"+isoExtTime,
		"--%2m-%2d"+isoExtTime,
		"%Y-%3j"+isoExtTime,
		"-%3j"+isoExtTime,
		"%4G-W%2V-%1u"+isoExtTime,
		"-W%2V-%1u"+isoExtTime,
		"-W-%1u"+isoExtTime,
		"%4Y%2m%2d"+isoBasTime,
		"%4Y%2m%2d%2H%2M[%2S[%.%N]][%z]",
		"%2y%2m%2d"+isoBasTime,
		"--%2m%2d"+isoBasTime,
		"%4Y%3j"+isoBasTime,
		"%4GW%2V%1u"+isoBasTime,
		"-W%2V%1u"+isoBasTime,
		"%2H:%2M[:%2S[%.%N]][%z]",
		"%2H%2M[%2S[%.%N]][%z]",
	)
	rfc3339 = newFixedFormat("RFC 3339", 0,
		"%4Y-%2m-%2d%t%2H:%2M:%2S[.%N]%z",
	)
	xmlSchema = newFixedFormat("XML Schema", 0,
		"%Y[-%2m[-%2d]][T%2H:%2M:%2S[.%N]][%z]",
		"%2H:%2M:%2S[.%N][%z]",
		"--%2m[-%2d][%z]",
		"---%2d[%z]",
	)
	rfc2822 = newFixedFormat("RFC 2822", 0,
		"[%a_, ]%d %b %Y %2H:%2M[:%2S]_%Z",
	)
	httpDate = newFixedFormat("HTTP-date", 0,
		"%a_, %2d %b %4Y %2H:%2M:%2S GMT",
		"%A_, %2d_-_%b_-_%2y %2H:%2M:%2S GMT",
		"%a %b %e %2H:%2M:%2S %4Y",
	)
	jisX0301 = newFixedFormat("JIS X 0301", 'h',
		"[%J]%2y.%2m.%2d[T%2H:%2M[:%2S[%.%N]][%z]]",
	)
)

const (
	isoExtTime = "[T%2H:%2M[:%2S[%.%N]][%z]]"
	isoBasTime = "[T%2H%2M[%2S[%.%N]][%z]]"
)

func (m *layoutMatch) fragments() *Fragments {
	f := m.f
	f.Settle(false)
	return &f
}

//ScanISO8601 reads the extended and basic ISO 8601 calendar, ordinal and week
//date forms, each optionally followed by a time, and bare times.
//Two digit years are completed to 1969-2068.
func ScanISO8601(text string, limit int) (*Fragments, error) {
	m, _, err := iso8601.match(text, limit)
	if err != nil {
		return nil, err
	}
	return m.fragments(), nil
}

//ScanRFC3339 reads a full RFC 3339 date and time with offset.
func ScanRFC3339(text string, limit int) (*Fragments, error) {
	m, _, err := rfc3339.match(text, limit)
	if err != nil {
		return nil, err
	}
	return m.fragments(), nil
}

//ScanXMLSchema reads the XML Schema date, dateTime, time and truncated
//gMonth, gMonthDay and gDay forms.
func ScanXMLSchema(text string, limit int) (*Fragments, error) {
	m, _, err := xmlSchema.match(text, limit)
	if err != nil {
		return nil, err
	}
	return m.fragments(), nil
}

//ScanRFC2822 reads an RFC 2822 date. Years of fewer than four digits are
//taken as 2000-2049 below 50 and 1950-1999 otherwise.
func ScanRFC2822(text string, limit int) (*Fragments, error) {
	m, _, err := rfc2822.match(text, limit)
	if err != nil {
		return nil, err
	}
	if m.yearDigits < 4 && !m.yearSigned {
		if m.f.Year.V < 50 {
			m.f.Year.V += 2000
		} else {
			m.f.Year.V += 1900
		}
	}
	return m.fragments(), nil
}

//ScanHTTPDate reads the three date forms HTTP accepts: IMF-fixdate,
//RFC 850 and asctime.
func ScanHTTPDate(text string, limit int) (*Fragments, error) {
	m, i, err := httpDate.match(text, limit)
	if err != nil {
		return nil, err
	}
	if i < 2 {
		m.f.Zone.Set(m.in[len(m.in)-3:])
		m.f.Offset.Set(0)
	}
	return m.fragments(), nil
}

//ScanJISX0301 reads a JIS X 0301 era date such as H31.04.30, the era defaults to Heisei.
//Text that is not an era date is read as ISO 8601.
func ScanJISX0301(text string, limit int) (*Fragments, error) {
	m, _, err := jisX0301.match(text, limit)
	if err == nil {
		return m.fragments(), nil
	}
	if f, isoErr := ScanISO8601(text, limit); isoErr == nil {
		return f, nil
	}
	return nil, err
}
