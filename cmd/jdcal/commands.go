package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	lru "github.com/hashicorp/golang-lru"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/SebastiaanKlippert/go-jdate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//result is one parsed input as written by parse and batch.
type result struct {
	Line       int         `json:"line,omitempty"`
	Input      string      `json:"input"`
	Date       *jdate.Date `json:"date,omitempty"`
	JD         int         `json:"jd,omitempty"`
	Commercial string      `json:"commercial,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func newResult(line int, input string, d jdate.Date, err error) result {
	r := result{Line: line, Input: input}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Date = &d
	r.JD = d.JD()
	r.Commercial = fmt.Sprintf("%d-W%02d-%d", d.CWYear(), d.CWeek(), d.CWDay())
	return r
}

func (e *env) writeResults(rs []result, withLine bool) error {
	if e.cfg.JSON {
		return e.writeJSON(rs)
	}
	table := tablewriter.NewWriter(e.out)
	header := []string{"Input", "Date", "JD", "Commercial"}
	if withLine {
		header = append([]string{"Line"}, header...)
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rs {
		row := []string{r.Input, e.errc.Sprint(r.Error), "", ""}
		if r.Date != nil {
			row = []string{r.Input, r.Date.String(), strconv.Itoa(r.JD), r.Commercial}
		}
		if withLine {
			row = append([]string{strconv.Itoa(r.Line)}, row...)
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func (e *env) writeJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, string(b))
	return err
}

//parseFunc returns the parser method for a fixed format name, or free form parsing.
func (e *env) parseFunc(format string, withTime bool) (func(string) (jdate.Date, error), error) {
	p := e.parser
	switch format {
	case "":
		if withTime {
			return p.ParseDateTime, nil
		}
		return p.Parse, nil
	case "iso8601":
		return p.ParseISO8601, nil
	case "rfc3339":
		return p.ParseRFC3339, nil
	case "xmlschema":
		return p.ParseXMLSchema, nil
	case "rfc2822":
		return p.ParseRFC2822, nil
	case "httpdate":
		return p.ParseHTTPDate, nil
	case "jisx0301":
		return p.ParseJISX0301, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func parseCmd(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	parse, err := e.parseFunc(ctx.String(formatFlag.Name), ctx.Bool(timeFlag.Name))
	if err != nil {
		return err
	}
	var rs []result
	for _, in := range ctx.Args().Slice() {
		d, err := parse(in)
		rs = append(rs, newResult(0, in, d, err))
	}
	return e.writeResults(rs, false)
}

func fragsCmd(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	all := make(map[string]map[string]interface{})
	table := tablewriter.NewWriter(e.out)
	table.SetHeader([]string{"Input", "Fragment", "Value"})
	table.SetAutoMergeCells(true)
	for _, in := range ctx.Args().Slice() {
		f, err := e.parser.Fragments(in)
		if err != nil {
			table.Append([]string{in, "", e.errc.Sprint(err)})
			continue
		}
		m := f.Map()
		all[in] = m
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			table.Append([]string{in, k, fmt.Sprint(m[k])})
		}
	}
	if e.cfg.JSON {
		return e.writeJSON(all)
	}
	table.Render()
	return nil
}

func convertCmd(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	n, err := intArgs(ctx)
	if err != nil {
		return err
	}
	sg := e.parser.Reform()
	from := ctx.String(fromFlag.Name)
	need := map[string]int{"civil": 3, "ordinal": 2, "commercial": 3, "week0": 3, "week1": 3, "nthkday": 4, "jd": 1}
	if c, ok := need[from]; !ok {
		return fmt.Errorf("unknown coordinates %q", from)
	} else if len(n) != c {
		return fmt.Errorf("%s needs %d fields, have %d", from, c, len(n))
	}

	var d jdate.Date
	switch from {
	case "civil":
		d, err = jdate.Civil(n[0], n[1], n[2], sg)
	case "ordinal":
		d, err = jdate.Ordinal(n[0], n[1], sg)
	case "commercial":
		d, err = jdate.Commercial(n[0], n[1], n[2], sg)
	case "week0":
		d, err = jdate.WeekNum(n[0], n[1], n[2], 0, sg)
	case "week1":
		d, err = jdate.WeekNum(n[0], n[1], n[2], 1, sg)
	case "nthkday":
		d, err = jdate.NthKday(n[0], n[1], n[2], n[3], sg)
	case "jd":
		d = jdate.JD(n[0], sg)
	}
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"civil", d.ISO8601()},
		{"ordinal", fmt.Sprintf("%d-%03d", d.Year(), d.YDay())},
		{"commercial", fmt.Sprintf("%d-W%02d-%d", d.CWYear(), d.CWeek(), d.CWDay())},
		{"week0", fmt.Sprintf("%d %d %d", d.Year(), d.WNum0(), d.WDay())},
		{"week1", fmt.Sprintf("%d %d %d", d.Year(), d.WNum1(), d.CWDay()-1)},
		{"jd", strconv.Itoa(d.JD())},
		{"mjd", strconv.Itoa(d.MJD())},
		{"ld", strconv.Itoa(d.LD())},
		{"ajd", d.AJD().RatString()},
		{"calendar", calendarName(d)},
		{"jisx0301", d.JISX0301()},
		{"rfc2822", d.RFC2822()},
	}
	if e.cfg.JSON {
		m := make(map[string]string, len(rows))
		for _, r := range rows {
			m[r[0]] = r[1]
		}
		return e.writeJSON(m)
	}
	table := tablewriter.NewWriter(e.out)
	table.SetHeader([]string{"System", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		table.Append(r[:])
	}
	table.Render()
	return nil
}

func calendarName(d jdate.Date) string {
	if d.IsJulian() {
		return "julian"
	}
	return "gregorian"
}

//cached is a parse outcome kept in the batch cache.
type cached struct {
	d   jdate.Date
	err error
}

func batchCmd(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("batch needs one file name")
	}
	var in io.Reader = os.Stdin
	if name := ctx.Args().First(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	dec, err := jdate.DecoderFor(e.cfg.Charset)
	if err != nil {
		return err
	}
	parse, _ := e.parseFunc("", ctx.Bool(timeFlag.Name))
	if e.cfg.CacheSize > 0 {
		parse, err = cachedParse(parse, e.cfg.CacheSize)
		if err != nil {
			return err
		}
	}

	r := jdate.NewReader(in, dec, parse)
	var rs []result
	failed := 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if rec.Err != nil {
			failed++
		}
		rs = append(rs, newResult(rec.Line, rec.Text, rec.Date, rec.Err))
	}
	e.log.Debug("batch done", "lines", r.Line(), "dates", len(rs), "failed", failed)
	return e.writeResults(rs, true)
}

//cachedParse remembers the outcome of the last size distinct inputs.
func cachedParse(parse func(string) (jdate.Date, error), size int) (func(string) (jdate.Date, error), error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return func(s string) (jdate.Date, error) {
		if v, ok := cache.Get(s); ok {
			c := v.(cached)
			return c.d, c.err
		}
		d, err := parse(s)
		cache.Add(s, cached{d, err})
		return d, err
	}, nil
}
