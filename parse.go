package jdate

import (
	"fmt"
	"log/slog"

	"github.com/SebastiaanKlippert/go-jdate/frag"
	"github.com/SebastiaanKlippert/go-jdate/jd"
	"golang.org/x/text/unicode/norm"
)

//Parser reads dates from text. A Parser is safe for concurrent use.
type Parser struct {
	sg       jd.Reform
	limit    int
	complete bool
	today    func() Date
	log      *slog.Logger
}

type Option func(*Parser)

//WithReform sets the calendar reform dates are resolved under, Italy by default.
func WithReform(sg jd.Reform) Option {
	return func(p *Parser) { p.sg = sg }
}

//WithLimit sets the longest accepted input in bytes, 0 or less disables the check.
func WithLimit(n int) Option {
	return func(p *Parser) { p.limit = n }
}

//WithoutCenturyCompletion keeps two digit years as written instead of moving them into 1969-2068.
func WithoutCenturyCompletion() Option {
	return func(p *Parser) { p.complete = false }
}

//WithToday sets the reference day missing fields are taken from, Today by default.
//A nil function leaves partial dates unresolved.
func WithToday(today func() Date) Option {
	return func(p *Parser) { p.today = today }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		sg:       jd.DefaultReform,
		limit:    frag.DefaultLimit,
		complete: true,
		today:    Today,
	}
	for _, o := range opts {
		o(p)
	}
	if sg, err := jd.CheckReform(p.sg); err != nil {
		p.logger().Warn("invalid calendar reform, using default", "reform", int(p.sg), "default", sg.String(), "err", err)
		p.sg = sg
	}
	return p
}

//Reform returns the calendar reform dates are resolved under.
func (p *Parser) Reform() jd.Reform {
	return p.sg
}

func (p *Parser) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return logger()
}

//normalize folds compatibility characters. The length limit holds for the raw text
//and again for the folded text, folding can expand a single character many times over.
func (p *Parser) normalize(text string) (string, error) {
	if err := p.checkLimit(text); err != nil {
		return "", err
	}
	folded := norm.NFKC.String(text)
	if err := p.checkLimit(folded); err != nil {
		return "", err
	}
	return folded, nil
}

func (p *Parser) checkLimit(text string) error {
	if p.limit > 0 && len(text) > p.limit {
		return fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrInputTooLong, len(text), p.limit)
	}
	return nil
}

//Fragments returns the settled fragments of free form text without completing them.
func (p *Parser) Fragments(text string) (*frag.Fragments, error) {
	s, err := p.normalize(text)
	if err != nil {
		return nil, err
	}
	return frag.Parse(s, p.complete, 0)
}

//Parse reads a date from free form text. Any time of day in the text is ignored.
func (p *Parser) Parse(text string) (Date, error) {
	f, err := p.Fragments(text)
	if err != nil {
		return Date{}, err
	}
	return p.build(f, false)
}

//ParseDateTime reads a date and time of day from free form text.
//A time without a date falls on the reference day.
func (p *Parser) ParseDateTime(text string) (Date, error) {
	f, err := p.Fragments(text)
	if err != nil {
		return Date{}, err
	}
	return p.build(f, true)
}

func (p *Parser) ParseISO8601(text string) (Date, error) { return p.fixed(text, frag.ScanISO8601) }
func (p *Parser) ParseRFC3339(text string) (Date, error) { return p.fixed(text, frag.ScanRFC3339) }
func (p *Parser) ParseXMLSchema(text string) (Date, error) { return p.fixed(text, frag.ScanXMLSchema) }
func (p *Parser) ParseRFC2822(text string) (Date, error) { return p.fixed(text, frag.ScanRFC2822) }
func (p *Parser) ParseHTTPDate(text string) (Date, error) { return p.fixed(text, frag.ScanHTTPDate) }
func (p *Parser) ParseJISX0301(text string) (Date, error) { return p.fixed(text, frag.ScanJISX0301) }

//fixed reads a fixed format, the result has a clock when the text carries a time or zone.
func (p *Parser) fixed(text string, scan func(string, int) (*frag.Fragments, error)) (Date, error) {
	s, err := p.normalize(text)
	if err != nil {
		return Date{}, err
	}
	f, err := scan(s, 0)
	if err != nil {
		return Date{}, err
	}
	return p.build(f, f.HasTime() || f.Offset.OK)
}

func (p *Parser) build(f *frag.Fragments, withTime bool) (Date, error) {
	var ref frag.Reference
	if p.today != nil {
		ref = func() int { return p.today().JD() }
	}
	frag.Complete(f, ref, p.sg, withTime)
	jdn, err := frag.Resolve(f, p.sg)
	if err != nil {
		return Date{}, err
	}
	d := newDate(jdn, 0, nil, 0, p.sg, DateOnly)
	if !withTime {
		return d, nil
	}
	of := f.Offset.V
	if of <= -dayInSeconds || of >= dayInSeconds {
		p.logger().Warn("invalid offset, using UTC", "offset", of, "zone", f.Zone.V)
		of = 0
	}
	return d.At(f.Hour.V, f.Min.V, f.Sec.V, f.SecFraction, of)
}

var defaultParser = NewParser()

//Parse reads a date from free form text with the default parser.
func Parse(text string) (Date, error) { return defaultParser.Parse(text) }

func ParseDateTime(text string) (Date, error) { return defaultParser.ParseDateTime(text) }
func ParseISO8601(text string) (Date, error) { return defaultParser.ParseISO8601(text) }
func ParseRFC3339(text string) (Date, error) { return defaultParser.ParseRFC3339(text) }
func ParseXMLSchema(text string) (Date, error) { return defaultParser.ParseXMLSchema(text) }
func ParseRFC2822(text string) (Date, error) { return defaultParser.ParseRFC2822(text) }
func ParseHTTPDate(text string) (Date, error) { return defaultParser.ParseHTTPDate(text) }
func ParseJISX0301(text string) (Date, error) { return defaultParser.ParseJISX0301(text) }
