//jdcal parses dates and converts them between calendar coordinates.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/SebastiaanKlippert/go-jdate"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	reformFlag = &cli.StringFlag{
		Name:  "reform",
		Usage: "calendar reform: italy, england, julian, gregorian or a day number",
	}
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "longest accepted input in bytes, 0 for no limit",
	}
	noCompleteFlag = &cli.BoolFlag{
		Name:  "no-complete",
		Usage: "keep two digit years as written",
	}
	charsetFlag = &cli.StringFlag{
		Name:  "charset",
		Usage: "encoding of batch input: utf8, win1250, win1252 or latin1",
	}
	cacheFlag = &cli.IntFlag{
		Name:  "cache",
		Usage: "number of parse results batch remembers",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "loglevel",
		Usage: "debug, info, warn or error",
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "write JSON instead of a table",
	}

	timeFlag = &cli.BoolFlag{
		Name:  "time",
		Usage: "keep the time of day",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "fixed format: iso8601, rfc3339, xmlschema, rfc2822, httpdate or jisx0301",
	}
	fromFlag = &cli.StringFlag{
		Name:  "from",
		Value: "civil",
		Usage: "coordinates given: civil, ordinal, commercial, week0, week1, nthkday or jd",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "jdcal",
		Usage: "parse dates and convert between calendar coordinates",
		Flags: []cli.Flag{configFlag, reformFlag, limitFlag, noCompleteFlag, charsetFlag, cacheFlag, logLevelFlag, jsonFlag},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse dates from the arguments",
				ArgsUsage: "<text>...",
				Flags:     []cli.Flag{timeFlag, formatFlag},
				Action:    parseCmd,
			},
			{
				Name:      "frags",
				Usage:     "Show the fragments found in the arguments",
				ArgsUsage: "<text>...",
				Action:    fragsCmd,
			},
			{
				Name:      "convert",
				Usage:     "Show a date in every calendar coordinate system",
				ArgsUsage: "<field>...",
				Flags:     []cli.Flag{fromFlag},
				Action:    convertCmd,
			},
			{
				Name:      "batch",
				Usage:     "Parse one date per line from a file, - for standard input",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{timeFlag},
				Action:    batchCmd,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorColor(os.Stderr).Sprint(err))
		os.Exit(1)
	}
}

//env is what every command needs, built from the flags and config file.
type env struct {
	cfg    Config
	log    *slog.Logger
	parser *jdate.Parser
	out    io.Writer
	errc   *color.Color
}

func setup(ctx *cli.Context) (*env, error) {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return nil, err
	}
	log, err := cfg.logger()
	if err != nil {
		return nil, err
	}
	jdate.SetLogger(log)
	p, err := cfg.parser(log)
	if err != nil {
		return nil, err
	}
	out := ctx.App.Writer
	if out == nil {
		out = os.Stdout
	}
	return &env{cfg: cfg, log: log, parser: p, out: out, errc: errorColor(out)}, nil
}

func errorColor(w io.Writer) *color.Color {
	c := color.New(color.FgHiRed)
	f, ok := w.(*os.File)
	usecolor := ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
	if usecolor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func intArgs(ctx *cli.Context) ([]int, error) {
	args := ctx.Args().Slice()
	n := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		n[i] = v
	}
	return n, nil
}
