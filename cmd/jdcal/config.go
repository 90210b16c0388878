package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/SebastiaanKlippert/go-jdate"
	"github.com/SebastiaanKlippert/go-jdate/frag"
	"github.com/SebastiaanKlippert/go-jdate/jd"
)

//These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

//Config holds the settings of the jdcal commands, read from a TOML file and overridden by flags.
type Config struct {
	Reform    string //italy, england, julian, gregorian or a day number
	Limit     int    //longest accepted input in bytes
	Complete  bool   //move two digit years into 1969-2068
	Charset   string //encoding of batch input
	CacheSize int    //parse results remembered by batch
	LogLevel  string
	JSON      bool
}

func defaultConfig() Config {
	return Config{
		Reform:    "italy",
		Limit:     frag.DefaultLimit,
		Complete:  true,
		Charset:   "utf8",
		CacheSize: 1024,
		LogLevel:  "warn",
	}
}

func loadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	//Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

//buildConfig starts from the defaults, applies the config file and then the flags that were set.
func buildConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(reformFlag.Name) {
		cfg.Reform = ctx.String(reformFlag.Name)
	}
	if ctx.IsSet(limitFlag.Name) {
		cfg.Limit = ctx.Int(limitFlag.Name)
	}
	if ctx.Bool(noCompleteFlag.Name) {
		cfg.Complete = false
	}
	if ctx.IsSet(charsetFlag.Name) {
		cfg.Charset = ctx.String(charsetFlag.Name)
	}
	if ctx.IsSet(cacheFlag.Name) {
		cfg.CacheSize = ctx.Int(cacheFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.String(logLevelFlag.Name)
	}
	if ctx.Bool(jsonFlag.Name) {
		cfg.JSON = true
	}
	return cfg, nil
}

func (c Config) logger() (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func (c Config) parser(log *slog.Logger) (*jdate.Parser, error) {
	sg, err := jd.ParseReform(c.Reform)
	if err != nil {
		n, nerr := strconv.Atoi(strings.TrimSpace(c.Reform))
		if nerr != nil {
			return nil, err
		}
		//out of the reform window, NewParser warns and uses the default
		sg = jd.Reform(n)
	}
	opts := []jdate.Option{
		jdate.WithReform(sg),
		jdate.WithLimit(c.Limit),
		jdate.WithToday(func() jdate.Date { return jdate.FromTime(time.Now()) }),
		jdate.WithLogger(log),
	}
	if !c.Complete {
		opts = append(opts, jdate.WithoutCenturyCompletion())
	}
	return jdate.NewParser(opts...), nil
}
