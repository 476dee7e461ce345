// Command mapok parses comma separated tokens line by line, scales every
// token that parses and reports every token that does not.
//
//	mapok [-in URL] [-kind uint|decimal|duration] [-factor N] [-timeout D]
//
// Settings default to the MAPOK_IN, MAPOK_KIND, MAPOK_FACTOR and
// MAPOK_TIMEOUT environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/barweiss/go-tuple"
	mapok "github.com/csimplestring/mapok-go"
	"github.com/csimplestring/mapok-go/internal/config"
	"github.com/csimplestring/mapok-go/internal/parse"
	"github.com/csimplestring/mapok-go/internal/source"
	"github.com/csimplestring/mapok-go/iter"
	"github.com/rotisserie/eris"
	"github.com/samber/mo"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	input  string
	kind   string
	factor uint64
}

func run(ctx context.Context, args []string, environ []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "mapok: ", 0)

	fs := flag.NewFlagSet("mapok", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String(config.Input.Key, config.Input.DefaultValue, "input URL, - for stdin")
	fs.String(config.Kind.Key, config.Kind.DefaultValue, fmt.Sprintf("token kind, one of %v", parse.Names()))
	fs.String(config.Factor.Key, config.Factor.DefaultValue, "factor applied to every parsed token")
	fs.String(config.Timeout.Key, config.Timeout.DefaultValue, "time allowed for opening the input")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var overrides config.Overrides
	fs.Visit(func(f *flag.Flag) {
		kv := tuple.New2(f.Name, f.Value.String())
		overrides = append(overrides, &kv)
	})
	conf := config.Merge(config.FromEnv(environ), overrides)

	opts, timeout, err := resolve(conf)
	if err != nil {
		logger.Println(err)
		return 2
	}

	openCtx, cancel := context.WithTimeout(ctx, timeout)
	r, err := source.Open(openCtx, opts.input, stdin)
	cancel()
	if err != nil {
		logger.Println(eris.ToString(err, false))
		return 1
	}
	lines := iter.FromReadCloser(r)

	var failures int
	switch opts.kind {
	case parse.KindDecimal:
		failures, err = process(lines, parse.Decimals, opts.factor, stdout)
	case parse.KindDuration:
		failures, err = process(lines, parse.Durations, opts.factor, stdout)
	default:
		failures, err = process(lines, parse.Uints, opts.factor, stdout)
	}
	if err != nil {
		logger.Println(eris.ToString(err, false))
		return 1
	}
	if failures > 0 {
		logger.Printf("%d token(s) failed", failures)
		return 1
	}
	return 0
}

func resolve(conf map[string]string) (options, time.Duration, error) {
	var opts options
	var err error
	if opts.input, err = config.Input.From(conf); err != nil {
		return opts, 0, err
	}
	if opts.kind, err = config.Kind.From(conf); err != nil {
		return opts, 0, err
	}
	if opts.factor, err = config.Factor.From(conf); err != nil {
		return opts, 0, err
	}
	timeout, err := config.Timeout.From(conf)
	if err != nil {
		return opts, 0, err
	}
	return opts, timeout, nil
}

// process writes one line per token and returns the number of failed tokens.
func process[T any](lines iter.Iter[string], kind parse.Kind[T], factor uint64, w io.Writer) (int, error) {
	tokens := iter.Flatten[string](&iter.MapIter[string, []string]{
		It: lines,
		Mapper: func(line string) ([]string, error) {
			return parse.Tokens(line), nil
		},
	})
	scaled := mapok.MapOk(iter.Results(tokens, kind.ParseFor(factor)), func(v T) T {
		return kind.Scale(v, factor)
	})

	failures := 0
	report := &iter.MapIter[tuple.T2[int, mo.Result[T]], string]{
		It: iter.Enumerate[mo.Result[T]](scaled),
		Mapper: func(e tuple.T2[int, mo.Result[T]]) (string, error) {
			if e.V2.IsError() {
				failures++
				return fmt.Sprintf("%d\terr\t%v", e.V1+1, e.V2.Error()), nil
			}
			return fmt.Sprintf("%d\tok\t%s", e.V1+1, kind.Format(e.V2.MustGet())), nil
		},
	}

	out := iter.AsReadCloser(report, true)
	defer out.Close()

	if _, err := io.Copy(w, out); err != nil {
		return failures, eris.Wrap(err, "copy report")
	}
	return failures, nil
}
