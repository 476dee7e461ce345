package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/barweiss/go-tuple"
	"github.com/csimplestring/mapok-go/errno"
	"github.com/csimplestring/mapok-go/internal/parse"
	"github.com/rotisserie/eris"
	duration "github.com/xhit/go-str2duration/v2"
)

const envPrefix = "MAPOK_"

// Setting is a single named option with a string default.
type Setting[T any] struct {
	Key          string
	DefaultValue string
	FromString   func(s string) (T, error)
}

// From resolves the setting from conf, falling back to the default when the
// key is absent.
func (s *Setting[T]) From(conf map[string]string) (T, error) {
	v, ok := conf[s.Key]
	if !ok {
		v = s.DefaultValue
	}
	res, err := s.FromString(v)
	if err != nil {
		var zero T
		return zero, eris.Wrapf(err, "setting %s", s.Key)
	}
	return res, nil
}

var timeDurationUnits = map[string]string{
	"nanosecond":  "ns",
	"microsecond": "us",
	"millisecond": "ms",
	"second":      "s",
	"minute":      "m",
	"hour":        "h",
	"day":         "d",
	"week":        "w",
}

// parseDuration accepts either a duration such as "1m30s" or the long form
// "interval <number> <unit>".
func parseDuration(s string) (time.Duration, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 1 {
		return duration.ParseDuration(fields[0])
	}
	if len(fields) != 3 || fields[0] != "interval" {
		return 0, errno.IllegalArgument("can't parse duration from string " + s)
	}

	unit, ok := timeDurationUnits[strings.TrimSuffix(fields[2], "s")]
	if !ok {
		return 0, errno.IllegalArgument("unknown duration unit " + fields[2])
	}
	return duration.ParseDuration(fields[1] + unit)
}

var Input = &Setting[string]{
	Key:          "in",
	DefaultValue: "-",
	FromString: func(s string) (string, error) {
		if s == "" {
			return "", errno.IllegalArgument("empty input")
		}
		return s, nil
	},
}

var Kind = &Setting[string]{
	Key:          "kind",
	DefaultValue: parse.KindUint,
	FromString: func(s string) (string, error) {
		s = strings.ToLower(s)
		if !parse.Valid(s) {
			return "", errno.UnknownKind(s, parse.Names())
		}
		return s, nil
	},
}

var Factor = &Setting[uint64]{
	Key:          "factor",
	DefaultValue: "1",
	FromString: func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	},
}

var Timeout = &Setting[time.Duration]{
	Key:          "timeout",
	DefaultValue: "interval 30 seconds",
	FromString:   parseDuration,
}

// Overrides are explicitly set key/value pairs, e.g. from command line flags.
type Overrides []*tuple.T2[string, string]

// FromEnv collects MAPOK_* variables from environ, keyed by the lower-cased
// remainder of the name.
func FromEnv(environ []string) map[string]string {
	res := make(map[string]string)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, envPrefix) {
			continue
		}
		res[strings.ToLower(strings.TrimPrefix(k, envPrefix))] = v
	}
	return res
}

// Merge returns base with every override applied on top.
func Merge(base map[string]string, overrides Overrides) map[string]string {
	res := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		res[k] = v
	}

	for _, v := range overrides {
		res[v.V1] = v.V2
	}
	return res
}
