// Package argv parses the double-dash flag grammar of the command line.
//
//	--flag=v1,v2,v3   comma separated values in one token
//	--flag v1 v2 v3   values accumulated until the next flag
//	--flag            no values
package argv

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

const prefix = "--"

// Args maps flag names (without dashes) to their values.
type Args map[string][]string

// Parse reads flags from args. Tokens before the first flag are ignored.
// A flag given twice in the --flag=... form replaces its values,
// in the spaced form it keeps accumulating.
func Parse(args []string) Args {
	parsed := make(Args)

	var current string
	for _, arg := range args {
		if !strings.HasPrefix(arg, prefix) || arg == prefix {
			if current != "" {
				parsed[current] = append(parsed[current], arg)
			}
			continue
		}

		name, values, inline := strings.Cut(strings.TrimPrefix(arg, prefix), "=")
		if inline {
			parsed[name] = split(values)
			current = ""
			continue
		}

		if _, ok := parsed[name]; !ok {
			parsed[name] = []string{}
		}
		current = name
	}

	return parsed
}

func split(values string) []string {
	return lo.FilterMap(strings.Split(values, ","), func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
}

// Has reports whether the flag was given, with or without values.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// List returns every value of the flag.
func (a Args) List(name string) []string {
	return a[name]
}

// Single returns the first value of the flag.
func (a Args) Single(name string) mo.Option[string] {
	values := a[name]
	if len(values) == 0 {
		return mo.None[string]()
	}
	return mo.Some(values[0])
}
