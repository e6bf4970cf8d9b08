// internal/listcli/options.go
package listcli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"primesieve/internal/cli"
	"primesieve/internal/version"
)

// Options holds the parsed command line for primelist.
type Options struct {
	N       int
	Values  []int // optional candidates to filter; empty = list all primes
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: enumerate or filter primes up to a limit

Version: %s

Usage: %s [flags] N [value ...]

With only N, prints every prime <= N, one per line. With extra
values, prints the primes among them in input order; a value outside
0..N is an error.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags plus the positional limit
// and optional candidate values.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	args := fs.Args()
	if len(args) == 0 {
		return opt, errors.New("missing required argument N")
	}
	n, err := cli.ParseLimit(args[:1])
	if err != nil {
		return opt, err
	}
	opt.N = n
	for _, a := range args[1:] {
		v, err := strconv.Atoi(a)
		if err != nil {
			return opt, fmt.Errorf("invalid value %q: not an integer", a)
		}
		opt.Values = append(opt.Values, v)
	}
	return opt, nil
}
