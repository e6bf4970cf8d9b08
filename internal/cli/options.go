// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"primesieve/internal/version"
)

// Options holds the parsed command line for primecheck.
type Options struct {
	N       int
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: bounded primality check (Sieve of Eratosthenes)

Version: %s

Usage: %s [flags] N

Builds a sieve with limit N and reports whether N itself is prime.
N must be a non-negative integer.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags plus the single positional
// argument N, returning an Options struct.
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

	n, err := ParseLimit(fs.Args())
	if err != nil {
		return opt, err
	}
	opt.N = n
	return opt, nil
}

// ParseLimit validates a positional argument list holding exactly one
// non-negative integer.
func ParseLimit(args []string) (int, error) {
	switch {
	case len(args) == 0:
		return 0, errors.New("missing required argument N")
	case len(args) > 1:
		return 0, fmt.Errorf("expected exactly one argument, got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid N %q: not an integer", args[0])
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid N %d: must be non-negative", n)
	}
	return n, nil
}
