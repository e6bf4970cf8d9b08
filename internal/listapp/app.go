// internal/listapp/app.go
package listapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"primesieve-core/sieve"
	"primesieve/internal/listcli"
	"primesieve/internal/version"
	"primesieve/internal/writers"
)

// RunContext drives one primelist invocation. With just a limit it
// enumerates all primes up to it; with extra values it filters them
// down to the primes, preserving input order. Returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := listcli.NewFlagSet("primelist")
	fs.SetOutput(io.Discard)

	opts, err := listcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "primelist version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if ctx.Err() != nil {
		return 130
	}

	s := sieve.New(opts.N)
	var primes []int
	if len(opts.Values) == 0 {
		primes, err = s.Primes()
	} else {
		primes, err = s.Filter(opts.Values)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	for _, p := range primes {
		_, _ = fmt.Fprintln(outw, p)
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
