// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"primesieve-core/sieve"
	"primesieve/internal/cli"
	"primesieve/internal/version"
	"primesieve/internal/writers"
)

// RunContext drives one primecheck invocation: parse the single
// positional N, build and populate a sieve with limit N, look N up,
// and print the verdict. Returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("primecheck")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "primecheck version %s\n", version.Version)
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

	prime, err := sieve.New(opts.N).Lookup(opts.N)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if prime {
		_, _ = fmt.Fprintf(outw, "%d is prime\n", opts.N)
	} else {
		_, _ = fmt.Fprintf(outw, "%d is not prime\n", opts.N)
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
