// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv []string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("primecheck")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantN   int
		wantErr bool
	}{
		{name: "plain", argv: []string{"17"}, wantN: 17},
		{name: "zero", argv: []string{"0"}, wantN: 0},
		{name: "missing arg", argv: []string{}, wantErr: true},
		{name: "two args", argv: []string{"3", "5"}, wantErr: true},
		{name: "non-integer", argv: []string{"seven"}, wantErr: true},
		{name: "float", argv: []string{"7.5"}, wantErr: true},
		{name: "negative", argv: []string{"--", "-3"}, wantErr: true},
		{name: "unknown flag", argv: []string{"--bogus", "7"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opt, err := parse(t, tc.argv)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseArgs(%v) err = nil, want error", tc.argv)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs(%v): %v", tc.argv, err)
			}
			if opt.N != tc.wantN {
				t.Errorf("N = %d, want %d", opt.N, tc.wantN)
			}
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	if _, err := parse(t, []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h err = %v, want flag.ErrHelp", err)
	}
}

func TestParseArgsVersion(t *testing.T) {
	opt, err := parse(t, []string{"--version"})
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !opt.Version {
		t.Fatal("Version flag not set")
	}
}
