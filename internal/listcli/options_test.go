// internal/listcli/options_test.go
package listcli

import (
	"io"
	"reflect"
	"testing"
)

func parse(t *testing.T, argv []string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("primelist")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantN    int
		wantVals []int
		wantErr  bool
	}{
		{name: "limit only", argv: []string{"30"}, wantN: 30},
		{name: "limit and values", argv: []string{"15", "1", "2", "3"}, wantN: 15, wantVals: []int{1, 2, 3}},
		{name: "negative value kept for core to reject", argv: []string{"--", "15", "-2"}, wantN: 15, wantVals: []int{-2}},
		{name: "missing limit", argv: []string{}, wantErr: true},
		{name: "negative limit", argv: []string{"--", "-5"}, wantErr: true},
		{name: "non-integer limit", argv: []string{"many"}, wantErr: true},
		{name: "non-integer value", argv: []string{"15", "2", "x"}, wantErr: true},
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
			if !reflect.DeepEqual(opt.Values, tc.wantVals) {
				t.Errorf("Values = %v, want %v", opt.Values, tc.wantVals)
			}
		})
	}
}
