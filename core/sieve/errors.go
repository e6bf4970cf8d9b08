// core/sieve/errors.go
package sieve

import (
	"errors"
	"fmt"
)

// ErrNotPopulated is returned by queries against a sieve whose Fill
// has not run. The caller can recover by calling Fill and retrying.
var ErrNotPopulated = errors.New("sieve not populated")

// BoundsError reports a queried value outside the sieve's table.
// The same instance can never answer this query; the caller needs a
// sieve with a larger max.
type BoundsError struct {
	Value int
	Max   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%d is out of this sieve's bounds (max %d)", e.Value, e.Max)
}
