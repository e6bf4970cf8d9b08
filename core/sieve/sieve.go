// core/sieve/sieve.go

// Package sieve computes primality over a bounded integer range using
// the Sieve of Eratosthenes. A Sieve is allocated once with a fixed
// inclusive upper bound, populated exactly once by Fill, and then
// answers read-only queries; lookups against an unpopulated sieve are
// rejected rather than answered from the optimistic initial table.
package sieve

// Sieve answers primality queries for values in 0..=Max().
//
// Fill mutates the table without synchronization, so population must
// complete before the instance is shared. A populated sieve is
// read-only and safe for concurrent Lookup/Filter calls.
type Sieve struct {
	max    int
	table  *bitset
	filled bool
}

// Unfilled allocates a sieve of max+1 flags, all optimistically set,
// without populating it. Queries fail until Fill runs. Panics if max
// is negative.
func Unfilled(max int) *Sieve {
	if max < 0 {
		panic("sieve: negative max")
	}
	t := newBitset(max + 1)
	t.setAll()
	return &Sieve{max: max, table: t}
}

// New returns a populated sieve with the maximum value max, ready for
// queries.
func New(max int) *Sieve {
	s := Unfilled(max)
	s.Fill()
	return s
}

// Max returns the inclusive upper bound fixed at construction.
func (s *Sieve) Max() int { return s.max }

// Filled reports whether the sieve has been populated.
func (s *Sieve) Filled() bool { return s.filled }

// eliminate clears every multiple of p, starting at 2p. When a smaller
// factor already cleared p, its multiples were cleared on that
// factor's pass and the whole step is skipped.
func (s *Sieve) eliminate(p int) {
	if !s.table.get(p) {
		return
	}
	for m := 2 * p; m <= s.max; m += p {
		s.table.clear(m)
	}
}

// Fill populates the sieve: 0 and 1 are forced non-prime, then every
// composite is eliminated as a multiple of some prime no greater than
// sqrt(max). Calling Fill on a populated sieve is a no-op.
func (s *Sieve) Fill() {
	if s.filled {
		return
	}
	s.table.clear(0)
	if s.max >= 1 {
		s.table.clear(1)
	}
	for i := 2; i*i <= s.max; i++ {
		s.eliminate(i)
	}
	s.filled = true
}

// Lookup reports whether target is prime. It fails with
// ErrNotPopulated before Fill has run, and with a *BoundsError when
// target is negative or exceeds Max.
func (s *Sieve) Lookup(target int) (bool, error) {
	if !s.filled {
		return false, ErrNotPopulated
	}
	if target < 0 || target > s.max {
		return false, &BoundsError{Value: target, Max: s.max}
	}
	return s.table.get(target), nil
}

// Filter returns the primes among targets, preserving input order and
// multiplicity. The first failing lookup aborts the whole call with
// that error; no partial result is returned.
func (s *Sieve) Filter(targets []int) ([]int, error) {
	out := make([]int, 0, len(targets))
	for _, v := range targets {
		prime, err := s.Lookup(v)
		if err != nil {
			return nil, err
		}
		if prime {
			out = append(out, v)
		}
	}
	return out, nil
}

// Primes returns every prime up to Max in ascending order. It fails
// with ErrNotPopulated before Fill has run.
func (s *Sieve) Primes() ([]int, error) {
	if !s.filled {
		return nil, ErrNotPopulated
	}
	out := make([]int, 0, s.table.count())
	for i := 2; i <= s.max; i++ {
		if s.table.get(i) {
			out = append(out, i)
		}
	}
	return out, nil
}

// Count returns the number of primes up to Max. It fails with
// ErrNotPopulated before Fill has run.
func (s *Sieve) Count() (int, error) {
	if !s.filled {
		return 0, ErrNotPopulated
	}
	return s.table.count(), nil
}
