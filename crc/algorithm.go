package crc

// Algorithm selects how Process walks a byte slice: plain slice-by-N
// table lookups, or a parallel divide-and-conquer split that runs N
// independent slice-by-M lanes across goroutines and recombines them
// with Combine. It stands in for the compile-time algorithm-selector
// template parameter of the reference implementation; Go has no
// generics-free equivalent of a type-level enum, so it is realized as
// a small immutable dispatch value built only through the
// constructors below.
type Algorithm struct {
	parallel bool
	lanes    int // slice-by-N lane count, N >= 1
	workers  int // parallel worker count; 0 means "use GOMAXPROCS"
}

// DefaultAlgorithm is slice-by-8, a reasonable default lane count for
// most table sizes and input lengths.
var DefaultAlgorithm = SliceBy(8)

// SliceBy selects plain slice-by-n table processing. It panics if n < 1.
func SliceBy(n int) Algorithm {
	if n < 1 {
		panic("gocrc: SliceBy requires n >= 1")
	}
	return Algorithm{lanes: n}
}

// Parallel wraps inner in a parallel divide-and-conquer processor that
// uses GOMAXPROCS(0) workers. inner must not itself be a Parallel
// algorithm; nesting is rejected because a parallel processor's chunks
// are already sized for one level of fan-out.
func Parallel(inner Algorithm) Algorithm {
	return ParallelN(inner, 0)
}

// ParallelN is Parallel with an explicit worker count. A workers value
// <= 0 means "use GOMAXPROCS(0)".
func ParallelN(inner Algorithm, workers int) Algorithm {
	if inner.parallel {
		panic("gocrc: Parallel cannot wrap another Parallel algorithm")
	}
	lanes := inner.lanes
	if lanes == 0 {
		lanes = DefaultAlgorithm.lanes
	}
	return Algorithm{parallel: true, lanes: lanes, workers: workers}
}

func resolveAlgorithm(a Algorithm) Algorithm {
	if a.lanes == 0 && !a.parallel {
		return DefaultAlgorithm
	}
	return a
}
