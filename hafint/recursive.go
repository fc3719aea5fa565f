package hafint

import "golang.org/x/sync/errgroup"

// parallelThreshold is the minimum number of remaining-vertex pairs
// before the augmentation step is fanned out across goroutines; below
// it, sequential execution avoids goroutine overhead.
const parallelThreshold = 64

// edgeKey identifies an unordered vertex pair (j, k) with j > k.
type edgeKey struct {
	j, k int
}

// edgeOf looks up the polynomial for the unordered pair {a, c}, returning
// a zero polynomial of length n+1 if the pair carries no explicit entry
// (a zero-weight edge).
func edgeOf(b map[edgeKey][]int64, a, c, n int) []int64 {
	if a < c {
		a, c = c, a
	}
	if poly, ok := b[edgeKey{a, c}]; ok {
		return poly
	}

	return make([]int64, n+1)
}

// recursive implements the doubling recursion: at each level it drops
// the two highest-indexed remaining vertices, folds the edge between
// them into the shared polynomial state g, folds each dropped vertex's
// edges to every remaining vertex into that vertex pair's polynomial,
// and recurses twice (once with the dropped edge excluded entirely, once
// with it included) with alternating sign.
//
// b holds the edge polynomials for the current s-vertex problem, keyed
// by vertex pairs in [0, s). g is the shared polynomial state, w the
// running sign, n the degree bound. Returns w * g[n] once s reaches 0.
func recursive(b map[edgeKey][]int64, s int, w int64, g []int64, n int) int64 {
	if s == 0 {
		return w * g[n]
	}

	last, secondLast := s-1, s-2

	c := make(map[edgeKey][]int64, len(b))
	for key, poly := range b {
		if key.j < secondLast && key.k < secondLast {
			c[key] = poly
		}
	}

	h := recursive(c, s-2, -w, g, n)

	dropped := edgeOf(b, last, secondLast, n)
	e := make([]int64, n+1)
	copy(e, g)
	for u := 0; u <= n; u++ {
		if g[u] == 0 {
			continue
		}
		for v := 0; v < len(dropped) && u+v < n; v++ {
			e[u+v+1] += g[u] * dropped[v]
		}
	}

	cAug := make(map[edgeKey][]int64, len(c))
	for key, poly := range c {
		cAug[key] = append([]int64(nil), poly...)
	}

	pairs := make([]edgeKey, 0, secondLast*(secondLast-1)/2)
	for j := 0; j < secondLast; j++ {
		for k := 0; k < j; k++ {
			pairs = append(pairs, edgeKey{j, k})
		}
	}

	augment := func(key edgeKey) {
		augmentPair(b, cAug[key], key, last, secondLast, n)
	}

	if len(pairs) < parallelThreshold {
		for _, key := range pairs {
			augment(key)
		}
	} else {
		var eg errgroup.Group
		for _, key := range pairs {
			key := key
			eg.Go(func() error {
				augment(key)
				return nil
			})
		}
		_ = eg.Wait()
	}

	return h + recursive(cAug, s-2, w, e, n)
}

// augmentPair folds the contributions of matchings that pair one of the
// two dropped vertices (last, secondLast) with either j or k into poly,
// the (j,k) pair's polynomial, in place. poly belongs exclusively to this
// (j,k) key, so concurrent calls for distinct keys never race.
func augmentPair(b map[edgeKey][]int64, poly []int64, key edgeKey, last, secondLast, n int) {
	j, k := key.j, key.k

	edgeJLast := edgeOf(b, last, j, n)
	edgeJSecond := edgeOf(b, secondLast, j, n)
	edgeKLast := edgeOf(b, last, k, n)
	edgeKSecond := edgeOf(b, secondLast, k, n)

	for u := 0; u <= n; u++ {
		if edgeJLast[u] != 0 {
			for v := 0; v < len(edgeKSecond) && u+v < n; v++ {
				poly[u+v+1] += edgeJLast[u] * edgeKSecond[v]
			}
		}
		if edgeJSecond[u] != 0 {
			for v := 0; v < len(edgeKLast) && u+v < n; v++ {
				poly[u+v+1] += edgeJSecond[u] * edgeKLast[v]
			}
		}
	}
}
