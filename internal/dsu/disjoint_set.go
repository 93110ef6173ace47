// Package dsu implements a generic disjoint-set (union-find) structure with
// path compression and union by rank. The generator uses it two ways: merging
// adjacent tiles into combined regions and tracking cell connectivity while a
// board shape grows.
package dsu

// DisjointSet tracks a partition of keys into disjoint sets. The zero value is
// not usable; construct with New.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
}

func New[T comparable]() *DisjointSet[T] {
	return &DisjointSet[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
	}
}

// MakeSet registers x as a singleton set. It is a no-op if x is already
// tracked.
func (ds *DisjointSet[T]) MakeSet(x T) {
	if _, ok := ds.parent[x]; !ok {
		ds.parent[x] = x
		ds.rank[x] = 0
	}
}

// Find returns the representative of x's set, compressing the path along the
// way. An unseen key is implicitly registered as its own singleton set.
func (ds *DisjointSet[T]) Find(x T) T {
	if _, ok := ds.parent[x]; !ok {
		ds.MakeSet(x)
	}
	if ds.parent[x] != x {
		ds.parent[x] = ds.Find(ds.parent[x])
	}
	return ds.parent[x]
}

// Union merges the sets containing x and y, attaching the lower-ranked root
// under the higher-ranked one. It reports whether a merge actually happened:
// false means x and y were already in the same set.
func (ds *DisjointSet[T]) Union(x, y T) bool {
	rootX, rootY := ds.Find(x), ds.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case ds.rank[rootX] < ds.rank[rootY]:
		ds.parent[rootX] = rootY
	case ds.rank[rootX] > ds.rank[rootY]:
		ds.parent[rootY] = rootX
	default:
		ds.parent[rootY] = rootX
		ds.rank[rootX]++
	}
	return true
}

// Connected reports whether x and y belong to the same set.
func (ds *DisjointSet[T]) Connected(x, y T) bool {
	return ds.Find(x) == ds.Find(y)
}

// Sets returns every tracked set as a representative-to-members mapping.
func (ds *DisjointSet[T]) Sets() map[T][]T {
	sets := make(map[T][]T)
	for x := range ds.parent {
		root := ds.Find(x)
		sets[root] = append(sets[root], x)
	}
	return sets
}

// SetSize returns the number of members in x's set.
func (ds *DisjointSet[T]) SetSize(x T) int {
	root := ds.Find(x)
	size := 0
	for y := range ds.parent {
		if ds.Find(y) == root {
			size++
		}
	}
	return size
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet[T]) Count() int {
	roots := make(map[T]bool)
	for x := range ds.parent {
		roots[ds.Find(x)] = true
	}
	return len(roots)
}
