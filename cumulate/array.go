package cumulate

// An Array is a read-only view over an indexable collection. It is the
// common input representation for containers that do not support native
// indexing; plain slices are adapted with Slice.
type Array[E any] interface {
	// Len returns the number of elements in the collection.
	Len() int
	// Get returns the element at index i. Behavior for indexes outside
	// [0, Len()) is that of the underlying container.
	Get(i int) E
}

// A MutableArray is an Array that also supports indexed writes.
type MutableArray[E any] interface {
	Array[E]
	// Set stores v at index i.
	Set(i int, v E)
}

// sliceArray adapts a plain slice to the accessor interfaces.
type sliceArray[E any] []E

func (s sliceArray[E]) Len() int { return len(s) }

func (s sliceArray[E]) Get(i int) E { return s[i] }

func (s sliceArray[E]) Set(i int, v E) { s[i] = v }

// Slice wraps x as a MutableArray sharing the same backing array. Writes
// through the returned view are visible in x.
func Slice[S ~[]E, E any](x S) MutableArray[E] {
	return sliceArray[E](x)
}

// accessorArray is a function-backed accessor container.
type accessorArray[E any] struct {
	length int
	get    func(int) E
	set    func(int, E)
}

func (a *accessorArray[E]) Len() int { return a.length }

func (a *accessorArray[E]) Get(i int) E { return a.get(i) }

func (a *accessorArray[E]) Set(i int, v E) { a.set(i, v) }

// NewAccessor creates a MutableArray of the given length backed by the
// provided get and set functions. set may be nil for collections that are
// only ever read; calling Set on such an array panics.
func NewAccessor[E any](length int, get func(i int) E, set func(i int, v E)) MutableArray[E] {
	return &accessorArray[E]{length: length, get: get, set: set}
}
