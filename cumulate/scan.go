package cumulate

// scanRight walks a source of the given length from its last index down to
// its first, maintaining a running count of predicate hits. test receives
// the source index; put receives the iteration index k, which corresponds
// to source index length-1-k, and the count of hits observed so far,
// including the element at length-1-k itself.
func scanRight(length int, test func(i int) bool, put func(k, count int)) {
	count := 0
	for k := 0; k < length; k++ {
		if test(length - 1 - k) {
			count++
		}
		put(k, count)
	}
}

// SomeByRight tests cumulatively, while iterating x from its last element
// to its first, whether at least n elements examined so far satisfy p. The
// result has the length of x and is filled in iteration order: index k of
// the result covers the suffix of x starting at index len(x)-1-k.
//
// A threshold of zero or less is trivially satisfied and yields all true;
// a threshold greater than len(x) can never be reached and yields all
// false.
func SomeByRight[S ~[]E, E any](x S, n int, p Predicate[E]) []bool {
	out := make([]bool, len(x))
	view := Slice(x)
	scanRight(len(x), func(i int) bool { return p(x[i], i, view) }, func(k, count int) {
		out[k] = count >= n
	})
	return out
}

// SomeByRightArray is the SomeByRight variant for accessor arrays. Elements
// are read through x.Get; the scan is otherwise identical.
func SomeByRightArray[E any](x Array[E], n int, p Predicate[E]) []bool {
	out := make([]bool, x.Len())
	scanRight(x.Len(), func(i int) bool { return p(x.Get(i), i, x) }, func(k, count int) {
		out[k] = count >= n
	})
	return out
}

// AnyByRight tests cumulatively, while iterating x from its last element to
// its first, whether any element examined so far satisfies p. It is
// equivalent to SomeByRight with a threshold of 1.
func AnyByRight[S ~[]E, E any](x S, p Predicate[E]) []bool {
	return SomeByRight(x, 1, p)
}

// EveryByRight tests cumulatively, while iterating x from its last element
// to its first, whether every element examined so far satisfies p. Once an
// element fails, every later result is false.
func EveryByRight[S ~[]E, E any](x S, p Predicate[E]) []bool {
	out := make([]bool, len(x))
	view := Slice(x)
	scanRight(len(x), func(i int) bool { return p(x[i], i, view) }, func(k, count int) {
		out[k] = count == k+1
	})
	return out
}

// CountByRight returns the running count of elements satisfying p while
// iterating x from its last element to its first. Index k of the result
// holds the number of hits among the suffix of x starting at index
// len(x)-1-k. The boolean scans in this package are threshold views over
// these counts.
func CountByRight[S ~[]E, E any](x S, p Predicate[E]) []int {
	out := make([]int, len(x))
	view := Slice(x)
	scanRight(len(x), func(i int) bool { return p(x[i], i, view) }, func(k, count int) {
		out[k] = count
	})
	return out
}
