package cumulate

// A Predicate reports whether an element satisfies a condition. It receives
// the element, the element's index in the source, and the source itself.
// State a predicate needs beyond its arguments should be captured in a
// closure.
type Predicate[E any] func(value E, index int, x Array[E]) bool

// ByValue adapts a single-argument test to a Predicate, for callers that
// only need the element.
func ByValue[E any](f func(value E) bool) Predicate[E] {
	return func(value E, _ int, _ Array[E]) bool {
		return f(value)
	}
}

// ByIndex adapts a two-argument test to a Predicate, for callers that need
// the element and its index but not the source.
func ByIndex[E any](f func(value E, index int) bool) Predicate[E] {
	return func(value E, index int, _ Array[E]) bool {
		return f(value, index)
	}
}
