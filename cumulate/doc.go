/*
Package cumulate implements cumulative right-to-left quantified scans over
arrays. Its core operation, SomeByRight, tests whether at least n elements
of a suffix of the input satisfy a predicate: the input is walked from its
last element to its first while a running count of predicate hits is
maintained, and the result records, in iteration order, whether the count
has reached n. Result index k therefore answers the question for the
suffix starting at input index len(x)-1-k.

The package operates on plain slices and on accessor arrays, containers
that expose indexed access through Get and Set methods instead of native
indexing (see Array and MutableArray). Assign variants write into a
caller-supplied destination at a regular stride and offset instead of
allocating, leaving every slot outside the stride pattern untouched.

Predicates receive the element, its index in the source, and the source
itself. No validation is performed on thresholds, strides or offsets;
destinations that are too short for the requested write pattern panic
through normal slice indexing, and predicate panics propagate to the
caller unmodified.
*/
package cumulate
