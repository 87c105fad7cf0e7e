package cumulate

// Number matches the element types a numeric destination may use. Boolean
// results are stored as 0 and 1.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SomeByRightAssign performs the SomeByRight scan and writes the results
// into out at positions offset, offset+stride, offset+2*stride, and so on,
// one position per element of x in iteration order (source index len(x)-1
// first). Positions of out outside that pattern are left untouched. The
// destination must be large enough for the full pattern; no bounds are
// checked beyond normal slice indexing. Returns out.
func SomeByRightAssign[S ~[]E, O ~[]bool, E any](x S, n int, out O, stride, offset int, p Predicate[E]) O {
	view := Slice(x)
	scanRight(len(x), func(i int) bool { return p(x[i], i, view) }, func(k, count int) {
		out[offset+stride*k] = count >= n
	})
	return out
}

// SomeByRightAssignNumeric is SomeByRightAssign for numeric destinations:
// a satisfied threshold is stored as 1, an unsatisfied one as 0, in the
// destination's element type.
func SomeByRightAssignNumeric[S ~[]E, O ~[]N, E any, N Number](x S, n int, out O, stride, offset int, p Predicate[E]) O {
	view := Slice(x)
	scanRight(len(x), func(i int) bool { return p(x[i], i, view) }, func(k, count int) {
		var v N
		if count >= n {
			v = 1
		}
		out[offset+stride*k] = v
	})
	return out
}

// SomeByRightAssignInto is the convenience form of SomeByRightAssign with
// stride 1 and offset 0: results fill out from its first position.
func SomeByRightAssignInto[S ~[]E, O ~[]bool, E any](x S, n int, out O, p Predicate[E]) O {
	return SomeByRightAssign(x, n, out, 1, 0, p)
}

// SomeByRightAssignArray performs the SomeByRight scan over an accessor
// source and writes the results through out.Set using the same stride and
// offset placement as SomeByRightAssign. Returns out.
func SomeByRightAssignArray[E any](x Array[E], n int, out MutableArray[bool], stride, offset int, p Predicate[E]) MutableArray[bool] {
	scanRight(x.Len(), func(i int) bool { return p(x.Get(i), i, x) }, func(k, count int) {
		out.Set(offset+stride*k, count >= n)
	})
	return out
}
