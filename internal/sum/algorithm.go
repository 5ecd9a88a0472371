package sum

// Integer is the set of element types Iota can populate.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Iota fills s with consecutive values starting at start.
func Iota[T Integer](s []T, start T) {
	v := start
	for i := range s {
		s[i] = v
		v++
	}
}

// Fold reduces s left to right, seeded with init.
func Fold[T, A any](s []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}
