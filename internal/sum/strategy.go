package sum

// Func computes the sum of 0..n-1.
type Func func(n int32) int64

// Strategy is one way of computing the sum.
type Strategy struct {
	// Name identifies the strategy in stored runs and metrics.
	Name string
	// Label is the heading used by the text report.
	Label string
	Fn    Func
}

const (
	LoopName       = "loop"
	AccumulateName = "accumulate"
)

// Default returns the hand-written loop followed by the accumulate strategy.
func Default() []Strategy {
	return []Strategy{
		{Name: LoopName, Label: "C++", Fn: Loop},
		{Name: AccumulateName, Label: "STL", Fn: Accumulate},
	}
}

// Loop adds 0..n-1 into a 64-bit total with a plain counter.
func Loop(n int32) int64 {
	var total int64
	for i := int32(0); i < n; i++ {
		total += int64(i)
	}
	return total
}

// Accumulate materializes 0..n-1 into a slice and folds it with addition.
// The accumulator is widened to int64 so the fold cannot overflow.
func Accumulate(n int32) int64 {
	if n <= 0 {
		return 0
	}
	numbers := make([]int32, n)
	Iota(numbers, 0)
	return Fold(numbers, int64(0), func(acc int64, v int32) int64 {
		return acc + int64(v)
	})
}

// Expected is the closed form n*(n-1)/2.
func Expected(n int32) int64 {
	if n <= 0 {
		return 0
	}
	m := int64(n)
	return m * (m - 1) / 2
}
