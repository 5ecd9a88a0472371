package timing

import "time"

// now is swapped out in tests.
var now = time.Now

// Time runs op exactly once and returns its result together with the elapsed
// monotonic wall-clock time.
func Time[R any](op func() R) (R, time.Duration) {
	start := now()
	result := op()
	return result, now().Sub(start)
}

// Time1 is Time for an operation taking a single argument.
func Time1[A, R any](op func(A) R, arg A) (R, time.Duration) {
	start := now()
	result := op(arg)
	return result, now().Sub(start)
}

// Measure is Time reported in whole milliseconds. Sub-millisecond runs read as 0.
func Measure[R any](op func() R) (R, int64) {
	result, elapsed := Time(op)
	return result, elapsed.Milliseconds()
}

// Measure1 is Measure for an operation taking a single argument.
func Measure1[A, R any](op func(A) R, arg A) (R, int64) {
	result, elapsed := Time1(op, arg)
	return result, elapsed.Milliseconds()
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
